package main

// Exit codes.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (missing or malformed config)
	ExitDataError   = 3 // Dataset error (fetch failed, malformed payload)
)
