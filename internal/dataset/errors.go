package dataset

import (
	"errors"
	"fmt"
)

// ErrDataUnavailable indicates the month index or a month file could not
// be fetched or did not conform to the expected shape. Previously cached
// months remain usable; callers should degrade to an empty active set.
var ErrDataUnavailable = errors.New("dataset unavailable")

// FetchError carries the failing month key and, for HTTP sources, the
// response status.
type FetchError struct {
	Month      string // month key, or "index"
	StatusCode int    // 0 for non-HTTP failures
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching %s (status %d): %v", e.Month, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetching %s: %v", e.Month, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is makes every FetchError match ErrDataUnavailable.
func (e *FetchError) Is(target error) bool { return target == ErrDataUnavailable }

// IsUnavailable reports whether err represents a failed or malformed
// dataset fetch.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrDataUnavailable)
}
