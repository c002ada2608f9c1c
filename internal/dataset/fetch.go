// Package dataset loads pre-generated paper datasets: a month index plus
// one JSON file per month, served from a static base URL or a local
// directory.
package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/matsen/paperdeck/internal/paper"
)

const (
	// IndexFile is the name of the month index within a dataset.
	IndexFile = "index.json"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// RateLimit caps requests per second against static hosts; monthly
	// files are small and bursts come from "all months" loads.
	RateLimit = 4.0
)

// Month is one entry of the dataset index.
type Month struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// Fetcher retrieves the raw pieces of a dataset.
type Fetcher interface {
	Index(ctx context.Context) ([]Month, error)
	Month(ctx context.Context, key string) ([]paper.Paper, error)
}

// HTTPFetcher fetches dataset files from a static base URL, rate-limited.
type HTTPFetcher struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// HTTPOption configures an HTTPFetcher.
type HTTPOption func(*HTTPFetcher)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) HTTPOption {
	return func(f *HTTPFetcher) {
		f.httpClient = hc
	}
}

// WithLimiter sets a custom rate limiter.
func WithLimiter(l *rate.Limiter) HTTPOption {
	return func(f *HTTPFetcher) {
		f.limiter = l
	}
}

// NewHTTPFetcher creates a fetcher for the dataset rooted at baseURL.
func NewHTTPFetcher(baseURL string, opts ...HTTPOption) *HTTPFetcher {
	f := &HTTPFetcher{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Index fetches and decodes the month index.
func (f *HTTPFetcher) Index(ctx context.Context) ([]Month, error) {
	data, err := f.get(ctx, "index", IndexFile)
	if err != nil {
		return nil, err
	}
	var months []Month
	if err := json.Unmarshal(data, &months); err != nil {
		return nil, &FetchError{Month: "index", Err: fmt.Errorf("parsing index: %w", err)}
	}
	return months, nil
}

// Month fetches and decodes one month's records.
func (f *HTTPFetcher) Month(ctx context.Context, key string) ([]paper.Paper, error) {
	data, err := f.get(ctx, key, key+".json")
	if err != nil {
		return nil, err
	}
	return decodeMonth(key, data)
}

func (f *HTTPFetcher) get(ctx context.Context, key, file string) ([]byte, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, &FetchError{Month: key, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/"+file, nil)
	if err != nil {
		return nil, &FetchError{Month: key, Err: err}
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Month: key, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{
			Month:      key,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status for %s", file),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Month: key, Err: err}
	}
	return data, nil
}

// DirFetcher reads dataset files from a local data directory, the layout
// the producer writes (data/index.json, data/YYYY-MM.json).
type DirFetcher struct {
	dir string
}

// NewDirFetcher creates a fetcher for a local dataset directory.
func NewDirFetcher(dir string) *DirFetcher {
	return &DirFetcher{dir: dir}
}

// Index reads and decodes the month index.
func (f *DirFetcher) Index(ctx context.Context) ([]Month, error) {
	data, err := os.ReadFile(filepath.Join(f.dir, IndexFile))
	if err != nil {
		return nil, &FetchError{Month: "index", Err: err}
	}
	var months []Month
	if err := json.Unmarshal(data, &months); err != nil {
		return nil, &FetchError{Month: "index", Err: fmt.Errorf("parsing index: %w", err)}
	}
	return months, nil
}

// Month reads and decodes one month's records.
func (f *DirFetcher) Month(ctx context.Context, key string) ([]paper.Paper, error) {
	data, err := os.ReadFile(filepath.Join(f.dir, key+".json"))
	if err != nil {
		return nil, &FetchError{Month: key, Err: err}
	}
	return decodeMonth(key, data)
}

// decodeMonth validates the payload shape once, at the boundary. Records
// are normalized here so downstream code never sees nil slices.
func decodeMonth(key string, data []byte) ([]paper.Paper, error) {
	var records []paper.Paper
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &FetchError{Month: key, Err: fmt.Errorf("parsing month file: %w", err)}
	}
	for i := range records {
		records[i].Normalize()
	}
	return records, nil
}
