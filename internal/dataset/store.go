package dataset

import (
	"context"

	"github.com/matsen/paperdeck/internal/paper"
)

// AllMonths is the key that selects every month in the index.
const AllMonths = "all"

// Store memoizes per-month collections for the lifetime of a session.
// The cache grows monotonically and is never evicted; a failed fetch
// leaves previously cached months intact.
//
// Store is not safe for concurrent use. The browse session and the CLI
// both drive it from a single goroutine.
type Store struct {
	fetcher    Fetcher
	months     []Month
	cache      map[string][]paper.Paper
	generation int
}

// NewStore creates a store backed by the given fetcher.
func NewStore(f Fetcher) *Store {
	return &Store{
		fetcher: f,
		cache:   make(map[string][]paper.Paper),
	}
}

// Months returns the month index, fetching it on first use.
func (s *Store) Months(ctx context.Context) ([]Month, error) {
	if s.months != nil {
		return s.months, nil
	}
	months, err := s.fetcher.Index(ctx)
	if err != nil {
		return nil, err
	}
	s.months = months
	return months, nil
}

// Load resolves a month key to its records. For AllMonths it ensures
// every indexed month is cached and returns their concatenation in index
// order; identifiers are not deduplicated across months, so a colliding
// id appears once per month carrying it. For a single month it fetches
// once and memoizes.
func (s *Store) Load(ctx context.Context, key string) ([]paper.Paper, error) {
	if key == AllMonths {
		return s.loadAll(ctx)
	}
	return s.ensureMonth(ctx, key)
}

func (s *Store) loadAll(ctx context.Context) ([]paper.Paper, error) {
	months, err := s.Months(ctx)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, m := range months {
		records, err := s.ensureMonth(ctx, m.Month)
		if err != nil {
			return nil, err
		}
		total += len(records)
	}

	all := make([]paper.Paper, 0, total)
	for _, m := range months {
		all = append(all, s.cache[m.Month]...)
	}
	return all, nil
}

func (s *Store) ensureMonth(ctx context.Context, key string) ([]paper.Paper, error) {
	if records, ok := s.cache[key]; ok {
		return records, nil
	}
	records, err := s.fetcher.Month(ctx, key)
	if err != nil {
		return nil, err
	}
	s.cache[key] = records
	return records, nil
}

// Cached reports whether a month is already in the cache.
func (s *Store) Cached(key string) bool {
	_, ok := s.cache[key]
	return ok
}

// Generation returns the current load generation. A load result tagged
// with an older generation is stale and must be discarded.
func (s *Store) Generation() int { return s.generation }

// NextGeneration advances and returns the load generation. Call it when
// issuing a load that may race a newer one.
func (s *Store) NextGeneration() int {
	s.generation++
	return s.generation
}
