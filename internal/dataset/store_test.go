package dataset

import (
	"context"
	"testing"

	"github.com/matsen/paperdeck/internal/paper"
)

// fakeFetcher serves canned months and counts fetches per key.
type fakeFetcher struct {
	index   []Month
	months  map[string][]paper.Paper
	fetches map[string]int
	fail    map[string]bool
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		index: []Month{
			{Month: "2024-01", Count: 2},
			{Month: "2024-02", Count: 1},
		},
		months: map[string][]paper.Paper{
			"2024-01": {
				{ID: "2401.00001", Published: "2024-01-05"},
				{ID: "2401.00002", Published: "2024-01-09"},
			},
			"2024-02": {
				{ID: "2402.00001", Published: "2024-02-02"},
			},
		},
		fetches: make(map[string]int),
		fail:    make(map[string]bool),
	}
}

func (f *fakeFetcher) Index(ctx context.Context) ([]Month, error) {
	f.fetches["index"]++
	if f.fail["index"] {
		return nil, &FetchError{Month: "index", Err: context.Canceled}
	}
	return f.index, nil
}

func (f *fakeFetcher) Month(ctx context.Context, key string) ([]paper.Paper, error) {
	f.fetches[key]++
	if f.fail[key] {
		return nil, &FetchError{Month: key, Err: context.Canceled}
	}
	return f.months[key], nil
}

func TestStoreMemoizes(t *testing.T) {
	ff := newFakeFetcher()
	s := NewStore(ff)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		records, err := s.Load(ctx, "2024-01")
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if len(records) != 2 {
			t.Fatalf("Load() returned %d records, want 2", len(records))
		}
	}

	if ff.fetches["2024-01"] != 1 {
		t.Errorf("month fetched %d times, want fetch-once", ff.fetches["2024-01"])
	}
}

func TestStoreLoadAll(t *testing.T) {
	ff := newFakeFetcher()
	s := NewStore(ff)

	all, err := s.Load(context.Background(), AllMonths)
	if err != nil {
		t.Fatalf("Load(all) error: %v", err)
	}

	// Concatenation in index order, no dedup.
	wantIDs := []string{"2401.00001", "2401.00002", "2402.00001"}
	if len(all) != len(wantIDs) {
		t.Fatalf("Load(all) returned %d records, want %d", len(all), len(wantIDs))
	}
	for i, id := range wantIDs {
		if all[i].ID != id {
			t.Errorf("all[%d].ID = %q, want %q", i, all[i].ID, id)
		}
	}

	// A later "all" load reuses every cached month.
	if _, err := s.Load(context.Background(), AllMonths); err != nil {
		t.Fatal(err)
	}
	if ff.fetches["2024-01"] != 1 || ff.fetches["2024-02"] != 1 {
		t.Errorf("months refetched: %v", ff.fetches)
	}
}

func TestStoreFailureKeepsCache(t *testing.T) {
	ff := newFakeFetcher()
	s := NewStore(ff)
	ctx := context.Background()

	if _, err := s.Load(ctx, "2024-01"); err != nil {
		t.Fatal(err)
	}

	ff.fail["2024-02"] = true
	if _, err := s.Load(ctx, AllMonths); !IsUnavailable(err) {
		t.Fatalf("Load(all) with failing month = %v, want unavailable", err)
	}

	// The earlier month survives the failure.
	if !s.Cached("2024-01") {
		t.Error("cached month lost after a failed fetch")
	}
	records, err := s.Load(ctx, "2024-01")
	if err != nil || len(records) != 2 {
		t.Errorf("cached month unusable after failure: %v", err)
	}

	// A re-request after the failure clears (no automatic retry happened
	// in between).
	ff.fail["2024-02"] = false
	all, err := s.Load(ctx, AllMonths)
	if err != nil {
		t.Fatalf("retry after explicit re-request failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Load(all) after recovery returned %d records, want 3", len(all))
	}
}

func TestStoreGeneration(t *testing.T) {
	s := NewStore(newFakeFetcher())

	g1 := s.NextGeneration()
	g2 := s.NextGeneration()
	if g2 <= g1 {
		t.Errorf("generations not increasing: %d then %d", g1, g2)
	}
	// A result tagged g1 is stale once g2 was issued.
	if g1 == s.Generation() {
		t.Error("older generation should no longer be current")
	}
	if g2 != s.Generation() {
		t.Error("newest generation should be current")
	}
}
