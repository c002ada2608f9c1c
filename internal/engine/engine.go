// Package engine filters, sorts and tallies paper records. Everything
// here is a pure function over in-memory slices: inputs are never
// mutated and identical inputs yield identical output.
package engine

import (
	"sort"
	"strings"

	"github.com/matsen/paperdeck/internal/paper"
)

// Filter values for status and category use "all" to disable the
// predicate.
const FilterAll = "all"

// SortMode selects the ordering of the filtered view.
type SortMode string

const (
	SortDateDesc       SortMode = "date-desc"
	SortDateAsc        SortMode = "date-asc"
	SortImportanceDesc SortMode = "importance-desc"
)

// Valid reports whether m is a known sort mode.
func (m SortMode) Valid() bool {
	switch m {
	case SortDateDesc, SortDateAsc, SortImportanceDesc:
		return true
	}
	return false
}

// Filter holds one filter/sort state.
type Filter struct {
	Status   string   // all, published, preprint
	Category string   // all, or a tag value
	Search   string   // substring of title+authors+abstract; "" disables
	Sort     SortMode // ordering of the result
}

// DefaultFilter is the state a fresh view starts in.
func DefaultFilter() Filter {
	return Filter{
		Status:   FilterAll,
		Category: FilterAll,
		Sort:     SortDateDesc,
	}
}

// Apply returns the records matching f, ordered by f.Sort. The input
// slice is never modified; the result is always a fresh slice.
func Apply(records []paper.Paper, f Filter) []paper.Paper {
	term := strings.ToLower(f.Search)

	out := make([]paper.Paper, 0, len(records))
	for _, p := range records {
		if matches(&p, f, term) {
			out = append(out, p)
		}
	}

	switch f.Sort {
	case SortDateAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Date().Before(out[j].Date())
		})
	case SortImportanceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Impact() != out[j].Impact() {
				return out[i].Impact() > out[j].Impact()
			}
			return out[i].Citations() > out[j].Citations()
		})
	default: // SortDateDesc
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Date().After(out[j].Date())
		})
	}

	return out
}

// StatusFiltered returns the subset matching only the status predicate,
// the input for category tallies.
func StatusFiltered(records []paper.Paper, status string) []paper.Paper {
	out := make([]paper.Paper, 0, len(records))
	for _, p := range records {
		if status == FilterAll || p.Status() == status {
			out = append(out, p)
		}
	}
	return out
}

func matches(p *paper.Paper, f Filter, term string) bool {
	if f.Status != FilterAll && p.Status() != f.Status {
		return false
	}
	if f.Category != FilterAll && !hasTag(p.Tags, f.Category) {
		return false
	}
	if term != "" && !strings.Contains(p.SearchText(), term) {
		return false
	}
	return true
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}
