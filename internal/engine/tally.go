package engine

import "github.com/matsen/paperdeck/internal/paper"

// TallyAll is the tally key holding the subset's total size.
const TallyAll = "all"

// Tally counts how many records of the status-filtered subset carry each
// category tag, for UI badges. Every known category appears in the
// result, zero-valued when absent; a record counts at most once per
// distinct tag even when the tag is duplicated. Display only — the
// result never feeds back into Apply.
func Tally(records []paper.Paper, categories []string) map[string]int {
	counts := make(map[string]int, len(categories)+1)
	counts[TallyAll] = len(records)
	for _, c := range categories {
		counts[c] = 0
	}

	for _, p := range records {
		seen := make(map[string]bool, len(p.Tags))
		for _, tag := range p.Tags {
			if seen[tag] {
				continue
			}
			seen[tag] = true
			counts[tag]++
		}
	}
	return counts
}
