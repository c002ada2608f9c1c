package paper

import "strings"

// Badge classifies a venue name for display.
type Badge string

// Badge classes. BadgeNone means the record has no venue at all.
const (
	BadgeJournal    Badge = "journal"
	BadgeConference Badge = "conference"
	BadgePublished  Badge = "published"
	BadgeNone       Badge = ""
)

// Known venue-name substrings, matched case-insensitively. The lists
// mirror the dataset producer's venue table.
var (
	journalVenues = []string{
		"nature",
		"science",
		"pami",
		"jmlr",
		"ijcv",
		"journal of computational physics",
		"computers & fluids",
		"journal of fluid mechanics",
		"aiaa journal",
		"physics of fluids",
		"computational mechanics",
	}

	conferenceVenues = []string{
		"neurips",
		"icml",
		"iclr",
		"cvpr",
		"iccv",
		"eccv",
		"acl",
		"emnlp",
		"naacl",
		"aaai",
		"ijcai",
		"kdd",
		"iros",
		"icra",
		"aiaa scitech",
		"symposium",
		"conference",
	}
)

// VenueBadge maps a venue name to its badge class. Unmatched non-empty
// venues get the generic published badge; empty venues get none.
func VenueBadge(venue string) Badge {
	if venue == "" {
		return BadgeNone
	}
	v := strings.ToLower(venue)
	for _, j := range journalVenues {
		if strings.Contains(v, j) {
			return BadgeJournal
		}
	}
	for _, c := range conferenceVenues {
		if strings.Contains(v, c) {
			return BadgeConference
		}
	}
	return BadgePublished
}

// Display is the rendering-boundary shape: the record plus its derived
// status and venue badge.
type Display struct {
	Paper
	Status string `json:"status"`
	Badge  Badge  `json:"badge,omitempty"`
}

// ForDisplay builds the display shape for one record.
func ForDisplay(p Paper) Display {
	return Display{
		Paper:  p,
		Status: p.Status(),
		Badge:  VenueBadge(p.Conference),
	}
}
