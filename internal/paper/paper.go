// Package paper defines the core domain types for dataset records.
package paper

import (
	"strings"
	"time"
)

// Paper represents one record from a monthly dataset file.
//
// Optional numeric fields decode as pointers so that a missing value and
// an explicit zero stay distinguishable at the boundary; downstream code
// reads them through Citations and Impact, which default to zero.
type Paper struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Authors   string `json:"authors"`
	Published string `json:"published"` // ISO date, YYYY-MM-DD
	Abstract  string `json:"abstract"`

	ArXivURL string `json:"arxiv_url,omitempty"`
	PDFURL   string `json:"pdf_url,omitempty"`
	CodeLink string `json:"code_link,omitempty"`

	// Conference holds the journal or conference name when the producer
	// matched one; empty means preprint.
	Conference string `json:"conference,omitempty"`

	Tags       []string `json:"tags"`
	Keywords   []string `json:"keywords"`
	Categories []string `json:"categories,omitempty"`

	CitationCount *int     `json:"citation_count"`
	ImpactFactor  *float64 `json:"impact_factor"`
}

// Derived status values.
const (
	StatusPublished = "published"
	StatusPreprint  = "preprint"
)

// dateSentinel is the value unparseable publication dates compare as:
// the oldest possible date, so they sort last under date-desc.
var dateSentinel = time.Unix(0, 0).UTC()

// Status derives the publication status from the venue field.
func (p *Paper) Status() string {
	if p.Conference != "" {
		return StatusPublished
	}
	return StatusPreprint
}

// PrimaryCategory returns the first tag, or "" for untagged records.
func (p *Paper) PrimaryCategory() string {
	if len(p.Tags) > 0 {
		return p.Tags[0]
	}
	return ""
}

// Date parses the publication date. Unparseable dates return the epoch
// sentinel rather than an error; date variance is normal in this data.
func (p *Paper) Date() time.Time {
	t, err := time.Parse("2006-01-02", p.Published)
	if err != nil {
		return dateSentinel
	}
	return t
}

// Year returns the year component of the publication date string
// (everything before the first "-"), without validating it.
func (p *Paper) Year() string {
	year, _, _ := strings.Cut(p.Published, "-")
	return year
}

// Citations returns the citation count, defaulting missing values to 0.
func (p *Paper) Citations() int {
	if p.CitationCount == nil {
		return 0
	}
	return *p.CitationCount
}

// Impact returns the impact factor, defaulting missing values to 0.
func (p *Paper) Impact() float64 {
	if p.ImpactFactor == nil {
		return 0
	}
	return *p.ImpactFactor
}

// SearchText returns the lowercased concatenation of title, authors and
// abstract that search terms match against. The fields are joined with
// single spaces; a term spanning a join boundary can match, and that is
// pinned behavior.
func (p *Paper) SearchText() string {
	return strings.ToLower(p.Title + " " + p.Authors + " " + p.Abstract)
}

// Normalize defaults nil slices to empty so that downstream code and
// JSON output never see nulls. Called once at ingestion.
func (p *Paper) Normalize() {
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Keywords == nil {
		p.Keywords = []string{}
	}
	if p.Categories == nil {
		p.Categories = []string{}
	}
}
