// Package export serializes selected records to a bibliography file.
package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/matsen/paperdeck/internal/paper"
)

// FileName is the name the bibliography is offered under.
const FileName = "papers.bib"

// ErrNothingSelected indicates an export was requested with an empty
// selection. It is a user notice, not a system fault; no output is
// produced.
var ErrNothingSelected = errors.New("no papers selected")

// Bibliography serializes the selected records, in selection order, to
// BibTeX-style entries. Identifiers are not guaranteed unique across
// months; when the selection carries duplicates, the first occurrence
// wins and later ones are skipped.
func Bibliography(selected []paper.Paper) (string, error) {
	if len(selected) == 0 {
		return "", ErrNothingSelected
	}

	var b strings.Builder
	seen := make(map[string]bool, len(selected))
	for _, p := range selected {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		writeEntry(&b, p)
	}
	return b.String(), nil
}

func writeEntry(b *strings.Builder, p paper.Paper) {
	b.WriteString(fmt.Sprintf("@article{%s,\n", CiteKey(p.ID)))
	b.WriteString(fmt.Sprintf("  title = {%s},\n", escapeLatex(p.Title)))
	b.WriteString(fmt.Sprintf("  author = {%s},\n", escapeLatex(p.Authors)))
	b.WriteString(fmt.Sprintf("  year = {%s},\n", p.Year()))
	b.WriteString(fmt.Sprintf("  journal = {arXiv preprint arXiv:%s},\n", p.ID))
	if p.Conference != "" {
		b.WriteString(fmt.Sprintf("  note = {%s},\n", escapeLatex(p.Conference)))
	}
	b.WriteString("}\n\n")
}

// CiteKey normalizes an identifier into a citation key: separator
// characters become hyphens so keys stay parseable.
func CiteKey(id string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '.', ':', ' ', '\t':
			return '-'
		}
		return r
	}, id)
}

// escapeLatex escapes special LaTeX characters. & must come first.
var latexReplacer = strings.NewReplacer(
	"&", `\&`,
	"%", `\%`,
	"$", `\$`,
	"#", `\#`,
	"_", `\_`,
	"{", `\{`,
	"}", `\}`,
	"~", `\textasciitilde{}`,
	"^", `\textasciicircum{}`,
)

func escapeLatex(s string) string {
	return latexReplacer.Replace(s)
}
