package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matsen/paperdeck/internal/config"
	"github.com/matsen/paperdeck/internal/engine"
	"github.com/matsen/paperdeck/internal/paper"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	badgeStyles = map[paper.Badge]lipgloss.Style{
		paper.BadgeJournal:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		paper.BadgeConference: lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		paper.BadgePublished:  lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
	}
)

const helpLine = "j/k move · tab status · c category · s sort · m month · / search · space select · a all · x clear · e export · q quit"

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("paperdeck"))
	b.WriteString(headerStyle.Render(fmt.Sprintf("  %s · %s · %s · sort %s",
		m.monthLabel(), m.filter.Status, config.DisplayLabel(m.filter.Category), m.filter.Sort)))
	if m.filter.Search != "" {
		b.WriteString(headerStyle.Render(fmt.Sprintf(" · search %q", m.filter.Search)))
	}
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(m.tallyLine()))
	b.WriteString("\n\n")

	if m.searching {
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
	}

	if m.loading {
		b.WriteString("loading...\n")
	} else if len(m.rows) == 0 {
		b.WriteString("no papers match\n")
	} else {
		m.renderRows(&b)
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(helpLine))
	return b.String()
}

func (m Model) renderRows(b *strings.Builder) {
	visible := m.height - 8
	if visible < 5 {
		visible = 5
	}
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := start + visible
	if end > len(m.rows) {
		end = len(m.rows)
	}

	for i := start; i < end; i++ {
		r := m.rows[i]

		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
		}
		check := "[ ]"
		if m.sel.Has(r.ID) {
			check = selectedStyle.Render("[x]")
		}

		badge := ""
		if r.Badge != paper.BadgeNone {
			style, ok := badgeStyles[r.Badge]
			if !ok {
				style = statusStyle
			}
			badge = " " + style.Render(string(r.Badge))
		}

		line := fmt.Sprintf("%s%s %s  %s%s", marker, check, r.Published, truncate(r.Title, m.width-30), badge)
		b.WriteString(line)
		b.WriteString("\n")
	}

	rendered := len(m.rows)
	total := m.vw.Len()
	if rendered < total {
		b.WriteString(statusStyle.Render(fmt.Sprintf("  ... %d of %d (scroll for more)", rendered, total)))
		b.WriteString("\n")
	}
}

func (m Model) tallyLine() string {
	if m.tally == nil {
		return ""
	}
	parts := []string{fmt.Sprintf("all %d", m.tally[engine.TallyAll])}
	for _, c := range m.cfg.Categories {
		parts = append(parts, fmt.Sprintf("%s %d", config.DisplayLabel(c), m.tally[c]))
	}
	return strings.Join(parts, " · ")
}

func truncate(s string, maxLen int) string {
	if maxLen < 10 {
		maxLen = 10
	}
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
