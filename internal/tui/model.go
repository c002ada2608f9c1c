// Package tui implements the interactive browse session: a scrolling
// paper list over the filter/sort engine, with incremental batch
// rendering, selection and bibliography export.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/matsen/paperdeck/internal/config"
	"github.com/matsen/paperdeck/internal/dataset"
	"github.com/matsen/paperdeck/internal/engine"
	"github.com/matsen/paperdeck/internal/export"
	"github.com/matsen/paperdeck/internal/paper"
	"github.com/matsen/paperdeck/internal/selection"
	"github.com/matsen/paperdeck/internal/view"
)

// Messages delivered by async loads.
type monthsMsg struct {
	months []dataset.Month
}

type loadMsg struct {
	gen     int
	key     string
	records []paper.Paper
}

type errMsg struct {
	err error
}

// Model holds the browse session state. All mutation happens in Update;
// fetches run as tea.Cmd and report back as messages.
type Model struct {
	store *dataset.Store
	cfg   *config.Config

	months   []dataset.Month
	monthIdx int // index into months; -1 selects all months
	monthKey string
	active   []paper.Paper

	filter engine.Filter
	vw     *view.View
	rows   []paper.Display
	cursor int
	tally  map[string]int

	sel *selection.Set
	// seen remembers every record loaded this session so selected ids
	// resolve for export even when their month is no longer active.
	seen map[string]paper.Paper

	input     textinput.Model
	searching bool

	loading bool
	status  string
	width   int
	height  int
}

// New creates a browse session over the given store.
func New(store *dataset.Store, cfg *config.Config) Model {
	ti := textinput.New()
	ti.Placeholder = "search title, authors, abstract"
	ti.CharLimit = 128
	ti.Prompt = "/"

	return Model{
		store:    store,
		cfg:      cfg,
		monthIdx: -1,
		monthKey: dataset.AllMonths,
		filter:   engine.DefaultFilter(),
		vw:       view.New(),
		sel:      selection.New(),
		seen:     make(map[string]paper.Paper),
		input:    ti,
		status:   "loading dataset...",
		height:   24,
		width:    80,
	}
}

// Run starts the interactive session.
func Run(store *dataset.Store, cfg *config.Config) error {
	_, err := tea.NewProgram(New(store, cfg), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return m.loadMonths()
}

func (m Model) loadMonths() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		months, err := store.Months(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return monthsMsg{months}
	}
}

// loadMonth issues a generation-tagged fetch. A result carrying an older
// generation than the store's current one is stale and gets dropped in
// Update, so a slow fetch can never overwrite a newer month.
func (m *Model) loadMonth(key string) tea.Cmd {
	store := m.store
	gen := store.NextGeneration()
	m.loading = true
	return func() tea.Msg {
		records, err := store.Load(context.Background(), key)
		if err != nil {
			return errMsg{err}
		}
		return loadMsg{gen: gen, key: key, records: records}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 4
		return m, nil

	case monthsMsg:
		m.months = msg.months
		cmd := m.loadMonth(m.monthKey)
		return m, cmd

	case loadMsg:
		if msg.gen != m.store.Generation() {
			// Stale: a newer load was issued after this one.
			return m, nil
		}
		m.loading = false
		m.active = msg.records
		for _, p := range msg.records {
			if _, ok := m.seen[p.ID]; !ok {
				m.seen[p.ID] = p
			}
		}
		m.applyFilter()
		m.status = fmt.Sprintf("%s: %d papers", m.monthLabel(), len(m.active))
		return m, nil

	case errMsg:
		m.loading = false
		// Degraded, not fatal: prior cached months stay browsable.
		m.status = fmt.Sprintf("dataset unavailable: %v", msg.err)
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.input.Blur()
		return m, nil
	case "enter":
		m.searching = false
		m.input.Blur()
		m.filter.Search = strings.TrimSpace(m.input.Value())
		m.applyFilter()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "j", "down":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-1)
	case "g":
		m.cursor = 0
	case "G":
		m.moveCursor(len(m.rows) - 1 - m.cursor)

	case "/":
		m.searching = true
		m.input.SetValue(m.filter.Search)
		m.input.Focus()

	case "tab":
		m.filter.Status = nextStatus(m.filter.Status)
		m.applyFilter()
	case "c":
		m.filter.Category = m.nextCategory()
		m.applyFilter()
	case "s":
		m.filter.Sort = nextSort(m.filter.Sort)
		m.applyFilter()

	case "m":
		cmd := m.switchMonth(1)
		return m, cmd
	case "M":
		cmd := m.switchMonth(-1)
		return m, cmd

	case " ":
		if m.cursor < len(m.rows) {
			m.sel.Toggle(m.rows[m.cursor].ID)
		}
	case "a":
		visible := make([]string, len(m.rows))
		for i, r := range m.rows {
			visible[i] = r.ID
		}
		m.sel.SelectAll(visible)
		m.status = fmt.Sprintf("%d selected", m.sel.Count())
	case "x":
		m.sel.ClearAll()
		m.status = "selection cleared"

	case "e":
		m.exportSelection()
	}
	return m, nil
}

// moveCursor clamps the cursor to rendered rows and produces the next
// batch when the cursor nears the rendered tail.
func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	if m.vw.ShouldTrigger(m.cursor) {
		if batch := m.vw.Advance(); batch != nil {
			for _, p := range batch {
				m.rows = append(m.rows, paper.ForDisplay(p))
			}
			m.vw.Done()
		}
	}
}

// applyFilter recomputes the filtered view, resets pagination and
// reseeds the first batch. Always runs to completion before any key or
// load message can produce another batch.
func (m *Model) applyFilter() {
	filtered := engine.Apply(m.active, m.filter)
	seed := m.vw.Reset(filtered)
	m.rows = m.rows[:0]
	for _, p := range seed {
		m.rows = append(m.rows, paper.ForDisplay(p))
	}
	m.vw.Done()
	m.cursor = 0
	m.tally = engine.Tally(engine.StatusFiltered(m.active, m.filter.Status), m.cfg.Categories)
}

func (m *Model) switchMonth(delta int) tea.Cmd {
	if len(m.months) == 0 {
		return nil
	}
	// Cycle: all → first month → ... → last month → all.
	m.monthIdx += delta
	if m.monthIdx >= len(m.months) {
		m.monthIdx = -1
	}
	if m.monthIdx < -1 {
		m.monthIdx = len(m.months) - 1
	}
	if m.monthIdx == -1 {
		m.monthKey = dataset.AllMonths
	} else {
		m.monthKey = m.months[m.monthIdx].Month
	}
	return m.loadMonth(m.monthKey)
}

func (m *Model) exportSelection() {
	selected := make([]paper.Paper, 0, m.sel.Count())
	for _, id := range m.sel.IDs() {
		if p, ok := m.seen[id]; ok {
			selected = append(selected, p)
		}
	}

	content, err := export.Bibliography(selected)
	if err != nil {
		// Nothing selected is a notice, not a fault.
		m.status = err.Error()
		return
	}
	if err := os.WriteFile(export.FileName, []byte(content), 0644); err != nil {
		m.status = fmt.Sprintf("writing %s: %v", export.FileName, err)
		return
	}
	m.status = fmt.Sprintf("exported %d papers to %s", len(selected), export.FileName)
}

func (m Model) monthLabel() string {
	if m.monthKey == dataset.AllMonths {
		return "all months"
	}
	return m.monthKey
}

func (m Model) nextCategory() string {
	options := append([]string{engine.FilterAll}, m.cfg.Categories...)
	for i, c := range options {
		if c == m.filter.Category {
			return options[(i+1)%len(options)]
		}
	}
	return engine.FilterAll
}

func nextStatus(s string) string {
	switch s {
	case engine.FilterAll:
		return paper.StatusPublished
	case paper.StatusPublished:
		return paper.StatusPreprint
	default:
		return engine.FilterAll
	}
}

func nextSort(s engine.SortMode) engine.SortMode {
	switch s {
	case engine.SortDateDesc:
		return engine.SortDateAsc
	case engine.SortDateAsc:
		return engine.SortImportanceDesc
	default:
		return engine.SortDateDesc
	}
}
