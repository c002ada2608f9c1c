// Package selection tracks which record identifiers the user has marked
// for export. Selection is keyed by identifier only: it survives filter,
// sort, pagination and month changes, and never depends on a record
// being currently visible.
package selection

// Set is an insertion-ordered set of record identifiers.
type Set struct {
	members map[string]bool
	order   []string
}

// New returns an empty selection.
func New() *Set {
	return &Set{members: make(map[string]bool)}
}

// Select adds an identifier. Re-selecting keeps the original position.
func (s *Set) Select(id string) {
	if s.members[id] {
		return
	}
	s.members[id] = true
	s.order = append(s.order, id)
}

// Deselect removes an identifier if present.
func (s *Set) Deselect(id string) {
	if !s.members[id] {
		return
	}
	delete(s.members, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Toggle flips an identifier's membership and reports the new state.
func (s *Set) Toggle(id string) bool {
	if s.members[id] {
		s.Deselect(id)
		return false
	}
	s.Select(id)
	return true
}

// SelectAll adds every given identifier. Callers pass the currently
// visible ids; bulk selection deliberately reaches no further than what
// has been rendered.
func (s *Set) SelectAll(visible []string) {
	for _, id := range visible {
		s.Select(id)
	}
}

// ClearAll empties the selection.
func (s *Set) ClearAll() {
	s.members = make(map[string]bool)
	s.order = nil
}

// Has reports whether an identifier is selected.
func (s *Set) Has(id string) bool {
	return s.members[id]
}

// Count returns the number of selected identifiers.
func (s *Set) Count() int {
	return len(s.order)
}

// IDs returns the selected identifiers in selection order.
func (s *Set) IDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
