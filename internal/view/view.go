// Package view paces the rendering of a filtered record sequence: a
// large first batch, smaller follow-up batches, and an in-flight guard
// so rapid triggers collapse into one effective advance. The trigger
// mechanism (scroll proximity, manual call, test) lives outside the
// state machine.
package view

import "github.com/matsen/paperdeck/internal/paper"

// Batch sizes. The first batch after a reset is larger so the initial
// screen fills without waiting for a second trigger.
const (
	FirstBatchSize = 20
	NextBatchSize  = 10
)

// TriggerThreshold is how close to the rendered tail a position must be
// before the next batch should be produced.
const TriggerThreshold = 5

type state int

const (
	stateIdle state = iota
	stateLoading
)

// View walks a fixed filtered sequence with a monotonically increasing
// cursor. Not safe for concurrent use; the session event loop owns it.
type View struct {
	records []paper.Paper
	cursor  int
	st      state
}

// New returns an empty, exhausted view. Call Reset to seed it.
func New() *View {
	return &View{}
}

// Reset replaces the underlying sequence, zeroes the cursor, clears any
// in-flight batch and immediately produces the seed batch. Batches from
// the previous sequence can never interleave with the new one because
// the cursor and guard are gone before the seed is produced.
func (v *View) Reset(records []paper.Paper) []paper.Paper {
	v.records = records
	v.cursor = 0
	v.st = stateIdle
	return v.Advance()
}

// Advance produces the next batch and moves the cursor by the number of
// records returned. It returns nil when the view is exhausted or a batch
// is still in flight. The caller must call Done once the returned batch
// has been rendered.
func (v *View) Advance() []paper.Paper {
	if v.st == stateLoading {
		return nil
	}
	if v.cursor >= len(v.records) {
		return nil
	}

	size := NextBatchSize
	if v.cursor == 0 {
		size = FirstBatchSize
	}
	end := v.cursor + size
	if end > len(v.records) {
		end = len(v.records)
	}

	batch := v.records[v.cursor:end]
	v.cursor = end
	v.st = stateLoading
	return batch
}

// Done marks the in-flight batch as rendered, returning to Idle.
func (v *View) Done() {
	v.st = stateIdle
}

// Exhausted reports whether every record has been handed out. Once it
// returns true no further trigger should be armed.
func (v *View) Exhausted() bool {
	return v.cursor >= len(v.records)
}

// ShouldTrigger reports whether a position near the rendered tail should
// produce the next batch: within TriggerThreshold of the cursor, not
// exhausted, and nothing in flight.
func (v *View) ShouldTrigger(pos int) bool {
	if v.st == stateLoading || v.Exhausted() {
		return false
	}
	return pos >= v.cursor-TriggerThreshold
}

// Cursor returns how many records have been handed out so far.
func (v *View) Cursor() int { return v.cursor }

// Len returns the size of the underlying filtered sequence.
func (v *View) Len() int { return len(v.records) }

// Rendered returns the prefix handed out so far.
func (v *View) Rendered() []paper.Paper {
	return v.records[:v.cursor]
}
