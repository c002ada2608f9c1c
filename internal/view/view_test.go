package view

import (
	"fmt"
	"testing"

	"github.com/matsen/paperdeck/internal/paper"
)

func makeRecords(n int) []paper.Paper {
	records := make([]paper.Paper, n)
	for i := range records {
		records[i] = paper.Paper{ID: fmt.Sprintf("p%02d", i)}
	}
	return records
}

func TestBatchSizes(t *testing.T) {
	v := New()

	batch := v.Reset(makeRecords(25))
	if len(batch) != 20 {
		t.Fatalf("first batch = %d records, want 20", len(batch))
	}
	if v.Cursor() != 20 {
		t.Fatalf("cursor after first batch = %d, want 20", v.Cursor())
	}
	v.Done()

	batch = v.Advance()
	if len(batch) != 5 {
		t.Fatalf("second batch = %d records, want 5", len(batch))
	}
	if v.Cursor() != 25 {
		t.Fatalf("cursor after second batch = %d, want 25", v.Cursor())
	}
	v.Done()

	if !v.Exhausted() {
		t.Error("view should be exhausted at cursor == len")
	}
	if batch = v.Advance(); batch != nil {
		t.Errorf("Advance on exhausted view = %d records, want none", len(batch))
	}
	if got := v.Rendered(); len(got) != 25 {
		t.Errorf("Rendered() = %d records, want 25", len(got))
	}
}

func TestShortView(t *testing.T) {
	v := New()
	batch := v.Reset(makeRecords(7))
	if len(batch) != 7 {
		t.Errorf("seed batch from short view = %d, want all 7", len(batch))
	}
	v.Done()
	if !v.Exhausted() {
		t.Error("short view should be exhausted after the seed batch")
	}
}

func TestEmptyView(t *testing.T) {
	v := New()
	if batch := v.Reset(nil); batch != nil {
		t.Errorf("seed batch from empty view = %v, want none", batch)
	}
	if !v.Exhausted() {
		t.Error("empty view should be exhausted")
	}
}

func TestInFlightGuard(t *testing.T) {
	v := New()
	batch := v.Reset(makeRecords(40))
	if len(batch) != 20 {
		t.Fatalf("seed batch = %d, want 20", len(batch))
	}

	// Rapid triggers before Done collapse into nothing.
	for i := 0; i < 3; i++ {
		if extra := v.Advance(); extra != nil {
			t.Fatalf("Advance while in flight produced %d records", len(extra))
		}
	}
	if v.Cursor() != 20 {
		t.Errorf("cursor moved while in flight: %d", v.Cursor())
	}

	v.Done()
	if batch = v.Advance(); len(batch) != 10 {
		t.Errorf("batch after Done = %d records, want 10", len(batch))
	}
}

func TestResetMidPagination(t *testing.T) {
	v := New()
	v.Reset(makeRecords(30))
	v.Done()
	// Cursor sits mid-pagination at 20 of 30.
	if v.Cursor() != 20 {
		t.Fatalf("setup cursor = %d", v.Cursor())
	}

	fresh := makeRecords(12)
	batch := v.Reset(fresh)
	if v.Cursor() != 12 {
		t.Errorf("cursor after reset = %d, want 12 (seed of up to 20)", v.Cursor())
	}
	if len(batch) != 12 {
		t.Errorf("seed batch after reset = %d records, want 12", len(batch))
	}
	if batch[0].ID != "p00" {
		t.Errorf("seed batch should start at the new view's head, got %q", batch[0].ID)
	}
}

func TestResetClearsInFlight(t *testing.T) {
	v := New()
	v.Reset(makeRecords(40)) // in flight, Done never called

	batch := v.Reset(makeRecords(25))
	if len(batch) != 20 {
		t.Errorf("reset while in flight should still seed 20, got %d", len(batch))
	}
}

func TestShouldTrigger(t *testing.T) {
	v := New()
	v.Reset(makeRecords(40))
	v.Done()

	// Cursor at 20; positions near the tail trigger, earlier ones don't.
	if v.ShouldTrigger(10) {
		t.Error("position far from tail should not trigger")
	}
	if !v.ShouldTrigger(16) {
		t.Error("position within threshold of tail should trigger")
	}

	// While in flight, nothing triggers.
	v.Advance()
	if v.ShouldTrigger(19) {
		t.Error("in-flight view should not trigger")
	}
	v.Done()

	// Exhaust the view; no trigger arms afterwards.
	for v.Advance() != nil {
		v.Done()
	}
	if v.ShouldTrigger(v.Len() - 1) {
		t.Error("exhausted view should never trigger")
	}
}

func TestNoInterleavingAcrossResets(t *testing.T) {
	v := New()
	old := makeRecords(40)
	v.Reset(old)
	v.Done()

	fresh := make([]paper.Paper, 30)
	for i := range fresh {
		fresh[i] = paper.Paper{ID: fmt.Sprintf("new%02d", i)}
	}
	seed := v.Reset(fresh)

	all := append([]paper.Paper{}, seed...)
	v.Done()
	for batch := v.Advance(); batch != nil; batch = v.Advance() {
		all = append(all, batch...)
		v.Done()
	}

	if len(all) != 30 {
		t.Fatalf("rendered %d records, want 30", len(all))
	}
	for i, p := range all {
		if p.ID != fmt.Sprintf("new%02d", i) {
			t.Fatalf("record %d = %q; old view leaked into new batches", i, p.ID)
		}
	}
}
