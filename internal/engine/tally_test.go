package engine

import (
	"testing"

	"github.com/matsen/paperdeck/internal/paper"
)

func TestTally(t *testing.T) {
	categories := []string{"Fluid Dynamics", "Machine Learning", "Aerodynamics"}
	records := []paper.Paper{
		{ID: "a", Tags: []string{"Fluid Dynamics", "Machine Learning"}},
		{ID: "b", Tags: []string{"Fluid Dynamics"}},
		{ID: "c", Tags: []string{}},
	}

	counts := Tally(records, categories)

	if counts[TallyAll] != 3 {
		t.Errorf(`counts["all"] = %d, want subset size 3`, counts[TallyAll])
	}
	if counts["Fluid Dynamics"] != 2 {
		t.Errorf("Fluid Dynamics = %d, want 2", counts["Fluid Dynamics"])
	}
	if counts["Machine Learning"] != 1 {
		t.Errorf("Machine Learning = %d, want 1", counts["Machine Learning"])
	}
	if got, ok := counts["Aerodynamics"]; !ok || got != 0 {
		t.Errorf("known category without records should be present with 0, got %d (present=%v)", got, ok)
	}
}

func TestTallyDuplicateTags(t *testing.T) {
	records := []paper.Paper{
		{ID: "dup", Tags: []string{"A", "B", "A"}},
	}
	counts := Tally(records, []string{"A", "B"})
	if counts["A"] != 1 || counts["B"] != 1 {
		t.Errorf("duplicated tag counted twice: A=%d B=%d, want 1/1", counts["A"], counts["B"])
	}
}

func TestTallyEmpty(t *testing.T) {
	counts := Tally(nil, []string{"A"})
	if counts[TallyAll] != 0 || counts["A"] != 0 {
		t.Errorf("empty tally = %v", counts)
	}
}
