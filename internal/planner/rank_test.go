package planner

import "testing"

func TestRank(t *testing.T) {
	subjects := []Subject{
		{ID: "a", Name: "Art", Priority: PriorityLow, ConfidenceLevel: 1},
		{ID: "b", Name: "Biology", Priority: PriorityHigh, ConfidenceLevel: 4},
		{ID: "c", Name: "Chemistry", Priority: PriorityHigh, ConfidenceLevel: 2},
		{ID: "d", Name: "Drama", Priority: PriorityCritical, ConfidenceLevel: 5},
	}

	ranked := Rank(subjects)

	want := []string{"d", "c", "b", "a"}
	for i, id := range want {
		if ranked[i].ID != id {
			t.Errorf("ranked[%d].ID = %q, want %q", i, ranked[i].ID, id)
		}
	}

	// Input order is preserved.
	if subjects[0].ID != "a" {
		t.Errorf("Rank modified its input: subjects[0].ID = %q", subjects[0].ID)
	}
}

func TestRankEqualPriorityOrdersByConfidence(t *testing.T) {
	subjects := []Subject{
		{ID: "confident", Priority: PriorityMedium, ConfidenceLevel: 5},
		{ID: "shaky", Priority: PriorityMedium, ConfidenceLevel: 1},
		{ID: "middling", Priority: PriorityMedium, ConfidenceLevel: 3},
	}

	ranked := Rank(subjects)

	want := []string{"shaky", "middling", "confident"}
	for i, id := range want {
		if ranked[i].ID != id {
			t.Errorf("ranked[%d].ID = %q, want %q", i, ranked[i].ID, id)
		}
	}
}

func TestRankIsStable(t *testing.T) {
	subjects := []Subject{
		{ID: "first", Priority: PriorityHigh, ConfidenceLevel: 3},
		{ID: "second", Priority: PriorityHigh, ConfidenceLevel: 3},
		{ID: "third", Priority: PriorityHigh, ConfidenceLevel: 3},
	}

	ranked := Rank(subjects)

	for i, id := range []string{"first", "second", "third"} {
		if ranked[i].ID != id {
			t.Errorf("ranked[%d].ID = %q, want %q", i, ranked[i].ID, id)
		}
	}
}

func TestRankDefaults(t *testing.T) {
	// Unknown priority ranks as medium; out-of-range confidence reads
	// as 3.
	subjects := []Subject{
		{ID: "mystery", Priority: "urgent", ConfidenceLevel: 0},
		{ID: "low", Priority: PriorityLow, ConfidenceLevel: 1},
		{ID: "high", Priority: PriorityHigh, ConfidenceLevel: 5},
	}

	ranked := Rank(subjects)

	want := []string{"high", "mystery", "low"}
	for i, id := range want {
		if ranked[i].ID != id {
			t.Errorf("ranked[%d].ID = %q, want %q", i, ranked[i].ID, id)
		}
	}
}
