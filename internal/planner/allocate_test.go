package planner

import (
	"math"
	"testing"
)

func TestDistributeHoursSharesSumToTotal(t *testing.T) {
	subjects := []Subject{
		{ID: "a", Priority: PriorityCritical, ConfidenceLevel: 1},
		{ID: "b", Priority: PriorityMedium, ConfidenceLevel: 3},
		{ID: "c", Priority: PriorityLow, ConfidenceLevel: 5},
	}

	dist := DistributeHours(subjects, 40)

	var sum float64
	for _, h := range dist {
		sum += h
	}
	if math.Abs(sum-40) > 1e-9 {
		t.Errorf("shares sum to %f, want 40", sum)
	}
}

func TestDistributeHoursWeighting(t *testing.T) {
	subjects := []Subject{
		{ID: "weak-critical", Priority: PriorityCritical, ConfidenceLevel: 1},
		{ID: "strong-low", Priority: PriorityLow, ConfidenceLevel: 5},
	}

	dist := DistributeHours(subjects, 24)

	// weight = (6 - confidence) * priorityWeight: 5*4 = 20 vs 1*1 = 1.
	if dist["weak-critical"] <= dist["strong-low"] {
		t.Errorf("weak critical subject got %f hours, strong low subject got %f",
			dist["weak-critical"], dist["strong-low"])
	}
	want := 24.0 * 20 / 21
	if math.Abs(dist["weak-critical"]-want) > 1e-9 {
		t.Errorf("weak-critical share = %f, want %f", dist["weak-critical"], want)
	}
}

func TestDistributeHoursEmpty(t *testing.T) {
	dist := DistributeHours(nil, 40)
	if len(dist) != 0 {
		t.Errorf("got %d shares for no subjects", len(dist))
	}
}

func TestEstimateWorkload(t *testing.T) {
	tests := []struct {
		name     string
		subjects []Subject
		want     float64
	}{
		{
			name:     "no subjects",
			subjects: nil,
			want:     0,
		},
		{
			name: "single medium subject",
			subjects: []Subject{{
				Priority:        PriorityMedium,
				ConfidenceLevel: 3,
				Topics: []Topic{
					{TimeEstimate: 120},
					{TimeEstimate: 60},
				},
			}},
			// 3h * (6-3) * 0.5 * 1.0
			want: 4.5,
		},
		{
			name: "critical subject doubles",
			subjects: []Subject{{
				Priority:        PriorityCritical,
				ConfidenceLevel: 5,
				Topics:          []Topic{{TimeEstimate: 60}},
			}},
			// 1h * 1 * 0.5 * 2.0
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateWorkload(tt.subjects)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("EstimateWorkload() = %f, want %f", got, tt.want)
			}
		})
	}
}
