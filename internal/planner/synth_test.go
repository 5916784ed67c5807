package planner

import (
	"fmt"
	"testing"
	"time"
)

// sequentialIDs returns an IDGenerator yielding id-1, id-2, ...
func sequentialIDs() IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func TestSlotTime(t *testing.T) {
	tests := []struct {
		slot   TimeSlot
		offset int
		want   string
	}{
		{SlotMorning, 0, "09:00"},
		{SlotMorning, 2, "11:00"},
		{SlotAfternoon, 0, "14:00"},
		{SlotEvening, 1, "19:00"},
		{SlotNight, 0, "20:00"},
		{SlotNight, 5, "01:00"}, // wraps past midnight
		{"bogus", 0, "14:00"},   // unknown slot falls back to afternoon
	}

	for _, tt := range tests {
		got := SlotTime(tt.slot, tt.offset)
		if got != tt.want {
			t.Errorf("SlotTime(%q, %d) = %q, want %q", tt.slot, tt.offset, got, tt.want)
		}
	}
}

func TestSynthesizeDayRespectsDailyBudget(t *testing.T) {
	ranked := []Subject{
		{ID: "a", Name: "A"},
		{ID: "b", Name: "B"},
		{ID: "c", Name: "C"},
		{ID: "d", Name: "D"},
	}
	prefs := Preferences{DailyStudyHours: 2}

	blocks := synthesizeDay(ranked, nil, prefs, date(2026, time.March, 2), 0, 4, 0, sequentialIDs())

	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	// Budget goes to the top-ranked subjects.
	if blocks[0].SubjectID != "a" || blocks[1].SubjectID != "b" {
		t.Errorf("blocks went to %s, %s; want a, b", blocks[0].SubjectID, blocks[1].SubjectID)
	}
	// Consecutive one-hour slots.
	if blocks[0].StartTime != "14:00" || blocks[1].StartTime != "15:00" {
		t.Errorf("start times %s, %s; want 14:00, 15:00", blocks[0].StartTime, blocks[1].StartTime)
	}
	for _, b := range blocks {
		if b.Duration != SessionMinutes {
			t.Errorf("block duration %d, want %d", b.Duration, SessionMinutes)
		}
	}
}

func TestSynthesizeDayBudgetExceedsSubjects(t *testing.T) {
	ranked := []Subject{{ID: "only", Name: "Only"}}
	prefs := Preferences{DailyStudyHours: 4}

	blocks := synthesizeDay(ranked, nil, prefs, date(2026, time.March, 2), 1, 4, 0, sequentialIDs())

	// One pass over the ranked list; a single subject yields one block
	// even with budget to spare.
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
}

func TestSessionTypePrecedence(t *testing.T) {
	day := date(2026, time.March, 2)
	assessments := []Assessment{
		{ID: "x", SubjectID: "math", Type: AssessmentTest, Date: "2026-03-06"},
	}

	tests := []struct {
		name      string
		subjectID string
		weekIdx   int
		total     int
		dayIdx    int
		rankIdx   int
		want      BlockType
	}{
		{"assessment prep wins", "math", 3, 4, 2, 0, BlockAssessmentPrep},
		{"final week revision", "history", 3, 4, 0, 0, BlockRevision},
		{"every third slot practices", "history", 0, 4, 1, 1, BlockPractice},
		{"default learning", "history", 0, 4, 0, 0, BlockLearning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sessionType(tt.subjectID, day, assessments, tt.weekIdx, tt.total, tt.dayIdx, tt.rankIdx)
			if got != tt.want {
				t.Errorf("sessionType() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHasUpcomingAssessment(t *testing.T) {
	assessments := []Assessment{
		{SubjectID: "math", Date: "2026-03-09"},
		{SubjectID: "art", Date: "2026-02-20"},
		{SubjectID: "bio", Date: "not-a-date"},
	}

	tests := []struct {
		name      string
		subjectID string
		day       time.Time
		want      bool
	}{
		{"within window", "math", date(2026, time.March, 4), true},
		{"same day", "math", date(2026, time.March, 9), true},
		{"window edge", "math", date(2026, time.March, 2), true},
		{"too far out", "math", date(2026, time.March, 1), false},
		{"already past", "art", date(2026, time.March, 4), false},
		{"other subject", "history", date(2026, time.March, 4), false},
		{"unparseable date skipped", "bio", date(2026, time.March, 4), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hasUpcomingAssessment(tt.subjectID, tt.day, assessments)
			if got != tt.want {
				t.Errorf("hasUpcomingAssessment() = %v, want %v", got, tt.want)
			}
		})
	}
}
