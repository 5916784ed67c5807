package progress

import (
	"testing"
	"time"
)

func TestLogSessionNewDay(t *testing.T) {
	day := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

	logs := LogSession(nil, day, Completion{BlockID: "b1", SubjectID: "math", Minutes: 60})

	if len(logs) != 1 {
		t.Fatalf("got %d logs, want 1", len(logs))
	}
	l := logs[0]
	if l.Date != "2026-03-10" {
		t.Errorf("Date = %s, want 2026-03-10", l.Date)
	}
	if l.TotalMinutes != 60 || l.Sessions != 1 {
		t.Errorf("TotalMinutes = %d, Sessions = %d, want 60 and 1", l.TotalMinutes, l.Sessions)
	}
	if l.SubjectBreakdown["math"] != 60 {
		t.Errorf("SubjectBreakdown[math] = %d, want 60", l.SubjectBreakdown["math"])
	}
	if len(l.CompletedBlocks) != 1 || l.CompletedBlocks[0] != "b1" {
		t.Errorf("CompletedBlocks = %v, want [b1]", l.CompletedBlocks)
	}
}

func TestLogSessionMergesSameDay(t *testing.T) {
	day := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

	logs := LogSession(nil, day, Completion{BlockID: "b1", SubjectID: "math", Minutes: 60})
	logs = LogSession(logs, day, Completion{BlockID: "b2", SubjectID: "math", Minutes: 30})
	logs = LogSession(logs, day.Add(2*time.Hour), Completion{BlockID: "b3", SubjectID: "art", Minutes: 45})

	if len(logs) != 1 {
		t.Fatalf("got %d logs, want 1 merged entry", len(logs))
	}
	l := logs[0]
	if l.TotalMinutes != 135 || l.Sessions != 3 {
		t.Errorf("TotalMinutes = %d, Sessions = %d, want 135 and 3", l.TotalMinutes, l.Sessions)
	}
	if l.SubjectBreakdown["math"] != 90 || l.SubjectBreakdown["art"] != 45 {
		t.Errorf("SubjectBreakdown = %v", l.SubjectBreakdown)
	}
	if len(l.CompletedBlocks) != 3 {
		t.Errorf("CompletedBlocks = %v, want 3 entries", l.CompletedBlocks)
	}
}

func TestLogSessionDoesNotModifyInput(t *testing.T) {
	day := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

	original := LogSession(nil, day, Completion{BlockID: "b1", SubjectID: "math", Minutes: 60})
	_ = LogSession(original, day, Completion{BlockID: "b2", SubjectID: "math", Minutes: 30})

	if original[0].TotalMinutes != 60 || original[0].Sessions != 1 {
		t.Errorf("input log modified: %+v", original[0])
	}
	if len(original[0].CompletedBlocks) != 1 {
		t.Errorf("input CompletedBlocks modified: %v", original[0].CompletedBlocks)
	}
}

func TestLogSessionSeparateDays(t *testing.T) {
	monday := time.Date(2026, time.March, 9, 9, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)

	logs := LogSession(nil, monday, Completion{BlockID: "b1", SubjectID: "math", Minutes: 60})
	logs = LogSession(logs, tuesday, Completion{BlockID: "b2", SubjectID: "math", Minutes: 60})

	if len(logs) != 2 {
		t.Fatalf("got %d logs, want 2", len(logs))
	}
}

func TestTodayLog(t *testing.T) {
	now := time.Date(2026, time.March, 10, 18, 0, 0, 0, time.UTC)
	logs := logsOn("2026-03-09", "2026-03-10")

	l, ok := TodayLog(logs, now)
	if !ok {
		t.Fatal("TodayLog() found nothing")
	}
	if l.Date != "2026-03-10" {
		t.Errorf("Date = %s, want 2026-03-10", l.Date)
	}

	if _, ok := TodayLog(logsOn("2026-03-09"), now); ok {
		t.Error("TodayLog() found an entry for a day with no activity")
	}
}
