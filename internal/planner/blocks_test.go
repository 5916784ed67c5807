package planner

import (
	"testing"
	"time"
)

func twoWeekPlan(t *testing.T) *StudyPlan {
	t.Helper()
	plan, err := testPlanner().Generate(testRequest())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	return plan
}

func TestBlocksOn(t *testing.T) {
	plan := twoWeekPlan(t)

	monday := date(2026, time.March, 2)
	blocks := BlocksOn(plan, monday)
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks on Monday, want 2", len(blocks))
	}
	if blocks[0].StartTime > blocks[1].StartTime {
		t.Errorf("blocks out of order: %s after %s", blocks[0].StartTime, blocks[1].StartTime)
	}

	saturday := date(2026, time.March, 7)
	if got := BlocksOn(plan, saturday); len(got) != 0 {
		t.Errorf("got %d blocks on an inactive day, want 0", len(got))
	}
}

func TestUpcomingBlocks(t *testing.T) {
	plan := twoWeekPlan(t)
	now := date(2026, time.March, 4)

	upcoming := UpcomingBlocks(plan, now, 7)
	// Mar 4 plus the active days Mar 9-11, two blocks each.
	if len(upcoming) != 8 {
		t.Fatalf("got %d upcoming blocks, want 8", len(upcoming))
	}
	for i := 1; i < len(upcoming); i++ {
		prev, cur := upcoming[i-1], upcoming[i]
		if prev.Date > cur.Date || (prev.Date == cur.Date && prev.StartTime > cur.StartTime) {
			t.Errorf("upcoming blocks out of order at %d: %s %s after %s %s",
				i, cur.Date, cur.StartTime, prev.Date, prev.StartTime)
		}
	}

	// Completed blocks drop out.
	id := upcoming[0].ID
	if _, err := MarkComplete(plan, id, 0); err != nil {
		t.Fatalf("MarkComplete() error: %v", err)
	}
	after := UpcomingBlocks(plan, now, 7)
	if len(after) != 7 {
		t.Errorf("got %d upcoming blocks after completion, want 7", len(after))
	}
}

func TestMarkComplete(t *testing.T) {
	plan := twoWeekPlan(t)
	target := plan.WeeklySchedules[0].StudyBlocks[0]

	block, err := MarkComplete(plan, target.ID, 45)
	if err != nil {
		t.Fatalf("MarkComplete() error: %v", err)
	}
	if !block.Completed {
		t.Error("block not marked completed")
	}
	if block.ActualDuration != 45 {
		t.Errorf("ActualDuration = %d, want 45", block.ActualDuration)
	}

	// Mutation is visible in the plan itself.
	if !plan.WeeklySchedules[0].StudyBlocks[0].Completed {
		t.Error("completion not reflected in plan")
	}

	if _, err := MarkComplete(plan, "no-such-block", 0); err == nil {
		t.Error("unknown block ID accepted, want error")
	}
}

func TestMarkCompleteKeepsPlannedDuration(t *testing.T) {
	plan := twoWeekPlan(t)
	target := plan.WeeklySchedules[0].StudyBlocks[1]

	block, err := MarkComplete(plan, target.ID, 0)
	if err != nil {
		t.Fatalf("MarkComplete() error: %v", err)
	}
	if block.ActualDuration != 0 {
		t.Errorf("ActualDuration = %d, want 0 (planned duration stands)", block.ActualDuration)
	}
}

func TestProgressFor(t *testing.T) {
	plan := twoWeekPlan(t)
	week := plan.WeeklySchedules[0]

	p := ProgressFor(week)
	if p.Completed != 0 || p.Total != 6 || p.Percentage != 0 {
		t.Errorf("fresh week progress = %+v", p)
	}

	for _, b := range week.StudyBlocks[:3] {
		if _, err := MarkComplete(plan, b.ID, 0); err != nil {
			t.Fatalf("MarkComplete() error: %v", err)
		}
	}

	p = ProgressFor(plan.WeeklySchedules[0])
	if p.Completed != 3 || p.Percentage != 50 {
		t.Errorf("half-done week progress = %+v", p)
	}
}

func TestProgressForEmptyWeek(t *testing.T) {
	p := ProgressFor(WeeklySchedule{})
	if p.Total != 0 || p.Percentage != 0 {
		t.Errorf("empty week progress = %+v", p)
	}
}
