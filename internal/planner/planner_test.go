package planner

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"
)

func testRequest() Request {
	return Request{
		Subjects: []Subject{
			{ID: "math", Name: "Mathematics", Priority: PriorityHigh, ConfidenceLevel: 2},
			{ID: "art", Name: "Art History", Priority: PriorityLow, ConfidenceLevel: 4},
		},
		Preferences: Preferences{
			DailyStudyHours:  2,
			PreferredSlots:   []TimeSlot{SlotMorning},
			StudyDaysPerWeek: 3,
			WeekendStudy:     false,
		},
		TargetDate: time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC),
	}
}

func testPlanner() *Planner {
	// Wednesday morning, two calendar weeks before the target.
	now := time.Date(2026, time.March, 4, 10, 0, 0, 0, time.UTC)
	return New(sequentialIDs(), func() time.Time { return now })
}

func TestGenerate(t *testing.T) {
	plan, err := testPlanner().Generate(testRequest())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if plan.TotalWeeks != 2 {
		t.Errorf("TotalWeeks = %d, want 2", plan.TotalWeeks)
	}
	if len(plan.WeeklySchedules) != 2 {
		t.Fatalf("got %d weekly schedules, want 2", len(plan.WeeklySchedules))
	}

	week1, week2 := plan.WeeklySchedules[0], plan.WeeklySchedules[1]

	// Monday-aligned contiguous windows.
	if week1.StartDate != "2026-03-02" || week1.EndDate != "2026-03-08" {
		t.Errorf("week 1 spans %s to %s, want 2026-03-02 to 2026-03-08", week1.StartDate, week1.EndDate)
	}
	if week2.StartDate != "2026-03-09" || week2.EndDate != "2026-03-15" {
		t.Errorf("week 2 spans %s to %s, want 2026-03-09 to 2026-03-15", week2.StartDate, week2.EndDate)
	}

	// 3 active days x 2 subjects fitting the 2-hour budget.
	if len(week1.StudyBlocks) != 6 {
		t.Fatalf("week 1 has %d blocks, want 6", len(week1.StudyBlocks))
	}
	if plan.TotalHours != 12 {
		t.Errorf("TotalHours = %f, want 12", plan.TotalHours)
	}
	if week1.TotalHours != 6 {
		t.Errorf("week 1 TotalHours = %f, want 6", week1.TotalHours)
	}

	// Ranked order within each day: the weak high-priority subject first.
	first := week1.StudyBlocks[0]
	if first.SubjectID != "math" {
		t.Errorf("first block subject = %s, want math", first.SubjectID)
	}
	if first.Date != "2026-03-02" || first.StartTime != "09:00" || first.EndTime != "10:00" {
		t.Errorf("first block at %s %s-%s, want 2026-03-02 09:00-10:00",
			first.Date, first.StartTime, first.EndTime)
	}

	// Final week is revision throughout (no assessments configured).
	for _, b := range week2.StudyBlocks {
		if b.Type != BlockRevision {
			t.Errorf("final-week block type = %q, want revision", b.Type)
		}
	}
}

func TestGenerateHourDistribution(t *testing.T) {
	plan, err := testPlanner().Generate(testRequest())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	// Pool is 2 weeks x 3 days x 2 hours = 12; math weighs (6-2)*3 = 12
	// against art's (6-4)*1 = 2.
	wantMath := 12.0 * 12 / 14
	if got := plan.HourDistribution["math"]; math.Abs(got-wantMath) > 1e-9 {
		t.Errorf("math share = %f, want %f", got, wantMath)
	}

	var sum float64
	for _, h := range plan.HourDistribution {
		sum += h
	}
	if math.Abs(sum-12) > 1e-9 {
		t.Errorf("distribution sums to %f, want 12", sum)
	}

	// Subjects carry their allocation, in ranked order.
	if plan.Subjects[0].ID != "math" {
		t.Errorf("subjects[0] = %s, want math", plan.Subjects[0].ID)
	}
	if got := plan.Subjects[0].HoursAllocated; math.Abs(got-wantMath) > 1e-9 {
		t.Errorf("subjects[0].HoursAllocated = %f, want %f", got, wantMath)
	}
}

func TestGenerateWeeklyGoals(t *testing.T) {
	plan, err := testPlanner().Generate(testRequest())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	week1 := plan.WeeklySchedules[0].WeeklyGoals
	if len(week1) != 3 || week1[0] != "Establish consistent study routine" {
		t.Errorf("week 1 goals = %v", week1)
	}
	week2 := plan.WeeklySchedules[1].WeeklyGoals
	if len(week2) != 3 || week2[0] != "Focus on revision and practice tests" {
		t.Errorf("week 2 goals = %v", week2)
	}
	for _, goals := range [][]string{week1, week2} {
		if goals[len(goals)-1] != "Maintain daily study schedule" {
			t.Errorf("goals missing daily-schedule entry: %v", goals)
		}
	}
}

func TestGenerateAssessmentPrep(t *testing.T) {
	req := testRequest()
	req.Assessments = []Assessment{
		{ID: "t1", SubjectID: "math", Type: AssessmentTest, Date: "2026-03-10", Weight: 30},
	}

	plan, err := testPlanner().Generate(req)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	// Every math block within 7 days before the test preps for it; art
	// blocks are untouched.
	prepFound := false
	for _, week := range plan.WeeklySchedules {
		for _, b := range week.StudyBlocks {
			inWindow := b.Date >= "2026-03-03" && b.Date <= "2026-03-10"
			if b.SubjectID == "math" && inWindow {
				prepFound = true
				if b.Type != BlockAssessmentPrep {
					t.Errorf("math block on %s has type %q, want assessment-prep", b.Date, b.Type)
				}
			}
			if b.SubjectID == "art" && b.Type == BlockAssessmentPrep {
				t.Errorf("art block on %s marked assessment-prep", b.Date)
			}
		}
	}
	if !prepFound {
		t.Error("no math blocks fell inside the assessment window")
	}
}

func TestGenerateNoAssessmentsNoPrep(t *testing.T) {
	plan, err := testPlanner().Generate(testRequest())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	for _, week := range plan.WeeklySchedules {
		for _, b := range week.StudyBlocks {
			if b.Type == BlockAssessmentPrep {
				t.Errorf("block on %s typed assessment-prep with no assessments", b.Date)
			}
		}
	}
}

func TestGenerateSingleSubjectCycling(t *testing.T) {
	req := testRequest()
	req.Subjects = req.Subjects[:1]
	req.Preferences = Preferences{DailyStudyHours: 1, StudyDaysPerWeek: 5}
	req.TargetDate = time.Date(2026, time.March, 30, 0, 0, 0, 0, time.UTC)

	plan, err := testPlanner().Generate(req)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	week := plan.WeeklySchedules[0]
	if len(week.StudyBlocks) != 5 {
		t.Fatalf("week 1 has %d blocks, want 5 (one per active day)", len(week.StudyBlocks))
	}
	for dayIdx, b := range week.StudyBlocks {
		if b.Duration != SessionMinutes {
			t.Errorf("day %d block duration = %d, want %d", dayIdx, b.Duration, SessionMinutes)
		}
		want := BlockLearning
		if dayIdx%3 == 2 {
			want = BlockPractice
		}
		if b.Type != want {
			t.Errorf("day %d block type = %q, want %q", dayIdx, b.Type, want)
		}
	}
}

func TestGenerateValidation(t *testing.T) {
	p := testPlanner()

	req := testRequest()
	req.Subjects = nil
	if _, err := p.Generate(req); !errors.Is(err, ErrNoSubjects) {
		t.Errorf("empty subjects: got %v, want ErrNoSubjects", err)
	}

	req = testRequest()
	req.TargetDate = time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	if _, err := p.Generate(req); !errors.Is(err, ErrTargetNotFuture) {
		t.Errorf("past target: got %v, want ErrTargetNotFuture", err)
	}

	req = testRequest()
	req.Subjects[0].ConfidenceLevel = 9
	if _, err := p.Generate(req); err == nil {
		t.Error("confidence 9 accepted, want error")
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	a, err := testPlanner().Generate(testRequest())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	b, err := testPlanner().Generate(testRequest())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if a.ID != b.ID || a.TotalHours != b.TotalHours || len(a.WeeklySchedules) != len(b.WeeklySchedules) {
		t.Fatal("two runs with the same clock and IDs diverged")
	}
	for wi := range a.WeeklySchedules {
		ab, bb := a.WeeklySchedules[wi].StudyBlocks, b.WeeklySchedules[wi].StudyBlocks
		if len(ab) != len(bb) {
			t.Fatalf("week %d block counts differ", wi)
		}
		for bi := range ab {
			if !reflect.DeepEqual(ab[bi], bb[bi]) {
				t.Errorf("week %d block %d differs: %+v vs %+v", wi, bi, ab[bi], bb[bi])
			}
		}
	}
}
