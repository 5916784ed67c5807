package aiplan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/studyplan/internal/llm"
	"github.com/abhisek/studyplan/internal/planner"
	"github.com/abhisek/studyplan/internal/student"
)

func fixedClock() planner.Clock {
	now := time.Date(2026, time.March, 4, 10, 0, 0, 0, time.UTC)
	return func() time.Time { return now }
}

func sequentialIDs() planner.IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func testService(provider llm.Provider) *Service {
	svc := NewService(provider, DefaultConfig())
	svc.now = fixedClock()
	svc.newID = sequentialIDs()
	svc.fallback = planner.New(sequentialIDs(), fixedClock())
	return svc
}

func testRequest() planner.Request {
	return planner.Request{
		Subjects: []planner.Subject{
			{ID: "math", Name: "Mathematics", Priority: planner.PriorityHigh, ConfidenceLevel: 2},
			{ID: "art", Name: "Art History", Priority: planner.PriorityLow, ConfidenceLevel: 4},
		},
		Preferences: planner.Preferences{
			DailyStudyHours:  2,
			PreferredSlots:   []planner.TimeSlot{planner.SlotMorning},
			StudyDaysPerWeek: 3,
		},
		TargetDate: time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC),
	}
}

func TestGenerateUsesAIWhenAvailable(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validPlanJSON)})
	svc := testService(mock)

	plan, usedAI, err := svc.Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if !usedAI {
		t.Fatal("usedAI = false, want true")
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider called %d times, want 1", mock.CallCount())
	}

	// The model's narrative survives into the plan.
	if plan.Insights.PriorityReasoning != "Math first" {
		t.Errorf("PriorityReasoning = %q", plan.Insights.PriorityReasoning)
	}

	// Week 1 anchors to the Monday of the generation week.
	week := plan.WeeklySchedules[0]
	if week.StartDate != "2026-03-02" {
		t.Errorf("week 1 starts %s, want 2026-03-02", week.StartDate)
	}
	block := week.StudyBlocks[0]
	if block.SubjectID != "math" {
		t.Errorf("block subject ID = %q, want math (resolved by name)", block.SubjectID)
	}
	if block.Date != "2026-03-02" {
		t.Errorf("block date = %s, want 2026-03-02 (dayOfWeek 0)", block.Date)
	}
	if block.StartTime != "09:00" {
		t.Errorf("block start = %s, want 09:00", block.StartTime)
	}

	// The hour distribution is computed locally, not taken from the model.
	if len(plan.HourDistribution) != 2 {
		t.Errorf("HourDistribution has %d entries, want 2", len(plan.HourDistribution))
	}
}

func TestGenerateFallsBackOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("backend down")})
	svc := testService(mock)

	plan, usedAI, err := svc.Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if usedAI {
		t.Error("usedAI = true after provider failure")
	}
	if plan.TotalWeeks != 2 {
		t.Errorf("fallback TotalWeeks = %d, want 2", plan.TotalWeeks)
	}
	if len(plan.WeeklySchedules[0].StudyBlocks) != 6 {
		t.Errorf("fallback week 1 has %d blocks, want 6", len(plan.WeeklySchedules[0].StudyBlocks))
	}
}

func TestGenerateFallsBackOnMalformedOutput(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`"no plan here"`)})
	svc := testService(mock)

	plan, usedAI, err := svc.Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if usedAI {
		t.Error("usedAI = true for malformed output")
	}
	if plan == nil || plan.TotalWeeks != 2 {
		t.Error("fallback did not produce a plan")
	}
}

func TestGenerateFallsBackOnUnknownSubjects(t *testing.T) {
	// Valid shape, but no block matches a requested subject.
	output := `{
		"insights": {"priorityReasoning": "", "studyTips": [], "potentialChallenges": [], "balancingStrategy": ""},
		"weeklySchedules": [{
			"weekNumber": 1,
			"weeklyGoals": [],
			"studyBlocks": [{"subjectName": "Chemistry", "duration": 60, "type": "learning", "dayOfWeek": 0}]
		}]
	}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(output)})
	svc := testService(mock)

	_, usedAI, err := svc.Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if usedAI {
		t.Error("usedAI = true though no subject matched")
	}
}

func TestGenerateNoProvider(t *testing.T) {
	svc := testService(nil)

	plan, usedAI, err := svc.Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if usedAI {
		t.Error("usedAI = true with no provider")
	}
	if plan.TotalWeeks != 2 {
		t.Errorf("TotalWeeks = %d, want 2", plan.TotalWeeks)
	}
}

func TestGenerateValidationErrorsSurface(t *testing.T) {
	svc := testService(nil)

	req := testRequest()
	req.Subjects = nil
	if _, _, err := svc.Generate(context.Background(), req); !errors.Is(err, planner.ErrNoSubjects) {
		t.Errorf("got %v, want ErrNoSubjects", err)
	}

	req = testRequest()
	req.TargetDate = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	if _, _, err := svc.Generate(context.Background(), req); !errors.Is(err, planner.ErrTargetNotFuture) {
		t.Errorf("got %v, want ErrTargetNotFuture", err)
	}
}

func TestGenerateRequestShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validPlanJSON)})
	svc := testService(mock)

	if _, _, err := svc.Generate(context.Background(), testRequest()); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	req := mock.Calls[0]
	if req.Schema != PlanSchema {
		t.Error("request did not carry the plan schema")
	}
	if req.System == "" {
		t.Error("request has no system prompt")
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != llm.RoleUser {
		t.Errorf("messages = %+v, want one user message", req.Messages)
	}
	if req.MaxTokens != DefaultConfig().MaxTokens {
		t.Errorf("MaxTokens = %d, want %d", req.MaxTokens, DefaultConfig().MaxTokens)
	}
}

func TestGeneratePromptCarriesProfile(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validPlanJSON)})
	svc := testService(mock)
	svc.SetStudent(&student.Profile{Name: "Priya", EducationLevel: "undergraduate", ExamName: "GATE"})

	if _, _, err := svc.Generate(context.Background(), testRequest()); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"Priya", "undergraduate", "GATE"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
