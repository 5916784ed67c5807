package store

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/abhisek/studyplan/internal/planner"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestRecordRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.RecordRepo()
	ctx := context.Background()

	// Absent key reads as nil without error.
	raw, err := repo.Get(ctx, KeyPlan)
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if raw != nil {
		t.Fatal("expected nil for absent key")
	}

	plan := planner.StudyPlan{
		ID:         "plan-1",
		TargetDate: "2026-03-16",
		TotalWeeks: 2,
		TotalHours: 12,
		Subjects: []planner.Subject{
			{ID: "math", Name: "Mathematics", Priority: planner.PriorityHigh, ConfidenceLevel: 2},
		},
		WeeklySchedules: []planner.WeeklySchedule{{
			WeekNumber: 1,
			StartDate:  "2026-03-02",
			EndDate:    "2026-03-08",
			StudyBlocks: []planner.StudyBlock{{
				ID: "b1", SubjectID: "math", SubjectName: "Mathematics",
				Date: "2026-03-02", StartTime: "09:00", EndTime: "10:00",
				Duration: 60, Topics: []string{"Chapter 1"}, Type: planner.BlockLearning,
			}},
			WeeklyGoals: []string{"Establish consistent study routine"},
		}},
		HourDistribution: map[string]float64{"math": 12},
	}

	if err := repo.Set(ctx, KeyPlan, plan); err != nil {
		t.Fatalf("set: %v", err)
	}

	raw, err = repo.Get(ctx, KeyPlan)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	var got planner.StudyPlan
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(got, plan) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, plan)
	}
}

func TestRecordUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.RecordRepo()
	ctx := context.Background()

	type blob struct {
		Value string `json:"value"`
	}

	if err := repo.Set(ctx, KeyTheme, blob{Value: "dark"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.Set(ctx, KeyTheme, blob{Value: "light"}); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	raw, err := repo.Get(ctx, KeyTheme)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	var got blob
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Value != "light" {
		t.Errorf("value = %q, want light (last write wins)", got.Value)
	}
}

func TestRecordRemove(t *testing.T) {
	s := openTestStore(t)
	repo := s.RecordRepo()
	ctx := context.Background()

	if err := repo.Set(ctx, KeyProfile, map[string]string{"name": "Asha"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.Remove(ctx, KeyProfile); err != nil {
		t.Fatalf("remove: %v", err)
	}

	raw, err := repo.Get(ctx, KeyProfile)
	if err != nil {
		t.Fatalf("get after remove: %v", err)
	}
	if raw != nil {
		t.Error("record survived removal")
	}

	// Removing an absent key is a no-op.
	if err := repo.Remove(ctx, KeyProfile); err != nil {
		t.Errorf("remove absent key: %v", err)
	}
}

func TestCompletionEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, blockID := range []string{"b1", "b2", "b3"} {
		err := repo.AppendCompletion(ctx, CompletionEventData{
			BlockID:         blockID,
			SubjectID:       "math",
			DurationMinutes: 60 + i,
			LogDate:         "2026-03-02",
		})
		if err != nil {
			t.Fatalf("append %s: %v", blockID, err)
		}
	}

	events, err := repo.QueryCompletions(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}

	// Newest first, with strictly increasing sequences underneath.
	if events[0].BlockID != "b3" {
		t.Errorf("first event block = %s, want b3", events[0].BlockID)
	}
	for i := 1; i < len(events); i++ {
		if events[i-1].Sequence <= events[i].Sequence {
			t.Errorf("sequences not descending: %d then %d", events[i-1].Sequence, events[i].Sequence)
		}
	}

	limited, err := repo.QueryCompletions(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 1 || limited[0].BlockID != "b3" {
		t.Errorf("limited query = %+v", limited)
	}
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "gemini",
		Model:        "gemini-flash",
		Purpose:      "plan-gen",
		InputTokens:  100,
		OutputTokens: 50,
		LatencyMs:    1200,
		Success:      true,
		RequestBody:  `{"prompt":"plan"}`,
		ResponseBody: `{"weeklySchedules":[]}`,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	e := events[0]
	if e.Provider != "gemini" || e.Purpose != "plan-gen" || !e.Success {
		t.Errorf("event = %+v", e)
	}
	if e.RequestBody == "" || e.ResponseBody == "" {
		t.Error("request/response bodies not persisted")
	}

	got, err := repo.GetLLMEvent(ctx, e.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Model != "gemini-flash" {
		t.Errorf("GetLLMEvent = %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown event ID")
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appends := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-flash", Purpose: "plan-gen", InputTokens: 100, OutputTokens: 40, LatencyMs: 1000, Success: true},
		{Provider: "gemini", Model: "gemini-flash", Purpose: "plan-gen", InputTokens: 200, OutputTokens: 60, LatencyMs: 2000, Success: true},
		{Provider: "openai", Model: "gpt-4o", Purpose: "other", InputTokens: 50, OutputTokens: 10, LatencyMs: 500, Success: true},
	}
	for i, data := range appends {
		if err := repo.AppendLLMRequest(ctx, data); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("got %d purpose groups, want 2", len(byPurpose))
	}
	// Sorted by key: "other" before "plan-gen".
	planGen := byPurpose[1]
	if planGen.Purpose != "plan-gen" || planGen.Calls != 2 {
		t.Errorf("plan-gen stat = %+v", planGen)
	}
	if planGen.InputTokens != 300 || planGen.OutputTokens != 100 {
		t.Errorf("plan-gen tokens = %d in / %d out", planGen.InputTokens, planGen.OutputTokens)
	}
	if planGen.AvgLatencyMs != 1500 {
		t.Errorf("plan-gen avg latency = %d, want 1500", planGen.AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("got %d model groups, want 2", len(byModel))
	}
	for _, stat := range byModel {
		if stat.Model == "" {
			t.Errorf("model group missing model name: %+v", stat)
		}
	}
}

func TestSequenceSpansEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "plan-gen"}); err != nil {
		t.Fatalf("append llm: %v", err)
	}
	if err := repo.AppendCompletion(ctx, CompletionEventData{BlockID: "b1", SubjectID: "math", DurationMinutes: 60, LogDate: "2026-03-02"}); err != nil {
		t.Fatalf("append completion: %v", err)
	}

	llmEvents, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query llm: %v", err)
	}
	completions, err := repo.QueryCompletions(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query completions: %v", err)
	}

	if completions[0].Sequence <= llmEvents[0].Sequence {
		t.Errorf("completion sequence %d not after LLM sequence %d",
			completions[0].Sequence, llmEvents[0].Sequence)
	}
}
