package aiplan

import (
	"encoding/json"
	"testing"
)

const validPlanJSON = `{
	"insights": {
		"priorityReasoning": "Math first",
		"studyTips": ["tip one"],
		"potentialChallenges": ["challenge one"],
		"balancingStrategy": "alternate subjects"
	},
	"weeklySchedules": [{
		"weekNumber": 1,
		"weeklyGoals": ["settle in"],
		"studyBlocks": [{
			"subjectName": "Mathematics",
			"topics": ["Algebra"],
			"duration": 60,
			"type": "learning",
			"dayOfWeek": 0
		}]
	}]
}`

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"bare object", `{"a":1}`, `{"a":1}`, false},
		{"leading prose", `Here is your plan: {"a":1}`, `{"a":1}`, false},
		{"trailing prose", `{"a":1} hope that helps!`, `{"a":1}`, false},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`, false},
		{"nested objects", `{"a":{"b":{"c":1}}}`, `{"a":{"b":{"c":1}}}`, false},
		{"braces inside strings", `{"a":"}{"}`, `{"a":"}{"}`, false},
		{"escaped quotes", `{"a":"say \"hi\" {now}"}`, `{"a":"say \"hi\" {now}"}`, false},
		{"no object", `sorry, cannot help`, "", true},
		{"unbalanced", `{"a":1`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractJSON(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("extractJSON() = %s, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("extractJSON() error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("extractJSON() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParsePlanOutput(t *testing.T) {
	t.Run("clean JSON", func(t *testing.T) {
		out, err := parsePlanOutput(json.RawMessage(validPlanJSON))
		if err != nil {
			t.Fatalf("parsePlanOutput() error: %v", err)
		}
		if len(out.WeeklySchedules) != 1 {
			t.Fatalf("got %d weeks, want 1", len(out.WeeklySchedules))
		}
		if out.WeeklySchedules[0].StudyBlocks[0].SubjectName != "Mathematics" {
			t.Errorf("subject = %q", out.WeeklySchedules[0].StudyBlocks[0].SubjectName)
		}
		if out.Insights.PriorityReasoning != "Math first" {
			t.Errorf("priorityReasoning = %q", out.Insights.PriorityReasoning)
		}
	})

	t.Run("JSON wrapped in a string response", func(t *testing.T) {
		wrapped, _ := json.Marshal("Sure! " + validPlanJSON)
		out, err := parsePlanOutput(wrapped)
		if err != nil {
			t.Fatalf("parsePlanOutput() error: %v", err)
		}
		if len(out.WeeklySchedules) != 1 {
			t.Errorf("got %d weeks, want 1", len(out.WeeklySchedules))
		}
	})

	t.Run("no schedules", func(t *testing.T) {
		if _, err := parsePlanOutput(json.RawMessage(`{"insights":{},"weeklySchedules":[]}`)); err == nil {
			t.Error("empty schedule accepted, want error")
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := parsePlanOutput(json.RawMessage(`"I do not know"`)); err == nil {
			t.Error("garbage accepted, want error")
		}
	})
}
