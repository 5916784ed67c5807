package aiplan

import "github.com/abhisek/studyplan/internal/llm"

// PlanSchema defines the JSON schema the AI schedule must conform to.
var PlanSchema = &llm.Schema{
	Name:        "study-plan",
	Description: "A multi-week study schedule with insights and per-week study blocks",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"insights": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"priorityReasoning": map[string]any{
						"type":        "string",
						"description": "Explanation of the priority logic",
					},
					"studyTips": map[string]any{
						"type":        "array",
						"items":       map[string]any{"type": "string"},
						"description": "5-7 actionable study tips",
					},
					"potentialChallenges": map[string]any{
						"type":        "array",
						"items":       map[string]any{"type": "string"},
						"description": "3-5 likely challenges",
					},
					"balancingStrategy": map[string]any{
						"type":        "string",
						"description": "How subjects are balanced across the schedule",
					},
				},
				"required": []any{"priorityReasoning", "studyTips", "potentialChallenges", "balancingStrategy"},
			},
			"weeklySchedules": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"weekNumber": map[string]any{"type": "integer"},
						"weeklyGoals": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"studyBlocks": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"subjectName": map[string]any{"type": "string"},
									"topics": map[string]any{
										"type":  "array",
										"items": map[string]any{"type": "string"},
									},
									"duration": map[string]any{
										"type":        "integer",
										"description": "Session length in minutes",
									},
									"type": map[string]any{
										"type": "string",
										"enum": []any{"learning", "practice", "revision", "assessment-prep"},
									},
									"dayOfWeek": map[string]any{
										"type":        "integer",
										"description": "Day offset within the week, 0 = Monday",
									},
								},
								"required": []any{"subjectName", "duration", "type", "dayOfWeek"},
							},
						},
					},
					"required": []any{"weekNumber", "weeklyGoals", "studyBlocks"},
				},
			},
		},
		"required": []any{"insights", "weeklySchedules"},
	},
}
