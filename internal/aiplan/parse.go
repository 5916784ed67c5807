package aiplan

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// aiPlanOutput is the wire shape of a model-generated schedule.
type aiPlanOutput struct {
	Insights struct {
		PriorityReasoning   string   `json:"priorityReasoning"`
		StudyTips           []string `json:"studyTips"`
		PotentialChallenges []string `json:"potentialChallenges"`
		BalancingStrategy   string   `json:"balancingStrategy"`
	} `json:"insights"`
	WeeklySchedules []aiWeek `json:"weeklySchedules"`
}

type aiWeek struct {
	WeekNumber  int       `json:"weekNumber"`
	WeeklyGoals []string  `json:"weeklyGoals"`
	StudyBlocks []aiBlock `json:"studyBlocks"`
}

type aiBlock struct {
	SubjectName string   `json:"subjectName"`
	Topics      []string `json:"topics"`
	Duration    int      `json:"duration"`
	Type        string   `json:"type"`
	DayOfWeek   int      `json:"dayOfWeek"`
}

var errNoJSON = errors.New("no JSON object in response")

// extractJSON pulls the first balanced top-level JSON object out of free
// text. Models occasionally wrap structured output in prose or fences
// even when a schema was requested.
func extractJSON(text string) (json.RawMessage, error) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return nil, errNoJSON
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return json.RawMessage(text[start : i+1]), nil
			}
		}
	}
	return nil, errNoJSON
}

// parsePlanOutput decodes a model response into the wire shape, tolerating
// surrounding prose.
func parsePlanOutput(content json.RawMessage) (*aiPlanOutput, error) {
	var out aiPlanOutput
	if err := json.Unmarshal(content, &out); err == nil && len(out.WeeklySchedules) > 0 {
		return &out, nil
	}

	// The content may be a raw-text response wrapping the JSON, or a JSON
	// string containing it.
	text := string(content)
	var asString string
	if err := json.Unmarshal(content, &asString); err == nil {
		text = asString
	}

	raw, err := extractJSON(text)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode plan output: %w", err)
	}
	if len(out.WeeklySchedules) == 0 {
		return nil, errors.New("plan output has no weekly schedules")
	}
	return &out, nil
}
