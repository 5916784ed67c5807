// Package student holds the persisted student profile.
package student

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/studyplan/internal/store"
)

// Profile identifies who the plan is for. Everything is optional; the
// planner works without a profile.
type Profile struct {
	Name           string `json:"name"`
	EducationLevel string `json:"educationLevel,omitempty"`
	ExamName       string `json:"examName,omitempty"`
}

// Load reads the stored profile, or returns nil when none exists.
func Load(ctx context.Context, records store.RecordRepo) (*Profile, error) {
	raw, err := records.Get(ctx, store.KeyProfile)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var p Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &p, nil
}

// Save persists the profile, replacing any previous one.
func Save(ctx context.Context, records store.RecordRepo, p Profile) error {
	return records.Set(ctx, store.KeyProfile, p)
}
