package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/studyplan/internal/planner"
	"github.com/abhisek/studyplan/internal/progress"
	"github.com/abhisek/studyplan/internal/store"
)

// loadPlan reads the persisted study plan, or returns nil when none has
// been generated yet.
func loadPlan(ctx context.Context, records store.RecordRepo) (*planner.StudyPlan, error) {
	raw, err := records.Get(ctx, store.KeyPlan)
	if err != nil {
		return nil, fmt.Errorf("load plan: %w", err)
	}
	if raw == nil {
		return nil, nil
	}
	var plan planner.StudyPlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return nil, fmt.Errorf("decode plan: %w", err)
	}
	return &plan, nil
}

func savePlan(ctx context.Context, records store.RecordRepo, plan *planner.StudyPlan) error {
	if err := records.Set(ctx, store.KeyPlan, plan); err != nil {
		return fmt.Errorf("save plan: %w", err)
	}
	return nil
}

// loadProgress reads the persisted progress data. A missing record or a
// record belonging to another plan yields empty progress for planID.
func loadProgress(ctx context.Context, records store.RecordRepo, planID string) (*progress.Data, error) {
	raw, err := records.Get(ctx, store.KeyProgress)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	if raw == nil {
		return &progress.Data{PlanID: planID}, nil
	}
	var data progress.Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode progress: %w", err)
	}
	if data.PlanID != planID {
		return &progress.Data{PlanID: planID}, nil
	}
	return &data, nil
}

func saveProgress(ctx context.Context, records store.RecordRepo, data *progress.Data) error {
	if err := records.Set(ctx, store.KeyProgress, data); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}
