package store

import (
	"context"
	"fmt"

	"github.com/abhisek/studyplan/ent"
	"github.com/abhisek/studyplan/ent/completionevent"
)

func (r *eventRepo) AppendCompletion(ctx context.Context, data CompletionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.CompletionEvent.Create().
		SetSequence(seqNum).
		SetBlockID(data.BlockID).
		SetSubjectID(data.SubjectID).
		SetDurationMinutes(data.DurationMinutes).
		SetLogDate(data.LogDate).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save completion event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryCompletions(ctx context.Context, opts QueryOpts) ([]CompletionEventRecord, error) {
	q := r.client.CompletionEvent.Query().
		Order(ent.Desc(completionevent.FieldSequence))
	if opts.After > 0 {
		q = q.Where(completionevent.SequenceGT(opts.After))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query completion events: %w", err)
	}

	records := make([]CompletionEventRecord, len(events))
	for i, e := range events {
		records[i] = CompletionEventRecord{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			CompletionEventData: CompletionEventData{
				BlockID:         e.BlockID,
				SubjectID:       e.SubjectID,
				DurationMinutes: e.DurationMinutes,
				LogDate:         e.LogDate,
			},
		}
	}
	return records, nil
}
