package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/studyplan/ent"
	"github.com/abhisek/studyplan/ent/record"
)

// recordRepo implements RecordRepo using the ent client.
type recordRepo struct {
	client *ent.Client
}

func (r *recordRepo) Get(ctx context.Context, key string) (json.RawMessage, error) {
	rec, err := r.client.Record.Query().
		Where(record.Key(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query record %q: %w", key, err)
	}

	b, err := json.Marshal(rec.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal record %q: %w", key, err)
	}
	return b, nil
}

func (r *recordRepo) Set(ctx context.Context, key string, value any) error {
	dataMap, err := valueToMap(value)
	if err != nil {
		return fmt.Errorf("marshal record %q: %w", key, err)
	}

	// Last-write-wins upsert.
	n, err := r.client.Record.Update().
		Where(record.Key(key)).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update record %q: %w", key, err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.Record.Create().
		SetKey(key).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create record %q: %w", key, err)
	}
	return nil
}

func (r *recordRepo) Remove(ctx context.Context, key string) error {
	_, err := r.client.Record.Delete().
		Where(record.Key(key)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete record %q: %w", key, err)
	}
	return nil
}

// valueToMap converts an arbitrary value to map[string]any for ent JSON
// storage.
func valueToMap(value any) (map[string]any, error) {
	b, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}
