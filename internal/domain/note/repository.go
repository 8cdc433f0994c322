package note

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"pronotes/internal/storage/kv"
)

// Repository persists the note collection as a single JSON array under the
// "pro_notes" key. Mutations follow a read-modify-write pass over the
// whole collection: the service loads everything via ListAll, edits the
// slice, and writes it back with ReplaceAll.
type Repository interface {
	ListAll(ctx context.Context) ([]Note, error)
	ReplaceAll(ctx context.Context, notes []Note) error
}

func NewRepo(store kv.Store) Repository {
	return &repository{store: store}
}

type repository struct {
	store kv.Store
}

func (r *repository) ListAll(ctx context.Context) ([]Note, error) {
	data, err := r.store.Get(ctx, kv.KeyNotes)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return []Note{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read notes: %w", err)
	}

	var notes []Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("decode notes: %w", err)
	}

	return notes, nil
}

func (r *repository) ReplaceAll(ctx context.Context, notes []Note) error {
	data, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("encode notes: %w", err)
	}

	if err := r.store.Set(ctx, kv.KeyNotes, data); err != nil {
		return fmt.Errorf("write notes: %w", err)
	}

	return nil
}
