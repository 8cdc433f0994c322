package note

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	ListFor(ctx context.Context, owner string) ([]Note, error)
	Save(ctx context.Context, owner string, draft Draft) (Note, error)
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "note_service"),
	}
}

// ListFor returns the owner's notes, newest first (descending by id).
// An account without notes gets an empty slice, not an error.
func (s *Service) ListFor(ctx context.Context, owner string) ([]Note, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		s.log.Error("failed to list notes", "owner", owner, "error", err)
		return nil, fmt.Errorf("list notes: %w", err)
	}

	notes := make([]Note, 0, len(all))
	for _, n := range all {
		if n.Owner == owner {
			notes = append(notes, n)
		}
	}

	sort.Slice(notes, func(i, j int) bool { return notes[i].ID > notes[j].ID })

	return notes, nil
}

// Save creates or updates a note and persists the whole collection.
//
// The contract deliberately overwrites fields the editor has no say in:
// Owner is forced to the caller's active account regardless of any value in
// the draft, Date is refreshed to now on every save, and a blank Color
// falls back to DefaultColor. A draft without an id becomes a new note
// keyed by the current unix-millisecond timestamp; a draft with an id
// replaces the matching note in place.
func (s *Service) Save(ctx context.Context, owner string, draft Draft) (Note, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return Note{}, ErrEmptyTitle
	}

	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return Note{}, fmt.Errorf("list notes: %w", err)
	}

	stored := Note{
		ID:    draft.ID,
		Owner: owner,
		Title: draft.Title,
		Body:  draft.Body,
		Image: draft.Image,
		Color: draft.Color,
		Date:  time.Now(),
	}
	if stored.Color == "" {
		stored.Color = DefaultColor
	}

	if draft.ID == 0 {
		stored.ID = time.Now().UnixMilli()
		all = append(all, stored)
	} else {
		for i, n := range all {
			if n.ID == draft.ID {
				all[i] = stored
			}
		}
	}

	if err := s.repo.ReplaceAll(ctx, all); err != nil {
		s.log.Error("failed to save note", "note_id", stored.ID, "owner", owner, "error", err)
		return Note{}, fmt.Errorf("save note: %w", err)
	}

	s.log.Info("note saved", "note_id", stored.ID, "owner", owner)

	return stored, nil
}

// Delete removes the note with the given id. Deleting an id that does not
// exist is a no-op, not an error.
func (s *Service) Delete(ctx context.Context, id int64) error {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("list notes: %w", err)
	}

	kept := all[:0]
	for _, n := range all {
		if n.ID != id {
			kept = append(kept, n)
		}
	}

	if err := s.repo.ReplaceAll(ctx, kept); err != nil {
		s.log.Error("failed to delete note", "note_id", id, "error", err)
		return fmt.Errorf("delete note: %w", err)
	}

	s.log.Info("note deleted", "note_id", id)

	return nil
}
