package services

import (
	"context"
	"slices"
	"sort"
	"time"

	"notekeeper/internal/domain"
)

// dedupeTags removes repeated tag names keeping first-occurrence order, so a
// tag's count reflects how many notes reference it, not how many times one
// note repeats it.
func dedupeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// sortByUpdatedDesc orders notes most recently updated first.
func sortByUpdatedDesc(notes []*domain.Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].Updated.After(notes[j].Updated)
	})
}

func (s *Service) ListNotes(ctx context.Context) ([]*domain.Note, error) {
	var notes []*domain.Note
	err := s.view(ctx, func(doc *domain.Document) error {
		notes = doc.Notes
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortByUpdatedDesc(notes)
	return notes, nil
}

func (s *Service) GetNote(ctx context.Context, id string) (*domain.Note, error) {
	var note *domain.Note
	err := s.view(ctx, func(doc *domain.Document) error {
		note = doc.FindNote(id)
		if note == nil {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return note, nil
}

// CreateNote inserts the note, appends its id to the owning notebook's note
// list when that notebook exists (skipping silently when it does not), and
// increments every referenced tag, creating missing tag records with a
// palette color. Created and Updated are server-assigned.
func (s *Service) CreateNote(ctx context.Context, n *domain.Note) error {
	return s.mutate(ctx, func(doc *domain.Document) error {
		now := time.Now().UTC()
		n.Tags = dedupeTags(n.Tags)
		n.Created = now
		n.Updated = now

		doc.InsertNote(n)
		if nb := doc.FindNotebook(n.NotebookID); nb != nil {
			if !slices.Contains(nb.Notes, n.ID) {
				nb.Notes = append(nb.Notes, n.ID)
			}
		}
		incrementTags(doc, n.Tags)
		return nil
	})
}

// UpdateNote applies the patch. Tag counts are rebalanced by decrementing
// every old tag and incrementing every new one; a tag present in both lists
// is touched but nets out to the same count. Nil patch fields keep the
// current value, non-nil ones are always applied. Updated is refreshed,
// Created never changes.
func (s *Service) UpdateNote(ctx context.Context, id string, patch domain.NotePatch) (*domain.Note, error) {
	var updated *domain.Note
	err := s.mutate(ctx, func(doc *domain.Document) error {
		n := doc.FindNote(id)
		if n == nil {
			return domain.ErrNotFound
		}

		oldTags := n.Tags
		newTags := oldTags
		if patch.Tags != nil {
			newTags = dedupeTags(*patch.Tags)
		}
		decrementTags(doc, oldTags)
		incrementTags(doc, newTags)

		if patch.Title != nil {
			n.Title = *patch.Title
		}
		if patch.Content != nil {
			n.Content = *patch.Content
		}
		if patch.Starred != nil {
			n.Starred = *patch.Starred
		}
		n.Tags = newTags
		n.Updated = time.Now().UTC()
		updated = n
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteNote releases the note's tag references, drops its id from the owning
// notebook, and removes the record. An absent id is a silent no-op.
func (s *Service) DeleteNote(ctx context.Context, id string) error {
	return s.mutate(ctx, func(doc *domain.Document) error {
		n := doc.FindNote(id)
		if n == nil {
			return nil
		}
		decrementTags(doc, n.Tags)
		if nb := doc.FindNotebook(n.NotebookID); nb != nil {
			nb.Notes = slices.DeleteFunc(nb.Notes, func(noteID string) bool {
				return noteID == id
			})
		}
		doc.RemoveNote(id)
		return nil
	})
}

// ToggleStar flips the starred flag and refreshes Updated. No cascades.
func (s *Service) ToggleStar(ctx context.Context, id string) (*domain.Note, error) {
	var note *domain.Note
	err := s.mutate(ctx, func(doc *domain.Document) error {
		note = doc.FindNote(id)
		if note == nil {
			return domain.ErrNotFound
		}
		note.Starred = !note.Starred
		note.Updated = time.Now().UTC()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return note, nil
}
