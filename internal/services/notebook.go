package services

import (
	"context"
	"time"

	"notekeeper/internal/domain"
)

func (s *Service) ListNotebooks(ctx context.Context) ([]*domain.Notebook, error) {
	var notebooks []*domain.Notebook
	err := s.view(ctx, func(doc *domain.Document) error {
		notebooks = doc.Notebooks
		return nil
	})
	if err != nil {
		return nil, err
	}
	return notebooks, nil
}

// CreateNotebook inserts the notebook with an empty note list and a
// server-assigned creation time, regardless of caller input. Color falls back
// to DefaultNotebookColor.
func (s *Service) CreateNotebook(ctx context.Context, nb *domain.Notebook) error {
	return s.mutate(ctx, func(doc *domain.Document) error {
		nb.Created = time.Now().UTC()
		nb.Notes = []string{}
		if nb.Color == "" {
			nb.Color = domain.DefaultNotebookColor
		}
		doc.InsertNotebook(nb)
		return nil
	})
}

// UpdateNotebook applies the patch. Nil fields keep the current value; a
// provided value is always applied, empty strings included. Notes and
// Created are never touched.
func (s *Service) UpdateNotebook(ctx context.Context, id string, patch domain.NotebookPatch) (*domain.Notebook, error) {
	var updated *domain.Notebook
	err := s.mutate(ctx, func(doc *domain.Document) error {
		nb := doc.FindNotebook(id)
		if nb == nil {
			return domain.ErrNotFound
		}
		if patch.Name != nil {
			nb.Name = *patch.Name
		}
		if patch.Color != nil {
			nb.Color = *patch.Color
		}
		updated = nb
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteNotebook removes the notebook and cascade-deletes every note that
// belongs to it, running the same tag-count release as a direct note delete.
// The whole cascade lands in one Save, so either all of it persists or none
// of it does. An absent id is a silent no-op.
func (s *Service) DeleteNotebook(ctx context.Context, id string) error {
	return s.mutate(ctx, func(doc *domain.Document) error {
		if !doc.RemoveNotebook(id) {
			return nil
		}
		kept := make([]*domain.Note, 0, len(doc.Notes))
		for _, n := range doc.Notes {
			if n.NotebookID == id {
				decrementTags(doc, n.Tags)
				continue
			}
			kept = append(kept, n)
		}
		doc.Notes = kept
		return nil
	})
}
