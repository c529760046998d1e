package services

import (
	"context"
	"slices"
	"strings"

	"notekeeper/internal/domain"
)

// matchesFilter reports whether the note passes every filter in the query.
// Filters combine with AND semantics; the text query is a case-insensitive
// substring match against title or content.
func matchesFilter(n *domain.Note, f domain.SearchFilter) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(n.Title), q) &&
			!strings.Contains(strings.ToLower(n.Content), q) {
			return false
		}
	}
	if f.NotebookID != "" && n.NotebookID != f.NotebookID {
		return false
	}
	for _, tag := range f.Tags {
		if !slices.Contains(n.Tags, tag) {
			return false
		}
	}
	return true
}

// SearchNotes returns every note passing the filter, most recently updated
// first. The scan is linear over the in-memory document; there is no index
// and no pagination.
func (s *Service) SearchNotes(ctx context.Context, filter domain.SearchFilter) ([]*domain.Note, error) {
	var results []*domain.Note
	err := s.view(ctx, func(doc *domain.Document) error {
		results = make([]*domain.Note, 0, len(doc.Notes))
		for _, n := range doc.Notes {
			if matchesFilter(n, filter) {
				results = append(results, n)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortByUpdatedDesc(results)
	return results, nil
}

// Stats summarizes the workspace. TotalTags excludes zero-count tag records;
// they stay in the document so EnsureTag still finds them.
func (s *Service) Stats(ctx context.Context) (*domain.Stats, error) {
	stats := &domain.Stats{}
	err := s.view(ctx, func(doc *domain.Document) error {
		stats.TotalNotebooks = len(doc.Notebooks)
		stats.TotalNotes = len(doc.Notes)
		for _, n := range doc.Notes {
			if n.Starred {
				stats.StarredNotes++
			}
		}
		for _, t := range doc.Tags {
			if t.Count > 0 {
				stats.TotalTags++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}
