package services

import (
	"context"

	"notekeeper/internal/domain"
)

// ensureTag returns the tag with the given id, inserting a zero-count record
// when missing. An empty color means the implicit-creation path: the color is
// drawn from the palette based on how many tags already exist, which makes
// the assignment history dependent and not stable across deletions.
func ensureTag(doc *domain.Document, id, color string) (*domain.Tag, bool) {
	if t := doc.FindTag(id); t != nil {
		return t, false
	}
	if color == "" {
		color = domain.PaletteColor(len(doc.Tags))
	}
	t := &domain.Tag{ID: id, Color: color}
	doc.InsertTag(t)
	return t, true
}

// incrementTags bumps the count of every named tag, creating missing records
// with a palette color first.
func incrementTags(doc *domain.Document, names []string) {
	for _, name := range names {
		t, _ := ensureTag(doc, name, "")
		t.Count++
	}
}

// decrementTags lowers the count of every named tag, clamping at zero.
// Unknown names are skipped.
func decrementTags(doc *domain.Document, names []string) {
	for _, name := range names {
		if t := doc.FindTag(name); t != nil && t.Count > 0 {
			t.Count--
		}
	}
}

func (s *Service) ListTags(ctx context.Context) ([]*domain.Tag, error) {
	var tags []*domain.Tag
	err := s.view(ctx, func(doc *domain.Document) error {
		tags = doc.Tags
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// EnsureTag is the lookup-or-create operation behind POST /api/tags. An
// existing tag is returned unchanged, count included; otherwise a zero-count
// tag is inserted with the given color, falling back to DefaultTagColor.
func (s *Service) EnsureTag(ctx context.Context, id, color string) (*domain.Tag, bool, error) {
	if color == "" {
		color = domain.DefaultTagColor
	}
	var (
		tag     *domain.Tag
		created bool
	)
	err := s.mutate(ctx, func(doc *domain.Document) error {
		tag, created = ensureTag(doc, id, color)
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return tag, created, nil
}
