package domain

import "context"

// DefaultTagColor is assigned when a tag is created explicitly without a
// color. Tags created implicitly through a note get a palette color instead.
const DefaultTagColor = "#8b5cf6"

// TagPalette is the fixed color cycle for implicitly created tags, indexed by
// the number of tags existing at creation time modulo its length. The
// assignment depends on tag history, not the tag name, and is not stable
// across deletions.
var TagPalette = []string{"#8b5cf6", "#ef4444", "#10b981", "#f59e0b", "#ec4899", "#06b6d4"}

// PaletteColor returns the palette entry for a document that already holds
// existing tags.
func PaletteColor(existing int) string {
	return TagPalette[existing%len(TagPalette)]
}

// Tag is a usage-counted label. ID is the tag name itself and doubles as the
// display label. Count is denormalized: it must equal the number of notes
// whose tag list contains this id, and never goes negative.
// swagger:model Tag
type Tag struct {
	ID    string `json:"id"`
	Color string `json:"color"`
	Count int    `json:"count"`
}

// TagService manages tag records. Counts are maintained by the note
// operations, not by TagService itself.
type TagService interface {
	ListTags(ctx context.Context) ([]*Tag, error)
	// EnsureTag returns the existing tag unchanged if the id is taken,
	// otherwise inserts a zero-count tag with the given color (DefaultTagColor
	// when empty). The second result reports whether a tag was created.
	EnsureTag(ctx context.Context, id, color string) (*Tag, bool, error)
}
