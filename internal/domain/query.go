package domain

import "context"

// SearchFilter narrows the note set. Filters combine conjunctively: Query is
// a case-insensitive substring match against title or content, NotebookID is
// an exact match, and Tags requires every listed tag to be present on the
// note. Zero values mean "no filter".
type SearchFilter struct {
	Query      string
	NotebookID string
	Tags       []string
}

// Stats summarizes the workspace. TotalTags counts only tags that are
// currently referenced by at least one note; zero-count tag records are
// excluded from the total but remain in the document.
// swagger:model Stats
type Stats struct {
	TotalNotebooks int `json:"totalNotebooks"`
	TotalNotes     int `json:"totalNotes"`
	StarredNotes   int `json:"starredNotes"`
	TotalTags      int `json:"totalTags"`
}

// QueryService runs read-only filters over the document.
type QueryService interface {
	// SearchNotes returns the filtered notes sorted by Updated descending.
	SearchNotes(ctx context.Context, filter SearchFilter) ([]*Note, error)
	Stats(ctx context.Context) (*Stats, error)
}
