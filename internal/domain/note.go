package domain

import (
	"context"
	"time"
)

// Note is a single rich-text note. Content is opaque HTML as produced by the
// client editor. Tags holds tag ids (tag names); Created is immutable and
// Updated is refreshed on every mutation.
// swagger:model Note
type Note struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	NotebookID string    `json:"notebookId"`
	Tags       []string  `json:"tags"`
	Starred    bool      `json:"starred"`
	Created    time.Time `json:"created"`
	Updated    time.Time `json:"updated"`
}

// NotePatch is a partial update. Nil fields keep the current value; non-nil
// fields are always applied, so clearing content to "" or setting starred to
// false is honored. A non-nil Tags replaces the whole tag list.
type NotePatch struct {
	Title   *string
	Content *string
	Starred *bool
	Tags    *[]string
}

// NoteService manages notes and keeps notebook note lists and tag counts
// consistent with them.
type NoteService interface {
	ListNotes(ctx context.Context) ([]*Note, error)
	// GetNote returns the note or ErrNotFound.
	GetNote(ctx context.Context, id string) (*Note, error)
	// CreateNote inserts the note, registers it with its notebook, and
	// increments (creating if needed) every referenced tag.
	CreateNote(ctx context.Context, n *Note) error
	// UpdateNote applies the patch and rebalances tag counts between the old
	// and new tag lists. Returns ErrNotFound when no note has the given id.
	UpdateNote(ctx context.Context, id string, patch NotePatch) (*Note, error)
	// DeleteNote removes the note, releases its tag references, and drops its
	// id from the owning notebook. Absent ids are a silent no-op.
	DeleteNote(ctx context.Context, id string) error
	// ToggleStar flips the starred flag. Returns ErrNotFound when missing.
	ToggleStar(ctx context.Context, id string) (*Note, error)
}
