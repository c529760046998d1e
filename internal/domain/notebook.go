package domain

import (
	"context"
	"time"
)

// DefaultNotebookColor is assigned when a notebook is created without a color.
const DefaultNotebookColor = "#3b82f6"

// Notebook groups notes. Notes is a denormalized cache: it must always equal
// the set of note ids whose NotebookID references this notebook, in insertion
// order. The consistency layer maintains it on every mutation.
// swagger:model Notebook
type Notebook struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Color   string    `json:"color"`
	Created time.Time `json:"created"`
	Notes   []string  `json:"notes"`
}

// NotebookPatch is a partial update. Nil fields keep the current value;
// non-nil fields are always applied, including empty strings.
type NotebookPatch struct {
	Name  *string
	Color *string
}

// NotebookService manages notebooks and the cascade their deletion implies.
type NotebookService interface {
	ListNotebooks(ctx context.Context) ([]*Notebook, error)
	// CreateNotebook inserts the notebook. Created is server-assigned and
	// Notes starts empty regardless of caller input; Color falls back to
	// DefaultNotebookColor.
	CreateNotebook(ctx context.Context, nb *Notebook) error
	// UpdateNotebook applies the patch. Returns ErrNotFound when no notebook
	// has the given id.
	UpdateNotebook(ctx context.Context, id string, patch NotebookPatch) (*Notebook, error)
	// DeleteNotebook removes the notebook and cascade-deletes every note that
	// belongs to it, adjusting tag counts. Absent ids are a silent no-op.
	DeleteNotebook(ctx context.Context, id string) error
}
