package domain

import "context"

// DocumentStore persists the workspace document as an atomic unit.
// Load of a store that has never been written returns the empty document,
// never an error. Save replaces the whole document; there are no partial
// writes. Implementations must be safe for concurrent use.
type DocumentStore interface {
	Load(ctx context.Context) (*Document, error)
	Save(ctx context.Context, doc *Document) error
}
