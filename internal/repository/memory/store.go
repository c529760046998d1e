package memory

import (
	"context"
	"sync"

	"notekeeper/internal/domain"
)

// Store keeps the document in memory. Load and Save exchange deep copies, so
// a caller mutating a loaded document never aliases the store's own state
// until it saves. Used by tests and the STORAGE=memory mode.
type Store struct {
	mu  sync.RWMutex
	doc *domain.Document
}

// New returns a store holding the empty document.
func New() *Store {
	return &Store{doc: domain.NewDocument()}
}

func (s *Store) Load(ctx context.Context) (*domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone(), nil
}

func (s *Store) Save(ctx context.Context, doc *domain.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc.Clone()
	return nil
}
