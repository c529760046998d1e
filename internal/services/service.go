package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"notekeeper/internal/domain"
)

// Service is the consistency layer. Every mutation performs a full
// read-modify-write cycle against the document store: load the whole
// document, apply the requested change plus every side effect needed to keep
// the denormalized state consistent (notebook note lists, tag counts,
// cascades), then persist the whole document. A single mutation mutex
// serializes those cycles so interleaved requests cannot lose updates.
type Service struct {
	store          domain.DocumentStore
	contextTimeout time.Duration

	mu sync.Mutex // serializes read-modify-write cycles
}

var (
	_ domain.NotebookService = (*Service)(nil)
	_ domain.NoteService     = (*Service)(nil)
	_ domain.TagService      = (*Service)(nil)
	_ domain.QueryService    = (*Service)(nil)
)

// New returns a Service over the given store. timeout bounds each call,
// persistence I/O included.
func New(store domain.DocumentStore, timeout time.Duration) *Service {
	return &Service{
		store:          store,
		contextTimeout: timeout,
	}
}

// mutate runs fn against a freshly loaded document under the mutation lock
// and persists the result. When fn or the save fails nothing is persisted;
// the mutated copy is simply discarded, so a failure never exposes partial
// state.
func (s *Service) mutate(ctx context.Context, fn func(doc *domain.Document) error) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}
	if err := fn(doc); err != nil {
		return err
	}
	if err := s.store.Save(ctx, doc); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

// view runs fn against a freshly loaded document without taking the mutation
// lock. Read-only callers capture results through the closure.
func (s *Service) view(ctx context.Context, fn func(doc *domain.Document) error) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	doc, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}
	return fn(doc)
}
