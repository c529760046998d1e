package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"notekeeper/internal/domain"
)

// Store persists the document as pretty-printed JSON in a single file.
// Saves go through a write-to-temp-then-rename so a crash mid-write never
// leaves a torn file behind.
type Store struct {
	path string
}

// New returns a store backed by the file at path. The file is created on the
// first Save; it does not need to exist up front.
func New(path string) *Store {
	return &Store{path: path}
}

// Load reads the whole document. A missing file yields the empty document.
// Any other read or decode failure is surfaced to the caller instead of being
// papered over with an empty document.
func (s *Store) Load(ctx context.Context) (*domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.NewDocument(), nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	var doc domain.Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	doc.Normalize()
	return &doc, nil
}

// Save atomically replaces the file with the given document.
func (s *Store) Save(ctx context.Context, doc *domain.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}
	}
	if err := atomic.WriteFile(s.path, bytes.NewReader(b)); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}
