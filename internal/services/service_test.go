package services

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"notekeeper/internal/domain"
	"notekeeper/internal/repository/memory"
)

func newTestService(t *testing.T) (*Service, *memory.Store) {
	t.Helper()
	store := memory.New()
	return New(store, 2*time.Second), store
}

// failingStore wraps a DocumentStore and fails Save on demand.
type failingStore struct {
	domain.DocumentStore
	saveErr error
}

func (f *failingStore) Save(ctx context.Context, doc *domain.Document) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	return f.DocumentStore.Save(ctx, doc)
}

func loadDoc(t *testing.T, store domain.DocumentStore) *domain.Document {
	t.Helper()
	doc, err := store.Load(context.Background())
	require.NoError(t, err)
	return doc
}

// requireConsistent re-derives the denormalized state from scratch and
// compares it with what the document actually stores: every notebook's note
// list must equal the ids of the notes referencing it in insertion order, and
// every tag's count must equal the number of notes listing it.
func requireConsistent(t *testing.T, doc *domain.Document) {
	t.Helper()
	for _, nb := range doc.Notebooks {
		want := []string{}
		for _, n := range doc.Notes {
			if n.NotebookID == nb.ID {
				want = append(want, n.ID)
			}
		}
		require.Equal(t, want, nb.Notes, "notebook %s note list out of sync", nb.ID)
	}
	for _, tag := range doc.Tags {
		count := 0
		for _, n := range doc.Notes {
			if slices.Contains(n.Tags, tag.ID) {
				count++
			}
		}
		require.GreaterOrEqual(t, tag.Count, 0, "tag %s count negative", tag.ID)
		require.Equal(t, count, tag.Count, "tag %s count out of sync", tag.ID)
	}
}

func mustCreateNotebook(t *testing.T, svc *Service, id, name string) *domain.Notebook {
	t.Helper()
	nb := &domain.Notebook{ID: id, Name: name}
	require.NoError(t, svc.CreateNotebook(context.Background(), nb))
	return nb
}

func mustCreateNote(t *testing.T, svc *Service, id, notebookID string, tags ...string) *domain.Note {
	t.Helper()
	n := &domain.Note{ID: id, Title: "title " + id, NotebookID: notebookID, Tags: tags}
	require.NoError(t, svc.CreateNote(context.Background(), n))
	return n
}
