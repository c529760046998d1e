package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeeper/internal/domain"
)

func strptr(s string) *string { return &s }

func boolptr(b bool) *bool { return &b }

func tagsptr(tags ...string) *[]string { return &tags }

func TestCreateNote(t *testing.T) {
	ctx := context.Background()

	t.Run("registers note with its notebook and tags", func(t *testing.T) {
		svc, store := newTestService(t)
		mustCreateNotebook(t, svc, "nb1", "Work")

		note := &domain.Note{ID: "n1", Title: "Standup", Content: "<p>notes</p>", NotebookID: "nb1", Tags: []string{"work", "urgent"}}
		require.NoError(t, svc.CreateNote(ctx, note))
		assert.False(t, note.Created.IsZero())
		assert.Equal(t, note.Created, note.Updated)

		doc := loadDoc(t, store)
		requireConsistent(t, doc)
		require.NotNil(t, doc.FindNote("n1"))
		assert.Equal(t, []string{"n1"}, doc.FindNotebook("nb1").Notes)
		require.NotNil(t, doc.FindTag("work"))
		assert.Equal(t, 1, doc.FindTag("work").Count)
		assert.Equal(t, 1, doc.FindTag("urgent").Count)
	})

	t.Run("unknown notebook is skipped silently", func(t *testing.T) {
		svc, store := newTestService(t)
		require.NoError(t, svc.CreateNote(ctx, &domain.Note{ID: "n1", Title: "t", NotebookID: "ghost"}))

		doc := loadDoc(t, store)
		require.NotNil(t, doc.FindNote("n1"))
		assert.Empty(t, doc.Notebooks)
	})

	t.Run("duplicate tags within one note count once", func(t *testing.T) {
		svc, store := newTestService(t)
		require.NoError(t, svc.CreateNote(ctx, &domain.Note{ID: "n1", Title: "t", NotebookID: "nb", Tags: []string{"work", "work", "work"}}))

		doc := loadDoc(t, store)
		assert.Equal(t, []string{"work"}, doc.FindNote("n1").Tags)
		assert.Equal(t, 1, doc.FindTag("work").Count)
		requireConsistent(t, doc)
	})

	t.Run("implicit tags cycle through the palette", func(t *testing.T) {
		svc, store := newTestService(t)
		tags := []string{"a", "b", "c", "d", "e", "f", "g"}
		require.NoError(t, svc.CreateNote(ctx, &domain.Note{ID: "n1", Title: "t", NotebookID: "nb", Tags: tags}))

		doc := loadDoc(t, store)
		for i, name := range tags {
			require.NotNil(t, doc.FindTag(name))
			assert.Equal(t, domain.TagPalette[i%len(domain.TagPalette)], doc.FindTag(name).Color, "tag %s", name)
		}
	})

	t.Run("second note reuses existing tag record", func(t *testing.T) {
		svc, store := newTestService(t)
		mustCreateNote(t, svc, "n1", "nb", "work")
		mustCreateNote(t, svc, "n2", "nb", "work")

		doc := loadDoc(t, store)
		require.Len(t, doc.Tags, 1)
		assert.Equal(t, 2, doc.FindTag("work").Count)
	})
}

func TestUpdateNote(t *testing.T) {
	ctx := context.Background()

	t.Run("partial patch leaves other fields alone", func(t *testing.T) {
		svc, store := newTestService(t)
		mustCreateNotebook(t, svc, "nb1", "Work")
		created := mustCreateNote(t, svc, "n1", "nb1", "work")

		time.Sleep(5 * time.Millisecond)
		updated, err := svc.UpdateNote(ctx, "n1", domain.NotePatch{Starred: boolptr(true)})
		require.NoError(t, err)

		assert.True(t, updated.Starred)
		assert.Equal(t, created.Title, updated.Title)
		assert.Equal(t, created.Content, updated.Content)
		assert.Equal(t, []string{"work"}, updated.Tags)
		assert.Equal(t, created.Created, updated.Created)
		assert.True(t, updated.Updated.After(created.Updated))
		requireConsistent(t, loadDoc(t, store))
	})

	t.Run("provided falsy values are honored", func(t *testing.T) {
		svc, _ := newTestService(t)
		n := &domain.Note{ID: "n1", Title: "keep", Content: "body", NotebookID: "nb", Starred: true}
		require.NoError(t, svc.CreateNote(ctx, n))

		updated, err := svc.UpdateNote(ctx, "n1", domain.NotePatch{Content: strptr(""), Starred: boolptr(false)})
		require.NoError(t, err)
		assert.Equal(t, "", updated.Content)
		assert.False(t, updated.Starred)
		assert.Equal(t, "keep", updated.Title)
	})

	t.Run("rebalances tag counts between old and new lists", func(t *testing.T) {
		svc, store := newTestService(t)
		mustCreateNote(t, svc, "n1", "nb", "work", "urgent")

		_, err := svc.UpdateNote(ctx, "n1", domain.NotePatch{Tags: tagsptr("work")})
		require.NoError(t, err)

		doc := loadDoc(t, store)
		assert.Equal(t, 1, doc.FindTag("work").Count, "tag kept across the update keeps its count")
		assert.Equal(t, 0, doc.FindTag("urgent").Count, "dropped tag is released but the record stays")
		require.NotNil(t, doc.FindTag("urgent"))
		requireConsistent(t, doc)
	})

	t.Run("new tags in the patch are created", func(t *testing.T) {
		svc, store := newTestService(t)
		mustCreateNote(t, svc, "n1", "nb", "work")

		_, err := svc.UpdateNote(ctx, "n1", domain.NotePatch{Tags: tagsptr("work", "later")})
		require.NoError(t, err)

		doc := loadDoc(t, store)
		require.NotNil(t, doc.FindTag("later"))
		assert.Equal(t, 1, doc.FindTag("later").Count)
		requireConsistent(t, doc)
	})

	t.Run("omitted tags keep the old list", func(t *testing.T) {
		svc, store := newTestService(t)
		mustCreateNote(t, svc, "n1", "nb", "work")

		updated, err := svc.UpdateNote(ctx, "n1", domain.NotePatch{Title: strptr("renamed")})
		require.NoError(t, err)
		assert.Equal(t, []string{"work"}, updated.Tags)
		assert.Equal(t, 1, loadDoc(t, store).FindTag("work").Count)
	})

	t.Run("missing note returns ErrNotFound", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.UpdateNote(ctx, "ghost", domain.NotePatch{Title: strptr("x")})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestDeleteNote(t *testing.T) {
	ctx := context.Background()

	t.Run("releases tags and notebook membership", func(t *testing.T) {
		svc, store := newTestService(t)
		mustCreateNotebook(t, svc, "nb1", "Work")
		mustCreateNote(t, svc, "n1", "nb1", "work")
		mustCreateNote(t, svc, "n2", "nb1", "work")

		require.NoError(t, svc.DeleteNote(ctx, "n1"))

		doc := loadDoc(t, store)
		assert.Nil(t, doc.FindNote("n1"))
		assert.Equal(t, []string{"n2"}, doc.FindNotebook("nb1").Notes)
		assert.Equal(t, 1, doc.FindTag("work").Count)
		requireConsistent(t, doc)
	})

	t.Run("absent id is a silent no-op", func(t *testing.T) {
		svc, store := newTestService(t)
		mustCreateNote(t, svc, "n1", "nb", "work")
		before := loadDoc(t, store)

		require.NoError(t, svc.DeleteNote(ctx, "ghost"))

		if diff := cmp.Diff(before, loadDoc(t, store)); diff != "" {
			t.Errorf("document changed by deleting an absent note (-before +after):\n%s", diff)
		}
	})
}

func TestToggleStar(t *testing.T) {
	ctx := context.Background()

	t.Run("flips and refreshes updated", func(t *testing.T) {
		svc, store := newTestService(t)
		created := mustCreateNote(t, svc, "n1", "nb")

		time.Sleep(5 * time.Millisecond)
		note, err := svc.ToggleStar(ctx, "n1")
		require.NoError(t, err)
		assert.True(t, note.Starred)
		assert.True(t, note.Updated.After(created.Updated))

		note, err = svc.ToggleStar(ctx, "n1")
		require.NoError(t, err)
		assert.False(t, note.Starred)
		assert.False(t, loadDoc(t, store).FindNote("n1").Starred)
	})

	t.Run("missing note returns ErrNotFound", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.ToggleStar(ctx, "ghost")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestMutationFailureExposesNoPartialState(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	mustCreateNotebook(t, svc, "nb1", "Work")
	mustCreateNote(t, svc, "n1", "nb1", "work")
	before := loadDoc(t, store)

	broken := &failingStore{DocumentStore: store, saveErr: errors.New("disk full")}
	failing := New(broken, 2*time.Second)

	require.Error(t, failing.CreateNote(ctx, &domain.Note{ID: "n2", Title: "t", NotebookID: "nb1", Tags: []string{"work"}}))
	_, err := failing.UpdateNote(ctx, "n1", domain.NotePatch{Tags: tagsptr()})
	require.Error(t, err)
	require.Error(t, failing.DeleteNotebook(ctx, "nb1"))

	if diff := cmp.Diff(before, loadDoc(t, store)); diff != "" {
		t.Errorf("failed saves leaked partial state (-before +after):\n%s", diff)
	}
}
