package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blogboard/auth"
	"blogboard/editor"
	"blogboard/models"
)

type recordingWriter struct {
	mu      sync.Mutex
	updates []map[string]any
}

func (w *recordingWriter) Create(_ context.Context, _ models.Post) (string, error) {
	return primitive.NewObjectID().Hex(), nil
}

func (w *recordingWriter) Update(_ context.Context, _ string, fields map[string]any) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.updates = append(w.updates, fields)
	return nil
}

func (w *recordingWriter) count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.updates)
}

func (w *recordingWriter) last() map[string]any {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.updates[len(w.updates)-1]
}

func waitForUpdates(t *testing.T, w *recordingWriter, want int) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for w.count() < want {
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for %d updates, got %d", want, w.count())
		case <-time.After(5 * time.Millisecond):
		}
	}
}

var sessionIdent = auth.Identity{ID: "uid-1", Name: "Ada", Email: "ada@example.com"}

func draftPost() models.Post {
	return models.Post{
		ID:       primitive.NewObjectID(),
		Title:    "first draft",
		Status:   models.StatusDraft,
		AuthorID: "uid-1",
	}
}

func sessionFields() editor.Fields {
	return editor.Fields{
		Title:            "first draft, revised",
		Category:         "Go",
		Author:           "Ada",
		AuthorEmail:      "ada@example.com",
		Content:          "body",
		ShortDescription: "teaser",
		Status:           models.StatusDraft,
	}
}

func TestEditorSessionsDebouncedDraftSave(t *testing.T) {
	w := &recordingWriter{}
	m := NewEditorSessions(w, time.Minute, 20*time.Millisecond)
	defer m.Close()

	post := draftPost()
	state := m.Touch(sessionIdent, post, sessionFields())
	assert.Equal(t, editor.AutosavePending, state)

	waitForUpdates(t, w, 1)
	upd := w.last()
	assert.Equal(t, "first draft, revised", upd["title"])
	assert.Equal(t, models.StatusDraft, upd["status"])
	_, hasAuthorID := upd["author_id"]
	assert.False(t, hasAuthorID)
}

func TestEditorSessionsCollapseRapidTouches(t *testing.T) {
	w := &recordingWriter{}
	m := NewEditorSessions(w, time.Minute, 40*time.Millisecond)
	defer m.Close()

	post := draftPost()
	for i := 0; i < 5; i++ {
		m.Touch(sessionIdent, post, sessionFields())
		time.Sleep(5 * time.Millisecond)
	}

	waitForUpdates(t, w, 1)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 1, w.count())
}

func TestEditorSessionsDropCancelsPending(t *testing.T) {
	w := &recordingWriter{}
	m := NewEditorSessions(w, time.Minute, 40*time.Millisecond)
	defer m.Close()

	post := draftPost()
	m.Touch(sessionIdent, post, sessionFields())

	st, ok := m.State(sessionIdent.ID, post.ID.Hex())
	require.True(t, ok)
	assert.Equal(t, editor.AutosavePending, st)

	m.Drop(sessionIdent.ID, post.ID.Hex())
	_, ok = m.State(sessionIdent.ID, post.ID.Hex())
	assert.False(t, ok)

	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, w.count())
}

func TestEditorSessionsEvictStaleOnAccess(t *testing.T) {
	w := &recordingWriter{}
	m := NewEditorSessions(w, 30*time.Millisecond, time.Minute)
	defer m.Close()

	stale := draftPost()
	m.Touch(sessionIdent, stale, sessionFields())
	time.Sleep(60 * time.Millisecond)

	// touching another post sweeps the idle session out
	m.Touch(sessionIdent, draftPost(), sessionFields())
	_, ok := m.State(sessionIdent.ID, stale.ID.Hex())
	assert.False(t, ok)
}
