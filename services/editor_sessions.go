package services

import (
	"context"
	"sync"
	"time"

	"blogboard/auth"
	"blogboard/editor"
	"blogboard/models"
)

// DefaultSessionTTL is how long an authoring session survives without a
// touch before the next access evicts it.
const DefaultSessionTTL = 30 * time.Minute

// EditorSessions keeps one live authoring form per owner and post, so draft
// edits stream into the debounced autosave instead of writing on every
// keystroke. Sessions idle past the TTL are closed lazily on access.
type EditorSessions struct {
	mu        sync.Mutex
	writer    editor.PostWriter
	ttl       time.Duration
	saveDelay time.Duration
	sessions  map[string]*editorSession
}

type editorSession struct {
	form     *editor.Form
	autosave *editor.Autosave
	lastSeen time.Time
}

// NewEditorSessions builds the registry. A ttl or saveDelay of zero falls
// back to the defaults (30m session idle, 20s autosave debounce).
func NewEditorSessions(writer editor.PostWriter, ttl, saveDelay time.Duration) *EditorSessions {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &EditorSessions{
		writer:    writer,
		ttl:       ttl,
		saveDelay: saveDelay,
		sessions:  map[string]*editorSession{},
	}
}

func sessionKey(ownerID, postID string) string {
	return ownerID + "/" + postID
}

// Touch feeds the latest field snapshot of an owned post into its session
// and returns the autosave state after scheduling. The caller has already
// checked ownership.
func (m *EditorSessions) Touch(ident auth.Identity, post models.Post, fields editor.Fields) editor.AutosaveState {
	s := m.session(ident, post)
	s.form.SetFields(fields)
	return s.autosave.State()
}

// State returns the autosave state of an open session.
func (m *EditorSessions) State(ownerID, postID string) (editor.AutosaveState, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionKey(ownerID, postID)]
	if !ok {
		return editor.AutosaveIdle, false
	}
	s.lastSeen = time.Now()
	return s.autosave.State(), true
}

// Retry re-issues the last failed autosave write of an open session.
func (m *EditorSessions) Retry(ownerID, postID string) (editor.AutosaveState, bool) {
	m.mu.Lock()
	s, ok := m.sessions[sessionKey(ownerID, postID)]
	if ok {
		s.lastSeen = time.Now()
	}
	m.mu.Unlock()
	if !ok {
		return editor.AutosaveIdle, false
	}
	s.autosave.Retry()
	return s.autosave.State(), true
}

// Drop closes one session, cancelling any pending save. Submit and delete
// call it so a stale autosave cannot write over the final state.
func (m *EditorSessions) Drop(ownerID, postID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := sessionKey(ownerID, postID)
	if s, ok := m.sessions[key]; ok {
		s.autosave.Close()
		delete(m.sessions, key)
	}
}

// Close tears down every session.
func (m *EditorSessions) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, s := range m.sessions {
		s.autosave.Close()
		delete(m.sessions, key)
	}
}

func (m *EditorSessions) session(ident auth.Identity, post models.Post) *editorSession {
	key := sessionKey(ident.ID, post.ID.Hex())
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.evictStaleLocked(now)
	if s, ok := m.sessions[key]; ok {
		s.lastSeen = now
		return s
	}

	save := func(ctx context.Context, id string, fields editor.Fields) error {
		return m.writer.Update(ctx, id, editor.DraftUpdate(fields))
	}
	a := editor.NewAutosave(save, m.saveDelay, 0)
	f := editor.NewForm(m.writer, ident, a)
	f.LoadForEdit(post)

	s := &editorSession{form: f, autosave: a, lastSeen: now}
	m.sessions[key] = s
	return s
}

func (m *EditorSessions) evictStaleLocked(now time.Time) {
	for key, s := range m.sessions {
		if now.Sub(s.lastSeen) > m.ttl {
			s.autosave.Close()
			delete(m.sessions, key)
		}
	}
}
