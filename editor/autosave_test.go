package editor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogboard/models"
)

type saveRecorder struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (r *saveRecorder) save(_ context.Context, id string, _ Fields) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.calls = append(r.calls, id)
	return nil
}

func (r *saveRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func waitState(t *testing.T, a *Autosave, want AutosaveState) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		if a.State() == want {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for state %q, got %q", want, a.State())
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func draftFields() Fields {
	f := validFields()
	f.Status = models.StatusDraft
	return f
}

func TestAutosaveDebouncesToLatestSnapshot(t *testing.T) {
	rec := &saveRecorder{}
	a := NewAutosave(rec.save, 40*time.Millisecond, 30*time.Millisecond)
	defer a.Close()

	// rapid edits within the window collapse into one save
	for i := 0; i < 5; i++ {
		a.Touch("post-1", draftFields())
		time.Sleep(5 * time.Millisecond)
	}
	assert.Equal(t, AutosavePending, a.State())

	waitState(t, a, AutosaveSaved)
	assert.Equal(t, 1, rec.count())

	// saved display reverts to idle on its own
	waitState(t, a, AutosaveIdle)
}

func TestAutosaveRequiresDraftAndEditTarget(t *testing.T) {
	rec := &saveRecorder{}
	a := NewAutosave(rec.save, 20*time.Millisecond, 20*time.Millisecond)
	defer a.Close()

	// no edit target: never schedules
	a.Touch("", draftFields())
	assert.Equal(t, AutosaveIdle, a.State())

	// published status: never schedules
	a.Touch("post-1", validFields())
	assert.Equal(t, AutosaveIdle, a.State())

	time.Sleep(60 * time.Millisecond)
	assert.Zero(t, rec.count())
}

func TestAutosaveStatusChangeCancelsPending(t *testing.T) {
	rec := &saveRecorder{}
	a := NewAutosave(rec.save, 40*time.Millisecond, 20*time.Millisecond)
	defer a.Close()

	a.Touch("post-1", draftFields())
	require.Equal(t, AutosavePending, a.State())

	// switching the draft to published drops the pending save
	a.Touch("post-1", validFields())
	assert.Equal(t, AutosaveIdle, a.State())

	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, rec.count())
}

func TestAutosaveFailureParksUntilRetry(t *testing.T) {
	rec := &saveRecorder{err: errors.New("write rejected")}
	a := NewAutosave(rec.save, 20*time.Millisecond, 20*time.Millisecond)
	defer a.Close()

	a.Touch("post-1", draftFields())
	waitState(t, a, AutosaveFailed)

	// no automatic retry
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, AutosaveFailed, a.State())
	assert.Zero(t, rec.count())

	rec.mu.Lock()
	rec.err = nil
	rec.mu.Unlock()

	a.Retry()
	waitState(t, a, AutosaveSaved)
	assert.Equal(t, 1, rec.count())
}

type blockingSaver struct {
	started chan struct{}
	release chan struct{}
	rec     saveRecorder
}

func (b *blockingSaver) save(ctx context.Context, id string, f Fields) error {
	b.started <- struct{}{}
	<-b.release
	return b.rec.save(ctx, id, f)
}

func TestAutosaveEditDuringSaveKeepsPending(t *testing.T) {
	b := &blockingSaver{started: make(chan struct{}), release: make(chan struct{})}
	a := NewAutosave(b.save, 100*time.Millisecond, 20*time.Millisecond)
	defer a.Close()

	a.Touch("post-1", draftFields())
	<-b.started // first save is now in flight

	// a new edit schedules its own save while the first is still writing
	a.Touch("post-1", draftFields())
	require.Equal(t, AutosavePending, a.State())

	// letting the first save finish must not overwrite the pending state
	b.release <- struct{}{}
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, AutosavePending, a.State())

	// the second save still fires on its own schedule
	<-b.started
	b.release <- struct{}{}
	waitState(t, a, AutosaveSaved)
	assert.Equal(t, 2, b.rec.count())
}

func TestFormResetCancelsAutosave(t *testing.T) {
	rec := &saveRecorder{}
	a := NewAutosave(rec.save, 40*time.Millisecond, 20*time.Millisecond)
	defer a.Close()

	f := NewForm(newFakeWriter(), testIdentity, a)
	f.LoadForEdit(models.Post{Title: "t", Status: models.StatusDraft})
	f.SetFields(draftFields())
	require.Equal(t, AutosavePending, a.State())

	f.Reset()
	assert.Equal(t, AutosaveIdle, a.State())

	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, rec.count())
}
