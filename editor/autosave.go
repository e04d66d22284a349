package editor

import (
	"context"
	"sync"
	"time"

	"blogboard/models"
	"blogboard/stream"
)

// AutosaveState is the observable state of the draft autosave controller.
type AutosaveState string

const (
	AutosaveIdle    AutosaveState = "idle"
	AutosavePending AutosaveState = "pending"
	AutosaveSaving  AutosaveState = "saving"
	AutosaveSaved   AutosaveState = "saved"
	AutosaveFailed  AutosaveState = "failed"
)

// DefaultAutosaveDelay is the debounce window between the last edit and the
// autosave write.
const DefaultAutosaveDelay = 20 * time.Second

// DefaultSavedDisplay is how long the saved state is shown before reverting
// to idle.
const DefaultSavedDisplay = 2 * time.Second

// SaveDraftFunc persists the draft's editable fields as a partial update.
type SaveDraftFunc func(ctx context.Context, id string, fields Fields) error

// Autosave debounces in-progress draft edits into periodic partial updates.
// Each Touch while a draft is being edited cancels and replaces the single
// pending timer, so only the latest snapshot within the window is persisted.
// Touching with a non-draft status or without an edit target cancels instead.
// A failed write parks the controller in the failed state until the next
// edit or an explicit Retry; it is never retried automatically.
type Autosave struct {
	mu    sync.Mutex
	save  SaveDraftFunc
	delay time.Duration
	shown time.Duration

	timer      *time.Timer
	revert     *time.Timer
	editingID  string
	pendingSet Fields
	state      *stream.Value[AutosaveState]
}

// NewAutosave uses the default delay and display window when d or shown are
// zero or negative.
func NewAutosave(save SaveDraftFunc, d, shown time.Duration) *Autosave {
	if d <= 0 {
		d = DefaultAutosaveDelay
	}
	if shown <= 0 {
		shown = DefaultSavedDisplay
	}
	a := &Autosave{save: save, delay: d, shown: shown, state: stream.NewValue[AutosaveState]()}
	a.state.Set(AutosaveIdle)
	return a
}

// Touch records an edit. While status is draft and an edit target is set it
// reschedules the pending save; otherwise it cancels any pending save.
func (a *Autosave) Touch(editingID string, fields Fields) {
	if editingID == "" || fields.Status != models.StatusDraft {
		a.Cancel()
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.editingID = editingID
	a.pendingSet = fields
	a.stopTimersLocked()
	a.timer = time.AfterFunc(a.delay, a.fire)
	a.state.Set(AutosavePending)
}

// Cancel drops any pending save without writing. It is idempotent and safe
// to call from teardown paths (cancel edit, sign-out, status change).
func (a *Autosave) Cancel() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopTimersLocked()
	a.editingID = ""
	a.state.Set(AutosaveIdle)
}

// Retry re-issues the last snapshot immediately after a failed save.
func (a *Autosave) Retry() {
	a.mu.Lock()
	if st, _ := a.state.Get(); st != AutosaveFailed || a.editingID == "" {
		a.mu.Unlock()
		return
	}
	a.mu.Unlock()
	a.fire()
}

// State returns the current state.
func (a *Autosave) State() AutosaveState {
	st, _ := a.state.Get()
	return st
}

// Watch subscribes to state changes; the channel is primed with the current
// state and the cancel is idempotent.
func (a *Autosave) Watch() (<-chan AutosaveState, func()) {
	return a.state.Subscribe()
}

// Close cancels pending work and tears down the state stream.
func (a *Autosave) Close() {
	a.mu.Lock()
	a.stopTimersLocked()
	a.mu.Unlock()
	a.state.Close()
}

func (a *Autosave) stopTimersLocked() {
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	if a.revert != nil {
		a.revert.Stop()
		a.revert = nil
	}
}

// fire runs on the timer goroutine once the debounce window elapses.
func (a *Autosave) fire() {
	a.mu.Lock()
	id := a.editingID
	fields := a.pendingSet
	a.timer = nil
	if id == "" || fields.Status != models.StatusDraft {
		a.mu.Unlock()
		return
	}
	a.state.Set(AutosaveSaving)
	a.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := a.save(ctx, id, fields)

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.timer != nil {
		// an edit arrived while the save was in flight; its own pending
		// save supersedes this result
		return
	}
	if err != nil {
		a.state.Set(AutosaveFailed)
		return
	}
	a.state.Set(AutosaveSaved)
	a.revert = time.AfterFunc(a.shown, func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		if st, _ := a.state.Get(); st == AutosaveSaved {
			a.state.Set(AutosaveIdle)
		}
	})
}
