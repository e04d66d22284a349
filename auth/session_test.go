package auth

import "testing"

func TestSessionWatcherStartsSignedOut(t *testing.T) {
	w := NewSessionWatcher()
	defer w.Close()

	if w.Current().SignedIn() {
		t.Fatalf("expected initial state to be signed out")
	}

	ch, cancel := w.Subscribe()
	defer cancel()
	state := <-ch
	if state.SignedIn() {
		t.Fatalf("expected primed state to be signed out")
	}
}

func TestSessionWatcherDeliversSignInAndSignOut(t *testing.T) {
	w := NewSessionWatcher()
	defer w.Close()

	ch, cancel := w.Subscribe()
	defer cancel()
	<-ch // drain primed signed-out state

	w.SignIn(Identity{ID: "u1", Name: "Priya K.", Email: "priya@example.com"})
	state := <-ch
	if !state.SignedIn() {
		t.Fatalf("expected signed-in state")
	}
	if state.Identity.ID != "u1" {
		t.Fatalf("expected identity u1, got %q", state.Identity.ID)
	}

	w.SignOut()
	state = <-ch
	if state.SignedIn() {
		t.Fatalf("expected signed-out state after SignOut")
	}
}

func TestSessionWatcherSubscriberSeesLatestIdentityOnly(t *testing.T) {
	w := NewSessionWatcher()
	defer w.Close()

	ch, cancel := w.Subscribe()
	defer cancel()

	// subscriber is slow; two sign-ins happen before it reads
	w.SignIn(Identity{ID: "stale"})
	w.SignIn(Identity{ID: "fresh"})

	state := <-ch
	if !state.SignedIn() || state.Identity.ID != "fresh" {
		t.Fatalf("expected latest identity fresh, got %+v", state)
	}
}
