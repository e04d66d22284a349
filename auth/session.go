package auth

import "blogboard/stream"

// AuthState is the live value delivered to session subscribers. A nil
// Identity is the explicit signed-out state.
type AuthState struct {
	Identity *Identity
}

// SignedIn reports whether the state carries an identity.
func (s AuthState) SignedIn() bool { return s.Identity != nil }

// SessionWatcher exposes the current signed-in identity as a live value.
// Sign-in, sign-out and token expiry each publish a new state; consumers must
// react to the most recent value only, which the underlying stream enforces by
// replacing undelivered values. Subscriptions must be cancelled on teardown.
type SessionWatcher struct {
	state *stream.Value[AuthState]
}

// NewSessionWatcher starts in the signed-out state.
func NewSessionWatcher() *SessionWatcher {
	w := &SessionWatcher{state: stream.NewValue[AuthState]()}
	w.state.Set(AuthState{})
	return w
}

// SignIn publishes ident as the current identity.
func (w *SessionWatcher) SignIn(ident Identity) {
	w.state.Set(AuthState{Identity: &ident})
}

// SignOut publishes the explicit signed-out state.
func (w *SessionWatcher) SignOut() {
	w.state.Set(AuthState{})
}

// Subscribe returns a channel primed with the current state plus an
// idempotent cancel.
func (w *SessionWatcher) Subscribe() (<-chan AuthState, func()) {
	return w.state.Subscribe()
}

// Current returns the latest published state.
func (w *SessionWatcher) Current() AuthState {
	s, _ := w.state.Get()
	return s
}

// Close tears down every subscription.
func (w *SessionWatcher) Close() {
	w.state.Close()
}
