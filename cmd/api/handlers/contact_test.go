package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogboard/cmd/api/clients/formrelay"
)

type fakeRelay struct {
	err  error
	sent int
}

func (f *fakeRelay) Send(_ context.Context, _, _, _ string) error {
	if f.err != nil {
		return f.err
	}
	f.sent++
	return nil
}

func postContact(t *testing.T, relay MessageRelay, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/contact", ContactHandler(relay))

	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestContactHandlerAcknowledges(t *testing.T) {
	relay := &fakeRelay{}
	w := postContact(t, relay, `{"name":"Ada","email":"ada@example.com","message":"hello"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Thanks for contacting us!")
	assert.Equal(t, 1, relay.sent)
}

func TestContactHandlerRelayFailure(t *testing.T) {
	w := postContact(t, &fakeRelay{err: formrelay.ErrRelayRejected},
		`{"name":"Ada","email":"ada@example.com","message":"hello"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Something went wrong.")

	w = postContact(t, &fakeRelay{err: errors.New("connection refused")},
		`{"name":"Ada","email":"ada@example.com","message":"hello"}`)
	require.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "Something went wrong.")
}

func TestContactHandlerRequiresAllFields(t *testing.T) {
	relay := &fakeRelay{}
	w := postContact(t, relay, `{"name":"Ada"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, relay.sent)
}
