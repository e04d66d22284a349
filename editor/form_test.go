package editor

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogboard/auth"
	"blogboard/models"
)

type fakeWriter struct {
	mu      sync.Mutex
	created []models.Post
	updated map[string]map[string]any
	err     error
}

func newFakeWriter() *fakeWriter {
	return &fakeWriter{updated: make(map[string]map[string]any)}
}

func (w *fakeWriter) Create(_ context.Context, p models.Post) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return "", w.err
	}
	w.created = append(w.created, p)
	return "generated-id", nil
}

func (w *fakeWriter) Update(_ context.Context, id string, fields map[string]any) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.updated[id] = fields
	return nil
}

var testIdentity = auth.Identity{ID: "uid-1", Name: "A", Email: "a@x.com"}

func validFields() Fields {
	return Fields{
		Title:       "Hi",
		Category:    "Dev",
		Author:      "A",
		AuthorEmail: "a@x.com",
		Content:     "<p>x</p>",
		Status:      models.StatusPublished,
	}
}

func TestParseTags(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, ParseTags("a, b ,, c"))
	assert.Empty(t, ParseTags(""))
	assert.Empty(t, ParseTags(" , ,"))
	assert.Equal(t, []string{"solo"}, ParseTags("solo"))
}

func TestSubmitMissingTitleIsValidationErrorWithoutWrite(t *testing.T) {
	w := newFakeWriter()
	f := NewForm(w, testIdentity, nil)

	fields := validFields()
	fields.Title = ""
	f.SetFields(fields)

	_, err := f.Submit(context.Background(), models.StatusPublished)
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Please fill in all required fields.", f.FormError())
	assert.Empty(t, w.created)
	assert.Empty(t, w.updated)

	// fields stay intact for correction
	assert.Equal(t, fields, f.Fields())
}

func TestSubmitDraftCreatesOnceAndResets(t *testing.T) {
	w := newFakeWriter()
	f := NewForm(w, testIdentity, nil)
	f.SetFields(validFields())

	id, err := f.Submit(context.Background(), models.StatusDraft)
	require.NoError(t, err)
	assert.Equal(t, "generated-id", id)

	require.Len(t, w.created, 1)
	created := w.created[0]
	assert.Equal(t, "Hi", created.Title)
	assert.Equal(t, models.StatusDraft, created.Status)
	assert.False(t, created.IsDeleted)
	assert.Equal(t, "uid-1", created.AuthorID)

	// the form resets to defaults, reseeding author fields from identity
	got := f.Fields()
	assert.Empty(t, got.Title)
	assert.Empty(t, got.Content)
	assert.Equal(t, "A", got.Author)
	assert.Equal(t, "a@x.com", got.AuthorEmail)
	assert.Equal(t, models.StatusPublished, got.Status)
	assert.Empty(t, f.EditingID())
}

func TestSubmitWithEditTargetUpdatesInstead(t *testing.T) {
	w := newFakeWriter()
	f := NewForm(w, testIdentity, nil)

	post := models.Post{
		Title:    "Old title",
		Category: "Dev",
		Tags:     []string{"go", "web"},
		Content:  "<p>old</p>",
		Author:   "A",
		Status:   models.StatusDraft,
	}
	f.LoadForEdit(post)
	target := f.EditingID()
	require.NotEmpty(t, target)
	assert.Equal(t, "go, web", f.Fields().Tags)

	fields := f.Fields()
	fields.Title = "New title"
	f.SetFields(fields)

	_, err := f.Submit(context.Background(), models.StatusPublished)
	require.NoError(t, err)
	assert.Empty(t, w.created)

	update := w.updated[target]
	require.NotNil(t, update)
	assert.Equal(t, "New title", update["title"])
	assert.Equal(t, models.StatusPublished, update["status"])

	// partial updates never carry ownership or deletion fields
	_, hasAuthorID := update["author_id"]
	_, hasDeleted := update["is_deleted"]
	_, hasCreated := update["created_at"]
	assert.False(t, hasAuthorID)
	assert.False(t, hasDeleted)
	assert.False(t, hasCreated)
}

func TestSubmitBackendFailureKeepsFields(t *testing.T) {
	w := newFakeWriter()
	w.err = errors.New("permission denied")
	f := NewForm(w, testIdentity, nil)
	f.SetFields(validFields())

	_, err := f.Submit(context.Background(), models.StatusPublished)
	require.ErrorIs(t, err, ErrWrite)
	assert.Equal(t, "Something went wrong.", f.FormError())
	assert.Equal(t, "Hi", f.Fields().Title)
}

func TestExportMarkdown(t *testing.T) {
	name, content := ExportMarkdown(Fields{
		Title:            "My First Post",
		ShortDescription: "A summary",
		Content:          "<p>body</p>",
	})
	assert.Equal(t, "My_First_Post.md", name)
	assert.Equal(t, "# My First Post\n\nA summary\n\n<p>body</p>", content)

	name, _ = ExportMarkdown(Fields{})
	assert.Equal(t, "untitled.md", name)
}
