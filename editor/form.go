package editor

import (
	"context"
	"errors"
	"strings"
	"sync"

	"blogboard/auth"
	"blogboard/models"
)

// ErrValidation marks a submit rejected for missing required fields. The
// user-facing message is FormError on the controller.
var ErrValidation = errors.New("validation failed")

// ErrWrite marks a submit that reached the backend and was rejected there.
var ErrWrite = errors.New("write failed")

const (
	msgMissingFields = "Please fill in all required fields."
	msgWriteFailed   = "Something went wrong."
)

// Fields is the transient editing state of the authoring form. Tags holds
// the raw comma-separated input; it is parsed only at submit/autosave time.
type Fields struct {
	Title             string            `json:"title"`
	Category          string            `json:"category"`
	Tags              string            `json:"tags"`
	Author            string            `json:"author"`
	AuthorEmail       string            `json:"author_email"`
	ShortDescription  string            `json:"short_description"`
	EstimatedReadTime string            `json:"estimated_read_time"`
	Content           string            `json:"content"`
	Status            models.PostStatus `json:"status"`
}

// PostWriter is the slice of the repository adapter the form needs.
type PostWriter interface {
	// Create inserts a new post and returns its generated id.
	Create(ctx context.Context, post models.Post) (string, error)
	// Update merges only the given fields into an existing post.
	Update(ctx context.Context, id string, fields map[string]any) error
}

// Form owns the transient editing state for one authoring session, validates
// required fields and maps submits onto repository create/update calls. It
// does not lock the record: concurrent edits elsewhere race last-write-wins.
type Form struct {
	mu       sync.Mutex
	writer   PostWriter
	identity auth.Identity
	autosave *Autosave

	fields    Fields
	editingID string
	formError string
}

// NewForm seeds the author name/email fields from the signed-in identity.
// autosave may be nil when draft autosave is not wanted.
func NewForm(writer PostWriter, ident auth.Identity, autosave *Autosave) *Form {
	f := &Form{writer: writer, identity: ident, autosave: autosave}
	f.fields = f.defaults()
	return f
}

func (f *Form) defaults() Fields {
	return Fields{
		Author:      f.identity.Name,
		AuthorEmail: f.identity.Email,
		Status:      models.StatusPublished,
	}
}

// SetFields replaces the transient state with the client's latest snapshot
// and notifies the autosave controller. Switching away from draft status
// cancels any pending autosave without saving.
func (f *Form) SetFields(fields Fields) {
	f.mu.Lock()
	if fields.Status == "" {
		fields.Status = models.StatusPublished
	}
	f.fields = fields
	id := f.editingID
	f.mu.Unlock()

	if f.autosave != nil {
		f.autosave.Touch(id, fields)
	}
}

// Fields returns a copy of the current transient state.
func (f *Form) Fields() Fields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// EditingID returns the current edit target, or "" when composing new.
func (f *Form) EditingID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.editingID
}

// FormError returns the current form-level error message, if any.
func (f *Form) FormError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.formError
}

// LoadForEdit copies a post's fields into the transient state and records it
// as the edit target.
func (f *Form) LoadForEdit(p models.Post) {
	f.mu.Lock()
	f.editingID = p.ID.Hex()
	status := p.Status
	if status == "" {
		status = models.StatusDraft
	}
	f.fields = Fields{
		Title:             p.Title,
		Category:          p.Category,
		Tags:              strings.Join(p.Tags, ", "),
		Author:            firstNonEmpty(p.Author, f.identity.Name),
		AuthorEmail:       firstNonEmpty(p.AuthorEmail, f.identity.Email),
		ShortDescription:  p.ShortDescription,
		EstimatedReadTime: p.EstimatedReadTime,
		Content:           p.Content,
		Status:            status,
	}
	f.formError = ""
	f.mu.Unlock()
}

// Reset clears the transient state back to defaults and cancels any pending
// autosave.
func (f *Form) Reset() {
	f.mu.Lock()
	f.editingID = ""
	f.fields = f.defaults()
	f.formError = ""
	f.mu.Unlock()

	if f.autosave != nil {
		f.autosave.Cancel()
	}
}

// Submit validates the form and issues a create or update with the given
// target status. Validation applies identically to drafts and published
// posts. On success the form resets; on backend failure the fields stay
// intact for a retry.
func (f *Form) Submit(ctx context.Context, targetStatus models.PostStatus) (string, error) {
	f.mu.Lock()
	fields := f.fields
	editingID := f.editingID
	f.mu.Unlock()

	if fields.Title == "" || fields.Content == "" || fields.Author == "" ||
		fields.AuthorEmail == "" || fields.Category == "" {
		f.setError(msgMissingFields)
		return "", ErrValidation
	}
	f.setError("")

	if !targetStatus.Valid() {
		targetStatus = models.StatusPublished
	}

	id := editingID
	var err error
	if editingID != "" {
		err = f.writer.Update(ctx, editingID, payloadFields(fields, targetStatus))
	} else {
		id, err = f.writer.Create(ctx, buildPost(fields, targetStatus, f.identity.ID))
	}
	if err != nil {
		f.setError(msgWriteFailed)
		return "", errors.Join(ErrWrite, err)
	}

	f.Reset()
	return id, nil
}

func (f *Form) setError(msg string) {
	f.mu.Lock()
	f.formError = msg
	f.mu.Unlock()
}

// buildPost assembles the full create payload. AuthorID is set once here and
// never appears in update payloads.
func buildPost(fields Fields, status models.PostStatus, authorID string) models.Post {
	return models.Post{
		Title:             fields.Title,
		Category:          fields.Category,
		Tags:              ParseTags(fields.Tags),
		Content:           fields.Content,
		ShortDescription:  fields.ShortDescription,
		EstimatedReadTime: fields.EstimatedReadTime,
		Author:            fields.Author,
		AuthorEmail:       fields.AuthorEmail,
		AuthorID:          authorID,
		Status:            status,
		IsDeleted:         false,
	}
}

// payloadFields is the partial-update form of buildPost: the full editable
// field set, never author_id, created_at or is_deleted.
func payloadFields(fields Fields, status models.PostStatus) map[string]any {
	return map[string]any{
		"title":               fields.Title,
		"category":            fields.Category,
		"tags":                ParseTags(fields.Tags),
		"content":             fields.Content,
		"short_description":   fields.ShortDescription,
		"estimated_read_time": fields.EstimatedReadTime,
		"author":              fields.Author,
		"author_email":        fields.AuthorEmail,
		"status":              status,
	}
}

// DraftUpdate maps fields onto the partial update an autosave write sends:
// the full editable field set with status pinned to draft.
func DraftUpdate(fields Fields) map[string]any {
	return payloadFields(fields, models.StatusDraft)
}

// ParseTags splits a comma-separated input into trimmed tags, dropping
// empty entries and preserving order.
func ParseTags(input string) []string {
	parts := strings.Split(input, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
