package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType names a post lifecycle event.
type EventType string

const (
	PostCreated   EventType = "post.created"
	PostUpdated   EventType = "post.updated"
	PostPublished EventType = "post.published"
	PostDeleted   EventType = "post.deleted"
)

// BaseEvent is the common envelope of every event.
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"` // "api", "importer", "worker"
	Version   string    `json:"version"`
}

// GetType returns the event type.
func (e BaseEvent) GetType() EventType {
	return e.Type
}

// PostEvent is published onto the post events topic for every lifecycle
// change. Title and Category ride along so consumers can render
// notifications without a lookup.
type PostEvent struct {
	BaseEvent
	PostID      string `json:"post_id"`
	AuthorID    string `json:"author_id"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Status      string `json:"status"`
	ShortDesc   string `json:"short_desc,omitempty"`
	PublishedAt string `json:"published_at,omitempty"`
}

// NewPostEvent stamps the envelope for a post lifecycle event.
func NewPostEvent(t EventType, source string) BaseEvent {
	return BaseEvent{
		ID:        uuid.New().String(),
		Type:      t,
		Timestamp: time.Now(),
		Source:    source,
		Version:   "1.0",
	}
}
