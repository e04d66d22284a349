package handlers

import (
	"context"

	"blogboard/internal/logger"
	"blogboard/events"
	"blogboard/repositories"
)

// EventHandlers consumes post lifecycle events and fans published posts out
// to newsletter subscribers.
type EventHandlers struct {
	newsletter *repositories.NewsletterRepository
}

func NewEventHandlers(newsletter *repositories.NewsletterRepository) *EventHandlers {
	return &EventHandlers{newsletter: newsletter}
}

// HandlePostPublished notifies every subscriber about the new post. An
// error here reschedules the event onto a retry topic, so the subscriber
// list is fetched fresh each attempt.
func (h *EventHandlers) HandlePostPublished(ctx context.Context, ev *events.PostEvent) error {
	emails, err := h.newsletter.ListEmails(ctx)
	if err != nil {
		return err
	}

	for _, email := range emails {
		// delivery goes through the mail provider once one is configured;
		// until then the fan-out is recorded in the log
		logger.InfoWithFields("newsletter notification", logger.Fields{
			"to":       email,
			"post_id":  ev.PostID,
			"title":    ev.Title,
			"category": ev.Category,
			"author":   ev.Author,
		})
	}

	logger.Log.Infof("post %s fanned out to %d subscribers", ev.PostID, len(emails))
	return nil
}

// HandlePostDeleted keeps an audit trail of takedowns.
func (h *EventHandlers) HandlePostDeleted(ctx context.Context, ev *events.PostEvent) error {
	logger.InfoWithFields("post deleted", logger.Fields{
		"post_id": ev.PostID,
		"title":   ev.Title,
	})
	return nil
}
