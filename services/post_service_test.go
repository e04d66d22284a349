package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"blogboard/models"
)

func TestAnnouncesPublishOnlyOnTransition(t *testing.T) {
	// first publish of a draft notifies subscribers
	assert.True(t, announcesPublish(models.StatusDraft, models.StatusPublished))
	assert.True(t, announcesPublish("", models.StatusPublished))

	// re-saving a published post must stay quiet
	assert.False(t, announcesPublish(models.StatusPublished, models.StatusPublished))

	// unpublishing or plain draft saves never announce
	assert.False(t, announcesPublish(models.StatusPublished, models.StatusDraft))
	assert.False(t, announcesPublish(models.StatusDraft, models.StatusDraft))
}
