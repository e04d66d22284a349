package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"blogboard/dto"
)

func strPtr(s string) *string { return &s }

func TestProfileUpdatesSkipsAbsentFields(t *testing.T) {
	assert.Empty(t, profileUpdates(dto.ProfileRequest{}))

	got := profileUpdates(dto.ProfileRequest{Name: strPtr("Ada")})
	assert.Equal(t, map[string]interface{}{"name": "Ada"}, got)

	got = profileUpdates(dto.ProfileRequest{
		Name:      strPtr("Ada"),
		AvatarURL: strPtr("https://example.com/a.png"),
	})
	assert.Equal(t, map[string]interface{}{
		"name":       "Ada",
		"avatar_url": "https://example.com/a.png",
	}, got)

	// an explicit empty string still counts as a set field
	got = profileUpdates(dto.ProfileRequest{AvatarURL: strPtr("")})
	assert.Equal(t, map[string]interface{}{"avatar_url": ""}, got)
}
