package eventbus

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicNaming(t *testing.T) {
	topic := NewTopic("blogboard.post.events")

	assert.Equal(t, "blogboard.post.events", topic.Base())
	assert.Equal(t, "blogboard.post.events.dlq", topic.DLQ())

	retries := topic.GetRetryTopics()
	require.Len(t, retries, len(RetryDelays))
	assert.Equal(t, "blogboard.post.events.retry.10s", retries[0])
	assert.Equal(t, "blogboard.post.events.retry.1m0s", retries[2])
	assert.Equal(t, "blogboard.post.events.retry.10m0s", retries[len(retries)-1])
}

func TestGetRetryTopicPerAttempt(t *testing.T) {
	topic := NewTopic("blogboard.post.events")

	first, err := topic.GetRetryTopic(1)
	require.NoError(t, err)
	assert.Equal(t, "blogboard.post.events.retry.10s", first)

	last, err := topic.GetRetryTopic(len(RetryDelays))
	require.NoError(t, err)
	assert.Equal(t, "blogboard.post.events.retry.10m0s", last)

	_, err = topic.GetRetryTopic(len(RetryDelays) + 1)
	assert.True(t, errors.Is(err, ErrMaxRetryExceeded))

	_, err = topic.GetRetryTopic(0)
	assert.True(t, errors.Is(err, ErrMaxRetryExceeded))
}

func TestParseRetryFromTopicName(t *testing.T) {
	d, ok := ParseRetryFromTopicName("blogboard.post.events.retry.30s")
	require.True(t, ok)
	assert.Equal(t, 30*time.Second, d)

	d, ok = ParseRetryFromTopicName("blogboard.post.events.retry.5m0s")
	require.True(t, ok)
	assert.Equal(t, 5*time.Minute, d)

	_, ok = ParseRetryFromTopicName("blogboard.post.events")
	assert.False(t, ok)

	_, ok = ParseRetryFromTopicName("blogboard.post.events.retry.")
	assert.False(t, ok)

	_, ok = ParseRetryFromTopicName("blogboard.post.events.retry.notaduration")
	assert.False(t, ok)
}
