package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubscribePrimedWithLastValue(t *testing.T) {
	v := NewValue[int]()
	v.Set(41)
	v.Set(42)

	ch, cancel := v.Subscribe()
	defer cancel()

	assert.Equal(t, 42, <-ch)
}

func TestSubscribeBeforeFirstValue(t *testing.T) {
	v := NewValue[string]()

	ch, cancel := v.Subscribe()
	defer cancel()

	select {
	case got := <-ch:
		t.Fatalf("expected no value before first Set, got %q", got)
	default:
	}

	v.Set("hello")
	assert.Equal(t, "hello", <-ch)
}

func TestSlowSubscriberSeesLatestOnly(t *testing.T) {
	v := NewValue[int]()
	ch, cancel := v.Subscribe()
	defer cancel()

	// subscriber never drains between sets; the buffer keeps the newest
	v.Set(1)
	v.Set(2)
	v.Set(3)

	assert.Equal(t, 3, <-ch)
}

func TestCancelIsIdempotentAndStopsDelivery(t *testing.T) {
	v := NewValue[int]()
	ch, cancel := v.Subscribe()

	cancel()
	cancel()

	v.Set(7)
	_, open := <-ch
	assert.False(t, open, "channel should be closed after cancel")
}

func TestCloseClosesAllSubscribers(t *testing.T) {
	v := NewValue[int]()
	ch1, _ := v.Subscribe()
	ch2, _ := v.Subscribe()

	v.Close()

	_, open1 := <-ch1
	_, open2 := <-ch2
	assert.False(t, open1)
	assert.False(t, open2)

	// post-close operations are no-ops
	v.Set(5)
	_, ok := v.Get()
	assert.False(t, ok)
}

func TestGetReturnsCachedValue(t *testing.T) {
	v := NewValue[int]()
	_, ok := v.Get()
	assert.False(t, ok)

	v.Set(9)
	got, ok := v.Get()
	assert.True(t, ok)
	assert.Equal(t, 9, got)
}
