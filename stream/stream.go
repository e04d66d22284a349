package stream

import "sync"

// Value is a typed last-value stream: a standing subscription that delivers
// the current value immediately on subscribe and every later value as it is
// set. Each subscriber channel holds only the most recent value; slow
// consumers are skipped ahead rather than blocked, so a subscriber always
// observes the latest value and may miss intermediate ones.
type Value[T any] struct {
	mu      sync.Mutex
	subs    map[int]chan T
	nextID  int
	last    T
	hasLast bool
	closed  bool
}

// NewValue creates an empty stream with no current value.
func NewValue[T any]() *Value[T] {
	return &Value[T]{subs: make(map[int]chan T)}
}

// Set publishes val to every live subscriber and caches it for future ones.
func (v *Value[T]) Set(val T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.last = val
	v.hasLast = true
	for _, ch := range v.subs {
		push(ch, val)
	}
}

// Get returns the cached value and whether one has been set.
func (v *Value[T]) Get() (T, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.last, v.hasLast
}

// Subscribe registers a new subscriber. The returned channel is primed with
// the current value when one exists. The cancel function is idempotent and
// closes the channel.
func (v *Value[T]) Subscribe() (<-chan T, func()) {
	v.mu.Lock()
	defer v.mu.Unlock()

	ch := make(chan T, 1)
	if v.closed {
		close(ch)
		return ch, func() {}
	}

	id := v.nextID
	v.nextID++
	v.subs[id] = ch
	if v.hasLast {
		push(ch, v.last)
	}

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			v.mu.Lock()
			defer v.mu.Unlock()
			if _, ok := v.subs[id]; ok {
				delete(v.subs, id)
				close(ch)
			}
		})
	}
	return ch, cancel
}

// Close tears down the stream and closes every subscriber channel.
// Set and Subscribe become no-ops afterwards.
func (v *Value[T]) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.closed = true
	for id, ch := range v.subs {
		delete(v.subs, id)
		close(ch)
	}
}

// push replaces the channel's buffered value with val without blocking.
func push[T any](ch chan T, val T) {
	for {
		select {
		case ch <- val:
			return
		default:
			select {
			case <-ch:
			default:
			}
		}
	}
}
