package scrollframe

import (
	"math"
	"sync"
	"sync/atomic"
)

// ScrollTracker follows a ScrollContainer and exposes its progress in [0, 1].
// Progress is a "latest value wins" snapshot: readers never block and never
// see a queue of past values.
type ScrollTracker struct {
	container ScrollContainer

	progress atomic.Uint64 // math.Float64bits of the latest progress

	mu      sync.Mutex
	subs    map[int]func(float64)
	nextSub int
	release func()
	started bool
	stopped bool
}

// NewScrollTracker creates a tracker for container. A nil container is
// allowed and holds progress at 0 forever.
func NewScrollTracker(container ScrollContainer) *ScrollTracker {
	return &ScrollTracker{
		container: container,
		subs:      make(map[int]func(float64)),
	}
}

// Start registers the scroll listener and samples the current progress.
// Calling Start more than once, or after Stop, has no effect.
func (t *ScrollTracker) Start() {
	t.mu.Lock()
	if t.started || t.stopped || t.container == nil {
		t.started = true
		t.mu.Unlock()
		return
	}
	t.started = true
	t.mu.Unlock()

	release := t.container.OnScroll(t.Refresh)

	t.mu.Lock()
	if t.stopped {
		// Stop raced with Start; drop the listener immediately.
		t.mu.Unlock()
		release()
		return
	}
	t.release = release
	t.mu.Unlock()

	t.Refresh()
}

// Stop releases the scroll listener exactly once and drops all subscribers.
func (t *ScrollTracker) Stop() {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	t.stopped = true
	release := t.release
	t.release = nil
	clear(t.subs)
	t.mu.Unlock()

	if release != nil {
		release()
	}
}

// Progress returns the most recent progress sample.
func (t *ScrollTracker) Progress() float64 {
	return math.Float64frombits(t.progress.Load())
}

// Subscribe registers fn to be called with the new progress whenever it
// changes. The returned func unsubscribes.
func (t *ScrollTracker) Subscribe(fn func(p float64)) (unsubscribe func()) {
	t.mu.Lock()
	id := t.nextSub
	t.nextSub++
	t.subs[id] = fn
	t.mu.Unlock()

	return func() {
		t.mu.Lock()
		delete(t.subs, id)
		t.mu.Unlock()
	}
}

// Refresh re-samples the container. It is registered as the scroll listener
// and may also be called by hosts after a layout change.
func (t *ScrollTracker) Refresh() {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	t.mu.Unlock()

	p := 0.0
	if t.container != nil {
		if m, ok := t.container.Metrics(); ok {
			p = m.Progress()
		}
	}

	prev := math.Float64frombits(t.progress.Swap(math.Float64bits(p)))
	if prev == p {
		return
	}

	t.mu.Lock()
	subs := make([]func(float64), 0, len(t.subs))
	for _, fn := range t.subs {
		subs = append(subs, fn)
	}
	t.mu.Unlock()

	for _, fn := range subs {
		fn(p)
	}
}
