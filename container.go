package scrollframe

import "sync"

// ScrollContainer is a scrollable element whose position drives progress.
type ScrollContainer interface {
	// Metrics returns the container's current scroll metrics. ok is false
	// while the container is not mounted.
	Metrics() (m ScrollMetrics, ok bool)
	// OnScroll registers fn to be called after every scroll or resize. The
	// returned release func removes the listener.
	OnScroll(fn func()) (release func())
}

// listenerSet is a small registry of scroll listeners shared by the
// concrete containers.
type listenerSet struct {
	mu     sync.Mutex
	nextID int
	fns    map[int]func()
}

func (l *listenerSet) add(fn func()) (release func()) {
	l.mu.Lock()
	if l.fns == nil {
		l.fns = make(map[int]func())
	}
	id := l.nextID
	l.nextID++
	l.fns[id] = fn
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.fns, id)
			l.mu.Unlock()
		})
	}
}

func (l *listenerSet) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.fns)
}

// notify calls every listener outside the lock, so listeners may release
// themselves.
func (l *listenerSet) notify() {
	l.mu.Lock()
	fns := make([]func(), 0, len(l.fns))
	for _, fn := range l.fns {
		fns = append(fns, fn)
	}
	l.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// ManualContainer is a ScrollContainer whose offset and size are set by the
// caller. It backs scripted playback, headless rendering, and tests. Safe for
// concurrent use.
type ManualContainer struct {
	mu      sync.Mutex
	metrics ScrollMetrics
	mounted bool

	listeners listenerSet
}

// NewManualContainer returns a mounted container of the given content and
// viewport length, scrolled to its start.
func NewManualContainer(length, viewport float64) *ManualContainer {
	return &ManualContainer{
		metrics: ScrollMetrics{Length: length, Viewport: viewport},
		mounted: true,
	}
}

// Metrics implements ScrollContainer.
func (c *ManualContainer) Metrics() (ScrollMetrics, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.metrics, c.mounted
}

// OnScroll implements ScrollContainer.
func (c *ManualContainer) OnScroll(fn func()) func() {
	return c.listeners.add(fn)
}

// SetMounted toggles whether Metrics reports the container as available and
// notifies listeners.
func (c *ManualContainer) SetMounted(mounted bool) {
	c.mu.Lock()
	c.mounted = mounted
	c.mu.Unlock()
	c.listeners.notify()
}

// SetOffset scrolls to an absolute offset. Out-of-range offsets are kept as
// given, mimicking elastic overscroll.
func (c *ManualContainer) SetOffset(offset float64) {
	c.mu.Lock()
	c.metrics.Offset = offset
	c.mu.Unlock()
	c.listeners.notify()
}

// ScrollBy scrolls by delta relative to the current offset.
func (c *ManualContainer) ScrollBy(delta float64) {
	c.mu.Lock()
	c.metrics.Offset += delta
	c.mu.Unlock()
	c.listeners.notify()
}

// SetProgress scrolls to the offset that corresponds to progress p.
func (c *ManualContainer) SetProgress(p float64) {
	c.mu.Lock()
	c.metrics.Offset = p * (c.metrics.Length - c.metrics.Viewport)
	c.mu.Unlock()
	c.listeners.notify()
}

// Resize changes the content and viewport lengths, keeping the offset.
func (c *ManualContainer) Resize(length, viewport float64) {
	c.mu.Lock()
	c.metrics.Length = length
	c.metrics.Viewport = viewport
	c.mu.Unlock()
	c.listeners.notify()
}

// ListenerCount reports how many scroll listeners are registered.
func (c *ManualContainer) ListenerCount() int {
	return c.listeners.len()
}
