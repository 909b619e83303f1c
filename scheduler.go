package scrollframe

import "sync"

// ManualScheduler is a Scheduler advanced explicitly with Tick. It stands in
// for a display refresh in headless rendering and tests.
type ManualScheduler struct {
	mu      sync.Mutex
	nextID  int
	pending map[int]func()
	order   []int
}

// NewManualScheduler returns an empty scheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{pending: make(map[int]func())}
}

// RequestNextFrame implements Scheduler.
func (s *ManualScheduler) RequestNextFrame(fn func()) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.pending[id] = fn
	s.order = append(s.order, id)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.pending, id)
		s.mu.Unlock()
	}
}

// Pending reports how many requests wait for the next Tick.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Tick runs every request made before the call, in request order, and
// returns how many ran. Requests made while ticking wait for the next Tick.
func (s *ManualScheduler) Tick() int {
	s.mu.Lock()
	order := s.order
	s.order = nil
	fns := make([]func(), 0, len(order))
	for _, id := range order {
		if fn, ok := s.pending[id]; ok {
			fns = append(fns, fn)
			delete(s.pending, id)
		}
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
	return len(fns)
}
