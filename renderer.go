package scrollframe

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"time"
)

// DefaultFrameCount is used when Config.FrameCount is zero.
const DefaultFrameCount = 100

// State is the renderer's lifecycle state.
type State uint8

const (
	StateInitializing State = iota // waiting for the preload to finish
	StateBitmapReady               // drawing preloaded frames
	StateProcedural                // drawing the procedural point field
	StateStopped                   // torn down
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateBitmapReady:
		return "bitmap"
	case StateProcedural:
		return "procedural"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Config holds the renderer options.
type Config struct {
	// FrameCount is the number of discrete frames. Zero selects
	// DefaultFrameCount; a negative count renders a single static
	// procedural frame.
	FrameCount int
	// PathTemplate locates frame images and contains IndexToken. Empty
	// selects the procedural backend immediately.
	PathTemplate string
	// Container drives progress. Nil holds progress at 0.
	Container ScrollContainer
	// Loader fetches frame images for PathTemplate.
	Loader AssetLoader
	// Scheduler drives the render loop. Nil redraws only on scroll.
	Scheduler Scheduler
	// Surface provides the canvas.
	Surface Surface
	// Field configures the procedural backend; zero fields take defaults.
	Field FieldParams
	// Debug logs per-frame stats and preload fallbacks to stderr.
	Debug bool
}

// Renderer draws the frame that corresponds to the current scroll progress.
// The backend is chosen once per Start: preloaded bitmaps if every frame
// loads, the procedural point field otherwise.
type Renderer struct {
	cfg        Config
	frameCount int
	tracker    *ScrollTracker

	mu            sync.Mutex
	state         State
	backend       backend
	started       bool
	unsubscribe   func()
	cancelFrame   func()
	cancelPreload context.CancelFunc
	preloadErr    error
	ready         chan struct{}

	// drawMu serializes access to the canvas.
	drawMu sync.Mutex
	stats  RenderStats
}

// NewRenderer creates a renderer. Nothing is loaded or subscribed until
// Start.
func NewRenderer(cfg Config) *Renderer {
	n := cfg.FrameCount
	switch {
	case n == 0:
		n = DefaultFrameCount
		cfg.FrameCount = n
	case n < 0:
		n = 1
	}
	cfg.Field = cfg.Field.withDefaults()
	return &Renderer{
		cfg:        cfg,
		frameCount: n,
		tracker:    NewScrollTracker(cfg.Container),
		state:      StateInitializing,
		ready:      make(chan struct{}),
	}
}

// FrameCount returns the effective number of frames.
func (r *Renderer) FrameCount() int {
	return r.frameCount
}

// Tracker returns the renderer's scroll tracker.
func (r *Renderer) Tracker() *ScrollTracker {
	return r.tracker
}

// State returns the current lifecycle state.
func (r *Renderer) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// PreloadErr returns why the bitmap backend was not selected, or nil.
func (r *Renderer) PreloadErr() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.preloadErr
}

// Ready is closed once the backend is chosen or the renderer is stopped.
func (r *Renderer) Ready() <-chan struct{} {
	return r.ready
}

// FrameIndex returns the frame for the latest progress sample.
func (r *Renderer) FrameIndex() int {
	return FrameIndex(r.tracker.Progress(), r.frameCount)
}

// Start subscribes to scroll changes, begins preloading and schedules the
// render loop. ctx bounds the preload only. Start is a no-op after the
// first call.
func (r *Renderer) Start(ctx context.Context) {
	r.mu.Lock()
	if r.started {
		r.mu.Unlock()
		return
	}
	r.started = true
	r.mu.Unlock()

	r.tracker.Start()
	unsubscribe := r.tracker.Subscribe(func(float64) { r.Redraw() })

	var cancel context.CancelFunc
	if r.cfg.PathTemplate == "" || r.cfg.FrameCount < 0 {
		r.resolve(Preload(ctx, r.cfg.Loader, r.cfg.PathTemplate, r.cfg.FrameCount))
	} else {
		var pctx context.Context
		pctx, cancel = context.WithCancel(ctx)
		go func() {
			r.resolve(Preload(pctx, r.cfg.Loader, r.cfg.PathTemplate, r.frameCount))
		}()
	}

	r.mu.Lock()
	r.unsubscribe = unsubscribe
	r.cancelPreload = cancel
	if r.cfg.Scheduler != nil && r.state != StateStopped {
		r.cancelFrame = r.cfg.Scheduler.RequestNextFrame(r.tick)
	}
	r.mu.Unlock()

	r.Redraw()
}

// Stop releases the scroll subscription and the pending frame request. A
// preload still in flight is cancelled and its result discarded.
func (r *Renderer) Stop() {
	r.mu.Lock()
	if r.state == StateStopped {
		r.mu.Unlock()
		return
	}
	if r.state == StateInitializing {
		close(r.ready)
	}
	r.state = StateStopped
	r.backend = nil
	unsubscribe, cancelFrame, cancelPreload := r.unsubscribe, r.cancelFrame, r.cancelPreload
	r.unsubscribe, r.cancelFrame, r.cancelPreload = nil, nil, nil
	r.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	if cancelFrame != nil {
		cancelFrame()
	}
	if cancelPreload != nil {
		cancelPreload()
	}
	r.tracker.Stop()
}

// resolve moves Initializing to its terminal backend. Results arriving after
// Stop are dropped.
func (r *Renderer) resolve(res PreloadResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != StateInitializing {
		return
	}
	switch res := res.(type) {
	case Loaded:
		if len(res.Frames) == r.frameCount {
			r.backend = bitmapBackend{frames: res.Frames}
			break
		}
		r.preloadErr = fmt.Errorf("scrollframe: preload returned %d of %d frames", len(res.Frames), r.frameCount)
		r.backend = proceduralBackend{params: r.cfg.Field}
	case Unavailable:
		r.preloadErr = res.Err
		r.backend = proceduralBackend{params: r.cfg.Field}
	default:
		r.preloadErr = fmt.Errorf("scrollframe: unknown preload result %T", res)
		r.backend = proceduralBackend{params: r.cfg.Field}
	}
	r.state = r.backend.state()
	close(r.ready)
	if r.cfg.Debug && r.preloadErr != nil && !errors.Is(r.preloadErr, ErrOptOut) {
		log.Printf("scrollframe: frame sequence unavailable, using procedural field: %v", r.preloadErr)
	}
}

// tick is the render loop body: redraw, then ask for the next refresh.
func (r *Renderer) tick() {
	r.Redraw()

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == StateStopped || r.cfg.Scheduler == nil {
		return
	}
	r.cancelFrame = r.cfg.Scheduler.RequestNextFrame(r.tick)
}

// Redraw draws the frame for the latest progress sample and reports whether
// anything was drawn. It never panics: a frame that faults is skipped and
// counted in Stats.
func (r *Renderer) Redraw() (drawn bool) {
	r.drawMu.Lock()
	defer r.drawMu.Unlock()

	r.mu.Lock()
	be := r.backend
	r.mu.Unlock()

	if be == nil {
		r.stats.Skipped++
		return false
	}

	defer func() {
		if rec := recover(); rec != nil {
			r.stats.Faults++
			drawn = false
			if r.cfg.Debug {
				_, _ = fmt.Fprintf(os.Stderr, "[scrollframe] frame skipped: draw panic: %v\n", rec)
			}
		}
	}()

	if r.cfg.Surface == nil {
		r.stats.Skipped++
		return false
	}
	canvas, ok := r.cfg.Surface.Acquire()
	if !ok || canvas == nil {
		r.stats.Skipped++
		return false
	}

	idx := FrameIndex(r.tracker.Progress(), r.frameCount)

	var t0 time.Time
	if r.cfg.Debug {
		t0 = time.Now()
	}

	calls, ok := be.draw(canvas, idx, r.frameCount)
	if !ok {
		r.stats.Skipped++
		return false
	}

	r.stats.Draws++
	r.stats.LastFrame = idx
	r.stats.LastDrawCalls = calls
	if r.cfg.Debug {
		r.stats.LastDrawTime = time.Since(t0)
		r.debugLog(be.state())
	}
	return true
}

// Stats returns a snapshot of the redraw counters.
func (r *Renderer) Stats() RenderStats {
	r.drawMu.Lock()
	defer r.drawMu.Unlock()
	return r.stats
}
