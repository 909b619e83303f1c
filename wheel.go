package scrollframe

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// WheelScroller is a ScrollContainer for an ebiten window: a virtual document
// of Length pixels scrolled by the mouse wheel and the keyboard. Scroll
// targets are eased with a tween. Not safe for concurrent use; call it from
// the ebiten goroutine only.
type WheelScroller struct {
	// WheelStep is the distance of one wheel notch in pixels.
	WheelStep float64
	// KeyStep is the distance of one arrow key press in pixels.
	KeyStep float64
	// Duration is the smoothing time of a scroll in seconds. Zero jumps.
	Duration float32
	// Ease shapes the smoothing.
	Ease ease.TweenFunc

	metrics   ScrollMetrics
	target    float64
	tween     *gween.Tween
	listeners listenerSet
}

// NewWheelScroller creates a scroller over a document of the given length.
// The viewport is set by Host.Layout.
func NewWheelScroller(length float64) *WheelScroller {
	return &WheelScroller{
		WheelStep: 120,
		KeyStep:   60,
		Duration:  0.25,
		Ease:      ease.OutCubic,
		metrics:   ScrollMetrics{Length: length},
	}
}

// Metrics implements ScrollContainer. The scroller is mounted once it has a
// viewport.
func (w *WheelScroller) Metrics() (ScrollMetrics, bool) {
	return w.metrics, w.metrics.Viewport > 0
}

// OnScroll implements ScrollContainer.
func (w *WheelScroller) OnScroll(fn func()) func() {
	return w.listeners.add(fn)
}

// SetViewport updates the visible length, re-clamps the offset and notifies
// listeners when it changed.
func (w *WheelScroller) SetViewport(viewport float64) {
	if w.metrics.Viewport == viewport {
		return
	}
	w.metrics.Viewport = viewport
	w.target = w.clamp(w.target)
	if w.tween == nil {
		w.metrics.Offset = w.target
	}
	w.listeners.notify()
}

// Offset returns the current (possibly mid-tween) offset.
func (w *WheelScroller) Offset() float64 {
	return w.metrics.Offset
}

// ScrollTo eases the offset to the given position over Duration.
func (w *WheelScroller) ScrollTo(offset float64) {
	w.target = w.clamp(offset)
	if w.Duration <= 0 || w.Ease == nil {
		w.tween = nil
		w.setOffset(w.target)
		return
	}
	w.tween = gween.New(float32(w.metrics.Offset), float32(w.target), w.Duration, w.Ease)
}

// ScrollBy eases the offset by delta relative to the current target.
func (w *WheelScroller) ScrollBy(delta float64) {
	w.ScrollTo(w.target + delta)
}

// Update reads wheel and keyboard input and advances the scroll tween by dt
// seconds. Host calls it from ebiten's Update.
func (w *WheelScroller) Update(dt float32) {
	w.readInput()
	w.step(dt)
}

func (w *WheelScroller) readInput() {
	if _, dy := ebiten.Wheel(); dy != 0 {
		w.ScrollBy(-dy * w.WheelStep)
	}
	page := w.metrics.Viewport * 0.9
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		w.ScrollBy(w.KeyStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		w.ScrollBy(-w.KeyStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		w.ScrollBy(page)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		w.ScrollBy(-page)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		w.ScrollTo(0)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		w.ScrollTo(math.Inf(1))
	}
}

// step advances the active tween without touching input.
func (w *WheelScroller) step(dt float32) {
	if w.tween == nil {
		return
	}
	val, done := w.tween.Update(dt)
	if done {
		w.tween = nil
		w.setOffset(w.target)
		return
	}
	w.setOffset(float64(val))
}

func (w *WheelScroller) setOffset(offset float64) {
	if w.metrics.Offset == offset {
		return
	}
	w.metrics.Offset = offset
	w.listeners.notify()
}

// clamp restricts an offset to the scrollable range.
func (w *WheelScroller) clamp(offset float64) float64 {
	maxOffset := math.Max(w.metrics.Length-w.metrics.Viewport, 0)
	return math.Max(0, math.Min(offset, maxOffset))
}
