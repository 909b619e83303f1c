package scrollframe

import (
	"math"
	"testing"
)

func TestWheelScrollerMountedWithViewport(t *testing.T) {
	w := NewWheelScroller(3000)
	if _, ok := w.Metrics(); ok {
		t.Error("mounted before layout")
	}
	w.SetViewport(1000)
	m, ok := w.Metrics()
	if !ok || m.Viewport != 1000 || m.Length != 3000 {
		t.Errorf("Metrics() = %+v, %v", m, ok)
	}
}

func TestWheelScrollerJump(t *testing.T) {
	w := NewWheelScroller(3000)
	w.SetViewport(1000)
	w.Duration = 0

	notified := 0
	w.OnScroll(func() { notified++ })

	w.ScrollTo(500)
	if w.Offset() != 500 || notified != 1 {
		t.Errorf("Offset() = %v, notified %d; want 500, 1", w.Offset(), notified)
	}
	w.ScrollTo(99999)
	if w.Offset() != 2000 {
		t.Errorf("Offset() = %v, want clamp to 2000", w.Offset())
	}
	w.ScrollBy(-5000)
	if w.Offset() != 0 {
		t.Errorf("Offset() = %v, want clamp to 0", w.Offset())
	}
	w.ScrollTo(0)
	if notified != 3 {
		t.Errorf("notified = %d, want 3 (no-op scroll is silent)", notified)
	}
}

func TestWheelScrollerEases(t *testing.T) {
	w := NewWheelScroller(3000)
	w.SetViewport(1000)

	w.ScrollTo(1000)
	if w.Offset() != 0 {
		t.Fatalf("Offset() = %v before any step, want 0", w.Offset())
	}

	w.step(w.Duration / 2)
	mid := w.Offset()
	if !(mid > 0 && mid < 1000) {
		t.Errorf("mid-tween offset = %v, want between 0 and 1000", mid)
	}

	w.step(w.Duration)
	if w.Offset() != 1000 {
		t.Errorf("Offset() = %v after the tween, want 1000", w.Offset())
	}
	if w.tween != nil {
		t.Error("tween not cleared")
	}
}

func TestWheelScrollerScrollByAccumulatesTarget(t *testing.T) {
	w := NewWheelScroller(3000)
	w.SetViewport(1000)

	// Two notches before the first step both count.
	w.ScrollBy(w.WheelStep)
	w.ScrollBy(w.WheelStep)
	for range 60 {
		w.step(1.0 / 60)
	}
	if math.Abs(w.Offset()-240) > 1e-3 {
		t.Errorf("Offset() = %v, want 240", w.Offset())
	}
}

func TestWheelScrollerResizeClamps(t *testing.T) {
	w := NewWheelScroller(3000)
	w.SetViewport(1000)
	w.Duration = 0
	w.ScrollTo(2000)

	w.SetViewport(2500)
	if w.Offset() != 500 {
		t.Errorf("Offset() = %v after resize, want 500", w.Offset())
	}
}

func TestWheelScrollerDrivesTracker(t *testing.T) {
	w := NewWheelScroller(3000)
	w.SetViewport(1000)
	w.Duration = 0
	tr := NewScrollTracker(w)
	tr.Start()
	defer tr.Stop()

	w.ScrollTo(1000)
	if p := tr.Progress(); p != 0.5 {
		t.Errorf("Progress() = %v, want 0.5", p)
	}
}
