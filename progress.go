package scrollframe

import "math"

// ScrollMetrics describes a scrollable container along its scroll axis.
type ScrollMetrics struct {
	// Offset is how far the container has scrolled past its start edge.
	Offset float64
	// Length is the total length of the scrolled content.
	Length float64
	// Viewport is the length of the visible part of the content.
	Viewport float64
}

// Progress maps metrics to a value in [0, 1]. 0 means the container's start
// is aligned with the viewport start and 1 means its end is aligned with the
// viewport end. Overscroll clamps to the nearest bound. Content that cannot
// scroll, and non-finite input, yields 0.
func (m ScrollMetrics) Progress() float64 {
	span := m.Length - m.Viewport
	if !(span > 0) || math.IsInf(span, 0) {
		return 0
	}
	return ClampProgress(m.Offset / span)
}

// ClampProgress clamps p to [0, 1] and maps NaN to 0.
func ClampProgress(p float64) float64 {
	if math.IsNaN(p) {
		return 0
	}
	return clamp01(p)
}

// FrameIndex returns floor(p·(frameCount−1)) for a clamped progress p. The
// result always lies in [0, frameCount−1]; a frameCount below 2 always
// yields 0.
func FrameIndex(p float64, frameCount int) int {
	if frameCount <= 1 {
		return 0
	}
	idx := int(math.Floor(ClampProgress(p) * float64(frameCount-1)))
	if idx < 0 {
		return 0
	}
	if idx > frameCount-1 {
		return frameCount - 1
	}
	return idx
}
