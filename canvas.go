package scrollframe

import "image"

// Canvas is the drawing surface a backend renders one frame onto.
// Implementations exist for ebiten (EbitenCanvas) and for headless software
// rendering (RasterCanvas).
type Canvas interface {
	// Size returns the canvas dimensions in pixels.
	Size() (w, h int)
	// Clear fills the whole canvas with c.
	Clear(c Color)
	// FillCircle draws a filled circle centered at (cx, cy).
	FillCircle(cx, cy, r float64, c Color)
	// StrokeLine draws a straight line segment of the given width.
	StrokeLine(x0, y0, x1, y1, width float64, c Color)
	// DrawImage draws img scaled into dst. Parts of dst outside the canvas
	// are cropped.
	DrawImage(img image.Image, dst Rect)
}

// Surface hands out the canvas for the next redraw. Acquire re-reads the
// viewport dimensions and resizes the backing store when they changed. It
// returns false when no canvas is available, for example outside ebiten's
// Draw call or after teardown.
type Surface interface {
	Acquire() (Canvas, bool)
}

// Scheduler drives the render loop. RequestNextFrame arranges for fn to be
// called once on the next display refresh; the returned func cancels a
// request that has not run yet.
type Scheduler interface {
	RequestNextFrame(fn func()) (cancel func())
}
