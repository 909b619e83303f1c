package scrollframe

import (
	"image"
	"math"
	"sync"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
)

// RasterCanvas is a software Canvas backed by a gg context. It renders
// without a GPU or window, which makes it suitable for frame export and
// pixel comparisons.
type RasterCanvas struct {
	dc *gg.Context
}

// NewRasterCanvas creates a w×h canvas. Non-positive sizes are raised to 1.
func NewRasterCanvas(w, h int) *RasterCanvas {
	return &RasterCanvas{dc: gg.NewContext(max(w, 1), max(h, 1))}
}

// Resize reallocates the backing image if the size changed. The content is
// discarded on reallocation.
func (c *RasterCanvas) Resize(w, h int) {
	w, h = max(w, 1), max(h, 1)
	if c.dc.Width() == w && c.dc.Height() == h {
		return
	}
	c.dc = gg.NewContext(w, h)
}

// Image returns the backing image. It is overwritten by later draws.
func (c *RasterCanvas) Image() *image.RGBA {
	return c.dc.Image().(*image.RGBA)
}

// Size implements Canvas.
func (c *RasterCanvas) Size() (int, int) {
	return c.dc.Width(), c.dc.Height()
}

// Clear implements Canvas.
func (c *RasterCanvas) Clear(col Color) {
	c.dc.SetColor(col.toNRGBA())
	c.dc.Clear()
}

// FillCircle implements Canvas.
func (c *RasterCanvas) FillCircle(cx, cy, r float64, col Color) {
	if !(r > 0) {
		return
	}
	c.dc.DrawCircle(cx, cy, r)
	c.dc.SetColor(col.toNRGBA())
	c.dc.Fill()
}

// StrokeLine implements Canvas.
func (c *RasterCanvas) StrokeLine(x0, y0, x1, y1, width float64, col Color) {
	c.dc.SetLineWidth(width)
	c.dc.SetColor(col.toNRGBA())
	c.dc.DrawLine(x0, y0, x1, y1)
	c.dc.Stroke()
}

// DrawImage implements Canvas using bilinear scaling.
func (c *RasterCanvas) DrawImage(img image.Image, dst Rect) {
	r := image.Rect(
		int(math.Round(dst.X)), int(math.Round(dst.Y)),
		int(math.Round(dst.X+dst.Width)), int(math.Round(dst.Y+dst.Height)),
	)
	if r.Empty() {
		return
	}
	xdraw.BiLinear.Scale(c.Image(), r, img, img.Bounds(), xdraw.Over, nil)
}

// RasterSurface is a Surface over a RasterCanvas with a settable viewport.
type RasterSurface struct {
	mu       sync.Mutex
	canvas   *RasterCanvas
	vw, vh   int
	detached bool
}

// NewRasterSurface creates a surface whose viewport is w×h.
func NewRasterSurface(w, h int) *RasterSurface {
	return &RasterSurface{canvas: NewRasterCanvas(w, h), vw: w, vh: h}
}

// SetViewport changes the viewport. The canvas follows on the next Acquire.
func (s *RasterSurface) SetViewport(w, h int) {
	s.mu.Lock()
	s.vw, s.vh = w, h
	s.mu.Unlock()
}

// Detach makes every later Acquire fail, as if the canvas element was
// removed from the page.
func (s *RasterSurface) Detach() {
	s.mu.Lock()
	s.detached = true
	s.mu.Unlock()
}

// Acquire implements Surface.
func (s *RasterSurface) Acquire() (Canvas, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.detached {
		return nil, false
	}
	s.canvas.Resize(s.vw, s.vh)
	return s.canvas, true
}

// Canvas returns the underlying canvas for reading pixels.
func (s *RasterSurface) Canvas() *RasterCanvas {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canvas
}
