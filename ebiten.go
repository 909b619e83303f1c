package scrollframe

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// imageCache uploads decoded frames to the GPU once and reuses them. Not safe
// for concurrent use; ebiten draws on a single goroutine.
type imageCache struct {
	images map[image.Image]*ebiten.Image
}

func (c *imageCache) get(img image.Image) *ebiten.Image {
	if e, ok := img.(*ebiten.Image); ok {
		return e
	}
	if c.images == nil {
		c.images = make(map[image.Image]*ebiten.Image)
	}
	if e, ok := c.images[img]; ok {
		return e
	}
	e := ebiten.NewImageFromImage(img)
	c.images[img] = e
	return e
}

// dispose deallocates every uploaded image.
func (c *imageCache) dispose() {
	for k, e := range c.images {
		e.Deallocate()
		delete(c.images, k)
	}
}

// EbitenCanvas draws onto an ebiten image, usually the screen passed to
// Game.Draw.
type EbitenCanvas struct {
	dst   *ebiten.Image
	cache *imageCache
}

// NewEbitenCanvas wraps dst. Decoded frames drawn onto it are uploaded on
// first use and cached for the lifetime of the canvas.
func NewEbitenCanvas(dst *ebiten.Image) *EbitenCanvas {
	return &EbitenCanvas{dst: dst, cache: &imageCache{}}
}

// Size implements Canvas.
func (c *EbitenCanvas) Size() (int, int) {
	b := c.dst.Bounds()
	return b.Dx(), b.Dy()
}

// Clear implements Canvas.
func (c *EbitenCanvas) Clear(col Color) {
	c.dst.Fill(col.toRGBA())
}

// FillCircle implements Canvas.
func (c *EbitenCanvas) FillCircle(cx, cy, r float64, col Color) {
	if !(r > 0) {
		return
	}
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), col.toRGBA(), true)
}

// StrokeLine implements Canvas.
func (c *EbitenCanvas) StrokeLine(x0, y0, x1, y1, width float64, col Color) {
	vector.StrokeLine(c.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), col.toRGBA(), true)
}

// DrawImage implements Canvas.
func (c *EbitenCanvas) DrawImage(img image.Image, dst Rect) {
	src := c.cache.get(img)
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.Width/float64(b.Dx()), dst.Height/float64(b.Dy()))
	op.GeoM.Translate(dst.X, dst.Y)
	op.Filter = ebiten.FilterLinear
	c.dst.DrawImage(src, op)
}
