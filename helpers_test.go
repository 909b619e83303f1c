package scrollframe

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"sync"
	"sync/atomic"
)

// recordingCanvas counts draw calls instead of drawing.
type recordingCanvas struct {
	w, h    int
	clears  []Color
	circles []recordedCircle
	lines   int
	images  []Rect
}

type recordedCircle struct {
	X, Y, R float64
	C       Color
}

func newRecordingCanvas(w, h int) *recordingCanvas {
	return &recordingCanvas{w: w, h: h}
}

func (c *recordingCanvas) Size() (int, int) { return c.w, c.h }
func (c *recordingCanvas) Clear(col Color)  { c.clears = append(c.clears, col) }
func (c *recordingCanvas) FillCircle(x, y, r float64, col Color) {
	c.circles = append(c.circles, recordedCircle{x, y, r, col})
}
func (c *recordingCanvas) StrokeLine(_, _, _, _, _ float64, _ Color) { c.lines++ }
func (c *recordingCanvas) DrawImage(_ image.Image, dst Rect)         { c.images = append(c.images, dst) }

func (c *recordingCanvas) calls() int {
	return len(c.clears) + len(c.circles) + c.lines + len(c.images)
}

// canvasSurface always hands out the same canvas.
type canvasSurface struct {
	canvas   Canvas
	acquired int
}

func (s *canvasSurface) Acquire() (Canvas, bool) {
	s.acquired++
	return s.canvas, s.canvas != nil
}

// panicCanvas faults on every draw.
type panicCanvas struct{ recordingCanvas }

func (c *panicCanvas) Clear(Color) { panic("context lost") }

// solidLoader returns a w×h image of a single color for every path and
// records which paths were requested.
type solidLoader struct {
	w, h  int
	c     color.RGBA
	fail  map[string]error
	mu    sync.Mutex
	paths []string
	calls atomic.Int32
}

func (l *solidLoader) Load(ctx context.Context, path string) (image.Image, error) {
	l.calls.Add(1)
	l.mu.Lock()
	l.paths = append(l.paths, path)
	l.mu.Unlock()
	if err, ok := l.fail[path]; ok {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, l.w, l.h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = l.c.R, l.c.G, l.c.B, l.c.A
	}
	return img, nil
}

var errMissing = errors.New("404 not found")

func missing(template string, indices ...int) map[string]error {
	m := make(map[string]error, len(indices))
	for _, i := range indices {
		m[FramePath(template, i)] = fmt.Errorf("%w: frame %d", errMissing, i)
	}
	return m
}
