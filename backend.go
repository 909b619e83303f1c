package scrollframe

// backend draws one frame. It is a closed set: bitmapBackend or
// proceduralBackend. Bitmap data is only reachable through bitmapBackend.
type backend interface {
	// draw renders frameIndex and reports the number of draw calls issued.
	// ok is false when the frame was skipped.
	draw(c Canvas, frameIndex, frameCount int) (calls int, ok bool)
	state() State
}

type bitmapBackend struct {
	frames []FrameAsset
}

func (b bitmapBackend) state() State { return StateBitmapReady }

func (b bitmapBackend) draw(c Canvas, frameIndex, _ int) (int, bool) {
	if frameIndex < 0 || frameIndex >= len(b.frames) {
		return 0, false
	}
	f := b.frames[frameIndex]
	if f.Image == nil {
		return 0, false
	}
	iw, ih := f.Size()
	if iw == 0 || ih == 0 {
		return 0, false
	}
	cw, ch := c.Size()
	_, dst := CoverFit(float64(cw), float64(ch), float64(iw), float64(ih))
	c.DrawImage(f.Image, dst)
	return 1, true
}

type proceduralBackend struct {
	params FieldParams
}

func (b proceduralBackend) state() State { return StateProcedural }

func (b proceduralBackend) draw(c Canvas, frameIndex, frameCount int) (int, bool) {
	return drawProcedural(c, frameIndex, frameCount, b.params), true
}

// CoverFit scales an image so that it covers the whole canvas, cropping the
// overflow instead of letterboxing. The image is centered.
//
// scale = max(canvasW/imageW, canvasH/imageH)
func CoverFit(canvasW, canvasH, imageW, imageH float64) (scale float64, dst Rect) {
	if imageW <= 0 || imageH <= 0 {
		return 0, Rect{}
	}
	scale = max(canvasW/imageW, canvasH/imageH)
	w, h := imageW*scale, imageH*scale
	return scale, Rect{
		X:      canvasW/2 - w/2,
		Y:      canvasH/2 - h/2,
		Width:  w,
		Height: h,
	}
}
