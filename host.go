package scrollframe

import (
	"context"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Host runs a Renderer inside ebiten. It is the ebiten.Game, the Scheduler
// (each Draw is one display refresh) and the Surface (the screen image, valid
// only during Draw). Scroll notifications that arrive during Update find no
// canvas and are picked up by the next refresh.
type Host struct {
	// Scroller, when set, receives input and the window height each frame.
	Scroller *WheelScroller
	// ShowFPS draws an FPS and frame overlay in the top-left corner.
	ShowFPS bool
	// Renderer is shown in the overlay.
	Renderer *Renderer

	screen  *ebiten.Image
	canvas  EbitenCanvas
	cache   imageCache
	nextID  int
	pending []frameRequest

	overlay    *ebiten.Image
	sincePrint float64
}

type frameRequest struct {
	id int
	fn func()
}

// NewHost creates a host that feeds input to scroller. scroller may be nil.
func NewHost(scroller *WheelScroller) *Host {
	return &Host{Scroller: scroller}
}

// RequestNextFrame implements Scheduler.
func (h *Host) RequestNextFrame(fn func()) func() {
	id := h.nextID
	h.nextID++
	h.pending = append(h.pending, frameRequest{id: id, fn: fn})
	return func() {
		for i, r := range h.pending {
			if r.id == id {
				h.pending = append(h.pending[:i], h.pending[i+1:]...)
				return
			}
		}
	}
}

// Acquire implements Surface.
func (h *Host) Acquire() (Canvas, bool) {
	if h.screen == nil {
		return nil, false
	}
	h.canvas = EbitenCanvas{dst: h.screen, cache: &h.cache}
	return &h.canvas, true
}

// Update implements ebiten.Game.
func (h *Host) Update() error {
	if h.Scroller != nil {
		h.Scroller.Update(float32(1.0 / float64(ebiten.TPS())))
	}
	return nil
}

// Draw implements ebiten.Game. It runs the frame requests made before this
// refresh; requests made while running wait for the next one.
func (h *Host) Draw(screen *ebiten.Image) {
	h.screen = screen
	due := h.pending
	h.pending = nil
	for _, r := range due {
		r.fn()
	}
	if h.ShowFPS {
		h.drawOverlay(screen)
	}
	h.screen = nil
}

// Layout implements ebiten.Game. The canvas always fills the window.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if h.Scroller != nil {
		h.Scroller.SetViewport(float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// Dispose frees the GPU copies of uploaded frames. Call after the renderer
// is stopped.
func (h *Host) Dispose() {
	h.cache.dispose()
	if h.overlay != nil {
		h.overlay.Deallocate()
		h.overlay = nil
	}
}

// drawOverlay refreshes the overlay text about twice a second.
func (h *Host) drawOverlay(screen *ebiten.Image) {
	fresh := h.overlay == nil
	if fresh {
		// 160x64 fits four lines of debug text.
		h.overlay = ebiten.NewImage(160, 64)
	}
	h.sincePrint += 1.0 / float64(ebiten.TPS())
	if fresh || h.sincePrint >= 0.5 {
		h.sincePrint = 0
		h.overlay.Clear()
		h.overlay.Fill(color.RGBA{0, 0, 0, 128})
		text := fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
		if h.Renderer != nil {
			st := h.Renderer.Stats()
			text += fmt.Sprintf("\nframe: %d/%d\n%s", st.LastFrame, h.Renderer.FrameCount(), h.Renderer.State())
		}
		ebitenutil.DebugPrint(h.overlay, text)
	}
	screen.DrawImage(h.overlay, nil)
}

// RunConfig holds window options for Run.
type RunConfig struct {
	Title         string
	Width, Height int
	ShowFPS       bool
}

// Run opens a window and drives r until the window closes. r must have been
// created with h as its Scheduler and Surface; Run starts and stops it. ctx
// bounds the frame preload.
func Run(ctx context.Context, h *Host, r *Renderer, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 960
	}
	if cfg.Height <= 0 {
		cfg.Height = 540
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	h.ShowFPS = h.ShowFPS || cfg.ShowFPS
	h.Renderer = r
	r.Start(ctx)
	defer func() {
		r.Stop()
		h.Dispose()
	}()
	if err := ebiten.RunGame(h); err != nil {
		return fmt.Errorf("scrollframe: run: %w", err)
	}
	return nil
}
