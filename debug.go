package scrollframe

import (
	"fmt"
	"os"
	"time"
)

// RenderStats holds redraw counters and the metrics of the last drawn frame.
type RenderStats struct {
	Draws         int // frames drawn
	Skipped       int // redraws with no backend, no canvas, or no frame asset
	Faults        int // redraws that panicked and were dropped
	LastFrame     int
	LastDrawCalls int
	// LastDrawTime is only measured in debug mode.
	LastDrawTime time.Duration
}

// debugLog prints the last frame's stats to stderr. Callers hold drawMu.
func (r *Renderer) debugLog(s State) {
	if !r.cfg.Debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[scrollframe] frame: %d/%d | backend: %s | draw: %v | draw calls: %d\n",
		r.stats.LastFrame, r.frameCount, s, r.stats.LastDrawTime, r.stats.LastDrawCalls)
	if r.stats.Faults > 0 || r.stats.Skipped > 0 {
		_, _ = fmt.Fprintf(os.Stderr,
			"[scrollframe] drawn: %d | skipped: %d | faults: %d\n",
			r.stats.Draws, r.stats.Skipped, r.stats.Faults)
	}
}
