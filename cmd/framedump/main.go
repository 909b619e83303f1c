// Framedump renders a scroll-driven frame sequence headlessly and writes the
// frames as PNG files. Without a script it samples evenly spaced progress
// values; with -script it replays a JSON scroll script and writes its
// snapshots.
//
//	framedump -samples 5 -out frames
//	framedump -config viewer.yaml -script sweep.json -out frames
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/phanxgames/scrollframe"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML viewer config (optional)")
		scriptPath = flag.String("script", "", "JSON scroll script (optional)")
		outDir     = flag.String("out", "frames", "output directory")
		samples    = flag.Int("samples", 10, "evenly spaced frames to export when no script is given")
		timeout    = flag.Duration("preload-timeout", 30*time.Second, "give up on the frame sequence after this long")
	)
	flag.Parse()

	cfg := scrollframe.DefaultViewerConfig()
	if *configPath != "" {
		var err error
		if cfg, err = scrollframe.LoadViewerConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	container := scrollframe.NewManualContainer(cfg.ScrollLength, float64(cfg.Height))
	sched := scrollframe.NewManualScheduler()
	surface := scrollframe.NewRasterSurface(cfg.Width, cfg.Height)
	r := scrollframe.NewRenderer(cfg.RendererConfig(container, sched, surface))

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	r.Start(ctx)
	defer r.Stop()
	<-r.Ready()
	log.Printf("framedump: backend %s, %d frames", r.State(), r.FrameCount())
	if err := r.PreloadErr(); err != nil && cfg.Debug {
		log.Printf("framedump: %v", err)
	}

	snaps := &scrollframe.Snapshotter{Dir: *outDir}
	var written int
	var err error
	if *scriptPath != "" {
		written, err = runScript(*scriptPath, container, sched, surface, snaps)
	} else {
		written, err = runSamples(*samples, r, container, sched, surface, snaps)
	}
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("framedump: wrote %d frames to %s", written, *outDir)
}

func runSamples(n int, r *scrollframe.Renderer, c *scrollframe.ManualContainer,
	sched *scrollframe.ManualScheduler, surface *scrollframe.RasterSurface, snaps *scrollframe.Snapshotter) (int, error) {
	if n < 1 {
		n = 1
	}
	written := 0
	for i := 0; i < n; i++ {
		p := 0.0
		if n > 1 {
			p = float64(i) / float64(n-1)
		}
		c.SetProgress(p)
		sched.Tick()
		snaps.Snapshot(fmt.Sprintf("frame_%04d", r.FrameIndex()))
		paths, err := snaps.Flush(surface.Canvas())
		written += len(paths)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

func runScript(path string, c *scrollframe.ManualContainer,
	sched *scrollframe.ManualScheduler, surface *scrollframe.RasterSurface, snaps *scrollframe.Snapshotter) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	script, err := scrollframe.LoadScrollScript(data)
	if err != nil {
		return 0, err
	}
	written := 0
	for !script.Done() {
		labels := script.Step(c)
		sched.Tick()
		for _, l := range labels {
			snaps.Snapshot(l)
		}
		paths, err := snaps.Flush(surface.Canvas())
		written += len(paths)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}
