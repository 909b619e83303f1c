// Package scrollframe renders a scroll-synchronized animation.
//
// A [ScrollTracker] turns the scroll position of a [ScrollContainer] into a
// progress value in [0, 1]. A [Renderer] maps that progress to a discrete
// frame and draws it onto a [Canvas], either from a preloaded image sequence
// or, when the sequence cannot be loaded, from a procedural 3-D point field
// that rotates with the scroll position.
//
// # Quick start
//
// The simplest way to get a window is [Run] with a [Host], which is both the
// render loop's [Scheduler] and its [Surface]:
//
//	scroller := scrollframe.NewWheelScroller(4000)
//	host := scrollframe.NewHost(scroller)
//	r := scrollframe.NewRenderer(scrollframe.Config{
//		FrameCount:   100,
//		PathTemplate: "frames/frame_{index}.jpg",
//		Loader:       scrollframe.FSLoader{FS: os.DirFS("assets")},
//		Container:    scroller,
//		Scheduler:    host,
//		Surface:      host,
//	})
//	err := scrollframe.Run(ctx, host, r, scrollframe.RunConfig{Title: "demo"})
//
// For headless rendering use a [ManualContainer], a [ManualScheduler] and a
// [RasterSurface], and call [ManualScheduler.Tick] once per frame.
//
// # Backends
//
// The frame sequence is preloaded all-or-nothing by [Preload]: if a single
// frame fails, the renderer uses the procedural backend for the rest of its
// lifetime. The choice is made once per [Renderer.Start] and never changes
// mid-playback. Bitmap frames are scaled with [CoverFit]; the procedural
// field is computed by [ProjectField].
//
// Nothing in this package returns rendering errors to the caller. Missing
// assets, missing containers and faulting frames all degrade to a simpler
// picture or a skipped frame.
package scrollframe
