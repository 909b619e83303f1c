package scrollframe

import (
	"context"
	"errors"
	"fmt"
	"image"
	"strings"

	"golang.org/x/sync/errgroup"
)

// IndexToken is the placeholder substituted with the zero-padded frame index.
const IndexToken = "{index}"

var (
	// ErrOptOut is reported when no path template is configured.
	ErrOptOut = errors.New("scrollframe: no path template, bitmap frames disabled")
	// ErrInvalidFrameCount is reported for a frame count below 1.
	ErrInvalidFrameCount = errors.New("scrollframe: frame count must be positive")
	// ErrNoLoader is reported when a template is set without an AssetLoader.
	ErrNoLoader = errors.New("scrollframe: no asset loader")
)

// FrameAsset is a decoded frame image. It is never modified after loading.
type FrameAsset struct {
	Path  string
	Image image.Image
}

// Size returns the image dimensions in pixels.
func (a FrameAsset) Size() (w, h int) {
	b := a.Image.Bounds()
	return b.Dx(), b.Dy()
}

// PreloadResult is the terminal outcome of a preload: either Loaded or
// Unavailable. No other implementations exist.
type PreloadResult interface {
	preloadResult()
}

// Loaded holds every frame of the sequence, in frame order.
type Loaded struct {
	Frames []FrameAsset
}

// Unavailable means the bitmap sequence cannot be used. Err says why.
type Unavailable struct {
	Err error
}

func (Loaded) preloadResult()      {}
func (Unavailable) preloadResult() {}

// FramePath substitutes the 4-digit zero-padded index into the first
// IndexToken of template. Index 7 becomes "0007".
func FramePath(template string, index int) string {
	return strings.Replace(template, IndexToken, fmt.Sprintf("%04d", index), 1)
}

// Preload loads frameCount images concurrently and returns Loaded only if
// every one of them succeeds. The first failure cancels the remaining loads
// and the whole batch collapses to Unavailable; a partial sequence is never
// returned. An empty template returns Unavailable without loading anything.
func Preload(ctx context.Context, loader AssetLoader, template string, frameCount int) PreloadResult {
	if template == "" {
		return Unavailable{Err: ErrOptOut}
	}
	if frameCount <= 0 {
		return Unavailable{Err: ErrInvalidFrameCount}
	}
	if loader == nil {
		return Unavailable{Err: ErrNoLoader}
	}

	frames := make([]FrameAsset, frameCount)
	g, gctx := errgroup.WithContext(ctx)
	for i := range frameCount {
		g.Go(func() (err error) {
			path := FramePath(template, i)
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("scrollframe: frame %d (%s): loader panic: %v", i, path, r)
				}
			}()
			img, err := loader.Load(gctx, path)
			if err != nil {
				return fmt.Errorf("scrollframe: frame %d: %w", i, err)
			}
			if img == nil {
				return fmt.Errorf("scrollframe: frame %d (%s): loader returned no image", i, path)
			}
			frames[i] = FrameAsset{Path: path, Image: img}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Unavailable{Err: err}
	}
	return Loaded{Frames: frames}
}
