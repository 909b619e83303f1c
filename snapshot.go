package scrollframe

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Snapshotter writes labelled PNG captures of a raster canvas.
type Snapshotter struct {
	// Dir is created on first write.
	Dir string
	// Timestamp prefixes file names with the capture time so repeated runs
	// do not overwrite each other.
	Timestamp bool

	queue []string
}

// Snapshot queues a labelled capture to be written by the next Flush.
func (s *Snapshotter) Snapshot(label string) {
	s.queue = append(s.queue, label)
}

// Pending reports how many captures are queued.
func (s *Snapshotter) Pending() int {
	return len(s.queue)
}

// Flush writes one PNG per queued label from the canvas's current pixels
// and returns the written paths.
func (s *Snapshotter) Flush(c *RasterCanvas) ([]string, error) {
	if len(s.queue) == 0 {
		return nil, nil
	}
	defer func() { s.queue = s.queue[:0] }()

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("scrollframe: snapshot: mkdir %s: %w", s.Dir, err)
	}

	img := c.Image()
	stamp := time.Now().Format("20060102_150405")
	paths := make([]string, 0, len(s.queue))
	for _, label := range s.queue {
		name := sanitizeLabel(label) + ".png"
		if s.Timestamp {
			name = stamp + "_" + name
		}
		path := filepath.Join(s.Dir, name)
		if err := writePNG(path, img); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("scrollframe: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("scrollframe: encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
