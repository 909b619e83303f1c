package scrollframe

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"frame-0049", "frame-0049"},
		{"frame.01", "frame.01"},
		{"half_way", "half_way"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSnapshotQueue(t *testing.T) {
	s := Snapshotter{Dir: t.TempDir()}
	s.Snapshot("a")
	s.Snapshot("b")
	if s.Pending() != 2 {
		t.Fatalf("Pending() = %d, want 2", s.Pending())
	}
	paths, err := s.Flush(NewRasterCanvas(4, 4))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2 || filepath.Base(paths[0]) != "a.png" || filepath.Base(paths[1]) != "b.png" {
		t.Errorf("paths = %v, want a.png and b.png", paths)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d after Flush, want 0", s.Pending())
	}
}

func TestSnapshotFlushWritesPNG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	s := Snapshotter{Dir: dir}
	c := NewRasterCanvas(32, 24)
	drawProcedural(c, 10, 100, DefaultFieldParams())

	s.Snapshot("frame 10")
	paths, err := s.Flush(c)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 1 || filepath.Base(paths[0]) != "frame_10.png" {
		t.Fatalf("paths = %v, want [.../frame_10.png]", paths)
	}

	f, err := os.Open(paths[0])
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 24 {
		t.Errorf("bounds = %v, want 32x24", b)
	}
}

func TestSnapshotTimestamp(t *testing.T) {
	s := Snapshotter{Dir: t.TempDir(), Timestamp: true}
	s.Snapshot("end")
	paths, err := s.Flush(NewRasterCanvas(2, 2))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 1 || !strings.HasSuffix(paths[0], "_end.png") || filepath.Base(paths[0]) == "end.png" {
		t.Errorf("paths = %v, want a timestamped name", paths)
	}
}

func TestSnapshotFlushEmpty(t *testing.T) {
	s := Snapshotter{Dir: filepath.Join(t.TempDir(), "never")}
	paths, err := s.Flush(NewRasterCanvas(2, 2))
	if err != nil || paths != nil {
		t.Errorf("Flush() = %v, %v; want nil, nil", paths, err)
	}
	if _, err := os.Stat(s.Dir); !os.IsNotExist(err) {
		t.Error("empty Flush created the directory")
	}
}
