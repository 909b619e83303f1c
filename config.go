package scrollframe

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ViewerConfig is the on-disk configuration shared by the runnable viewers
// and the frame exporter.
type ViewerConfig struct {
	FrameCount   int         `yaml:"frame_count"`   // frames in the sequence (default: 100)
	PathTemplate string      `yaml:"path_template"` // e.g. "frames/frame_{index}.jpg"; empty = procedural
	AssetRoot    string      `yaml:"asset_root"`    // directory or http(s) base URL the template resolves against
	ScrollLength float64     `yaml:"scroll_length"` // virtual document length in pixels (default: 4000)
	Width        int         `yaml:"width"`
	Height       int         `yaml:"height"`
	Debug        bool        `yaml:"debug"`
	ShowFPS      bool        `yaml:"show_fps"`
	Field        FieldConfig `yaml:"field"`
}

// FieldConfig overrides procedural field parameters. Zero values keep the
// defaults.
type FieldConfig struct {
	Points     int     `yaml:"points"`
	Radius     float64 `yaml:"radius"`
	Distance   float64 `yaml:"distance"`
	Drift      float64 `yaml:"drift"`
	PointSize  float64 `yaml:"point_size"`
	Background string  `yaml:"background"` // hex, e.g. "#0f172a"
	PointColor string  `yaml:"point_color"`
	HUDColor   string  `yaml:"hud_color"`
}

// DefaultViewerConfig returns the configuration used when no file is given.
func DefaultViewerConfig() ViewerConfig {
	return ViewerConfig{
		FrameCount:   DefaultFrameCount,
		ScrollLength: 4000,
		Width:        960,
		Height:       540,
	}
}

// LoadViewerConfig reads a YAML configuration file. Missing keys keep their
// defaults.
func LoadViewerConfig(path string) (ViewerConfig, error) {
	cfg := DefaultViewerConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("scrollframe: read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("scrollframe: parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects values no renderer can use. A non-positive frame count is
// not an error; the renderer degrades to a static procedural frame.
func (c ViewerConfig) Validate() error {
	if c.ScrollLength < 0 {
		return fmt.Errorf("scrollframe: config: scroll_length must not be negative")
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("scrollframe: config: width and height must not be negative")
	}
	if _, err := c.Field.Params(); err != nil {
		return err
	}
	return nil
}

// Params converts the overrides into FieldParams. Unset fields stay zero and
// take defaults in the renderer.
func (f FieldConfig) Params() (FieldParams, error) {
	p := FieldParams{
		Points:    f.Points,
		Radius:    f.Radius,
		Distance:  f.Distance,
		Drift:     f.Drift,
		PointSize: f.PointSize,
	}
	for _, c := range []struct {
		hex string
		dst *Color
	}{
		{f.Background, &p.Background},
		{f.PointColor, &p.PointColor},
		{f.HUDColor, &p.HUDColor},
	} {
		if c.hex == "" {
			continue
		}
		col, err := ParseHexColor(c.hex)
		if err != nil {
			return FieldParams{}, err
		}
		*c.dst = col
	}
	return p, nil
}

// Loader returns an HTTPLoader for http(s) asset roots and an FSLoader over
// the directory otherwise. An empty root is the working directory.
func (c ViewerConfig) Loader() AssetLoader {
	if strings.HasPrefix(c.AssetRoot, "http://") || strings.HasPrefix(c.AssetRoot, "https://") {
		return HTTPLoader{BaseURL: c.AssetRoot}
	}
	root := c.AssetRoot
	if root == "" {
		root = "."
	}
	return FSLoader{FS: os.DirFS(root)}
}

// RendererConfig builds a renderer Config for the given container, scheduler
// and surface. The config must have passed Validate.
func (c ViewerConfig) RendererConfig(container ScrollContainer, sched Scheduler, surface Surface) Config {
	field, _ := c.Field.Params()
	return Config{
		FrameCount:   c.FrameCount,
		PathTemplate: c.PathTemplate,
		Container:    container,
		Loader:       c.Loader(),
		Scheduler:    sched,
		Surface:      surface,
		Field:        field,
		Debug:        c.Debug,
	}
}
