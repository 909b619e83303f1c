package scrollframe

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// AssetLoader loads and decodes a single frame image.
type AssetLoader interface {
	Load(ctx context.Context, path string) (image.Image, error)
}

// LoaderFunc adapts a function to the AssetLoader interface.
type LoaderFunc func(ctx context.Context, path string) (image.Image, error)

// Load implements AssetLoader.
func (f LoaderFunc) Load(ctx context.Context, path string) (image.Image, error) {
	return f(ctx, path)
}

// FSLoader decodes frame images from a file system. Any format registered
// with the image package decodes: png, jpeg, gif, bmp and webp.
type FSLoader struct {
	FS fs.FS
}

// Load implements AssetLoader. Leading slashes are stripped so web-style
// paths such as "/assets/frames/frame_0001.jpg" resolve inside FS.
func (l FSLoader) Load(ctx context.Context, path string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := l.FS.Open(strings.TrimLeft(path, "/"))
	if err != nil {
		return nil, fmt.Errorf("scrollframe: open %s: %w", path, err)
	}
	defer f.Close()
	return decode(path, f)
}

// HTTPLoader fetches frame images relative to BaseURL.
type HTTPLoader struct {
	BaseURL string
	// Client defaults to http.DefaultClient.
	Client *http.Client
}

// Load implements AssetLoader.
func (l HTTPLoader) Load(ctx context.Context, path string) (image.Image, error) {
	u, err := l.resolve(path)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("scrollframe: request %s: %w", u, err)
	}
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scrollframe: fetch %s: %w", u, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scrollframe: fetch %s: status %s", u, resp.Status)
	}
	return decode(u, resp.Body)
}

func (l HTTPLoader) resolve(path string) (string, error) {
	if l.BaseURL == "" {
		return path, nil
	}
	base, err := url.Parse(l.BaseURL)
	if err != nil {
		return "", fmt.Errorf("scrollframe: base url %q: %w", l.BaseURL, err)
	}
	ref, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("scrollframe: frame path %q: %w", path, err)
	}
	return base.ResolveReference(ref).String(), nil
}

func decode(name string, r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("scrollframe: decode %s: %w", name, err)
	}
	return img, nil
}
