package render

import (
	"fmt"
	"image"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/disintegration/imaging"
)

// ImageNotFoundError reports an image path that is neither an existing local
// file nor a reachable URL.
type ImageNotFoundError struct {
	Path string
}

func (e *ImageNotFoundError) Error() string {
	return fmt.Sprintf("image does not exist at %s", e.Path)
}

// Loader resolves prediction image paths, falling back to HTTP for hosted
// images. A zero timeout selects the default.
type Loader struct {
	client *http.Client
}

const defaultTimeout = 10 * time.Second

// NewLoader returns a loader whose HTTP fetches abort after timeout.
func NewLoader(timeout time.Duration) *Loader {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Loader{client: &http.Client{Timeout: timeout}}
}

func isRemote(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// Check verifies that path points at an existing local file or a URL that
// answers a reachability probe. It reads no pixel data.
func (l *Loader) Check(path string) error {
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return nil
	}
	if isRemote(path) && l.reachable(path) {
		return nil
	}
	return &ImageNotFoundError{Path: path}
}

// reachable probes the URL with HEAD, falling back to GET for servers that
// reject HEAD outright.
func (l *Loader) reachable(url string) bool {
	res, err := l.client.Head(url)
	if err != nil {
		return false
	}
	res.Body.Close()
	if res.StatusCode == http.StatusMethodNotAllowed || res.StatusCode == http.StatusNotImplemented {
		res, err = l.client.Get(url)
		if err != nil {
			return false
		}
		defer res.Body.Close()
	}
	return res.StatusCode < 400
}

// Load opens path as a local image first, fetching it over HTTP when the
// local open fails and the path is a URL.
func (l *Loader) Load(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err == nil {
		return img, nil
	}
	if !isRemote(path) {
		return nil, fmt.Errorf("open image %s: %w", path, err)
	}
	res, err := l.client.Get(path)
	if err != nil {
		return nil, fmt.Errorf("fetch image %s: %w", path, err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, &ImageNotFoundError{Path: path}
	}
	img, err = imaging.Decode(res.Body)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}
