package assets

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/image/draw"
)

// MaxOverrideSize is the longest side, in pixels, an override keeps. Larger
// images are scaled down on load.
const MaxOverrideSize = 256

// ErrNotFound is returned when no sprite exists for an identifier.
var ErrNotFound = errors.New("assets: texture not found")

// Library resolves texture identifiers to sprites. A PNG named <id>.png in
// the override directory replaces the built-in sprite of the same id.
// Resolved sprites are cached; the library is safe for concurrent use.
type Library struct {
	dir    string
	logger *log.Logger
	cache  map[string]*Sprite
	mu     sync.RWMutex
}

// NewLibrary creates a library. dir may be empty to use built-ins only;
// logger may be nil.
func NewLibrary(dir string, logger *log.Logger) *Library {
	return &Library{
		dir:    dir,
		logger: logger,
		cache:  make(map[string]*Sprite),
	}
}

// Load returns the sprite for id.
func (l *Library) Load(id string) (*Sprite, error) {
	l.mu.RLock()
	if s, ok := l.cache[id]; ok {
		l.mu.RUnlock()
		return s, nil
	}
	l.mu.RUnlock()

	l.mu.Lock()
	defer l.mu.Unlock()
	if s, ok := l.cache[id]; ok {
		return s, nil
	}

	s, err := l.resolve(id)
	if err != nil {
		return nil, err
	}
	l.cache[id] = s
	return s, nil
}

// LoadSafe returns the sprite for id, or nil when it cannot be loaded.
// Failures are logged, never returned.
func (l *Library) LoadSafe(id string) *Sprite {
	s, err := l.Load(id)
	if err != nil {
		if l.logger != nil {
			l.logger.Warn("texture unavailable", "id", id, "error", err)
		}
		return nil
	}
	return s
}

func (l *Library) resolve(id string) (*Sprite, error) {
	if l.dir != "" {
		s, err := loadPNG(filepath.Join(l.dir, id+".png"))
		switch {
		case err == nil:
			if l.logger != nil {
				l.logger.Debug("texture override", "id", id, "size", fmt.Sprintf("%dx%d", s.W, s.H))
			}
			return s, nil
		case !errors.Is(err, os.ErrNotExist):
			// A broken override falls back to the built-in sprite
			if l.logger != nil {
				l.logger.Warn("texture override unreadable", "id", id, "error", err)
			}
		}
	}

	if s, ok := builtin(id); ok {
		return s, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

func loadPNG(path string) (*Sprite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return FromImage(fit(img, MaxOverrideSize)), nil
}

// fit scales img down so its longest side is at most limit, keeping the
// aspect ratio.
func fit(img image.Image, limit int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= limit && h <= limit {
		return img
	}
	if w >= h {
		h = max(1, h*limit/w)
		w = limit
	} else {
		w = max(1, w*limit/h)
		h = limit
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
