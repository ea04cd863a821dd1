package render

import (
	"fmt"
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// Registry caches sprite images by name and size. A name is looked up as a
// PNG in the asset filesystem first; anything missing is drawn as a coloured
// placeholder so the game runs without art.
type Registry struct {
	assets fs.FS
	images map[string]*ebiten.Image
	logger *log.Logger
}

func NewRegistry(assets fs.FS, logger *log.Logger) *Registry {
	return &Registry{assets: assets, images: map[string]*ebiten.Image{}, logger: logger}
}

// Image returns the image for name at w x h pixels.
func (r *Registry) Image(name string, w, h int) *ebiten.Image {
	if name == "" || w <= 0 || h <= 0 {
		return nil
	}
	key := fmt.Sprintf("%s@%dx%d", name, w, h)
	if img, ok := r.images[key]; ok {
		return img
	}

	img, err := LoadImage(r.assets, name)
	if err != nil {
		if r.logger != nil {
			r.logger.Debug("placeholder sprite", "name", name, "err", err)
		}
		img = Placeholder(name, w, h)
	}
	r.images[key] = img
	return img
}

// Len is the number of cached images.
func (r *Registry) Len() int {
	return len(r.images)
}
