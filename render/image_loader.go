package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// LoadImage decodes name+".png" from fsys, falling back to the working
// directory and ./assets.
func LoadImage(fsys fs.FS, name string) (*ebiten.Image, error) {
	if name == "" {
		return nil, fmt.Errorf("render: empty image name")
	}
	file := imageFile(name)

	if fsys != nil {
		if b, err := fs.ReadFile(fsys, file); err == nil {
			return decode(file, b)
		}
	}
	tried := []string{file, filepath.Join("assets", filepath.FromSlash(file))}
	for _, p := range tried {
		if b, err := os.ReadFile(p); err == nil {
			return decode(p, b)
		}
	}
	return nil, fmt.Errorf("render: image %s not found", name)
}

func imageFile(name string) string {
	s := path.Clean(filepath.ToSlash(name))
	s = strings.TrimPrefix(s, "assets/")
	if path.Ext(s) == "" {
		s += ".png"
	}
	return s
}

func decode(p string, b []byte) (*ebiten.Image, error) {
	im, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("render: decode %s: %w", p, err)
	}
	return ebiten.NewImageFromImage(im), nil
}
