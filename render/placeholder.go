package render

import (
	"hash/fnv"
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
)

// prefix colours, longest match wins
var spriteColors = []struct {
	prefix string
	color  color.RGBA
}{
	{"hero/jump", colornames.Deepskyblue},
	{"hero/", colornames.Royalblue},
	{"enemies/", colornames.Crimson},
	{"tiles/flag", colornames.Gold},
	{"tiles/ground", colornames.Saddlebrown},
	{"tiles/platform2", colornames.Sienna},
	{"tiles/platform", colornames.Peru},
	{"ui/", colornames.Steelblue},
	{"background/menu", colornames.Midnightblue},
	{"background/", colornames.Skyblue},
}

var fallbackPalette = []color.RGBA{
	colornames.Orchid,
	colornames.Teal,
	colornames.Olivedrab,
	colornames.Slateblue,
	colornames.Darkorange,
}

// ColorFor picks a stable placeholder colour for a sprite name. Numbered
// animation frames of the same sprite get slightly different shades so the
// animation is visible.
func ColorFor(name string) color.RGBA {
	base, ok := prefixColor(name)
	if !ok {
		h := fnv.New32a()
		_, _ = h.Write([]byte(name))
		base = fallbackPalette[h.Sum32()%uint32(len(fallbackPalette))]
	}
	if frame := frameIndex(name); frame > 0 {
		base = lighten(base, uint8(28*frame))
	}
	return base
}

// ColorByName resolves a colornames key, defaulting to white.
func ColorByName(name string) color.RGBA {
	if c, ok := colornames.Map[strings.ToLower(name)]; ok {
		return c
	}
	return colornames.White
}

func prefixColor(name string) (color.RGBA, bool) {
	best := -1
	var out color.RGBA
	for _, sc := range spriteColors {
		if strings.HasPrefix(name, sc.prefix) && len(sc.prefix) > best {
			best = len(sc.prefix)
			out = sc.color
		}
	}
	return out, best >= 0
}

// frameIndex reads a trailing _N frame number.
func frameIndex(name string) int {
	i := strings.LastIndexByte(name, '_')
	if i < 0 || i == len(name)-1 {
		return 0
	}
	n := 0
	for _, r := range name[i+1:] {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}

func lighten(c color.RGBA, by uint8) color.RGBA {
	add := func(v uint8) uint8 {
		if int(v)+int(by) > 255 {
			return 255
		}
		return v + by
	}
	return color.RGBA{R: add(c.R), G: add(c.G), B: add(c.B), A: c.A}
}

// Placeholder draws a filled box with a darker two pixel border.
func Placeholder(name string, w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	fill := ColorFor(name)
	border := color.RGBA{R: fill.R / 2, G: fill.G / 2, B: fill.B / 2, A: 255}
	img.Fill(border)
	if w > 4 && h > 4 {
		inner := img.SubImage(image.Rect(2, 2, w-2, h-2)).(*ebiten.Image)
		inner.Fill(fill)
	}
	return img
}
