package render

import (
	"bytes"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/jumpman/common"
	"github.com/milk9111/jumpman/game"
	"github.com/milk9111/jumpman/obj"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	titleSize = 72
	labelSize = 24
	// banners sit in the upper third, above the buttons
	titleY = 180
)

// Painter draws a game.Scene onto an ebiten screen.
type Painter struct {
	registry *Registry
	title    *text.GoTextFace
	label    *text.GoTextFace
}

func NewPainter(registry *Registry) (*Painter, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("render: load font: %w", err)
	}
	return &Painter{
		registry: registry,
		title:    &text.GoTextFace{Source: src, Size: titleSize},
		label:    &text.GoTextFace{Source: src, Size: labelSize},
	}, nil
}

func (p *Painter) Draw(screen *ebiten.Image, scene game.Scene) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if bg := p.registry.Image(scene.Background, w, h); bg != nil {
		screen.DrawImage(bg, nil)
	} else {
		screen.Fill(colornames.Black)
	}

	for _, sp := range scene.Sprites {
		p.drawSprite(screen, sp)
	}

	if scene.Title != "" {
		op := &text.DrawOptions{}
		op.GeoM.Translate(common.BaseWidth/2, titleY)
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(ColorByName(scene.TitleColor))
		text.Draw(screen, scene.Title, p.title, op)
	}
}

func (p *Painter) drawSprite(screen *ebiten.Image, sp obj.Sprite) {
	r := sp.Rect
	img := p.registry.Image(sp.Image, int(math.Ceil(r.Width)), int(math.Ceil(r.Height)))
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
	op.GeoM.Scale(r.Width/float64(iw), r.Height/float64(ih))
	op.GeoM.Translate(r.X, r.Y)
	screen.DrawImage(img, op)

	if sp.Label != "" {
		top := &text.DrawOptions{}
		top.GeoM.Translate(r.CenterX(), r.CenterY())
		top.PrimaryAlign = text.AlignCenter
		top.SecondaryAlign = text.AlignCenter
		top.ColorScale.ScaleWithColor(colornames.White)
		text.Draw(screen, sp.Label, p.label, top)
	}
}
