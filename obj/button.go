package obj

import (
	"github.com/milk9111/jumpman/common"
	"github.com/milk9111/jumpman/prefabs"
)

const (
	ButtonStart = "start"
	ButtonSound = "sound"
	ButtonExit  = "exit"
	ButtonBack  = "back"
)

type Button struct {
	common.Rect
	Name  string
	Image string
	Label string
}

// NewButton builds a button of the given size centered on spec.Center.
func NewButton(name string, spec prefabs.ButtonSpec, size prefabs.SizeSpec) *Button {
	return &Button{
		Rect:  common.RectFromCenter(spec.Center.X, spec.Center.Y, size.Width, size.Height),
		Name:  name,
		Image: spec.Image,
		Label: spec.Label,
	}
}

func (b *Button) IsClicked(x, y float64) bool {
	return b != nil && b.Contains(x, y)
}

func (b *Button) Sprite() Sprite {
	return Sprite{Image: b.Image, Rect: b.Rect, Label: b.Label}
}

// Buttons holds every screen button. They are built once with the world.
type Buttons struct {
	Start *Button
	Sound *Button
	Exit  *Button
	Back  *Button
}

func NewButtons(spec prefabs.UISpec) *Buttons {
	return &Buttons{
		Start: NewButton(ButtonStart, spec.Start, spec.ButtonSize),
		Sound: NewButton(ButtonSound, spec.Sound, spec.ButtonSize),
		Exit:  NewButton(ButtonExit, spec.Exit, spec.ButtonSize),
		Back:  NewButton(ButtonBack, spec.Back, spec.ButtonSize),
	}
}
