package obj

import (
	"github.com/milk9111/jumpman/common"
	"github.com/milk9111/jumpman/prefabs"
)

// Flag is the goal. It waves until the hero touches it, then stays still.
type Flag struct {
	common.Rect
	Activated bool
	Image     string

	frames []string
	anim   *Animator
}

func NewFlag(spec prefabs.FlagSpec) *Flag {
	f := &Flag{
		Rect:   common.NewRect(spec.Position.X, spec.Position.Y, spec.Sprite.Width, spec.Sprite.Height),
		frames: spec.Frames,
		anim:   NewAnimator(spec.FrameTicks),
	}
	if len(f.frames) > 0 {
		f.Image = f.frames[0]
	}
	// the wave starts immediately on creation
	f.advance()
	return f
}

// Update advances the wave animation. It does nothing once activated.
func (f *Flag) Update() {
	if f.Activated {
		return
	}
	if f.anim.Tick() {
		f.advance()
	}
}

func (f *Flag) advance() {
	if len(f.frames) == 0 {
		return
	}
	f.Image = f.frames[f.anim.Next(len(f.frames))]
}

// CheckVictory returns true only on the first call where the flag overlaps
// the hero's full sprite.
func (f *Flag) CheckVictory(h *Hero) bool {
	if f.Activated || h == nil {
		return false
	}
	if f.Rect.Intersects(h.Bounds()) {
		f.Activated = true
		return true
	}
	return false
}

func (f *Flag) Sprite() Sprite {
	return Sprite{Image: f.Image, Rect: f.Rect}
}
