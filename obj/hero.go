package obj

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/jumpman/common"
	"github.com/milk9111/jumpman/prefabs"
)

type Hero struct {
	// Pos is the sprite center.
	Pos            cp.Vector
	VelocityY      float64
	OnGround       bool
	PreviousBottom float64
	Image          string

	spec       prefabs.HeroSpec
	worldWidth float64
	anim       *Animator
}

// NewHero places the hero with its sprite top-left at the configured spawn point.
// The hero starts grounded so a jump on the very first frame works.
func NewHero(spec prefabs.HeroSpec, worldWidth float64) *Hero {
	h := &Hero{
		Pos: cp.Vector{
			X: spec.Spawn.X + spec.Sprite.Width/2,
			Y: spec.Spawn.Y + spec.Sprite.Height/2,
		},
		OnGround:   true,
		spec:       spec,
		worldWidth: worldWidth,
		anim:       NewAnimator(spec.AnimFrameTicks),
	}
	h.PreviousBottom = h.Bottom()
	if len(spec.IdleFrames) > 0 {
		h.Image = spec.IdleFrames[0]
	}
	return h
}

func (h *Hero) Width() float64  { return h.spec.Sprite.Width }
func (h *Hero) Height() float64 { return h.spec.Sprite.Height }

func (h *Hero) Bottom() float64 {
	return h.Pos.Y + h.Height()/2
}

func (h *Hero) SetBottom(y float64) {
	h.Pos.Y = y - h.Height()/2
}

// Bounds is the full sprite rectangle.
func (h *Hero) Bounds() common.Rect {
	return common.RectFromCenter(h.Pos.X, h.Pos.Y, h.Width(), h.Height())
}

// Hitbox is smaller than the sprite: centered on the sprite x and anchored at
// the sprite bottom.
func (h *Hero) Hitbox() common.Rect {
	w, hh := h.spec.Hitbox.Width, h.spec.Hitbox.Height
	return common.NewRect(h.Pos.X-math.Floor(w/2), h.Bottom()-hh, w, hh)
}

func (h *Hero) Sprite() Sprite {
	return Sprite{Image: h.Image, Rect: h.Bounds()}
}

// Update advances the hero one tick. left/right are the held move keys.
func (h *Hero) Update(left, right bool, platforms []*Platform) {
	h.PreviousBottom = h.Bottom()
	h.applyGravity()
	h.moveHorizontal(left, right)
	h.ResolvePlatforms(platforms)
	h.updateAnimation(left || right)
}

// Jump only works from the ground. It reports whether the jump happened so
// the caller can play the sound.
func (h *Hero) Jump() bool {
	if !h.OnGround {
		return false
	}
	h.VelocityY = h.spec.Physics.JumpForce
	h.OnGround = false
	return true
}

func (h *Hero) applyGravity() {
	h.VelocityY += h.spec.Physics.Gravity
	h.Pos.Y += h.VelocityY
}

func (h *Hero) moveHorizontal(left, right bool) {
	if left {
		h.Pos.X -= h.spec.Physics.MoveSpeed
	}
	if right {
		h.Pos.X += h.spec.Physics.MoveSpeed
	}
	h.Pos.X = common.Clamp(h.Pos.X, 0, h.worldWidth)
}

// ResolvePlatforms lands the hero on the first qualifying platform in list
// order and stops there. Overlapping platforms are resolved by list order
// alone; the world layout never stacks platforms ambiguously. Returns the
// platform landed on, or nil.
func (h *Hero) ResolvePlatforms(platforms []*Platform) *Platform {
	h.OnGround = false
	hitbox := h.Hitbox()

	for _, p := range platforms {
		if p == nil || !hitbox.OverlapsX(p.Rect) {
			continue
		}
		if h.VelocityY < 0 {
			continue
		}
		top := p.Top()
		landed := false
		if p.IsGround {
			landed = h.Bottom() >= top
		} else {
			// one-way: only a downward sweep through the top edge
			landed = h.PreviousBottom <= top && hitbox.Bottom() >= top
		}
		if landed {
			h.SetBottom(top)
			h.VelocityY = 0
			h.OnGround = true
			return p
		}
	}
	return nil
}

func (h *Hero) updateAnimation(moving bool) {
	boundary := h.anim.Tick()

	if !h.OnGround {
		h.Image = h.spec.JumpFrame
		return
	}

	frames := h.spec.IdleFrames
	if moving {
		frames = h.spec.RunFrames
	}
	if boundary && len(frames) > 0 {
		h.Image = frames[h.anim.Next(len(frames))]
	}
}

// CollidesWithAny reports whether the hero hitbox overlaps any enemy hitbox.
func (h *Hero) CollidesWithAny(enemies []*Enemy) bool {
	hitbox := h.Hitbox()
	for _, e := range enemies {
		if e != nil && hitbox.Intersects(e.Hitbox()) {
			return true
		}
	}
	return false
}
