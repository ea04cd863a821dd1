package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/jumpman/common"
	"github.com/milk9111/jumpman/prefabs"
)

// Enemy walks back and forth between two x limits.
type Enemy struct {
	// Pos is the sprite center.
	Pos        cp.Vector
	LeftLimit  float64
	RightLimit float64
	Direction  float64
	Speed      float64
	Image      string

	spec prefabs.EnemySpec
	anim *Animator
}

// NewEnemy places an enemy with its sprite top-left at patrol.X/Y, walking right.
func NewEnemy(spec prefabs.EnemySpec, patrol prefabs.PatrolSpec) *Enemy {
	return &Enemy{
		Pos: cp.Vector{
			X: patrol.X + spec.Sprite.Width/2,
			Y: patrol.Y + spec.Sprite.Height/2,
		},
		LeftLimit:  patrol.Left,
		RightLimit: patrol.Right,
		Direction:  1,
		Speed:      spec.Speed,
		Image:      spec.IdleFrame,
		spec:       spec,
		anim:       NewAnimator(spec.AnimFrameTicks),
	}
}

func (e *Enemy) Left() float64  { return e.Pos.X - e.spec.Sprite.Width/2 }
func (e *Enemy) Right() float64 { return e.Pos.X + e.spec.Sprite.Width/2 }

func (e *Enemy) Bounds() common.Rect {
	return common.RectFromCenter(e.Pos.X, e.Pos.Y, e.spec.Sprite.Width, e.spec.Sprite.Height)
}

// Hitbox is a square centered on the sprite.
func (e *Enemy) Hitbox() common.Rect {
	s := e.spec.HitboxSize
	half := float64(int(s) / 2)
	return common.NewRect(e.Pos.X-half, e.Pos.Y-half, s, s)
}

func (e *Enemy) Sprite() Sprite {
	return Sprite{Image: e.Image, Rect: e.Bounds()}
}

// Update moves the enemy one step and turns it around at the patrol limits.
// The left limit is checked first; with a misconfigured range where both
// limits are crossed on the same tick the enemy heads right.
func (e *Enemy) Update() {
	e.Pos.X += e.Speed * e.Direction

	if e.Left() <= e.LeftLimit {
		e.Direction = 1
	} else if e.Right() >= e.RightLimit {
		e.Direction = -1
	}

	if e.anim.Tick() && len(e.spec.MoveFrames) > 0 {
		e.Image = e.spec.MoveFrames[e.anim.Next(len(e.spec.MoveFrames))]
	}
}
