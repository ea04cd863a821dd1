package obj

import (
	"testing"

	"github.com/milk9111/jumpman/prefabs"
)

func testHeroSpec() prefabs.HeroSpec {
	return prefabs.HeroSpec{
		Name:           "hero",
		Spawn:          prefabs.PointSpec{X: 0, Y: 90},
		Sprite:         prefabs.SizeSpec{Width: 80, Height: 110},
		Hitbox:         prefabs.SizeSpec{Width: 70, Height: 90},
		Physics:        prefabs.PhysicsSpec{Gravity: 0.6, JumpForce: -14, MoveSpeed: 4},
		AnimFrameTicks: 10,
		IdleFrames:     []string{"hero/idle_0", "hero/idle_1"},
		RunFrames:      []string{"hero/run_0", "hero/run_1"},
		JumpFrame:      "hero/jump",
	}
}

const testWorldWidth = 1024

func TestHeroGravityMonotonic(t *testing.T) {
	h := NewHero(testHeroSpec(), testWorldWidth)
	g := testHeroSpec().Physics.Gravity

	wantV := h.VelocityY
	wantY := h.Pos.Y
	for i := 0; i < 50; i++ {
		prevV := h.VelocityY
		h.Update(false, false, nil)
		wantV += g
		wantY += wantV
		if h.VelocityY <= prevV {
			t.Fatalf("tick %d: velocity did not increase (%v -> %v)", i, prevV, h.VelocityY)
		}
		if h.VelocityY != wantV || h.Pos.Y != wantY {
			t.Fatalf("tick %d: got v=%v y=%v, want v=%v y=%v", i, h.VelocityY, h.Pos.Y, wantV, wantY)
		}
		if h.OnGround {
			t.Fatalf("tick %d: grounded with no platforms", i)
		}
	}
}

func TestHeroGroundClamp(t *testing.T) {
	cases := []struct {
		name      string
		centerX   float64
		platformX float64
	}{
		{"full_overlap", 300, 250},
		// hitbox spans [63,133): one pixel over the tile at [0,64)
		{"one_pixel_overlap", 98, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ground := NewPlatform("tiles/ground", c.platformX, 500, 64, true)
			h := NewHero(testHeroSpec(), testWorldWidth)
			h.Pos.X = c.centerX
			h.OnGround = false

			for i := 0; i < 200 && !h.OnGround; i++ {
				h.Update(false, false, []*Platform{ground})
			}
			if !h.OnGround {
				t.Fatalf("hero never landed")
			}
			if h.VelocityY != 0 {
				t.Fatalf("expected zero velocity after landing, got %v", h.VelocityY)
			}
			if h.Bottom() != ground.Top() {
				t.Fatalf("expected bottom %v, got %v", ground.Top(), h.Bottom())
			}
		})
	}
}

func TestHeroGroundIgnoresRisingHero(t *testing.T) {
	ground := NewPlatform("tiles/ground", 0, 150, 1000, true)
	h := NewHero(testHeroSpec(), testWorldWidth)
	h.Pos.X = 100
	h.VelocityY = -3
	if p := h.ResolvePlatforms([]*Platform{ground}); p != nil || h.OnGround {
		t.Fatalf("rising hero should not land on ground")
	}
}

func TestHeroFloatingOneWayLanding(t *testing.T) {
	cases := []struct {
		name       string
		prevBottom float64
		bottom     float64
		velocityY  float64
		wantLand   bool
	}{
		{"moving_up_from_below", 100, 95, -5, false},
		{"sweeping_down_through_top", 80, 92, 5, true},
		{"already_below_top", 100, 105, 5, false},
		{"stationary_on_top", 90, 90, 0, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := NewPlatform("tiles/platform", 0, 90, 64, false)
			h := NewHero(testHeroSpec(), testWorldWidth)
			h.Pos.X = 32
			h.SetBottom(c.bottom)
			h.PreviousBottom = c.prevBottom
			h.VelocityY = c.velocityY

			landed := h.ResolvePlatforms([]*Platform{p})
			if (landed != nil) != c.wantLand || h.OnGround != c.wantLand {
				t.Fatalf("landed=%v onGround=%v, want %v", landed != nil, h.OnGround, c.wantLand)
			}
			if c.wantLand && h.Bottom() != 90 {
				t.Fatalf("expected bottom snapped to 90, got %v", h.Bottom())
			}
			if c.wantLand && h.VelocityY != 0 {
				t.Fatalf("expected velocity zeroed, got %v", h.VelocityY)
			}
		})
	}
}

func TestHeroFirstPlatformWins(t *testing.T) {
	first := NewPlatform("tiles/ground", 0, 100, 64, true)
	second := NewPlatform("tiles/ground", 0, 95, 64, true)
	h := NewHero(testHeroSpec(), testWorldWidth)
	h.Pos.X = 32
	h.SetBottom(120)
	h.VelocityY = 1

	if got := h.ResolvePlatforms([]*Platform{first, second}); got != first {
		t.Fatalf("expected first platform in list order to win")
	}
	if h.Bottom() != 100 {
		t.Fatalf("expected bottom 100, got %v", h.Bottom())
	}
}

func TestHeroHorizontalClamp(t *testing.T) {
	ground := NewPlatform("tiles/ground", -10, 200, 2000, true)

	h := NewHero(testHeroSpec(), testWorldWidth)
	h.Pos.X = 0
	for i := 0; i < 100; i++ {
		h.Update(true, false, []*Platform{ground})
		if h.Pos.X < 0 {
			t.Fatalf("tick %d: x=%v below 0", i, h.Pos.X)
		}
	}

	h.Pos.X = testWorldWidth
	for i := 0; i < 100; i++ {
		h.Update(false, true, []*Platform{ground})
		if h.Pos.X > testWorldWidth {
			t.Fatalf("tick %d: x=%v above world width", i, h.Pos.X)
		}
	}

	h.Pos.X = 500
	h.Update(true, true, []*Platform{ground})
	if h.Pos.X != 500 {
		t.Fatalf("left+right should cancel, got x=%v", h.Pos.X)
	}
}

func TestHeroJump(t *testing.T) {
	h := NewHero(testHeroSpec(), testWorldWidth)
	if !h.OnGround {
		t.Fatalf("hero should start grounded")
	}
	if !h.Jump() {
		t.Fatalf("jump from ground should succeed")
	}
	if h.VelocityY != -14 || h.OnGround {
		t.Fatalf("unexpected state after jump: v=%v onGround=%v", h.VelocityY, h.OnGround)
	}
	if h.Jump() {
		t.Fatalf("jump while airborne should be ignored")
	}
	if h.VelocityY != -14 {
		t.Fatalf("airborne jump changed velocity to %v", h.VelocityY)
	}
}

func TestHeroAnimation(t *testing.T) {
	ground := NewPlatform("tiles/ground", -10, 200, 2000, true)
	platforms := []*Platform{ground}

	t.Run("idle_cycles_every_ten_ticks", func(t *testing.T) {
		h := NewHero(testHeroSpec(), testWorldWidth)
		h.Pos.X = 500
		for i := 1; i <= 9; i++ {
			h.Update(false, false, platforms)
		}
		if h.Image != "hero/idle_0" {
			t.Fatalf("expected idle_0 before boundary, got %s", h.Image)
		}
		h.Update(false, false, platforms)
		if h.Image != "hero/idle_1" {
			t.Fatalf("expected idle_1 at tick 10, got %s", h.Image)
		}
		for i := 0; i < 10; i++ {
			h.Update(false, false, platforms)
		}
		if h.Image != "hero/idle_0" {
			t.Fatalf("expected idle_0 at tick 20, got %s", h.Image)
		}
	})

	t.Run("run_frames_when_moving", func(t *testing.T) {
		h := NewHero(testHeroSpec(), testWorldWidth)
		h.Pos.X = 500
		for i := 0; i < 10; i++ {
			h.Update(false, true, platforms)
		}
		if h.Image != "hero/run_1" {
			t.Fatalf("expected run_1, got %s", h.Image)
		}
	})

	t.Run("jump_pose_when_airborne", func(t *testing.T) {
		h := NewHero(testHeroSpec(), testWorldWidth)
		h.Pos.X = 500
		h.Update(false, false, platforms)
		h.Jump()
		h.Update(false, false, platforms)
		if h.Image != "hero/jump" {
			t.Fatalf("expected jump pose, got %s", h.Image)
		}
	})
}

func TestHeroCollidesWithAny(t *testing.T) {
	spec := testEnemySpec()
	h := NewHero(testHeroSpec(), testWorldWidth)
	h.Pos.X = 300
	h.SetBottom(500)

	far := NewEnemy(spec, prefabs.PatrolSpec{X: 800, Y: 436, Left: 700, Right: 900})
	if h.CollidesWithAny([]*Enemy{far}) {
		t.Fatalf("distant enemy should not collide")
	}

	// enemy sprite centered on the hero's hitbox
	hb := h.Hitbox()
	near := NewEnemy(spec, prefabs.PatrolSpec{X: hb.CenterX() - 32, Y: hb.CenterY() - 32, Left: 0, Right: 1000})
	if !h.CollidesWithAny([]*Enemy{far, near}) {
		t.Fatalf("overlapping enemy should collide")
	}
	if h.CollidesWithAny(nil) {
		t.Fatalf("no enemies should never collide")
	}
}

func TestHeroHitboxAnchoring(t *testing.T) {
	h := NewHero(testHeroSpec(), testWorldWidth)
	h.Pos.X = 100
	h.SetBottom(300)
	hb := h.Hitbox()
	if hb.X != 65 || hb.Width != 70 || hb.Bottom() != 300 || hb.Height != 90 {
		t.Fatalf("unexpected hitbox %+v", hb)
	}
	b := h.Bounds()
	if b.Width != 80 || b.Height != 110 || b.Bottom() != 300 {
		t.Fatalf("unexpected bounds %+v", b)
	}
}
