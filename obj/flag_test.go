package obj

import (
	"testing"

	"github.com/milk9111/jumpman/prefabs"
)

func testFlagSpec() prefabs.FlagSpec {
	return prefabs.FlagSpec{
		Name:       "flag",
		Position:   prefabs.PointSpec{X: 282, Y: 36},
		Sprite:     prefabs.SizeSpec{Width: 64, Height: 64},
		FrameTicks: 18,
		Frames:     []string{"tiles/flag_red_0", "tiles/flag_red_1"},
	}
}

func TestFlagActivatesExactlyOnce(t *testing.T) {
	f := NewFlag(testFlagSpec())
	h := NewHero(testHeroSpec(), testWorldWidth)

	if f.CheckVictory(h) {
		t.Fatalf("hero far away should not win")
	}
	if f.Activated {
		t.Fatalf("flag activated without overlap")
	}

	h.Pos.X = f.CenterX()
	h.Pos.Y = f.CenterY()
	if !f.CheckVictory(h) {
		t.Fatalf("first overlapping check should return true")
	}
	for i := 0; i < 10; i++ {
		if f.CheckVictory(h) {
			t.Fatalf("call %d: victory reported twice", i)
		}
		if !f.Activated {
			t.Fatalf("call %d: flag deactivated", i)
		}
	}

	h.Pos.X = 900
	if f.CheckVictory(h) || !f.Activated {
		t.Fatalf("flag must stay activated after the hero leaves")
	}
	if f.CheckVictory(nil) {
		t.Fatalf("nil hero should never win")
	}
}

func TestFlagAnimation(t *testing.T) {
	f := NewFlag(testFlagSpec())
	if f.Image != "tiles/flag_red_1" {
		t.Fatalf("expected creation to advance to frame 1, got %s", f.Image)
	}
	for i := 0; i < 17; i++ {
		f.Update()
	}
	if f.Image != "tiles/flag_red_1" {
		t.Fatalf("frame changed early: %s", f.Image)
	}
	f.Update()
	if f.Image != "tiles/flag_red_0" {
		t.Fatalf("expected frame 0 after 18 ticks, got %s", f.Image)
	}
}

func TestFlagAnimationStopsWhenActivated(t *testing.T) {
	f := NewFlag(testFlagSpec())
	h := NewHero(testHeroSpec(), testWorldWidth)
	h.Pos.X = f.CenterX()
	h.Pos.Y = f.CenterY()
	f.CheckVictory(h)

	frame := f.Image
	for i := 0; i < 100; i++ {
		f.Update()
	}
	if f.Image != frame {
		t.Fatalf("flag kept animating after activation: %s -> %s", frame, f.Image)
	}
}
