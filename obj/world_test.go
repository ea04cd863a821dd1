package obj

import (
	"testing"

	"github.com/milk9111/jumpman/prefabs"
)

func TestNewWorldLayout(t *testing.T) {
	w := NewWorld(prefabs.MustLoadDefaults().World)

	var ground, floating int
	for _, p := range w.Platforms {
		if p.IsGround {
			ground++
		} else {
			floating++
		}
	}
	if ground != 16 {
		t.Fatalf("expected 16 ground tiles across 1024px, got %d", ground)
	}
	// 3+3+2+2 floating runs plus a 3-tile hill
	if floating != 13 {
		t.Fatalf("expected 13 floating tiles, got %d", floating)
	}

	for i, p := range w.Platforms[:ground] {
		if !p.IsGround || p.Y != 704 || p.X != float64(i*64) {
			t.Fatalf("ground tile %d out of order: %+v", i, p)
		}
	}

	hill := w.Platforms[len(w.Platforms)-3:]
	for i, p := range hill {
		wantY := 704 - float64(i+1)*64
		if p.X != 420 || p.Y != wantY || p.IsGround {
			t.Fatalf("hill tile %d: got %+v, want x=420 y=%v floating", i, p.Rect, wantY)
		}
	}
}

func TestNewFloatingRun(t *testing.T) {
	run := NewFloatingRun("tiles/platform", 200, 550, 64, 3)
	if len(run) != 3 {
		t.Fatalf("expected 3 tiles, got %d", len(run))
	}
	for i, p := range run {
		if p.X != 200+float64(i)*64 || p.Y != 550 || p.IsGround {
			t.Fatalf("tile %d: %+v", i, p)
		}
	}
	if len(NewFloatingRun("x", 0, 0, 64, 0)) != 0 {
		t.Fatalf("zero length run should be empty")
	}
}

func TestButtonsHitTest(t *testing.T) {
	b := NewButtons(prefabs.MustLoadDefaults().UI)
	if !b.Start.IsClicked(512, 324) {
		t.Fatalf("start button center should hit")
	}
	if b.Start.IsClicked(512, 404) {
		t.Fatalf("sound button center should not hit start")
	}
	if !b.Sound.IsClicked(512, 404) || !b.Exit.IsClicked(512, 484) || !b.Back.IsClicked(512, 484) {
		t.Fatalf("button centers should hit")
	}
	if b.Start.IsClicked(0, 0) {
		t.Fatalf("corner click should miss")
	}
	var nilButton *Button
	if nilButton.IsClicked(1, 1) {
		t.Fatalf("nil button should never be clicked")
	}
}

func TestAnimator(t *testing.T) {
	a := NewAnimator(3)
	var boundaries int
	for i := 0; i < 9; i++ {
		if a.Tick() {
			boundaries++
			a.Next(2)
		}
	}
	if boundaries != 3 || a.Index() != 1 || a.Ticks() != 9 {
		t.Fatalf("boundaries=%d index=%d ticks=%d", boundaries, a.Index(), a.Ticks())
	}
	a.Reset()
	if a.Index() != 0 || a.Ticks() != 0 {
		t.Fatalf("reset did not clear state")
	}
	if NewAnimator(0).TicksPerFrame != 1 {
		t.Fatalf("non-positive tick rate should clamp to 1")
	}
}
