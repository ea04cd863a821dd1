package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/jumpman/common"
	"github.com/milk9111/jumpman/game"
	"github.com/milk9111/jumpman/prefabs"
)

func TestKindFor(t *testing.T) {
	cases := map[string]Kind{
		"tiles/ground":         KindGround,
		"tiles/platform":       KindPlatform,
		"tiles/platform2":      KindPlatform,
		"tiles/flag_red_1":     KindFlag,
		"hero/run_0":           KindHero,
		"enemies/enemy_move_1": KindEnemy,
		"ui/button_back":       KindButton,
		"background/bg_large":  KindEmpty,
	}
	for in, want := range cases {
		if got := KindFor(in); got != want {
			t.Fatalf("KindFor(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestGridCellMapping(t *testing.T) {
	g := NewGrid(128, 48, common.BaseWidth, common.BaseHeight)

	cases := []struct {
		name           string
		rect           common.Rect
		c0, r0, c1, r1 int
	}{
		{"tile", common.NewRect(0, 704, 64, 64), 0, 44, 8, 48},
		{"unaligned", common.NewRect(3, 5, 10, 10), 0, 0, 2, 1},
		{"point", common.NewRect(9, 17, 0, 0), 1, 1, 2, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			c0, r0, c1, r1 := g.CellRect(c.rect)
			if c0 != c.c0 || r0 != c.r0 || c1 != c.c1 || r1 != c.r1 {
				t.Fatalf("CellRect = %d,%d %d,%d; want %d,%d %d,%d", c0, r0, c1, r1, c.c0, c.r0, c.c1, c.r1)
			}
		})
	}

	col, row := g.ToCell(512, 324)
	x, y := g.ToWorld(col, row)
	if col != 64 || row != 20 || x != 516 || y != 328 {
		t.Fatalf("round trip 512,324 -> %d,%d -> %v,%v", col, row, x, y)
	}
}

func TestGridClipsOutOfRange(t *testing.T) {
	g := NewGrid(4, 2, 40, 20)
	g.Set(-1, 0, Cell{Rune: 'x'})
	g.Set(4, 0, Cell{Rune: 'x'})
	g.DrawText(2, 1, "hello", KindLabel)
	if g.String() != "    \n  he" {
		t.Fatalf("unexpected grid %q", g.String())
	}
	if g.At(10, 10).Rune != ' ' {
		t.Fatalf("out of range cell should be blank")
	}
}

func TestRasterizePlayingScene(t *testing.T) {
	s := game.NewSession(prefabs.MustLoadDefaults())
	s.Dispatch(game.EventStartClicked)

	g := Rasterize(s.Scene(), 128, 48, common.BaseWidth, common.BaseHeight)
	if !strings.Contains(g.Row(47), strings.Repeat("#", 128)) {
		t.Fatalf("bottom row should be ground, got %q", g.Row(47))
	}

	hero := s.Hero().Bounds()
	col, row := g.ToCell(hero.CenterX(), hero.CenterY())
	if got := g.At(col, row); got.Kind != KindHero || got.Rune != '@' {
		t.Fatalf("expected hero at %d,%d, got %+v", col, row, got)
	}

	f := s.Flag()
	col, row = g.ToCell(f.CenterX(), f.CenterY())
	if g.At(col, row).Kind != KindFlag {
		t.Fatalf("expected flag at %d,%d", col, row)
	}
	for _, e := range s.Enemies() {
		col, row = g.ToCell(e.Pos.X, e.Pos.Y)
		if g.At(col, row).Kind != KindEnemy {
			t.Fatalf("expected enemy at %d,%d", col, row)
		}
	}
}

func TestRasterizeMenuLabelsAndTitle(t *testing.T) {
	s := game.NewSession(prefabs.MustLoadDefaults())
	g := Rasterize(s.Scene(), 128, 48, common.BaseWidth, common.BaseHeight)

	text := g.String()
	for _, want := range []string{"JUMPMAN", "Start", "Sound: On", "Exit"} {
		if !strings.Contains(text, want) {
			t.Fatalf("menu raster missing %q:\n%s", want, text)
		}
	}
}

func TestKeyAction(t *testing.T) {
	cases := []struct {
		name string
		key  tcell.Key
		r    rune
		want action
	}{
		{"arrow_left", tcell.KeyLeft, 0, actionLeft},
		{"arrow_right", tcell.KeyRight, 0, actionRight},
		{"arrow_up", tcell.KeyUp, 0, actionJump},
		{"space", tcell.KeyRune, ' ', actionJump},
		{"a", tcell.KeyRune, 'a', actionLeft},
		{"D", tcell.KeyRune, 'D', actionRight},
		{"s", tcell.KeyRune, 's', actionStart},
		{"m", tcell.KeyRune, 'm', actionSound},
		{"q", tcell.KeyRune, 'q', actionExit},
		{"b", tcell.KeyRune, 'b', actionBack},
		{"enter", tcell.KeyEnter, 0, actionConfirm},
		{"ctrl_c", tcell.KeyCtrlC, 0, actionQuit},
		{"esc", tcell.KeyEscape, 0, actionQuit},
		{"other", tcell.KeyRune, 'z', actionNone},
		{"tab", tcell.KeyTab, 0, actionNone},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := keyAction(c.key, c.r); got != c.want {
				t.Fatalf("keyAction = %v, want %v", got, c.want)
			}
		})
	}
}

func TestHeldKeysExpire(t *testing.T) {
	var h heldKeys
	h.press(actionRight)
	for i := 0; i < holdTicks; i++ {
		if in := h.tick(); !in.Right || in.Left {
			t.Fatalf("tick %d: expected right held, got %+v", i, in)
		}
	}
	if in := h.tick(); in.Right {
		t.Fatalf("right should be released after %d ticks", holdTicks)
	}

	h.press(actionLeft)
	h.press(actionRight)
	if in := h.tick(); in.Left || !in.Right {
		t.Fatalf("latest direction should win, got %+v", in)
	}
}

func newSimFrontend(t *testing.T) (*Frontend, *game.Session, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(128, 48)

	f := NewFrontend(screen, nil)
	s := game.NewSession(prefabs.MustLoadDefaults(), game.WithQuitter(f))
	f.session = s
	return f, s, screen
}

func TestFrontendMouseClick(t *testing.T) {
	f, s, _ := newSimFrontend(t)
	f.draw()

	col, row := f.grid.ToCell(512, 324)
	f.clickCell(col, row)
	if s.State() != game.StatePlaying {
		t.Fatalf("clicking the start button cell should start, got %v", s.State())
	}
}

func TestFrontendShortcuts(t *testing.T) {
	f, s, _ := newSimFrontend(t)

	f.apply(actionSound)
	if s.SoundEnabled() {
		t.Fatalf("m should toggle sound off")
	}
	f.apply(actionBack)
	if s.State() != game.StateMenu {
		t.Fatalf("back is not on the menu")
	}
	f.apply(actionConfirm)
	if s.State() != game.StatePlaying {
		t.Fatalf("enter should press the first menu button, got %v", s.State())
	}

	f.apply(actionJump)
	if s.Hero().OnGround {
		t.Fatalf("jump should lift the hero")
	}

	s.Dispatch(game.EventFlagReached)
	f.apply(actionBack)
	if s.State() != game.StateMenu {
		t.Fatalf("b should go back from the win screen")
	}

	f.apply(actionExit)
	if !f.quitting.Load() {
		t.Fatalf("exit button should quit through the session")
	}
}

func TestFrontendRunStopsOnContext(t *testing.T) {
	f, s, _ := newSimFrontend(t)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- f.Run(ctx, s) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("run did not stop")
	}
	if s.Ticks() == 0 {
		t.Fatalf("expected some ticks to run")
	}
}
