package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/jumpman/common"
	"github.com/milk9111/jumpman/game"
	"github.com/milk9111/jumpman/prefabs"
	"github.com/milk9111/jumpman/render"
)

// Game adapts a game.Session to ebiten's loop.
type Game struct {
	session *game.Session
	painter *render.Painter
	logger  *log.Logger

	pauseUI *ebitenui.UI
	paused  bool
	quit    bool
	debug   bool

	reloads <-chan *prefabs.Specs
}

func NewGame(session *game.Session, painter *render.Painter, logger *log.Logger, debug bool) *Game {
	g := &Game{
		session: session,
		painter: painter,
		logger:  logger,
		debug:   debug,
	}
	g.pauseUI = NewPauseUI(g)
	return g
}

// Quit ends the run loop on the next Update.
func (g *Game) Quit() {
	g.quit = true
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	g.applyReloads()

	in := pollInput()
	if in.pause && g.session.State() == game.StatePlaying {
		g.paused = !g.paused
		g.logger.Debug("pause toggled", "paused", g.paused)
	}
	if g.session.State() != game.StatePlaying {
		g.paused = false
	}

	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if in.jumpPressed {
		g.session.JumpPressed()
	}
	if in.clicked {
		g.session.Click(in.clickX, in.clickY)
	}
	g.session.Update(in.move)

	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) applyReloads() {
	if g.reloads == nil {
		return
	}
	select {
	case specs, ok := <-g.reloads:
		if !ok {
			g.reloads = nil
			return
		}
		g.session.SetSpecs(specs)
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.session.Scene())

	if g.paused {
		g.pauseUI.Draw(screen)
	}

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("State: %v    Ticks: %d    FPS: %.2f", g.session.State(), g.session.Ticks(), ebiten.ActualFPS()))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
