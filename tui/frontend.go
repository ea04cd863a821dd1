package tui

import (
	"context"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/jumpman/common"
	"github.com/milk9111/jumpman/game"
	"github.com/milk9111/jumpman/obj"
	"github.com/milk9111/jumpman/prefabs"
)

// holdTicks is how long a move key counts as held after its last key event.
// Terminals only report presses and auto-repeat, never releases.
const holdTicks = 8

type action int

const (
	actionNone action = iota
	actionLeft
	actionRight
	actionJump
	actionStart
	actionSound
	actionExit
	actionBack
	actionConfirm
	actionQuit
)

// keyAction maps a key to what it does. Letters are case-insensitive.
func keyAction(key tcell.Key, r rune) action {
	switch key {
	case tcell.KeyLeft:
		return actionLeft
	case tcell.KeyRight:
		return actionRight
	case tcell.KeyUp:
		return actionJump
	case tcell.KeyEnter:
		return actionConfirm
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return actionQuit
	case tcell.KeyRune:
	default:
		return actionNone
	}

	switch r {
	case 'a', 'A':
		return actionLeft
	case 'd', 'D':
		return actionRight
	case ' ', 'w', 'W':
		return actionJump
	case 's', 'S':
		return actionStart
	case 'm', 'M':
		return actionSound
	case 'q', 'Q':
		return actionExit
	case 'b', 'B':
		return actionBack
	default:
		return actionNone
	}
}

// heldKeys emulates held movement from press events.
type heldKeys struct {
	left, right int
}

func (h *heldKeys) press(a action) {
	switch a {
	case actionLeft:
		h.left = holdTicks
		h.right = 0
	case actionRight:
		h.right = holdTicks
		h.left = 0
	}
}

// tick returns the held state for this tick and ages it.
func (h *heldKeys) tick() game.Input {
	in := game.Input{Left: h.left > 0, Right: h.right > 0}
	if h.left > 0 {
		h.left--
	}
	if h.right > 0 {
		h.right--
	}
	return in
}

// Frontend runs a session in the terminal with tcell.
type Frontend struct {
	screen  tcell.Screen
	session *game.Session
	logger  *log.Logger

	held     heldKeys
	mouse    tcell.ButtonMask
	grid     *Grid
	quitting atomic.Bool
	reloads  <-chan *prefabs.Specs
}

func NewFrontend(screen tcell.Screen, logger *log.Logger) *Frontend {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Frontend{screen: screen, logger: logger}
}

// SetReloads hands reloaded prefabs to the session as they arrive.
func (f *Frontend) SetReloads(ch <-chan *prefabs.Specs) {
	f.reloads = ch
}

// Quit stops Run after the current tick. It lets the frontend serve as the
// session's Quitter.
func (f *Frontend) Quit() {
	f.quitting.Store(true)
}

// Run drives the session at the fixed tick rate until ctx is done or the
// player quits. The caller owns the screen and must Fini it.
func (f *Frontend) Run(ctx context.Context, session *game.Session) error {
	f.session = session
	f.screen.EnableMouse()
	f.screen.HideCursor()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / common.TPS)
	defer ticker.Stop()

	f.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			f.handleEvent(ev)
		case specs, ok := <-f.reloads:
			if !ok {
				f.reloads = nil
				continue
			}
			f.session.SetSpecs(specs)
		case <-ticker.C:
			f.session.Update(f.held.tick())
			f.draw()
		}
		if f.quitting.Load() {
			f.logger.Info("quit requested")
			return nil
		}
	}
}

func (f *Frontend) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		f.apply(keyAction(ev.Key(), ev.Rune()))
	case *tcell.EventMouse:
		x, y := ev.Position()
		buttons := ev.Buttons()
		// click on press only
		if buttons&tcell.Button1 != 0 && f.mouse&tcell.Button1 == 0 {
			f.clickCell(x, y)
		}
		f.mouse = buttons
	case *tcell.EventResize:
		f.screen.Sync()
	}
}

func (f *Frontend) apply(a action) {
	switch a {
	case actionLeft, actionRight:
		f.held.press(a)
	case actionJump:
		f.session.JumpPressed()
	case actionStart:
		f.clickButton(obj.ButtonStart)
	case actionSound:
		f.clickButton(obj.ButtonSound)
	case actionExit:
		f.clickButton(obj.ButtonExit)
	case actionBack:
		f.clickButton(obj.ButtonBack)
	case actionConfirm:
		if buttons := f.session.Buttons(); len(buttons) > 0 {
			f.clickButton(buttons[0].Name)
		}
	case actionQuit:
		f.Quit()
	}
}

// clickButton clicks the centre of a button if the current screen shows it.
func (f *Frontend) clickButton(name string) {
	for _, b := range f.session.Buttons() {
		if b.Name == name {
			f.session.Click(b.CenterX(), b.CenterY())
			return
		}
	}
}

func (f *Frontend) clickCell(col, row int) {
	if f.grid == nil {
		return
	}
	x, y := f.grid.ToWorld(col, row)
	if f.session.Click(x, y) {
		f.logger.Debug("click", "col", col, "row", row, "x", x, "y", y)
	}
}

func (f *Frontend) draw() {
	cols, rows := f.screen.Size()
	world := f.session.World()
	scene := f.session.Scene()
	f.grid = Rasterize(scene, cols, rows, world.Width, world.Height)

	f.screen.Clear()
	for row := 0; row < f.grid.Rows; row++ {
		for col := 0; col < f.grid.Cols; col++ {
			c := f.grid.At(col, row)
			f.screen.SetContent(col, row, c.Rune, nil, styleFor(c.Kind, scene))
		}
	}
	f.screen.Show()
}

var kindStyles = map[Kind]tcell.Style{
	KindEmpty:    tcell.StyleDefault,
	KindGround:   tcell.StyleDefault.Foreground(tcell.ColorSaddleBrown),
	KindPlatform: tcell.StyleDefault.Foreground(tcell.ColorPeru),
	KindHero:     tcell.StyleDefault.Foreground(tcell.ColorRoyalBlue).Bold(true),
	KindEnemy:    tcell.StyleDefault.Foreground(tcell.ColorCrimson).Bold(true),
	KindFlag:     tcell.StyleDefault.Foreground(tcell.ColorGold),
	KindButton:   tcell.StyleDefault.Background(tcell.ColorSteelBlue),
	KindLabel:    tcell.StyleDefault.Background(tcell.ColorSteelBlue).Foreground(tcell.ColorWhite).Bold(true),
}

func styleFor(k Kind, scene game.Scene) tcell.Style {
	if k == KindTitle {
		return tcell.StyleDefault.Foreground(tcell.GetColor(scene.TitleColor)).Bold(true)
	}
	return kindStyles[k]
}
