package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/milk9111/jumpman/game"
	"github.com/milk9111/jumpman/sound"
	"github.com/milk9111/jumpman/tui"
)

var (
	flagLogFile string
	flagState   string
	flagCols    int
	flagRows    int
	flagColor   string
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Play in the terminal",
	Long: `Play Jumpman in the terminal. The world is scaled to the terminal size.

Controls:
  A/D or Left/Right  - Move (terminals repeat keys; hold to keep running)
  Space/W/Up         - Jump
  S / M / Q          - Start / Sound / Exit on the menu
  B                  - Back after a game over or victory
  Enter              - Press the first button on screen
  Mouse              - Menu buttons
  Esc/Ctrl+C         - Quit`,
	RunE: runTUI,
}

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the level as text",
	Long: `Rasterize one screen of the game and print it. Useful for checking a
prefab change without opening a window.

Examples:
  jumpman layout
  jumpman layout --state menu --cols 64 --rows 24
  jumpman layout --prefabs ./my-prefabs --color never`,
	RunE: runLayout,
}

func init() {
	tuiCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the terminal is busy drawing)")

	layoutCmd.Flags().StringVar(&flagState, "state", "playing", "Screen to print: menu, playing, game_over, win")
	layoutCmd.Flags().IntVar(&flagCols, "cols", 0, "Columns (default: terminal width, or 128)")
	layoutCmd.Flags().IntVar(&flagRows, "rows", 0, "Rows (default: terminal height - 1, or 48)")
	layoutCmd.Flags().StringVar(&flagColor, "color", "auto", "Colour output: auto, always, never")
}

func runTUI(cmd *cobra.Command, args []string) error {
	logOut := io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut)
	if err != nil {
		return err
	}
	specs, err := loadSpecs(logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	audio, closeAudio := newTerminalAudio(logger)
	defer closeAudio()

	front := tui.NewFrontend(screen, logger)
	front.SetReloads(watchSpecs(ctx, logger))
	session := game.NewSession(specs,
		game.WithAudio(audio),
		game.WithLogger(logger),
		game.WithQuitter(front),
	)
	session.Start()
	return front.Run(ctx, session)
}

func newTerminalAudio(logger *log.Logger) (game.Audio, func()) {
	if flagMute {
		return sound.Nop{}, func() {}
	}
	bank, err := sound.NewBank()
	if err != nil {
		logger.Error("sound bank", "err", err)
		return sound.Nop{}, func() {}
	}
	sp, err := sound.NewSpeaker(bank, logger)
	if err != nil {
		logger.Warn("audio disabled", "err", err)
		return sound.Nop{}, func() {}
	}
	return sp, sp.Close
}

func runLayout(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	specs, err := loadSpecs(logger)
	if err != nil {
		return err
	}

	session := game.NewSession(specs, game.WithLogger(logger))
	if err := driveTo(session, flagState); err != nil {
		return err
	}

	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	cols, rows := flagCols, flagRows
	if cols <= 0 || rows <= 0 {
		w, h := 128, 48
		if isTTY {
			if tw, th, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
				w, h = tw, th-1
			}
		}
		if cols <= 0 {
			cols = w
		}
		if rows <= 0 {
			rows = h
		}
	}

	colour := flagColor == "always" || (flagColor == "auto" && isTTY)
	world := session.World()
	grid := tui.Rasterize(session.Scene(), cols, rows, world.Width, world.Height)
	fmt.Fprintln(cmd.OutOrStdout(), renderGrid(grid, session.Scene(), colour))
	return nil
}

// driveTo walks a fresh session to the named screen through its normal events.
func driveTo(s *game.Session, state string) error {
	var events []game.Event
	switch strings.ToLower(state) {
	case "menu":
	case "playing":
		events = []game.Event{game.EventStartClicked}
	case "game_over", "gameover":
		events = []game.Event{game.EventStartClicked, game.EventEnemyCollision}
	case "win":
		events = []game.Event{game.EventStartClicked, game.EventFlagReached}
	default:
		return fmt.Errorf("unknown --state %q", state)
	}
	for _, e := range events {
		s.Dispatch(e)
	}
	return nil
}

var layoutStyles = map[tui.Kind]lipgloss.Style{
	tui.KindGround:   lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	tui.KindPlatform: lipgloss.NewStyle().Foreground(lipgloss.Color("173")),
	tui.KindHero:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
	tui.KindEnemy:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	tui.KindFlag:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	tui.KindButton:   lipgloss.NewStyle().Foreground(lipgloss.Color("67")),
	tui.KindLabel:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
}

var titleColors = map[string]lipgloss.Color{
	"red":   lipgloss.Color("9"),
	"green": lipgloss.Color("10"),
	"white": lipgloss.Color("15"),
}

// renderGrid styles runs of same-kind cells so the output stays small.
func renderGrid(g *tui.Grid, scene game.Scene, colour bool) string {
	if !colour {
		return g.String()
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(titleColors[scene.TitleColor])

	var sb strings.Builder
	for row := 0; row < g.Rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		col := 0
		for col < g.Cols {
			kind := g.At(col, row).Kind
			var run []rune
			for col < g.Cols && g.At(col, row).Kind == kind {
				run = append(run, g.At(col, row).Rune)
				col++
			}
			style, ok := layoutStyles[kind]
			if kind == tui.KindTitle {
				style, ok = titleStyle, true
			}
			if !ok {
				sb.WriteString(string(run))
				continue
			}
			sb.WriteString(style.Render(string(run)))
		}
	}
	return sb.String()
}
