// jumpman is a small single-screen platformer.
//
// Usage:
//
//	jumpman              - play in a window
//	jumpman tui          - play in the terminal
//	jumpman layout       - print the level as text
//
// Global flags:
//
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--prefabs <dir>      - directory of YAML overrides (default: prefabs)
//	--mute               - never open an audio device
//	--watch              - reload prefabs when files under --prefabs change
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/milk9111/jumpman/common"
	"github.com/milk9111/jumpman/game"
	"github.com/milk9111/jumpman/prefabs"
	"github.com/milk9111/jumpman/render"
	"github.com/milk9111/jumpman/sound"
)

var (
	flagLogLevel string
	flagPrefabs  string
	flagMute     bool
	flagWatch    bool
	flagDebug    bool
	flagAssets   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jumpman",
	Short: "Jumpman - reach the flag without touching an enemy",
	Long: `Jumpman is a single-screen platformer. Run left and right, jump between
platforms and reach the flag without touching an enemy.

Controls:
  A/D or Left/Right  - Move
  Space/W/Up         - Jump
  Mouse              - Menu buttons
  P/Esc              - Pause`,
	SilenceUsage: true,
	RunE:         runWindow,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagPrefabs, "prefabs", prefabs.DefaultDir, "Directory of prefab YAML overrides")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable audio output entirely")
	rootCmd.PersistentFlags().BoolVar(&flagWatch, "watch", false, "Hot reload prefabs from --prefabs; changes apply on the next start")

	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Show the debug overlay")
	rootCmd.Flags().StringVar(&flagAssets, "assets", "assets", "Directory of PNG sprites; missing sprites are drawn as placeholders")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(layoutCmd)
}

func newLogger(w io.Writer) (*log.Logger, error) {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "jumpman",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)
	return logger, nil
}

func loadSpecs(logger *log.Logger) (*prefabs.Specs, error) {
	specs, err := prefabs.LoadAll(flagPrefabs)
	if err != nil {
		return nil, err
	}
	logger.Debug("prefabs loaded", "dir", flagPrefabs, "world", specs.World.Name)
	return specs, nil
}

// watchSpecs returns nil when --watch is off or the directory cannot be watched.
func watchSpecs(ctx context.Context, logger *log.Logger) <-chan *prefabs.Specs {
	if !flagWatch {
		return nil
	}
	ch, err := prefabs.Watch(ctx, flagPrefabs, logger)
	if err != nil {
		logger.Warn("prefab watch disabled", "dir", flagPrefabs, "err", err)
		return nil
	}
	logger.Info("watching prefabs", "dir", flagPrefabs)
	return ch
}

func runWindow(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	specs, err := loadSpecs(logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	audio, closeAudio := newWindowAudio(logger)
	defer closeAudio()

	painter, err := render.NewPainter(render.NewRegistry(os.DirFS(flagAssets), logger))
	if err != nil {
		return err
	}

	var g *Game
	session := game.NewSession(specs,
		game.WithAudio(audio),
		game.WithLogger(logger),
		game.WithQuitter(game.QuitFunc(func() { g.Quit() })),
	)
	g = NewGame(session, painter, logger, flagDebug)
	g.reloads = watchSpecs(ctx, logger)

	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(specs.World.Title)
	ebiten.SetTPS(common.TPS)

	session.Start()
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		return err
	}
	logger.Info("bye")
	return nil
}

func newWindowAudio(logger *log.Logger) (game.Audio, func()) {
	if flagMute {
		return sound.Nop{}, func() {}
	}
	bank, err := sound.NewBank()
	if err != nil {
		logger.Error("sound bank", "err", err)
		return sound.Nop{}, func() {}
	}
	a, err := sound.NewEbiten(bank, logger)
	if err != nil {
		logger.Warn("audio disabled", "err", err)
		return sound.Nop{}, func() {}
	}
	return a, func() {
		if err := a.Close(); err != nil {
			logger.Warn("close audio", "err", err)
		}
	}
}
