package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/game"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var (
	flagFPS  int
	flagSeed uint64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing.

Controls:
  Space/Up/W    - Flap (Space also starts and restarts)
  Enter/Click   - Start or restart
  ?             - More keys
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Start with the widest gaps, narrowing as you score
  normal - Start at 30% difficulty
  hard   - Start at 70% difficulty
  fixed  - No progression, stays at config's initial level

Examples:
  flappy play
  flappy play --difficulty hard
  flappy play --fps 30 --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	playCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameCfg, source, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Info("config loaded", "source", source, "difficulty", flagDifficulty)

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	sim, err := game.New(gameCfg, core.NewXorShift(cfg.Seed), logger)
	if err != nil {
		return err
	}

	if err := tui.Run(sim, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// openLogger returns a debug logger writing to path, or a discarding
// logger when path is empty. The terminal belongs to the game screen.
func openLogger(path string) (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
		Level:           log.DebugLevel,
	})
	return logger, closeFn, nil
}
