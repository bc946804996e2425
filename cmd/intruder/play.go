package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-intruder/internal/config"
	"github.com/vovakirdan/space-intruder/internal/core"
	"github.com/vovakirdan/space-intruder/internal/games/intruder"
	"github.com/vovakirdan/space-intruder/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Space Intruder in the terminal.

Controls:
  Arrows/WASD - Move
  Space       - Shoot
  P           - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Examples:
  intruder play
  intruder play --fps 30
  intruder play --config ./my-intruder.yaml --log-file intruder.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

// loadConfig loads and validates the game configuration.
func loadConfig(logger *log.Logger) (config.IntruderConfig, error) {
	cfg, source, err := config.LoadIntruder(flagConfig)
	if err != nil {
		return config.IntruderConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.IntruderConfig{}, fmt.Errorf("config %s: %w", source, err)
	}
	logger.Info("config loaded", "source", source)
	return cfg, nil
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if err := tui.Run(intruder.New(cfg), runtime, logger); err != nil {
		logger.Error("terminal frontend failed", "err", err)
		return err
	}
	return nil
}
