package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-intruder/internal/games/intruder"
	"github.com/vovakirdan/space-intruder/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start Space Intruder in a desktop window sized to the game world.

Controls are the same as in the terminal; closing the window quits.
Logs go to stderr unless --log-file is set.

Examples:
  intruder window
  intruder window --scale 2`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the game world")
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	err = window.Run(intruder.New(cfg), window.Options{
		Scale:    flagScale,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Logger:   logger,
	})
	if err != nil {
		logger.Error("window frontend failed", "err", err)
		return err
	}
	return nil
}
