package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-diver/internal/games/diver"
	"github.com/vovakirdan/tui-diver/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Dive in a desktop window",
	Long: `Open the game in a desktop window at the world's native resolution.

Controls are the same as in the terminal; Q closes the window.

Examples:
  diver window
  diver window --scale 1.5 --difficulty high`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale factor")
}

func runWindow(_ *cobra.Command, _ []string) error {
	st, err := openStores()
	if err != nil {
		return err
	}
	defer st.Close()

	opts := window.Options{
		Records:  st.records,
		Logger:   logger,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Scale:    flagScale,
	}
	if st.history != nil {
		opts.History = st.history
	}
	if snd := startSound(); snd != nil {
		defer snd.Cleanup()
		opts.Sound = snd
	}

	logger.Info("dive started", "frontend", "window", "store", flagStore, "seed", flagSeed)
	return window.Run(diver.New(), opts)
}
