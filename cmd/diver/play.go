package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-diver/internal/audio"
	"github.com/vovakirdan/tui-diver/internal/config"
	"github.com/vovakirdan/tui-diver/internal/core"
	"github.com/vovakirdan/tui-diver/internal/games/diver"
	"github.com/vovakirdan/tui-diver/internal/platform/tui"
	"github.com/vovakirdan/tui-diver/internal/registry"
)

var (
	flagSound  bool
	flagVolume float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Dive in the terminal",
	Long: `Start the game in the terminal.

Controls:
  W/Up        - Swim up
  S/Down      - Swim down
  D/Right/Spc - Boost forward
  Enter       - Start the selected tier
  P           - Pause
  R           - Restart
  B/Esc       - Back to the tier menu
  Ctrl+S      - Screenshot
  Q/Ctrl+C    - Quit

Examples:
  diver play
  diver play --difficulty low
  diver play --store gdata --no-sound
  diver play --config ./my-diver.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSound, "sound", true, "Play sound effects")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Sound volume, 0 to 1")
	windowCmd.Flags().BoolVar(&flagSound, "sound", true, "Play sound effects")
	windowCmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Sound volume, 0 to 1")
}

func runPlay(_ *cobra.Command, _ []string) error {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	game, err := registry.Create(diver.ID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	st, err := openStores()
	if err != nil {
		return err
	}
	defer st.Close()

	cfg, _ := config.LoadDiver(flagConfig)
	opts := tui.Options{
		Records:   st.records,
		Logger:    logger,
		HoldTicks: cfg.Input.HoldTicks,
	}
	if st.history != nil {
		opts.History = st.history
	}
	if snd := startSound(); snd != nil {
		defer snd.Cleanup()
		opts.Sound = snd
	}

	logger.Info("dive started", "frontend", "terminal", "store", flagStore, "seed", flagSeed)
	return tui.Run(game, core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}, opts)
}

// startSound opens the speaker, or returns nil when sound is off or no
// audio device is available.
func startSound() *audio.SoundManager {
	if !flagSound {
		return nil
	}
	snd := audio.NewSoundManager(flagVolume, logger.WithPrefix("audio"))
	if err := snd.Initialize(); err != nil {
		logger.Warn("sound disabled", "err", err)
		return nil
	}
	return snd
}
