// diver is an underwater side-scroller for the terminal, a desktop window
// or an SSH server.
//
// Usage:
//
//	diver play               - Dive in the terminal
//	diver window             - Dive in a desktop window
//	diver serve              - Start SSH server for remote play
//	diver scores [tier]      - Show the logbook for a tier
//	diver tiers              - Show the difficulty tiers
//	diver list               - List available games
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.diver/scores.db)
//	--store <backend>     - High score backend: sqlite, gdata or memory
//	--config <path>       - Game config YAML
//	--difficulty <tier>   - Skip the tier menu: low, medium or high
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-diver/internal/config"
	"github.com/vovakirdan/tui-diver/internal/games/diver"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagStore      string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

// interactive commands own the terminal, so their logs go to a file.
var interactive = map[string]bool{"play": true, "window": true}

// logger is set up by the root command before any subcommand runs.
var logger *log.Logger

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "diver",
	Short: "Deep Diver - collect pearls, dodge sharks",
	Long: `Deep Diver is an underwater side-scroller. Swim through the reef,
collect pearls and treasure, and keep clear of sharks and jellyfish.

Available commands:
  play     - Dive in the terminal
  window   - Dive in a desktop window
  serve    - Start SSH server for remote play
  scores   - View the logbook
  tiers    - Show difficulty tiers
  list     - Show all available games

Examples:
  diver play
  diver play --difficulty high
  diver window --scale 1.5
  diver serve --ssh :2222
  diver scores low --board`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		path := flagLogFile
		if path == "" && !interactive[cmd.Name()] {
			path = "-"
		}
		l, err := newLogger(flagLogLevel, path)
		if err != nil {
			return err
		}
		logger = l

		if flagDifficulty != "" {
			if _, err := config.ParseTier(flagDifficulty); err != nil {
				return err
			}
		}
		if flagConfig != "" {
			if _, err := config.LoadDiver(flagConfig); err != nil {
				return err
			}
		}
		diver.SetConfigPath(flagConfig)
		diver.SetDifficultyPreset(flagDifficulty)
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.diver/scores.db", "Path to scores database")
	pf.StringVar(&flagStore, "store", "sqlite", "High score backend: sqlite, gdata, memory")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Start directly at a tier: low, medium, high")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Log file, - for stderr (default: ~/.diver/diver.log for play and window, stderr otherwise)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(tiersCmd)
}
