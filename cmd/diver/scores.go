package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-diver/internal/config"
	"github.com/vovakirdan/tui-diver/internal/platform/tui"
	"github.com/vovakirdan/tui-diver/internal/storage"
)

var (
	flagBoard bool
	flagClear bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [tier]",
	Short: "Show the logbook for a tier",
	Long: `Display the best dives for a tier (medium if omitted).

Examples:
  diver scores
  diver scores high --limit 20
  diver scores --board
  diver scores low --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBoard, "board", false, "Browse all tiers interactively")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the tier's logbook and record")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of entries to show")
}

func runScores(_ *cobra.Command, args []string) error {
	tier := config.TierMedium
	if len(args) == 1 {
		t, err := config.ParseTier(args[0])
		if err != nil {
			return err
		}
		tier = t
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()
	store.SetLogger(logger.WithPrefix("sqlite"))

	if flagClear {
		if err := store.ClearScores(tier); err != nil {
			return err
		}
		fmt.Printf("Cleared the %s logbook.\n", tier.Label())
		return nil
	}

	if flagBoard {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, tier, width, height)
	}

	return printScores(store, tier)
}

func printScores(store *storage.Store, tier config.Tier) error {
	scores, err := store.TopScores(tier, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("Logbook - %s\n\n", tier.Label())
	if len(scores) == 0 {
		fmt.Println("No dives recorded yet.")
		fmt.Printf("\nRun 'diver play --difficulty %s' to set the first record!\n", tier)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %s\n", "Rank", "Score", "Pearls", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %s\n", "----", "-----", "------", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-8d  %-6d  %s\n", i+1, e.Score, e.Pearls, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetTierStats(tier)
	if err != nil {
		return err
	}
	fmt.Printf("\nBest: %d   Dives: %d   Average: %.0f   Pearls: %d\n",
		store.HighScore(tier), stats.GamesCount, stats.AvgScore, stats.Pearls)
	return nil
}
