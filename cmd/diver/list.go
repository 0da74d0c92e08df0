package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-diver/internal/config"
	"github.com/vovakirdan/tui-diver/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the games and tiers this binary plays",
	Long:  `Shows every registered game and the difficulty tiers of the active config.`,
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := config.LoadDiver(flagConfig)
		if err != nil {
			return err
		}
		return writeList(os.Stdout, registry.List(), cfg)
	},
}

func writeList(out io.Writer, games []registry.GameInfo, cfg config.DiverConfig) error {
	if len(games) == 0 {
		_, err := fmt.Fprintln(out, "No games registered.")
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "GAME\tTITLE")
	for _, g := range games {
		fmt.Fprintf(tw, "%s\t%s\n", g.ID, g.Title)
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "TIER\tLIVES\tSHARKS\tJELLYFISH")
	for _, t := range config.Tiers() {
		p, err := cfg.Profile(t)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", t.Label(), p.Lives, p.MaxSharks, p.MaxJellyfish)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(out, "\nRun 'diver play' to pick a tier, or 'diver play --difficulty <tier>' to dive straight in.")
	return err
}
