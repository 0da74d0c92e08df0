package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-diver/internal/config"
)

var flagYAML bool

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "Show the difficulty tiers",
	Long: `Print the tuning of every difficulty tier from the active config.

With --yaml the whole effective configuration is printed as YAML, which
is a good starting point for --config.

Examples:
  diver tiers
  diver tiers --yaml > my-diver.yaml`,
	Args: cobra.NoArgs,
	RunE: runTiers,
}

func init() {
	tiersCmd.Flags().BoolVar(&flagYAML, "yaml", false, "Print the effective configuration as YAML")
}

func runTiers(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadDiver(flagConfig)
	if err != nil {
		return err
	}

	if flagYAML {
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(cfg)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TIER\tLIVES\tCRUISE\tBOOST\tHAZARD x\tSHARKS\tJELLY\tPEARLS\tTREASURE")
	for _, t := range config.Tiers() {
		p, err := cfg.Profile(t)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%d\t%g\t%g\t%g\t%d\t%d\t%d\t%d\n",
			t.Label(), p.Lives, p.CruiseSpeed, p.BoostSpeed, p.HazardSpeedFactor,
			p.MaxSharks, p.MaxJellyfish, p.MaxPearls, p.MaxTreasures)
	}
	return tw.Flush()
}
