package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-diver/internal/config"
	"github.com/vovakirdan/tui-diver/internal/games/diver"
	"github.com/vovakirdan/tui-diver/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and dive.

Each SSH connection gets its own independent game. Records and the
logbook are stored per server, so all users share them.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.diver/host_key

Examples:
  diver serve                           # Listen on :23234
  diver serve --ssh :2222               # Listen on port 2222
  diver serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	st, err := openStores()
	if err != nil {
		return err
	}
	defer st.Close()

	diverCfg, _ := config.LoadDiver(flagConfig)
	cfg := tui.DefaultSSHServerConfig(diver.ID)
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.TickRate = flagFPS
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Options = tui.Options{
		Records:   st.records,
		Logger:    logger,
		HoldTicks: diverCfg.Input.HoldTicks,
	}
	if st.history != nil {
		cfg.Options.History = st.history
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Starting diver SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")
	return server.ListenAndServe()
}
