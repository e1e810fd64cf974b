package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sushi-bros/internal/games/sushi"
	"github.com/vovakirdan/sushi-bros/internal/platform/tui"
	"github.com/vovakirdan/sushi-bros/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Sushi Bros SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection runs its own independent game. Scores are stored
per-server (all users share the same leaderboard); the control-mode
preference is remembered per SSH user.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.sushibros/host_key

Examples:
  sushibros serve                           # Listen on :23234
  sushibros serve --ssh :2222               # Listen on port 2222
  sushibros serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	level := log.InfoLevel
	if flagLogLevel != "" {
		parsed, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid --log-level: %v\n", err)
			os.Exit(1)
		}
		level = parsed
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "sushibros-ssh",
		Level:           level,
	})

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	} else {
		store.SetLogger(logger)
		defer store.Close()
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.GameID = sushi.GameID
	cfg.TickRate = flagFPS
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute

	server, err := tui.NewSSHServer(cfg, store, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Sushi Bros SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
