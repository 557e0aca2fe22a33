package main

import (
	"net"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paddleball/internal/games/paddleball"
	"github.com/vovakirdan/paddleball/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the paddleball SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session and world. The session opens a
variant menu with the cursor on --variant. Runs of every user go to the
server's history database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.paddleball/host_key

Examples:
  paddleball serve                           # Listen on :23234
  paddleball serve --ssh :2222               # Listen on port 2222
  paddleball serve --variant basic           # Menu starts on basic
  paddleball serve --db ./runs.db            # Use specific database

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
	v, err := resolveVariant(nil)
	if err != nil {
		return err
	}
	if _, err := loadConfig(v); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.GameID = paddleball.GameID(v)
	cfg.TickRate = flagFPS

	server, err := tui.NewSSHServer(cfg, store, logger.WithPrefix("ssh"))
	if err != nil {
		return err
	}

	if _, port, err := net.SplitHostPort(server.Addr()); err == nil {
		logger.Info("connect with", "command", "ssh localhost -p "+port)
	}
	return server.ListenAndServe()
}
