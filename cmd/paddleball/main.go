// paddleball runs the paddle-and-ball simulation in the terminal.
//
// Usage:
//
//	paddleball list              - List the variants
//	paddleball play [variant]    - Play a variant interactively
//	paddleball sim               - Run a variant headless with scripted input
//	paddleball runs [variant]    - Show the run history
//	paddleball serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Seed recorded with each run
//	--db <path>          - Set database path (default: ~/.paddleball/runs.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--config <path>      - YAML or TOML config file
//	--variant <name>     - basic, bounded or collider (default: collider)
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/paddleball/internal/config"
	"github.com/vovakirdan/paddleball/internal/games/paddleball"
	"github.com/vovakirdan/paddleball/internal/storage"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagConfig   string
	flagVariant  string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "paddleball",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "paddleball",
	Short: "Paddleball - a ball, a paddle and a box in your terminal",
	Long: `Paddleball simulates a ball bouncing inside a 900x600 box with a
player-controlled paddle. Three variants share one simulation:

  collider  - fast ball that bounces off the paddle (default)
  basic     - slow ball, paddle passes through it
  bounded   - slow ball, paddle kept inside the box

Available commands:
  list     - Show the variants
  play     - Play a variant
  sim      - Headless run with scripted input
  runs     - View the run history
  serve    - Start SSH server for remote play

Examples:
  paddleball play
  paddleball play basic --config ./paddleball.toml
  paddleball sim --ticks 1200 --input "left:60,right:60" --trace
  paddleball runs collider
  paddleball serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Seed recorded with each run (0 = time based)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.paddleball/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config file")
	rootCmd.PersistentFlags().StringVar(&flagVariant, "variant", "", "Variant: basic, bounded, collider")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(serveCmd)
}

func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("bad --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	paddleball.SetConfigPath(flagConfig)
	return nil
}

// resolveVariant picks the variant from the first argument, falling back to
// --variant. Registry ids such as paddleball_basic are accepted too.
func resolveVariant(args []string) (config.Variant, error) {
	name := flagVariant
	if len(args) > 0 {
		name = args[0]
	}

	name = strings.ToLower(strings.TrimSpace(name))
	if name == "paddleball" {
		return config.VariantCollider, nil
	}
	return config.ParseVariant(strings.TrimPrefix(name, "paddleball_"))
}

// loadConfig loads the config for v and reports where it came from.
func loadConfig(v config.Variant) (config.PaddleballConfig, error) {
	cfg, source, err := config.LoadPaddleball(flagConfig, v)
	if err != nil {
		return cfg, err
	}

	logger.Debug("config loaded", "variant", v, "source", source)
	if cfg.Input.Horizontal == config.HorizontalLegacy {
		logger.Warn("legacy horizontal input: right overrides left when both are held",
			"variant", v,
		)
	}
	return cfg, nil
}

// openStore opens the run history. A store that cannot be opened is not
// fatal; the caller continues without history.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
