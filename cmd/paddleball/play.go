package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/paddleball/internal/core"
	"github.com/vovakirdan/paddleball/internal/games/paddleball"
	"github.com/vovakirdan/paddleball/internal/platform/tui"
	"github.com/vovakirdan/paddleball/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant (default: collider).

Controls:
  Arrows/WASD  - Move the paddle
  P/Esc        - Pause
  R            - Restart
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

The run is saved to the history when you quit or restart.

Examples:
  paddleball play
  paddleball play bounded
  paddleball play basic --config ./paddleball.yaml
  paddleball play --fps 30`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	v, err := resolveVariant(args)
	if err != nil {
		return err
	}
	if _, err := loadConfig(v); err != nil {
		return err
	}

	game, err := registry.Create(paddleball.GameID(v))
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, logger.WithPrefix("play"), cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
