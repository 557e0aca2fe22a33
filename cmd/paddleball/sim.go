package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paddleball/internal/games/paddleball"
	"github.com/vovakirdan/paddleball/internal/storage"
)

var (
	flagTicks int
	flagDT    float64
	flagInput string
	flagTrace bool
	flagSave  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a variant headless with scripted input",
	Long: `Step the simulation without a terminal UI and print the final state.

The input script is a comma separated list of <keys>:<ticks> entries.
Keys are left, right, up, down or none, joined with '+'. Past the end
of the script no keys are held.

Examples:
  paddleball sim
  paddleball sim --variant basic --ticks 120 --input "left:60,right+up:60"
  paddleball sim --dt 1 --ticks 10 --trace
  paddleball sim --ticks 3600 --save`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 600, "Number of ticks to simulate")
	simCmd.Flags().Float64Var(&flagDT, "dt", 0, "Seconds per tick (0 = 1/fps)")
	simCmd.Flags().StringVar(&flagInput, "input", "", `Input script, e.g. "left:30,right:30,none:10"`)
	simCmd.Flags().BoolVar(&flagTrace, "trace", false, "Log every tick with a hit or wall bounce")
	simCmd.Flags().BoolVar(&flagSave, "save", false, "Save the run to the history")
}

func runSim(_ *cobra.Command, _ []string) error {
	if flagTicks < 0 {
		return fmt.Errorf("--ticks must not be negative, got %d", flagTicks)
	}

	v, err := resolveVariant(nil)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(v)
	if err != nil {
		return err
	}
	script, err := paddleball.ParseScript(flagInput)
	if err != nil {
		return err
	}

	dt := flagDT
	if dt <= 0 {
		dt = 1.0 / float64(flagFPS)
	}

	simLog := logger.WithPrefix("sim")
	w := paddleball.NewWorld(cfg)
	for i := range flagTicks {
		report := w.Step(dt, script.At(i))
		if !flagTrace {
			continue
		}
		for _, hit := range report.Hits {
			simLog.Info("hit", "tick", hit.Tick, "side", hit.Side, "collider", int(hit.Collider))
		}
		if report.Wall.Any() {
			simLog.Info("wall", "tick", w.Tick(), "x", report.Wall.X, "y", report.Wall.Y)
		}
	}

	fmt.Printf("variant  %s\n", v)
	fmt.Printf("ticks    %d (dt %.4fs)\n", w.Tick(), dt)
	fmt.Printf("ball     pos (%.2f, %.2f)  vel (%.2f, %.2f)\n", w.Ball.Pos.X, w.Ball.Pos.Y, w.Ball.Vel.X, w.Ball.Vel.Y)
	fmt.Printf("paddle   pos (%.2f, %.2f)\n", w.Paddle.Pos.X, w.Paddle.Pos.Y)
	fmt.Printf("hits     %d\n", w.Hits())
	fmt.Printf("bounces  %d\n", w.Bounces())

	if !flagSave {
		return nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.SaveRun(storage.Run{
		GameID:   paddleball.GameID(v),
		Variant:  string(v),
		Ticks:    w.Tick(),
		Hits:     w.Hits(),
		Bounces:  w.Bounces(),
		Seed:     flagSeed,
		Duration: time.Duration(float64(w.Tick()) * dt * float64(time.Second)),
	})
	if err != nil {
		return err
	}
	simLog.Info("run saved", "id", id)
	return nil
}
