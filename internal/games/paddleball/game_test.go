package paddleball

import (
	"strings"
	"testing"

	"github.com/vovakirdan/paddleball/internal/config"
	"github.com/vovakirdan/paddleball/internal/core"
	"github.com/vovakirdan/paddleball/internal/geom"
	"github.com/vovakirdan/paddleball/internal/registry"
)

var testRuntime = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  24,
	TickRate: 60,
	Seed:     12345,
}

func newTestGame(v config.Variant) *Game {
	g := New(v)
	g.ResetWith(testRuntime, variantConfig(v))
	return g
}

func inputSequence(n int) []core.InputFrame {
	frames := make([]core.InputFrame, n)
	for i := range frames {
		frames[i] = core.NewInputFrame()
		switch {
		case i%40 < 15:
			frames[i].Set(core.ActionLeft)
		case i%40 < 30:
			frames[i].Set(core.ActionRight)
			frames[i].Set(core.ActionUp)
		default:
			frames[i].Set(core.ActionDown)
		}
	}
	return frames
}

func TestGameDeterminism(t *testing.T) {
	for _, v := range config.Variants() {
		frames := inputSequence(600)

		g1 := newTestGame(v)
		for _, in := range frames {
			g1.Step(in)
		}
		snap1 := g1.Snapshot()

		g2 := newTestGame(v)
		for _, in := range frames {
			g2.Step(in)
		}
		snap2 := g2.Snapshot()

		if snap1.Hash() != snap2.Hash() {
			t.Errorf("%s: determinism failed: hashes differ. Run1=%d, Run2=%d", v, snap1.Hash(), snap2.Hash())
		}
		if snap1 != snap2 {
			t.Errorf("%s: snapshots differ: %+v vs %+v", v, snap1, snap2)
		}
		if snap1.Tick != 600 {
			t.Errorf("%s: tick = %d, expected 600", v, snap1.Tick)
		}
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(config.VariantCollider)
	for range 50 {
		g.Step(core.NewInputFrame(core.ActionLeft))
	}

	g.ResetWith(testRuntime, variantConfig(config.VariantCollider))

	w := g.World()
	if w.Tick() != 0 || w.Hits() != 0 || w.Bounces() != 0 {
		t.Errorf("counters should reset, got tick=%d hits=%d bounces=%d", w.Tick(), w.Hits(), w.Bounces())
	}
	if w.Paddle.Pos != geom.V(0, 100) {
		t.Errorf("paddle should return to start, got %v", w.Paddle.Pos)
	}
	if w.Ball.Pos != geom.V(0, 200) {
		t.Errorf("ball should return to start, got %v", w.Ball.Pos)
	}
	if g.State().Paused {
		t.Error("game should not be paused after reset")
	}
}

func TestGameResetLoadsEmbeddedConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	SetConfigPath("")

	g := New(config.VariantBasic)
	g.Reset(testRuntime)

	if err := g.ConfigError(); err != nil {
		t.Fatalf("ConfigError() = %v", err)
	}
	if speed := g.World().Ball.Vel.Length(); !approx(speed, 100) {
		t.Errorf("basic ball speed = %v, expected 100", speed)
	}
}

func TestGameResetFallsBackOnBadConfig(t *testing.T) {
	SetConfigPath("/nonexistent/paddleball.yaml")
	defer SetConfigPath("")

	g := New(config.VariantBounded)
	g.Reset(testRuntime)

	if g.ConfigError() == nil {
		t.Error("missing custom config should be reported")
	}
	if g.World() == nil || !g.cfg.Paddle.Clamp {
		t.Error("fallback should still apply the bounded preset")
	}
}

func TestGameRestartAction(t *testing.T) {
	g := newTestGame(config.VariantBasic)
	for range 20 {
		g.Step(core.NewInputFrame(core.ActionRight))
	}
	if g.World().Paddle.Pos.X == 0 {
		t.Fatal("paddle should have moved")
	}

	g.Step(core.NewInputFrame(core.ActionRestart))

	if g.World().Tick() != 0 || g.World().Paddle.Pos.X != 0 {
		t.Errorf("restart should rebuild the world, got tick=%d paddle=%v", g.World().Tick(), g.World().Paddle.Pos)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(config.VariantBasic)

	result := g.Step(core.NewInputFrame(core.ActionPause))
	if !result.State.Paused {
		t.Fatal("pause action should pause the game")
	}

	before := g.Snapshot()
	for range 10 {
		g.Step(core.NewInputFrame(core.ActionLeft))
	}
	after := g.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("world should not advance while paused")
	}

	result = g.Step(core.NewInputFrame(core.ActionPause))
	if result.State.Paused {
		t.Error("second pause action should resume")
	}
	if g.World().Tick() != 1 {
		t.Errorf("resume step should advance one tick, got %d", g.World().Tick())
	}
}

func TestGameHitEvents(t *testing.T) {
	g := newTestGame(config.VariantCollider)
	w := g.World()
	w.Ball.Pos = geom.V(0, 150)
	w.Ball.Vel = geom.V(0, -500)

	result := g.Step(core.NewInputFrame())

	if len(result.Events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(result.Events))
	}
	ev := result.Events[0]
	if ev.Kind != "hit" {
		t.Errorf("event kind = %q, expected hit", ev.Kind)
	}
	if len(ev.Fields) != 6 || ev.Fields[2] != "side" || ev.Fields[3] != "top" {
		t.Errorf("unexpected event fields %v", ev.Fields)
	}
	if result.State.Score != 1 {
		t.Errorf("score = %d, expected 1", result.State.Score)
	}
}

func TestGameMetadata(t *testing.T) {
	tests := []struct {
		variant config.Variant
		id      string
		title   string
	}{
		{config.VariantCollider, "paddleball", "Paddleball"},
		{config.VariantBasic, "paddleball_basic", "Paddleball (Basic)"},
		{config.VariantBounded, "paddleball_bounded", "Paddleball (Bounded)"},
	}

	for _, tc := range tests {
		g := New(tc.variant)
		if g.ID() != tc.id {
			t.Errorf("ID() = %q, expected %q", g.ID(), tc.id)
		}
		if g.Title() != tc.title {
			t.Errorf("Title() = %q, expected %q", g.Title(), tc.title)
		}
		if !registry.Exists(tc.id) {
			t.Errorf("%q should be registered", tc.id)
		}
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(config.VariantCollider)
	screen := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)

	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Paddleball") {
		t.Errorf("HUD should show the title, got %q", screen.Row(0))
	}
	if screen.Get(40, 5) != BallChar {
		t.Errorf("ball should render at (40, 5), got %q", screen.Get(40, 5))
	}
	if cell := screen.GetCell(38, 9); cell.Rune != PaddleChar || cell.Color != core.ColorBlue {
		t.Errorf("paddle should render at (38, 9), got %+v", cell)
	}
	if screen.Get(0, 1) == ' ' {
		t.Error("field border should be drawn")
	}
}

func TestGameRenderPaused(t *testing.T) {
	g := newTestGame(config.VariantBasic)
	g.Step(core.NewInputFrame(core.ActionPause))

	screen := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)
	g.Render(screen)

	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused game should say so")
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	g := New(config.VariantBasic)
	g.ResetWith(core.RuntimeConfig{ScreenW: 18, ScreenH: 5, TickRate: 60}, variantConfig(config.VariantBasic))

	screen := core.NewScreen(18, 5)
	g.Render(screen)

	if !strings.Contains(screen.String(), "small") {
		t.Errorf("expected a too-small message, got:\n%s", screen.String())
	}
}

func TestRenderOffFieldPaddleKeepsBorder(t *testing.T) {
	g := newTestGame(config.VariantBasic)
	g.World().Paddle.Pos = geom.V(2000, 100)

	screen := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)
	g.Render(screen)

	for y := 1; y < screen.Height(); y++ {
		if screen.Get(screen.Width()-1, y) == PaddleChar {
			t.Fatalf("paddle drawn over the border at row %d", y)
		}
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	g1 := newTestGame(config.VariantCollider)
	for _, in := range inputSequence(120) {
		g1.Step(in)
	}
	snap := g1.Snapshot()

	g2 := newTestGame(config.VariantCollider)
	g2.ApplySnapshot(snap)

	restored := g2.Snapshot()
	if restored.Hash() != snap.Hash() {
		t.Errorf("restored hash %d, expected %d", restored.Hash(), snap.Hash())
	}

	c, ok := g2.World().Collider(g2.World().Paddle.Collider)
	if !ok || c.Box != g2.World().Paddle.Box() {
		t.Error("ApplySnapshot should move the paddle collider with the paddle")
	}

	for _, in := range inputSequence(60) {
		g1.Step(in)
		g2.Step(in)
	}
	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Hash() != s2.Hash() {
		t.Error("runs should stay in lockstep after restoring a snapshot")
	}
}

func TestGameRunStats(t *testing.T) {
	g := newTestGame(config.VariantBasic)
	for range 30 {
		g.Step(core.NewInputFrame())
	}

	stats := g.RunStats()
	if stats.Variant != "basic" || stats.Ticks != 30 {
		t.Errorf("RunStats() = %+v, expected variant basic with 30 ticks", stats)
	}
	if stats.Hits != g.World().Hits() || stats.Bounces != g.World().Bounces() {
		t.Errorf("RunStats() counters %+v do not match the world", stats)
	}
}
