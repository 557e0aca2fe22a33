// Package paddleball implements the paddle-and-ball simulation and its
// arcade game adapter. One configurable world covers every variant.
package paddleball

import (
	"fmt"
	"math"

	"github.com/vovakirdan/paddleball/internal/config"
	"github.com/vovakirdan/paddleball/internal/core"
	"github.com/vovakirdan/paddleball/internal/geom"
	"github.com/vovakirdan/paddleball/internal/physics"
	"github.com/vovakirdan/paddleball/internal/registry"
)

// Visual characters for rendering
const (
	BallChar   = '●'
	PaddleChar = '█'
)

// Minimum screen size needed to draw the field.
const (
	minScreenW = 20
	minScreenH = 8
)

// Game states
const (
	StatePlaying = "playing"
	StatePaused  = "paused"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// GameID returns the registry id of a variant.
func GameID(v config.Variant) string {
	if v == config.VariantCollider {
		return "paddleball"
	}
	return "paddleball_" + string(v)
}

// Game adapts a World to the registry.Game interface.
type Game struct {
	variant config.Variant
	cfg     config.PaddleballConfig
	world   *World
	state   string

	runtime    core.RuntimeConfig
	configErr  error
	lastReport StepReport
}

// New creates a game for the given variant.
func New(v config.Variant) *Game {
	return &Game{variant: v}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID(g.variant)
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	switch g.variant {
	case config.VariantBasic:
		return "Paddleball (Basic)"
	case config.VariantBounded:
		return "Paddleball (Bounded)"
	default:
		return "Paddleball"
	}
}

// Variant returns the preset this game was created with.
func (g *Game) Variant() config.Variant {
	return g.variant
}

// Reset loads the config and recreates the world.
// A config that fails to load falls back to the built-in defaults;
// the error is kept for ConfigError.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, _, err := config.LoadPaddleball(configPath, g.variant)
	g.configErr = err
	if err != nil {
		cfg = config.DefaultPaddleballConfig()
		config.ApplyVariant(&cfg, g.variant)
	}
	g.ResetWith(runtime, cfg)
}

// ResetWith recreates the world from an explicit config.
func (g *Game) ResetWith(runtime core.RuntimeConfig, cfg config.PaddleballConfig) {
	g.runtime = runtime
	g.cfg = cfg
	g.world = NewWorld(cfg)
	g.state = StatePlaying
	g.lastReport = StepReport{}
}

// ConfigError returns the error from the last config load, if any.
func (g *Game) ConfigError() error {
	return g.configErr
}

// World exposes the simulation state.
func (g *Game) World() *World {
	return g.world
}

// Step advances the game by one tick of 1/TickRate seconds.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.ResetWith(g.runtime, g.cfg)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else {
			g.state = StatePaused
		}
	}
	if g.state == StatePaused {
		return core.StepResult{State: g.State()}
	}

	g.lastReport = g.world.Step(g.runtime.DeltaSeconds(), KeysFromInput(in))

	result := core.StepResult{State: g.State()}
	for _, hit := range g.lastReport.Hits {
		result.Events = append(result.Events, core.Event{
			Kind: "hit",
			Fields: []any{
				"tick", hit.Tick,
				"side", hit.Side.String(),
				"collider", int(hit.Collider),
			},
		})
	}
	return result
}

// State returns the current game state. The score is the paddle hit count.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:  g.world.Hits(),
		Paused: g.state == StatePaused,
	}
}

// RunStats returns the counters of the current run.
func (g *Game) RunStats() core.RunStats {
	if g.world == nil {
		return core.RunStats{Variant: string(g.variant)}
	}
	return core.RunStats{
		Variant: string(g.variant),
		Ticks:   g.world.Tick(),
		Hits:    g.world.Hits(),
		Bounces: g.world.Bounces(),
	}
}

// Render draws the world projected onto the screen grid.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	g.renderHUD(dst)

	field := core.NewRect(0, 1, dst.Width(), dst.Height()-1)
	dst.DrawBox(field, core.ColorGray)

	p := newProjection(g.world.Bounds, field)
	g.renderPaddle(dst, p)
	g.renderBall(dst, p)

	if g.state == StatePaused {
		dst.DrawTextCentered(field.Y+field.H/2, "PAUSED - press P to resume")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	w := g.world
	left := fmt.Sprintf("%s  hits: %d  bounces: %d", g.Title(), w.Hits(), w.Bounces())
	dst.DrawText(1, 0, left)

	right := fmt.Sprintf("speed %.0f", w.Ball.Vel.Length())
	dst.DrawText(dst.Width()-len(right)-1, 0, right)
}

func (g *Game) renderPaddle(dst *core.Screen, p projection) {
	box := g.world.Paddle.Box()
	x0, y0 := p.cell(geom.V(box.Min().X, box.Max().Y))
	x1, y1 := p.cell(geom.V(box.Max().X, box.Min().Y))
	rect := core.NewRect(x0, y0, x1-x0+1, y1-y0+1)

	color := core.ColorBlue
	if len(g.lastReport.Hits) > 0 {
		color = core.ColorBrightWhite
	}
	dst.DrawRect(p.clip(rect), PaddleChar, color)
}

func (g *Game) renderBall(dst *core.Screen, p projection) {
	x, y := p.cell(g.world.Ball.Pos)
	dst.SetColored(x, y, BallChar, core.ColorGreen)
}

// projection maps world coordinates (y-up, origin at center) onto the
// interior cells of a field rectangle (y-down).
type projection struct {
	bounds   geom.AABB
	interior core.Rect
}

func newProjection(b physics.Bounds, field core.Rect) projection {
	return projection{
		bounds:   b.Box(),
		interior: core.NewRect(field.X+1, field.Y+1, field.W-2, field.H-2),
	}
}

func (p projection) cell(pos geom.Vec2) (int, int) {
	lo, hi := p.bounds.Min(), p.bounds.Max()
	fx := (pos.X - lo.X) / (hi.X - lo.X)
	fy := (hi.Y - pos.Y) / (hi.Y - lo.Y)

	x := p.interior.X + int(math.Round(fx*float64(p.interior.W-1)))
	y := p.interior.Y + int(math.Round(fy*float64(p.interior.H-1)))
	return x, y
}

// clip restricts r to the interior so off-field paddles do not overwrite the border.
func (p projection) clip(r core.Rect) core.Rect {
	x0 := max(r.X, p.interior.X)
	y0 := max(r.Y, p.interior.Y)
	x1 := min(r.Right(), p.interior.Right())
	y1 := min(r.Bottom(), p.interior.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return core.Rect{}
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Register the variants with the registry
func init() {
	for _, v := range config.Variants() {
		registry.Register(GameID(v), func() registry.Game {
			return New(v)
		})
	}
}
