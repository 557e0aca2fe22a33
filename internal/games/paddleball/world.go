package paddleball

import (
	"github.com/vovakirdan/paddleball/internal/config"
	"github.com/vovakirdan/paddleball/internal/geom"
	"github.com/vovakirdan/paddleball/internal/physics"
)

// ColliderID is a handle into the world's collider arena.
type ColliderID int

// NoCollider marks an entity that has no collider.
const NoCollider ColliderID = -1

// Collider is a box the ball is tested against every tick.
// Only colliders tagged as Paddle make the ball bounce.
type Collider struct {
	Box    geom.AABB
	Paddle bool
}

// Ball is the moving body.
type Ball struct {
	Pos    geom.Vec2
	Vel    geom.Vec2
	Radius float64
}

// Circle returns the ball's bounding circle.
func (b Ball) Circle() geom.Circle {
	return geom.NewCircle(b.Pos, b.Radius)
}

// Paddle is the player-controlled box.
type Paddle struct {
	Pos      geom.Vec2
	Half     geom.Vec2
	Speed    float64
	Collider ColliderID
}

// Box returns the paddle's bounding box.
func (p Paddle) Box() geom.AABB {
	return geom.NewAABB(p.Pos, p.Half)
}

// HitEvent reports a ball-vs-collider response.
type HitEvent struct {
	Tick     int
	Collider ColliderID
	Side     physics.Collision
}

// StepReport is what happened during one World.Step.
type StepReport struct {
	Hits []HitEvent
	Wall physics.Reflection
}

// World holds every entity of the simulation.
type World struct {
	Bounds physics.Bounds
	Ball   Ball
	Paddle Paddle

	colliders   []Collider
	horizontal  physics.HorizontalMode
	clampPaddle bool

	tick    int
	hits    int
	bounces int
}

// NewWorld creates the ball and paddle at their configured start positions.
// The config is expected to have passed Validate.
func NewWorld(cfg config.PaddleballConfig) *World {
	w := &World{
		Bounds:      physics.BoundsFromWindow(cfg.Window.Width, cfg.Window.Height),
		horizontal:  physics.HorizontalMode(cfg.Input.Horizontal),
		clampPaddle: cfg.Paddle.Clamp,
	}
	if !w.horizontal.Valid() {
		w.horizontal = physics.HorizontalAdditive
	}

	dir := geom.V(cfg.Ball.Direction[0], cfg.Ball.Direction[1]).Normalize()
	w.Ball = Ball{
		Pos:    geom.V(cfg.Ball.Start[0], cfg.Ball.Start[1]),
		Vel:    dir.Scale(cfg.Ball.Speed),
		Radius: cfg.Ball.Radius,
	}

	w.Paddle = Paddle{
		Pos:      geom.V(cfg.Paddle.Start[0], cfg.Paddle.Start[1]),
		Half:     geom.V(cfg.Paddle.HalfWidth, cfg.Paddle.HalfHeight),
		Speed:    cfg.Paddle.Speed,
		Collider: NoCollider,
	}
	if cfg.Paddle.Collider {
		w.Paddle.Collider = w.AddCollider(Collider{Box: w.Paddle.Box(), Paddle: true})
	}

	return w
}

// AddCollider stores c in the arena and returns its handle.
func (w *World) AddCollider(c Collider) ColliderID {
	w.colliders = append(w.colliders, c)
	return ColliderID(len(w.colliders) - 1)
}

// Collider returns the collider for id.
func (w *World) Collider(id ColliderID) (Collider, bool) {
	if id < 0 || int(id) >= len(w.colliders) {
		return Collider{}, false
	}
	return w.colliders[id], true
}

// ColliderCount returns the number of colliders in the arena.
func (w *World) ColliderCount() int {
	return len(w.colliders)
}

// Horizontal returns the horizontal input mode in effect.
func (w *World) Horizontal() physics.HorizontalMode {
	return w.horizontal
}

// Tick returns the number of steps taken.
func (w *World) Tick() int { return w.tick }

// Hits returns the number of paddle responses so far.
func (w *World) Hits() int { return w.hits }

// Bounces returns the number of steps in which the ball reflected off the bounds.
func (w *World) Bounces() int { return w.bounces }

// Step advances the world by dt seconds: the ball moves and reflects off
// the bounds, then the paddle moves from keys, then the ball is tested
// against every collider. Collisions see the post-move positions of both.
func (w *World) Step(dt float64, keys physics.Keys) StepReport {
	w.tick++
	var report StepReport

	w.applyVelocity(dt, &report)
	w.movePaddle(dt, keys)
	w.checkCollisions(&report)

	return report
}

func (w *World) applyVelocity(dt float64, report *StepReport) {
	w.Ball.Pos, w.Ball.Vel, report.Wall = physics.ApplyVelocity(w.Ball.Pos, w.Ball.Vel, dt, w.Bounds)
	if report.Wall.Any() {
		w.bounces++
	}
}

func (w *World) movePaddle(dt float64, keys physics.Keys) {
	dir := physics.PaddleDirection(keys, w.horizontal)
	w.Paddle.Pos = physics.MovePaddle(w.Paddle.Pos, dir, w.Paddle.Speed, dt)
	if w.clampPaddle {
		w.Paddle.Pos = w.Bounds.Clamp(w.Paddle.Pos)
	}

	if c, ok := w.Collider(w.Paddle.Collider); ok {
		c.Box = w.Paddle.Box()
		w.colliders[w.Paddle.Collider] = c
	}
}

func (w *World) checkCollisions(report *StepReport) {
	for i, c := range w.colliders {
		side := physics.BallCollision(w.Ball.Circle(), c.Box)
		if side == physics.CollisionNone || !c.Paddle {
			continue
		}

		w.Ball.Vel = physics.Bounce(w.Ball.Vel, side)
		w.hits++
		report.Hits = append(report.Hits, HitEvent{
			Tick:     w.tick,
			Collider: ColliderID(i),
			Side:     side,
		})
	}
}
