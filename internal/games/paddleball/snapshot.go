package paddleball

import (
	"math"

	"github.com/vovakirdan/paddleball/internal/geom"
)

// Snapshot contains the complete world state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick    int
	Hits    int
	Bounces int
	State   string

	BallX, BallY   float64
	BallVX, BallVY float64
	PaddleX        float64
	PaddleY        float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	return Snapshot{
		Tick:    w.tick,
		Hits:    w.hits,
		Bounces: w.bounces,
		State:   g.state,

		BallX:   w.Ball.Pos.X,
		BallY:   w.Ball.Pos.Y,
		BallVX:  w.Ball.Vel.X,
		BallVY:  w.Ball.Vel.Y,
		PaddleX: w.Paddle.Pos.X,
		PaddleY: w.Paddle.Pos.Y,
	}
}

// ApplySnapshot restores game state from a snapshot.
func (g *Game) ApplySnapshot(snap Snapshot) {
	w := g.world
	w.tick = snap.Tick
	w.hits = snap.Hits
	w.bounces = snap.Bounces
	g.state = snap.State

	w.Ball.Pos = geom.V(snap.BallX, snap.BallY)
	w.Ball.Vel = geom.V(snap.BallVX, snap.BallVY)
	w.Paddle.Pos = geom.V(snap.PaddleX, snap.PaddleY)

	if c, ok := w.Collider(w.Paddle.Collider); ok {
		c.Box = w.Paddle.Box()
		w.colliders[w.Paddle.Collider] = c
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Hits)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Bounces) //#nosec G115 -- hash computation
	for _, f := range []float64{snap.BallX, snap.BallY, snap.BallVX, snap.BallVY, snap.PaddleX, snap.PaddleY} {
		h = h*31 + math.Float64bits(f)
	}
	for _, r := range snap.State {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	return h
}
