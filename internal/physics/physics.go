// Package physics implements the paddleball motion and collision rules:
// velocity integration, boundary reflection, circle-vs-box side
// classification and paddle motion from directional input.
//
// Everything here is a pure transform over values so that the world step
// and the tests can call it with any state.
package physics

import "github.com/vovakirdan/paddleball/internal/geom"

// Collision indicates which side of a box the ball hit.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionLeft
	CollisionRight
	CollisionTop
	CollisionBottom
)

// String returns a human-readable name for the side.
func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionLeft:
		return "left"
	case CollisionRight:
		return "right"
	case CollisionTop:
		return "top"
	case CollisionBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Horizontal reports whether the hit was on the left or right side.
func (c Collision) Horizontal() bool {
	return c == CollisionLeft || c == CollisionRight
}

// BallCollision classifies a hit of ball against box.
// It returns CollisionNone when the two do not intersect; touching counts
// as a hit. Exactly one side is reported: the axis with the larger offset
// from the closest point wins, and ties go to the vertical axis.
func BallCollision(ball geom.Circle, box geom.AABB) Collision {
	if !ball.IntersectsAABB(box) {
		return CollisionNone
	}

	closest := box.ClosestPoint(ball.Center)
	offset := ball.Center.Sub(closest)

	if abs(offset.X) > abs(offset.Y) {
		if offset.X < 0 {
			return CollisionLeft
		}
		return CollisionRight
	}
	if offset.Y > 0 {
		return CollisionTop
	}
	return CollisionBottom
}

// Bounce reflects vel off a side hit: left/right flips X, top/bottom flips Y.
func Bounce(vel geom.Vec2, side Collision) geom.Vec2 {
	switch side {
	case CollisionLeft, CollisionRight:
		vel.X = -vel.X
	case CollisionTop, CollisionBottom:
		vel.Y = -vel.Y
	}
	return vel
}

// Integrate advances pos by vel over dt seconds. Negative dt is treated as 0.
// There is no sub-stepping, so a fast body can tunnel through thin
// colliders when dt is large.
func Integrate(pos, vel geom.Vec2, dt float64) geom.Vec2 {
	if dt <= 0 {
		return pos
	}
	return pos.Add(vel.Scale(dt))
}

// Bounds is the world rectangle centered at the origin.
type Bounds struct {
	HalfW, HalfH float64
}

// BoundsFromWindow derives world bounds from a window size in world units.
func BoundsFromWindow(width, height float64) Bounds {
	return Bounds{HalfW: width / 2, HalfH: height / 2}
}

// Box returns the bounds as an AABB.
func (b Bounds) Box() geom.AABB {
	return geom.NewAABB(geom.Vec2{}, geom.V(b.HalfW, b.HalfH))
}

// Clamp restricts p to the bounds.
func (b Bounds) Clamp(p geom.Vec2) geom.Vec2 {
	return geom.Vec2{
		X: geom.ClampF(p.X, -b.HalfW, b.HalfW),
		Y: geom.ClampF(p.Y, -b.HalfH, b.HalfH),
	}
}

// Reflection records which axes were reflected by the bounds.
type Reflection struct {
	X, Y bool
}

// Any reports whether at least one axis was reflected.
func (r Reflection) Any() bool {
	return r.X || r.Y
}

// Reflect flips each velocity component whose position component lies
// beyond the bounds, then clamps the position. The axes are handled
// independently, so a corner hit reflects both.
func (b Bounds) Reflect(pos, vel geom.Vec2) (geom.Vec2, geom.Vec2, Reflection) {
	var r Reflection
	if pos.X > b.HalfW || pos.X < -b.HalfW {
		vel.X = -vel.X
		r.X = true
	}
	if pos.Y > b.HalfH || pos.Y < -b.HalfH {
		vel.Y = -vel.Y
		r.Y = true
	}
	return b.Clamp(pos), vel, r
}

// ApplyVelocity integrates one moving body and reflects it off the bounds.
func ApplyVelocity(pos, vel geom.Vec2, dt float64, b Bounds) (geom.Vec2, geom.Vec2, Reflection) {
	return b.Reflect(Integrate(pos, vel, dt), vel)
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
