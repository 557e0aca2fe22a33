// Package geom provides the 2D primitives used by the simulation: vectors,
// axis-aligned boxes and bounding circles in world units.
//
// World coordinates are y-up with the origin at the center of the window.
package geom

import "math"

// Vec2 is a 2D point or vector in world units.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// LengthSquared returns |v|².
func (v Vec2) LengthSquared() float64 {
	return v.Dot(v)
}

// Length returns |v|.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length.
// The zero vector normalizes to itself.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// AABB is an axis-aligned bounding box stored as center and half extents.
type AABB struct {
	Center Vec2
	Half   Vec2
}

// NewAABB creates a box from its center and half extents.
func NewAABB(center, half Vec2) AABB {
	return AABB{Center: center, Half: half}
}

// Min returns the bottom-left corner.
func (b AABB) Min() Vec2 {
	return b.Center.Sub(b.Half)
}

// Max returns the top-right corner.
func (b AABB) Max() Vec2 {
	return b.Center.Add(b.Half)
}

// Contains reports whether p lies inside the box (edges included).
func (b AABB) Contains(p Vec2) bool {
	lo, hi := b.Min(), b.Max()
	return p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y
}

// ClosestPoint returns the point of the box nearest to p.
// Points inside the box are returned unchanged.
func (b AABB) ClosestPoint(p Vec2) Vec2 {
	return b.Clamp(p)
}

// Clamp restricts p to the box, per axis.
func (b AABB) Clamp(p Vec2) Vec2 {
	lo, hi := b.Min(), b.Max()
	return Vec2{
		X: ClampF(p.X, lo.X, hi.X),
		Y: ClampF(p.Y, lo.Y, hi.Y),
	}
}

// Circle is a bounding circle.
type Circle struct {
	Center Vec2
	Radius float64
}

// NewCircle creates a circle from its center and radius.
func NewCircle(center Vec2, radius float64) Circle {
	return Circle{Center: center, Radius: radius}
}

// IntersectsAABB reports whether the circle touches or overlaps the box.
func (c Circle) IntersectsAABB(b AABB) bool {
	closest := b.ClosestPoint(c.Center)
	return c.Center.Sub(closest).LengthSquared() <= c.Radius*c.Radius
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
