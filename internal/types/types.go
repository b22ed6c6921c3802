// internal/types/types.go
package types

import "math"

// EntityID identifies an entity inside the ECS arena.
type EntityID uint64

// Vec2 is a point or direction in world units.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Dot(o Vec2) float64   { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Len() float64         { return math.Hypot(v.X, v.Y) }
func (v Vec2) Angle() float64       { return math.Atan2(v.Y, v.X) }

// Norm returns the unit vector, or the zero vector for zero length.
func (v Vec2) Norm() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Dist returns the distance between two points.
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Len() }

// FromAngle builds a unit vector pointing at angle (radians).
func FromAngle(angle float64) Vec2 {
	return Vec2{math.Cos(angle), math.Sin(angle)}
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Min, Max Vec2
}

// RectAround returns a rectangle of size w x h centered on c.
func RectAround(c Vec2, w, h float64) Rect {
	return Rect{
		Min: Vec2{c.X - w/2, c.Y - h/2},
		Max: Vec2{c.X + w/2, c.Y + h/2},
	}
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Contains reports whether p lies inside r (edges included).
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Collision reports that two entities started overlapping during a physics step.
type Collision struct {
	A, B EntityID
}
