// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in world units (pixels). Used for positions and velocities.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// FromAngle returns the unit vector pointing at angle (radians).
func FromAngle(angle float64) Vec2 {
	return Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
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

// Len returns the length of v.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns v scaled to unit length.
// The second return value is false for a zero-length vector, which is returned unchanged.
func (v Vec2) Normalize() (Vec2, bool) {
	l := v.Len()
	if l == 0 {
		return v, false
	}
	return Vec2{X: v.X / l, Y: v.Y / l}, true
}

// Rotate returns v rotated by angle radians around the origin.
func (v Vec2) Rotate(angle float64) Vec2 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Vec2{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c}
}

// Angle returns the direction of v in radians.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Polygon is an ordered list of vertices. The last vertex implicitly
// connects back to the first. Collision tests assume it is convex.
type Polygon []Vec2

// Translate returns a copy of p moved by offset.
func (p Polygon) Translate(offset Vec2) Polygon {
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[i] = pt.Add(offset)
	}
	return out
}

// Transform returns a copy of p rotated by angle around the origin and then moved by offset.
func (p Polygon) Transform(offset Vec2, angle float64) Polygon {
	c, s := math.Cos(angle), math.Sin(angle)
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[i] = Vec2{
			X: offset.X + pt.X*c - pt.Y*s,
			Y: offset.Y + pt.X*s + pt.Y*c,
		}
	}
	return out
}

// Overlaps reports whether two convex polygons intersect, using the
// Separating Axis Theorem. The test is symmetric and has no side effects.
// Polygons touching along an edge count as overlapping.
func Overlaps(a, b Polygon) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	return !hasSeparatingAxis(a, a, b) && !hasSeparatingAxis(b, a, b)
}

// hasSeparatingAxis tests the edge normals of src as candidate axes.
func hasSeparatingAxis(src, a, b Polygon) bool {
	n := len(src)
	for i := range n {
		edge := src[(i+1)%n].Sub(src[i])
		axis, ok := Vec2{X: -edge.Y, Y: edge.X}.Normalize()
		if !ok {
			// Zero-length edge: no axis to test
			continue
		}

		minA, maxA := project(a, axis)
		minB, maxB := project(b, axis)
		if maxA < minB || maxB < minA {
			return true
		}
	}
	return false
}

// project returns the [min, max] interval of p's vertices along axis.
func project(p Polygon, axis Vec2) (float64, float64) {
	lo := p[0].Dot(axis)
	hi := lo
	for _, pt := range p[1:] {
		d := pt.Dot(axis)
		if d < lo {
			lo = d
		}
		if d > hi {
			hi = d
		}
	}
	return lo, hi
}

// WrapCoord wraps a single coordinate across a toroidal axis of the given size.
// A value beyond -margin reappears at size+margin and vice versa.
func WrapCoord(v, margin, size float64) float64 {
	if v < -margin {
		return size + margin
	}
	if v > size+margin {
		return -margin
	}
	return v
}

// Wrap applies WrapCoord to both axes of p.
func Wrap(p Vec2, marginX, marginY, w, h float64) Vec2 {
	return Vec2{
		X: WrapCoord(p.X, marginX, w),
		Y: WrapCoord(p.Y, marginY, h),
	}
}

// Rect represents an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Centered returns a w x h rectangle centered inside r.
func (r Rect) Centered(w, h int) Rect {
	return Rect{X: r.X + (r.W-w)/2, Y: r.Y + (r.H-h)/2, W: w, H: h}
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
