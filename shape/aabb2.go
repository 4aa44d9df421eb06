package shape

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// Aabb2 is a 2D axis-aligned bounding box stored as a min/max corner pair.
// The zero value is the degenerate box at the origin.
type Aabb2 struct {
	min, max r2.Point
}

// NewAabb2 constructs a box from two opposite corners, sorting them
// componentwise so min ≤ max holds on both axes.
func NewAabb2(p1, p2 r2.Point) Aabb2 {
	return Aabb2{min: Min2(p1, p2), max: Max2(p1, p2)}
}

// Min returns the low corner.
func (a Aabb2) Min() r2.Point { return a.min }

// Max returns the high corner.
func (a Aabb2) Max() r2.Point { return a.max }

// Center returns the arithmetic center of the box.
func (a Aabb2) Center() r2.Point { return a.min.Add(a.Dim().Mul(0.5)) }

// Dim returns max − min.
func (a Aabb2) Dim() r2.Point { return a.max.Sub(a.min) }

// Area returns the product of the box dimensions.
func (a Aabb2) Area() float64 {
	d := a.Dim()
	return d.X * d.Y
}

// Contains reports whether p lies inside the box: inclusive at the min
// corner, exclusive at the max corner.
func (a Aabb2) Contains(p r2.Point) bool {
	return p.X >= a.min.X && p.Y >= a.min.Y &&
		p.X < a.max.X && p.Y < a.max.Y
}

// Intersects reports overlap with o; boxes that merely touch intersect.
func (a Aabb2) Intersects(o Aabb2) bool {
	return !(a.max.X < o.min.X ||
		a.max.Y < o.min.Y ||
		a.min.X > o.max.X ||
		a.min.Y > o.max.Y)
}

// Merge returns the smallest box enclosing both a and o.
func (a Aabb2) Merge(o Aabb2) Aabb2 {
	return Aabb2{min: Min2(a.min, o.min), max: Max2(a.max, o.max)}
}

// Grow returns a box extended just enough to include p.
func (a Aabb2) Grow(p r2.Point) Aabb2 {
	return Aabb2{min: Min2(a.min, p), max: Max2(a.max, p)}
}

// AddV returns the box translated by v.
func (a Aabb2) AddV(v r2.Point) Aabb2 {
	return Aabb2{min: a.min.Add(v), max: a.max.Add(v)}
}

// MulS returns the box with both corners scaled by s.
func (a Aabb2) MulS(s float64) Aabb2 {
	return NewAabb2(a.min.Mul(s), a.max.Mul(s))
}

// MulV returns the box with both corners scaled componentwise by v.
func (a Aabb2) MulV(v r2.Point) Aabb2 {
	return NewAabb2(
		r2.Point{X: a.min.X * v.X, Y: a.min.Y * v.Y},
		r2.Point{X: a.max.X * v.X, Y: a.max.Y * v.Y},
	)
}

// Equal reports exact corner equality with o.
func (a Aabb2) Equal(o Aabb2) bool { return a == o }

// CheckX reports whether the box reaches at-or-below and strictly above
// the axis value c. Both results are true for a box straddling c.
func (a Aabb2) CheckX(c float64) (lt, gt bool) { return a.min.X <= c, a.max.X > c }

// CheckY reports whether the box reaches at-or-below and strictly above
// the axis value c.
func (a Aabb2) CheckY(c float64) (lt, gt bool) { return a.min.Y <= c, a.max.Y > c }

// String renders the box as "[min - max]".
func (a Aabb2) String() string { return fmt.Sprintf("[%v - %v]", a.min, a.max) }

// Aabb2Of accumulates the componentwise envelope of a finite point
// stream. An empty stream yields the zero box.
func Aabb2Of(pts ...r2.Point) Aabb2 {
	if len(pts) == 0 {
		return Aabb2{}
	}
	lo, hi := pts[0], pts[0]
	for _, p := range pts[1:] {
		lo = Min2(lo, p)
		hi = Max2(hi, p)
	}
	return Aabb2{min: lo, max: hi}
}
