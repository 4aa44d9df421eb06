package shape

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Aabb3 is a 3D axis-aligned bounding box stored as a min/max corner pair.
// The zero value is the degenerate box at the origin.
type Aabb3 struct {
	min, max r3.Vector
}

// NewAabb3 constructs a box from two opposite corners, sorting them
// componentwise so min ≤ max holds on every axis.
func NewAabb3(p1, p2 r3.Vector) Aabb3 {
	return Aabb3{min: Min3(p1, p2), max: Max3(p1, p2)}
}

// Min returns the low corner.
func (a Aabb3) Min() r3.Vector { return a.min }

// Max returns the high corner.
func (a Aabb3) Max() r3.Vector { return a.max }

// Center returns the arithmetic center of the box.
func (a Aabb3) Center() r3.Vector { return a.min.Add(a.Dim().Mul(0.5)) }

// Dim returns max − min.
func (a Aabb3) Dim() r3.Vector { return a.max.Sub(a.min) }

// Volume returns the product of the box dimensions.
func (a Aabb3) Volume() float64 {
	d := a.Dim()
	return d.X * d.Y * d.Z
}

// Contains reports whether p lies inside the box: inclusive at the min
// corner, exclusive at the max corner.
func (a Aabb3) Contains(p r3.Vector) bool {
	return p.X >= a.min.X && p.Y >= a.min.Y && p.Z >= a.min.Z &&
		p.X < a.max.X && p.Y < a.max.Y && p.Z < a.max.Z
}

// Intersects reports overlap with o; boxes that merely touch intersect.
func (a Aabb3) Intersects(o Aabb3) bool {
	return !(a.max.X < o.min.X ||
		a.max.Y < o.min.Y ||
		a.max.Z < o.min.Z ||
		a.min.X > o.max.X ||
		a.min.Y > o.max.Y ||
		a.min.Z > o.max.Z)
}

// Merge returns the smallest box enclosing both a and o.
func (a Aabb3) Merge(o Aabb3) Aabb3 {
	return Aabb3{min: Min3(a.min, o.min), max: Max3(a.max, o.max)}
}

// Grow returns a box extended just enough to include p.
func (a Aabb3) Grow(p r3.Vector) Aabb3 {
	return Aabb3{min: Min3(a.min, p), max: Max3(a.max, p)}
}

// AddV returns the box translated by v.
func (a Aabb3) AddV(v r3.Vector) Aabb3 {
	return Aabb3{min: a.min.Add(v), max: a.max.Add(v)}
}

// MulS returns the box with both corners scaled by s.
func (a Aabb3) MulS(s float64) Aabb3 {
	return NewAabb3(a.min.Mul(s), a.max.Mul(s))
}

// MulV returns the box with both corners scaled componentwise by v.
func (a Aabb3) MulV(v r3.Vector) Aabb3 {
	return NewAabb3(
		r3.Vector{X: a.min.X * v.X, Y: a.min.Y * v.Y, Z: a.min.Z * v.Z},
		r3.Vector{X: a.max.X * v.X, Y: a.max.Y * v.Y, Z: a.max.Z * v.Z},
	)
}

// Equal reports exact corner equality with o.
func (a Aabb3) Equal(o Aabb3) bool { return a == o }

// CheckX reports whether the box reaches at-or-below and strictly above
// the axis value c. Both results are true for a box straddling c.
func (a Aabb3) CheckX(c float64) (lt, gt bool) { return a.min.X <= c, a.max.X > c }

// CheckY reports whether the box reaches at-or-below and strictly above
// the axis value c.
func (a Aabb3) CheckY(c float64) (lt, gt bool) { return a.min.Y <= c, a.max.Y > c }

// CheckZ reports whether the box reaches at-or-below and strictly above
// the axis value c.
func (a Aabb3) CheckZ(c float64) (lt, gt bool) { return a.min.Z <= c, a.max.Z > c }

// String renders the box as "[min - max]".
func (a Aabb3) String() string { return fmt.Sprintf("[%v - %v]", a.min, a.max) }

// Aabb3Of accumulates the componentwise envelope of a finite point
// stream. An empty stream yields the zero box.
func Aabb3Of(pts ...r3.Vector) Aabb3 {
	if len(pts) == 0 {
		return Aabb3{}
	}
	lo, hi := pts[0], pts[0]
	for _, p := range pts[1:] {
		lo = Min3(lo, p)
		hi = Max3(hi, p)
	}
	return Aabb3{min: lo, max: hi}
}
