package shape

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Sphere is a 3D ball stored as a center and non-negative radius.
// The zero value is the empty sphere at the origin.
type Sphere struct {
	center r3.Vector
	radius float64
}

// NewSphere constructs a sphere from a center and radius.
func NewSphere(center r3.Vector, radius float64) Sphere {
	return Sphere{center: center, radius: radius}
}

// Center returns the stored center.
func (s Sphere) Center() r3.Vector { return s.center }

// Radius returns the stored radius.
func (s Sphere) Radius() float64 { return s.radius }

// Min returns the low corner of the sphere's bounding box.
func (s Sphere) Min() r3.Vector {
	return s.center.Sub(r3.Vector{X: s.radius, Y: s.radius, Z: s.radius})
}

// Max returns the high corner of the sphere's bounding box.
func (s Sphere) Max() r3.Vector {
	return s.center.Add(r3.Vector{X: s.radius, Y: s.radius, Z: s.radius})
}

// Intersects reports whether the center distance is strictly less than
// the radius sum; spheres that merely touch do not intersect.
func (s Sphere) Intersects(o Sphere) bool {
	return s.center.Sub(o.center).Norm() < s.radius+o.radius
}

// Merge returns the smallest sphere enclosing both s and o. When one
// sphere already contains the other, the outer sphere is returned
// unchanged; this also covers concentric spheres without producing a
// degenerate direction.
func (s Sphere) Merge(o Sphere) Sphere {
	diff := o.center.Sub(s.center)
	dist := diff.Norm()
	switch {
	case dist+s.radius <= o.radius:
		return o
	case dist+o.radius <= s.radius:
		return s
	default:
		radius := (dist + s.radius + o.radius) / 2
		center := s.center.Add(diff.Normalize().Mul(radius - s.radius))
		return Sphere{center: center, radius: radius}
	}
}

// Equal reports exact center and radius equality with o.
func (s Sphere) Equal(o Sphere) bool { return s == o }

// CheckX reports whether the sphere reaches at-or-below and strictly
// above the axis value c. Both results are true for a sphere
// straddling c.
func (s Sphere) CheckX(c float64) (lt, gt bool) {
	return s.center.X-s.radius <= c, s.center.X+s.radius > c
}

// CheckY reports whether the sphere reaches at-or-below and strictly
// above the axis value c.
func (s Sphere) CheckY(c float64) (lt, gt bool) {
	return s.center.Y-s.radius <= c, s.center.Y+s.radius > c
}

// CheckZ reports whether the sphere reaches at-or-below and strictly
// above the axis value c.
func (s Sphere) CheckZ(c float64) (lt, gt bool) {
	return s.center.Z-s.radius <= c, s.center.Z+s.radius > c
}

// String renders the sphere as "[center - radius]".
func (s Sphere) String() string { return fmt.Sprintf("[%v - %v]", s.center, s.radius) }

// SphereOf accumulates the sphere circumscribing the componentwise
// envelope of a finite point stream. An empty stream yields the zero
// sphere.
func SphereOf(pts ...r3.Vector) Sphere {
	if len(pts) == 0 {
		return Sphere{}
	}
	lo, hi := pts[0], pts[0]
	for _, p := range pts[1:] {
		lo = Min3(lo, p)
		hi = Max3(hi, p)
	}
	cross := hi.Sub(lo).Mul(0.5)
	return Sphere{center: lo.Add(cross), radius: cross.Norm()}
}
