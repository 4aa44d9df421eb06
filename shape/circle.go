package shape

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// Circle is a 2D disc stored as a center and non-negative radius.
// The zero value is the empty circle at the origin.
type Circle struct {
	center r2.Point
	radius float64
}

// NewCircle constructs a circle from a center and radius.
func NewCircle(center r2.Point, radius float64) Circle {
	return Circle{center: center, radius: radius}
}

// Center returns the stored center.
func (c Circle) Center() r2.Point { return c.center }

// Radius returns the stored radius.
func (c Circle) Radius() float64 { return c.radius }

// Min returns the low corner of the circle's bounding box.
func (c Circle) Min() r2.Point {
	return c.center.Sub(r2.Point{X: c.radius, Y: c.radius})
}

// Max returns the high corner of the circle's bounding box.
func (c Circle) Max() r2.Point {
	return c.center.Add(r2.Point{X: c.radius, Y: c.radius})
}

// Intersects reports whether the center distance is strictly less than
// the radius sum; circles that merely touch do not intersect.
func (c Circle) Intersects(o Circle) bool {
	return c.center.Sub(o.center).Norm() < c.radius+o.radius
}

// Merge returns the smallest circle enclosing both c and o. When one
// circle already contains the other, the outer circle is returned
// unchanged.
func (c Circle) Merge(o Circle) Circle {
	diff := o.center.Sub(c.center)
	dist := diff.Norm()
	switch {
	case dist+c.radius <= o.radius:
		return o
	case dist+o.radius <= c.radius:
		return c
	default:
		radius := (dist + c.radius + o.radius) / 2
		center := c.center.Add(diff.Normalize().Mul(radius - c.radius))
		return Circle{center: center, radius: radius}
	}
}

// Equal reports exact center and radius equality with o.
func (c Circle) Equal(o Circle) bool { return c == o }

// CheckX reports whether the circle reaches at-or-below and strictly
// above the axis value v. Both results are true for a circle
// straddling v.
func (c Circle) CheckX(v float64) (lt, gt bool) {
	return c.center.X-c.radius <= v, c.center.X+c.radius > v
}

// CheckY reports whether the circle reaches at-or-below and strictly
// above the axis value v.
func (c Circle) CheckY(v float64) (lt, gt bool) {
	return c.center.Y-c.radius <= v, c.center.Y+c.radius > v
}

// String renders the circle as "[center - radius]".
func (c Circle) String() string { return fmt.Sprintf("[%v - %v]", c.center, c.radius) }

// CircleOf accumulates the circle circumscribing the componentwise
// envelope of a finite point stream. An empty stream yields the zero
// circle.
func CircleOf(pts ...r2.Point) Circle {
	if len(pts) == 0 {
		return Circle{}
	}
	lo, hi := pts[0], pts[0]
	for _, p := range pts[1:] {
		lo = Min2(lo, p)
		hi = Max2(hi, p)
	}
	cross := hi.Sub(lo).Mul(0.5)
	return Circle{center: lo.Add(cross), radius: cross.Norm()}
}
