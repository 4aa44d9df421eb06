package shape

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// Min2 returns the componentwise minimum of two 2D points.
func Min2(a, b r2.Point) r2.Point {
	return r2.Point{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

// Max2 returns the componentwise maximum of two 2D points.
func Max2(a, b r2.Point) r2.Point {
	return r2.Point{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}

// Min3 returns the componentwise minimum of two 3D vectors.
func Min3(a, b r3.Vector) r3.Vector {
	return r3.Vector{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)}
}

// Max3 returns the componentwise maximum of two 3D vectors.
func Max3(a, b r3.Vector) r3.Vector {
	return r3.Vector{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)}
}

// Point2 is a bare 2D location usable as a grid collider or quadrant key.
// Two points intersect only when they are exactly equal.
type Point2 r2.Point

// Pt2 wraps an r2.Point as a Point2 key.
func Pt2(p r2.Point) Point2 { return Point2(p) }

// Center returns the point itself.
func (p Point2) Center() r2.Point { return r2.Point(p) }

// Intersects reports componentwise equality with o.
func (p Point2) Intersects(o Point2) bool { return p.X == o.X && p.Y == o.Y }

// Equal reports componentwise equality with o.
func (p Point2) Equal(o Point2) bool { return p == o }

// CheckX reports which side of the axis value c the point lies on.
// Exactly one of the two results is true.
func (p Point2) CheckX(c float64) (lt, gt bool) { return p.X <= c, p.X > c }

// CheckY reports which side of the axis value c the point lies on.
func (p Point2) CheckY(c float64) (lt, gt bool) { return p.Y <= c, p.Y > c }

// Point3 is a bare 3D location usable as an octree key.
// Two points intersect only when they are exactly equal.
type Point3 r3.Vector

// Pt3 wraps an r3.Vector as a Point3 key.
func Pt3(v r3.Vector) Point3 { return Point3(v) }

// Center returns the point itself.
func (p Point3) Center() r3.Vector { return r3.Vector(p) }

// Intersects reports componentwise equality with o.
func (p Point3) Intersects(o Point3) bool {
	return p.X == o.X && p.Y == o.Y && p.Z == o.Z
}

// Equal reports componentwise equality with o.
func (p Point3) Equal(o Point3) bool { return p == o }

// CheckX reports which side of the axis value c the point lies on.
// Exactly one of the two results is true.
func (p Point3) CheckX(c float64) (lt, gt bool) { return p.X <= c, p.X > c }

// CheckY reports which side of the axis value c the point lies on.
func (p Point3) CheckY(c float64) (lt, gt bool) { return p.Y <= c, p.Y > c }

// CheckZ reports which side of the axis value c the point lies on.
func (p Point3) CheckZ(c float64) (lt, gt bool) { return p.Z <= c, p.Z > c }
