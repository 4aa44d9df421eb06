package bvh

import (
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"

	"github.com/katalvlaran/broadphase/morton"
	"github.com/katalvlaran/broadphase/shape"
)

// Volume is the capability set a bounding shape must offer to live in a
// tree keyed on point type P: corner and center access for the Morton
// layout, Merge for internal envelopes, Intersects for traversal.
type Volume[C, P any] interface {
	Center() P
	Min() P
	Max() P
	Merge(C) C
	Intersects(C) bool
}

// space carries the per-dimension point arithmetic the generic core
// needs: componentwise min/max for the running envelope, the
// quantization scale, and the Morton encoder. The zero value of P is
// the origin in both supported spaces.
type space[P any] struct {
	min    func(a, b P) P
	max    func(a, b P) P
	scale  func(lo, hi P) P
	encode func(p, base, scale P) uint32
}

func space3() space[r3.Vector] {
	return space[r3.Vector]{
		min: shape.Min3,
		max: shape.Max3,
		scale: func(lo, hi r3.Vector) r3.Vector {
			d := hi.Sub(lo)
			return r3.Vector{X: 1023 / d.X, Y: 1023 / d.Y, Z: 1023 / d.Z}
		},
		encode: morton.Encode3,
	}
}

func space2() space[r2.Point] {
	return space[r2.Point]{
		min: shape.Min2,
		max: shape.Max2,
		scale: func(lo, hi r2.Point) r2.Point {
			d := hi.Sub(lo)
			return r2.Point{X: 1023 / d.X, Y: 1023 / d.Y}
		},
		encode: morton.Encode2,
	}
}
