package octree

import (
	"github.com/golang/geo/r3"

	"github.com/katalvlaran/broadphase/shape"
)

// Key is the capability set an octree key must offer: the axis-range
// predicates that drive orthant descent, an overlap test against its
// own kind, and exact equality for removal.
type Key[K any] interface {
	shape.Ranged3
	Intersects(K) bool
	Equal(K) bool
}

// pair is one stored (key, value) association.
type pair[K, V any] struct {
	key   K
	value V
}

// orthantCenter offsets a cell center by the half-scale h into orthant
// i (x bit 2, y bit 1, z bit 0; set bit = greater side).
func orthantCenter(c r3.Vector, h float64, i int) r3.Vector {
	off := r3.Vector{X: -h, Y: -h, Z: -h}
	if i&4 != 0 {
		off.X = h
	}
	if i&2 != 0 {
		off.Y = h
	}
	if i&1 != 0 {
		off.Z = h
	}
	return c.Add(off)
}
