package bvh

import (
	"cmp"
	"slices"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// entry is one slot of the linear layout. Leaves carry a payload;
// internal slots only carry the merged envelope.
type entry[C, T any] struct {
	bound C
	value T
	leaf  bool
}

// leafRef pairs a leaf's Morton code with its insertion index. Sorting
// compares the code first and the index second, so equal codes keep
// insertion order.
type leafRef struct {
	code uint32
	id   uint32
}

// Builder accumulates volumes with payloads and assembles them into a
// Tree. The zero-valued running envelope starts at the origin, so the
// scene envelope always includes it.
//
// A Builder is single-owner: Add and Build require exclusive access,
// and Build consumes the builder.
type Builder[C Volume[C, P], P any, T any] struct {
	sp       space[P]
	min, max P
	data     []entry[C, T]
	scratch  []entry[C, T]
	reorder  []leafRef
}

// NewBuilder returns an empty builder for 3D volumes (Aabb3, Sphere, or
// any type satisfying Volume over r3.Vector).
func NewBuilder[C Volume[C, r3.Vector], T any]() *Builder[C, r3.Vector, T] {
	return &Builder[C, r3.Vector, T]{sp: space3()}
}

// NewBuilder2 returns an empty builder for 2D volumes (Aabb2, Circle).
func NewBuilder2[C Volume[C, r2.Point], T any]() *Builder[C, r2.Point, T] {
	return &Builder[C, r2.Point, T]{sp: space2()}
}

// Add records a volume with its payload and widens the running scene
// envelope to cover it.
// Complexity: amortized O(1).
func (b *Builder[C, P, T]) Add(bound C, value T) {
	b.min = b.sp.min(b.min, bound.Min())
	b.max = b.sp.max(b.max, bound.Max())
	b.data = append(b.data, entry[C, T]{bound: bound, value: value, leaf: true})
}

// Len reports how many volumes have been added.
func (b *Builder[C, P, T]) Len() int { return len(b.data) }

// Build consumes the builder and produces an immutable Tree. With no
// volumes added the result is an empty tree whose iterator yields
// nothing.
//
// The layout is assembled in three passes: sort leaf references by
// (Morton code, insertion index); zigzag the sorted leaves into even
// indexes of a 2N−1 array; then fill internal envelopes level by level,
// each as the merge of its two children, shrinking the right-child
// reach whenever it would fall off the end of the array.
// Complexity: O(n log n).
func (b *Builder[C, P, T]) Build() *Tree[C, P, T] {
	t := &Tree[C, P, T]{sp: b.sp}
	n := len(b.data)
	if n == 0 {
		t.data = b.scratch[:0]
		t.spare = b.data[:0]
		t.reorder = b.reorder[:0]
		*b = Builder[C, P, T]{sp: t.sp}
		return t
	}

	base := b.min
	scale := b.sp.scale(b.min, b.max)

	b.reorder = b.reorder[:0]
	for id, e := range b.data {
		b.reorder = append(b.reorder, leafRef{
			code: b.sp.encode(e.bound.Center(), base, scale),
			id:   uint32(id),
		})
	}
	slices.SortFunc(b.reorder, func(x, y leafRef) int {
		if x.code != y.code {
			return cmp.Compare(x.code, y.code)
		}
		return cmp.Compare(x.id, y.id)
	})

	b.scratch = b.scratch[:0]
	for idx := 0; idx < 2*n-1; idx++ {
		if idx&1 == 0 {
			b.scratch = append(b.scratch, b.data[b.reorder[idx/2].id])
		} else {
			var internal entry[C, T]
			b.scratch = append(b.scratch, internal)
		}
	}

	step := 1
	for {
		reach := 1 << step
		if reach > len(b.scratch) {
			break
		}
		half := reach >> 1
		for i := reach - 1; i < len(b.scratch); i += 1 << (step + 1) {
			left := i - half
			right, hr := i+half, half
			for right >= len(b.scratch) {
				hr >>= 1
				right = i + hr
			}
			b.scratch[i].bound = b.scratch[left].bound.Merge(b.scratch[right].bound)
		}
		step++
	}

	t.depth = step - 1
	t.data = b.scratch
	t.spare = b.data[:0]
	t.reorder = b.reorder
	*b = Builder[C, P, T]{sp: t.sp}
	return t
}
