package octree

import (
	"github.com/golang/geo/r3"

	"github.com/katalvlaran/broadphase/shape"
)

// nodeKind tags one cell of the dense array. A child cell carries no
// pointer: descent recomputes addresses from the frame.
type nodeKind uint8

const (
	kindEmpty nodeKind = iota
	kindChild
	kindLeaf
	kindCollision
)

// lnode is one array cell. Only the fields matching kind are
// meaningful.
type lnode[K, V any] struct {
	kind    nodeKind
	key     K
	value   V
	entries []pair[K, V]
}

// frame locates a cell run during descent: the cell cube's center and
// half-scale, the flat-array base of the current level, the
// parent-derived search offset within the level, and the number of
// subdivisions left.
type frame struct {
	center r3.Vector
	scale  float64
	base   int
	search int
	left   int
}

// startFrame addresses the first level: eight cells at the array head.
func startFrame(depth int, scale float64) frame {
	return frame{scale: scale, left: depth - 1}
}

// next steps the frame into orthant idx's sub-level.
func (f frame) next(idx int) frame {
	h := f.scale / 2
	return frame{
		center: orthantCenter(f.center, h, idx),
		scale:  h,
		base:   f.base*8 + 8,
		search: (f.search + idx) * 8,
		left:   f.left - 1,
	}
}

// addr resolves orthant idx's flat-array index within this frame.
func (f frame) addr(idx int) int { return f.base + f.search + idx }

// arraySize is the cell count of a depth-level dense octree:
// 8 + 64 + … + 8^depth.
func arraySize(depth int) int {
	size, total := 2, 0
	for i := 0; i < depth; i++ {
		total += size * size * size
		size *= 2
	}
	return total
}

// Linear is a fixed-depth octree flattened into a single preallocated
// array. It covers the cube centered at the origin with half-side
// scale. Unlike Sparse it has exclusive mutable ownership semantics
// and collision lists may grow at any depth: once a frame runs out of
// subdivisions, overlapping keys pile into the cell.
type Linear[K Key[K], V any] struct {
	scale float64
	depth int
	nodes []lnode[K, V]
}

// NewLinear constructs a dense octree with the given half-side scale
// and subdivision depth. depth must be at least 1; passing 0 is a
// programmer error and panics.
func NewLinear[K Key[K], V any](scale float64, depth int) *Linear[K, V] {
	if depth == 0 {
		panic("octree: NewLinear requires depth >= 1")
	}
	return &Linear[K, V]{
		scale: scale,
		depth: depth,
		nodes: make([]lnode[K, V], arraySize(depth)),
	}
}

// Insert stores value under key in every cell the key touches.
func (l *Linear[K, V]) Insert(key K, value V) {
	l.insertAt(startFrame(l.depth, l.scale), key, value)
}

// Remove deletes key from every cell it touches: a leaf cell clears
// when its key equals the target; collision lists drop the first equal
// entry.
func (l *Linear[K, V]) Remove(key K) {
	l.removeAt(startFrame(l.depth, l.scale), key)
}

// Query invokes visit for every association stored in a cell the probe
// touches, without filtering the reported keys against the probe.
// Visits occur in orthant index order.
func (l *Linear[K, V]) Query(probe shape.Ranged3, visit func(K, V)) {
	l.queryAt(startFrame(l.depth, l.scale), probe, visit)
}

func (l *Linear[K, V]) insertAt(f frame, key K, value V) {
	mask := shape.Check3(key, f.center)
	for idx, hit := range mask {
		if !hit {
			continue
		}
		a := f.addr(idx)
		n := l.nodes[a]
		switch n.kind {
		case kindEmpty:
			l.nodes[a] = lnode[K, V]{kind: kindLeaf, key: key, value: value}

		case kindChild:
			l.insertAt(f.next(idx), key, value)

		case kindLeaf:
			if f.left != 0 && !n.key.Intersects(key) {
				l.nodes[a] = lnode[K, V]{kind: kindChild}
				down := f.next(idx)
				l.insertAt(down, n.key, n.value)
				l.insertAt(down, key, value)
			} else {
				l.nodes[a] = lnode[K, V]{kind: kindCollision, entries: []pair[K, V]{
					{n.key, n.value},
					{key, value},
				}}
			}

		case kindCollision:
			addHere := f.left == 0
			if !addHere {
				all := true
				for _, e := range n.entries {
					if !key.Intersects(e.key) {
						all = false
						break
					}
				}
				addHere = all
			}
			if addHere {
				n.entries = append(n.entries, pair[K, V]{key, value})
				l.nodes[a] = n
			} else {
				l.nodes[a] = lnode[K, V]{kind: kindChild}
				down := f.next(idx)
				for _, e := range n.entries {
					l.insertAt(down, e.key, e.value)
				}
				l.insertAt(down, key, value)
			}
		}
	}
}

func (l *Linear[K, V]) removeAt(f frame, key K) {
	mask := shape.Check3(key, f.center)
	for idx, hit := range mask {
		if !hit {
			continue
		}
		a := f.addr(idx)
		n := l.nodes[a]
		switch n.kind {
		case kindChild:
			l.removeAt(f.next(idx), key)

		case kindLeaf:
			if n.key.Equal(key) {
				l.nodes[a] = lnode[K, V]{}
			}

		case kindCollision:
			for i, e := range n.entries {
				if e.key.Equal(key) {
					n.entries = append(n.entries[:i], n.entries[i+1:]...)
					l.nodes[a] = n
					break
				}
			}
		}
	}
}

func (l *Linear[K, V]) queryAt(f frame, probe shape.Ranged3, visit func(K, V)) {
	mask := shape.Check3(probe, f.center)
	for idx, hit := range mask {
		if !hit {
			continue
		}
		switch n := &l.nodes[f.addr(idx)]; n.kind {
		case kindChild:
			l.queryAt(f.next(idx), probe, visit)

		case kindLeaf:
			visit(n.key, n.value)

		case kindCollision:
			for _, e := range n.entries {
				visit(e.key, e.value)
			}
		}
	}
}
