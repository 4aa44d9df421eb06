package octree

import (
	"github.com/golang/geo/r3"

	"github.com/katalvlaran/broadphase/shape"
)

// node is one cell of the sparse tree. A nil node is an empty cell; the
// other kinds are *leaf, *collision and *branch. Nodes are shared
// between cloned trees and never mutated in place.
type node[K Key[K], V any] interface {
	isNode()
}

// leaf holds a single association.
type leaf[K Key[K], V any] struct {
	key   K
	value V
}

// collision holds associations that mutually overlap (or that ran out
// of subdivision depth). The slice is never appended to in place: a
// grown list is a fresh slice, so shared lists stay stable.
type collision[K Key[K], V any] struct {
	entries []pair[K, V]
}

// branch holds the eight child cells.
type branch[K Key[K], V any] struct {
	children [8]node[K, V]
}

func (*leaf[K, V]) isNode()      {}
func (*collision[K, V]) isNode() {}
func (*branch[K, V]) isNode()    {}

// Sparse is a persistent octree over the cube centered at the origin
// with half-side scale, subdividing at most maxDepth times. The zero
// tree is empty; Clone shares all structure with the original.
//
// Mutating methods require exclusive access to the Sparse value itself,
// but never touch shared nodes: every branch on the mutation path is
// copied first.
type Sparse[K Key[K], V any] struct {
	root     node[K, V]
	scale    float64
	maxDepth int
}

// NewSparse constructs an empty tree covering [−scale, scale]³ with the
// given maximum subdivision depth.
func NewSparse[K Key[K], V any](scale float64, maxDepth int) *Sparse[K, V] {
	return &Sparse[K, V]{scale: scale, maxDepth: maxDepth}
}

// Clone returns an independent tree sharing all current structure with
// s. Later mutations of either tree are invisible to the other.
// Complexity: O(1).
func (s *Sparse[K, V]) Clone() *Sparse[K, V] {
	return &Sparse[K, V]{root: s.root, scale: s.scale, maxDepth: s.maxDepth}
}

// Insert stores value under key in every orthant the key touches.
// Complexity: O(depth) for point keys; straddling keys fan out.
func (s *Sparse[K, V]) Insert(key K, value V) {
	s.root = insertNode(s.root, r3.Vector{}, s.scale, s.maxDepth, key, value)
}

// Remove deletes key from every orthant it touches. A leaf cell is
// cleared without comparing keys; collision lists drop the first entry
// equal to key.
func (s *Sparse[K, V]) Remove(key K) {
	s.root = removeNode[K, V](s.root, r3.Vector{}, s.scale, key)
}

// Query invokes visit for every association stored in an orthant the
// probe touches. The keys reported are not filtered against the probe;
// callers intersect explicitly. Visits occur in orthant index order.
func (s *Sparse[K, V]) Query(probe shape.Ranged3, visit func(K, V)) {
	queryNode(s.root, r3.Vector{}, s.scale, probe, visit)
}

// clone copies the branch's child array; children stay shared.
func (b *branch[K, V]) clone() *branch[K, V] {
	nb := &branch[K, V]{}
	nb.children = b.children
	return nb
}

// census counts the branch's occupied children: leaves separately from
// collision lists and sub-branches.
func (b *branch[K, V]) census() (data, child int) {
	for _, c := range b.children {
		switch c.(type) {
		case *leaf[K, V]:
			data++
		case *collision[K, V], *branch[K, V]:
			child++
		}
	}
	return data, child
}

// insert stores the association in every child orthant the key's
// predicate mask selects. The receiver must be uniquely owned.
func (b *branch[K, V]) insert(center r3.Vector, scale float64, depth int, key K, value V) {
	h := scale / 2
	mask := shape.Check3(key, center)
	for i, hit := range mask {
		if hit {
			b.children[i] = insertNode(b.children[i], orthantCenter(center, h, i), h, depth, key, value)
		}
	}
}

// remove mirrors insert over the key's predicate mask. The receiver
// must be uniquely owned.
func (b *branch[K, V]) remove(center r3.Vector, scale float64, key K) {
	h := scale / 2
	mask := shape.Check3(key, center)
	for i, hit := range mask {
		if hit {
			b.children[i] = removeNode[K, V](b.children[i], orthantCenter(center, h, i), h, key)
		}
	}
}

// insertNode returns the cell's replacement after storing (key, value).
// Shared nodes are never written: transitions allocate, and branch
// descent clones first.
func insertNode[K Key[K], V any](n node[K, V], center r3.Vector, scale float64, depth int, key K, value V) node[K, V] {
	switch cur := n.(type) {
	case nil:
		return &leaf[K, V]{key: key, value: value}

	case *leaf[K, V]:
		if depth == 0 || cur.key.Intersects(key) {
			return &collision[K, V]{entries: []pair[K, V]{
				{cur.key, cur.value},
				{key, value},
			}}
		}
		br := &branch[K, V]{}
		br.insert(center, scale, depth-1, cur.key, cur.value)
		br.insert(center, scale, depth-1, key, value)
		return br

	case *collision[K, V]:
		all := true
		if depth != 0 {
			for _, e := range cur.entries {
				if !key.Intersects(e.key) {
					all = false
					break
				}
			}
		}
		if all {
			entries := make([]pair[K, V], 0, len(cur.entries)+1)
			entries = append(entries, cur.entries...)
			entries = append(entries, pair[K, V]{key, value})
			return &collision[K, V]{entries: entries}
		}
		br := &branch[K, V]{}
		for _, e := range cur.entries {
			br.insert(center, scale, depth-1, e.key, e.value)
		}
		br.insert(center, scale, depth-1, key, value)
		return br

	case *branch[K, V]:
		br := cur.clone()
		br.insert(center, scale, depth-1, key, value)
		if data, child := br.census(); data == 0 && child == 0 {
			return nil
		}
		return br
	}
	return n
}

// removeNode returns the cell's replacement after deleting key. Leaves
// clear unconditionally; collision lists stay allocated even when the
// last entry goes.
func removeNode[K Key[K], V any](n node[K, V], center r3.Vector, scale float64, key K) node[K, V] {
	switch cur := n.(type) {
	case nil:
		return nil

	case *leaf[K, V]:
		return nil

	case *collision[K, V]:
		for i, e := range cur.entries {
			if e.key.Equal(key) {
				entries := make([]pair[K, V], 0, len(cur.entries)-1)
				entries = append(entries, cur.entries[:i]...)
				entries = append(entries, cur.entries[i+1:]...)
				return &collision[K, V]{entries: entries}
			}
		}
		return cur

	case *branch[K, V]:
		br := cur.clone()
		br.remove(center, scale, key)
		return br
	}
	return n
}

// queryNode reports every association in cells the probe's predicate
// mask selects.
func queryNode[K Key[K], V any](n node[K, V], center r3.Vector, scale float64, probe shape.Ranged3, visit func(K, V)) {
	switch cur := n.(type) {
	case nil:

	case *leaf[K, V]:
		visit(cur.key, cur.value)

	case *collision[K, V]:
		for _, e := range cur.entries {
			visit(e.key, e.value)
		}

	case *branch[K, V]:
		h := scale / 2
		mask := shape.Check3(probe, center)
		for i, hit := range mask {
			if hit {
				queryNode(cur.children[i], orthantCenter(center, h, i), h, probe, visit)
			}
		}
	}
}
