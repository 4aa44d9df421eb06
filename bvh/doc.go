// Package bvh implements a linear bounding-volume hierarchy: a
// branchless, array-backed tree built bottom-up from Morton-sorted
// leaves.
//
// What:
//
//   - Builder accumulates (volume, payload) pairs and a running scene
//     envelope; Build sorts leaves by the Morton code of their centers
//     and lays out a 2N−1 entry array — leaves at even indexes,
//     internal envelopes at odd indexes.
//   - Tree answers overlap queries through CollisionIter, a stackful
//     in-order traversal that emulates pointer descent on the flat
//     array.
//   - ToBuilder hands the tree's backing storage to a fresh Builder so
//     repeated rebuild cycles do not reallocate.
//
// Why:
//
//   - The implicit layout derives each internal node's children from
//     the bit pattern of its index — no pointers, no per-node
//     allocation, cache-friendly traversal.
//   - Building is sort + one merge sweep: O(n log n) with a single
//     output array.
//
// Layout:
//
//	A non-root internal index i has depth d = trailing-ones(i) and
//	half-reach h = 2^(d−1); its left child is i−h and its right child
//	i+h, with h halved until the right child falls inside the array
//	(this absorbs non-power-of-two leaf counts). The root sits at
//	2^depth − 1.
//
// NewBuilder keys on r3.Vector centers with 30-bit codes; NewBuilder2
// builds the 2D twin over r2.Point with 20-bit codes. Both share one
// generic core.
//
// The tree is immutable after Build and safe for concurrent read-only
// queries; each CollisionIter carries its own traversal state.
//
// Complexity: Build O(n log n); query O(log n + k) for k reported
// overlaps on well-distributed scenes, O(n) worst case.
package bvh
