// Package octree provides two 8-ary spatial indexes over keys that
// answer axis-range predicates: a persistent pointer tree and a dense
// array tree.
//
// What:
//
//   - Sparse[K,V] — a pointer octree with four node kinds (empty, leaf,
//     collision list, branch). Mutation copies every branch it touches,
//     so Clone is O(1) and cloned trees share structure without ever
//     observing each other's writes.
//   - Linear[K,V] — a fixed-depth octree flattened into one
//     preallocated array; descent is pure index arithmetic, no child
//     pointers.
//
// Why:
//
//   - Sparse suits long-lived scenes with cheap snapshots (rollback,
//     double-buffered simulation steps).
//   - Linear trades memory for zero allocation after construction and
//     suits bounded worlds with dense occupancy.
//
// Keys:
//
//	Any type satisfying Key — the shape package's Point3, Aabb3 and
//	Sphere all qualify. A key straddling a splitting plane is stored in
//	every orthant it touches, so removal and queries must follow the
//	same predicate mask.
//
// Both trees cover the cube centered at the origin reaching scale along
// each axis. Query takes a callback and applies no intersection filter
// to the keys it reports: callers narrow the candidates themselves.
// Callbacks fire in orthant index order (0..7, x bit 2, y bit 1,
// z bit 0; set bit = greater side).
//
// Complexity: insert/remove/query touch O(8^d) cells in the worst case
// for a key straddling d levels of splitting planes; a point key
// touches exactly one cell per level.
package octree
