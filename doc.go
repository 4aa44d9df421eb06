// Package broadphase is your in-memory toolkit for broad-phase collision
// detection in Go.
//
// 🚀 What is broadphase?
//
//	A small, focused library of 2D/3D spatial indexes and the shape algebra
//	that feeds them:
//
//	  • Shape primitives: axis-aligned boxes, spheres & circles with merge,
//	    containment and overlap tests
//	  • Linear BVH: Morton-ordered implicit tree with a stackful
//	    traversal iterator over array indexes
//	  • Octrees: a persistent sparse tree with structural sharing, and a
//	    fixed-depth dense array variant
//	  • Uniform grid: 2D cell hashing over a free-list arena
//
// ✨ Why choose broadphase?
//
//   - Deterministic          — every query visits candidates in a fixed order
//   - Allocation-conscious   — builders recycle storage, iterators walk indexes
//   - Generic                — payloads and shapes are type parameters, not interface{}
//   - Pure Go                — no cgo; golang/geo supplies the vector arithmetic
//
// Everything is organized under five subpackages:
//
//	shape/   — Aabb2/Aabb3, Sphere, Circle, Point2/Point3 & axis-range predicates
//	morton/  — 20/30-bit Z-order encoders for quantized centers
//	bvh/     — linear bounding-volume hierarchy: Builder, Tree, collision iterator
//	octree/  — Sparse (persistent) and Linear (dense array) octrees
//	uniform/ — uniform 2D grid with insert/remove/update/defrag
//
// Pick one structure, insert shapes tagged with your payloads, then ask for
// everything overlapping a probe shape. The structures never inspect payloads
// and never filter beyond bounding-shape overlap; narrow-phase tests are the
// caller's business.
//
//	go get github.com/katalvlaran/broadphase
package broadphase
