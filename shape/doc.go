// Package shape provides the bounding-shape algebra consumed by every
// spatial index in broadphase: axis-aligned boxes, spheres, circles, and
// bare points, in two and three dimensions.
//
// What:
//
//   - Aabb2 / Aabb3 — corner-pair boxes; constructors sort the corners so
//     min ≤ max holds on every axis.
//   - Sphere / Circle — center + radius with enclosing merge.
//   - Point2 / Point3 — degenerate keys whose overlap test is equality.
//   - Axis-range predicates (CheckX/CheckY/CheckZ) plus the Check2/Check3
//     orthant masks that drive octree descent.
//   - Point-stream accumulators (Aabb2Of, Aabb3Of, SphereOf, CircleOf).
//
// Why:
//
//   - Broad-phase structures only ever need a handful of capabilities:
//     corners, center, merge, overlap. Keeping them on small value types
//     lets the indexes monomorphize over the concrete shape.
//   - golang/geo's r2.Point and r3.Vector supply the tuple arithmetic;
//     this package adds the componentwise min/max the indexes need.
//
// Conventions:
//
//   - Containment is half-open: min ≤ p < max on every axis.
//   - Box overlap is the separating-axis test with touching faces counted
//     as intersecting; sphere overlap is strict (distance < radius sum).
//   - All shapes are immutable plain data; derivation methods return new
//     values.
//
// Complexity: every operation here is O(1) in the dimension.
package shape
