// Package uniform implements a uniform 2D grid for broad-phase
// collision queries: a square array of cells, each heading a
// singly-linked chain of items stored in a shared arena.
//
// What:
//
//   - Grid[C,V] maps a collider's center to a cell with
//     floor(scaleInv·p + size/2); out-of-range coordinates are
//     silently ignored by Insert/Remove/Update.
//   - Items live in a contiguous arena; removed slots go on a free
//     list and are recycled by later inserts. Defrag rebuilds a
//     compacted grid.
//   - CollisionIter scans the 3×3 cell block around the probe's
//     center (x inner, y outer, both −1→+1) and intersect-tests each
//     chained item; Iter enumerates every stored pair.
//
// Why:
//
//   - For densely populated, bounded 2D worlds a grid beats trees:
//     insert/remove are O(1) plus a chain walk, queries touch at most
//     nine cells.
//   - Index-based chains survive arena growth; iterators hold only
//     integer state and an immutable grid reference.
//
// The grid is exclusively owned during mutation. Iterators borrow it
// immutably; drop the iterator to stop early.
//
// Complexity: Insert O(1); Remove/Update O(chain); CollisionIter
// O(items in 9 cells); Defrag O(n).
package uniform
