package uniform

import "math"

// Iter enumerates every stored (collider, value) pair: cells in index
// order, each chain from its head. Forward-only and non-restartable.
type Iter[C Collider[C], V comparable] struct {
	g    *Grid[C, V]
	cell int
	head int32
}

// Iter starts a full enumeration of the grid.
func (g *Grid[C, V]) Iter() *Iter[C, V] {
	return &Iter[C, V]{g: g, head: none}
}

// Next returns the next stored pair, or ok=false when the grid is
// exhausted.
func (it *Iter[C, V]) Next() (collider C, value V, ok bool) {
	for {
		if it.head != none {
			slot := &it.g.items[it.head]
			it.head = slot.next
			return slot.collider, slot.value, true
		}
		if it.cell == len(it.g.cells) {
			var noC C
			var noV V
			return noC, noV, false
		}
		it.head = it.g.cells[it.cell]
		it.cell++
	}
}

// CollisionIter scans the 3×3 cell block centered on the probe's cell
// and yields every chained item whose collider intersects the probe.
// The scan is a fixed raster: dy outer, dx inner, both −1→+1;
// out-of-range neighbor cells are skipped.
type CollisionIter[C Collider[C], V comparable] struct {
	g     *Grid[C, V]
	probe C
	dx    int32
	dy    int32
	cur   int32
}

// CollisionIter starts an overlap scan around the probe's center.
// A probe centered outside the grid still scans whichever of its
// neighbor cells fall inside.
func (g *Grid[C, V]) CollisionIter(probe C) *CollisionIter[C, V] {
	return &CollisionIter[C, V]{g: g, probe: probe, dx: -2, dy: -1, cur: none}
}

// Next returns the next overlapping pair, or ok=false once the block
// is exhausted.
func (it *CollisionIter[C, V]) Next() (collider C, value V, ok bool) {
	for {
		for it.cur != none {
			slot := &it.g.items[it.cur]
			it.cur = slot.next
			if it.probe.Intersects(slot.collider) {
				return slot.collider, slot.value, true
			}
		}

		// Advance the 3×3 raster.
		it.dx++
		if it.dx == 2 && it.dy == 1 {
			var noC C
			var noV V
			return noC, noV, false
		}
		if it.dx == 2 {
			it.dx = -1
			it.dy++
		}

		center := it.probe.Center()
		x := int32(math.Floor(it.g.mapCoord(center.X))) + it.dx
		y := int32(math.Floor(it.g.mapCoord(center.Y))) + it.dy
		if it.g.inRange(x) && it.g.inRange(y) {
			it.cur = it.g.cells[x*it.g.size+y]
		} else {
			it.cur = none
		}
	}
}
