package uniform

import (
	"math"

	"github.com/golang/geo/r2"
)

// Collider is the capability set a stored shape must offer: a center
// for cell addressing and an overlap test against its own kind.
type Collider[C any] interface {
	Center() r2.Point
	Intersects(C) bool
}

// none marks an empty cell head or the end of a chain.
const none int32 = -1

// item is one arena slot: the stored association plus its chain link.
type item[C, V any] struct {
	next     int32
	collider C
	value    V
}

// Grid is a uniform 2D grid of size×size cells covering
// [−scale, scale) on both axes. Values must be comparable: Remove and
// Update locate items by value equality.
//
// The zero Grid is not usable; construct with NewGrid.
type Grid[C Collider[C], V comparable] struct {
	scale    float64
	scaleInv float64
	size     int32
	items    []item[C, V]
	free     []int32
	cells    []int32
}

// NewGrid constructs an empty grid of size×size cells spanning
// [−scale, scale). A power-of-two size keeps cell boundaries exact but
// is not required.
func NewGrid[C Collider[C], V comparable](size int, scale float64) *Grid[C, V] {
	g := &Grid[C, V]{
		scale:    scale,
		scaleInv: (float64(size) / 2) / scale,
		size:     int32(size),
		cells:    make([]int32, size*size),
	}
	for i := range g.cells {
		g.cells[i] = none
	}
	return g
}

// Size returns the grid's cell count per side.
func (g *Grid[C, V]) Size() int { return int(g.size) }

// Scale returns the half-extent of the covered world.
func (g *Grid[C, V]) Scale() float64 { return g.scale }

// mapCoord translates a world coordinate into cell space.
func (g *Grid[C, V]) mapCoord(pt float64) float64 {
	return g.scaleInv*pt + float64(g.size)/2
}

// inRange bounds-checks a cell coordinate.
func (g *Grid[C, V]) inRange(i int32) bool { return i >= 0 && i < g.size }

// offset maps a world coordinate to a cell coordinate, reporting
// whether it lands inside the grid.
func (g *Grid[C, V]) offset(pt float64) (int32, bool) {
	i := int32(math.Floor(g.mapCoord(pt)))
	return i, g.inRange(i)
}

// cellOf resolves the cell index for a collider's center.
func (g *Grid[C, V]) cellOf(c C) (int32, bool) {
	pt := c.Center()
	x, okX := g.offset(pt.X)
	y, okY := g.offset(pt.Y)
	if !okX || !okY {
		return 0, false
	}
	return x*g.size + y, true
}

// link places an item into the arena, recycling a free slot when one
// exists, and returns its index.
func (g *Grid[C, V]) link(it item[C, V]) int32 {
	if n := len(g.free); n > 0 {
		idx := g.free[n-1]
		g.free = g.free[:n-1]
		g.items[idx] = it
		return idx
	}
	g.items = append(g.items, it)
	return int32(len(g.items) - 1)
}

// find walks a cell's chain for the first item holding value.
func (g *Grid[C, V]) find(cell int32, value V) (int32, bool) {
	for idx := g.cells[cell]; idx != none; idx = g.items[idx].next {
		if g.items[idx].value == value {
			return idx, true
		}
	}
	return none, false
}

// Insert stores the association in the cell addressed by the
// collider's center. An out-of-range center is silently ignored.
// Complexity: O(1).
func (g *Grid[C, V]) Insert(collider C, value V) {
	cell, ok := g.cellOf(collider)
	if !ok {
		return
	}
	idx := g.link(item[C, V]{next: g.cells[cell], collider: collider, value: value})
	g.cells[cell] = idx
}

// Remove unlinks the first item in the collider's cell holding value
// and reports whether anything was removed. Out-of-range centers and
// absent values report false; removing an already-removed item is a
// no-op.
// Complexity: O(chain length).
func (g *Grid[C, V]) Remove(collider C, value V) bool {
	cell, ok := g.cellOf(collider)
	if !ok {
		return false
	}
	target, ok := g.find(cell, value)
	if !ok {
		return false
	}
	g.free = append(g.free, target)

	if head := g.cells[cell]; head == target {
		g.cells[cell] = g.items[target].next
		return true
	}
	for idx := g.cells[cell]; idx != none; idx = g.items[idx].next {
		if g.items[idx].next == target {
			g.items[idx].next = g.items[target].next
			return true
		}
	}
	return false
}

// Update moves an association from the cell of old to the cell of new.
// When both land in the same cell the collider is replaced in place;
// when one side is out of range the operation degrades to a bare
// remove or insert. A same-cell update of a value absent from that
// cell is a programmer error and panics; on the cross-cell path an
// absent value is not detected: the remove finds nothing and new is
// still inserted.
func (g *Grid[C, V]) Update(old, new C, value V) {
	newCell, ok := g.cellOf(new)
	if !ok {
		g.Remove(old, value)
		return
	}
	oldCell, ok := g.cellOf(old)
	if !ok {
		g.Insert(new, value)
		return
	}
	if oldCell != newCell {
		g.Remove(old, value)
		g.Insert(new, value)
		return
	}
	idx, ok := g.find(newCell, value)
	if !ok {
		panic("uniform: update of a value missing from the grid")
	}
	g.items[idx].collider = new
}

// Clear drops every stored item, retaining the allocated arena and
// cell array.
func (g *Grid[C, V]) Clear() {
	g.items = g.items[:0]
	g.free = g.free[:0]
	for i := range g.cells {
		g.cells[i] = none
	}
}

// Len reports the number of stored items.
func (g *Grid[C, V]) Len() int { return len(g.items) - len(g.free) }

// Defrag rebuilds an equivalent grid with the same size and scale,
// compacting the arena and dropping accumulated free slots.
// Complexity: O(n).
func (g *Grid[C, V]) Defrag() *Grid[C, V] {
	out := NewGrid[C, V](int(g.size), g.scale)
	for it := g.Iter(); ; {
		collider, value, ok := it.Next()
		if !ok {
			break
		}
		out.Insert(collider, value)
	}
	return out
}
