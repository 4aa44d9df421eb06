// File: shape/aabb_test.go
package shape

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

//----------------------------------------------------------------------------//
// Construction and accessors
//----------------------------------------------------------------------------//

// TestNewAabb2_SortsCorners verifies that the constructor normalizes any
// corner order into min ≤ max.
func TestNewAabb2_SortsCorners(t *testing.T) {
	a := NewAabb2(r2.Point{X: 2, Y: -1}, r2.Point{X: -3, Y: 4})
	if a.Min() != (r2.Point{X: -3, Y: -1}) {
		t.Errorf("Min() = %v; want (-3,-1)", a.Min())
	}
	if a.Max() != (r2.Point{X: 2, Y: 4}) {
		t.Errorf("Max() = %v; want (2,4)", a.Max())
	}
}

// TestAabb3_Derivations checks Dim, Volume, Center and the derivation
// operations on a 3D box.
func TestAabb3_Derivations(t *testing.T) {
	a := NewAabb3(r3.Vector{X: -1, Y: -1, Z: -1}, r3.Vector{X: 1, Y: 2, Z: 3})

	if a.Dim() != (r3.Vector{X: 2, Y: 3, Z: 4}) {
		t.Errorf("Dim() = %v; want (2,3,4)", a.Dim())
	}
	if a.Volume() != 24 {
		t.Errorf("Volume() = %v; want 24", a.Volume())
	}
	if a.Center() != (r3.Vector{X: 0, Y: 0.5, Z: 1}) {
		t.Errorf("Center() = %v; want (0,0.5,1)", a.Center())
	}

	grown := a.Grow(r3.Vector{X: 5, Y: 0, Z: 0})
	if grown.Max() != (r3.Vector{X: 5, Y: 2, Z: 3}) || grown.Min() != a.Min() {
		t.Errorf("Grow() = %v", grown)
	}

	moved := a.AddV(r3.Vector{X: 1, Y: 1, Z: 1})
	if moved.Min() != (r3.Vector{X: 0, Y: 0, Z: 0}) || moved.Max() != (r3.Vector{X: 2, Y: 3, Z: 4}) {
		t.Errorf("AddV() = %v", moved)
	}

	scaled := a.MulS(2)
	if scaled.Min() != (r3.Vector{X: -2, Y: -2, Z: -2}) || scaled.Max() != (r3.Vector{X: 2, Y: 4, Z: 6}) {
		t.Errorf("MulS() = %v", scaled)
	}

	// Negative componentwise scale flips an axis; the constructor re-sorts.
	flipped := a.MulV(r3.Vector{X: -1, Y: 1, Z: 1})
	if flipped.Min() != (r3.Vector{X: -1, Y: -1, Z: -1}) || flipped.Max() != (r3.Vector{X: 1, Y: 2, Z: 3}) {
		t.Errorf("MulV() = %v", flipped)
	}
}

// TestAabb2_Contains exercises the half-open containment rule:
// inclusive at min, exclusive at max.
func TestAabb2_Contains(t *testing.T) {
	a := NewAabb2(r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 1})
	cases := []struct {
		p    r2.Point
		want bool
	}{
		{r2.Point{X: 0, Y: 0}, true},
		{r2.Point{X: 0.5, Y: 0.5}, true},
		{r2.Point{X: 1, Y: 0.5}, false},
		{r2.Point{X: 0.5, Y: 1}, false},
		{r2.Point{X: -0.1, Y: 0.5}, false},
	}
	for _, tc := range cases {
		if got := a.Contains(tc.p); got != tc.want {
			t.Errorf("Contains(%v) = %v; want %v", tc.p, got, tc.want)
		}
	}
}

//----------------------------------------------------------------------------//
// Intersection
//----------------------------------------------------------------------------//

// TestAabb2_Collide walks a unit box around the corners of another unit
// box; only the two diagonal overlaps intersect.
func TestAabb2_Collide(t *testing.T) {
	a := NewAabb2(r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 1})

	table := []struct {
		p    r2.Point
		want bool
	}{
		{r2.Point{X: 0.9, Y: 0.9}, true},
		{r2.Point{X: 0.9, Y: 1.1}, false},
		{r2.Point{X: 1.1, Y: 0.9}, false},
		{r2.Point{X: 1.1, Y: 1.1}, false},
		{r2.Point{X: -1.1, Y: -1.1}, false},
		{r2.Point{X: -0.9, Y: -1.1}, false},
		{r2.Point{X: -1.1, Y: -0.9}, false},
		{r2.Point{X: -0.9, Y: -0.9}, true},
	}
	for _, tc := range table {
		b := NewAabb2(tc.p, tc.p.Add(r2.Point{X: 1, Y: 1}))
		if got := a.Intersects(b); got != tc.want {
			t.Errorf("Intersects(%v) = %v; want %v", b, got, tc.want)
		}
		// Symmetry: a.Intersects(b) == b.Intersects(a).
		if a.Intersects(b) != b.Intersects(a) {
			t.Errorf("Intersects not symmetric for %v", b)
		}
	}
}

// TestAabb3_Collide walks a unit cube around the corners of another unit
// cube; only the two diagonal overlaps intersect.
func TestAabb3_Collide(t *testing.T) {
	a := NewAabb3(r3.Vector{X: 0, Y: 0, Z: 0}, r3.Vector{X: 1, Y: 1, Z: 1})

	table := []struct {
		p    r3.Vector
		want bool
	}{
		{r3.Vector{X: 0.9, Y: 0.9, Z: 0.9}, true},
		{r3.Vector{X: 0.9, Y: 1.1, Z: 0.9}, false},
		{r3.Vector{X: 1.1, Y: 0.9, Z: 0.9}, false},
		{r3.Vector{X: 1.1, Y: 1.1, Z: 0.9}, false},
		{r3.Vector{X: 0.9, Y: 0.9, Z: 1.1}, false},
		{r3.Vector{X: 0.9, Y: 1.1, Z: 1.1}, false},
		{r3.Vector{X: 1.1, Y: 0.9, Z: 1.1}, false},
		{r3.Vector{X: 1.1, Y: 1.1, Z: 1.1}, false},
		{r3.Vector{X: -1.1, Y: -1.1, Z: -1.1}, false},
		{r3.Vector{X: -0.9, Y: -1.1, Z: -1.1}, false},
		{r3.Vector{X: -1.1, Y: -0.9, Z: -1.1}, false},
		{r3.Vector{X: -0.9, Y: -0.9, Z: -1.1}, false},
		{r3.Vector{X: -1.1, Y: -1.1, Z: -0.9}, false},
		{r3.Vector{X: -0.9, Y: -1.1, Z: -0.9}, false},
		{r3.Vector{X: -1.1, Y: -0.9, Z: -0.9}, false},
		{r3.Vector{X: -0.9, Y: -0.9, Z: -0.9}, true},
	}
	for _, tc := range table {
		b := NewAabb3(tc.p, tc.p.Add(r3.Vector{X: 1, Y: 1, Z: 1}))
		if got := a.Intersects(b); got != tc.want {
			t.Errorf("Intersects(%v) = %v; want %v", b, got, tc.want)
		}
		if a.Intersects(b) != b.Intersects(a) {
			t.Errorf("Intersects not symmetric for %v", b)
		}
	}
}

//----------------------------------------------------------------------------//
// Merge
//----------------------------------------------------------------------------//

// TestAabb3_MergeEnvelope verifies that the merge of two boxes reaches
// exactly as far as the farther of the two on every axis: each corner of
// either input is on the boundary or inside the merge, and the merge's
// own corners come from the inputs.
func TestAabb3_MergeEnvelope(t *testing.T) {
	a := NewAabb3(r3.Vector{X: -2, Y: 0, Z: 1}, r3.Vector{X: 1, Y: 3, Z: 2})
	b := NewAabb3(r3.Vector{X: 0, Y: -1, Z: 0}, r3.Vector{X: 4, Y: 1, Z: 5})
	m := a.Merge(b)

	if m.Min() != (r3.Vector{X: -2, Y: -1, Z: 0}) {
		t.Errorf("merge Min = %v", m.Min())
	}
	if m.Max() != (r3.Vector{X: 4, Y: 3, Z: 5}) {
		t.Errorf("merge Max = %v", m.Max())
	}

	// The merge contains or touches every corner of both inputs.
	for _, box := range []Aabb3{a, b} {
		lo, hi := box.Min(), box.Max()
		for _, p := range []r3.Vector{lo, hi, {X: lo.X, Y: hi.Y, Z: lo.Z}, {X: hi.X, Y: lo.Y, Z: hi.Z}} {
			if !m.Grow(p).Equal(m) {
				t.Errorf("merge does not cover corner %v", p)
			}
		}
	}

	// Merging is symmetric.
	if !m.Equal(b.Merge(a)) {
		t.Errorf("merge not symmetric")
	}
}

//----------------------------------------------------------------------------//
// Accumulator
//----------------------------------------------------------------------------//

// TestAabbOf checks the point-stream accumulators, including the
// zero-shape result for an empty stream.
func TestAabbOf(t *testing.T) {
	if got := Aabb2Of(); !got.Equal(Aabb2{}) {
		t.Errorf("Aabb2Of() = %v; want zero box", got)
	}
	if got := Aabb3Of(); !got.Equal(Aabb3{}) {
		t.Errorf("Aabb3Of() = %v; want zero box", got)
	}

	got := Aabb3Of(
		r3.Vector{X: 1, Y: -2, Z: 0},
		r3.Vector{X: -1, Y: 4, Z: 2},
		r3.Vector{X: 0, Y: 0, Z: -3},
	)
	want := NewAabb3(r3.Vector{X: -1, Y: -2, Z: -3}, r3.Vector{X: 1, Y: 4, Z: 2})
	if !got.Equal(want) {
		t.Errorf("Aabb3Of = %v; want %v", got, want)
	}

	got2 := Aabb2Of(r2.Point{X: 3, Y: 1}, r2.Point{X: -1, Y: 2})
	want2 := NewAabb2(r2.Point{X: -1, Y: 1}, r2.Point{X: 3, Y: 2})
	if !got2.Equal(want2) {
		t.Errorf("Aabb2Of = %v; want %v", got2, want2)
	}
}
