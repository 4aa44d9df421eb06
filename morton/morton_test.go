// File: morton/morton_test.go
package morton

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// TestEncode3_Canonical pins the canonical 30-bit codes over the unit
// cube with a 1023 scale.
func TestEncode3_Canonical(t *testing.T) {
	base := r3.Vector{}
	scale := r3.Vector{X: 1023, Y: 1023, Z: 1023}

	cases := []struct {
		name string
		p    r3.Vector
		want uint32
	}{
		{"full", r3.Vector{X: 1, Y: 1, Z: 1}, 0b111_111_111_111_111_111_111_111_111_111},
		{"zero", r3.Vector{}, 0},
		{"half", r3.Vector{X: 0.5, Y: 0.5, Z: 0.5}, 0b000_111_111_111_111_111_111_111_111_111},
		{"z_full", r3.Vector{Z: 1}, 0b001_001_001_001_001_001_001_001_001_001},
		{"y_full", r3.Vector{Y: 1}, 0b010_010_010_010_010_010_010_010_010_010},
		{"x_full", r3.Vector{X: 1}, 0b100_100_100_100_100_100_100_100_100_100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Encode3(tc.p, base, scale); got != tc.want {
				t.Errorf("Encode3(%v) = %#b; want %#b", tc.p, got, tc.want)
			}
		})
	}
}

// TestEncode2_Canonical pins the 20-bit codes over the unit square.
func TestEncode2_Canonical(t *testing.T) {
	base := r2.Point{}
	scale := r2.Point{X: 1023, Y: 1023}

	cases := []struct {
		name string
		p    r2.Point
		want uint32
	}{
		{"full", r2.Point{X: 1, Y: 1}, 0b11_11_11_11_11_11_11_11_11_11},
		{"zero", r2.Point{}, 0},
		{"y_full", r2.Point{Y: 1}, 0b01_01_01_01_01_01_01_01_01_01},
		{"x_full", r2.Point{X: 1}, 0b10_10_10_10_10_10_10_10_10_10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Encode2(tc.p, base, scale); got != tc.want {
				t.Errorf("Encode2(%v) = %#b; want %#b", tc.p, got, tc.want)
			}
		})
	}
}

// TestEncode3_Deterministic confirms equal quantized points produce
// equal codes even when the float inputs differ below quantum size.
func TestEncode3_Deterministic(t *testing.T) {
	base := r3.Vector{}
	scale := r3.Vector{X: 1023, Y: 1023, Z: 1023}

	a := Encode3(r3.Vector{X: 0.50001, Y: 0.25, Z: 0.75}, base, scale)
	b := Encode3(r3.Vector{X: 0.50002, Y: 0.25, Z: 0.75}, base, scale)
	if a != b {
		t.Errorf("codes differ for same quantum: %#b vs %#b", a, b)
	}
}

// TestEncode3_AxisSweep verifies that varying only x moves only the
// x-interleaved bit positions.
func TestEncode3_AxisSweep(t *testing.T) {
	base := r3.Vector{}
	scale := r3.Vector{X: 1023, Y: 1023, Z: 1023}

	const xBits = 0b100_100_100_100_100_100_100_100_100_100
	for _, x := range []float64{0, 0.1, 0.33, 0.5, 0.77, 1} {
		code := Encode3(r3.Vector{X: x}, base, scale)
		if code&^uint32(xBits) != 0 {
			t.Errorf("x=%v leaked into y/z bit positions: %#b", x, code)
		}
	}
}
