package morton

import (
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// spread distributes the low 10 bits of val so that consecutive source
// bits land step positions apart: step 2 for 2D codes, step 3 for 3D.
func spread(val uint32, step uint) uint32 {
	var out uint32
	mask := uint32(1)
	var rotate uint
	for i := 0; i < 10; i++ {
		out |= (val & mask) << rotate
		mask <<= 1
		rotate += step - 1
	}
	return out
}

// Encode3 quantizes p against the base corner and per-axis scale and
// interleaves the three 10-bit axis values into a 30-bit Z-order code,
// x at bit offset 2, y at 1, z at 0.
func Encode3(p, base, scale r3.Vector) uint32 {
	x := uint32((p.X - base.X) * scale.X)
	y := uint32((p.Y - base.Y) * scale.Y)
	z := uint32((p.Z - base.Z) * scale.Z)
	return spread(x, 3)<<2 | spread(y, 3)<<1 | spread(z, 3)
}

// Encode2 quantizes p against the base corner and per-axis scale and
// interleaves the two 10-bit axis values into a 20-bit Z-order code,
// x at bit offset 1, y at 0.
func Encode2(p, base, scale r2.Point) uint32 {
	x := uint32((p.X - base.X) * scale.X)
	y := uint32((p.Y - base.Y) * scale.Y)
	return spread(x, 2)<<1 | spread(y, 2)
}
