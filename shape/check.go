package shape

import (
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// Ranged2 is the axis-range capability of a 2D query shape. CheckX and
// CheckY report whether the shape reaches at-or-below (lt) and strictly
// above (gt) an axis value. Both results may be true for an extended
// shape straddling the value; exactly one is true for a point.
type Ranged2 interface {
	CheckX(c float64) (lt, gt bool)
	CheckY(c float64) (lt, gt bool)
}

// Ranged3 extends Ranged2 with the z axis.
type Ranged3 interface {
	Ranged2
	CheckZ(c float64) (lt, gt bool)
}

// Check2 combines the axis predicates of k against center into a
// 4-quadrant mask. Quadrant index bit 1 selects x, bit 0 selects y;
// a set bit means the greater-than side.
func Check2(k Ranged2, center r2.Point) [4]bool {
	ltx, gtx := k.CheckX(center.X)
	lty, gty := k.CheckY(center.Y)
	return [4]bool{
		ltx && lty, ltx && gty,
		gtx && lty, gtx && gty,
	}
}

// Check3 combines the axis predicates of k against center into an
// 8-orthant mask. Orthant index bit 2 selects x, bit 1 y, bit 0 z;
// a set bit means the greater-than side.
func Check3(k Ranged3, center r3.Vector) [8]bool {
	ltx, gtx := k.CheckX(center.X)
	lty, gty := k.CheckY(center.Y)
	ltz, gtz := k.CheckZ(center.Z)
	return [8]bool{
		ltx && lty && ltz, ltx && lty && gtz,
		ltx && gty && ltz, ltx && gty && gtz,
		gtx && lty && ltz, gtx && lty && gtz,
		gtx && gty && ltz, gtx && gty && gtz,
	}
}
