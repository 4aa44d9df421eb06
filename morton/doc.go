// Package morton maps quantized 2D/3D coordinates onto the Z-order
// (Morton) curve.
//
// What:
//
//   - Encode2 produces a 20-bit code: 10 bits per axis, x and y
//     interleaved with x at the higher offset.
//   - Encode3 produces a 30-bit code: 10 bits per axis, x above y
//     above z.
//
// Why:
//
//	Sorting shape centers by their Morton code clusters spatially near
//	entries next to each other in memory, which is what makes the
//	linear BVH layout in package bvh coherent.
//
// The caller supplies a base corner and a per-axis scale; each axis is
// quantized as ⌊(p−base)·scale⌋ and only the low 10 bits of the result
// participate. A degenerate scale (division by a zero extent upstream)
// therefore still yields a valid, if meaningless, code rather than a
// fault.
//
// Complexity: O(1); the bit spread is a fixed 10-step loop.
package morton
