// Package engine implements L4 of ff128: a dispatch facade exposing one
// operation contract, Engine, over two interchangeable backends — an
// in-process NativeEngine and an off-host SharedEngine backed by a single
// growable linear-memory buffer with a mutex-serialized scalar broadcast
// scratch slot. Both must produce bit-identical results; neither performs
// arithmetic itself — every method delegates to package array, which is the
// one place field-level algorithms live.
package engine

import (
	"ff128/array"
	"ff128/field"
)

// Engine is the operation surface the facade dispatches across. Every
// method that yields a vector or matrix allocates fresh storage; no method
// mutates its inputs.
type Engine interface {
	NewVector(n int) *array.Vector
	NewMatrix(rows, cols int) *array.Matrix

	AddVectorElements(a, b *array.Vector) (*array.Vector, error)
	SubVectorElements(a, b *array.Vector) (*array.Vector, error)
	MulVectorElements(a, b *array.Vector) (*array.Vector, error)
	DivVectorElements(a, b *array.Vector) (*array.Vector, error)

	AddVectorScalar(a *array.Vector, s field.Element) *array.Vector
	SubVectorScalar(a *array.Vector, s field.Element) *array.Vector
	MulVectorScalar(a *array.Vector, s field.Element) *array.Vector
	DivVectorScalar(a *array.Vector, s field.Element) *array.Vector

	InvVectorElements(v *array.Vector) *array.Vector
	CombineVectors(a, b *array.Vector) (field.Element, error)
	GetPowerSeries(seed field.Element, n int) *array.Vector

	MatMul(a, b *array.Matrix) (*array.Matrix, error)
	MatVecMul(a *array.Matrix, v *array.Vector) (*array.Vector, error)

	// Destroy reclaims a handle's backing storage. NativeEngine handles need
	// no explicit reclaim (ordinary Go ownership/GC); SharedEngine returns
	// the region to its free list, since it is the one backend that actually
	// owns reclaimable shared storage.
	Destroy(v *array.Vector)
	DestroyMatrix(m *array.Matrix)
}

// New selects NativeEngine or SharedEngine for f at field-construction
// time, based on f.UseAccelerated(). ff128 has exactly one accelerated
// backend and it has no modulus restriction, so the choice reduces to the
// flag alone.
func New(f *field.Field) Engine {
	if f.UseAccelerated() {
		size := f.Config().SharedBufferSize
		if size <= 0 {
			size = 4096
		}
		return NewSharedEngine(f, size)
	}
	return NativeEngine{f: f}
}
