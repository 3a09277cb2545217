package engine

import (
	"ff128/array"
	"ff128/field"
)

// NativeEngine is the direct in-memory backend: every handle owns its own
// independently allocated Go slice, and Destroy is a no-op since normal Go
// ownership rules reclaim it once nothing references it anymore.
type NativeEngine struct {
	f *field.Field
}

func (e NativeEngine) NewVector(n int) *array.Vector { return array.NewVector(e.f, n) }

func (e NativeEngine) NewMatrix(rows, cols int) *array.Matrix { return array.NewMatrix(e.f, rows, cols) }

func (e NativeEngine) AddVectorElements(a, b *array.Vector) (*array.Vector, error) {
	return array.AddVectorElements(a, b)
}

func (e NativeEngine) SubVectorElements(a, b *array.Vector) (*array.Vector, error) {
	return array.SubVectorElements(a, b)
}

func (e NativeEngine) MulVectorElements(a, b *array.Vector) (*array.Vector, error) {
	return array.MulVectorElements(a, b)
}

func (e NativeEngine) DivVectorElements(a, b *array.Vector) (*array.Vector, error) {
	return array.DivVectorElements(a, b)
}

func (e NativeEngine) AddVectorScalar(a *array.Vector, s field.Element) *array.Vector {
	return array.AddVectorScalar(a, s)
}

func (e NativeEngine) SubVectorScalar(a *array.Vector, s field.Element) *array.Vector {
	return array.SubVectorScalar(a, s)
}

func (e NativeEngine) MulVectorScalar(a *array.Vector, s field.Element) *array.Vector {
	return array.MulVectorScalar(a, s)
}

func (e NativeEngine) DivVectorScalar(a *array.Vector, s field.Element) *array.Vector {
	return array.DivVectorScalar(a, s)
}

func (e NativeEngine) InvVectorElements(v *array.Vector) *array.Vector {
	return array.InvVectorElements(v)
}

func (e NativeEngine) CombineVectors(a, b *array.Vector) (field.Element, error) {
	return array.CombineVectors(a, b)
}

func (e NativeEngine) GetPowerSeries(seed field.Element, n int) *array.Vector {
	return array.GetPowerSeries(e.f, seed, n)
}

func (e NativeEngine) MatMul(a, b *array.Matrix) (*array.Matrix, error) { return array.MatMul(a, b) }

func (e NativeEngine) MatVecMul(a *array.Matrix, v *array.Vector) (*array.Vector, error) {
	return array.MatVecMul(a, v)
}

func (e NativeEngine) Destroy(v *array.Vector)       {}
func (e NativeEngine) DestroyMatrix(m *array.Matrix) {}
