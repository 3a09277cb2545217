package array

import (
	"ff128/ferr"
	"ff128/field"
	"ff128/measure"
)

// binOp is any of the field's binary operations, shared by both the
// vector-vector and vector-scalar broadcast forms below.
type binOp func(f *field.Field, x, y field.Element) field.Element

func addOp(f *field.Field, x, y field.Element) field.Element { return f.Add(x, y) }
func subOp(f *field.Field, x, y field.Element) field.Element { return f.Sub(x, y) }
func mulOp(f *field.Field, x, y field.Element) field.Element { return f.Mul(x, y) }
func divOp(f *field.Field, x, y field.Element) field.Element { return f.Div(x, y) }

// elementwiseVV applies op lane-by-lane between two equal-length vectors.
func elementwiseVV(a, b *Vector, op binOp) (*Vector, error) {
	if a.n != b.n {
		return nil, ferr.Wrap(ferr.ErrDimensionMismatch, "elementwise: length %d != %d", a.n, b.n)
	}
	f := a.f
	out := NewVector(f, a.n)
	for i := 0; i < a.n; i++ {
		out.set(i, op(f, a.Get(i), b.Get(i)))
	}
	measure.Global.Add("array/elementwise_vv", int64(a.n))
	return out, nil
}

// elementwiseVS broadcasts the scalar s to every lane of a. The off-host
// engine backend (package engine) stages the scalar through a shared scratch
// slot before calling this; this in-process path just passes it directly,
// and both produce the same result.
func elementwiseVS(a *Vector, s field.Element, op binOp) *Vector {
	f := a.f
	out := NewVector(f, a.n)
	for i := 0; i < a.n; i++ {
		out.set(i, op(f, a.Get(i), s))
	}
	measure.Global.Add("array/elementwise_vs", int64(a.n))
	return out
}

// AddVectorElements returns a+b lane-by-lane. Length 0 returns length 0.
func AddVectorElements(a, b *Vector) (*Vector, error) { return elementwiseVV(a, b, addOp) }

// SubVectorElements returns a-b lane-by-lane.
func SubVectorElements(a, b *Vector) (*Vector, error) { return elementwiseVV(a, b, subOp) }

// MulVectorElements returns a*b lane-by-lane.
func MulVectorElements(a, b *Vector) (*Vector, error) { return elementwiseVV(a, b, mulOp) }

// DivVectorElements returns a/b lane-by-lane.
func DivVectorElements(a, b *Vector) (*Vector, error) { return elementwiseVV(a, b, divOp) }

// AddVectorScalar broadcasts scalar addition across every lane of a.
func AddVectorScalar(a *Vector, s field.Element) *Vector { return elementwiseVS(a, s, addOp) }

// SubVectorScalar broadcasts scalar subtraction across every lane of a.
func SubVectorScalar(a *Vector, s field.Element) *Vector { return elementwiseVS(a, s, subOp) }

// MulVectorScalar broadcasts scalar multiplication across every lane of a.
func MulVectorScalar(a *Vector, s field.Element) *Vector { return elementwiseVS(a, s, mulOp) }

// DivVectorScalar broadcasts scalar division across every lane of a.
func DivVectorScalar(a *Vector, s field.Element) *Vector { return elementwiseVS(a, s, divOp) }
