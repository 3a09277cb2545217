package array

import (
	"ff128/ferr"
	"ff128/field"
)

// CombineVectors returns the linear combination sum(a[i]*b[i]) mod p.
// Equal length is required.
func CombineVectors(a, b *Vector) (field.Element, error) {
	if a.n != b.n {
		return field.Element{}, ferr.Wrap(ferr.ErrDimensionMismatch, "CombineVectors: length %d != %d", a.n, b.n)
	}
	f := a.f
	acc := f.Zero()
	for i := 0; i < a.n; i++ {
		acc = f.Add(acc, f.Mul(a.Get(i), b.Get(i)))
	}
	return acc, nil
}
