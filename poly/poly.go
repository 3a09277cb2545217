// Package poly implements L3 of ff128: dense polynomial arithmetic over a
// field.Field, stored reverse-coefficient (index i holds the coefficient of
// x^i), radix-2 FFT evaluation and interpolation at roots of unity, generic
// Lagrange interpolation, a quartic batch interpolator, and vanishing
// ("zero") polynomial construction. A Polynomial is structurally identical
// to an array.Vector — this package never needs a distinct representation,
// just polynomial-shaped operations over one.
package poly

import (
	"ff128/array"
	"ff128/field"
)

// Polynomial is reverse-coefficient form: index i holds the coefficient of
// x^i. It is exactly an array.Vector; keeping them the same type means every
// array bulk operation (elementwise add, batch inverse, ...) is already
// available on polynomials for free.
type Polynomial = array.Vector

// New allocates a fresh, zero-filled polynomial with the given number of
// coefficient slots.
func New(f *field.Field, numCoeffs int) *Polynomial {
	return array.NewVector(f, numCoeffs)
}

// FromCoeffs materializes a polynomial from its coefficients, index 0 first.
func FromCoeffs(f *field.Field, coeffs []field.Element) *Polynomial {
	return array.VectorFromElements(f, coeffs)
}

// LastNonZeroIndex returns the highest index with a nonzero coefficient, or
// -1 for the all-zero polynomial.
func LastNonZeroIndex(p *Polynomial) int {
	for i := p.Length() - 1; i >= 0; i-- {
		if !p.Get(i).IsZero() {
			return i
		}
	}
	return -1
}

// Degree returns LastNonZeroIndex(p); -1 for the zero polynomial.
func Degree(p *Polynomial) int { return LastNonZeroIndex(p) }

// Trim returns a copy truncated to length LastNonZeroIndex(p)+1 (at least
// length 1, holding the single coefficient 0 for the zero polynomial).
func Trim(p *Polynomial) *Polynomial {
	last := LastNonZeroIndex(p)
	n := last + 1
	if n == 0 {
		n = 1
	}
	f := p.Field()
	out := array.NewVector(f, n)
	for i := 0; i < n && i < p.Length(); i++ {
		out.SetElement(i, p.Get(i))
	}
	return out
}
