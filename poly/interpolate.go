package poly

import (
	"ff128/array"
	"ff128/ferr"
	"ff128/field"
)

// InterpolateRoots recovers the coefficients of the polynomial whose
// evaluations at roots are ys — the inverse FFT. roots and ys must have
// equal, power-of-two length. It builds the reversed root
// cycle (reversed[0]=1, reversed[j]=roots[n-j]) and runs the same forward
// FFT recursion on ys against it, then scales every output by inv(n).
func InterpolateRoots(f *field.Field, roots, ys []field.Element) (*array.Vector, error) {
	n := len(roots)
	if len(ys) != n {
		return nil, ferr.Wrap(ferr.ErrDimensionMismatch, "InterpolateRoots: len(roots)=%d != len(ys)=%d", n, len(ys))
	}
	if !isPowerOfTwo(n) {
		ferr.Panic(ferr.ErrInvalidDomain, "InterpolateRoots: domain length %d is not a power of two", n)
	}
	reversed := make([]field.Element, n)
	reversed[0] = f.One()
	for j := 1; j < n; j++ {
		reversed[j] = roots[n-j]
	}
	raw := fftRecursive(ys, reversed, 0, 0, f)
	invN := f.Inv(f.Reduce(intToElement(n)))
	out := make([]field.Element, n)
	for i, v := range raw {
		out[i] = f.Mul(v, invN)
	}
	return array.VectorFromElements(f, out), nil
}

// Interpolate computes the unique minimal-degree polynomial L with
// L(xs[i]) == ys[i] for all i, via generic Lagrange interpolation: build the
// vanishing polynomial of xs, divide out each linear factor to get the
// per-point numerator polynomials, evaluate each numerator at its own point
// to get the denominators, batch-invert all of them in one pass, then
// accumulate the weighted sum.
func Interpolate(f *field.Field, xs, ys []field.Element) (*Polynomial, error) {
	if len(xs) != len(ys) {
		return nil, ferr.Wrap(ferr.ErrDimensionMismatch, "Interpolate: len(xs)=%d != len(ys)=%d", len(xs), len(ys))
	}
	k := len(xs)
	if k == 0 {
		return New(f, 0), nil
	}
	root := ZPoly(f, xs)

	numerators := make([]*Polynomial, k)
	denominators := make([]field.Element, k)
	for i, xi := range xs {
		linear := FromCoeffs(f, []field.Element{f.Neg(xi), f.One()})
		num, err := DivPolys(root, linear)
		if err != nil {
			return nil, err
		}
		numerators[i] = num
		denominators[i] = EvalPolyAt(num, xi)
	}

	denVec := array.VectorFromElements(f, denominators)
	invVec := array.InvVectorElements(denVec)

	result := New(f, k)
	for i := range xs {
		weight := f.Mul(ys[i], invVec.Get(i))
		scaled := scalePoly(numerators[i], weight)
		result = AddPolys(result, scaled)
	}
	return Trim(result), nil
}

func scalePoly(p *Polynomial, s field.Element) *Polynomial {
	f := p.Field()
	out := New(f, p.Length())
	for i := 0; i < p.Length(); i++ {
		out.SetElement(i, f.Mul(p.Get(i), s))
	}
	return out
}

func intToElement(n int) field.Element {
	return field.Element{Lo: uint64(n)}
}
