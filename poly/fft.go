package poly

import (
	"ff128/array"
	"ff128/ferr"
	"ff128/field"
)

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// fftRecursive implements the decimation-in-time recursion: at each level,
// step = 1<<depth and resultLength = n/step. The base case at
// resultLength==4 computes the 4-point DFT directly via the index
// arithmetic (i*k mod 4)*step; everything above that recurses on the even
// and odd halves (same offset / offset+step, depth+1) and combines with a
// twiddle multiply. resultLength 1 and 2 are additional trivial base cases
// for domains smaller than 4 — a length-1 domain returns its input
// unchanged.
func fftRecursive(values, roots []field.Element, depth, offset int, f *field.Field) []field.Element {
	n := len(values)
	step := 1 << depth
	resultLength := n / step

	switch resultLength {
	case 1:
		return []field.Element{values[offset]}
	case 2:
		v0, v1 := values[offset], values[offset+step]
		return []field.Element{f.Add(v0, v1), f.Sub(v0, v1)}
	case 4:
		out := make([]field.Element, 4)
		for i := 0; i < 4; i++ {
			acc := f.Zero()
			for k := 0; k < 4; k++ {
				rootIdx := ((i * k) % 4) * step
				acc = f.Add(acc, f.Mul(values[offset+k*step], roots[rootIdx]))
			}
			out[i] = acc
		}
		return out
	}

	even := fftRecursive(values, roots, depth+1, offset, f)
	odd := fftRecursive(values, roots, depth+1, offset+step, f)
	half := resultLength / 2
	out := make([]field.Element, resultLength)
	for i := 0; i < half; i++ {
		twiddled := f.Mul(odd[i], roots[i*step])
		out[i] = f.Add(even[i], twiddled)
		out[i+half] = f.Sub(even[i], twiddled)
	}
	return out
}

// EvalPolyAtRoots evaluates p at every point of the power cycle roots (as
// produced by field.Field.GetPowerCycle), zero-padding p up to len(roots)
// first if it is shorter. len(roots) must be a power of two, and p must not
// be longer than it; both violations panic as an invalid domain.
func EvalPolyAtRoots(p *Polynomial, roots []field.Element) (*array.Vector, error) {
	n := len(roots)
	if !isPowerOfTwo(n) {
		ferr.Panic(ferr.ErrInvalidDomain, "EvalPolyAtRoots: domain length %d is not a power of two", n)
	}
	if p.Length() > n {
		ferr.Panic(ferr.ErrInvalidDomain, "EvalPolyAtRoots: polynomial length %d exceeds domain length %d", p.Length(), n)
	}
	f := p.Field()
	values := make([]field.Element, n)
	for i := 0; i < p.Length(); i++ {
		values[i] = p.Get(i)
	}
	for i := p.Length(); i < n; i++ {
		values[i] = f.Zero()
	}
	out := fftRecursive(values, roots, 0, 0, f)
	return array.VectorFromElements(f, out), nil
}
