package poly

import "ff128/field"

// ZPoly builds the vanishing polynomial z(x) = Π(x - x_i) for the given set
// of x-coordinates, incrementally multiplying by one linear factor at a
// time via a right-to-left in-place coefficient update. The result has
// length len(xs)+1.
func ZPoly(f *field.Field, xs []field.Element) *Polynomial {
	k := len(xs)
	root := make([]field.Element, k+1)
	root[0] = f.One()
	for i, x := range xs {
		for j := i + 1; j >= 0; j-- {
			if j > 0 {
				root[j] = f.Sub(root[j-1], f.Mul(x, root[j]))
			} else {
				root[j] = f.Neg(f.Mul(x, root[j]))
			}
		}
	}
	return FromCoeffs(f, root)
}
