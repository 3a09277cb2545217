package poly

import (
	"ff128/array"
	"ff128/ferr"
	"ff128/field"
)

// otherThreeOf4 returns the three indices in {0,1,2,3} other than k.
func otherThreeOf4(k int) [3]int {
	var out [3]int
	n := 0
	for i := 0; i < 4; i++ {
		if i != k {
			out[n] = i
			n++
		}
	}
	return out
}

// InterpolateQuarticBatch interpolates many independent 4-point rows in one
// pass, funneling every denominator through a single Montgomery batch
// inversion. Each xSets[r]/ySets[r] must have length 4. For point k of row r
// it builds eq_k(x) = Π_{j!=k}(x - xs[j]) in expanded cubic form from
// precomputed pairwise products, evaluates it at xs[k] to get that point's
// denominator, and — after every row's four denominators have been
// collected — inverts the whole 4*batch-length vector at once.
func InterpolateQuarticBatch(f *field.Field, xSets, ySets [][]field.Element) ([]*Polynomial, error) {
	batch := len(xSets)
	if len(ySets) != batch {
		return nil, ferr.Wrap(ferr.ErrDimensionMismatch, "InterpolateQuarticBatch: %d x-rows vs %d y-rows", batch, len(ySets))
	}
	eqRows := make([][4]*Polynomial, batch)
	denoms := make([]field.Element, 0, batch*4)

	for r := 0; r < batch; r++ {
		xs, ys := xSets[r], ySets[r]
		if len(xs) != 4 || len(ys) != 4 {
			return nil, ferr.Wrap(ferr.ErrDimensionMismatch, "InterpolateQuarticBatch: row %d must have exactly 4 points", r)
		}
		var eqs [4]*Polynomial
		for k := 0; k < 4; k++ {
			idx := otherThreeOf4(k)
			a, b, c := xs[idx[0]], xs[idx[1]], xs[idx[2]]
			ab, ac, bc := f.Mul(a, b), f.Mul(a, c), f.Mul(b, c)
			abc := f.Mul(ab, c)
			sumOthers := f.Add(a, f.Add(b, c))
			eq := FromCoeffs(f, []field.Element{
				f.Neg(abc),
				f.Add(ab, f.Add(ac, bc)),
				f.Neg(sumOthers),
				f.One(),
			})
			eqs[k] = eq
			denoms = append(denoms, EvalPolyAt(eq, xs[k]))
		}
		eqRows[r] = eqs
	}

	invDenoms := array.InvVectorElements(array.VectorFromElements(f, denoms))

	results := make([]*Polynomial, batch)
	for r := 0; r < batch; r++ {
		ys := ySets[r]
		acc := New(f, 4)
		for k := 0; k < 4; k++ {
			weight := f.Mul(ys[k], invDenoms.Get(r*4+k))
			acc = AddPolys(acc, scalePoly(eqRows[r][k], weight))
		}
		results[r] = acc
	}
	return results, nil
}
