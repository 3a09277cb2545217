package poly

import "ff128/field"

// EvalPolyAt evaluates p at x via Horner's rule, low-to-high coefficient.
// Lengths 0-5 are special-cased to skip loop overhead on the hottest path
// (Lagrange's per-point denominators, the quartic batch's cubic evaluations); all
// lengths produce the same result as the general loop.
func EvalPolyAt(p *Polynomial, x field.Element) field.Element {
	f := p.Field()
	n := p.Length()
	switch n {
	case 0:
		return f.Zero()
	case 1:
		return p.Get(0)
	case 2:
		return f.Add(p.Get(0), f.Mul(p.Get(1), x))
	case 3:
		return f.Add(p.Get(0), f.Mul(x, f.Add(p.Get(1), f.Mul(p.Get(2), x))))
	case 4:
		return f.Add(p.Get(0), f.Mul(x, f.Add(p.Get(1), f.Mul(x, f.Add(p.Get(2), f.Mul(p.Get(3), x))))))
	case 5:
		return f.Add(p.Get(0), f.Mul(x, f.Add(p.Get(1), f.Mul(x, f.Add(p.Get(2), f.Mul(x, f.Add(p.Get(3), f.Mul(p.Get(4), x))))))))
	default:
		acc := f.Zero()
		for i := n - 1; i >= 0; i-- {
			acc = f.Add(f.Mul(acc, x), p.Get(i))
		}
		return acc
	}
}

// EvalPolyAtBatch evaluates p at every point in xs.
func EvalPolyAtBatch(p *Polynomial, xs []field.Element) []field.Element {
	out := make([]field.Element, len(xs))
	for i, x := range xs {
		out[i] = EvalPolyAt(p, x)
	}
	return out
}
