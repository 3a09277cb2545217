package array

import (
	"ff128/field"
	"ff128/measure"
)

// InvVectorElements computes w[i] = inv(v[i]) for every lane using exactly
// one field inversion plus O(n) multiplies — Montgomery batch inversion.
// Zero inputs map to zero output rather than erroring.
func InvVectorElements(v *Vector) *Vector {
	f := v.f
	n := v.n
	out := NewVector(f, n)
	if n == 0 {
		return out
	}

	// Forward pass: pre[0] = 1; pre[i] = pre[i-1] * (v[i-1] or 1 if zero).
	pre := make([]field.Element, n)
	pre[0] = f.One()
	last := f.One()
	for i := 0; i < n; i++ {
		vi := v.Get(i)
		if !vi.IsZero() {
			last = f.Mul(last, vi)
		}
		if i+1 < n {
			pre[i+1] = last
		}
	}

	// Single scalar inverse of the running product.
	k := f.Inv(last)

	// Backward pass: w[i] = v[i]==0 ? 0 : pre[i]*k; then k *= (v[i] or 1).
	for i := n - 1; i >= 0; i-- {
		vi := v.Get(i)
		if vi.IsZero() {
			out.set(i, f.Zero())
			continue
		}
		out.set(i, f.Mul(pre[i], k))
		k = f.Mul(k, vi)
	}
	measure.Global.Add("array/batch_inverse", int64(n))
	return out
}
