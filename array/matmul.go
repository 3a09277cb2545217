package array

import (
	"ff128/ferr"
	"ff128/measure"
)

// MatMul returns C = A*B, an n x p matrix, with C[i,j] = sum_k A[i,k]*B[k,j]
// mod p. A.ColCount() must equal B.RowCount().
func MatMul(a, b *Matrix) (*Matrix, error) {
	if a.cols != b.rows {
		return nil, ferr.Wrap(ferr.ErrDimensionMismatch, "MatMul: inner dimensions %d != %d", a.cols, b.rows)
	}
	f := a.f
	n, m, p := a.rows, a.cols, b.cols
	c := NewMatrix(f, n, p)

	// Decode operands once up front; re-decoding A[i,k] p times and B[k,j]
	// n times per inner product would dominate the triple loop otherwise.
	aVals := a.ToValues()
	bVals := b.ToValues()
	for i := 0; i < n; i++ {
		for j := 0; j < p; j++ {
			acc := f.Zero()
			for k := 0; k < m; k++ {
				acc = f.Add(acc, f.Mul(aVals[i*m+k], bVals[k*p+j]))
			}
			c.set(i, j, acc)
		}
	}
	measure.Global.Add("array/matmul_ops", int64(n)*int64(m)*int64(p))
	return c, nil
}

// MatVecMul is the p=1 specialization of MatMul: A (n x m) times a
// length-m vector, returning a length-n vector.
func MatVecMul(a *Matrix, v *Vector) (*Vector, error) {
	if a.cols != v.n {
		return nil, ferr.Wrap(ferr.ErrDimensionMismatch, "MatVecMul: inner dimensions %d != %d", a.cols, v.n)
	}
	b := MatrixFromElements(a.f, v.n, 1, v.ToValues())
	c, err := MatMul(a, b)
	if err != nil {
		return nil, err
	}
	out := NewVector(a.f, c.rows)
	for i := 0; i < c.rows; i++ {
		out.set(i, c.Get(i, 0))
	}
	return out, nil
}
