package array

import (
	"ff128/field"
	"ff128/measure"
)

// GetPowerSeries returns [1, seed, seed^2, ..., seed^(n-1)], computed
// sequentially since the chain cannot be trivially parallelized without
// pow-by-squaring at block boundaries. n == 0 returns an empty vector.
func GetPowerSeries(f *field.Field, seed field.Element, n int) *Vector {
	out := NewVector(f, n)
	if n == 0 {
		return out
	}
	cur := f.One()
	out.set(0, cur)
	for i := 1; i < n; i++ {
		cur = f.Mul(cur, seed)
		out.set(i, cur)
	}
	measure.Global.Add("array/power_series", int64(n))
	return out
}
