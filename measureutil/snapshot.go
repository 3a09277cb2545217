// Package measureutil turns package measure's raw per-counter snapshot into
// the aggregate figures cmd/ffbench reports alongside its op/s table.
package measureutil

import "ff128/measure"

// SnapshotAndReset returns the global measurement map and clears it.
func SnapshotAndReset() map[string]uint64 {
	return measure.Global.SnapshotAndReset()
}

// TotalFieldOps sums every counter in a snapshot. array's elementwise,
// batch-inverse and power-series counters record one unit per output
// element, whatever the operation, and its matmul counter records one unit
// per inner-product term, so the sum is a count of element-level field
// operations for the span the snapshot covers, not an exact count of
// multiplications.
func TotalFieldOps(snapshot map[string]uint64) uint64 {
	var total uint64
	for _, v := range snapshot {
		total += v
	}
	return total
}
