package bench

import (
	"math/big"
	"testing"

	"ff128/field"
	"ff128/wideint"
)

func benchField(b *testing.B) *field.Field {
	p := new(big.Int).Lsh(big.NewInt(1), 128)
	p.Sub(p, big.NewInt(159))
	f, err := field.New(wideint.FromBig(p), field.Config{})
	if err != nil {
		b.Fatalf("field.New: %v", err)
	}
	return f
}

func BenchmarkFieldAdd(b *testing.B) {
	f := benchField(b)
	x := wideint.U128{Lo: 0xfeedface, Hi: 0x1}
	y := wideint.U128{Lo: 0xdeadbeef, Hi: 0x2}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = f.Add(x, y)
	}
}

func BenchmarkFieldMul(b *testing.B) {
	f := benchField(b)
	x := wideint.U128{Lo: 0xfeedface, Hi: 0x1}
	y := wideint.U128{Lo: 0xdeadbeef, Hi: 0x2}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = f.Mul(x, y)
	}
}

func BenchmarkFieldInv(b *testing.B) {
	f := benchField(b)
	x := wideint.U128{Lo: 0xfeedface, Hi: 0x1}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = f.Inv(x)
		if x.IsZero() {
			x = wideint.U128{Lo: 0xfeedface, Hi: 0x1}
		}
	}
}
