package array

import (
	"math/big"
	"math/rand"
	"testing"

	"ff128/field"
	"ff128/wideint"
)

func testPrime() wideint.U128 {
	p := new(big.Int).Lsh(big.NewInt(1), 128)
	p.Sub(p, big.NewInt(159))
	return wideint.FromBig(p)
}

func mustField(t *testing.T) *field.Field {
	t.Helper()
	f, err := field.New(testPrime(), field.Config{})
	if err != nil {
		t.Fatalf("field.New: %v", err)
	}
	return f
}

func TestScalarMultiplyConcreteScenario(t *testing.T) {
	f := mustField(t)
	v := VectorFromElements(f, []field.Element{
		wideint.U128{Lo: 1}, wideint.U128{Lo: 2}, wideint.U128{Lo: 3}, wideint.U128{Lo: 4},
	})
	out := MulVectorScalar(v, wideint.U128{Lo: 5})
	want := []uint64{5, 10, 15, 20}
	for i, w := range want {
		if got := out.Get(i); got.Lo != w || got.Hi != 0 {
			t.Fatalf("out[%d] = %s, want %d", i, got.ToBig(), w)
		}
	}
}

func TestPowerSeriesConcreteScenario(t *testing.T) {
	f := mustField(t)
	out := GetPowerSeries(f, wideint.U128{Lo: 3}, 5)
	want := []uint64{1, 3, 9, 27, 81}
	for i, w := range want {
		if got := out.Get(i); got.Lo != w || got.Hi != 0 {
			t.Fatalf("out[%d] = %s, want %d", i, got.ToBig(), w)
		}
	}
}

func TestAddVectorElementsLengthZero(t *testing.T) {
	f := mustField(t)
	a := NewVector(f, 0)
	b := NewVector(f, 0)
	out, err := AddVectorElements(a, b)
	if err != nil || out.Length() != 0 {
		t.Fatalf("AddVectorElements on length 0: out=%v err=%v", out, err)
	}
}

func TestInvVectorElementsRoundTripAndZero(t *testing.T) {
	f := mustField(t)
	r := rand.New(rand.NewSource(7))
	elems := make([]field.Element, 10)
	for i := range elems {
		if i == 3 {
			elems[i] = f.Zero()
			continue
		}
		elems[i] = f.Reduce(wideint.U128{Lo: r.Uint64(), Hi: r.Uint64()})
	}
	v := VectorFromElements(f, elems)
	inv := InvVectorElements(v)
	back := InvVectorElements(inv)
	for i := range elems {
		if back.Get(i) != f.Reduce(elems[i]) {
			t.Fatalf("batch-inverse round trip failed at %d", i)
		}
		if i == 3 && !inv.Get(i).IsZero() {
			t.Fatalf("inv(0) should remain 0")
		}
	}
}

func TestMatMulAssociativity(t *testing.T) {
	f := mustField(t)
	r := rand.New(rand.NewSource(8))
	randMat := func(rows, cols int) *Matrix {
		elems := make([]field.Element, rows*cols)
		for i := range elems {
			elems[i] = f.Reduce(wideint.U128{Lo: r.Uint64(), Hi: r.Uint64()})
		}
		return MatrixFromElements(f, rows, cols, elems)
	}
	a := randMat(3, 4)
	b := randMat(4, 2)
	c := randMat(2, 5)

	ab, err := MatMul(a, b)
	if err != nil {
		t.Fatal(err)
	}
	abc1, err := MatMul(ab, c)
	if err != nil {
		t.Fatal(err)
	}
	bc, err := MatMul(b, c)
	if err != nil {
		t.Fatal(err)
	}
	abc2, err := MatMul(a, bc)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < abc1.RowCount(); i++ {
		for j := 0; j < abc1.ColCount(); j++ {
			if abc1.Get(i, j) != abc2.Get(i, j) {
				t.Fatalf("(AB)C != A(BC) at (%d,%d)", i, j)
			}
		}
	}
}

func TestSetValueOutOfRange(t *testing.T) {
	f := mustField(t)
	v := NewVector(f, 1)
	tooBig := new(big.Int).Lsh(big.NewInt(1), 128)
	if err := v.SetValue(0, tooBig); err == nil {
		t.Fatalf("SetValue(2^128) should fail")
	}
	maxVal := new(big.Int).Sub(tooBig, big.NewInt(1))
	if err := v.SetValue(0, maxVal); err != nil {
		t.Fatalf("SetValue(2^128-1) should succeed: %v", err)
	}
}

func TestCombineVectors(t *testing.T) {
	f := mustField(t)
	a := VectorFromElements(f, []field.Element{wideint.U128{Lo: 1}, wideint.U128{Lo: 2}, wideint.U128{Lo: 3}})
	b := VectorFromElements(f, []field.Element{wideint.U128{Lo: 4}, wideint.U128{Lo: 5}, wideint.U128{Lo: 6}})
	got, err := CombineVectors(a, b)
	if err != nil {
		t.Fatal(err)
	}
	// 1*4 + 2*5 + 3*6 = 32
	if got.Lo != 32 || got.Hi != 0 {
		t.Fatalf("CombineVectors = %s, want 32", got.ToBig())
	}
}
