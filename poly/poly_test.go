package poly

import (
	"math/big"
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

func elemsFromInts(f *field.Field, vals ...int64) []field.Element {
	out := make([]field.Element, len(vals))
	for i, v := range vals {
		out[i] = f.Reduce(wideint.FromBig(new(big.Int).Mod(big.NewInt(v), f.Modulus().ToBig())))
	}
	return out
}

func TestEvalPolyAtConcrete(t *testing.T) {
	f := mustField(t)
	// p(x) = 1 + 2x + 3x^2, p(5) = 1 + 10 + 75 = 86.
	p := FromCoeffs(f, elemsFromInts(f, 1, 2, 3))
	got := EvalPolyAt(p, elemsFromInts(f, 5)[0])
	want := elemsFromInts(f, 86)[0]
	if got != want {
		t.Fatalf("EvalPolyAt = %s, want %s", got.ToBig(), want.ToBig())
	}
}

func TestAddSubMulPolys(t *testing.T) {
	f := mustField(t)
	a := FromCoeffs(f, elemsFromInts(f, 1, 2, 3))
	b := FromCoeffs(f, elemsFromInts(f, 4, 5))
	sum := AddPolys(a, b)
	if Degree(sum) != 2 {
		t.Fatalf("AddPolys degree = %d, want 2", Degree(sum))
	}
	x := elemsFromInts(f, 7)[0]
	got := EvalPolyAt(sum, x)
	want := f.Add(EvalPolyAt(a, x), EvalPolyAt(b, x))
	if got != want {
		t.Fatalf("AddPolys eval mismatch")
	}

	prod := MulPolys(a, b)
	if prod.Length() != a.Length()+b.Length()-1 {
		t.Fatalf("MulPolys length = %d, want %d", prod.Length(), a.Length()+b.Length()-1)
	}
	gotMul := EvalPolyAt(prod, x)
	wantMul := f.Mul(EvalPolyAt(a, x), EvalPolyAt(b, x))
	if gotMul != wantMul {
		t.Fatalf("MulPolys eval mismatch")
	}
}

func TestDivPolysIdentity(t *testing.T) {
	f := mustField(t)
	a := FromCoeffs(f, elemsFromInts(f, -6, 11, -6, 1)) // (x-1)(x-2)(x-3)
	b := FromCoeffs(f, elemsFromInts(f, -1, 1))          // x-1
	q, err := DivPolys(a, b)
	if err != nil {
		t.Fatalf("DivPolys: %v", err)
	}
	// q should equal x^2 - 5x + 6; since the division is exact, q*b must
	// reproduce a coefficient by coefficient.
	prod := MulPolys(q, b)
	n := a.Length()
	if prod.Length() < n {
		t.Fatalf("reconstructed product too short: %d < %d", prod.Length(), n)
	}
	for i := 0; i < n; i++ {
		if prod.Get(i) != a.Get(i) {
			t.Fatalf("mulPolys(divPolys(a,b),b)[%d] = %s, want %s", i, prod.Get(i).ToBig(), a.Get(i).ToBig())
		}
	}
	for i := n; i < prod.Length(); i++ {
		if !prod.Get(i).IsZero() {
			t.Fatalf("reconstructed product has spurious nonzero coefficient at %d", i)
		}
	}
}

func TestDivPolysRejectsZeroDivisor(t *testing.T) {
	f := mustField(t)
	a := FromCoeffs(f, elemsFromInts(f, 1, 2, 3))
	zero := New(f, 2)
	if _, err := DivPolys(a, zero); err == nil {
		t.Fatalf("DivPolys with zero divisor should fail")
	}
}

func TestZPolyRoots(t *testing.T) {
	f := mustField(t)
	xs := elemsFromInts(f, 2, 3, 5)
	z := ZPoly(f, xs)
	if z.Length() != len(xs)+1 {
		t.Fatalf("ZPoly length = %d, want %d", z.Length(), len(xs)+1)
	}
	for _, x := range xs {
		if got := EvalPolyAt(z, x); !got.IsZero() {
			t.Fatalf("ZPoly(%s) = %s, want 0", x.ToBig(), got.ToBig())
		}
	}
}

func TestInterpolateConcreteScenario(t *testing.T) {
	f := mustField(t)
	xs := elemsFromInts(f, 2, 3, 5)
	ys := elemsFromInts(f, 4, 9, 25) // y = x^2
	p, err := Interpolate(f, xs, ys)
	if err != nil {
		t.Fatalf("Interpolate: %v", err)
	}
	want := elemsFromInts(f, 0, 0, 1)
	if p.Length() != len(want) {
		t.Fatalf("Interpolate length = %d, want %d", p.Length(), len(want))
	}
	for i, w := range want {
		if p.Get(i) != w {
			t.Fatalf("Interpolate coeff[%d] = %s, want %s", i, p.Get(i).ToBig(), w.ToBig())
		}
	}
}

func TestInterpolateEmpty(t *testing.T) {
	f := mustField(t)
	p, err := Interpolate(f, nil, nil)
	if err != nil {
		t.Fatalf("Interpolate: %v", err)
	}
	if p.Length() != 0 {
		t.Fatalf("Interpolate(nil,nil) length = %d, want 0", p.Length())
	}
}

func TestFFTRoundTripConcreteScenario(t *testing.T) {
	f := mustField(t)
	omega, err := f.GetRootOfUnity(4)
	if err != nil {
		t.Fatalf("GetRootOfUnity(4): %v", err)
	}
	roots := f.GetPowerCycle(omega)
	if len(roots) != 4 {
		t.Fatalf("GetPowerCycle length = %d, want 4", len(roots))
	}
	p := FromCoeffs(f, elemsFromInts(f, 1, 2, 3, 4))
	evals, err := EvalPolyAtRoots(p, roots)
	if err != nil {
		t.Fatalf("EvalPolyAtRoots: %v", err)
	}
	back, err := InterpolateRoots(f, roots, evals.ToValues())
	if err != nil {
		t.Fatalf("InterpolateRoots: %v", err)
	}
	for i := 0; i < p.Length(); i++ {
		if back.Get(i) != p.Get(i) {
			t.Fatalf("round-trip coeff[%d] = %s, want %s", i, back.Get(i).ToBig(), p.Get(i).ToBig())
		}
	}
}

func TestFFTLengthOneIsIdentity(t *testing.T) {
	f := mustField(t)
	omega, err := f.GetRootOfUnity(1)
	if err != nil {
		t.Fatalf("GetRootOfUnity(1): %v", err)
	}
	roots := f.GetPowerCycle(omega)
	p := FromCoeffs(f, elemsFromInts(f, 42))
	evals, err := EvalPolyAtRoots(p, roots)
	if err != nil {
		t.Fatalf("EvalPolyAtRoots: %v", err)
	}
	if evals.Length() != 1 || evals.Get(0) != p.Get(0) {
		t.Fatalf("length-1 domain must return input unchanged")
	}
}

func TestInterpolateQuarticBatchMatchesInterpolate(t *testing.T) {
	f := mustField(t)
	xSets := [][]field.Element{
		elemsFromInts(f, 1, 2, 3, 4),
		elemsFromInts(f, 10, 20, 30, 40),
	}
	ySets := [][]field.Element{
		elemsFromInts(f, 1, 8, 27, 64), // y = x^3
		elemsFromInts(f, 7, 7, 7, 7),   // constant
	}
	got, err := InterpolateQuarticBatch(f, xSets, ySets)
	if err != nil {
		t.Fatalf("InterpolateQuarticBatch: %v", err)
	}
	if len(got) != len(xSets) {
		t.Fatalf("got %d rows, want %d", len(got), len(xSets))
	}
	for r := range xSets {
		want, err := Interpolate(f, xSets[r], ySets[r])
		if err != nil {
			t.Fatalf("Interpolate row %d: %v", r, err)
		}
		for i := 0; i < 4; i++ {
			var wi field.Element
			if i < want.Length() {
				wi = want.Get(i)
			}
			if got[r].Get(i) != wi {
				t.Fatalf("row %d coeff[%d] = %s, want %s", r, i, got[r].Get(i).ToBig(), wi.ToBig())
			}
		}
	}
}

func TestInterpolateQuarticBatchRejectsShortRow(t *testing.T) {
	f := mustField(t)
	xSets := [][]field.Element{elemsFromInts(f, 1, 2, 3)}
	ySets := [][]field.Element{elemsFromInts(f, 1, 2, 3, 4)}
	if _, err := InterpolateQuarticBatch(f, xSets, ySets); err == nil {
		t.Fatalf("expected dimension mismatch error")
	}
}
