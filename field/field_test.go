package field

import (
	"errors"
	"math/big"
	"math/rand"
	"testing"

	"ff128/ferr"
	"ff128/wideint"
)

// testPrime is 2^128 - 159, a concrete 128-bit prime used throughout these
// tests.
func testPrime() wideint.U128 {
	p := new(big.Int).Lsh(big.NewInt(1), 128)
	p.Sub(p, big.NewInt(159))
	return wideint.FromBig(p)
}

func mustField(t *testing.T) *Field {
	t.Helper()
	f, err := New(testPrime(), Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return f
}

func randElem(t *testing.T, f *Field, r *rand.Rand) Element {
	t.Helper()
	return f.Reduce(wideint.U128{Lo: r.Uint64(), Hi: r.Uint64()})
}

func TestAdditiveGroup(t *testing.T) {
	f := mustField(t)
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		x := randElem(t, f, r)
		if f.Add(x, f.Neg(x)) != f.Zero() {
			t.Fatalf("add(x, neg(x)) != 0 for x=%s", x.ToBig())
		}
		if f.Add(x, f.Zero()) != x {
			t.Fatalf("add(x,0) != x")
		}
		y, z := randElem(t, f, r), randElem(t, f, r)
		lhs := f.Add(f.Add(x, y), z)
		rhs := f.Add(x, f.Add(y, z))
		if lhs != rhs {
			t.Fatalf("addition not associative")
		}
	}
}

func TestMultiplicativeGroup(t *testing.T) {
	f := mustField(t)
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 500; i++ {
		x := randElem(t, f, r)
		if x.IsZero() {
			continue
		}
		if f.Mul(x, f.Inv(x)) != f.One() {
			t.Fatalf("mul(x,inv(x)) != 1 for x=%s", x.ToBig())
		}
		if f.Mul(x, f.One()) != x {
			t.Fatalf("mul(x,1) != x")
		}
	}
	if f.Inv(f.Zero()) != f.Zero() {
		t.Fatalf("inv(0) != 0")
	}
}

func TestDistributivity(t *testing.T) {
	f := mustField(t)
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		x, y, z := randElem(t, f, r), randElem(t, f, r), randElem(t, f, r)
		lhs := f.Mul(x, f.Add(y, z))
		rhs := f.Add(f.Mul(x, y), f.Mul(x, z))
		if lhs != rhs {
			t.Fatalf("distributivity failed")
		}
	}
}

func TestExpLaws(t *testing.T) {
	f := mustField(t)
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 100; i++ {
		x := randElem(t, f, r)
		if x.IsZero() {
			continue
		}
		a := big.NewInt(int64(r.Intn(50)))
		b := big.NewInt(int64(r.Intn(50)))
		xa, _ := f.Exp(x, a)
		xb, _ := f.Exp(x, b)
		ab := new(big.Int).Add(a, b)
		xab, _ := f.Exp(x, ab)
		if f.Mul(xa, xb) != xab {
			t.Fatalf("exp(x,a+b) != exp(x,a)*exp(x,b)")
		}
	}
	// Fermat: x^(p-1) = 1 for x != 0.
	x := randElem(t, f, r)
	for x.IsZero() {
		x = randElem(t, f, r)
	}
	pMinus1 := new(big.Int).Sub(f.Modulus().ToBig(), big.NewInt(1))
	got, _ := f.Exp(x, pMinus1)
	if got != f.One() {
		t.Fatalf("Fermat failed: x^(p-1) = %s, want 1", got.ToBig())
	}
}

func TestExpZeroZeroFails(t *testing.T) {
	f := mustField(t)
	_, err := f.Exp(f.Zero(), big.NewInt(0))
	if !errors.Is(err, ferr.ErrInvalidArgument) {
		t.Fatalf("exp(0,0) error = %v, want ErrInvalidArgument", err)
	}
}

func TestConcreteScenarios(t *testing.T) {
	f := mustField(t)
	p := f.Modulus()
	one := f.One()

	// 1. add(p-1, 1) = 0; sub(0, 1) = p - 1.
	pMinus1, _ := wideint.Sub128(p, one)
	if f.Add(pMinus1, one) != f.Zero() {
		t.Fatalf("add(p-1,1) != 0")
	}
	if f.Sub(f.Zero(), one) != pMinus1 {
		t.Fatalf("sub(0,1) != p-1")
	}

	// 3. inv(2) * 2 mod p = 1.
	two := wideint.U128{Lo: 2}
	if f.Mul(f.Inv(two), two) != one {
		t.Fatalf("inv(2)*2 != 1")
	}
}

func TestGetRootOfUnityBoundaries(t *testing.T) {
	f := mustField(t)
	r1, err := f.GetRootOfUnity(1)
	if err != nil || r1 != f.One() {
		t.Fatalf("GetRootOfUnity(1) = %v, %v; want 1, nil", r1, err)
	}
	r2, err := f.GetRootOfUnity(2)
	if err != nil {
		t.Fatalf("GetRootOfUnity(2): %v", err)
	}
	pMinus1, _ := wideint.Sub128(f.Modulus(), f.One())
	if r2 != pMinus1 {
		t.Fatalf("GetRootOfUnity(2) = %s, want p-1 = %s", r2.ToBig(), pMinus1.ToBig())
	}
}

func TestPrngDeterministic(t *testing.T) {
	f := mustField(t)
	a := f.Prng([]byte("seed"))
	b := f.Prng([]byte("seed"))
	if a != b {
		t.Fatalf("Prng not deterministic")
	}
	vec, err := f.PrngVector([]byte("seed"), 4)
	if err != nil {
		t.Fatalf("PrngVector: %v", err)
	}
	if len(vec) != 4 || vec[0] != a {
		t.Fatalf("PrngVector[0] should equal Prng(seed)")
	}
	if _, err := f.PrngVector([]byte("seed"), -1); !errors.Is(err, ferr.ErrInvalidArgument) {
		t.Fatalf("PrngVector(-1) error = %v, want ErrInvalidArgument", err)
	}
}
