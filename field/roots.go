package field

import (
	"math/big"

	"ff128/ferr"
)

// isPowerOfTwo reports whether n is a nonzero power of two.
func isPowerOfTwo(n uint64) bool {
	return n != 0 && n&(n-1) == 0
}

// GetRootOfUnity returns a primitive order-th root of unity: the first
// integer candidate g = i (i = 2, 3, ...) such that raising i to the power
// (p-1)/order yields a value whose own order-th power is 1 but whose
// (order/2)-th power is not. order must be a power of two; order == 1
// trivially returns 1 and order == 2 returns p-1.
func (f *Field) GetRootOfUnity(order uint64) (Element, error) {
	if !isPowerOfTwo(order) {
		ferr.Panic(ferr.ErrInvalidDomain, "GetRootOfUnity: order %d is not a power of two", order)
	}
	if order == 1 {
		return f.One(), nil
	}
	pMinus1 := new(big.Int).Sub(f.modulus.ToBig(), big.NewInt(1))
	orderBig := new(big.Int).SetUint64(order)
	exp, rem := new(big.Int).QuoRem(pMinus1, orderBig, new(big.Int))
	if rem.Sign() != 0 {
		return Element{}, ferr.Wrap(ferr.ErrNotFound, "GetRootOfUnity: order %d does not divide p-1", order)
	}
	halfOrder := order / 2
	const maxCandidate = 1 << 24
	for i := uint64(2); i < maxCandidate; i++ {
		g, err := f.Exp(f.Reduce(elementFromUint64(i)), exp)
		if err != nil {
			continue
		}
		if !f.Equal(f.ExpUint64(g, order), f.One()) {
			continue
		}
		if halfOrder > 0 && f.Equal(f.ExpUint64(g, halfOrder), f.One()) {
			continue
		}
		return g, nil
	}
	return Element{}, ferr.Wrap(ferr.ErrNotFound, "GetRootOfUnity: exhausted search space for order %d", order)
}

// GetPowerCycle returns [1, omega, omega^2, ...] stopping as soon as the
// next power would repeat 1.
func (f *Field) GetPowerCycle(omega Element) []Element {
	out := []Element{f.One()}
	cur := f.Reduce(omega)
	for !f.Equal(cur, f.One()) {
		out = append(out, cur)
		cur = f.Mul(cur, omega)
	}
	return out
}

func elementFromUint64(x uint64) Element {
	return Element{Lo: x}
}
