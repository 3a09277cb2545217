// Package wideint implements 128-bit unsigned integer arithmetic on top of
// plain 64-bit machine words, the way the field kernel above it needs: an
// add/sub with carry, a full 128x128->256 product, a 256-mod-128 reduction,
// and an extended-Euclid inverse. Everything here is schoolbook limb
// arithmetic so it stays portable to hosts without a native 128-bit type.
package wideint

import (
	"math/big"
	"math/bits"
)

// U128 is an unsigned 128-bit integer split into two 64-bit limbs.
type U128 struct {
	Lo uint64
	Hi uint64
}

// U256 is an unsigned 256-bit integer, least-significant limb first.
type U256 struct {
	W [4]uint64
}

// Zero128 is the additive identity.
var Zero128 = U128{}

// One128 is the multiplicative identity.
var One128 = U128{Lo: 1}

// FromUint64 widens a machine word to U128.
func FromUint64(x uint64) U128 {
	return U128{Lo: x}
}

// IsZero reports whether x is the zero value.
func (x U128) IsZero() bool {
	return x.Lo == 0 && x.Hi == 0
}

// Cmp returns -1, 0, or +1 as x is less than, equal to, or greater than y.
func Cmp(x, y U128) int {
	if x.Hi != y.Hi {
		if x.Hi < y.Hi {
			return -1
		}
		return 1
	}
	switch {
	case x.Lo < y.Lo:
		return -1
	case x.Lo > y.Lo:
		return 1
	default:
		return 0
	}
}

// Less reports whether x < y.
func Less(x, y U128) bool {
	return Cmp(x, y) < 0
}

// Add128 returns x+y mod 2^128 and the carry-out bit (0 or 1).
func Add128(x, y U128) (sum U128, carry uint64) {
	lo, c0 := bits.Add64(x.Lo, y.Lo, 0)
	hi, c1 := bits.Add64(x.Hi, y.Hi, c0)
	return U128{Lo: lo, Hi: hi}, c1
}

// Sub128 returns x-y mod 2^128 and the borrow-out bit (0 or 1).
func Sub128(x, y U128) (diff U128, borrow uint64) {
	lo, b0 := bits.Sub64(x.Lo, y.Lo, 0)
	hi, b1 := bits.Sub64(x.Hi, y.Hi, b0)
	return U128{Lo: lo, Hi: hi}, b1
}

// shiftLeft1 doubles a U256 in place, returning the bit shifted out the top.
func (x U256) shiftLeft1() (U256, uint64) {
	var out U256
	var carry uint64
	for i := 0; i < 4; i++ {
		out.W[i] = (x.W[i] << 1) | carry
		carry = x.W[i] >> 63
	}
	return out, carry
}

// Mul128 computes the full 256-bit product x*y via schoolbook limb
// multiplication: each of the four 64x64->128 partial products is placed at
// its limb offset and the results are summed with carry propagation.
func Mul128(x, y U128) U256 {
	var w [4]uint64
	addAt := func(idx int, v uint64) {
		for v != 0 && idx < 4 {
			sum, carry := bits.Add64(w[idx], v, 0)
			w[idx] = sum
			v = carry
			idx++
		}
	}
	terms := [4]struct {
		a, b uint64
		off  int
	}{
		{x.Lo, y.Lo, 0},
		{x.Lo, y.Hi, 1},
		{x.Hi, y.Lo, 1},
		{x.Hi, y.Hi, 2},
	}
	for _, t := range terms {
		hi, lo := bits.Mul64(t.a, t.b)
		addAt(t.off, lo)
		addAt(t.off+1, hi)
	}
	return U256{W: w}
}

// Mod256By128 reduces a 256-bit dividend modulo a 128-bit modulus using
// binary long division: shift a 1-bit window of x into a running remainder,
// one quotient bit at a time, subtracting p whenever the remainder allows it.
// This is O(bits) rather than O(limbs) but needs no more than 64-bit words
// and is correct for any p != 0.
func Mod256By128(x U256, p U128) U128 {
	if p.IsZero() {
		panic("wideint: Mod256By128: modulus is zero")
	}
	var rem U128
	cur := x
	for bit := 255; bit >= 0; bit-- {
		var topBit uint64
		cur, topBit = cur.shiftLeft1()
		// Double rem (invariant: rem < p) and bring down the next dividend
		// bit. The result may need a 129th bit, which we track separately
		// rather than widen rem: overflow==1 means rem*2+bit >= 2^128.
		overflow := rem.Hi >> 63
		rem = U128{Lo: (rem.Lo << 1) | topBit, Hi: (rem.Hi << 1) | (rem.Lo >> 63)}
		if overflow == 1 {
			rem, _ = Sub128(rem, p)
		} else if Cmp(rem, p) >= 0 {
			rem, _ = Sub128(rem, p)
		}
	}
	return rem
}

// Mod128 reduces x modulo p. When x < 2p a single conditional subtraction
// suffices; otherwise it falls back to the general 256-bit path.
func Mod128(x, p U128) U128 {
	if Less(x, p) {
		return x
	}
	if diff, _ := Sub128(x, p); Less(diff, p) {
		return diff
	}
	return Mod256By128(U256{W: [4]uint64{x.Lo, x.Hi, 0, 0}}, p)
}

// ToBig converts x to a math/big.Int.
func (x U128) ToBig() *big.Int {
	v := new(big.Int).Lsh(new(big.Int).SetUint64(x.Hi), 64)
	v.Or(v, new(big.Int).SetUint64(x.Lo))
	return v
}

// FromBig reduces a (non-negative) big.Int into U128 truncating to the low
// 128 bits. Callers that need modular reduction first must do so themselves.
func FromBig(v *big.Int) U128 {
	mask := new(big.Int).SetUint64(^uint64(0))
	lo := new(big.Int).And(v, mask).Uint64()
	hi := new(big.Int).And(new(big.Int).Rsh(v, 64), mask).Uint64()
	return U128{Lo: lo, Hi: hi}
}

// ModInv128 returns y in [0,p) with a*y == 1 (mod p), or zero if a == 0
// (mod p). The extended-Euclidean accumulators need more than 128 bits of
// signed range mid-algorithm, so — exactly as the spec's "signed 256-bit
// accumulators" note allows — this delegates the bookkeeping to math/big
// and only touches U128 at the boundary.
func ModInv128(a, p U128) U128 {
	aMod := Mod128(a, p)
	if aMod.IsZero() {
		return Zero128
	}
	aBig := aMod.ToBig()
	pBig := p.ToBig()
	g := new(big.Int)
	x := new(big.Int)
	y := new(big.Int)
	g.GCD(x, y, aBig, pBig)
	if g.Cmp(big.NewInt(1)) != 0 {
		// p is prime and a != 0 mod p, so this should not happen; fail loudly.
		panic("wideint: ModInv128: a and p are not coprime")
	}
	x.Mod(x, pBig)
	if x.Sign() < 0 {
		x.Add(x, pBig)
	}
	return FromBig(x)
}

// Bytes16 encodes x as 16 little-endian bytes (low 64 bits first).
func (x U128) Bytes16() [16]byte {
	var out [16]byte
	for i := 0; i < 8; i++ {
		out[i] = byte(x.Lo >> (8 * i))
		out[8+i] = byte(x.Hi >> (8 * i))
	}
	return out
}

// U128FromBytes16 decodes 16 little-endian bytes into a U128.
func U128FromBytes16(b []byte) U128 {
	if len(b) != 16 {
		panic("wideint: U128FromBytes16: need exactly 16 bytes")
	}
	var lo, hi uint64
	for i := 0; i < 8; i++ {
		lo |= uint64(b[i]) << (8 * i)
		hi |= uint64(b[8+i]) << (8 * i)
	}
	return U128{Lo: lo, Hi: hi}
}
