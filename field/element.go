package field

import (
	"math/big"

	"ff128/ferr"
	"ff128/wideint"
)

// Add returns (x+y) mod p: add128 then a conditional subtract if the carry
// fired or the raw sum is already >= p.
func (f *Field) Add(x, y Element) Element {
	sum, carry := wideint.Add128(x, y)
	if carry != 0 {
		diff, _ := wideint.Sub128(sum, f.modulus)
		return diff
	}
	if wideint.Cmp(sum, f.modulus) >= 0 {
		diff, _ := wideint.Sub128(sum, f.modulus)
		return diff
	}
	return sum
}

// Sub returns (x-y) mod p: subtract with borrow, adding p back on borrow.
func (f *Field) Sub(x, y Element) Element {
	diff, borrow := wideint.Sub128(x, y)
	if borrow != 0 {
		sum, _ := wideint.Add128(diff, f.modulus)
		return sum
	}
	return diff
}

// Neg returns (p-x) mod p, i.e. 0 for x == 0.
func (f *Field) Neg(x Element) Element {
	if x.IsZero() {
		return wideint.Zero128
	}
	diff, _ := wideint.Sub128(f.modulus, f.Reduce(x))
	return diff
}

// Mul returns (x*y) mod p via the full 256-bit product and reduction.
func (f *Field) Mul(x, y Element) Element {
	return wideint.Mod256By128(wideint.Mul128(x, y), f.modulus)
}

// Inv returns the multiplicative inverse of x, or 0 if x == 0. Mapping the
// degenerate case to 0 rather than erroring keeps it load-bearing for
// Montgomery batch inversion, where a stray zero must not abort the batch.
func (f *Field) Inv(x Element) Element {
	return wideint.ModInv128(x, f.modulus)
}

// Div returns x * inv(y).
func (f *Field) Div(x, y Element) Element {
	return f.Mul(x, f.Inv(y))
}

// Exp returns b^e mod p via right-to-left square-and-multiply. A negative e
// flips b to its inverse and negates e; 0^0 is undefined and reported as an
// error; 0^e for e>0 is 0; b^0 is 1.
func (f *Field) Exp(b Element, e *big.Int) (Element, error) {
	base := f.Reduce(b)
	exp := e
	if e.Sign() < 0 {
		base = f.Inv(base)
		exp = new(big.Int).Neg(e)
	}
	if exp.Sign() == 0 {
		if base.IsZero() {
			return wideint.Zero128, ferr.Wrap(ferr.ErrInvalidArgument, "exp(0, 0) is undefined")
		}
		return f.One(), nil
	}
	if base.IsZero() {
		return wideint.Zero128, nil
	}
	result := f.One()
	for i := 0; i < exp.BitLen(); i++ {
		if exp.Bit(i) == 1 {
			result = f.Mul(result, base)
		}
		base = f.Mul(base, base)
	}
	return result, nil
}

// ExpUint64 is the common-case fast path for Exp with a non-negative
// machine-word exponent, used internally by root-of-unity search, which
// never needs big.Int's generality.
func (f *Field) ExpUint64(b Element, e uint64) Element {
	base := f.Reduce(b)
	result := f.One()
	for e > 0 {
		if e&1 == 1 {
			result = f.Mul(result, base)
		}
		e >>= 1
		if e > 0 {
			base = f.Mul(base, base)
		}
	}
	return result
}

// Equal reports whether x and y denote the same field element once reduced.
func (f *Field) Equal(x, y Element) bool {
	return f.Reduce(x) == f.Reduce(y)
}

// Bytes encodes x as ElementSize() little-endian bytes: the 16-byte
// low-word-first encoding truncated to the field's configured element width.
func (f *Field) Bytes(x Element) []byte {
	full := x.Bytes16()
	return append([]byte(nil), full[:f.elementSize]...)
}

// SetBytes decodes a little-endian byte slice of length <= 16 into an
// Element, rejecting lengths that cannot represent a value < 2^128.
func (f *Field) SetBytes(b []byte) (Element, error) {
	if len(b) > 16 {
		return wideint.Zero128, ferr.Wrap(ferr.ErrOutOfRange, "encoded value uses %d bytes, max 16", len(b))
	}
	var buf [16]byte
	copy(buf[:], b)
	return wideint.U128FromBytes16(buf[:]), nil
}
