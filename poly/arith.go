package poly

import (
	"ff128/ferr"
	"ff128/field"
)

// AddPolys returns a+b coefficient-wise, zero-extending the shorter operand.
func AddPolys(a, b *Polynomial) *Polynomial {
	f := a.Field()
	n := a.Length()
	if b.Length() > n {
		n = b.Length()
	}
	out := New(f, n)
	for i := 0; i < n; i++ {
		var ai, bi field.Element
		if i < a.Length() {
			ai = a.Get(i)
		}
		if i < b.Length() {
			bi = b.Get(i)
		}
		out.SetElement(i, f.Add(ai, bi))
	}
	return out
}

// SubPolys returns a-b coefficient-wise, zero-extending the shorter operand.
func SubPolys(a, b *Polynomial) *Polynomial {
	f := a.Field()
	n := a.Length()
	if b.Length() > n {
		n = b.Length()
	}
	out := New(f, n)
	for i := 0; i < n; i++ {
		var ai, bi field.Element
		if i < a.Length() {
			ai = a.Get(i)
		}
		if i < b.Length() {
			bi = b.Get(i)
		}
		out.SetElement(i, f.Sub(ai, bi))
	}
	return out
}

// MulPolys returns the schoolbook convolution of a and b; result length is
// a.len + b.len - 1. Either operand of length 0 yields a length-0 result.
func MulPolys(a, b *Polynomial) *Polynomial {
	f := a.Field()
	if a.Length() == 0 || b.Length() == 0 {
		return New(f, 0)
	}
	n := a.Length() + b.Length() - 1
	out := New(f, n)
	for i := 0; i < a.Length(); i++ {
		ai := a.Get(i)
		if ai.IsZero() {
			continue
		}
		for j := 0; j < b.Length(); j++ {
			bj := b.Get(j)
			if bj.IsZero() {
				continue
			}
			out.SetElement(i+j, f.Add(out.Get(i+j), f.Mul(ai, bj)))
		}
	}
	return out
}

// DivPolys divides a by b, returning the quotient. Precondition a.len >=
// b.len; an all-zero divisor is rejected explicitly rather than propagating
// undefined behavior through a zero leading-coefficient inverse.
func DivPolys(a, b *Polynomial) (*Polynomial, error) {
	if a.Length() < b.Length() {
		return nil, ferr.Wrap(ferr.ErrInvalidArgument, "DivPolys: dividend length %d < divisor length %d", a.Length(), b.Length())
	}
	f := a.Field()
	bpos := LastNonZeroIndex(b)
	if bpos < 0 {
		return nil, ferr.Wrap(ferr.ErrInvalidArgument, "DivPolys: divisor is the zero polynomial")
	}
	apos := LastNonZeroIndex(a)
	if apos < 0 {
		return New(f, 1), nil
	}
	diff := apos - bpos
	if diff < 0 {
		return New(f, 1), nil
	}

	work := make([]field.Element, apos+1)
	for i := range work {
		work[i] = a.Get(i)
	}
	quotient := make([]field.Element, diff+1)
	invLead := f.Inv(b.Get(bpos))

	for apos >= bpos {
		q := f.Mul(work[apos], invLead)
		quotient[apos-bpos] = q
		if !q.IsZero() {
			for j := 0; j <= bpos; j++ {
				work[apos-bpos+j] = f.Sub(work[apos-bpos+j], f.Mul(b.Get(j), q))
			}
		}
		apos--
	}
	return FromCoeffs(f, quotient), nil
}
