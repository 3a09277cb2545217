// Package array implements L2 of ff128: vector and matrix handles backed by
// a flat, row-major, little-endian byte buffer, plus the elementwise
// bulk-operation engine (add/sub/mul/div in vv and vs form), Montgomery
// batch inversion, power-series generation, linear combination, and dense
// matrix multiply. Every operation that yields a vector or matrix allocates
// fresh storage; operands are never aliased with results.
package array

import (
	"math/big"

	"ff128/ferr"
	"ff128/field"
)

// Vector is an ordered sequence of field elements stored contiguously in a
// byte buffer. Buffer, base offset, and length are exposed so an
// accelerated engine (package engine) can share the same representation
// against an off-host linear memory.
type Vector struct {
	f    *field.Field
	buf  []byte
	base int
	n    int
}

// NewVectorView constructs a Vector aliasing an existing buffer at a given
// element offset, rather than allocating fresh storage — how the off-host
// linear-memory engine (package engine) attaches a handle to a region of
// shared buffer without copying.
func NewVectorView(f *field.Field, buf []byte, base, n int) *Vector {
	return &Vector{f: f, buf: buf, base: base, n: n}
}

// NewVector allocates a fresh, zero-filled length-n vector over f.
func NewVector(f *field.Field, n int) *Vector {
	if n < 0 {
		ferr.Panic(ferr.ErrInvalidArgument, "NewVector: length must be >= 0, got %d", n)
	}
	return &Vector{f: f, buf: make([]byte, n*f.ElementSize()), base: 0, n: n}
}

// VectorFromElements materializes a vector from in-memory elements,
// reducing each one modulo the field's modulus.
func VectorFromElements(f *field.Field, elems []field.Element) *Vector {
	v := NewVector(f, len(elems))
	for i, e := range elems {
		v.set(i, f.Reduce(e))
	}
	return v
}

// Field returns the vector's owning field.
func (v *Vector) Field() *field.Field { return v.f }

// Base returns the element offset into the backing buffer this vector was
// constructed at — used by the off-host engine (package engine) to return
// the region to its allocator on Destroy.
func (v *Vector) Base() int { return v.base }

// Length returns the number of elements.
func (v *Vector) Length() int { return v.n }

// ByteLength returns n * element_size.
func (v *Vector) ByteLength() int { return v.n * v.f.ElementSize() }

// slot returns the byte range backing element i, without bounds checking.
func (v *Vector) slot(i int) []byte {
	sz := v.f.ElementSize()
	off := v.base + i*sz
	return v.buf[off : off+sz]
}

func (v *Vector) checkIndex(i int, op string) {
	if i < 0 || i >= v.n {
		ferr.Panic(ferr.ErrOutOfRange, "%s: index %d out of range [0,%d)", op, i, v.n)
	}
}

// Get returns element i, fully reduced.
func (v *Vector) Get(i int) field.Element {
	v.checkIndex(i, "Vector.Get")
	return v.f.Reduce(decodeElement(v.slot(i)))
}

// set writes a value already known to be < 2^128 without the OUT_OF_RANGE
// checks Get/SetValue perform — the internal fast path every bulk op
// in this package uses once it has already produced a valid field element.
func (v *Vector) set(i int, val field.Element) {
	encodeElement(v.slot(i), val)
}

// SetElement stores an already-valid field.Element directly, reducing it
// modulo p first. Unlike SetValue this never returns an error — it is for
// internal callers (and other ff128 packages) that already hold a genuine
// field.Element rather than an arbitrary-width big.Int from outside.
func (v *Vector) SetElement(i int, val field.Element) {
	v.checkIndex(i, "Vector.SetElement")
	v.set(i, v.f.Reduce(val))
}

// SetValue validates value < 2^128 and stores it as-is, WITHOUT reducing
// modulo p — callers writing raw values are responsible for pre-reducing.
func (v *Vector) SetValue(i int, value *big.Int) error {
	v.checkIndex(i, "Vector.SetValue")
	if value.Sign() < 0 || value.BitLen() > 128 {
		return ferr.Wrap(ferr.ErrOutOfRange, "SetValue: value %s does not fit in 128 bits", value)
	}
	v.set(i, bigToElement(value))
	return nil
}

// ToBytes returns a fresh copy of count elements' worth of bytes starting
// at element index start.
func (v *Vector) ToBytes(start, count int) []byte {
	if start < 0 || count < 0 || start+count > v.n {
		ferr.Panic(ferr.ErrOutOfRange, "Vector.ToBytes: range [%d,%d) out of bounds for length %d", start, start+count, v.n)
	}
	sz := v.f.ElementSize()
	off := v.base + start*sz
	out := make([]byte, count*sz)
	copy(out, v.buf[off:off+count*sz])
	return out
}

// ToValues decodes every element into a fresh slice.
func (v *Vector) ToValues() []field.Element {
	out := make([]field.Element, v.n)
	for i := 0; i < v.n; i++ {
		out[i] = v.Get(i)
	}
	return out
}

// Clone returns a deep copy with freshly allocated backing storage.
func (v *Vector) Clone() *Vector {
	out := NewVector(v.f, v.n)
	copy(out.buf, v.ToBytes(0, v.n))
	return out
}

func bigToElement(x *big.Int) field.Element {
	var buf [16]byte
	b := x.Bytes() // big-endian
	for i, j := 0, len(b)-1; j >= 0 && i < 16; i, j = i+1, j-1 {
		buf[i] = b[j]
	}
	return decodeElement(buf[:])
}
