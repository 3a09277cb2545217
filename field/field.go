// Package field implements L1 of ff128: canonical arithmetic on elements of
// GF(p) for a 128-bit prime p, built on the wideint kernel. A Field is
// immutable configuration created once via New and shared read-only by
// every vector, matrix, and polynomial operation built on top of it.
package field

import (
	"fmt"

	"ff128/wideint"
)

// Element is a field element: a wideint.U128 known to be in [0, p) for some
// Field. Operations on a mismatched Field produce undefined results — the
// caller is responsible for only mixing elements from the same Field.
type Element = wideint.U128

// Config is the construction-time option set for a Field.
type Config struct {
	// UseAccelerated selects the SharedMemory-backed engine variant (L4)
	// over the default NativeEngine when true. Package engine reads this
	// to choose a backend; the pure Field arithmetic below is identical
	// either way.
	UseAccelerated bool
	// SharedBufferSize reserves this many bytes of off-host linear memory
	// up front when UseAccelerated is set. Zero selects package engine's
	// default of 4096 bytes; the buffer grows on demand either way.
	SharedBufferSize int
}

// Validate reports configuration errors before New does any real work.
func (c Config) Validate() error {
	if c.SharedBufferSize < 0 {
		return fmt.Errorf("field: SharedBufferSize must be >= 0, got %d", c.SharedBufferSize)
	}
	return nil
}

// Field is an immutable GF(p) descriptor: modulus, derived sizes, and the
// zero/one constants. It never mutates after New returns.
type Field struct {
	modulus     Element
	bitWidth    int
	elementSize int
	cfg         Config
}

// New constructs a prime field GF(p). p must be an odd value in (1, 2^128);
// New does not itself verify primality — the caller is responsible for
// supplying a prime — but does reject the degenerate p <= 1.
func New(p Element, cfg Config) (*Field, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if p.IsZero() || (p.Hi == 0 && p.Lo == 1) {
		return nil, fmt.Errorf("field: modulus must be > 1, got %s", p.ToBig())
	}
	bits := bitWidth(p)
	return &Field{
		modulus:     p,
		bitWidth:    bits,
		elementSize: (bits + 7) / 8,
		cfg:         cfg,
	}, nil
}

// bitWidth returns the number of bits needed to represent x (0 maps to 0).
func bitWidth(x Element) int {
	if x.Hi != 0 {
		return 64 + bitLen64(x.Hi)
	}
	return bitLen64(x.Lo)
}

func bitLen64(x uint64) int {
	n := 0
	for x != 0 {
		n++
		x >>= 1
	}
	return n
}

// Modulus returns p.
func (f *Field) Modulus() Element { return f.modulus }

// Characteristic is an alias for Modulus: extension degree is fixed at 1,
// so the field's characteristic and modulus coincide.
func (f *Field) Characteristic() Element { return f.modulus }

// ExtensionDegree is always 1 — extension fields are out of scope.
func (f *Field) ExtensionDegree() int { return 1 }

// BitWidth returns ceil(log2(p)), the number of significant bits in p.
func (f *Field) BitWidth() int { return f.bitWidth }

// ElementSize returns ceil(BitWidth()/8), the wire width of one element.
func (f *Field) ElementSize() int { return f.elementSize }

// UseAccelerated reports whether this Field was configured to prefer the
// off-host/accelerated engine variant.
func (f *Field) UseAccelerated() bool { return f.cfg.UseAccelerated }

// Config returns the construction-time option set, for callers (package
// engine) that need SharedBufferSize alongside UseAccelerated.
func (f *Field) Config() Config { return f.cfg }

// Zero returns the additive identity, 0.
func (f *Field) Zero() Element { return wideint.Zero128 }

// One returns the multiplicative identity, 1 mod p.
func (f *Field) One() Element { return wideint.Mod128(wideint.One128, f.modulus) }

// Reduce fully reduces x modulo p. Setters accept any value < 2^128 without
// requiring x < p already; every other operation's output is always
// pre-reduced.
func (f *Field) Reduce(x Element) Element { return wideint.Mod128(x, f.modulus) }
