package field

import (
	"crypto/sha256"

	"ff128/ferr"
	"ff128/wideint"

	"github.com/tuneinsight/lattigo/v4/utils"
)

// Prng derives a single deterministic field element from seed: the first 16
// bytes of sha256(seed), read little-endian, reduced mod p. The remaining 16
// digest bytes are not used. SHA-256 is fixed rather than parameterized so
// that two callers with the same seed always agree on the derived element.
func (f *Field) Prng(seed []byte) Element {
	sum := sha256.Sum256(seed)
	return f.Reduce(wideint.U128FromBytes16(sum[:16]))
}

// PrngVector derives a length-n sequence by repeated hashing:
// out[i] is the first 16 bytes of sha256^(i+1)(seed), read little-endian and
// reduced mod p, the same derivation Prng uses. n < 0 is INVALID_ARGUMENT;
// n == 0 returns an empty, non-nil slice.
func (f *Field) PrngVector(seed []byte, n int) ([]Element, error) {
	if n < 0 {
		return nil, ferr.Wrap(ferr.ErrInvalidArgument, "prng: length must be >= 0, got %d", n)
	}
	out := make([]Element, n)
	h := seed
	for i := 0; i < n; i++ {
		sum := sha256.Sum256(h)
		out[i] = f.Reduce(wideint.U128FromBytes16(sum[:16]))
		h = sum[:]
	}
	return out, nil
}

// Rand draws ElementSize() cryptographically secure random bytes and
// reduces them mod p, using lattigo's utils.PRNG as the secure byte source.
func (f *Field) Rand() (Element, error) {
	prng, err := utils.NewPRNG()
	if err != nil {
		return wideint.Zero128, err
	}
	buf := make([]byte, f.elementSize)
	if _, err := prng.Read(buf); err != nil {
		return wideint.Zero128, err
	}
	return f.Reduce(wideint.U128FromBytes16(pad16(buf))), nil
}

func pad16(b []byte) []byte {
	if len(b) == 16 {
		return b
	}
	var out [16]byte
	copy(out[:], b)
	return out[:]
}
