package array

import (
	"ff128/field"
	"ff128/wideint"
)

// decodeElement reads a little-endian element from a slot of any width up
// to 16 bytes, zero-extending into the full wideint.U128 representation.
// field.Element is a type alias for wideint.U128, so the two are
// interchangeable without conversion.
func decodeElement(slot []byte) field.Element {
	var buf [16]byte
	copy(buf[:], slot)
	return wideint.U128FromBytes16(buf[:])
}

// encodeElement writes val's low len(slot) little-endian bytes into slot.
func encodeElement(slot []byte, val field.Element) {
	full := val.Bytes16()
	copy(slot, full[:len(slot)])
}
