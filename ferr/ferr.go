// Package ferr declares the sentinel errors shared across ff128's field,
// array, poly, and engine packages.
//
// Operations whose signature returns an error report their failures that
// way: mismatched operand shapes (ErrDimensionMismatch), exp(0,0) and bad
// polynomial-division operands (ErrInvalidArgument), a setter value that
// does not fit in 128 bits (ErrOutOfRange), and an exhausted root-of-unity
// search (ErrNotFound). Violations with no error return are raised via
// Panic below, carrying the wrapped error as the panic value: a
// non-power-of-two FFT domain or root order, or a polynomial longer than its
// domain (ErrInvalidDomain); an element index outside a handle
// (ErrOutOfRange); a negative vector or matrix size (ErrInvalidArgument);
// and an element count that does not match a matrix shape
// (ErrDimensionMismatch).
package ferr

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument   = errors.New("ff128: invalid argument")
	ErrDimensionMismatch = errors.New("ff128: dimension mismatch")
	ErrInvalidDomain     = errors.New("ff128: invalid domain")
	ErrOutOfRange        = errors.New("ff128: out of range")
	ErrNotFound          = errors.New("ff128: not found")
)

// Wrap produces an error that both matches sentinel via errors.Is and
// carries the caller-supplied detail message.
func Wrap(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}

// Panic raises a wrapped sentinel error as a panic value, for the
// programmer errors listed in the package comment, which fail loudly rather
// than return an error a caller could accidentally ignore. Recover it with
// errors.As(recover().(error), &target) if a caller genuinely needs to.
func Panic(sentinel error, format string, args ...any) {
	panic(Wrap(sentinel, format, args...))
}
