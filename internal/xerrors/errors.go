// Package xerrors collects the sentinel errors shared by ring, rand, rlwe
// and kex. Callers compare with errors.Is; context is layered on with
// fmt.Errorf("...: %w", ...) at each propagation boundary.
package xerrors

import "errors"

var (
	// ErrInvalidRing means a ring descriptor does not admit a 2n-th root
	// of unity and cannot be used for NTT-based multiplication.
	ErrInvalidRing = errors.New("rlwekex: ring admits no 2n-th root of unity")

	// ErrMalformedWire means request/response/keypair bytes failed a
	// length or range check during decoding.
	ErrMalformedWire = errors.New("rlwekex: malformed wire bytes")

	// ErrEntropyFailure means the OS entropy source failed to fill a
	// buffer. Non-recoverable at the crypto layer.
	ErrEntropyFailure = errors.New("rlwekex: OS entropy source failed")

	// ErrExponentNegative is returned by Power for a negative exponent.
	// The protocol never requires negative exponents; a caller hitting
	// this has a programming error, not a runtime condition to recover from.
	ErrExponentNegative = errors.New("rlwekex: exponent must be non-negative")

	// ErrPadTooLong means Pad was asked to zero-extend a vector already
	// longer than the ring's degree.
	ErrPadTooLong = errors.New("rlwekex: vector longer than ring degree")
)
