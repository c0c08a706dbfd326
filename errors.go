package p256k1

import "errors"

// Sentinel errors returned by the public API. Callers should use errors.Is
// to check for these rather than comparing error strings.
var (
	// ErrInvalidArgument is returned when a caller-supplied parameter (window
	// width, scratch capacity, batch length, SEC1 encoding) is outside the
	// range the function accepts.
	ErrInvalidArgument = errors.New("p256k1: invalid argument")

	// ErrAllocationFailed is returned when a precomputed table's computed row
	// width is not positive. The window-width range check runs first, so no
	// accepted width reaches this case; there is no limit on table memory.
	ErrAllocationFailed = errors.New("p256k1: allocation failed")

	// ErrInvalidKey is returned when a private key is zero or >= the group
	// order, or when a derived public key unexpectedly lands on infinity.
	ErrInvalidKey = errors.New("p256k1: invalid key")
)
