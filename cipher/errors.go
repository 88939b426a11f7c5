package cipher

import "errors"

// Sentinel errors for cipher operations.
var (
	// ErrShift indicates a shift constant outside [MinShift, MaxShift].
	ErrShift = errors.New("cipher: shift out of range")
	// ErrDecode indicates a malformed token or an out-of-range code point.
	ErrDecode = errors.New("cipher: cannot decode token")
)
