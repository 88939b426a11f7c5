// Package cipher implements the additive character cipher used to obfuscate
// labels and grid values on their way in and out of gridseek.
//
// What:
//
//   - Every rune is shifted by a constant (0..26, no modulo wrap) and the
//     resulting code point is written in base 2 without padding.
//   - Tokens are joined with single spaces: "hi" with shift 5 becomes
//     "1101101 1101110".
//   - Decode reverses the process and rejects malformed tokens.
//
// Why:
//
//   - Test fixtures and command-line output stay unreadable at a glance.
//   - It is NOT a security mechanism and must never be used as one.
//
// Complexity:
//
//   - Encode, Decode: O(n) in the number of runes.
//
// Errors:
//
//   - ErrShift: shift outside [MinShift, MaxShift].
//   - ErrDecode: a token is empty, not binary, or maps outside the valid
//     rune range once the shift is removed.
package cipher
