package cipher

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	// MinShift is the smallest accepted shift constant.
	MinShift = 0
	// MaxShift is the largest accepted shift constant.
	MaxShift = 26

	// separator joins per-rune binary tokens.
	separator = " "
)

// Codec encodes and decodes text with a fixed shift constant.
// The zero value is a valid Codec with shift 0.
type Codec struct {
	shift int
}

// NewCodec returns a Codec for the given shift.
// Returns ErrShift if shift lies outside [MinShift, MaxShift].
func NewCodec(shift int) (Codec, error) {
	if shift < MinShift || shift > MaxShift {
		return Codec{}, fmt.Errorf("%w: %d not in [%d,%d]", ErrShift, shift, MinShift, MaxShift)
	}

	return Codec{shift: shift}, nil
}

// Shift reports the shift constant of c.
func (c Codec) Shift() int {
	return c.shift
}

// Encode shifts every rune of text by c's shift and renders the result as
// space-separated base-2 tokens. Empty text yields an empty code.
// Complexity: O(n).
func (c Codec) Encode(text string) string {
	if text == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(text) * 8)
	first := true
	for _, r := range text {
		if !first {
			b.WriteString(separator)
		}
		first = false
		b.WriteString(strconv.FormatInt(int64(r)+int64(c.shift), 2))
	}

	return b.String()
}

// Decode reverses Encode. Every token must be a non-empty base-2 number
// whose value minus the shift is a valid rune; otherwise ErrDecode is
// returned, wrapped with the position of the offending token.
// An empty code yields empty text.
// Complexity: O(n).
func (c Codec) Decode(code string) (string, error) {
	if code == "" {
		return "", nil
	}
	tokens := strings.Split(code, separator)
	var b strings.Builder
	b.Grow(len(tokens))
	for i, tok := range tokens {
		n, err := strconv.ParseUint(tok, 2, 32)
		if errors.Is(err, strconv.ErrRange) {
			return "", fmt.Errorf("%w: token %d %q maps to out-of-range code point", ErrDecode, i, tok)
		}
		if err != nil {
			return "", fmt.Errorf("%w: token %d %q is not binary", ErrDecode, i, tok)
		}
		r := int64(n) - int64(c.shift)
		if r < 0 || r > utf8.MaxRune || !utf8.ValidRune(rune(r)) {
			return "", fmt.Errorf("%w: token %d %q maps to invalid code point %d", ErrDecode, i, tok, r)
		}
		b.WriteRune(rune(r))
	}

	return b.String(), nil
}

// Encode is a convenience wrapper around NewCodec(shift).Encode(text).
func Encode(text string, shift int) (string, error) {
	c, err := NewCodec(shift)
	if err != nil {
		return "", err
	}

	return c.Encode(text), nil
}

// Decode is a convenience wrapper around NewCodec(shift).Decode(code).
func Decode(code string, shift int) (string, error) {
	c, err := NewCodec(shift)
	if err != nil {
		return "", err
	}

	return c.Decode(code)
}
