package cipher_test

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/gridseek/cipher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewCodec_ShiftRange verifies the accepted shift interval.
func TestNewCodec_ShiftRange(t *testing.T) {
	for _, s := range []int{cipher.MinShift, 1, 13, cipher.MaxShift} {
		c, err := cipher.NewCodec(s)
		require.NoError(t, err, "shift %d", s)
		assert.Equal(t, s, c.Shift())
	}
	for _, s := range []int{-1, cipher.MaxShift + 1, 1000} {
		_, err := cipher.NewCodec(s)
		assert.ErrorIs(t, err, cipher.ErrShift, "shift %d", s)
	}
}

// TestEncode_Hello checks the documented "hello" fixture with shift 5.
func TestEncode_Hello(t *testing.T) {
	c, err := cipher.NewCodec(5)
	require.NoError(t, err)

	code := c.Encode("hello")
	assert.Equal(t, "1101101 1101010 1110001 1110001 1110100", code)

	text, err := c.Decode(code)
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}

// TestRoundTrip_Hi covers the two-rune "hi" case with shift 5.
func TestRoundTrip_Hi(t *testing.T) {
	code, err := cipher.Encode("hi", 5)
	require.NoError(t, err)
	assert.Equal(t, "1101101 1101110", code)

	text, err := cipher.Decode(code, 5)
	require.NoError(t, err)
	assert.Equal(t, "hi", text)
}

// TestRoundTrip_AllShifts decodes random printable strings for every shift.
func TestRoundTrip_AllShifts(t *testing.T) {
	rng := rand.New(rand.NewSource(9001))
	for s := cipher.MinShift; s <= cipher.MaxShift; s++ {
		c, err := cipher.NewCodec(s)
		require.NoError(t, err)
		for n := 0; n < 50; n++ {
			buf := make([]byte, rng.Intn(12))
			for i := range buf {
				buf[i] = byte(' ' + rng.Intn('~'-' '+1)) // printable ASCII
			}
			in := string(buf)
			out, err := c.Decode(c.Encode(in))
			require.NoError(t, err, "shift=%d in=%q", s, in)
			require.Equal(t, in, out, "shift=%d", s)
		}
	}
}

// TestRoundTrip_Unicode keeps multi-byte runes intact.
func TestRoundTrip_Unicode(t *testing.T) {
	c, _ := cipher.NewCodec(26)
	for _, in := range []string{"λ", "grüße", "日本", "l42"} {
		out, err := c.Decode(c.Encode(in))
		require.NoError(t, err)
		assert.Equal(t, in, out)
	}
}

// TestEncode_NoPadding ensures tokens carry no leading zeros.
func TestEncode_NoPadding(t *testing.T) {
	c, _ := cipher.NewCodec(0)
	assert.Equal(t, "110000", c.Encode("0"))
	assert.Equal(t, "110001 110000", c.Encode("10"))
}

// TestEmpty covers the empty text and the empty code.
func TestEmpty(t *testing.T) {
	c, _ := cipher.NewCodec(3)
	assert.Equal(t, "", c.Encode(""))
	text, err := c.Decode("")
	require.NoError(t, err)
	assert.Equal(t, "", text)
}

// TestDecode_Errors verifies ErrDecode for malformed input.
func TestDecode_Errors(t *testing.T) {
	c, _ := cipher.NewCodec(5)
	cases := []struct {
		name string
		code string
	}{
		{"NotBinary", "hello"},
		{"DigitTwo", "1102"},
		{"DoubleSpace", "1101101  1101110"},
		{"TrailingSpace", "1101101 "},
		{"Signed", "-101"},
		{"Negative", "1"}, // 1 - 5 < 0
		{"Surrogate", strconv.FormatInt(0xD800+5, 2)},
		{"AboveMaxRune", strconv.FormatInt(0x10FFFF+6, 2)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := c.Decode(tc.code)
			assert.ErrorIs(t, err, cipher.ErrDecode)
		})
	}
}

// TestDecode_ErrorMessages checks that the message names the cause.
func TestDecode_ErrorMessages(t *testing.T) {
	c, _ := cipher.NewCodec(0)
	_, err := c.Decode("1100001 " + strings.Repeat("1", 40))
	require.ErrorIs(t, err, cipher.ErrDecode)
	assert.Contains(t, err.Error(), "token 1")
	assert.Contains(t, err.Error(), "out-of-range code point")
	assert.NotContains(t, err.Error(), "not binary")

	_, err = c.Decode("1102")
	require.ErrorIs(t, err, cipher.ErrDecode)
	assert.Contains(t, err.Error(), "not binary")
}

// TestHelpers_ShiftValidation ensures the package helpers validate the shift.
func TestHelpers_ShiftValidation(t *testing.T) {
	_, err := cipher.Encode("a", 27)
	assert.ErrorIs(t, err, cipher.ErrShift)
	_, err = cipher.Decode("1100001", -1)
	assert.ErrorIs(t, err, cipher.ErrShift)
}
