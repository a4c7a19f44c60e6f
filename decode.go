package b64ct

import (
	"slices"

	"github.com/ericlagergren/b64ct/internal/codec"
	"github.com/ericlagergren/b64ct/internal/subtle"
)

var (
	// ErrInvalidLength is returned when the number of symbols,
	// ignoring whitespace and padding, is 1 modulo 4.
	ErrInvalidLength = codec.ErrInvalidLength
	// ErrInvalidTrailer is returned when the padding does not
	// complete the final group of four symbols.
	ErrInvalidTrailer = codec.ErrInvalidTrailer
)

// InvalidCharacterError is returned when the input contains a
// byte that is not a symbol, whitespace or correctly placed
// padding. Its value is the offset of that byte in the input.
type InvalidCharacterError = codec.InvalidCharacterError

// DecodedLen returns the maximum length in bytes of the data
// decoded from n bytes of base64.
func DecodedLen(n int) int {
	return n/4*3 + n%4*3/4
}

// Decode decodes src into dst, returning the number of bytes
// written. dst must have room for DecodedLen(len(src)) bytes.
//
// If src is malformed Decode writes nothing and returns 0 and
// one of ErrInvalidLength, ErrInvalidTrailer or an
// InvalidCharacterError.
//
// Decode runs in constant time for the length of src and its
// whitespace.
func Decode(dst, src []byte) (int, error) {
	out, err := AppendDecode(nil, src)
	if err != nil {
		return 0, err
	}
	if len(out) > len(dst) {
		subtle.Wipe(out)
		panic("b64ct: output buffer too small")
	}
	n := copy(dst, out)
	subtle.Wipe(out)
	return n, nil
}

// AppendDecode appends the data decoded from src to dst and
// returns the extended buffer.
//
// If src is malformed dst is returned unchanged along with the
// error, and any partially decoded data is wiped.
//
// AppendDecode runs in constant time for the length of src and
// its whitespace.
func AppendDecode(dst, src []byte) ([]byte, error) {
	d := codec.Select().NewDecoder()
	start := len(dst)
	dst = slices.Grow(dst, d.MaxDecodedLen(len(src)))

	dst, err := d.Write(dst, src)
	if err == nil {
		dst, err = d.Close(dst)
	}
	if err != nil {
		subtle.Wipe(dst[start:])
		return dst[:start], err
	}
	return dst, nil
}

// DecodeString returns the data decoded from s.
//
// DecodeString runs in constant time for the length of s and its
// whitespace.
func DecodeString(s string) ([]byte, error) {
	src := []byte(s)
	defer subtle.Wipe(src)
	return AppendDecode(nil, src)
}

// DecodedLen is the same as the package-level DecodedLen. Decoding
// does not depend on the Encoding.
func (e *Encoding) DecodedLen(n int) int {
	return DecodedLen(n)
}

// Decode is the same as the package-level Decode.
func (e *Encoding) Decode(dst, src []byte) (int, error) {
	return Decode(dst, src)
}

// AppendDecode is the same as the package-level AppendDecode.
func (e *Encoding) AppendDecode(dst, src []byte) ([]byte, error) {
	return AppendDecode(dst, src)
}

// DecodeString is the same as the package-level DecodeString.
func (e *Encoding) DecodeString(s string) ([]byte, error) {
	return DecodeString(s)
}
