package codec

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidLength is returned when the number of symbols,
	// ignoring whitespace and padding, is 1 modulo 4.
	ErrInvalidLength = errors.New("b64ct: invalid length")
	// ErrInvalidTrailer is returned when the padding does not
	// complete the final group of four symbols.
	ErrInvalidTrailer = errors.New("b64ct: invalid trailer")
)

// InvalidCharacterError is returned when the input contains a byte
// that is not a symbol, whitespace or correctly placed padding.
// Its value is the offset of that byte in the whole input.
type InvalidCharacterError int64

func (e InvalidCharacterError) Error() string {
	return "b64ct: invalid character at offset " + strconv.FormatInt(int64(e), 10)
}
