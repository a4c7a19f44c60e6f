// Package scalar implements the portable constant-time base64
// kernels.
//
// Every lookup goes through a table that fills exactly one
// 64-byte cache line and every decoded byte probes both decoding
// tables, so the set of cache lines touched does not depend on the
// data. On CPUs with 64-byte lines this defeats the usual
// cache-timing attacks on table-driven base64. It is known not to
// be sufficient on CPUs that leak timing within a cache line (see
// CacheBleed), so it is a mitigation rather than a guarantee.
package scalar

import (
	"github.com/ericlagergren/b64ct/internal/kernel"
	"github.com/ericlagergren/b64ct/internal/subtle"
)

// Flags stored in the decoding tables alongside the 6-bit value.
const (
	invalidFlag = 0x80
	spaceFlag   = 0x40
)

const (
	stdAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"abcdefghijklmnopqrstuvwxyz" +
		"0123456789" +
		"+/"
	urlAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"abcdefghijklmnopqrstuvwxyz" +
		"0123456789" +
		"-_"
)

// decodeLow covers 0x00 ... 0x3f and decodeHigh covers
// 0x40 ... 0x7f. Bytes >= 0x80 index one of the two tables like
// any other byte and are rejected by their own sign bit.
var (
	decodeLow  = newCacheLine(decodeTable(0x00))
	decodeHigh = newCacheLine(decodeTable(0x40))
)

// decodeTable builds the decoding table for the 64 ASCII
// characters starting at base.
func decodeTable(base int) *CacheLine {
	var t CacheLine
	for i := range t {
		t[i] = invalidFlag
	}
	for v := 0; v < 64; v++ {
		for _, c := range [...]byte{stdAlphabet[v], urlAlphabet[v]} {
			if int(c) >= base && int(c) < base+CacheLineSize {
				t[int(c)-base] = byte(v)
			}
		}
	}
	for _, c := range [...]byte{' ', '\t', '\n', '\f', '\r'} {
		if int(c) >= base && int(c) < base+CacheLineSize {
			t[int(c)-base] = spaceFlag
		}
	}
	return &t
}

// decodeByte converts the base64 character c to its 6-bit value.
//
// invalid is 1 if c is neither a symbol nor whitespace, space is
// 1 if c is whitespace. v is only meaningful if both are 0.
func decodeByte(c byte) (v byte, invalid, space int) {
	idx := c & 0x3f

	// mask is 0xff if c is in 0x40 ... 0x7f and 0x00 otherwise.
	// This is the constant-time equivalent of
	//
	//    if c&0xc0 == 0x40 {
	//        mask = 0xff
	//    }
	//
	mask := subtle.ConstantTimeByteEqMask(c&0xc0, 0x40)

	// Both tables are always read.
	v = ^mask&decodeLow[idx] | mask&decodeHigh[idx]

	// Bit 7 of c is set for every non-ASCII byte; bit 7 of v is
	// set for every invalid ASCII byte. Either makes c invalid.
	invalid = int((c | v) >> 7)
	space = int(v>>6) & 1
	return v, invalid, space
}

// Kernel is the scalar Decoder and Encoder. It works on blocks of
// a single byte.
type Kernel struct{}

var (
	_ kernel.Decoder = Kernel{}
	_ kernel.Encoder = Kernel{}
)

// BlockSize returns 1.
func (Kernel) BlockSize() int { return 1 }

// DecodeBlock implements kernel.Decoder.
func (Kernel) DecodeBlock(block []byte) kernel.BlockResult {
	v, invalid, space := decodeByte(block[0])
	block[0] = v
	return kernel.BlockResult{
		// 1 iff the byte is neither invalid nor whitespace.
		OutLength: 1 &^ (invalid | space),
		// 0 if invalid, -1 otherwise.
		FirstInvalid: invalid - 1,
	}
}
