package avx2

import "github.com/ericlagergren/b64ct/internal/kernel"

// encodeShift holds, per kernel.Charset, the amount added to a
// 6-bit value to reach its symbol. The kernel indexes it with
// VPSHUFB by the range of the value:
//
//	0: 'a' ... 'z'
//	1 ... 10: '0' ... '9'
//	11: value 62
//	12: value 63
//	13: 'A' ... 'Z'
var encodeShift = [...][32]byte{
	kernel.StdCharset: shiftTable('+', '/'),
	kernel.URLCharset: shiftTable('-', '_'),
}

// shiftTable returns the encodeShift entry for a charset whose
// values 62 and 63 are c62 and c63. Both 128-bit halves hold the
// same table.
func shiftTable(c62, c63 byte) (t [32]byte) {
	// Variables rather than constants so the differences wrap.
	var lower, digit, upper byte = 'a', '0', 'A'
	half := [16]byte{
		lower - 26,
		digit - 52, digit - 52, digit - 52, digit - 52, digit - 52,
		digit - 52, digit - 52, digit - 52, digit - 52, digit - 52,
		c62 - 62,
		c63 - 63,
		upper,
	}
	copy(t[:16], half[:])
	copy(t[16:], half[:])
	return t
}

// EncodeBlock implements kernel.Encoder.
func (k Kernel) EncodeBlock(block []byte, cs kernel.Charset) {
	k.f.must()

	encodeAVX2((*[32]byte)(block), &encodeShift[cs])
}
