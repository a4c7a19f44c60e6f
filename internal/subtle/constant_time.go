// Package subtle implements the constant-time primitives shared
// by the base64 kernels.
package subtle

import "crypto/subtle"

// ConstantTimeByteEq returns 1 if x == y and 0 otherwise.
func ConstantTimeByteEq(x, y uint8) int {
	return subtle.ConstantTimeByteEq(x, y)
}

// ByteMask converts v, which must be 0 or 1, into a byte mask:
// 0x00 if v == 0 and 0xff if v == 1.
func ByteMask(v int) byte {
	return byte(-v)
}

// ConstantTimeByteEqMask returns 0xff if x == y and 0x00
// otherwise.
func ConstantTimeByteEqMask(x, y uint8) byte {
	return ByteMask(ConstantTimeByteEq(x, y))
}
