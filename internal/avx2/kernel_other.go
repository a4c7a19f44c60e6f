//go:build !amd64 || purego

package avx2

const haveAsm = false

func decodeAVX2(block *[32]byte) (invalid, valid uint32) {
	panic("unreachable")
}

func encodeAVX2(block, shift *[32]byte) {
	panic("unreachable")
}

func packAVX2(dst *[28]byte, src *[32]byte) {
	panic("unreachable")
}

func unpackAVX2(dst *[32]byte, src *[24]byte) {
	panic("unreachable")
}
