// Command asm generates the AVX2 base64 kernels in
// internal/avx2.
package main

import (
	"encoding/binary"

	. "github.com/mmcloughlin/avo/build"
	. "github.com/mmcloughlin/avo/operand"
	. "github.com/mmcloughlin/avo/reg"
)

//go:generate go run asm.go -out ../internal/avx2/avx2_amd64.s -stubs ../internal/avx2/stub_amd64.go -pkg avx2

func main() {
	Package("github.com/ericlagergren/b64ct/internal/avx2")
	ConstraintExpr("amd64 && !purego")

	decode()
	encode()
	pack()
	unpack()

	Generate()
}

// table declares a read-only global holding b.
func table(name string, b []byte) Mem {
	m := GLOBL(name, RODATA|NOPTR)
	for i := 0; i < len(b); i += 8 {
		DATA(i, U64(binary.LittleEndian.Uint64(b[i:])))
	}
	return m
}

// dup repeats a 16-byte VPSHUFB table in both 128-bit halves.
func dup(t ...byte) []byte {
	var half [16]byte
	copy(half[:], t)
	return append(half[:], half[:]...)
}

func splat8(b byte) []byte {
	return dup(b, b, b, b, b, b, b, b, b, b, b, b, b, b, b, b)
}

func splat16(w uint16) []byte {
	b := make([]byte, 32)
	for i := 0; i < len(b); i += 2 {
		binary.LittleEndian.PutUint16(b[i:], w)
	}
	return b
}

func splat32(d uint32) []byte {
	b := make([]byte, 32)
	for i := 0; i < len(b); i += 4 {
		binary.LittleEndian.PutUint32(b[i:], d)
	}
	return b
}

// neg returns the two's complement byte of -v.
func neg(v int) byte {
	return byte(-v)
}

func decode() {
	nibbleMask := table("nibbleMask", splat8(0x0f))
	// One bit per ASCII character that is a symbol of either
	// charset or whitespace, indexed by low nibble. The bit is
	// picked by columnLUT, indexed by high nibble; non-ASCII
	// bytes pick 0.
	rowLUT := table("rowLUT", dup(
		0b1010_1100, 0b1111_1000, 0b1111_1000, 0b1111_1000,
		0b1111_1000, 0b1111_1000, 0b1111_1000, 0b1111_1000,
		0b1111_1000, 0b1111_1001, 0b1111_0001, 0b0101_0100,
		0b0101_0001, 0b0101_0101, 0b0101_0000, 0b0111_0100,
	))
	columnLUT := table("columnLUT", dup(
		0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80,
	))
	// Added to digits and letters, by high nibble.
	shiftLUT := table("shiftLUT", dup(
		0, 0, 0, 4, neg(65), neg(65), neg(71), neg(71),
	))
	// The high nibbles of '+', '-', '/' and '_'.
	spcRangeLUT := table("spcRangeLUT", dup(0, 0, 0xff, 0, 0, 0xff))
	// Inverted values of '+', '_', '-' and '/', by low nibble
	// minus high nibble. Each entry is also a blend mask.
	spcCharLUT := table("spcCharLUT", dup(
		0, 0, 0, 0, 0, 0, 0, 0,
		0, ^byte(62), ^byte(63), ^byte(62), 0, ^byte(63), 0, 0,
	))
	validNonSpace := table("validNonSpace", []byte{
		'A', 'Z', 'a', 'z', '0', '9', '+', '+',
		'/', '/', '-', '-', '_', '_', 0, 0,
	})

	TEXT("decodeAVX2", NOSPLIT, "func(block *[32]byte) (invalid uint32, valid uint32)")
	Doc(
		"decodeAVX2 replaces each byte of block with its 6-bit value and",
		"reports which lanes are invalid and which are symbols.",
	)
	Pragma("noescape")

	Load(Param("block"), RDI)
	VMOVDQU(Mem{Base: RDI}, Y1)

	Comment("Split every byte into its high and low nibble.")
	VMOVDQU(nibbleMask, Y2)
	VPSRLW(U8(4), Y1, Y3)
	VPAND(Y2, Y3, Y3)
	VPAND(Y2, Y1, Y2)

	Comment(
		"Invalid lanes: the row bit picked by the high nibble is",
		"clear.",
	)
	VMOVDQU(rowLUT, Y4)
	VPSHUFB(Y2, Y4, Y4)
	VMOVDQU(columnLUT, Y5)
	VPSHUFB(Y3, Y5, Y5)
	VPAND(Y5, Y4, Y4)
	VPXOR(Y6, Y6, Y6)
	VPCMPEQB(Y6, Y4, Y4)
	VPMOVMSKB(Y4, EAX)
	Store(EAX, Return("invalid"))

	Comment("Digits and letters.")
	VMOVDQU(shiftLUT, Y5)
	VPSHUFB(Y3, Y5, Y5)
	VPADDB(Y1, Y5, Y5)

	Comment(
		"Special symbols, selected by high nibble and by the low",
		"nibble minus the high nibble.",
	)
	VMOVDQU(spcRangeLUT, Y6)
	VPSHUFB(Y3, Y6, Y6)
	VPSUBB(Y3, Y2, Y7)
	VMOVDQU(spcCharLUT, Y8)
	VPSHUFB(Y7, Y8, Y8)
	VPAND(Y8, Y6, Y6)
	VPCMPEQB(Y9, Y9, Y9)
	VPXOR(Y9, Y8, Y8)
	VPBLENDVB(Y6, Y8, Y5, Y5)
	VMOVDQU(Y5, Mem{Base: RDI})

	Comment("Symbols: one range match per 128-bit half.")
	VMOVDQU(validNonSpace, X8)
	MOVL(U32(14), EAX)
	MOVL(U32(16), EDX)
	// _SIDD_UBYTE_OPS | _SIDD_CMP_RANGES | _SIDD_BIT_MASK
	VPCMPESTRM(U8(0x04), X1, X8)
	VMOVD(X0, EBX)
	VEXTRACTI128(U8(1), Y1, X1)
	VPCMPESTRM(U8(0x04), X1, X8)
	VMOVD(X0, ECX)
	SHLL(U8(16), ECX)
	ORL(ECX, EBX)
	Store(EBX, Return("valid"))
	VZEROUPPER()
	RET()
}

func encode() {
	rangeBase := table("encodeRangeBase", splat8(51))
	upperBound := table("encodeUpperBound", splat8(26))
	upperRange := table("encodeUpperRange", splat8(13))

	TEXT("encodeAVX2", NOSPLIT, "func(block *[32]byte, shift *[32]byte)")
	Doc("encodeAVX2 replaces each 6-bit value in block with its symbol.")
	Pragma("noescape")

	Load(Param("block"), RAX)
	Load(Param("shift"), RCX)
	VMOVDQU(Mem{Base: RAX}, Y0)

	Comment("Lowercase letters become 0, everything above 1 ... 12.")
	VPSUBUSB(rangeBase, Y0, Y1)

	Comment("Uppercase letters become 13.")
	VMOVDQU(upperBound, Y2)
	VPCMPGTB(Y0, Y2, Y2)
	VPAND(upperRange, Y2, Y2)
	VPOR(Y2, Y1, Y1)

	VMOVDQU(Mem{Base: RCX}, Y2)
	VPSHUFB(Y1, Y2, Y2)
	VPADDB(Y0, Y2, Y2)
	VMOVDQU(Y2, Mem{Base: RAX})
	VZEROUPPER()
	RET()
}

func pack() {
	mergePairs := table("packMergePairs", splat16(0x0140))
	mergeQuads := table("packMergeQuads", splat32(0x00011000))
	shuffle := table("packShuffle", dup(
		2, 1, 0, 6, 5, 4, 10, 9, 8, 14, 13, 12,
		0xff, 0xff, 0xff, 0xff,
	))

	TEXT("packAVX2", NOSPLIT, "func(dst *[28]byte, src *[32]byte)")
	Doc("packAVX2 packs 32 6-bit values into 24 bytes.")
	Pragma("noescape")

	Load(Param("dst"), RAX)
	Load(Param("src"), RCX)
	VMOVDQU(Mem{Base: RCX}, Y0)

	Comment(
		"s0<<6 | s1 in each 16-bit lane, then p0<<12 | p1 in each",
		"32-bit lane.",
	)
	VPMADDUBSW(mergePairs, Y0, Y0)
	VPMADDWD(mergeQuads, Y0, Y0)

	Comment("Gather the three bytes of each 32-bit lane, big-endian.")
	VPSHUFB(shuffle, Y0, Y0)
	VMOVDQU(X0, Mem{Base: RAX})
	VEXTRACTI128(U8(1), Y0, Mem{Base: RAX, Disp: 12})
	VZEROUPPER()
	RET()
}

func unpack() {
	shuffle := table("unpackShuffle", []byte{
		1, 0, 2, 1, 4, 3, 5, 4, 7, 6, 8, 7, 10, 9, 11, 10,
		// Relative to src[8].
		5, 4, 6, 5, 8, 7, 9, 8, 11, 10, 12, 11, 14, 13, 15, 14,
	})
	maskHi := table("unpackMaskHi", splat32(0x0fc0fc00))
	mulHi := table("unpackMulHi", splat32(0x04000040))
	maskLo := table("unpackMaskLo", splat32(0x003f03f0))
	mulLo := table("unpackMulLo", splat32(0x01000010))

	TEXT("unpackAVX2", NOSPLIT, "func(dst *[32]byte, src *[24]byte)")
	Doc("unpackAVX2 splits 24 bytes into 32 6-bit values.")
	Pragma("noescape")

	Load(Param("dst"), RAX)
	Load(Param("src"), RCX)

	Comment(
		"Bytes 0 ... 15 in the low half and 8 ... 23 in the high",
		"half, then each 3-byte group spread over a 32-bit lane.",
	)
	VMOVDQU(Mem{Base: RCX}, X0)
	VINSERTI128(U8(1), Mem{Base: RCX, Disp: 8}, Y0, Y0)
	VPSHUFB(shuffle, Y0, Y0)

	Comment("Symbols 0 and 2 of each lane.")
	VPAND(maskHi, Y0, Y1)
	VPMULHUW(mulHi, Y1, Y1)

	Comment("Symbols 1 and 3 of each lane.")
	VPAND(maskLo, Y0, Y2)
	VPMULLW(mulLo, Y2, Y2)

	VPOR(Y2, Y1, Y1)
	VMOVDQU(Y1, Mem{Base: RAX})
	VZEROUPPER()
	RET()
}
