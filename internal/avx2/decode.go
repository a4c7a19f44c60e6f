package avx2

import (
	"math/bits"

	"github.com/ericlagergren/b64ct/internal/kernel"
)

// DecodeBlock implements kernel.Decoder.
//
// decodeAVX2 replaces each lane with its 6-bit value and returns
// two lane masks: invalid has bit i set if lane i is neither a
// symbol nor whitespace, valid has bit i set if lane i is a
// symbol.
func (k Kernel) DecodeBlock(block []byte) kernel.BlockResult {
	k.f.must()

	b := (*[32]byte)(block)
	invalid, valid := decodeAVX2(b)

	// 32 trailing zeros means no invalid lane, which maps to -1.
	first := bits.TrailingZeros32(invalid)
	first |= -(first >> 5)

	// Compact the symbols to the front. Every lane is stored and
	// the cursor only advances past symbols, so later stores
	// overwrite the whitespace.
	o := 0
	for i := range b {
		b[o] = b[i]
		o += int(valid>>i) & 1
	}
	return kernel.BlockResult{
		OutLength:    bits.OnesCount32(valid),
		FirstInvalid: first,
	}
}
