package scalar

import "github.com/ericlagergren/b64ct/internal/kernel"

// SimplePacker packs one group of four 6-bit values into three
// bytes with plain shifts.
type SimplePacker struct{}

var _ kernel.Packer = SimplePacker{}

// InputSize returns 4.
func (SimplePacker) InputSize() int { return 4 }

// OutputSize returns 3.
func (SimplePacker) OutputSize() int { return 3 }

// PackBlock implements kernel.Packer.
//
//	src: ..aaaaaa ..bbbbbb ..cccccc ..dddddd
//	dst: aaaaaabb bbbbcccc ccdddddd
func (SimplePacker) PackBlock(dst, src []byte) {
	_ = src[3] // BCE hint.
	_ = dst[2]

	dst[0] = src[0]<<2 | src[1]>>4
	dst[1] = src[1]<<4 | src[2]>>2
	dst[2] = src[2]<<6 | src[3]
}

// SimpleUnpacker is the inverse of SimplePacker.
type SimpleUnpacker struct{}

var _ kernel.Unpacker = SimpleUnpacker{}

// InputSize returns 3.
func (SimpleUnpacker) InputSize() int { return 3 }

// OutputSize returns 4.
func (SimpleUnpacker) OutputSize() int { return 4 }

// UnpackBlock implements kernel.Unpacker.
func (SimpleUnpacker) UnpackBlock(dst, src []byte) {
	_ = src[2] // BCE hint.
	_ = dst[3]

	dst[0] = src[0] >> 2
	dst[1] = (src[0]&0x03)<<4 | src[1]>>4
	dst[2] = (src[1]&0x0f)<<2 | src[2]>>6
	dst[3] = src[2] & 0x3f
}
