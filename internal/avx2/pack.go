package avx2

import "github.com/ericlagergren/b64ct/internal/kernel"

// Packer is the 32-symbol kernel.Packer. It is obtained from a
// Kernel.
type Packer struct {
	k Kernel
}

var _ kernel.Packer = Packer{}

// InputSize returns 32.
func (Packer) InputSize() int { return 32 }

// OutputSize returns 28. Only the first 24 bytes are meaningful:
// each 128-bit half of the result is stored in full, the high one
// at offset 12.
func (Packer) OutputSize() int { return 28 }

// PackBlock implements kernel.Packer.
func (p Packer) PackBlock(dst, src []byte) {
	p.k.f.must()

	packAVX2((*[28]byte)(dst), (*[32]byte)(src))
}

// Unpacker is the 24-byte kernel.Unpacker. It is obtained from a
// Kernel.
type Unpacker struct {
	k Kernel
}

var _ kernel.Unpacker = Unpacker{}

// InputSize returns 24.
func (Unpacker) InputSize() int { return 24 }

// OutputSize returns 32.
func (Unpacker) OutputSize() int { return 32 }

// UnpackBlock implements kernel.Unpacker.
func (u Unpacker) UnpackBlock(dst, src []byte) {
	u.k.f.must()

	unpackAVX2((*[32]byte)(dst), (*[24]byte)(src))
}
