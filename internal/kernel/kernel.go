// Package kernel defines the block-level interfaces implemented by
// each base64 implementation.
//
// An implementation is split into four roles. A Decoder turns a
// block of ASCII into 6-bit values, a Packer turns a group of
// 6-bit values into bytes, an Unpacker turns bytes into 6-bit
// values and an Encoder turns 6-bit values into ASCII. Each role
// has its own native size so that the drivers in package codec can
// pair, say, a 1-byte Decoder with a 32-symbol Packer.
//
// Implementations must not branch on, or index memory with, the
// contents of a block except where documented.
package kernel

// Charset selects the two symbols used for the 6-bit values 62
// and 63.
type Charset uint8

const (
	// StdCharset uses '+' and '/'.
	StdCharset Charset = iota
	// URLCharset uses '-' and '_'.
	URLCharset
)

// BlockResult describes one decoded block.
type BlockResult struct {
	// OutLength is the number of bytes in the block that were
	// valid, non-whitespace symbols. After DecodeBlock returns,
	// their 6-bit values occupy block[:OutLength] in input order.
	OutLength int
	// FirstInvalid is the index of the first byte in the block
	// that is neither a symbol nor whitespace, or -1.
	//
	// If FirstInvalid >= 0 the decoded values at or after that
	// index are unspecified.
	FirstInvalid int
}

// Decoder decodes fixed-size blocks of base64 text.
type Decoder interface {
	// BlockSize returns the length of the blocks passed to
	// DecodeBlock.
	BlockSize() int
	// DecodeBlock decodes block in place.
	//
	// Unused trailing bytes of a short final block are filled
	// with ' ' by the caller.
	DecodeBlock(block []byte) BlockResult
}

// Packer converts groups of 6-bit values into bytes.
type Packer interface {
	// InputSize returns the number of 6-bit values in a group.
	// It is a multiple of 4.
	InputSize() int
	// OutputSize returns the length of the buffer passed to
	// PackBlock. Only the first InputSize()/4*3 bytes of the
	// buffer are meaningful.
	OutputSize() int
	// PackBlock packs the InputSize() values in src into dst.
	PackBlock(dst, src []byte)
}

// Encoder encodes fixed-size blocks of 6-bit values.
type Encoder interface {
	// BlockSize returns the length of the blocks passed to
	// EncodeBlock.
	BlockSize() int
	// EncodeBlock replaces each 6-bit value in block with its
	// symbol from cs.
	EncodeBlock(block []byte, cs Charset)
}

// Unpacker converts bytes into groups of 6-bit values.
type Unpacker interface {
	// InputSize returns the number of bytes consumed by
	// UnpackBlock. It is a multiple of 3.
	InputSize() int
	// OutputSize returns the number of 6-bit values written by
	// UnpackBlock, InputSize()/3*4.
	OutputSize() int
	// UnpackBlock unpacks src into dst.
	UnpackBlock(dst, src []byte)
}

// Whitespace reports whether c is ASCII whitespace as accepted by
// the decoders: space, tab, line feed, form feed or carriage
// return.
//
// Whitespace branches on c. It is only used on the padding
// trailer, which carries no secret data.
func Whitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}
