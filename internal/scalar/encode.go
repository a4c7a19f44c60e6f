package scalar

import "github.com/ericlagergren/b64ct/internal/kernel"

// encodeTables holds one alphabet per kernel.Charset.
var encodeTables = [...]*CacheLine{
	kernel.StdCharset: newCacheLine((*CacheLine)([]byte(stdAlphabet))),
	kernel.URLCharset: newCacheLine((*CacheLine)([]byte(urlAlphabet))),
}

// EncodeBlock implements kernel.Encoder.
//
// The charset is public, so selecting the table by it is fine;
// the 6-bit value only ever indexes within one cache line.
func (Kernel) EncodeBlock(block []byte, cs kernel.Charset) {
	t := encodeTables[cs]
	block[0] = t[block[0]&0x3f]
}
