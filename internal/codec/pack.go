package codec

import (
	"slices"

	"github.com/ericlagergren/b64ct/internal/kernel"
	"github.com/ericlagergren/b64ct/internal/subtle"
)

// packState accumulates 6-bit values until a full group for the
// Packer is available.
type packState struct {
	p     kernel.Packer
	cache []byte
	pos   int
}

func newPackState(p kernel.Packer) packState {
	return packState{
		p:     p,
		cache: make([]byte, p.InputSize()),
	}
}

// pack packs the first pos values of the cache onto dst, keeping
// only the bytes they fill.
func (s *packState) pack(dst []byte, n int) []byte {
	i := len(dst)
	dst = slices.Grow(dst, s.p.OutputSize())
	s.p.PackBlock(dst[i:i+s.p.OutputSize()], s.cache)
	// The packer may write past the meaningful bytes.
	subtle.Wipe(dst[i+n : i+s.p.OutputSize()])
	return dst[:i+n]
}

// extend appends the 6-bit values in syms, packing every full
// group onto dst.
func (s *packState) extend(dst, syms []byte) []byte {
	for len(syms) > 0 {
		n := copy(s.cache[s.pos:], syms)
		syms = syms[n:]
		s.pos += n
		if s.pos == len(s.cache) {
			dst = s.pack(dst, len(s.cache)/4*3)
			s.pos = 0
		}
	}
	return dst
}

// flush packs the final partial group onto dst.
//
// trailer is the number of padding characters seen, or 0.
func (s *packState) flush(dst []byte, trailer int) ([]byte, error) {
	if s.pos%4 == 1 {
		return dst, ErrInvalidLength
	}
	if trailer > 0 && (s.pos+trailer)%4 != 0 {
		return dst, ErrInvalidTrailer
	}
	clear(s.cache[s.pos:])
	dst = s.pack(dst, s.pos*3/4)
	s.pos = 0
	return dst, nil
}

func (s *packState) wipe() {
	subtle.Wipe(s.cache)
	s.pos = 0
}
