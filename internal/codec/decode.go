package codec

import (
	"errors"

	"github.com/ericlagergren/b64ct/internal/kernel"
	"github.com/ericlagergren/b64ct/internal/subtle"
)

var errDecoderClosed = errors.New("b64ct: write to closed decoder")

type decodeState uint8

const (
	// scanning is the initial state: blocks are decoded and their
	// symbols packed.
	scanning decodeState = iota
	// inTrailer is entered on the first '='. Only whitespace and
	// one more '=' may follow.
	inTrailer
	// closed is entered by Close.
	closed
)

// Decoder is an incremental base64 decoder.
//
// Input may be split across calls to Write at any point, including
// inside the padding. Decoded bytes are appended to the caller's
// buffer as soon as a full group is available; the last partial
// group is only emitted by Close.
//
// Once Write or Close fails the Decoder is unusable and every
// later call returns the same error.
type Decoder struct {
	dec     kernel.Decoder
	pack    packState
	block   []byte
	raw     []byte // buffered input, shorter than a block
	off     int64  // offset of the first unprocessed input byte
	state   decodeState
	trailer int
	err     error
}

func newDecoder(dec kernel.Decoder, p kernel.Packer) *Decoder {
	bs := dec.BlockSize()
	return &Decoder{
		dec:   dec,
		pack:  newPackState(p),
		block: make([]byte, bs),
		raw:   make([]byte, 0, bs),
	}
}

// Write decodes src, appending complete groups to dst.
//
// On failure the bytes appended by this call are wiped and dst is
// returned at its original length.
func (d *Decoder) Write(dst, src []byte) ([]byte, error) {
	if d.err != nil {
		return dst, d.err
	}
	if d.state == closed {
		return dst, errDecoderClosed
	}
	start := len(dst)
	dst, err := d.write(dst, src)
	if err != nil {
		return d.fail(dst, start, err)
	}
	return dst, nil
}

func (d *Decoder) write(dst, src []byte) ([]byte, error) {
	bs := len(d.block)
	for len(src) > 0 {
		var err error
		switch d.state {
		case scanning:
			if len(d.raw) == 0 && len(src) >= bs {
				dst, err = d.decodeChunk(dst, src[:bs])
				src = src[bs:]
				break
			}
			n := min(bs-len(d.raw), len(src))
			d.raw = append(d.raw, src[:n]...)
			src = src[n:]
			if len(d.raw) == bs {
				dst, err = d.decodeChunk(dst, d.raw)
				subtle.Wipe(d.raw)
				d.raw = d.raw[:0]
			}
		case inTrailer:
			err = d.scanTrailer(src, d.off)
			d.off += int64(len(src))
			src = nil
		}
		if err != nil {
			return dst, err
		}
	}
	return dst, nil
}

// decodeChunk decodes one block's worth of input, or less for the
// final chunk, starting at d.off.
func (d *Decoder) decodeChunk(dst, chunk []byte) ([]byte, error) {
	n := copy(d.block, chunk)
	for i := n; i < len(d.block); i++ {
		d.block[i] = ' '
	}
	res := d.dec.DecodeBlock(d.block)

	switch idx := res.FirstInvalid; {
	case idx < 0:
	case idx >= len(chunk):
		panic("b64ct: invalid byte in block padding")
	case chunk[idx] == '=':
		d.state = inTrailer
		d.trailer = 1
		if err := d.scanTrailer(chunk[idx+1:], d.off+int64(idx)+1); err != nil {
			return dst, err
		}
	default:
		return dst, InvalidCharacterError(d.off + int64(idx))
	}

	dst = d.pack.extend(dst, d.block[:res.OutLength])
	subtle.Wipe(d.block)
	d.off += int64(len(chunk))
	return dst, nil
}

// scanTrailer checks the input that follows the first '='. off
// is the offset of p[0].
func (d *Decoder) scanTrailer(p []byte, off int64) error {
	for i, c := range p {
		switch {
		case kernel.Whitespace(c):
		case c == '=' && d.trailer == 1:
			d.trailer = 2
		default:
			return InvalidCharacterError(off + int64(i))
		}
	}
	return nil
}

// Close decodes any buffered input and the final partial group,
// appending the result to dst.
func (d *Decoder) Close(dst []byte) ([]byte, error) {
	if d.err != nil {
		return dst, d.err
	}
	if d.state == closed {
		return dst, nil
	}
	start := len(dst)
	var err error
	if d.state == scanning && len(d.raw) > 0 {
		dst, err = d.decodeChunk(dst, d.raw)
	}
	if err == nil {
		dst, err = d.pack.flush(dst, d.trailer)
	}
	if err != nil {
		return d.fail(dst, start, err)
	}
	d.state = closed
	d.wipe()
	return dst, nil
}

// fail records err and scrubs everything decoded since start.
func (d *Decoder) fail(dst []byte, start int, err error) ([]byte, error) {
	d.err = err
	d.wipe()
	subtle.Wipe(dst[start:])
	return dst[:start], err
}

func (d *Decoder) wipe() {
	d.pack.wipe()
	subtle.Wipe(d.block, d.raw[:cap(d.raw)])
	d.raw = d.raw[:0]
}

// MaxDecodedLen returns the capacity needed to decode n bytes in a
// single Write and Close, including the scratch space used by the
// Packer.
func (d *Decoder) MaxDecodedLen(n int) int {
	in := d.pack.p.InputSize()
	return n/in*(in/4*3) + d.pack.p.OutputSize()
}
