package codec

import (
	"github.com/ericlagergren/b64ct/internal/kernel"
	"github.com/ericlagergren/b64ct/internal/subtle"
)

// Options configures an Encoder.
type Options struct {
	// Charset selects the symbols for 62 and 63.
	Charset kernel.Charset
	// Newline is inserted between lines. It is only used if
	// LineLength > 0.
	Newline string
	// Pad appends '=' until the output is a multiple of four
	// symbols.
	Pad bool
	// LineLength is the number of symbols per line, or 0 for no
	// wrapping.
	LineLength int
}

// EncodedLen returns the length of the encoding of n bytes.
func EncodedLen(n int, opts Options) int {
	var m int
	if opts.Pad {
		m = (n + 2) / 3 * 4
	} else {
		m = (n*4 + 2) / 3
	}
	if opts.LineLength > 0 && m > 0 {
		m += (m - 1) / opts.LineLength * len(opts.Newline)
	}
	return m
}

// Encoder is an incremental base64 encoder.
//
// Input may be split across calls to Write at any point; the
// output is the same as if it had been passed to a single Write.
// Padding is emitted by Close.
type Encoder struct {
	enc   kernel.Encoder
	unp   kernel.Unpacker
	opts  Options
	buf   []byte // unpacked symbols, a whole number of blocks
	in    []byte // one Unpacker input
	carry []byte // pending input, shorter than a group
	group int    // input bytes that fill buf
	col   int    // symbols on the current line
	n     int64  // total input bytes
	done  bool
}

func newEncoder(e kernel.Encoder, u kernel.Unpacker, opts Options) *Encoder {
	if opts.LineLength < 0 {
		panic("b64ct: negative line length")
	}
	size := lcm(u.OutputSize(), e.BlockSize())
	group := size / u.OutputSize() * u.InputSize()
	return &Encoder{
		enc:   e,
		unp:   u,
		opts:  opts,
		buf:   make([]byte, size),
		in:    make([]byte, u.InputSize()),
		carry: make([]byte, 0, group),
		group: group,
	}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}

// Write encodes src, appending every complete group to dst.
//
// It panics if called after Close.
func (e *Encoder) Write(dst, src []byte) []byte {
	if e.done {
		panic("b64ct: write to closed encoder")
	}
	e.n += int64(len(src))

	// Leading fringe.
	if len(e.carry) > 0 {
		n := min(e.group-len(e.carry), len(src))
		e.carry = append(e.carry, src[:n]...)
		src = src[n:]
		if len(e.carry) < e.group {
			return dst
		}
		dst = e.encodeGroup(dst, e.carry)
		subtle.Wipe(e.carry)
		e.carry = e.carry[:0]
	}

	// Interior groups.
	for len(src) >= e.group {
		dst = e.encodeGroup(dst, src[:e.group])
		src = src[e.group:]
	}

	// Trailing fringe.
	e.carry = append(e.carry, src...)
	return dst
}

// encodeGroup encodes at most one group of input, appending
// ceil(len(src)*4/3) symbols to dst.
func (e *Encoder) encodeGroup(dst, src []byte) []byte {
	n := len(src)

	uout := e.unp.OutputSize()
	for i := 0; i < len(e.buf); i += uout {
		m := copy(e.in, src)
		clear(e.in[m:])
		src = src[m:]
		e.unp.UnpackBlock(e.buf[i:i+uout], e.in)
	}
	bs := e.enc.BlockSize()
	for i := 0; i < len(e.buf); i += bs {
		e.enc.EncodeBlock(e.buf[i:i+bs], e.opts.Charset)
	}

	dst = e.wrap(dst, e.buf[:(n*4+2)/3])
	subtle.Wipe(e.buf, e.in)
	return dst
}

// wrap appends p to dst, starting a new line before any symbol
// that would not fit on the current one. A line is never ended
// unless something follows it.
func (e *Encoder) wrap(dst, p []byte) []byte {
	if e.opts.LineLength == 0 {
		return append(dst, p...)
	}
	for len(p) > 0 {
		if e.col == e.opts.LineLength {
			dst = append(dst, e.opts.Newline...)
			e.col = 0
		}
		n := min(len(p), e.opts.LineLength-e.col)
		dst = append(dst, p[:n]...)
		e.col += n
		p = p[n:]
	}
	return dst
}

var padding = []byte("==")

// Close encodes the buffered input and appends the padding, if
// any, to dst.
func (e *Encoder) Close(dst []byte) []byte {
	if e.done {
		return dst
	}
	e.done = true

	if len(e.carry) > 0 {
		dst = e.encodeGroup(dst, e.carry)
		subtle.Wipe(e.carry)
		e.carry = e.carry[:0]
	}
	if e.opts.Pad {
		dst = e.wrap(dst, padding[:(3-e.n%3)%3])
	}
	return dst
}
