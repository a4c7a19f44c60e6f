package b64ct

import (
	"errors"
	"io"

	"github.com/ericlagergren/b64ct/internal/codec"
	"github.com/ericlagergren/b64ct/internal/subtle"
)

// bufferSize is the number of input bytes handled per call into
// the codec by the stream adapters.
const bufferSize = 1024

var errWriteAfterClose = errors.New("b64ct: write after close")

type encoder struct {
	err    error
	enc    *codec.Encoder
	w      io.Writer
	out    []byte // output buffer
	closed bool
}

// NewEncoder returns a base64 stream encoder.
//
// Data written to the returned WriteCloser will be encoded using
// enc and written to the supplied Writer.
//
// Up to one group of input and the padding are held back until
// Close, so the caller must Close the returned encoder to flush
// them.
//
// It runs in constant time.
func NewEncoder(enc *Encoding, w io.Writer) io.WriteCloser {
	return &encoder{
		enc: codec.Select().NewEncoder(enc.options()),
		w:   w,
		out: make([]byte, 0, enc.EncodedLen(bufferSize)+bufferSize),
	}
}

func (e *encoder) Write(p []byte) (n int, err error) {
	if e.err != nil {
		return 0, e.err
	}
	if e.closed {
		return 0, errWriteAfterClose
	}
	for len(p) > 0 {
		nn := min(len(p), bufferSize)
		e.out = e.enc.Write(e.out[:0], p[:nn])
		_, e.err = e.w.Write(e.out)
		subtle.Wipe(e.out)
		if e.err != nil {
			return n, e.err
		}
		n += nn
		p = p[nn:]
	}
	return n, nil
}

// Close flushes any pending output from the encoder.
// It is an error to call Write after calling Close.
func (e *encoder) Close() error {
	if e.err == nil && !e.closed {
		e.out = e.enc.Close(e.out[:0])
		_, e.err = e.w.Write(e.out)
		subtle.Wipe(e.out)
	}
	e.closed = true
	return e.err
}

type decoder struct {
	err error
	dec *codec.Decoder
	r   io.Reader
	buf [bufferSize]byte // input buffer
	arr []byte           // backing array for out
	out []byte           // leftover decoded output
}

// NewDecoder constructs a base64 stream decoder.
//
// Like Decode it accepts every Encoding's output. Decoded data
// is returned as soon as a full group is available, so if the
// stream turns out to be malformed the reader may already have
// returned some of its data before the error.
//
// It runs in constant time for each chunk read from r.
func NewDecoder(r io.Reader) io.Reader {
	d := codec.Select().NewDecoder()
	return &decoder{
		dec: d,
		r:   r,
		// Room for a full buffer plus the symbols carried over.
		arr: make([]byte, 0, d.MaxDecodedLen(2*bufferSize)),
	}
}

func (d *decoder) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}

	for len(d.out) == 0 {
		if d.err != nil {
			return 0, d.err
		}
		d.fill()
	}

	n = copy(p, d.out)
	subtle.Wipe(d.out[:n])
	d.out = d.out[n:]
	return n, nil
}

// fill reads and decodes the next chunk of input.
func (d *decoder) fill() {
	nr, rerr := d.r.Read(d.buf[:])
	out, err := d.dec.Write(d.arr[:0], d.buf[:nr])
	subtle.Wipe(d.buf[:nr])
	if err == nil && rerr == io.EOF {
		out, err = d.dec.Close(out)
	}
	// Errors are reported once the decoded output is consumed.
	switch {
	case err != nil:
		d.err = err
	case rerr != nil:
		d.err = rerr
	}
	d.arr = out[:0]
	d.out = out
}
