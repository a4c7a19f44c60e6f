package b64ct

import (
	"slices"
	"strconv"

	"github.com/ericlagergren/b64ct/internal/codec"
	"github.com/ericlagergren/b64ct/internal/kernel"
)

// CharacterSet selects the base64 alphabet used for encoding.
type CharacterSet uint8

const (
	// Standard is the RFC 4648 alphabet, using '+' and '/'.
	Standard = CharacterSet(kernel.StdCharset)
	// URLSafe is the RFC 4648 base64url alphabet, using '-' and
	// '_'.
	URLSafe = CharacterSet(kernel.URLCharset)
)

func (cs CharacterSet) String() string {
	switch cs {
	case Standard:
		return "standard"
	case URLSafe:
		return "url"
	default:
		return "CharacterSet(" + strconv.Itoa(int(cs)) + ")"
	}
}

// Newline is the line separator used when wrapping.
type Newline uint8

const (
	// CRLF separates lines with "\r\n".
	CRLF Newline = iota
	// LF separates lines with "\n".
	LF
)

func (n Newline) String() string {
	switch n {
	case CRLF:
		return "crlf"
	case LF:
		return "lf"
	default:
		return "Newline(" + strconv.Itoa(int(n)) + ")"
	}
}

func (n Newline) token() string {
	if n == LF {
		return "\n"
	}
	return "\r\n"
}

// StdEncoding is the RFC 4648 standard encoding: padded, not
// wrapped.
//
// It uses the following table:
//
//	ABCDEFGHIJKLMNOPQRSTUVWXYZ
//	abcdefghijklmnopqrstuvwxyz
//	0123456789
//	+/
var StdEncoding = &Encoding{
	cs:      Standard,
	newline: CRLF,
	pad:     true,
}

// URLEncoding is the RFC 4648 base64url encoding: unpadded, not
// wrapped.
//
// It uses the following table:
//
//	ABCDEFGHIJKLMNOPQRSTUVWXYZ
//	abcdefghijklmnopqrstuvwxyz
//	0123456789
//	-_
var URLEncoding = &Encoding{
	cs:      URLSafe,
	newline: CRLF,
}

// MIMEEncoding is the RFC 2045 MIME encoding: the standard
// alphabet, padded, with lines of 76 characters separated by CRLF.
var MIMEEncoding = &Encoding{
	cs:         Standard,
	newline:    CRLF,
	pad:        true,
	lineLength: 76,
}

// PEMEncoding is the RFC 7468 PEM encoding: the standard
// alphabet, padded, with lines of 64 characters separated by LF.
var PEMEncoding = &Encoding{
	cs:         Standard,
	newline:    LF,
	pad:        true,
	lineLength: 64,
}

// Encoding is a particular base64 output format.
//
// The configuration only affects encoding. Decoding accepts the
// output of every Encoding.
type Encoding struct {
	cs         CharacterSet
	newline    Newline
	pad        bool
	lineLength int
}

// NewEncoding returns a padded, unwrapped Encoding using cs.
func NewEncoding(cs CharacterSet) *Encoding {
	return &Encoding{
		cs:      cs,
		newline: CRLF,
		pad:     true,
	}
}

// WithPadding returns an identical Encoding that does or does not
// pad its output with '='.
func (e Encoding) WithPadding(pad bool) *Encoding {
	e.pad = pad
	return &e
}

// WithLineLength returns an identical Encoding that wraps its
// output every n characters. Zero disables wrapping.
//
// It panics if n is negative.
func (e Encoding) WithLineLength(n int) *Encoding {
	if n < 0 {
		panic("b64ct: negative line length")
	}
	e.lineLength = n
	return &e
}

// WithNewline returns an identical Encoding that separates lines
// with nl.
func (e Encoding) WithNewline(nl Newline) *Encoding {
	e.newline = nl
	return &e
}

// CharacterSet returns the alphabet used by e.
func (e *Encoding) CharacterSet() CharacterSet {
	return e.cs
}

// Padding reports whether e pads its output.
func (e *Encoding) Padding() bool {
	return e.pad
}

// LineLength returns the line length, or zero if e does not wrap.
func (e *Encoding) LineLength() int {
	return e.lineLength
}

// Newline returns the line separator.
func (e *Encoding) Newline() Newline {
	return e.newline
}

func (e *Encoding) options() codec.Options {
	return codec.Options{
		Charset:    kernel.Charset(e.cs),
		Newline:    e.newline.token(),
		Pad:        e.pad,
		LineLength: e.lineLength,
	}
}

// EncodedLen returns the length in bytes of the base64 encoding of
// n source bytes, including padding and line separators.
func (e *Encoding) EncodedLen(n int) int {
	return codec.EncodedLen(n, e.options())
}

// Encode encodes src, writing EncodedLen(len(src)) bytes to dst.
//
// Encode runs in constant time for the length of src.
func (e *Encoding) Encode(dst, src []byte) {
	n := e.EncodedLen(len(src))
	if len(dst) < n {
		panic("b64ct: output buffer too small")
	}
	e.AppendEncode(dst[:0:n], src)
}

// AppendEncode appends the base64 encoding of src to dst and
// returns the extended buffer.
//
// AppendEncode runs in constant time for the length of src.
func (e *Encoding) AppendEncode(dst, src []byte) []byte {
	dst = slices.Grow(dst, e.EncodedLen(len(src)))
	enc := codec.Select().NewEncoder(e.options())
	dst = enc.Write(dst, src)
	return enc.Close(dst)
}

// EncodeToString returns the base64 encoding of src.
//
// EncodeToString runs in constant time for the length of src.
func (e *Encoding) EncodeToString(src []byte) string {
	return string(e.AppendEncode(nil, src))
}

// Kernel returns the name of the implementation in use: "avx2" or
// "scalar".
func Kernel() string {
	return codec.Select().Name()
}
