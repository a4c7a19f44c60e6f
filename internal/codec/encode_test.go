package codec

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ericlagergren/b64ct/internal/kernel"
)

var (
	stdOpts = Options{
		Charset: kernel.StdCharset,
		Newline: "\r\n",
		Pad:     true,
	}
	urlOpts = Options{
		Charset: kernel.URLCharset,
		Newline: "\r\n",
	}
	pemOpts = Options{
		Charset:    kernel.StdCharset,
		Newline:    "\n",
		Pad:        true,
		LineLength: 64,
	}
)

func encode(impl Implementation, src []byte, opts Options) string {
	e := impl.NewEncoder(opts)
	dst := e.Write(nil, src)
	return string(e.Close(dst))
}

func wrapped(opts Options, n int) Options {
	opts.LineLength = n
	return opts
}

func TestEncode(t *testing.T) {
	lf := stdOpts
	lf.Newline = "\n"
	noPad := stdOpts
	noPad.Pad = false

	for i, tc := range []struct {
		input string
		opts  Options
		want  string
	}{
		{"", stdOpts, ""},
		{"f", stdOpts, "Zg=="},
		{"fo", stdOpts, "Zm8="},
		{"foo", stdOpts, "Zm9v"},
		{"foob", stdOpts, "Zm9vYg=="},
		{"fooba", stdOpts, "Zm9vYmE="},
		{"foobar", stdOpts, "Zm9vYmFy"},
		{"foobar", wrapped(stdOpts, 4), "Zm9v\r\nYmFy"},
		{"foobar", wrapped(lf, 4), "Zm9v\nYmFy"},
		{"f", noPad, "Zg"},
		{"fo", noPad, "Zm8"},
		{"\xfb\xff", urlOpts, "-_8"},
		{"\xfb\xff", stdOpts, "+/8="},
		{"f", wrapped(stdOpts, 1), "Z\r\ng\r\n=\r\n="},
		{"fo", wrapped(stdOpts, 1), "Z\r\nm\r\n8\r\n="},
		{"foob", wrapped(stdOpts, 4), "Zm9v\r\nYg=="},
		{"foob", wrapped(stdOpts, 5), "Zm9vY\r\ng=="},
		{"foob", wrapped(stdOpts, 6), "Zm9vYg\r\n=="},
		{"foob", wrapped(stdOpts, 7), "Zm9vYg=\r\n="},
		{"foob", wrapped(stdOpts, 8), "Zm9vYg=="},
		{"foobfoo", wrapped(stdOpts, 3), "Zm9\r\nvYm\r\nZvb\r\nw=="},
		{"foobfoo", wrapped(stdOpts, 4), "Zm9v\r\nYmZv\r\nbw=="},
		{"foobfoo", wrapped(stdOpts, 5), "Zm9vY\r\nmZvbw\r\n=="},
		{
			"\x00\x10\x83\x10\x51\x87\x20\x92\x8b\x30\xd3\x8f" +
				"\x41\x14\x93\x51\x55\x97\x61\x96\x9b\x71\xd7\x9f",
			stdOpts,
			"ABCDEFGHIJKLMNOPQRSTUVWXYZabcdef",
		},
	} {
		forEach(t, func(t *testing.T, impl Implementation) {
			got := encode(impl, []byte(tc.input), tc.opts)
			require.Equal(t, tc.want, got, "#%d", i)
			require.Equal(t, len(tc.want), EncodedLen(len(tc.input), tc.opts), "#%d", i)
		})
	}
}

func TestEncodeStdlib(t *testing.T) {
	rng := randSource(t)
	src := make([]byte, 1024)
	rng.Read(src)

	noPad := stdOpts
	noPad.Pad = false
	urlPad := urlOpts
	urlPad.Pad = true

	forEach(t, func(t *testing.T, impl Implementation) {
		for i := 0; i <= len(src); i++ {
			for _, tc := range []struct {
				opts   Options
				stdlib *base64.Encoding
			}{
				{stdOpts, base64.StdEncoding},
				{noPad, base64.RawStdEncoding},
				{urlPad, base64.URLEncoding},
				{urlOpts, base64.RawURLEncoding},
			} {
				want := tc.stdlib.EncodeToString(src[:i])
				got := encode(impl, src[:i], tc.opts)
				require.Equal(t, want, got, "#%d", i)
			}
		}
	})
}

func TestEncodeCrossImplementation(t *testing.T) {
	rng := randSource(t)
	src := make([]byte, 1000)
	rng.Read(src)

	for _, opts := range []Options{
		stdOpts,
		urlOpts,
		pemOpts,
		wrapped(stdOpts, 76),
		wrapped(urlOpts, 7),
	} {
		want := encode(scalarImpl(), src, opts)
		forEach(t, func(t *testing.T, impl Implementation) {
			require.Equal(t, want, encode(impl, src, opts))
		})
	}
}

// TestWrappingRoundTrip encodes with PEM-style wrapping and decodes
// the result, for every length up to two full lines and then for
// random data.
func TestWrappingRoundTrip(t *testing.T) {
	rng := randSource(t)
	bytesPerLine := pemOpts.LineLength * 3 / 4

	forEach(t, func(t *testing.T, impl Implementation) {
		var v []byte
		for i := 0; i < 2*bytesPerLine; i++ {
			got, err := decode(impl, []byte(encode(impl, v, pemOpts)))
			require.NoError(t, err)
			require.Equal(t, string(v), string(got))
			v = append(v, 0)
		}

		v = v[:0]
		for i := 0; i < 1000; i++ {
			text := encode(impl, v, pemOpts)
			require.Len(t, text, EncodedLen(len(v), pemOpts))
			got, err := decode(impl, []byte(text))
			require.NoError(t, err)
			require.Equal(t, string(v), string(got))
			v = append(v, byte(rng.Intn(256)))
		}
	})
}

func TestEncodeSplitWrites(t *testing.T) {
	rng := randSource(t)

	forEach(t, func(t *testing.T, impl Implementation) {
		for i := 0; i < 200; i++ {
			src := make([]byte, rng.Intn(300))
			rng.Read(src)
			opts := wrapped(stdOpts, rng.Intn(10))
			opts.Pad = rng.Intn(2) == 0

			want := encode(impl, src, opts)

			e := impl.NewEncoder(opts)
			var got []byte
			for rest := src; len(rest) > 0; {
				n := rng.Intn(len(rest) + 1)
				got = e.Write(got, rest[:n])
				rest = rest[n:]
			}
			got = e.Close(got)
			require.Equal(t, want, string(got), "%x %+v", src, opts)
		}
	})
}

func TestEncodedLen(t *testing.T) {
	for _, opts := range []Options{
		stdOpts,
		urlOpts,
		pemOpts,
		wrapped(stdOpts, 1),
		wrapped(urlOpts, 3),
	} {
		for n := 0; n < 200; n++ {
			want := len(encode(scalarImpl(), make([]byte, n), opts))
			require.Equal(t, want, EncodedLen(n, opts), "%d %+v", n, opts)
		}
	}
}

func TestEncoderNegativeLineLength(t *testing.T) {
	require.Panics(t, func() {
		Select().NewEncoder(wrapped(stdOpts, -1))
	})
}

func TestEncoderWriteAfterClose(t *testing.T) {
	e := Select().NewEncoder(stdOpts)
	require.Equal(t, "Zg==", string(e.Close(e.Write(nil, []byte("f")))))
	require.Panics(t, func() {
		e.Write(nil, []byte("f"))
	})
}

func BenchmarkEncode(b *testing.B) {
	rng := randSource(b)
	src := make([]byte, 1<<20)
	rng.Read(src)
	for _, impl := range Implementations() {
		impl := impl
		b.Run(impl.Name(), func(b *testing.B) {
			b.SetBytes(int64(len(src)))
			buf := make([]byte, 0, EncodedLen(len(src), stdOpts))
			for i := 0; i < b.N; i++ {
				e := impl.NewEncoder(stdOpts)
				e.Close(e.Write(buf, src))
			}
		})
	}
}
