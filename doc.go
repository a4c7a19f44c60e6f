// Package b64ct implements base64 encoding and decoding that
// resists software side-channel attacks.
//
// The running time and memory access pattern of this package
// depend only on the length of the input, the amount and placement
// of whitespace and the position of the padding, never on the
// encoded data itself. This makes it suitable for decoding key
// material, such as PEM-encoded private keys.
//
// # Implementation
//
// The implementation is chosen once, at first use:
//
//   - On x86-64 CPUs with AVX2, BMI1, SSE4.2 and POPCNT the AVX2
//     kernels are used. They process 32 bytes at a time and have
//     no data-dependent memory accesses.
//   - Elsewhere, and in builds with the purego tag, every table
//     lookup stays within one 64-byte aligned table. On CPUs with
//     64-byte cache lines this defeats the usual cache-timing
//     attacks, but it is known not to be sufficient on every CPU
//     (see CacheBleed).
//
// Setting the environment variable B64CT_KERNEL=scalar selects the
// second implementation everywhere. Kernel reports the choice.
//
// Neither implementation protects against power or
// electromagnetic analysis.
//
// # Comparison to encoding/base64
//
// Decoding accepts both the standard and the URL-safe alphabet,
// with or without padding, and skips ASCII whitespace (space, tab,
// line feed, form feed and carriage return) anywhere before the
// padding and between padding characters. It is therefore
// independent of the Encoding used.
//
// Unlike encoding/base64, decoding never returns partial data. If
// the input is malformed, nothing is written to dst and whatever
// was decoded is wiped.
//
//	src := []byte("aGVsb?8=")
//	base64.StdEncoding.Decode(dst, src) // 3, CorruptInputError(5)
//	b64ct.Decode(dst, src)              // 0, InvalidCharacterError(5)
package b64ct
