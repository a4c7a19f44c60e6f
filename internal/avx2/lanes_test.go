package avx2

import "encoding/binary"

// vec256 holds the 32 byte lanes of a 256-bit register. Lanes
// 0-15 are the low 128-bit half and lanes 16-31 the high half.
//
// The functions in this file each model one AVX2 (or SSE4.2)
// instruction, named after its intrinsic, and share its exact
// semantics, including the per-half behavior of the shuffles.
// They are a plain reference for the assembly, so unlike the
// assembly they freely branch and index.
type vec256 [32]byte

// mask returns 0xff if v is true and 0x00 otherwise.
func mask(v bool) byte {
	if v {
		return 0xff
	}
	return 0
}

// set1 is _mm256_set1_epi8.
func set1(b byte) (r vec256) {
	for i := range r {
		r[i] = b
	}
	return r
}

// set1Epi16 is _mm256_set1_epi16.
func set1Epi16(w uint16) (r vec256) {
	for i := 0; i < len(r); i += 2 {
		binary.LittleEndian.PutUint16(r[i:], w)
	}
	return r
}

// set1Epi32 is _mm256_set1_epi32.
func set1Epi32(d uint32) (r vec256) {
	for i := 0; i < len(r); i += 4 {
		binary.LittleEndian.PutUint32(r[i:], d)
	}
	return r
}

// setHalves is _mm256_set_m128i(hi, lo).
func setHalves(hi, lo [16]byte) (r vec256) {
	copy(r[:16], lo[:])
	copy(r[16:], hi[:])
	return r
}

// dup is setHalves(e, e): the same 16-byte table in both halves.
func dup(e [16]byte) vec256 {
	return setHalves(e, e)
}

// dupSigned is dup for tables of signed values.
func dupSigned(e [16]int8) vec256 {
	var u [16]byte
	for i, v := range e {
		u[i] = byte(v)
	}
	return dup(u)
}

// extract128 is _mm256_extracti128_si256.
func extract128(a vec256, half int) (r [16]byte) {
	copy(r[:], a[16*half:16*half+16])
	return r
}

// and is _mm256_and_si256.
func and(a, b vec256) (r vec256) {
	for i := range r {
		r[i] = a[i] & b[i]
	}
	return r
}

// or is _mm256_or_si256.
func or(a, b vec256) (r vec256) {
	for i := range r {
		r[i] = a[i] | b[i]
	}
	return r
}

// not is _mm256_xor_si256(a, _mm256_set1_epi8(-1)).
func not(a vec256) (r vec256) {
	for i := range r {
		r[i] = ^a[i]
	}
	return r
}

// add8 is _mm256_add_epi8.
func add8(a, b vec256) (r vec256) {
	for i := range r {
		r[i] = a[i] + b[i]
	}
	return r
}

// sub8 is _mm256_sub_epi8.
func sub8(a, b vec256) (r vec256) {
	for i := range r {
		r[i] = a[i] - b[i]
	}
	return r
}

// subsU8 is _mm256_subs_epu8: a-b, saturating at zero.
func subsU8(a, b vec256) (r vec256) {
	for i := range r {
		if a[i] > b[i] {
			r[i] = a[i] - b[i]
		}
	}
	return r
}

// cmpeq8 is _mm256_cmpeq_epi8.
func cmpeq8(a, b vec256) (r vec256) {
	for i := range r {
		r[i] = mask(a[i] == b[i])
	}
	return r
}

// cmpgt8 is _mm256_cmpgt_epi8: a > b as signed bytes.
func cmpgt8(a, b vec256) (r vec256) {
	for i := range r {
		r[i] = mask(int8(a[i]) > int8(b[i]))
	}
	return r
}

// movemask8 is _mm256_movemask_epi8: bit i of the result is the
// sign bit of lane i.
func movemask8(a vec256) (m uint32) {
	for i := range a {
		m |= uint32(a[i]>>7) << i
	}
	return m
}

// blendv8 is _mm256_blendv_epi8: lane i is b[i] if the sign bit
// of mask[i] is set and a[i] otherwise.
func blendv8(a, b, mask vec256) (r vec256) {
	for i := range r {
		m := byte(int8(mask[i]) >> 7)
		r[i] = a[i]&^m | b[i]&m
	}
	return r
}

// shuffle8 is _mm256_shuffle_epi8: lane i is
//
//	tbl[half(i) + idx[i]&0x0f]
//
// or zero if the sign bit of idx[i] is set. Each half of idx only
// selects from the same half of tbl.
func shuffle8(tbl, idx vec256) (r vec256) {
	for i := range r {
		if idx[i]&0x80 == 0 {
			r[i] = tbl[i&^15+int(idx[i]&0x0f)]
		}
	}
	return r
}

// srli16 is _mm256_srli_epi16.
func srli16(a vec256, n uint) (r vec256) {
	for i := 0; i < len(r); i += 2 {
		w := binary.LittleEndian.Uint16(a[i:])
		binary.LittleEndian.PutUint16(r[i:], w>>n)
	}
	return r
}

// maddubs16 is _mm256_maddubs_epi16: each 16-bit lane is
//
//	a[2k]*b[2k] + a[2k+1]*b[2k+1]
//
// with a unsigned, b signed and the sum saturated to int16.
func maddubs16(a, b vec256) (r vec256) {
	for i := 0; i < len(r); i += 2 {
		s := int(a[i])*int(int8(b[i])) + int(a[i+1])*int(int8(b[i+1]))
		s = min(max(s, -1<<15), 1<<15-1)
		binary.LittleEndian.PutUint16(r[i:], uint16(s))
	}
	return r
}

// madd16 is _mm256_madd_epi16: each 32-bit lane is the sum of the
// products of the two signed 16-bit lanes it covers.
func madd16(a, b vec256) (r vec256) {
	for i := 0; i < len(r); i += 4 {
		a0 := int32(int16(binary.LittleEndian.Uint16(a[i:])))
		a1 := int32(int16(binary.LittleEndian.Uint16(a[i+2:])))
		b0 := int32(int16(binary.LittleEndian.Uint16(b[i:])))
		b1 := int32(int16(binary.LittleEndian.Uint16(b[i+2:])))
		binary.LittleEndian.PutUint32(r[i:], uint32(a0*b0+a1*b1))
	}
	return r
}

// mulhiU16 is _mm256_mulhi_epu16.
func mulhiU16(a, b vec256) (r vec256) {
	for i := 0; i < len(r); i += 2 {
		x := uint32(binary.LittleEndian.Uint16(a[i:]))
		y := uint32(binary.LittleEndian.Uint16(b[i:]))
		binary.LittleEndian.PutUint16(r[i:], uint16(x*y>>16))
	}
	return r
}

// mullo16 is _mm256_mullo_epi16.
func mullo16(a, b vec256) (r vec256) {
	for i := 0; i < len(r); i += 2 {
		x := binary.LittleEndian.Uint16(a[i:])
		y := binary.LittleEndian.Uint16(b[i:])
		binary.LittleEndian.PutUint16(r[i:], x*y)
	}
	return r
}

// cmpestrmRanges is _mm_cmpestrm(set, setLen, a, 16, flags) with
// flags _SIDD_UBYTE_OPS|_SIDD_CMP_RANGES|_SIDD_BIT_MASK: bit i of
// the result is set iff a[i] falls in one of the inclusive ranges
// [set[2k], set[2k+1]] for 2k+1 < setLen.
func cmpestrmRanges(set [16]byte, setLen int, a [16]byte) (m uint16) {
	for i, c := range a {
		for k := 0; k+1 < setLen; k += 2 {
			if c >= set[k] && c <= set[k+1] {
				m |= 1 << i
			}
		}
	}
	return m
}
