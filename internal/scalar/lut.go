package scalar

import "unsafe"

// CacheLineSize is the cache line size the lookup tables are
// aligned to.
const CacheLineSize = 64

// CacheLine is a lookup table that occupies exactly one cache
// line.
type CacheLine = [CacheLineSize]byte

// arena backs every CacheLine table. It is large enough to hold
// numLines tables after skipping up to CacheLineSize-1 bytes to
// reach a line boundary. Package-level variables are never moved
// by the runtime, so the alignment computed once stays valid.
var arena [numLines*CacheLineSize + CacheLineSize - 1]byte

const numLines = 4

// lines counts the tables carved out of arena so far.
var lines int

// newCacheLine copies t into the next free, aligned line of
// arena and returns it.
//
// It is only called during package initialization.
func newCacheLine(t *CacheLine) *CacheLine {
	if lines >= numLines {
		panic("b64ct: out of cache lines")
	}
	base := uintptr(unsafe.Pointer(&arena[0]))
	off := int((CacheLineSize - base%CacheLineSize) % CacheLineSize)
	off += lines * CacheLineSize
	lines++

	line := (*CacheLine)(arena[off : off+CacheLineSize])
	*line = *t
	return line
}

// aligned reports whether t starts on a cache line boundary.
func aligned(t *CacheLine) bool {
	return uintptr(unsafe.Pointer(t))%CacheLineSize == 0
}
