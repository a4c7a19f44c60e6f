// Package avx2 implements the 32-byte base64 kernels.
//
// The kernels are AVX2 assembly generated by the program in
// _asm. Every step is a full-width register operation: table
// lookups are VPSHUFB shuffles on registers rather than loads, so
// unlike package scalar the kernels have no secret-dependent
// memory accesses at all.
//
// The kernels can only be reached through a Kernel, which in turn
// can only be obtained from New on a CPU that has the full
// instruction set. Builds for other architectures, or with the
// purego tag, have no kernels and New always fails.
package avx2

import (
	"golang.org/x/sys/cpu"

	"github.com/ericlagergren/b64ct/internal/kernel"
)

// supported reports whether the kernels are built in and the CPU
// has every instruction they and their Go drivers use.
var supported = func() bool {
	return haveAsm &&
		cpu.X86.HasAVX2 &&
		cpu.X86.HasBMI1 &&
		cpu.X86.HasSSE42 &&
		cpu.X86.HasPOPCNT
}

// features is the witness created by New.
type features struct {
	ok bool
}

// must panics unless f came from New.
func (f *features) must() {
	if f == nil || !f.ok {
		panic("avx2: Kernel not created by New")
	}
}

// Kernel is the 32-byte Decoder and Encoder.
//
// The zero Kernel is invalid: its methods panic.
type Kernel struct {
	f *features
}

var (
	_ kernel.Decoder = Kernel{}
	_ kernel.Encoder = Kernel{}
)

// New returns a Kernel if the CPU supports it.
func New() (Kernel, bool) {
	if !supported() {
		return Kernel{}, false
	}
	return Kernel{f: &features{ok: true}}, true
}

// BlockSize returns 32.
func (Kernel) BlockSize() int { return 32 }

// Packer returns the Packer paired with k.
func (k Kernel) Packer() Packer {
	k.f.must()
	return Packer{k: k}
}

// Unpacker returns the Unpacker paired with k.
func (k Kernel) Unpacker() Unpacker {
	k.f.must()
	return Unpacker{k: k}
}
