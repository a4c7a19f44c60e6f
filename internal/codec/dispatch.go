// Package codec implements streaming base64 decoding and encoding
// on top of the block kernels in package kernel.
package codec

import (
	"os"
	"sync"

	"github.com/ericlagergren/b64ct/internal/avx2"
	"github.com/ericlagergren/b64ct/internal/kernel"
	"github.com/ericlagergren/b64ct/internal/scalar"
)

// KernelEnv is the environment variable that, when set to
// "scalar", disables the vector kernels.
const KernelEnv = "B64CT_KERNEL"

// Implementation is a set of kernels used together.
type Implementation struct {
	name     string
	decoder  kernel.Decoder
	packer   kernel.Packer
	encoder  kernel.Encoder
	unpacker kernel.Unpacker
}

// Name returns the name of the implementation.
func (impl Implementation) Name() string {
	return impl.name
}

// NewDecoder returns a Decoder using impl's kernels.
func (impl Implementation) NewDecoder() *Decoder {
	return newDecoder(impl.decoder, impl.packer)
}

// NewEncoder returns an Encoder using impl's kernels.
//
// It panics if opts.LineLength is negative.
func (impl Implementation) NewEncoder(opts Options) *Encoder {
	return newEncoder(impl.encoder, impl.unpacker, opts)
}

func scalarImpl() Implementation {
	return Implementation{
		name:     "scalar",
		decoder:  scalar.Kernel{},
		packer:   scalar.SimplePacker{},
		encoder:  scalar.Kernel{},
		unpacker: scalar.SimpleUnpacker{},
	}
}

func vectorImpl(k avx2.Kernel) Implementation {
	return Implementation{
		name:     "avx2",
		decoder:  k,
		packer:   k.Packer(),
		encoder:  k,
		unpacker: k.Unpacker(),
	}
}

// Select returns the fastest Implementation supported by the CPU.
// The choice is made once.
var Select = sync.OnceValue(func() Implementation {
	if os.Getenv(KernelEnv) == "scalar" {
		return scalarImpl()
	}
	if k, ok := avx2.New(); ok {
		return vectorImpl(k)
	}
	return scalarImpl()
})

// Implementations returns every pairing of kernels supported by
// the CPU, starting with the scalar one.
func Implementations() []Implementation {
	impls := []Implementation{scalarImpl()}
	k, ok := avx2.New()
	if !ok {
		return impls
	}
	return append(impls,
		Implementation{
			name:     "avx2/simple",
			decoder:  k,
			packer:   scalar.SimplePacker{},
			encoder:  k,
			unpacker: scalar.SimpleUnpacker{},
		},
		Implementation{
			name:     "scalar/avx2",
			decoder:  scalar.Kernel{},
			packer:   k.Packer(),
			encoder:  scalar.Kernel{},
			unpacker: k.Unpacker(),
		},
		vectorImpl(k),
	)
}
