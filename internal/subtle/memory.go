package subtle

import "runtime"

// Wipe sets every byte in each of bufs to zero.
//
// The kernels use it to scrub blocks and group buffers that held
// decoded (possibly secret) material before they are released.
//
//go:noinline
func Wipe(bufs ...[]byte) {
	// noinline keeps the compiler from noticing that the
	// buffers are dead after the call and eliminating the
	// stores.
	for _, b := range bufs {
		for i := range b {
			b[i] = 0
		}
		runtime.KeepAlive(b)
	}
}
