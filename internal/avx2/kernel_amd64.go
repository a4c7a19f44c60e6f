//go:build amd64 && !purego

package avx2

const haveAsm = true
