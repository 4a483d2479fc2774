// Package memzero wipes secret bytes in place.
package memzero

import "runtime"

// Zero overwrites b with zeros. The slice is kept live past the write so
// the store is not treated as dead.
//
//go:noinline
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	clear(b)
	runtime.KeepAlive(b)
}

// IsZero reports whether every byte of b is zero.
func IsZero(b []byte) bool {
	var acc byte
	for _, v := range b {
		acc |= v
	}
	return acc == 0
}
