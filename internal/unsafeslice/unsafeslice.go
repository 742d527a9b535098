// Copyright 2026 The ringbits Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package unsafeslice reinterprets word slices as byte slices and back
// without copying.
package unsafeslice

import (
	"unsafe"
)

const wordSize = int(unsafe.Sizeof(uint64(0)))

// U64sToBytes returns a byte slice referring to the contents of w, in
// native byte order.
// SAFETY: the returned slice aliases w and must not outlive it.
func U64sToBytes(w []uint64) []byte {
	if len(w) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&w[0])), len(w)*wordSize)
}

// BytesToU64s returns a word slice referring to the contents of b.  Any
// trailing bytes that don't fill a whole word are ignored.
// SAFETY: b must be 8-byte aligned (mmap'd memory always is) and the
// returned slice must not outlive it.
func BytesToU64s(b []byte) []uint64 {
	n := len(b) / wordSize
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*uint64)(unsafe.Pointer(&b[0])), n)
}
