// Copyright 2026 The ringbits Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package ringbits

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/bpowers/ringbits/internal/unsafeslice"
)

// mapWords returns n zeroed words backed by an anonymous private mapping,
// along with the mapping itself so it can later be unmapped.
func mapWords(n int) ([]uint64, []byte, error) {
	m, err := unix.Mmap(-1, 0, n*bytesPerWord, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, fmt.Errorf("unix.Mmap(%d words): %w", n, err)
	}
	// access is by arbitrary index, readahead doesn't help us
	if err := unix.Madvise(m, unix.MADV_RANDOM); err != nil {
		_ = unix.Munmap(m)
		return nil, nil, fmt.Errorf("madvise: %w", err)
	}
	return unsafeslice.BytesToU64s(m), m, nil
}

func unmapWords(m []byte) error {
	if err := unix.Munmap(m); err != nil {
		return fmt.Errorf("unix.Munmap: %w", err)
	}
	return nil
}
