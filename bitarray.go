// Copyright 2026 The ringbits Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package ringbits provides a fixed-capacity, word-packed bit array and a
// ring on top of it that tracks how many of the last N recorded outcomes
// were true.
package ringbits

import (
	"log/slog"
	"math"

	"github.com/dgryski/go-farm"

	"github.com/bpowers/ringbits/internal/unsafeslice"
)

const (
	addressBitsPerWord = 6
	bitsPerWord        = 1 << addressBitsPerWord
	bitIndexMask       = bitsPerWord - 1
	bytesPerWord       = bitsPerWord / 8

	// maxWords keeps Size() within an int and the allocation within what
	// the runtime (and mmap) will hand out on 64-bit platforms.
	maxWords = min(math.MaxInt>>addressBitsPerWord, (1<<47)/bytesPerWord)

	// MaxCapacity is the largest capacity New accepts.
	MaxCapacity = maxWords << addressBitsPerWord
)

// BitArray is a flat, linearly addressed array of bits packed into 64-bit
// words.  Its capacity is fixed at construction and always a multiple of 64.
//
// A BitArray is not safe for concurrent use; callers sharing one between
// goroutines must provide their own locking.
type BitArray struct {
	size   int
	words  []uint64
	mapped []byte // non-nil when words live in an mmap'd region
	logger *slog.Logger
}

// WordIndex returns the index of the word containing bitIndex.  It does no
// bounds checking.
func WordIndex(bitIndex int) int {
	return bitIndex >> addressBitsPerWord
}

func getOffsets(bitIndex int) (wordOff int, mask uint64) {
	wordOff = WordIndex(bitIndex)
	mask = 1 << (uint(bitIndex) & bitIndexMask)
	return
}

// New returns a BitArray able to address at least capacity bits, all of
// which are initially false.  The capacity is rounded up to the next whole
// word; use Size to find the actual capacity.
func New(capacity int, opts ...Option) (*BitArray, error) {
	if capacity <= 0 || capacity > MaxCapacity {
		return nil, &InvalidCapacityError{Capacity: capacity}
	}
	o := newOptions(opts)

	wordCount := WordIndex(capacity-1) + 1
	b := &BitArray{
		size:   wordCount << addressBitsPerWord,
		logger: o.logger,
	}
	if o.mapped {
		words, m, err := mapWords(wordCount)
		if err != nil {
			return nil, err
		}
		b.words = words
		b.mapped = m
	} else {
		b.words = make([]uint64, wordCount)
	}

	b.logger.Debug("allocated bit array",
		"requested", capacity,
		"size", b.size,
		"words", wordCount,
		"mapped", o.mapped)

	return b, nil
}

// Size returns the number of addressable bits, which may be larger than
// the capacity passed to New.  It is 0 after Close.
func (b *BitArray) Size() int {
	return b.size
}

func (b *BitArray) checkIndex(bitIndex int) error {
	if bitIndex < 0 || bitIndex >= b.size {
		return &InvalidIndexError{Index: bitIndex, Size: b.size}
	}
	return nil
}

// Get returns the value of the bit at bitIndex.
func (b *BitArray) Get(bitIndex int) (bool, error) {
	if err := b.checkIndex(bitIndex); err != nil {
		return false, err
	}
	wordOff, mask := getOffsets(bitIndex)
	return b.words[wordOff]&mask != 0, nil
}

// Set sets the bit at bitIndex to value and returns the bit's previous
// value.
func (b *BitArray) Set(bitIndex int, value bool) (previous bool, err error) {
	if err = b.checkIndex(bitIndex); err != nil {
		return false, err
	}
	wordOff, mask := getOffsets(bitIndex)
	word := &b.words[wordOff]
	previous = *word&mask != 0
	if value {
		*word |= mask
	} else {
		*word &^= mask
	}
	return previous, nil
}

// Checksum returns a farmhash of the underlying words.  Two arrays of the
// same size with the same bits set have the same checksum within a process;
// it is not stable across architectures of differing byte order.
func (b *BitArray) Checksum() uint64 {
	return farm.Hash64(unsafeslice.U64sToBytes(b.words))
}

// Close releases the array's storage.  It is safe to call more than once;
// only the first call does anything.  After Close every index is out of
// range.
func (b *BitArray) Close() error {
	if b.size == 0 {
		return nil
	}
	size := b.size
	m := b.mapped
	b.size = 0
	b.words = nil
	b.mapped = nil

	if m != nil {
		if err := unmapWords(m); err != nil {
			return err
		}
	}
	b.logger.Debug("released bit array", "size", size, "mapped", m != nil)
	return nil
}
