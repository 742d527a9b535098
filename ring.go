// Copyright 2026 The ringbits Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package ringbits

// Ring records a sliding window of the last Size() boolean outcomes and
// keeps a running count of how many of them are true.  Writes wrap around
// the backing BitArray modulo the requested size, not the rounded-up one.
type Ring struct {
	size        int
	bits        *BitArray
	index       int
	length      int
	cardinality int
}

// NewRing returns an empty Ring holding the last size values.
func NewRing(size int, opts ...Option) (*Ring, error) {
	bits, err := New(size, opts...)
	if err != nil {
		return nil, err
	}
	return &Ring{
		size:  size,
		bits:  bits,
		index: -1,
	}, nil
}

// SetNext records value in the slot after the most recent one, overwriting
// the oldest value once the ring is full, and returns the number of true
// values now in the ring.
func (r *Ring) SetNext(value bool) (int, error) {
	next := (r.index + 1) % r.size
	previous, err := r.bits.Set(next, value)
	if err != nil {
		return r.cardinality, err
	}
	if r.length < r.size {
		r.length++
	}
	r.index = next
	r.cardinality += b2i(value) - b2i(previous)
	return r.cardinality, nil
}

func b2i(v bool) int {
	if v {
		return 1
	}
	return 0
}

// Size is the window length requested in NewRing.
func (r *Ring) Size() int { return r.size }

// BitSetSize is the capacity of the backing BitArray.
func (r *Ring) BitSetSize() int { return r.bits.Size() }

// Index is the slot written by the last SetNext, or -1 if there has been
// none.
func (r *Ring) Index() int { return r.index }

// Length is the number of values recorded, at most Size.
func (r *Ring) Length() int { return r.length }

// Cardinality is the number of true values currently in the ring.
func (r *Ring) Cardinality() int { return r.cardinality }

// Checksum is the Checksum of the backing BitArray.
func (r *Ring) Checksum() uint64 { return r.bits.Checksum() }

// Close releases the backing BitArray.
func (r *Ring) Close() error {
	return r.bits.Close()
}
