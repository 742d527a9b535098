// Copyright 2026 The ringbits Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package ringbits

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCapacity is matched (via errors.Is) by every error returned
	// for a capacity outside (0, MaxCapacity].
	ErrInvalidCapacity = errors.New("invalid capacity")
	// ErrInvalidIndex is matched (via errors.Is) by every error returned
	// for an index outside [0, Size()).
	ErrInvalidIndex = errors.New("invalid index")
)

// InvalidCapacityError reports the capacity New or NewRing rejected.
type InvalidCapacityError struct {
	Capacity int
}

func (e *InvalidCapacityError) Error() string {
	if e.Capacity > 0 {
		return fmt.Sprintf("ring bit's size %d exceeds maximum of %d", e.Capacity, MaxCapacity)
	}
	return fmt.Sprintf("ring bit's size must be positive, got %d", e.Capacity)
}

func (e *InvalidCapacityError) Is(target error) bool {
	return target == ErrInvalidCapacity
}

// InvalidIndexError reports the index Get or Set rejected, along with the
// size of the array at the time of the call.
type InvalidIndexError struct {
	Index int
	Size  int
}

func (e *InvalidIndexError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("ring bit's index must be positive, got %d", e.Index)
	}
	return fmt.Sprintf("ring bit's index %d out of range (size %d)", e.Index, e.Size)
}

func (e *InvalidIndexError) Is(target error) bool {
	return target == ErrInvalidIndex
}
