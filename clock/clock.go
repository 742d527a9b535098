// Copyright 2026 The ringbits Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package clock provides millisecond wall-clock time sources.
package clock

import (
	"time"

	"golang.org/x/sys/unix"
)

// Clock reports the current time in milliseconds since the Unix epoch.
type Clock interface {
	NowMillis() int64
}

// System reads the operating system's wall clock.
type System struct{}

var defaultClock Clock = System{}

// Default returns the shared System clock.
func Default() Clock {
	return defaultClock
}

// NowMillis returns the wall-clock time from gettimeofday.
func (System) NowMillis() int64 {
	var tv unix.Timeval
	if err := unix.Gettimeofday(&tv); err != nil {
		return time.Now().UnixMilli()
	}
	sec, nsec := tv.Unix()
	return sec*1000 + nsec/int64(time.Millisecond)
}

// Frozen is a Clock that only moves when told to, for tests.
type Frozen struct {
	now int64
}

// NewFrozen returns a Frozen clock stopped at parent's current time.  A nil
// parent means the Default clock.
func NewFrozen(parent Clock) *Frozen {
	if parent == nil {
		parent = Default()
	}
	return &Frozen{now: parent.NowMillis()}
}

// NowMillis returns the time the clock is stopped at.
func (c *Frozen) NowMillis() int64 {
	return c.now
}

// Advance moves the clock forward by d, truncated to whole milliseconds.
func (c *Frozen) Advance(d time.Duration) {
	c.now += d.Milliseconds()
}
