// Copyright 2026 The ringbits Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSystem(t *testing.T) {
	before := time.Now().UnixMilli()
	now := System{}.NowMillis()
	after := time.Now().UnixMilli()

	require.GreaterOrEqual(t, now, before)
	require.LessOrEqual(t, now, after)
}

func TestDefault(t *testing.T) {
	require.Equal(t, System{}, Default())
}

type fixedClock int64

func (c fixedClock) NowMillis() int64 { return int64(c) }

func TestFrozen(t *testing.T) {
	c := NewFrozen(fixedClock(1_000))
	require.Equal(t, int64(1_000), c.NowMillis())
	require.Equal(t, int64(1_000), c.NowMillis())

	c.Advance(3 * time.Second)
	require.Equal(t, int64(4_000), c.NowMillis())

	// sub-millisecond advances are dropped
	c.Advance(999 * time.Microsecond)
	require.Equal(t, int64(4_000), c.NowMillis())

	c.Advance(1500 * time.Microsecond)
	require.Equal(t, int64(4_001), c.NowMillis())
}

func TestFrozenDefaultParent(t *testing.T) {
	before := time.Now().UnixMilli()
	c := NewFrozen(nil)
	after := time.Now().UnixMilli()

	require.GreaterOrEqual(t, c.NowMillis(), before)
	require.LessOrEqual(t, c.NowMillis(), after)
}
