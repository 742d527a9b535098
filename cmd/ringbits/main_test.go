// Copyright 2026 The ringbits Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bpowers/ringbits"
	"github.com/bpowers/ringbits/clock"
)

type fixedClock int64

func (c fixedClock) NowMillis() int64 { return int64(c) }

func TestRun(t *testing.T) {
	c := clock.NewFrozen(fixedClock(5_000))
	c.Advance(2 * time.Second)

	in := strings.NewReader("1\nfalse\n\ntrue\nt\n0\nF\n")
	var out bytes.Buffer
	require.NoError(t, run(in, &out, 4, false, c))

	expected := strings.Join([]string{
		"7000 0 1/1",
		"7000 1 1/2",
		"7000 2 2/3",
		"7000 3 3/4",
		"7000 0 2/4",
		"7000 1 2/4",
	}, "\n") + "\n"
	require.Equal(t, expected, out.String())
}

func TestRunMapped(t *testing.T) {
	in := strings.NewReader("1\n1\n1\n")
	var out bytes.Buffer
	require.NoError(t, run(in, &out, 2, false, fixedClock(1), ringbits.WithMappedStorage()))
	require.Equal(t, "1 0 1/1\n1 1 2/2\n1 0 2/2\n", out.String())
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer
	err := run(strings.NewReader("1\n"), &out, 0, false, fixedClock(0))
	require.ErrorIs(t, err, ringbits.ErrInvalidCapacity)

	err = run(strings.NewReader("1\nmaybe\n"), &out, 8, false, fixedClock(0))
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 2")
}

func TestRunBadLineKeepsEarlierOutput(t *testing.T) {
	var out bytes.Buffer
	err := run(strings.NewReader("1\n0\n1\nmaybe\n1\n"), &out, 8, false, fixedClock(3))
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 4")
	require.Equal(t, "3 0 1/1\n3 1 1/2\n3 2 2/3\n", out.String())
}

func TestRunChecksum(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(strings.NewReader("1\n0\n1\n1\n0\n"), &out, 4, true, fixedClock(0)))

	// the fifth value wraps around and clears slot 0
	expected, err := ringbits.New(4)
	require.NoError(t, err)
	defer expected.Close()
	for _, i := range []int{2, 3} {
		_, err := expected.Set(i, true)
		require.NoError(t, err)
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	require.Equal(t, fmt.Sprintf("checksum %016x", expected.Checksum()), lines[5])
}
