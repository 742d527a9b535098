// Copyright 2026 The ringbits Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Command ringbits reads one boolean per line from stdin, records each in a
// fixed-size ring and prints how many of the last -size values were true.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/bpowers/ringbits"
	"github.com/bpowers/ringbits/clock"
)

var (
	sizeFlag     = flag.Int("size", 100, "number of values to keep in the ring")
	mmapFlag     = flag.Bool("mmap", false, "allocate ring storage with mmap")
	verboseFlag  = flag.Bool("v", false, "log debug output to stderr")
	checksumFlag = flag.Bool("checksum", false, "print a checksum of the ring's bits after the last value")
)

func run(in io.Reader, out io.Writer, size int, checksum bool, c clock.Clock, opts ...ringbits.Option) (err error) {
	r, err := ringbits.NewRing(size, opts...)
	if err != nil {
		return fmt.Errorf("ringbits.NewRing: %w", err)
	}
	defer func() {
		_ = r.Close()
	}()

	// output for lines before a bad one is still written
	w := bufio.NewWriter(out)
	defer func() {
		if ferr := w.Flush(); err == nil {
			err = ferr
		}
	}()
	s := bufio.NewScanner(in)
	line := 0
	for s.Scan() {
		line++
		text := strings.TrimSpace(s.Text())
		if text == "" {
			continue
		}
		v, err := strconv.ParseBool(text)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		cardinality, err := r.SetNext(v)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if _, err := fmt.Fprintf(w, "%d %d %d/%d\n", c.NowMillis(), r.Index(), cardinality, r.Length()); err != nil {
			return err
		}
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	if checksum {
		if _, err := fmt.Fprintf(w, "checksum %016x\n", r.Checksum()); err != nil {
			return err
		}
	}
	return r.Close()
}

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verboseFlag {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := []ringbits.Option{ringbits.WithLogger(logger)}
	if *mmapFlag {
		opts = append(opts, ringbits.WithMappedStorage())
	}

	if err := run(os.Stdin, os.Stdout, *sizeFlag, *checksumFlag, clock.Default(), opts...); err != nil {
		logger.Error("ringbits failed", "err", err)
		os.Exit(1)
	}
}
