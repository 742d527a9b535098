// Copyright 2026 The ringbits Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package ringbits

import (
	"io"
	"log/slog"
)

// Option configures a BitArray or Ring.
type Option func(*options)

type options struct {
	logger *slog.Logger
	mapped bool
}

func newOptions(opts []Option) options {
	var o options
	o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets an optional logger used to report allocation and release
// of storage.  If not provided, no logging output will be produced.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *options) {
		if logger != nil {
			opts.logger = logger
		}
	}
}

// WithMappedStorage allocates the words from an anonymous memory mapping
// rather than the Go heap.  The mapping is returned to the OS by Close.
func WithMappedStorage() Option {
	return func(opts *options) {
		opts.mapped = true
	}
}
