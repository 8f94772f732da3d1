// SPDX-License-Identifier: MIT

// Package grb: functional configuration for the kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors; invalid values are recorded and surfaced as
//     ErrOptionViolation when the kernel is invoked (never a panic),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Notes:
//   - Options only tune execution (parallelism, tracing). They never change
//     the observable result of a call: serial and parallel runs agree.
package grb

import (
	"fmt"
	"log/slog"
	"runtime"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxWorkers of 0 means runtime.GOMAXPROCS(0) at call time.
	DefaultMaxWorkers = 0

	// DefaultParallelThreshold is the minimum amount of work (stored entries of
	// A plus output size) below which dense kernels run on a single goroutine.
	DefaultParallelThreshold = 1 << 14

	// minBlock is the smallest row/destination block handed to one worker.
	minBlock = 256
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	maxWorkers        int          // >0 after gatherOptions
	parallelThreshold int          // >=0
	logger            *slog.Logger // never nil after gatherOptions

	// first invalid option, reported at call time
	err error
}

// WithMaxWorkers bounds the number of goroutines used by dense kernels.
//
//	n > 0: at most n workers
//	n == 0: GOMAXPROCS (default)
//	n < 0: ErrOptionViolation
func WithMaxWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxWorkers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.maxWorkers = n
	}
}

// WithParallelThreshold sets the work size below which dense kernels stay
// serial. Zero forces the parallel path for every non-trivial input (useful
// in tests); negative values are rejected.
func WithParallelThreshold(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: ParallelThreshold cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.parallelThreshold = n
	}
}

// WithLogger routes kernel tracing to l. A nil logger keeps the default
// (discarding) logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// gatherOptions applies opts over the defaults and resolves derived values.
func gatherOptions(opts ...Option) Options {
	o := Options{
		maxWorkers:        DefaultMaxWorkers,
		parallelThreshold: DefaultParallelThreshold,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.maxWorkers == 0 {
		o.maxWorkers = runtime.GOMAXPROCS(0)
	}
	if o.logger == nil {
		o.logger = discardLogger
	}

	return o
}

// workersFor returns how many blocks a loop over n items with the given work
// estimate should be split into. 1 means "run inline".
func (o Options) workersFor(n, work int) int {
	if o.maxWorkers <= 1 || work < o.parallelThreshold || n < 2 {
		return 1
	}
	w := o.maxWorkers
	if blocks := (n + minBlock - 1) / minBlock; o.parallelThreshold > 0 && blocks < w {
		w = blocks
	}
	if w > n {
		w = n
	}
	if w < 1 {
		w = 1
	}
	return w
}
