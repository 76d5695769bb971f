// Copyright 2025 The renderperf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package runproc reduces raw run logs to per-run summary records.
//
// Each run is processed independently: a log that cannot be read, or
// that has no usable rows left after cleaning, is reported as skipped
// and never aborts the batch.
package runproc

// A Variant names one of the two execution modes under comparison.
type Variant string

const (
	Sequential Variant = "sequential"
	Parallel   Variant = "parallel"
)

// A Config carries the tunable constants of the summarization
// pipeline. Use DefaultConfig as a starting point.
type Config struct {
	// WarmupWindow is the time span, in seconds after the first
	// logged sample, that is discarded to exclude startup
	// transients from the statistics.
	WarmupWindow float64

	// Palettes is the set of known palette names matched against
	// the file name when a log carries no palette column.
	Palettes []string

	// Workers is the number of goroutines used by Collect to
	// summarize files. Values below 2 select serial processing.
	Workers int
}

// DefaultConfig returns the configuration used by the harness
// tooling: a one second warmup window and the palettes the harness
// ships with.
func DefaultConfig() Config {
	return Config{
		WarmupWindow: 1.0,
		Palettes:     []string{"neon", "ocean"},
	}
}
