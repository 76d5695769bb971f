// Copyright 2025 The renderperf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runproc

import (
	"fmt"

	"github.com/Hayser8/renderperf/runfmt"
)

// A RunSummary is the fixed-shape reduction of one run log. Numeric
// fields are missing when the underlying column was absent or had no
// valid observations; aggregation tolerates missing fields.
type RunSummary struct {
	File    string
	Variant Variant
	Palette string // lowercase, "unknown" when undeterminable

	// Samples is the number of rows that survived cleaning.
	Samples int

	// Duration is the elapsed-time span of the cleaned rows.
	Duration runfmt.Value

	// Instantaneous FPS distribution.
	FPSMean   runfmt.Value
	FPSMedian runfmt.Value
	FPSP05    runfmt.Value
	FPSP95    runfmt.Value

	// Smoothed FPS distribution.
	SmoothedMean   runfmt.Value
	SmoothedMedian runfmt.Value

	// Per-frame render time in milliseconds, 1000/FPS per row.
	FrameMSMean   runfmt.Value
	FrameMSMedian runfmt.Value
	FrameMSP95    runfmt.Value
	FrameMSP99    runfmt.Value

	// Throughput is median FPS × the item count of the last row,
	// in items rendered per second.
	Throughput runfmt.Value

	// Snapshot of the run configuration, taken from the last
	// cleaned row.
	Items       runfmt.Value
	Width       runfmt.Value
	Height      runfmt.Value
	VSync       runfmt.Value
	Threads     runfmt.Value
	Supersample runfmt.Value
	RenderFrac  runfmt.Value
	Symmetry    runfmt.Value
}

// Skip reasons.
const (
	ReasonReadError       = "read_error"
	ReasonEmptyAfterClean = "empty_after_clean"
)

// A Skip records a run log that produced no summary. Skips are
// reportable outcomes, not faults: the batch continues past them.
type Skip struct {
	File   string
	Reason string
	Err    error // underlying cause for ReasonReadError, may be nil
}

func (s *Skip) Error() string {
	if s.Err != nil {
		return fmt.Sprintf("%s: %s: %v", s.File, s.Reason, s.Err)
	}
	return fmt.Sprintf("%s: %s", s.File, s.Reason)
}

func (s *Skip) Unwrap() error {
	return s.Err
}
