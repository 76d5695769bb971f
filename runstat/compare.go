// Copyright 2025 The renderperf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runstat

import (
	"github.com/Hayser8/renderperf/runfmt"
	"github.com/Hayser8/renderperf/runproc"
)

// A Comparison relates the parallel variant to the sequential one.
// Every field is independently optional: a missing denominator makes
// the dependent field missing, never a fault.
type Comparison struct {
	// Speedup is median parallel FPS over median sequential FPS.
	Speedup runfmt.Value

	// ThreadsMode is the parallel group's modal thread count.
	ThreadsMode runfmt.Value

	// Efficiency is Speedup divided by ThreadsMode.
	Efficiency runfmt.Value

	// SerialFraction is the Amdahl's-law estimate of the
	// non-parallelizable work fraction, (T/S − 1)/(T − 1) for
	// thread count T and speedup S. Defined only for T > 1 and
	// S > 0.
	SerialFraction runfmt.Value
}

// Compare derives the sequential-vs-parallel comparison from a
// variant-only aggregate. It reports ok = false unless groups
// consists of exactly the sequential and parallel variants; callers
// should then skip derived reporting.
func Compare(groups []GroupAggregate) (*Comparison, bool) {
	var seq, par *GroupAggregate
	for i := range groups {
		g := &groups[i]
		if g.Key.Palette != "" {
			// Not a variant-only aggregate.
			return nil, false
		}
		switch g.Key.Variant {
		case runproc.Sequential:
			seq = g
		case runproc.Parallel:
			par = g
		default:
			return nil, false
		}
	}
	if seq == nil || par == nil {
		return nil, false
	}

	c := &Comparison{ThreadsMode: par.ThreadsMode}

	seqFPS := seq.Median("fps_median")
	parFPS := par.Median("fps_median")
	if seqFPS.Valid && parFPS.Valid && seqFPS.Float64 > 0 {
		c.Speedup = runfmt.V(parFPS.Float64 / seqFPS.Float64)
	}

	if c.Speedup.Valid && c.ThreadsMode.Valid && c.ThreadsMode.Float64 > 0 {
		c.Efficiency = runfmt.V(c.Speedup.Float64 / c.ThreadsMode.Float64)
	}

	if s, t := c.Speedup, c.ThreadsMode; s.Valid && t.Valid && s.Float64 > 0 && t.Float64 > 1 {
		c.SerialFraction = runfmt.V((t.Float64/s.Float64 - 1) / (t.Float64 - 1))
	}

	return c, true
}
