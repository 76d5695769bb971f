// Copyright 2025 The renderperf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package runmath computes statistics over benchmark measurements
// where some observations may be missing.
//
// Statistics over an empty sample are missing values, not errors;
// callers propagate them and downstream consumers must tolerate them.
package runmath

import (
	"github.com/aclements/go-moremath/stats"

	"github.com/Hayser8/renderperf/runfmt"
)

// A Sample is a set of observations of a single metric.
type Sample struct {
	s stats.Sample
}

// NewSample constructs a Sample from xs. The slice is sorted in place
// to speed up order statistics.
func NewSample(xs []float64) *Sample {
	s := stats.Sample{Xs: xs}
	s.Sort()
	return &Sample{s}
}

// NewSampleValues constructs a Sample from the valid elements of vs.
func NewSampleValues(vs []runfmt.Value) *Sample {
	return NewSample(Defined(vs))
}

// Defined returns the values of the valid elements of vs, in order.
func Defined(vs []runfmt.Value) []float64 {
	var xs []float64
	for _, v := range vs {
		if v.Valid {
			xs = append(xs, v.Float64)
		}
	}
	return xs
}

// N returns the number of observations.
func (s *Sample) N() int {
	return len(s.s.Xs)
}

// Mean returns the arithmetic mean, or missing for an empty sample.
func (s *Sample) Mean() runfmt.Value {
	if s.N() == 0 {
		return runfmt.Value{}
	}
	return runfmt.V(s.s.Mean())
}

// Quantile returns the q'th quantile (0 ≤ q ≤ 1) with linear
// interpolation between order statistics, or missing for an empty
// sample.
func (s *Sample) Quantile(q float64) runfmt.Value {
	if s.N() == 0 {
		return runfmt.Value{}
	}
	return runfmt.V(s.s.Quantile(q))
}

// Median returns the 50th percentile, or missing for an empty sample.
func (s *Sample) Median() runfmt.Value {
	return s.Quantile(0.5)
}

// Bounds returns the minimum and maximum observations, or missing
// values for an empty sample.
func (s *Sample) Bounds() (min, max runfmt.Value) {
	if s.N() == 0 {
		return runfmt.Value{}, runfmt.Value{}
	}
	lo, hi := stats.Bounds(s.s.Xs)
	return runfmt.V(lo), runfmt.V(hi)
}
