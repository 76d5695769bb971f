// Copyright 2025 The renderperf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package runstat aggregates run summaries into group statistics and
// derives the sequential-vs-parallel comparison.
package runstat

import (
	"github.com/Hayser8/renderperf/runfmt"
	"github.com/Hayser8/renderperf/runproc"
)

// A Metric is one numeric RunSummary field, addressable by name. The
// aggregator and the table writers share this list so that the CSV
// outputs and the group medians always cover the same columns.
type Metric struct {
	Name string
	Get  func(*runproc.RunSummary) runfmt.Value
}

// Metrics lists every numeric RunSummary field, in output column
// order.
var Metrics = []Metric{
	{"samples", func(s *runproc.RunSummary) runfmt.Value { return runfmt.V(float64(s.Samples)) }},
	{"duration_s", func(s *runproc.RunSummary) runfmt.Value { return s.Duration }},
	{"fps_mean", func(s *runproc.RunSummary) runfmt.Value { return s.FPSMean }},
	{"fps_median", func(s *runproc.RunSummary) runfmt.Value { return s.FPSMedian }},
	{"fps_p05", func(s *runproc.RunSummary) runfmt.Value { return s.FPSP05 }},
	{"fps_p95", func(s *runproc.RunSummary) runfmt.Value { return s.FPSP95 }},
	{"smoothed_fps_mean", func(s *runproc.RunSummary) runfmt.Value { return s.SmoothedMean }},
	{"smoothed_fps_median", func(s *runproc.RunSummary) runfmt.Value { return s.SmoothedMedian }},
	{"frame_ms_mean", func(s *runproc.RunSummary) runfmt.Value { return s.FrameMSMean }},
	{"frame_ms_median", func(s *runproc.RunSummary) runfmt.Value { return s.FrameMSMedian }},
	{"frame_ms_p95", func(s *runproc.RunSummary) runfmt.Value { return s.FrameMSP95 }},
	{"frame_ms_p99", func(s *runproc.RunSummary) runfmt.Value { return s.FrameMSP99 }},
	{"throughput", func(s *runproc.RunSummary) runfmt.Value { return s.Throughput }},
	{"n", func(s *runproc.RunSummary) runfmt.Value { return s.Items }},
	{"width", func(s *runproc.RunSummary) runfmt.Value { return s.Width }},
	{"height", func(s *runproc.RunSummary) runfmt.Value { return s.Height }},
	{"vsync", func(s *runproc.RunSummary) runfmt.Value { return s.VSync }},
	{"threads", func(s *runproc.RunSummary) runfmt.Value { return s.Threads }},
	{"ssaa", func(s *runproc.RunSummary) runfmt.Value { return s.Supersample }},
	{"render_frac", func(s *runproc.RunSummary) runfmt.Value { return s.RenderFrac }},
	{"sym", func(s *runproc.RunSummary) runfmt.Value { return s.Symmetry }},
}

// metricIndex maps metric names to their position in Metrics.
var metricIndex = func() map[string]int {
	m := make(map[string]int, len(Metrics))
	for i, metric := range Metrics {
		m[metric.Name] = i
	}
	return m
}()
