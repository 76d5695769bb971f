// Copyright 2025 The renderperf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runproc

import (
	"path/filepath"
	"strings"

	"github.com/Hayser8/renderperf/runfmt"
	"github.com/Hayser8/renderperf/runmath"
)

// Summarize reduces one parsed run log to a RunSummary. It returns a
// non-nil Skip instead when no rows survive cleaning.
//
// Cleaning, in order: drop rows inside the warmup window, replace
// infinite observations with missing ones, then drop every row whose
// instantaneous FPS is missing or non-positive. The input table is
// not modified.
func Summarize(t *runfmt.Table, variant Variant, cfg Config) (*RunSummary, *Skip) {
	rows := clean(t.Samples, cfg.WarmupWindow)
	if len(rows) == 0 {
		return nil, &Skip{File: t.Path, Reason: ReasonEmptyAfterClean}
	}

	fps := make([]runfmt.Value, len(rows))
	smoothed := make([]runfmt.Value, len(rows))
	times := make([]runfmt.Value, len(rows))
	frameMS := make([]float64, len(rows))
	for i, r := range rows {
		fps[i] = r.FPS
		smoothed[i] = r.SmoothedFPS
		times[i] = r.Time
		// FPS is valid and positive for every cleaned row.
		frameMS[i] = 1000 / r.FPS.Float64
	}

	fpsS := runmath.NewSampleValues(fps)
	smoothS := runmath.NewSampleValues(smoothed)
	frameS := runmath.NewSample(frameMS)

	last := rows[len(rows)-1]
	s := &RunSummary{
		File:    t.Path,
		Variant: variant,
		Palette: inferPalette(rows, t.Path, cfg.Palettes),
		Samples: len(rows),

		Duration: duration(times),

		FPSMean:   fpsS.Mean(),
		FPSMedian: fpsS.Median(),
		FPSP05:    fpsS.Quantile(0.05),
		FPSP95:    fpsS.Quantile(0.95),

		SmoothedMean:   smoothS.Mean(),
		SmoothedMedian: smoothS.Median(),

		FrameMSMean:   frameS.Mean(),
		FrameMSMedian: frameS.Median(),
		FrameMSP95:    frameS.Quantile(0.95),
		FrameMSP99:    frameS.Quantile(0.99),

		Items:       last.Items,
		Width:       last.Width,
		Height:      last.Height,
		VSync:       last.VSync,
		Threads:     last.Threads,
		Supersample: last.Supersample,
		RenderFrac:  last.RenderFrac,
		Symmetry:    last.Symmetry,
	}

	// A missing item count contributes 0, so throughput comes out
	// as a defined 0 rather than missing. Historical behavior of
	// the harness tooling; keep it.
	s.Throughput = runfmt.V(s.FPSMedian.Float64 * last.Items.Or(0))

	return s, nil
}

// clean returns the rows of samples that survive warmup trimming,
// infinity removal, and the positive-FPS filter, as fresh copies.
func clean(samples []runfmt.Sample, warmup float64) []runfmt.Sample {
	t0, haveTime := minTime(samples)

	var rows []runfmt.Sample
	for _, r := range samples {
		if haveTime && r.Time.Valid && r.Time.Float64 < t0+warmup {
			continue
		}
		dropInf(&r)
		if !r.FPS.Valid || r.FPS.Float64 <= 0 {
			continue
		}
		rows = append(rows, r)
	}
	return rows
}

func minTime(samples []runfmt.Sample) (t0 float64, ok bool) {
	for _, r := range samples {
		if r.Time.Valid && (!ok || r.Time.Float64 < t0) {
			t0, ok = r.Time.Float64, true
		}
	}
	return
}

func dropInf(r *runfmt.Sample) {
	for _, v := range []*runfmt.Value{
		&r.Time, &r.SmoothedFPS, &r.FPS, &r.Items, &r.Width, &r.Height,
		&r.VSync, &r.Threads, &r.Supersample, &r.RenderFrac, &r.Symmetry,
	} {
		if v.IsInf() {
			*v = runfmt.Value{}
		}
	}
}

// inferPalette prefers the last palette value logged in the cleaned
// rows. When the column is entirely absent it falls back to matching
// the file name against the known palette names, and finally to
// "unknown".
func inferPalette(rows []runfmt.Sample, path string, known []string) string {
	for i := len(rows) - 1; i >= 0; i-- {
		if p := strings.ToLower(strings.TrimSpace(rows[i].Palette)); p != "" {
			return p
		}
	}
	base := strings.ToLower(filepath.Base(path))
	for _, p := range known {
		if strings.Contains(base, p) {
			return p
		}
	}
	return "unknown"
}

func duration(times []runfmt.Value) runfmt.Value {
	s := runmath.NewSampleValues(times)
	lo, hi := s.Bounds()
	if !lo.Valid {
		return runfmt.Value{}
	}
	return runfmt.V(hi.Float64 - lo.Float64)
}
