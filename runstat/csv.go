// Copyright 2025 The renderperf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runstat

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/Hayser8/renderperf/runfmt"
	"github.com/Hayser8/renderperf/runproc"
)

// Table writers for the reporting collaborator. Missing values
// serialize as empty cells.

func strof(v runfmt.Value) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatFloat(v.Float64, 'g', -1, 64)
}

// WriteRuns writes the run-level table: one row per summary, the
// identity columns followed by every metric.
func WriteRuns(w io.Writer, runs []runproc.RunSummary) error {
	cw := csv.NewWriter(w)
	header := []string{"file", "variant", "palette"}
	for _, m := range Metrics {
		header = append(header, m.Name)
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for i := range runs {
		row := []string{runs[i].File, string(runs[i].Variant), runs[i].Palette}
		for _, m := range Metrics {
			row = append(row, strof(m.Get(&runs[i])))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteGroups writes a group aggregate table: one row per group with
// the key columns, run count, modal thread count, and the per-metric
// medians.
func WriteGroups(w io.Writer, groups []GroupAggregate) error {
	cw := csv.NewWriter(w)
	header := []string{"variant", "palette", "runs", "threads_mode"}
	for _, m := range Metrics {
		header = append(header, m.Name)
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for i := range groups {
		g := &groups[i]
		row := []string{
			string(g.Key.Variant),
			g.Key.Palette,
			strconv.Itoa(g.Count),
			strof(g.ThreadsMode),
		}
		for _, v := range g.medians {
			row = append(row, strof(v))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteComparison writes the zero-or-one-row comparison table.
func WriteComparison(w io.Writer, c *Comparison) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"speedup", "threads_mode", "efficiency", "amdahl_serial_fraction_estimate"}); err != nil {
		return err
	}
	if c != nil {
		err := cw.Write([]string{
			strof(c.Speedup),
			strof(c.ThreadsMode),
			strof(c.Efficiency),
			strof(c.SerialFraction),
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
