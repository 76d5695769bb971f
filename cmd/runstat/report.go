// Copyright 2025 The renderperf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Hayser8/renderperf/runfmt"
	"github.com/Hayser8/renderperf/runproc"
	"github.com/Hayser8/renderperf/runstat"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).MarginTop(1)
	noteStyle   = lipgloss.NewStyle().Faint(true)
)

func fmtValue(v runfmt.Value) string {
	if !v.Valid {
		return "—"
	}
	return fmt.Sprintf("%.3f", v.Float64)
}

// renderTable lays out rows as fixed-width styled columns.
func renderTable(header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	var b strings.Builder
	line := func(cells []string, style lipgloss.Style) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = style.Width(widths[i] + 2).Render(cell)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
		b.WriteString("\n")
	}
	line(header, headerStyle)
	for _, row := range rows {
		line(row, cellStyle)
	}
	return b.String()
}

func printReport(w io.Writer, runs []runproc.RunSummary, byPalette []runstat.GroupAggregate, c *runstat.Comparison, haveComparison bool) {
	fmt.Fprintln(w, titleStyle.Render("Runs"))
	rows := make([][]string, len(runs))
	for i := range runs {
		r := &runs[i]
		rows[i] = []string{
			r.File,
			string(r.Variant),
			r.Palette,
			fmt.Sprintf("%d", r.Samples),
			fmtValue(r.FPSMedian),
			fmtValue(r.FPSMean),
			fmtValue(r.FrameMSP99),
		}
	}
	fmt.Fprint(w, renderTable([]string{"file", "variant", "palette", "samples", "fps p50", "fps mean", "frame p99 (ms)"}, rows))

	fmt.Fprintln(w, titleStyle.Render("Groups (variant × palette)"))
	rows = rows[:0]
	for i := range byPalette {
		g := &byPalette[i]
		rows = append(rows, []string{
			string(g.Key.Variant),
			g.Key.Palette,
			fmt.Sprintf("%d", g.Count),
			fmtValue(g.Median("fps_median")),
			fmtValue(g.Median("throughput")),
			fmtValue(g.ThreadsMode),
		})
	}
	fmt.Fprint(w, renderTable([]string{"variant", "palette", "runs", "fps p50", "throughput", "threads"}, rows))

	if !haveComparison {
		fmt.Fprintln(w, noteStyle.Render("speedup unavailable: both variants required"))
		return
	}
	fmt.Fprintln(w, titleStyle.Render("Parallel vs sequential"))
	fmt.Fprint(w, renderTable(
		[]string{"speedup", "threads", "efficiency", "serial fraction (Amdahl)"},
		[][]string{{
			fmtValue(c.Speedup),
			fmtValue(c.ThreadsMode),
			fmtValue(c.Efficiency),
			fmtValue(c.SerialFraction),
		}},
	))
}
