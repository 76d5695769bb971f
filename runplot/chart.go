// Copyright 2025 The renderperf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package runplot renders chart artifacts from the analysis tables.
// Chart rendering consumes the computed tables and never feeds back
// into them; a failed save leaves the analysis results untouched.
package runplot

import (
	"fmt"
	"image/color"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/Hayser8/renderperf/runproc"
	"github.com/Hayser8/renderperf/runstat"
)

var variantColors = map[runproc.Variant]color.RGBA{
	runproc.Sequential: {54, 162, 235, 255},  // blue
	runproc.Parallel:   {102, 194, 165, 255}, // green
}

// FPSByPalette saves a grouped bar chart of the median instantaneous
// FPS per palette, one bar group per palette with a sequential and a
// parallel bar, from the variant×palette aggregate.
func FPSByPalette(groups []runstat.GroupAggregate, path string) error {
	palettes := palettesOf(groups)
	if len(palettes) == 0 {
		return fmt.Errorf("%s: no groups to plot", path)
	}

	p := plot.New()
	p.Title.Text = "Median FPS by palette"
	p.Y.Label.Text = "frames/sec"

	w := vg.Points(25)
	offsets := map[runproc.Variant]vg.Length{
		runproc.Sequential: -w / 2,
		runproc.Parallel:   w / 2,
	}
	for _, variant := range []runproc.Variant{runproc.Sequential, runproc.Parallel} {
		values := make(plotter.Values, len(palettes))
		for i, pal := range palettes {
			if g := findGroup(groups, variant, pal); g != nil {
				values[i] = g.Median("fps_median").Or(0)
			}
		}
		bars, err := plotter.NewBarChart(values, w)
		if err != nil {
			return err
		}
		bars.Color = variantColors[variant]
		bars.Offset = offsets[variant]
		p.Add(bars)
		p.Legend.Add(string(variant), bars)
	}
	p.Legend.Top = true
	p.NominalX(palettes...)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

// RunSpread saves a scatter of per-run median FPS, one column per
// variant, so outlier runs are visible next to the group medians.
func RunSpread(runs []runproc.RunSummary, path string) error {
	if len(runs) == 0 {
		return fmt.Errorf("%s: no runs to plot", path)
	}

	p := plot.New()
	p.Title.Text = "Per-run median FPS"
	p.Y.Label.Text = "frames/sec"

	for xi, variant := range []runproc.Variant{runproc.Sequential, runproc.Parallel} {
		var pts plotter.XYs
		for _, r := range runs {
			if r.Variant != variant || !r.FPSMedian.Valid {
				continue
			}
			pts = append(pts, plotter.XY{X: float64(xi), Y: r.FPSMedian.Float64})
		}
		if len(pts) == 0 {
			continue
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		sc.GlyphStyle.Color = variantColors[variant]
		sc.GlyphStyle.Radius = vg.Points(3)
		p.Add(sc)
		p.Legend.Add(string(variant), sc)
	}
	p.Legend.Top = true
	p.X.Min, p.X.Max = -0.5, 1.5
	p.X.Tick.Marker = plot.ConstantTicks([]plot.Tick{
		{Value: 0, Label: string(runproc.Sequential)},
		{Value: 1, Label: string(runproc.Parallel)},
	})

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

func palettesOf(groups []runstat.GroupAggregate) []string {
	seen := make(map[string]bool)
	var palettes []string
	for _, g := range groups {
		if !seen[g.Key.Palette] {
			seen[g.Key.Palette] = true
			palettes = append(palettes, g.Key.Palette)
		}
	}
	sort.Strings(palettes)
	return palettes
}

func findGroup(groups []runstat.GroupAggregate, v runproc.Variant, pal string) *runstat.GroupAggregate {
	for i := range groups {
		if groups[i].Key.Variant == v && groups[i].Key.Palette == pal {
			return &groups[i]
		}
	}
	return nil
}
