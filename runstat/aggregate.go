// Copyright 2025 The renderperf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runstat

import (
	"sort"

	"github.com/Hayser8/renderperf/runfmt"
	"github.com/Hayser8/renderperf/runmath"
	"github.com/Hayser8/renderperf/runproc"
)

// A GroupBy selects the grouping granularity of Aggregate.
type GroupBy int

const (
	// ByVariantPalette groups runs by (variant, palette).
	ByVariantPalette GroupBy = iota
	// ByVariant groups runs by variant alone.
	ByVariant
)

// A GroupKey identifies one aggregate group. Palette is "" when
// grouping by variant alone.
type GroupKey struct {
	Variant runproc.Variant
	Palette string
}

// A GroupAggregate holds the per-group reduction of member runs: the
// median of every metric, the member count, and the modal thread
// count.
//
// Medians, not means: a single outlier run (say, a system load spike)
// should barely move the aggregate.
type GroupAggregate struct {
	Key   GroupKey
	Count int

	// ThreadsMode is the most common thread count among member
	// runs, ties broken by first-encountered run.
	ThreadsMode runfmt.Value

	// medians is indexed like Metrics.
	medians []runfmt.Value
}

// Median returns the group median of the named metric, or missing if
// the name is unknown.
func (g *GroupAggregate) Median(name string) runfmt.Value {
	i, ok := metricIndex[name]
	if !ok {
		return runfmt.Value{}
	}
	return g.medians[i]
}

// Aggregate reduces runs to one GroupAggregate per distinct key at
// the requested granularity. Each metric's median is taken
// independently over the members that have it; a metric missing from
// every member stays missing. Groups are returned sorted by
// (variant, palette), so the output is a pure function of the input
// multiset. An empty input yields an empty output.
func Aggregate(runs []runproc.RunSummary, by GroupBy) []GroupAggregate {
	groups := make(map[GroupKey][]*runproc.RunSummary)
	for i := range runs {
		key := GroupKey{Variant: runs[i].Variant}
		if by == ByVariantPalette {
			key.Palette = runs[i].Palette
		}
		groups[key] = append(groups[key], &runs[i])
	}

	keys := make([]GroupKey, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Variant != keys[j].Variant {
			return keys[i].Variant < keys[j].Variant
		}
		return keys[i].Palette < keys[j].Palette
	})

	out := make([]GroupAggregate, 0, len(keys))
	for _, key := range keys {
		members := groups[key]
		g := GroupAggregate{
			Key:     key,
			Count:   len(members),
			medians: make([]runfmt.Value, len(Metrics)),
		}
		vals := make([]runfmt.Value, len(members))
		for mi, metric := range Metrics {
			for i, m := range members {
				vals[i] = metric.Get(m)
			}
			g.medians[mi] = runmath.NewSampleValues(vals).Median()
		}
		threads := make([]runfmt.Value, len(members))
		for i, m := range members {
			threads[i] = m.Threads
		}
		g.ThreadsMode = runmath.ModeValues(threads)
		out = append(out, g)
	}
	return out
}
