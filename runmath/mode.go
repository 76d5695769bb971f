// Copyright 2025 The renderperf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runmath

import "github.com/Hayser8/renderperf/runfmt"

// Mode returns the most frequent value in xs. Ties are broken by the
// value's first appearance in xs, so the result is deterministic and
// depends on input order for tied counts. An empty input yields a
// missing value.
func Mode(xs []float64) runfmt.Value {
	if len(xs) == 0 {
		return runfmt.Value{}
	}
	counts := make(map[float64]int, len(xs))
	first := make(map[float64]int, len(xs))
	for i, x := range xs {
		if _, ok := first[x]; !ok {
			first[x] = i
		}
		counts[x]++
	}
	best := xs[0]
	for x, n := range counts {
		switch {
		case n > counts[best]:
			best = x
		case n == counts[best] && first[x] < first[best]:
			best = x
		}
	}
	return runfmt.V(best)
}

// ModeValues is Mode over the valid elements of vs.
func ModeValues(vs []runfmt.Value) runfmt.Value {
	return Mode(Defined(vs))
}
