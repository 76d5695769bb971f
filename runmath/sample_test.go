// Copyright 2025 The renderperf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runmath

import (
	"math"
	"reflect"
	"testing"

	"github.com/Hayser8/renderperf/runfmt"
)

func aeq(got runfmt.Value, want float64) bool {
	return got.Valid && math.Abs(got.Float64-want) < 1e-9
}

func TestSampleEmpty(t *testing.T) {
	s := NewSample(nil)
	if s.Mean().Valid || s.Median().Valid || s.Quantile(0.95).Valid {
		t.Error("statistics of an empty sample must be missing")
	}
	if lo, hi := s.Bounds(); lo.Valid || hi.Valid {
		t.Error("bounds of an empty sample must be missing")
	}
}

func TestSampleStats(t *testing.T) {
	tests := []struct {
		xs           []float64
		mean, median float64
	}{
		{[]float64{3}, 3, 3},
		{[]float64{5, 1, 3, 2, 4}, 3, 3},
		{[]float64{4, 1, 3, 2}, 2.5, 2.5},
	}
	for _, test := range tests {
		s := NewSample(append([]float64(nil), test.xs...))
		if got := s.Mean(); !aeq(got, test.mean) {
			t.Errorf("Mean(%v) = %+v, want %v", test.xs, got, test.mean)
		}
		if got := s.Median(); !aeq(got, test.median) {
			t.Errorf("Median(%v) = %+v, want %v", test.xs, got, test.median)
		}
	}
}

func TestSampleQuantileConstant(t *testing.T) {
	s := NewSample([]float64{7, 7, 7, 7})
	for _, q := range []float64{0.05, 0.5, 0.95, 0.99} {
		if got := s.Quantile(q); !aeq(got, 7) {
			t.Errorf("Quantile(%v) = %+v, want 7", q, got)
		}
	}
}

func TestDefined(t *testing.T) {
	vs := []runfmt.Value{runfmt.V(1), {}, runfmt.V(2), {}}
	if got, want := Defined(vs), []float64{1, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("Defined = %v, want %v", got, want)
	}
	if got := Defined(nil); got != nil {
		t.Errorf("Defined(nil) = %v, want nil", got)
	}
}

func TestMode(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		want float64
	}{
		{"simple", []float64{1, 2, 2, 3}, 2},
		{"tie breaks to first seen", []float64{3, 1, 3, 1}, 3},
		{"all distinct", []float64{5, 9, 7}, 5},
		{"later value wins on count", []float64{1, 4, 4, 4, 1}, 4},
	}
	for _, test := range tests {
		if got := Mode(test.xs); !aeq(got, test.want) {
			t.Errorf("%s: Mode(%v) = %+v, want %v", test.name, test.xs, got, test.want)
		}
	}
	if got := Mode(nil); got.Valid {
		t.Errorf("Mode(nil) = %+v, want missing", got)
	}
}

func TestModeValues(t *testing.T) {
	vs := []runfmt.Value{{}, runfmt.V(2), runfmt.V(4), {}, runfmt.V(4)}
	if got := ModeValues(vs); !aeq(got, 4) {
		t.Errorf("ModeValues = %+v, want 4", got)
	}
	if got := ModeValues([]runfmt.Value{{}, {}}); got.Valid {
		t.Errorf("ModeValues of all-missing = %+v, want missing", got)
	}
}
