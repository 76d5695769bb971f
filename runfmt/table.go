// Copyright 2025 The renderperf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package runfmt reads the CSV run logs written by the screensaver
// benchmark harness.
//
// Every column in a log is optional. A column that is absent from the
// header, or a cell that fails to parse, yields a missing Value rather
// than an error, so that the fields which are present can still be
// used downstream.
package runfmt

import "math"

// A Value is an optional float64. The zero Value is missing.
//
// Missing is distinct from zero: a field that was never logged stays
// missing through the whole pipeline, while a field logged as 0 is a
// valid observation.
type Value struct {
	Float64 float64
	Valid   bool
}

// V returns a valid Value holding v.
func V(v float64) Value {
	return Value{v, true}
}

// IsInf reports whether v is valid and infinite in either direction.
func (v Value) IsInf() bool {
	return v.Valid && math.IsInf(v.Float64, 0)
}

// Or returns v's value, or def when v is missing.
func (v Value) Or(def float64) float64 {
	if !v.Valid {
		return def
	}
	return v.Float64
}

// A Sample is one row of a run log: a point-in-time observation taken
// while the screensaver was rendering.
type Sample struct {
	Time        Value // seconds since run start, monotonic
	SmoothedFPS Value // low-pass-filtered frames per second
	FPS         Value // instantaneous frames per second
	Items       Value // number of animated items ("n")
	Width       Value
	Height      Value
	Palette     string // color palette name, "" when absent
	VSync       Value
	Threads     Value
	Supersample Value
	RenderFrac  Value
	Symmetry    Value
}

// A Table is one parsed run log.
type Table struct {
	// Path is the file the table was read from. It is purely
	// diagnostic and used for palette inference when the log
	// carries no palette column.
	Path string

	Samples []Sample
}
