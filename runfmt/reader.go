// Copyright 2025 The renderperf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runfmt

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Column names written by the harness. The header is matched
// case-insensitively and with surrounding whitespace trimmed.
const (
	colTime        = "time_s"
	colSmoothedFPS = "smoothed_fps"
	colFPS         = "fps_inst"
	colItems       = "n"
	colWidth       = "width"
	colHeight      = "height"
	colPalette     = "palette"
	colVSync       = "vsync"
	colThreads     = "threads"
	colSupersample = "ssaa"
	colRenderFrac  = "render_frac"
	colSymmetry    = "sym"
)

// ReadTable parses a run log from r. path is recorded in the returned
// Table and used in error messages.
//
// The first record is the header. Known columns missing from the
// header produce all-missing fields; unknown columns are ignored.
// Cells that do not parse as numbers become missing values. Rows may
// be ragged: cells past the end of a row are missing.
func ReadTable(r io.Reader, path string) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: empty log", path)
	}

	idx := make(map[string]int)
	for i, name := range rows[0] {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	col := func(row []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	num := func(row []string, name string) Value {
		s := col(row, name)
		if s == "" {
			return Value{}
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Value{}
		}
		return V(v)
	}

	t := &Table{Path: path}
	for _, row := range rows[1:] {
		t.Samples = append(t.Samples, Sample{
			Time:        num(row, colTime),
			SmoothedFPS: num(row, colSmoothedFPS),
			FPS:         num(row, colFPS),
			Items:       num(row, colItems),
			Width:       num(row, colWidth),
			Height:      num(row, colHeight),
			Palette:     col(row, colPalette),
			VSync:       num(row, colVSync),
			Threads:     num(row, colThreads),
			Supersample: num(row, colSupersample),
			RenderFrac:  num(row, colRenderFrac),
			Symmetry:    num(row, colSymmetry),
		})
	}
	return t, nil
}

// ReadFile reads the run log at path. Files with a ".gz" suffix are
// decompressed transparently, since archived benchmark logs are
// usually kept compressed.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}
	return ReadTable(r, path)
}

// GlobRuns returns the run logs under dir, sorted by name. A missing
// or empty directory yields an empty list, not an error: a variant
// with no captured runs is a legitimate (if uninteresting) input.
func GlobRuns(dir string) ([]string, error) {
	var paths []string
	for _, pat := range []string{"*.csv", "*.csv.gz"} {
		m, err := filepath.Glob(filepath.Join(dir, pat))
		if err != nil {
			return nil, err
		}
		paths = append(paths, m...)
	}
	sort.Strings(paths)
	return paths, nil
}
