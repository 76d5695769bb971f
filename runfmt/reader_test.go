// Copyright 2025 The renderperf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runfmt

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
)

func TestReadTable(t *testing.T) {
	in := `time_s,smoothed_fps,fps_inst,n,width,height,palette,vsync,threads,ssaa,render_frac,sym
0.016,60.0,62.5,500,1280,720,neon,1,4,2,0.75,1
0.033,60.5,58.8,500,1280,720,neon,1,4,2,0.75,1
`
	tab, err := ReadTable(strings.NewReader(in), "par_neon.csv")
	if err != nil {
		t.Fatal(err)
	}
	if tab.Path != "par_neon.csv" {
		t.Errorf("Path = %q, want %q", tab.Path, "par_neon.csv")
	}
	if len(tab.Samples) != 2 {
		t.Fatalf("got %d samples, want 2", len(tab.Samples))
	}
	want := Sample{
		Time: V(0.016), SmoothedFPS: V(60.0), FPS: V(62.5),
		Items: V(500), Width: V(1280), Height: V(720),
		Palette: "neon", VSync: V(1), Threads: V(4),
		Supersample: V(2), RenderFrac: V(0.75), Symmetry: V(1),
	}
	if got := tab.Samples[0]; !reflect.DeepEqual(got, want) {
		t.Errorf("sample 0 = %+v, want %+v", got, want)
	}
}

func TestReadTableMissingColumns(t *testing.T) {
	in := "fps_inst\n60\n30\n"
	tab, err := ReadTable(strings.NewReader(in), "run.csv")
	if err != nil {
		t.Fatal(err)
	}
	for i, s := range tab.Samples {
		if !s.FPS.Valid {
			t.Errorf("sample %d: FPS missing", i)
		}
		if s.Time.Valid || s.Threads.Valid || s.Palette != "" {
			t.Errorf("sample %d: absent columns produced values: %+v", i, s)
		}
	}
}

func TestReadTableBadCells(t *testing.T) {
	in := "time_s,fps_inst,threads\n0.1,sixty,4\n0.2,30\n"
	tab, err := ReadTable(strings.NewReader(in), "run.csv")
	if err != nil {
		t.Fatal(err)
	}
	if got := tab.Samples[0].FPS; got.Valid {
		t.Errorf("unparsable FPS cell = %+v, want missing", got)
	}
	if got := tab.Samples[0].Threads; !got.Valid || got.Float64 != 4 {
		t.Errorf("Threads = %+v, want 4", got)
	}
	// Ragged second row: threads cell absent entirely.
	if got := tab.Samples[1].Threads; got.Valid {
		t.Errorf("ragged-row Threads = %+v, want missing", got)
	}
	if got := tab.Samples[1].FPS; !got.Valid || got.Float64 != 30 {
		t.Errorf("ragged-row FPS = %+v, want 30", got)
	}
}

func TestReadTableHeaderNormalization(t *testing.T) {
	in := " Fps_Inst , PALETTE \n45,Ocean\n"
	tab, err := ReadTable(strings.NewReader(in), "run.csv")
	if err != nil {
		t.Fatal(err)
	}
	if got := tab.Samples[0].FPS; !got.Valid || got.Float64 != 45 {
		t.Errorf("FPS = %+v, want 45", got)
	}
	if got := tab.Samples[0].Palette; got != "Ocean" {
		t.Errorf("Palette = %q, want %q", got, "Ocean")
	}
}

func TestReadTableUnknownColumnsIgnored(t *testing.T) {
	in := "fps_inst,gpu_temp\n60,85\n"
	tab, err := ReadTable(strings.NewReader(in), "run.csv")
	if err != nil {
		t.Fatal(err)
	}
	if got := tab.Samples[0].FPS; !got.Valid || got.Float64 != 60 {
		t.Errorf("FPS = %+v, want 60", got)
	}
}

func TestReadTableEmpty(t *testing.T) {
	if _, err := ReadTable(strings.NewReader(""), "run.csv"); err == nil {
		t.Error("want error for empty log")
	}
}

func TestReadFileGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.csv.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := gzip.NewWriter(f)
	if _, err := zw.Write([]byte("time_s,fps_inst\n0.1,60\n")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	tab, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(tab.Samples) != 1 || !tab.Samples[0].FPS.Valid || tab.Samples[0].FPS.Float64 != 60 {
		t.Errorf("unexpected samples: %+v", tab.Samples)
	}
}

func TestGlobRuns(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.csv", "a.csv", "c.csv.gz", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o666); err != nil {
			t.Fatal(err)
		}
	}
	got, err := GlobRuns(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(dir, "a.csv"),
		filepath.Join(dir, "b.csv"),
		filepath.Join(dir, "c.csv.gz"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GlobRuns = %v, want %v", got, want)
	}
}

func TestGlobRunsMissingDir(t *testing.T) {
	got, err := GlobRuns(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("GlobRuns = %v, want empty", got)
	}
}
