// Copyright 2025 The renderperf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Runstat analyzes the CSV run logs captured by the screensaver
// benchmark harness.
//
// Usage:
//
//	runstat [--seq-dir dir] [--par-dir dir] [--out dir] [--warmup sec] [--workers n] [--plots]
//
// Runstat reads one directory of run logs per variant, reduces each
// log to a per-run summary, aggregates the summaries by variant and
// by variant×palette, and derives the sequential-vs-parallel speedup,
// parallel efficiency, and Amdahl serial-fraction estimate. The
// resulting tables are printed to the terminal and written as CSV
// files under the output directory; --plots also renders PNG charts.
//
// Logs that cannot be read, or that contain no usable rows, are
// reported as warnings and skipped. Runstat fails only when no valid
// run is found in either variant.
//
// All flags may also be set through RUNSTAT_-prefixed environment
// variables, e.g. RUNSTAT_SEQ_DIR.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Hayser8/renderperf/runfmt"
	"github.com/Hayser8/renderperf/runplot"
	"github.com/Hayser8/renderperf/runproc"
	"github.com/Hayser8/renderperf/runstat"
)

var rootCmd = &cobra.Command{
	Use:           "runstat",
	Short:         "Analyze screensaver benchmark run logs",
	Long:          "Runstat summarizes per-run benchmark logs and compares the sequential and parallel render variants.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.String("seq-dir", "seq", "directory of sequential-variant run logs")
	flags.String("par-dir", "par", "directory of parallel-variant run logs")
	flags.String("out", ".", "directory for the output tables and charts")
	flags.Float64("warmup", runproc.DefaultConfig().WarmupWindow, "warmup window in seconds excluded from each run")
	flags.Int("workers", 0, "number of concurrent summarizer workers (0 = serial)")
	flags.Bool("plots", false, "render PNG charts next to the CSV tables")

	viper.SetEnvPrefix("runstat")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	for _, name := range []string{"seq-dir", "par-dir", "out", "warmup", "workers", "plots"} {
		viper.BindPFlag(name, flags.Lookup(name))
	}
}

func run() error {
	cfg := runproc.DefaultConfig()
	cfg.WarmupWindow = viper.GetFloat64("warmup")
	cfg.Workers = viper.GetInt("workers")

	var runs []runproc.RunSummary
	var skipped []runproc.Skip
	for _, v := range []struct {
		variant runproc.Variant
		dir     string
	}{
		{runproc.Sequential, viper.GetString("seq-dir")},
		{runproc.Parallel, viper.GetString("par-dir")},
	} {
		paths, err := runfmt.GlobRuns(v.dir)
		if err != nil {
			return err
		}
		ok, skips := runproc.Collect(paths, v.variant, cfg)
		runs = append(runs, ok...)
		skipped = append(skipped, skips...)
	}

	for i := range skipped {
		fmt.Fprintf(os.Stderr, "warning: skipping %s\n", skipped[i].Error())
	}
	if len(runs) == 0 {
		return errors.New("no valid runs found in either variant")
	}

	byPalette := runstat.Aggregate(runs, runstat.ByVariantPalette)
	byVariant := runstat.Aggregate(runs, runstat.ByVariant)
	comparison, haveComparison := runstat.Compare(byVariant)

	outDir := viper.GetString("out")
	if err := os.MkdirAll(outDir, 0o777); err != nil {
		return err
	}
	if err := writeTables(outDir, runs, byPalette, byVariant, comparison, haveComparison); err != nil {
		return err
	}

	if viper.GetBool("plots") {
		// Chart failures are reported but never discard the
		// already-written tables.
		if err := runplot.FPSByPalette(byPalette, filepath.Join(outDir, "fps_by_palette.png")); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
		if err := runplot.RunSpread(runs, filepath.Join(outDir, "run_spread.png")); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}

	printReport(os.Stdout, runs, byPalette, comparison, haveComparison)
	if !haveComparison {
		fmt.Fprintln(os.Stderr, "note: need runs for both variants to derive speedup")
	}
	return nil
}

func writeTables(outDir string, runs []runproc.RunSummary, byPalette, byVariant []runstat.GroupAggregate, c *runstat.Comparison, haveComparison bool) error {
	write := func(name string, fn func(f *os.File) error) error {
		f, err := os.Create(filepath.Join(outDir, name))
		if err != nil {
			return err
		}
		if err := fn(f); err != nil {
			f.Close()
			return fmt.Errorf("%s: %w", name, err)
		}
		return f.Close()
	}
	if err := write("runs.csv", func(f *os.File) error { return runstat.WriteRuns(f, runs) }); err != nil {
		return err
	}
	if err := write("groups_by_palette.csv", func(f *os.File) error { return runstat.WriteGroups(f, byPalette) }); err != nil {
		return err
	}
	if err := write("groups_by_variant.csv", func(f *os.File) error { return runstat.WriteGroups(f, byVariant) }); err != nil {
		return err
	}
	if haveComparison {
		if err := write("comparison.csv", func(f *os.File) error { return runstat.WriteComparison(f, c) }); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "runstat:", err)
		os.Exit(1)
	}
}
