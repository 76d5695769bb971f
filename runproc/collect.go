// Copyright 2025 The renderperf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runproc

import (
	"sync"

	"github.com/Hayser8/renderperf/runfmt"
)

// Collect summarizes every run log in paths under the given variant.
// Summaries are returned in input order; logs that could not be read
// or were empty after cleaning are returned as skips, also in input
// order. A bad file never aborts processing of the others.
//
// With cfg.Workers > 1 the files are summarized concurrently. Each
// run is independent, so the result is identical to serial
// processing.
func Collect(paths []string, variant Variant, cfg Config) ([]RunSummary, []Skip) {
	type slot struct {
		sum  *RunSummary
		skip *Skip
	}
	slots := make([]slot, len(paths))

	process := func(i int) {
		slots[i].sum, slots[i].skip = summarizeFile(paths[i], variant, cfg)
	}

	if workers := min(cfg.Workers, len(paths)); workers > 1 {
		idx := make(chan int)
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range idx {
					process(i)
				}
			}()
		}
		for i := range paths {
			idx <- i
		}
		close(idx)
		wg.Wait()
	} else {
		for i := range paths {
			process(i)
		}
	}

	var ok []RunSummary
	var skipped []Skip
	for _, s := range slots {
		if s.sum != nil {
			ok = append(ok, *s.sum)
		} else {
			skipped = append(skipped, *s.skip)
		}
	}
	return ok, skipped
}

func summarizeFile(path string, variant Variant, cfg Config) (*RunSummary, *Skip) {
	t, err := runfmt.ReadFile(path)
	if err != nil {
		return nil, &Skip{File: path, Reason: ReasonReadError, Err: err}
	}
	return Summarize(t, variant, cfg)
}
