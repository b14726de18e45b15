// Package gate drives the benchmark regression check across two report
// directories and aggregates the per-file verdicts into one pass/fail.
package gate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dkoosis/benchgate/pkg/compare"
	"github.com/dkoosis/benchgate/pkg/report"
)

// Options configures one gate run.
type Options struct {
	BaselineDir string
	CurrentDir  string
	Threshold   float64
	JSON        bool
	Theme       compare.Theme
	Stdout      io.Writer
}

// Run compares every report file in CurrentDir against its same-named
// baseline. Files without a baseline are warned about and stay neutral: they
// neither pass nor fail the run. The returned bool is the overall verdict;
// it is false when any compared pair regressed or when CurrentDir holds no
// report files at all. A non-nil error means a fatal condition (unreadable
// directory, malformed report) and takes precedence over the verdict.
func Run(opts Options) (bool, error) {
	out := opts.Stdout
	if out == nil {
		out = os.Stdout
	}
	r := compare.NewRenderer(out, opts.Theme)

	names, err := report.List(opts.CurrentDir)
	if err != nil {
		return false, err
	}
	if len(names) == 0 {
		if opts.JSON {
			return false, writeJSON(out, jsonOutput{
				Threshold: opts.Threshold,
				Error:     fmt.Sprintf("no *%s files found in %s", report.FullReportSuffix, opts.CurrentDir),
			})
		}
		r.Errorf("No *%s files found in %s", report.FullReportSuffix, opts.CurrentDir)
		return false, nil
	}

	if !opts.JSON {
		r.Heading("benchmark regression gate")
	}

	passed := true
	var (
		results []compare.Result
		skipped []string
	)
	for _, name := range names {
		baselinePath := filepath.Join(opts.BaselineDir, name)
		if _, statErr := os.Stat(baselinePath); statErr != nil {
			skipped = append(skipped, name)
			if !opts.JSON {
				r.Warningf("No baseline found for %s — skipping regression check.", name)
			}
			continue
		}

		baseline, loadErr := report.Load(baselinePath)
		if loadErr != nil {
			return false, loadErr
		}
		current, loadErr := report.Load(filepath.Join(opts.CurrentDir, name))
		if loadErr != nil {
			return false, loadErr
		}

		res := compare.Diff(name, baseline, current, opts.Threshold)
		results = append(results, res)
		if !res.Passed {
			passed = false
		}
		if !opts.JSON {
			r.Table(res)
		}
	}

	if opts.JSON {
		return passed, writeJSON(out, jsonOutput{
			Threshold: opts.Threshold,
			Files:     results,
			Skipped:   skipped,
			Passed:    passed,
		})
	}

	r.Banner(passed, opts.Threshold)
	return passed, nil
}
