// Package compare diffs two benchmark result sets against a regression
// threshold and renders the outcome as a human-readable table.
package compare

import (
	"sort"

	"github.com/dkoosis/benchgate/pkg/report"
)

// Outcome is the verdict for one benchmark present in the current run.
type Outcome struct {
	Name         string  `json:"name"`
	BaselineMean float64 `json:"baseline_mean,omitempty"`
	CurrentMean  float64 `json:"current_mean"`
	PctChange    float64 `json:"pct_change,omitempty"`
	New          bool    `json:"new,omitempty"`
	Regressed    bool    `json:"regressed,omitempty"`
}

// Result holds the outcomes for one baseline/current file pair.
type Result struct {
	File      string    `json:"file"`
	Threshold float64   `json:"threshold"`
	Outcomes  []Outcome `json:"benchmarks"`
	Passed    bool      `json:"passed"`
}

// Diff compares every benchmark present in current against baseline.
// Outcomes are ordered lexicographically by name. A benchmark absent from
// baseline is classified New and never counts as a regression; benchmarks
// present only in baseline are not reported. The regression test is a strict
// inequality: a change exactly at the threshold passes.
func Diff(file string, baseline, current report.ResultSet, threshold float64) Result {
	names := make([]string, 0, len(current))
	for name := range current {
		names = append(names, name)
	}
	sort.Strings(names)

	res := Result{File: file, Threshold: threshold, Passed: true}
	for _, name := range names {
		currentMean := current[name]
		baselineMean, ok := baseline[name]
		if !ok {
			res.Outcomes = append(res.Outcomes, Outcome{
				Name:        name,
				CurrentMean: currentMean,
				New:         true,
			})
			continue
		}

		pctChange := (currentMean - baselineMean) / baselineMean
		regressed := pctChange > threshold
		if regressed {
			res.Passed = false
		}
		res.Outcomes = append(res.Outcomes, Outcome{
			Name:         name,
			BaselineMean: baselineMean,
			CurrentMean:  currentMean,
			PctChange:    pctChange,
			Regressed:    regressed,
		})
	}
	return res
}
