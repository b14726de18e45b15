// Package report loads BenchmarkDotNet full JSON exports into maps from
// benchmark name to mean run time.
package report

// FullReportSuffix identifies full benchmark report files. Only files whose
// name ends with this suffix participate in baseline/current pairing.
const FullReportSuffix = "-report-full.json"

// ResultSet maps a fully-qualified benchmark name to its mean run time in
// nanoseconds. Built once per file and not mutated afterwards.
type ResultSet map[string]float64

// document mirrors the subset of the BenchmarkDotNet export we consume.
type document struct {
	Benchmarks []benchmark `json:"Benchmarks"`
}

type benchmark struct {
	FullName   string      `json:"FullName"`
	Statistics *statistics `json:"Statistics"`
}

// statistics carries the pre-computed stats block. Mean is a pointer so a
// present-but-null value is distinguishable from 0.
type statistics struct {
	Mean *float64 `json:"Mean"`
}
