package report

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Load parses one report file into a ResultSet. Entries without a Statistics
// block, or with a null Mean, are skipped: a benchmark that failed or timed
// out during measurement legitimately has no stats. Read and parse failures
// propagate to the caller.
func Load(path string) (ResultSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing report %s: %w", path, err)
	}

	set := make(ResultSet, len(doc.Benchmarks))
	for _, b := range doc.Benchmarks {
		if b.Statistics == nil || b.Statistics.Mean == nil {
			continue
		}
		set[b.FullName] = *b.Statistics.Mean
	}
	return set, nil
}

// List returns the report filenames in dir (names only, sorted), filtered to
// those ending in FullReportSuffix.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), FullReportSuffix) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
