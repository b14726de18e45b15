// benchgate gates CI on benchmark regressions.
//
// Usage:
//
//	benchgate --baseline-dir benchmarks/baseline \
//	    --current-dir artifacts/results --threshold 0.15
//
// It pairs *-report-full.json files by name across the two directories,
// compares each benchmark's mean against the baseline, prints per-file
// tables to stdout, and exits non-zero when any benchmark regressed beyond
// the threshold or when the current directory holds no report files.
//
// Exit codes:
//
//	0: no regressions (missing-baseline files are warned about and neutral)
//	1: regression detected, or no report files in the current directory
//	2: usage error, unreadable path, or malformed report file
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/dkoosis/benchgate/internal/config"
	"github.com/dkoosis/benchgate/internal/version"
	"github.com/dkoosis/benchgate/pkg/compare"
	"github.com/dkoosis/benchgate/pkg/gate"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg := config.Load()

	fs := flag.NewFlagSet("benchgate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	baselineDir := fs.String("baseline-dir", "", "Directory containing baseline *-report-full.json files")
	currentDir := fs.String("current-dir", "", "Directory containing current *-report-full.json files")
	threshold := fs.Float64("threshold", cfg.Threshold, "Fractional regression threshold (0.15 = 15%)")
	themeFlag := fs.String("theme", cfg.Theme, "Theme: default, orca, mono")
	noColor := fs.Bool("no-color", cfg.NoColor, "Disable colored output")
	jsonOut := fs.Bool("json", false, "Emit machine-readable JSON instead of tables")
	showVersion := fs.Bool("version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintln(stdout, version.String())
		return 0
	}

	if *baselineDir == "" || *currentDir == "" {
		fmt.Fprintln(stderr, "benchgate: --baseline-dir and --current-dir are required")
		fs.Usage()
		return 2
	}

	theme := compare.ThemeByName(*themeFlag)
	if *noColor || !isTTYWriter(stdout) {
		theme = compare.MonoTheme()
	}

	passed, err := gate.Run(gate.Options{
		BaselineDir: *baselineDir,
		CurrentDir:  *currentDir,
		Threshold:   *threshold,
		JSON:        *jsonOut,
		Theme:       theme,
		Stdout:      stdout,
	})
	if err != nil {
		fmt.Fprintf(stderr, "benchgate: error: %v\n", err)
		return 2
	}
	if !passed {
		return 1
	}
	return 0
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
