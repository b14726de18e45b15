package compare

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Column layout mirrors the report files this tool consumes: long
// fully-qualified .NET-style benchmark names, nanosecond-scale means.
const (
	nameWidth   = 70
	meanWidth   = 14
	changeWidth = 8
)

var titleCaser = cases.Title(language.English)

// Renderer writes comparison tables and run banners to a single writer.
// Stdout is the contract channel: CI logs are the primary consumer.
type Renderer struct {
	out   io.Writer
	theme Theme
}

// NewRenderer creates a renderer writing to out with the given theme.
func NewRenderer(out io.Writer, theme Theme) *Renderer {
	return &Renderer{out: out, theme: theme}
}

// Heading prints a bold, title-cased section heading.
func (r *Renderer) Heading(s string) {
	fmt.Fprintln(r.out, r.theme.Bold.Render(titleCaser.String(s)))
}

// Warningf prints a warning line. Warnings share the stdout channel with the
// tables so they show up in sequence in CI logs.
func (r *Renderer) Warningf(format string, args ...any) {
	fmt.Fprintln(r.out, r.theme.Warning.Render(fmt.Sprintf("WARNING: "+format, args...)))
}

// Errorf prints an error line.
func (r *Renderer) Errorf(format string, args ...any) {
	fmt.Fprintln(r.out, r.theme.Error.Render(fmt.Sprintf(format, args...)))
}

// Table prints one file pair's comparison as a fixed-width table: a
// "Comparing" header, one column-header line, and one row per benchmark in
// the current run.
func (r *Renderer) Table(res Result) {
	fmt.Fprintf(r.out, "\nComparing: %s\n", res.File)
	fmt.Fprintf(r.out, "%s %s %s %s\n",
		padRight("Benchmark", nameWidth),
		padLeft("Baseline (ns)", meanWidth),
		padLeft("Current (ns)", meanWidth),
		padLeft("Change", changeWidth),
	)
	fmt.Fprintln(r.out, strings.Repeat("-", nameWidth+2*meanWidth+changeWidth+3))

	for _, o := range res.Outcomes {
		r.row(o)
	}
}

func (r *Renderer) row(o Outcome) {
	name := padRight(truncate(o.Name, nameWidth), nameWidth)

	if o.New {
		fmt.Fprintf(r.out, "%s %s %s %s\n",
			name,
			padLeft("N/A", meanWidth),
			padLeft(fmt.Sprintf("%.1f", o.CurrentMean), meanWidth),
			r.theme.Warning.Render(padLeft(r.theme.NewMarker, changeWidth)),
		)
		return
	}

	change := padLeft(fmtPct(o.PctChange), changeWidth)
	if o.Regressed {
		change = r.theme.Error.Render(change + " " + r.theme.RegMarker)
	} else {
		change = r.theme.Success.Render(change)
	}
	fmt.Fprintf(r.out, "%s %s %s %s\n",
		name,
		padLeft(fmt.Sprintf("%.1f", o.BaselineMean), meanWidth),
		padLeft(fmt.Sprintf("%.1f", o.CurrentMean), meanWidth),
		change,
	)
}

// Banner prints the final success or failure line, including the threshold
// the run was gated on.
func (r *Renderer) Banner(passed bool, threshold float64) {
	fmt.Fprintln(r.out)
	if passed {
		fmt.Fprintln(r.out, r.theme.Success.Render(
			r.theme.PassIcon+" All benchmarks within threshold."))
		return
	}
	fmt.Fprintln(r.out, r.theme.Error.Render(fmt.Sprintf(
		"%s One or more benchmarks regressed by more than %.0f%%.",
		r.theme.FailIcon, threshold*100)))
}

// fmtPct formats a fractional change as a signed percentage, e.g. +20.0%.
func fmtPct(v float64) string {
	return fmt.Sprintf("%+.1f%%", v*100)
}

func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

func padLeft(s string, width int) string {
	return runewidth.FillLeft(s, width)
}

func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "...")
}
