// Package polar: diagnostics sinks for the convergence driver.
//
// The driver performs no I/O of its own; when reporting is enabled it
// hands each (iteration, relative error, objective) triple to an
// injected Reporter. This keeps the hot loop side-effect-free and lets
// tests capture the stream without scraping console output.

package polar

import (
	"fmt"
	"io"
	"os"
)

// newStdoutReporter backs the Verbose flag when no Reporter is set.
func newStdoutReporter() *TableReporter { return NewTableReporter(os.Stdout) }

// Reporter receives one diagnostics triple per completed iteration.
// Iterations are 1-based.
type Reporter interface {
	Report(iter int, relerr, objective float64)
}

// Warner is an optional Reporter upgrade for out-of-band warnings,
// e.g. the Newton–Schulz norm precondition at initialization.
type Warner interface {
	Warning(msg string)
}

// Record is one captured diagnostics triple.
type Record struct {
	Iter      int
	RelErr    float64
	Objective float64
}

// Recorder is a Reporter that captures the full diagnostics stream.
// Useful in tests and as input to convplot.
type Recorder struct {
	Records  []Record
	Warnings []string
}

// Report appends the triple to Records.
func (r *Recorder) Report(iter int, relerr, objective float64) {
	r.Records = append(r.Records, Record{Iter: iter, RelErr: relerr, Objective: objective})
}

// Warning appends msg to Warnings.
func (r *Recorder) Warning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// TableReporter renders the diagnostics stream as a plain text table:
//
//	Iter    Rel. Err.      Objective
//	   1    9.996145e-01   5.427586e+06
//	   2    7.513623e+01   8.014859e+02
//
// The header is printed once, before the first row.
type TableReporter struct {
	w      io.Writer
	headed bool
}

// NewTableReporter writes the table to w.
func NewTableReporter(w io.Writer) *TableReporter {
	return &TableReporter{w: w}
}

// Report prints one table row (and the header on first use).
func (t *TableReporter) Report(iter int, relerr, objective float64) {
	if !t.headed {
		fmt.Fprintf(t.w, "%4s    %-13s  %-13s\n", "Iter", "Rel. Err.", "Objective")
		t.headed = true
	}
	fmt.Fprintf(t.w, "%4d    %13.6e  %13.6e\n", iter, relerr, objective)
}

// Warning prints an out-of-band warning line.
func (t *TableReporter) Warning(msg string) {
	fmt.Fprintf(t.w, "warning: %s\n", msg)
}
