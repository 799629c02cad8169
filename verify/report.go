package verify

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sarchlab/palu/alu"
)

// Report is the outcome of one verification run: every scored case plus the
// harness fault, if the bench hit one.
type Report struct {
	Spec     alu.Spec
	Verdicts []Verdict
	Tally    Tally
	RunErr   error
}

// GenerateReport assembles a report from the checker's verdicts and the
// bench's run error.
func GenerateReport(c *Checker, spec alu.Spec, runErr error) *Report {
	return &Report{
		Spec:     spec,
		Verdicts: c.Verdicts(),
		Tally:    c.Tally(),
		RunErr:   runErr,
	}
}

// Passed reports whether the run completed without a fault and every case
// passed.
func (r *Report) Passed() bool {
	return r.RunErr == nil && r.Tally.Total > 0 && r.Tally.Failed == 0
}

// WriteReport writes a formatted report to a writer, one row per case.
// Stimulus, expected and captured outputs appear as MSB-first bit strings.
func (r *Report) WriteReport(w io.Writer) {
	stimBits := r.Spec.RecordBits() - r.Spec.ResultBits()

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Verification Report")
	t.AppendHeader(table.Row{
		"Case", "Feature", "Stimulus", "Expected", "Got", "Verdict"})

	for _, v := range r.Verdicts {
		verdict := "PASS"
		if !v.Passed {
			verdict = "FAIL"
		}

		t.AppendRow(table.Row{
			v.Case,
			v.Feature,
			alu.PackRecord(r.Spec, v.Stimulus)[:stimBits],
			alu.PackResult(r.Spec, v.Stimulus.Expect),
			alu.PackResult(r.Spec, v.Got),
			verdict,
		})
	}

	t.Render()

	fmt.Fprintf(w, "\n%d cases: %d passed, %d failed\n",
		r.Tally.Total, r.Tally.Passed, r.Tally.Failed)

	if r.RunErr != nil {
		fmt.Fprintf(w, "harness fault: %v\n", r.RunErr)
	}
}

// SaveReportToFile saves the report to a file.
func (r *Report) SaveReportToFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	r.WriteReport(file)

	return nil
}
