// Package verify scores captured responses against their expectations and
// reports the outcome of a verification run.
package verify

import (
	"github.com/sarchlab/palu/alu"
)

// Verdict is the scored outcome of one test case.
type Verdict struct {
	Case     int
	Feature  uint8
	Stimulus alu.StimulusRecord
	Got      alu.ResultRecord
	Passed   bool
}

// Tally counts verdicts by outcome.
type Tally struct {
	Total  int
	Passed int
	Failed int
}

// Judge compares captured responses with their expectations, bit for bit.
type Judge struct {
	spec alu.Spec
}

// NewJudge creates a judge for the given width configuration.
func NewJudge(spec alu.Spec) Judge {
	return Judge{spec: spec}
}

// Score compares one response against the expectation carried in its
// stimulus. Every output bit must match; there are no partial passes.
func (j Judge) Score(caseID int, r alu.ResponseRecord) Verdict {
	want := alu.PackResult(j.spec, r.Stimulus.Expect)
	got := alu.PackResult(j.spec, r.Result)

	return Verdict{
		Case:     caseID,
		Feature:  r.Stimulus.Feature,
		Stimulus: r.Stimulus,
		Got:      r.Result,
		Passed:   want == got,
	}
}
