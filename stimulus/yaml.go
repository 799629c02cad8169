package stimulus

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sarchlab/palu/alu"
)

type vectorFile struct {
	Vectors []vectorEntry `yaml:"vectors"`
}

type vectorEntry struct {
	Feature  int         `yaml:"feature"`
	Mode     string      `yaml:"mode"`
	Validity string      `yaml:"validity"`
	Command  uint64      `yaml:"command"`
	A        uint64      `yaml:"a"`
	B        uint64      `yaml:"b"`
	CarryIn  int         `yaml:"cin"`
	Enable   *int        `yaml:"ce"`
	Expect   expectEntry `yaml:"expect"`
}

type expectEntry struct {
	Result   uint64 `yaml:"result"`
	CarryOut int    `yaml:"cout"`
	Greater  int    `yaml:"g"`
	Equal    int    `yaml:"e"`
	Less     int    `yaml:"l"`
	Overflow int    `yaml:"oflow"`
	Err      int    `yaml:"err"`
}

// LoadFileFromYAML reads stimulus records from a YAML vector file. The file
// holds a single `vectors` list; each entry names the lines to drive and the
// expected output. The clock enable defaults to 1 when omitted.
func LoadFileFromYAML(path string, spec alu.Spec) (*Sequence, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("stimulus: %w", err)
	}

	var file vectorFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("stimulus: %s: %w", path, err)
	}

	recs := make([]alu.StimulusRecord, 0, len(file.Vectors))

	for i, entry := range file.Vectors {
		rec, err := entry.toRecord(spec)
		if err != nil {
			return nil, fmt.Errorf("stimulus: %s: vector %d: %w",
				path, i, err)
		}

		recs = append(recs, rec)
	}

	return NewSequence(recs...), nil
}

func (e vectorEntry) toRecord(spec alu.Spec) (alu.StimulusRecord, error) {
	var rec alu.StimulusRecord

	if e.Feature < 0 || e.Feature > 255 {
		return rec, fmt.Errorf("feature %d out of range [0, 255]", e.Feature)
	}

	mode, err := parseMode(e.Mode)
	if err != nil {
		return rec, err
	}

	validity, err := parseValidity(e.Validity)
	if err != nil {
		return rec, err
	}

	if e.Command > spec.CommandMask() {
		return rec, fmt.Errorf("command %#x exceeds %d bits",
			e.Command, spec.CommandWidth)
	}

	if e.A > spec.OperandMask() || e.B > spec.OperandMask() {
		return rec, fmt.Errorf("operand exceeds %d bits", spec.OperandWidth)
	}

	if e.Expect.Result > spec.ResultMask() {
		return rec, fmt.Errorf("expected result %#x exceeds %d bits",
			e.Expect.Result, 2*spec.OperandWidth)
	}

	enable := 1
	if e.Enable != nil {
		enable = *e.Enable
	}

	rec = alu.StimulusRecord{
		Feature:     uint8(e.Feature),
		Validity:    validity,
		OperandA:    e.A,
		OperandB:    e.B,
		Command:     e.Command,
		CarryIn:     e.CarryIn != 0,
		ClockEnable: enable != 0,
		Mode:        mode,
		Expect: alu.ResultRecord{
			Result:   e.Expect.Result,
			CarryOut: e.Expect.CarryOut != 0,
			Greater:  e.Expect.Greater != 0,
			Equal:    e.Expect.Equal != 0,
			Less:     e.Expect.Less != 0,
			Overflow: e.Expect.Overflow != 0,
			Err:      e.Expect.Err != 0,
		},
	}

	return rec, nil
}

func parseMode(s string) (alu.Mode, error) {
	switch s {
	case "logic":
		return alu.ModeLogic, nil
	case "arith":
		return alu.ModeArith, nil
	default:
		return 0, fmt.Errorf("unknown mode %q", s)
	}
}

func parseValidity(s string) (alu.Validity, error) {
	switch s {
	case "none":
		return alu.ValidityNone, nil
	case "a":
		return alu.ValidityA, nil
	case "b":
		return alu.ValidityB, nil
	case "both":
		return alu.ValidityBoth, nil
	default:
		return 0, fmt.Errorf("unknown validity %q", s)
	}
}
