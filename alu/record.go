package alu

// StimulusRecord is one externally supplied test vector: the input lines to
// drive, next to the output the unit is expected to produce for them.
// Records are immutable once created and consumed once per test case.
type StimulusRecord struct {
	Feature     uint8
	Validity    Validity
	OperandA    uint64
	OperandB    uint64
	Command     uint64
	CarryIn     bool
	ClockEnable bool
	Mode        Mode

	Expect ResultRecord
}

// Lines returns the input lines this record drives.
func (r StimulusRecord) Lines() Lines {
	return Lines{
		Validity:    r.Validity,
		OperandA:    r.OperandA,
		OperandB:    r.OperandB,
		Command:     r.Command,
		CarryIn:     r.CarryIn,
		ClockEnable: r.ClockEnable,
		Mode:        r.Mode,
	}
}

// ResultRecord is the unit's observable output at one tick.
type ResultRecord struct {
	Result   uint64
	CarryOut bool
	Greater  bool
	Equal    bool
	Less     bool
	Overflow bool
	Err      bool
}

// ResponseRecord pairs a stimulus with the output captured for it.
type ResponseRecord struct {
	Stimulus StimulusRecord
	Result   ResultRecord
}
