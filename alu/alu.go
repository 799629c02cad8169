// Package alu defines the data types shared by the pipelined ALU model and
// its verification bench.
package alu

import (
	"fmt"
	"math/bits"
)

// Mode selects the operation family of the unit.
type Mode uint8

// The two operation families.
const (
	ModeLogic Mode = iota
	ModeArith
)

// Name returns the name of the mode.
func (m Mode) Name() string {
	switch m {
	case ModeLogic:
		return "logic"
	case ModeArith:
		return "arith"
	default:
		panic("invalid mode")
	}
}

// Validity tells which of the two operands carry meaningful data.
type Validity uint8

// Validity encodings. ValidityNone never decodes to an operation.
const (
	ValidityNone Validity = iota
	ValidityA
	ValidityB
	ValidityBoth
)

// Name returns the name of the validity selector.
func (v Validity) Name() string {
	switch v {
	case ValidityNone:
		return "none"
	case ValidityA:
		return "a"
	case ValidityB:
		return "b"
	case ValidityBoth:
		return "both"
	default:
		panic("invalid validity selector")
	}
}

// Spec fixes the bit widths of the unit. Widths are set at construction and
// never change at run time.
type Spec struct {
	OperandWidth int
	CommandWidth int
}

// DefaultSpec returns the reference configuration, 8-bit operands and 4-bit
// commands.
func DefaultSpec() Spec {
	return Spec{
		OperandWidth: 8,
		CommandWidth: 4,
	}
}

// Validate checks that all derived widths stay representable in 64 bits.
func (s Spec) Validate() error {
	if s.OperandWidth < 2 || s.OperandWidth > 32 {
		return fmt.Errorf("operand width %d out of range [2, 32]",
			s.OperandWidth)
	}

	if s.CommandWidth < 1 || s.CommandWidth > 16 {
		return fmt.Errorf("command width %d out of range [1, 16]",
			s.CommandWidth)
	}

	return nil
}

// RotateWidth is the number of low B bits that address a rotate amount.
func (s Spec) RotateWidth() int {
	return bits.Len(uint(s.OperandWidth - 1))
}

// OperandMask covers one operand.
func (s Spec) OperandMask() uint64 {
	return uint64(1)<<uint(s.OperandWidth) - 1
}

// CommandMask covers the command field.
func (s Spec) CommandMask() uint64 {
	return uint64(1)<<uint(s.CommandWidth) - 1
}

// ResultMask covers the double-width result.
func (s Spec) ResultMask() uint64 {
	return uint64(1)<<uint(2*s.OperandWidth) - 1
}

// RecordBits is the packed width of one stimulus record.
func (s Spec) RecordBits() int {
	return 8 + 2 + 2*s.OperandWidth + s.CommandWidth + 1 + 1 + 1 +
		2*s.OperandWidth + 1 + 3 + 1 + 1
}

// ResultBits is the packed width of one result record.
func (s Spec) ResultBits() int {
	return 2*s.OperandWidth + 6
}

// Lines is the set of external input lines of the unit. The unit samples
// them on every rising clock edge.
type Lines struct {
	Validity    Validity
	OperandA    uint64
	OperandB    uint64
	Command     uint64
	CarryIn     bool
	ClockEnable bool
	Mode        Mode
}
