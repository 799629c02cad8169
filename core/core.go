// Package core implements the two-stage pipelined ALU model.
package core

import "github.com/sarchlab/palu/alu"

// coreState is the register state of the unit: the captured-input stage,
// the output stage, and the multiply delay register between them.
type coreState struct {
	Validity alu.Validity
	OperandA uint64
	OperandB uint64
	Command  uint64
	CarryIn  bool
	Mode     alu.Mode

	Out      alu.ResultRecord
	MulDelay uint64
}

// Core models the pipelined ALU. It is a passive state machine; whoever
// owns the clock calls Step once per rising edge. All registers update
// atomically within one Step call.
type Core struct {
	name  string
	spec  alu.Spec
	table alu.OpcodeTable
	dp    datapath

	lines alu.Lines
	reset bool
	state coreState
	cycle uint64
}

// Name returns the name of the unit.
func (c *Core) Name() string {
	return c.name
}

// Spec returns the width configuration of the unit.
func (c *Core) Spec() alu.Spec {
	return c.spec
}

// Drive sets the external input lines. The lines hold their value until
// driven again.
func (c *Core) Drive(l alu.Lines) {
	c.lines = l
}

// Lines returns the external input lines as currently driven.
func (c *Core) Lines() alu.Lines {
	return c.lines
}

// SetReset sets the synchronous reset line.
func (c *Core) SetReset(on bool) {
	c.reset = on
}

// Output returns the content of the output registers.
func (c *Core) Output() alu.ResultRecord {
	return c.state.Out
}

// Cycle returns the number of edges stepped so far.
func (c *Core) Cycle() uint64 {
	return c.cycle
}

// Step advances the unit by one rising clock edge. The next value of every
// register is derived from the current state before anything is written, so
// the two stages move in lockstep.
//
// While reset is asserted every register clears. Otherwise, with
// clock-enable asserted, the capture stage samples the external lines and
// the output stage latches the combinational result of the previously
// captured inputs. Multiply results detour through the one-cycle delay
// register; their flags do not. With clock-enable deasserted all registers
// hold.
func (c *Core) Step() {
	next := c.state

	switch {
	case c.reset:
		next = coreState{}
	case c.lines.ClockEnable:
		comb, op := c.dp.evaluate(c.state)

		next.Out = comb
		if op.IsMultiply() {
			next.Out.Result = c.state.MulDelay
			next.MulDelay = comb.Result
		}

		next.Validity = c.lines.Validity
		next.OperandA = c.lines.OperandA & c.spec.OperandMask()
		next.OperandB = c.lines.OperandB & c.spec.OperandMask()
		next.Command = c.lines.Command & c.spec.CommandMask()
		next.CarryIn = c.lines.CarryIn
		next.Mode = c.lines.Mode
	}

	c.state = next
	c.cycle++
}
