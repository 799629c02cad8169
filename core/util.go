package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
)

// LevelTrace is the level for cycle-by-cycle logs.
const LevelTrace slog.Level = slog.LevelInfo + 1

// Trace logs cycle-level events.
func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// DumpState writes the register state of the unit as a table, one row per
// register.
func (c *Core) DumpState(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(c.name)

	t.AppendHeader(table.Row{"Register", "Value"})
	t.AppendRows([]table.Row{
		{"Cycle", c.cycle},
		{"Mode", c.state.Mode.Name()},
		{"Validity", c.state.Validity.Name()},
		{"OperandA", hex(c.state.OperandA)},
		{"OperandB", hex(c.state.OperandB)},
		{"Command", hex(c.state.Command)},
		{"CarryIn", bit(c.state.CarryIn)},
		{"Result", hex(c.state.Out.Result)},
		{"CarryOut", bit(c.state.Out.CarryOut)},
		{"Greater", bit(c.state.Out.Greater)},
		{"Equal", bit(c.state.Out.Equal)},
		{"Less", bit(c.state.Out.Less)},
		{"Overflow", bit(c.state.Out.Overflow)},
		{"Err", bit(c.state.Out.Err)},
		{"MulDelay", hex(c.state.MulDelay)},
	})

	t.Render()
}

func hex(v uint64) string {
	return fmt.Sprintf("%#x", v)
}

func bit(b bool) string {
	if b {
		return "1"
	}

	return "0"
}
