package alu

import (
	"fmt"
	"strings"
)

// The codec renders records as MSB-first bit strings, the exchange format of
// stimulus files and scoreboard comparisons. Field order follows the record
// declaration: feature, validity, operand A, operand B, command, carry-in,
// clock-enable, mode, then the expected result, carry-out, greater, equal,
// less, overflow, and error bits. The comparison flags pack G, E, L from
// high to low. Packed strings exist only at the system boundary; the structs
// are the working representation.

// PackRecord renders one stimulus record. Values wider than their field are
// truncated, as a hardware assignment would.
func PackRecord(spec Spec, r StimulusRecord) string {
	w := newBitWriter(spec.RecordBits())

	w.writeBits(uint64(r.Feature), 8)
	w.writeBits(uint64(r.Validity), 2)
	w.writeBits(r.OperandA, spec.OperandWidth)
	w.writeBits(r.OperandB, spec.OperandWidth)
	w.writeBits(r.Command, spec.CommandWidth)
	w.writeBool(r.CarryIn)
	w.writeBool(r.ClockEnable)
	w.writeBits(uint64(r.Mode), 1)
	w.writeResult(spec, r.Expect)

	return w.String()
}

// PackResult renders one result record.
func PackResult(spec Spec, r ResultRecord) string {
	w := newBitWriter(spec.ResultBits())
	w.writeResult(spec, r)

	return w.String()
}

// PackResponse renders a response record as the stimulus bits followed by
// the captured result bits.
func PackResponse(spec Spec, r ResponseRecord) string {
	return PackRecord(spec, r.Stimulus) + PackResult(spec, r.Result)
}

// ParseRecord decodes one packed stimulus record.
func ParseRecord(spec Spec, line string) (StimulusRecord, error) {
	if len(line) != spec.RecordBits() {
		return StimulusRecord{}, fmt.Errorf(
			"record is %d bits, want %d", len(line), spec.RecordBits())
	}

	for i := 0; i < len(line); i++ {
		if line[i] != '0' && line[i] != '1' {
			return StimulusRecord{}, fmt.Errorf(
				"record bit %d is %q, want 0 or 1", i, line[i])
		}
	}

	r := bitReader{line: line}
	rec := StimulusRecord{
		Feature:     uint8(r.readBits(8)),
		Validity:    Validity(r.readBits(2)),
		OperandA:    r.readBits(spec.OperandWidth),
		OperandB:    r.readBits(spec.OperandWidth),
		Command:     r.readBits(spec.CommandWidth),
		CarryIn:     r.readBool(),
		ClockEnable: r.readBool(),
		Mode:        Mode(r.readBits(1)),
	}
	rec.Expect = ResultRecord{
		Result:   r.readBits(2 * spec.OperandWidth),
		CarryOut: r.readBool(),
		Greater:  r.readBool(),
		Equal:    r.readBool(),
		Less:     r.readBool(),
		Overflow: r.readBool(),
		Err:      r.readBool(),
	}

	return rec, nil
}

type bitWriter struct {
	sb strings.Builder
}

func newBitWriter(capacity int) *bitWriter {
	w := &bitWriter{}
	w.sb.Grow(capacity)

	return w
}

func (w *bitWriter) writeBits(v uint64, n int) {
	for i := n - 1; i >= 0; i-- {
		if v>>uint(i)&1 == 1 {
			w.sb.WriteByte('1')
		} else {
			w.sb.WriteByte('0')
		}
	}
}

func (w *bitWriter) writeBool(b bool) {
	if b {
		w.sb.WriteByte('1')
	} else {
		w.sb.WriteByte('0')
	}
}

func (w *bitWriter) writeResult(spec Spec, r ResultRecord) {
	w.writeBits(r.Result, 2*spec.OperandWidth)
	w.writeBool(r.CarryOut)
	w.writeBool(r.Greater)
	w.writeBool(r.Equal)
	w.writeBool(r.Less)
	w.writeBool(r.Overflow)
	w.writeBool(r.Err)
}

func (w *bitWriter) String() string {
	return w.sb.String()
}

// bitReader walks a pre-validated bit string.
type bitReader struct {
	line string
	pos  int
}

func (r *bitReader) readBits(n int) uint64 {
	var v uint64
	for i := 0; i < n; i++ {
		v <<= 1
		if r.line[r.pos] == '1' {
			v |= 1
		}
		r.pos++
	}

	return v
}

func (r *bitReader) readBool() bool {
	return r.readBits(1) == 1
}
