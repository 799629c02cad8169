package core

import "github.com/sarchlab/palu/alu"

// datapath is the combinational network between the two register stages. It
// has no state of its own; evaluate is a pure function of the captured
// inputs.
type datapath struct {
	spec  alu.Spec
	table alu.OpcodeTable
}

// Evaluate computes the combinational outputs for one set of input lines,
// ignoring clock-enable. It is the zero-delay function whose value the
// output stage latches, exposed for reference models and tests.
func Evaluate(spec alu.Spec, table alu.OpcodeTable, in alu.Lines) alu.ResultRecord {
	dp := datapath{spec: spec, table: table}
	out, _ := dp.evaluate(coreState{
		Validity: in.Validity,
		OperandA: in.OperandA & spec.OperandMask(),
		OperandB: in.OperandB & spec.OperandMask(),
		Command:  in.Command & spec.CommandMask(),
		CarryIn:  in.CarryIn,
		Mode:     in.Mode,
	})

	return out
}

func (d datapath) evaluate(s coreState) (alu.ResultRecord, alu.Op) {
	op, ok := d.table.Lookup(s.Mode, s.Validity, s.Command)
	if !ok {
		return alu.ResultRecord{Err: true}, alu.OpInvalid
	}

	var out alu.ResultRecord

	switch op {
	case alu.OpAdd:
		out = d.add(s.OperandA, s.OperandB, 0)
	case alu.OpSub:
		out = d.sub(s.OperandA, s.OperandB, 0)
	case alu.OpAddCin:
		out = d.add(s.OperandA, s.OperandB, carry(s.CarryIn))
	case alu.OpSubCin:
		out = d.sub(s.OperandA, s.OperandB, carry(s.CarryIn))
	case alu.OpIncA:
		out = d.add(s.OperandA, 1, 0)
	case alu.OpDecA:
		out = d.sub(s.OperandA, 1, 0)
	case alu.OpIncB:
		out = d.add(s.OperandB, 1, 0)
	case alu.OpDecB:
		out = d.sub(s.OperandB, 1, 0)
	case alu.OpCmp:
		out = d.compare(s.OperandA, s.OperandB)
	case alu.OpIncMul:
		out.Result = (s.OperandA + 1) * (s.OperandB + 1) & d.spec.ResultMask()
	case alu.OpShlMul:
		out.Result = (s.OperandA << 1) * s.OperandB & d.spec.ResultMask()
	case alu.OpSignedAdd:
		out = d.signedAdd(s.OperandA, s.OperandB)
	case alu.OpSignedSub:
		out = d.signedSub(s.OperandA, s.OperandB)
	case alu.OpAnd:
		out.Result = s.OperandA & s.OperandB
	case alu.OpNand:
		out.Result = ^(s.OperandA & s.OperandB) & d.spec.OperandMask()
	case alu.OpOr:
		out.Result = s.OperandA | s.OperandB
	case alu.OpNor:
		out.Result = ^(s.OperandA | s.OperandB) & d.spec.OperandMask()
	case alu.OpXor:
		out.Result = s.OperandA ^ s.OperandB
	case alu.OpXnor:
		out.Result = ^(s.OperandA ^ s.OperandB) & d.spec.OperandMask()
	case alu.OpNotA:
		out.Result = ^s.OperandA & d.spec.OperandMask()
	case alu.OpNotB:
		out.Result = ^s.OperandB & d.spec.OperandMask()
	case alu.OpShr1A:
		out.Result = s.OperandA >> 1
	case alu.OpShl1A:
		out.Result = s.OperandA << 1 & d.spec.OperandMask()
	case alu.OpShr1B:
		out.Result = s.OperandB >> 1
	case alu.OpShl1B:
		out.Result = s.OperandB << 1 & d.spec.OperandMask()
	case alu.OpRolAB:
		out = d.rotate(s.OperandA, s.OperandB, false)
	case alu.OpRorAB:
		out = d.rotate(s.OperandA, s.OperandB, true)
	default:
		panic("op not handled: " + op.Name())
	}

	return out, op
}

func carry(b bool) uint64 {
	if b {
		return 1
	}

	return 0
}

// add computes a+b+cin. The extended carry bit lands both inside the
// double-width result and on the carry-out flag.
func (d datapath) add(a, b, cin uint64) alu.ResultRecord {
	sum := a + b + cin

	return alu.ResultRecord{
		Result:   sum & d.spec.ResultMask(),
		CarryOut: sum>>uint(d.spec.OperandWidth)&1 == 1,
	}
}

// sub computes a-b-bin as the double-width two's-complement wrap and
// reports the borrow on the overflow flag.
func (d datapath) sub(a, b, bin uint64) alu.ResultRecord {
	return alu.ResultRecord{
		Result:   (a - b - bin) & d.spec.ResultMask(),
		Overflow: a < b+bin,
	}
}

func (d datapath) compare(a, b uint64) alu.ResultRecord {
	return alu.ResultRecord{
		Greater: a > b,
		Equal:   a == b,
		Less:    a < b,
	}
}

// signExtend widens a W-bit value to 64-bit two's complement.
func (d datapath) signExtend(v uint64) int64 {
	shift := uint(64 - d.spec.OperandWidth)
	return int64(v<<shift) >> shift
}

func (d datapath) signBit(v uint64) uint64 {
	return v >> uint(d.spec.OperandWidth-1) & 1
}

// signedAdd produces the sign-extended double-width sum. Overflow follows
// the same-sign-operands, opposite-sign-result rule on the low W bits; the
// comparison flags order the operands as signed values.
func (d datapath) signedAdd(a, b uint64) alu.ResultRecord {
	sa, sb := d.signExtend(a), d.signExtend(b)
	sum := uint64(sa+sb) & d.spec.ResultMask()

	return alu.ResultRecord{
		Result:   sum,
		Overflow: d.signBit(a) == d.signBit(b) && d.signBit(a) != d.signBit(sum),
		Greater:  sa > sb,
		Equal:    sa == sb,
		Less:     sa < sb,
	}
}

// signedSub produces the sign-extended double-width difference. Overflow
// asserts when the operand signs differ and the result sign matches the
// subtrahend's.
func (d datapath) signedSub(a, b uint64) alu.ResultRecord {
	sa, sb := d.signExtend(a), d.signExtend(b)
	diff := uint64(sa-sb) & d.spec.ResultMask()

	return alu.ResultRecord{
		Result:   diff,
		Overflow: d.signBit(a) != d.signBit(b) && d.signBit(diff) == d.signBit(b),
		Greater:  sa > sb,
		Equal:    sa == sb,
		Less:     sa < sb,
	}
}

// rotate turns a by the amount addressed by the low rotate-width bits of b.
// Any higher bit set in b makes the amount invalid, which behaves like an
// undefined operation.
func (d datapath) rotate(a, b uint64, right bool) alu.ResultRecord {
	if b>>uint(d.spec.RotateWidth()) != 0 {
		return alu.ResultRecord{Err: true}
	}

	w := uint64(d.spec.OperandWidth)
	amt := b % w
	if right {
		amt = (w - amt) % w
	}

	return alu.ResultRecord{
		Result: (a<<amt | a>>(w-amt)) & d.spec.OperandMask(),
	}
}
