package alu

import "sort"

// Op identifies one operation of the unit.
type Op int

// The operations the reference unit implements.
const (
	OpInvalid Op = iota

	OpAdd
	OpSub
	OpAddCin
	OpSubCin
	OpIncA
	OpDecA
	OpIncB
	OpDecB
	OpCmp
	OpIncMul
	OpShlMul
	OpSignedAdd
	OpSignedSub

	OpAnd
	OpNand
	OpOr
	OpNor
	OpXor
	OpXnor
	OpNotA
	OpNotB
	OpShr1A
	OpShl1A
	OpShr1B
	OpShl1B
	OpRolAB
	OpRorAB
)

var opNames = map[Op]string{
	OpInvalid:   "INVALID",
	OpAdd:       "ADD",
	OpSub:       "SUB",
	OpAddCin:    "ADD_CIN",
	OpSubCin:    "SUB_CIN",
	OpIncA:      "INC_A",
	OpDecA:      "DEC_A",
	OpIncB:      "INC_B",
	OpDecB:      "DEC_B",
	OpCmp:       "CMP",
	OpIncMul:    "INC_MUL",
	OpShlMul:    "SHL_MUL",
	OpSignedAdd: "SADD",
	OpSignedSub: "SSUB",
	OpAnd:       "AND",
	OpNand:      "NAND",
	OpOr:        "OR",
	OpNor:       "NOR",
	OpXor:       "XOR",
	OpXnor:      "XNOR",
	OpNotA:      "NOT_A",
	OpNotB:      "NOT_B",
	OpShr1A:     "SHR1_A",
	OpShl1A:     "SHL1_A",
	OpShr1B:     "SHR1_B",
	OpShl1B:     "SHL1_B",
	OpRolAB:     "ROL",
	OpRorAB:     "ROR",
}

// Name returns the mnemonic of the op.
func (o Op) Name() string {
	name, ok := opNames[o]
	if !ok {
		panic("unknown op")
	}

	return name
}

// IsMultiply reports whether the op carries the extra cycle of output
// latency.
func (o Op) IsMultiply() bool {
	return o == OpIncMul || o == OpShlMul
}

// OpKey addresses one entry of an OpcodeTable.
type OpKey struct {
	Mode     Mode
	Validity Validity
	Command  uint64
}

// OpcodeTable maps decoded input lines to operations. Triples absent from
// the table are undefined operations.
type OpcodeTable map[OpKey]Op

// Lookup decodes one (mode, validity, command) triple.
func (t OpcodeTable) Lookup(m Mode, v Validity, cmd uint64) (Op, bool) {
	op, ok := t[OpKey{Mode: m, Validity: v, Command: cmd}]
	return op, ok
}

// Keys returns the defined triples in a stable order.
func (t OpcodeTable) Keys() []OpKey {
	keys := make([]OpKey, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.Mode != b.Mode {
			return a.Mode < b.Mode
		}
		if a.Validity != b.Validity {
			return a.Validity < b.Validity
		}
		return a.Command < b.Command
	})

	return keys
}

// DefaultTable returns the reference command encodings. Single-operand
// commands decode only under their matching validity selector.
func DefaultTable() OpcodeTable {
	return OpcodeTable{
		{ModeArith, ValidityA, 0b0100}: OpIncA,
		{ModeArith, ValidityA, 0b0101}: OpDecA,

		{ModeArith, ValidityB, 0b0110}: OpIncB,
		{ModeArith, ValidityB, 0b0111}: OpDecB,

		{ModeArith, ValidityBoth, 0b0000}: OpAdd,
		{ModeArith, ValidityBoth, 0b0001}: OpSub,
		{ModeArith, ValidityBoth, 0b0010}: OpAddCin,
		{ModeArith, ValidityBoth, 0b0011}: OpSubCin,
		{ModeArith, ValidityBoth, 0b1000}: OpCmp,
		{ModeArith, ValidityBoth, 0b1001}: OpIncMul,
		{ModeArith, ValidityBoth, 0b1010}: OpShlMul,
		{ModeArith, ValidityBoth, 0b1011}: OpSignedAdd,
		{ModeArith, ValidityBoth, 0b1100}: OpSignedSub,

		{ModeLogic, ValidityA, 0b0110}: OpNotA,
		{ModeLogic, ValidityA, 0b1000}: OpShr1A,
		{ModeLogic, ValidityA, 0b1001}: OpShl1A,

		{ModeLogic, ValidityB, 0b0111}: OpNotB,
		{ModeLogic, ValidityB, 0b1010}: OpShr1B,
		{ModeLogic, ValidityB, 0b1011}: OpShl1B,

		{ModeLogic, ValidityBoth, 0b0000}: OpAnd,
		{ModeLogic, ValidityBoth, 0b0001}: OpNand,
		{ModeLogic, ValidityBoth, 0b0010}: OpOr,
		{ModeLogic, ValidityBoth, 0b0011}: OpNor,
		{ModeLogic, ValidityBoth, 0b0100}: OpXor,
		{ModeLogic, ValidityBoth, 0b0101}: OpXnor,
		{ModeLogic, ValidityBoth, 0b1100}: OpRolAB,
		{ModeLogic, ValidityBoth, 0b1101}: OpRorAB,
	}
}
