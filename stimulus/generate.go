package stimulus

import (
	"math/rand"

	"github.com/sarchlab/palu/alu"
	valgen "github.com/sarchlab/palu/util"
)

// Generator builds random stimulus sequences. Expected outputs come from a
// reference model so that generated sequences are self-checking.
type Generator struct {
	Spec  alu.Spec
	Table alu.OpcodeTable

	// Model computes the expected output for one set of input lines.
	Model func(alu.Lines) alu.ResultRecord

	// OperandA and OperandB produce operand values. When nil, operands are
	// drawn uniformly.
	OperandA valgen.Gen
	OperandB valgen.Gen

	Rand *rand.Rand
}

// Generate produces n records. Each record picks a defined op triple at
// random, draws operands and the carry-in, and keeps the clock enable on.
func (g Generator) Generate(n int) *Sequence {
	if g.Model == nil {
		panic("generator requires a model")
	}

	spec := g.Spec
	if spec == (alu.Spec{}) {
		spec = alu.DefaultSpec()
	}

	table := g.Table
	if table == nil {
		table = alu.DefaultTable()
	}

	rng := g.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	genA := g.OperandA
	if genA == nil {
		genA = valgen.MakeRandGen(rng, spec.OperandMask())
	}

	genB := g.OperandB
	if genB == nil {
		genB = valgen.MakeRandGen(rng, spec.OperandMask())
	}

	keys := table.Keys()
	recs := make([]alu.StimulusRecord, 0, n)

	for i := 0; i < n; i++ {
		key := keys[rng.Intn(len(keys))]

		rec := alu.StimulusRecord{
			Feature:     uint8(i),
			Validity:    key.Validity,
			OperandA:    genA(),
			OperandB:    genB(),
			Command:     key.Command,
			CarryIn:     rng.Intn(2) == 1,
			ClockEnable: true,
			Mode:        key.Mode,
		}
		rec.Expect = g.Model(rec.Lines())

		recs = append(recs, rec)
	}

	return NewSequence(recs...)
}
