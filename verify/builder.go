package verify

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/palu/alu"
)

type defaultPortFactory struct {
}

func (f defaultPortFactory) make(c sim.Component, name string) sim.Port {
	return sim.NewPort(c, 1, 1, name)
}

// CheckerBuilder creates a new instance of Checker.
type CheckerBuilder struct {
	engine sim.Engine
	freq   sim.Freq
	spec   alu.Spec
}

// WithEngine sets the engine.
func (b CheckerBuilder) WithEngine(engine sim.Engine) CheckerBuilder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the checker.
func (b CheckerBuilder) WithFreq(freq sim.Freq) CheckerBuilder {
	b.freq = freq
	return b
}

// WithSpec sets the width configuration responses are scored under.
func (b CheckerBuilder) WithSpec(spec alu.Spec) CheckerBuilder {
	b.spec = spec
	return b
}

// Build creates a checker.
func (b CheckerBuilder) Build(name string) *Checker {
	spec := b.spec
	if spec == (alu.Spec{}) {
		spec = alu.DefaultSpec()
	}

	c := &Checker{
		judge:       NewJudge(spec),
		portFactory: defaultPortFactory{},
	}

	c.TickingComponent =
		sim.NewTickingComponent(name, b.engine, b.freq, c)

	c.fromUnit = c.portFactory.make(c, name+".FromUnit")
	c.AddPort("FromUnit", c.fromUnit)

	return c
}
