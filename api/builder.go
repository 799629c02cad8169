package api

import "github.com/sarchlab/akita/v4/sim"

type defaultPortFactory struct {
}

func (f defaultPortFactory) make(c sim.Component, name string) sim.Port {
	return sim.NewPort(c, 1, 1, name)
}

// BenchBuilder creates a new instance of Bench.
type BenchBuilder struct {
	engine sim.Engine
	freq   sim.Freq
}

// WithEngine sets the engine.
func (b BenchBuilder) WithEngine(engine sim.Engine) BenchBuilder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the bench.
func (b BenchBuilder) WithFreq(freq sim.Freq) BenchBuilder {
	b.freq = freq
	return b
}

// Build creates a bench.
func (b BenchBuilder) Build(name string) Bench {
	bench := &benchImpl{
		portFactory: defaultPortFactory{},
	}

	bench.TickingComponent =
		sim.NewTickingComponent(name, b.engine, b.freq, bench)

	bench.toChecker = bench.portFactory.make(bench, name+".ToChecker")
	bench.AddPort("ToChecker", bench.toChecker)

	return bench
}
