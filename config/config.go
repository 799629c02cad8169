// Package config provides a default configuration for the verification
// platform.
package config

import (
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/akita/v4/sim/directconnection"

	"github.com/sarchlab/palu/alu"
	"github.com/sarchlab/palu/api"
	"github.com/sarchlab/palu/core"
	"github.com/sarchlab/palu/verify"
)

// Platform bundles the unit under test with the bench that drives it and
// the checker that scores it.
type Platform struct {
	Engine  sim.Engine
	Unit    *core.Core
	Bench   api.Bench
	Checker *verify.Checker
}

// PlatformBuilder can build verification platforms.
type PlatformBuilder struct {
	engine sim.Engine
	freq   sim.Freq
	spec   alu.Spec
	table  alu.OpcodeTable
}

// WithEngine sets the engine that drives the platform simulation.
func (b PlatformBuilder) WithEngine(engine sim.Engine) PlatformBuilder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the platform.
func (b PlatformBuilder) WithFreq(freq sim.Freq) PlatformBuilder {
	b.freq = freq
	return b
}

// WithSpec sets the width configuration of the unit under test.
func (b PlatformBuilder) WithSpec(spec alu.Spec) PlatformBuilder {
	b.spec = spec
	return b
}

// WithTable sets the opcode table of the unit under test.
func (b PlatformBuilder) WithTable(table alu.OpcodeTable) PlatformBuilder {
	b.table = table
	return b
}

// Build creates a platform. Unset parameters fall back to a serial engine,
// a 1 GHz clock, and the reference unit configuration.
func (b PlatformBuilder) Build(name string) *Platform {
	engine := b.engine
	if engine == nil {
		engine = sim.NewSerialEngine()
	}

	freq := b.freq
	if freq == 0 {
		freq = 1 * sim.GHz
	}

	spec := b.spec
	if spec == (alu.Spec{}) {
		spec = alu.DefaultSpec()
	}

	unit := core.Builder{}.
		WithSpec(spec).
		WithTable(b.table).
		Build(name + ".Unit")

	bench := api.BenchBuilder{}.
		WithEngine(engine).
		WithFreq(freq).
		Build(name + ".Bench")

	checker := verify.CheckerBuilder{}.
		WithEngine(engine).
		WithFreq(freq).
		WithSpec(spec).
		Build(name + ".Checker")

	conn := directconnection.MakeBuilder().
		WithEngine(engine).
		WithFreq(freq).
		Build(name + ".Conn")
	conn.PlugIn(bench.OutPort())
	conn.PlugIn(checker.InPort())

	bench.RegisterUnit(unit)
	bench.ConnectChecker(checker.InPort().AsRemote())

	return &Platform{
		Engine:  engine,
		Unit:    unit,
		Bench:   bench,
		Checker: checker,
	}
}
