package core

import "github.com/sarchlab/palu/alu"

// Builder can build ALU cores.
type Builder struct {
	spec  alu.Spec
	table alu.OpcodeTable
}

// WithSpec sets the width configuration of the core to build.
func (b Builder) WithSpec(spec alu.Spec) Builder {
	b.spec = spec
	return b
}

// WithTable sets the opcode table of the core to build.
func (b Builder) WithTable(table alu.OpcodeTable) Builder {
	b.table = table
	return b
}

// Build creates a core with the given name. Unset parameters fall back to
// the reference configuration. Build panics if the spec does not validate.
func (b Builder) Build(name string) *Core {
	if b.spec == (alu.Spec{}) {
		b.spec = alu.DefaultSpec()
	}
	if b.table == nil {
		b.table = alu.DefaultTable()
	}

	if err := b.spec.Validate(); err != nil {
		panic(err)
	}
	if len(b.table) == 0 {
		panic("core: empty opcode table")
	}

	return &Core{
		name:  name,
		spec:  b.spec,
		table: b.table,
		dp:    datapath{spec: b.spec, table: b.table},
	}
}
