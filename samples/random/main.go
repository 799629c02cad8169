package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"github.com/tebeka/atexit"

	"github.com/sarchlab/palu/alu"
	"github.com/sarchlab/palu/config"
	"github.com/sarchlab/palu/core"
	"github.com/sarchlab/palu/stimulus"
	"github.com/sarchlab/palu/verify"
)

var n = flag.Int("n", 100, "number of cases to run")
var seed = flag.Int64("seed", 1, "random seed")
var operandWidth = flag.Int("w", 8, "operand width in bits")
var commandWidth = flag.Int("cmdw", 4, "command width in bits")
var traceFlag = flag.Bool("trace", false, "log cycle-level events")

func main() {
	flag.Parse()

	level := slog.LevelWarn
	if *traceFlag {
		level = core.LevelTrace
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr,
		&slog.HandlerOptions{Level: level})))

	spec := alu.Spec{
		OperandWidth: *operandWidth,
		CommandWidth: *commandWidth,
	}
	if err := spec.Validate(); err != nil {
		fmt.Println(err)
		atexit.Exit(1)
	}
	if *commandWidth < 4 {
		fmt.Println("the reference opcode table needs at least 4 command bits")
		atexit.Exit(1)
	}

	table := alu.DefaultTable()

	gen := stimulus.Generator{
		Spec:  spec,
		Table: table,
		Model: func(l alu.Lines) alu.ResultRecord {
			return core.Evaluate(spec, table, l)
		},
		Rand: rand.New(rand.NewSource(*seed)),
	}
	seq := gen.Generate(*n)

	platform := config.PlatformBuilder{}.
		WithSpec(spec).
		WithTable(table).
		Build("Platform")

	platform.Bench.Feed(seq, seq.Len())
	runErr := platform.Bench.Run()

	report := verify.GenerateReport(platform.Checker, spec, runErr)
	report.WriteReport(os.Stdout)

	if !report.Passed() {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
