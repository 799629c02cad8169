package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sarchlab/akita/v4/monitoring"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/palu/alu"
	"github.com/sarchlab/palu/config"
	"github.com/sarchlab/palu/core"
	"github.com/sarchlab/palu/statsview"
	"github.com/sarchlab/palu/stimulus"
	"github.com/sarchlab/palu/verify"
)

var vectorPath = flag.String("vectors", "vectors.yaml",
	"vector file to run, YAML or packed bit strings by extension")
var reportPath = flag.String("report", "", "also save the report to a file")
var traceFlag = flag.Bool("trace", false, "log cycle-level events")
var monitorFlag = flag.Bool("monitor", false,
	"start the akita monitoring server")
var statsFlag = flag.Bool("stats", false,
	"start the statsview server, if built in")

func loadVectors(path string, spec alu.Spec) (*stimulus.Sequence, error) {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return stimulus.LoadFileFromYAML(path, spec)
	default:
		return stimulus.LoadFile(path, spec)
	}
}

func main() {
	flag.Parse()

	level := slog.LevelWarn
	if *traceFlag {
		level = core.LevelTrace
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr,
		&slog.HandlerOptions{Level: level})))

	spec := alu.DefaultSpec()

	seq, err := loadVectors(*vectorPath, spec)
	if err != nil {
		fmt.Println(err)
		atexit.Exit(1)
	}

	platform := config.PlatformBuilder{}.
		WithSpec(spec).
		Build("Platform")

	if *monitorFlag {
		monitor := monitoring.NewMonitor()
		monitor.RegisterEngine(platform.Engine)
		monitor.RegisterComponent(platform.Bench)
		monitor.RegisterComponent(platform.Checker)
		monitor.StartServer()
	}

	if *statsFlag && statsview.Available() {
		statsview.Launch(os.Stdout)
	}

	platform.Bench.Feed(seq, seq.Len())
	runErr := platform.Bench.Run()

	report := verify.GenerateReport(platform.Checker, spec, runErr)
	report.WriteReport(os.Stdout)

	if *reportPath != "" {
		if err := report.SaveReportToFile(*reportPath); err != nil {
			fmt.Println(err)
			atexit.Exit(1)
		}
	}

	if !report.Passed() {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
