// Command loomc is the compiler driver entry point: it wires argv, the
// diagnostic reporter, and the Driver facade together and propagates the
// resulting exit code.
package main

import (
	"os"

	"loomc/args"
	"loomc/driver"
	"loomc/options"
	"loomc/plan"
	"loomc/report"
)

// toolVersion is stamped into every build record this driver writes, so a
// later run under a different build of the driver is never trusted for
// an incremental build.
const toolVersion = "loomc-1.0"

func main() {
	report.Init(report.LevelVerbose)
	os.Exit(run(os.Args))
}

func run(argv []string) int {
	argv0, argvTail := argv[0], argv[1:]

	if _, ok := initCorePath(); !ok {
		return 1
	}

	d := driver.New(toolVersion)

	ofm, err := loadOutputFileMap(argvTail, d.Table)
	if err != nil {
		report.Warning("%s", err)
	}

	return d.Run(argv0, argvTail, ofm)
}

// loadOutputFileMap pre-scans argv for -output-file-map, outside of the
// Driver's own parse, because the map must already exist before plan
// derivation can resolve per-input outputs. A missing flag is not an
// error: most invocations have no build-record-backed incremental build
// to do.
func loadOutputFileMap(argvTail []string, table *options.Table) (*plan.OutputFileMap, error) {
	po, err := args.Parse(argvTail, table)
	if err != nil {
		return nil, nil
	}

	entry, ok := po.LastByOption("output-file-map")
	if !ok {
		return nil, nil
	}

	return plan.LoadOutputFileMap(entry.Value)
}
