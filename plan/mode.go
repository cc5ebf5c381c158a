package plan

import (
	"loomc/args"
	"loomc/options"
)

// singleCompileModeOptions force CompilerMode to SingleCompile regardless
// of what else is in the modes group.
var singleCompileModeOptions = map[string]bool{
	"emit-pch":              true,
	"emit-imported-modules": true,
	"index-file":            true,
}

// deriveCompilerMode implements the compiler-mode derivation rules: certain
// mode options imply singleCompile; the unconditional REPL-family options
// imply repl outright; -i is an alias for the interactive driver's own
// input-count rule rather than a REPL-family option itself, so it falls
// through to that rule instead of forcing repl; interactive driver kind with
// no inputs implies repl, with inputs implies immediate;
// -whole-module-optimization elsewhere implies singleCompile; otherwise
// standardCompile.
func deriveCompilerMode(po *args.ParsedOptions, kind DriverKind, inputs []InputFile) CompilerMode {
	if last, ok := po.LastByGroup(options.GroupModes); ok && singleCompileModeOptions[last.OptionSpelling] {
		return SingleCompile
	}

	if po.ContainsAny("repl", "deprecated-integrated-repl", "lldb-repl") {
		return REPL
	}

	if kind == DriverInteractive {
		if len(inputs) == 0 {
			return REPL
		}
		return Immediate
	}

	if po.ContainsAny("whole-module-optimization") {
		return SingleCompile
	}

	return StandardCompile
}
