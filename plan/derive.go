package plan

import (
	"loomc/args"
	"loomc/options"
)

// Result is the outcome of Derive: either a usable CompilationPlan, or a
// nonempty list of diagnostics describing why derivation failed.
type Result struct {
	Plan        *CompilationPlan
	Diagnostics []Diagnostic
	// ParsedOptions is the options log this derivation consumed, exposed
	// so a caller that needs it for an unrelated purpose (the build-
	// record options hash, help rendering) doesn't have to reparse argv.
	ParsedOptions *args.ParsedOptions
}

// Derive runs the full plan-derivation pipeline: it
// parses argv against table, then derives the driver kind, resolves the
// working directory, and derives inputs, compiler mode, outputs, debug
// info, module output kind, and module name, in that order.
func Derive(argv0 string, argvTail []string, table *options.Table, ofm *OutputFileMap) Result {
	c := &collector{}

	driverModeOverride, rest := extractDriverModeOverride(argvTail)

	po, err := args.Parse(rest, table)
	if err != nil {
		switch e := err.(type) {
		case *args.ErrMissingValue:
			c.add(ErrMissingValue, "%s", e.Error())
		case *args.ErrUnknownOption:
			c.add(ErrUnknownOption, "%s", e.Error())
		default:
			c.add(ErrUnknownOption, "%s", err.Error())
		}
		return Result{Diagnostics: c.diags}
	}

	kind := deriveDriverKind(argv0, driverModeOverride, po, c)

	wd, hasWD := resolveWorkingDirectory(po, table, c)

	var inputs []InputFile
	for _, e := range po.AllInputs() {
		inputs = append(inputs, ClassifyInput(e.Value))
	}

	mode := deriveCompilerMode(po, kind, inputs)

	out := derivePrimaryOutputs(po, kind, c)

	debugLevel, hasDebugLevel, debugFormat := deriveDebugInfo(po, c)

	moduleOutputKind := deriveModuleOutputKind(po, mode, hasDebugLevel, debugLevel, c)

	moduleName := deriveModuleName(po, mode, inputs, out, c)

	if c.any() {
		return Result{Diagnostics: c.diags, ParsedOptions: po}
	}

	planResult := &CompilationPlan{
		DriverKind:          kind,
		CompilerMode:        mode,
		Inputs:              inputs,
		OutputFileMap:       ofm,
		CompilerOutputType:  out.compilerOut,
		HasCompilerOutput:   out.hasCompiler,
		LinkerOutputType:    out.linkerOut,
		HasLinkerOutput:     out.hasLinker,
		DebugInfoLevel:      debugLevel,
		HasDebugInfo:        hasDebugLevel,
		DebugInfoFormat:     debugFormat,
		ModuleOutputKind:    moduleOutputKind,
		ModuleName:          moduleName,
		WorkingDirectory:    wd,
		HasWorkingDirectory: hasWD,
	}

	return Result{Plan: planResult, ParsedOptions: po}
}
