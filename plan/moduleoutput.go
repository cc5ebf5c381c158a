package plan

import "loomc/args"

// deriveModuleOutputKind implements the module-output derivation: kind
// is topLevel if the user explicitly asked for an emitted module,
// auxiliary if something implicitly requires one (a non-none debug level),
// otherwise none — then overridden to none (with a diagnostic) under repl
// or immediate, since those modes can't emit a module.
func deriveModuleOutputKind(po *args.ParsedOptions, mode CompilerMode, hasDebugLevel bool, debugLevel DebugInfoLevel, c *collector) ModuleOutputKind {
	var kind ModuleOutputKind

	switch {
	case po.ContainsAny("emit-module", "emit-module-path"):
		kind = ModuleOutputTopLevel
	case hasDebugLevel && debugLevel != DebugNone:
		kind = ModuleOutputAuxiliary
	default:
		kind = ModuleOutputNone
	}

	if kind != ModuleOutputNone && (mode == REPL || mode == Immediate) {
		c.add(ErrModeCannotEmitModule, "compiler mode cannot emit a module")
		return ModuleOutputNone
	}

	return kind
}
