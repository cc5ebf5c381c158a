package plan

import (
	"loomc/args"
	"loomc/options"
)

// outputRule is one row of the explicit mode -> (compilerOutputType?,
// linkerOutputType?) table.
type outputRule struct {
	compilerOut  CompilerOutputType
	hasCompiler  bool
	linkerOut    LinkerOutputType
	hasLinker    bool
}

// modeOutputTable is the explicit table mapping a GroupModes option to the
// outputs it selects. A GroupModes option not listed here gets the same
// outputs as having no mode option at all (deriveDefaultOutputs).
var modeOutputTable = map[string]outputRule{
	"emit-executable": {linkerOut: LinkExecutable, hasLinker: true},
	"emit-library":    {linkerOut: LinkDynamicLibrary, hasLinker: true},
	"emit-object":     {compilerOut: OutObject, hasCompiler: true},
	"emit-assembly":   {compilerOut: OutAssembly, hasCompiler: true},
	"emit-sil":        {compilerOut: OutSIL, hasCompiler: true},
	"emit-silgen":     {compilerOut: OutSILGen, hasCompiler: true},
	"emit-sib":        {compilerOut: OutSIB, hasCompiler: true},
	"emit-sibgen":     {compilerOut: OutSIBGen, hasCompiler: true},
	"emit-ir":         {compilerOut: OutIR, hasCompiler: true},
	"emit-bc":         {compilerOut: OutBitcode, hasCompiler: true},
	"emit-pch":        {compilerOut: OutPCH, hasCompiler: true},
	"emit-imported-modules": {compilerOut: OutImportedModules, hasCompiler: true},
	"index-file":            {compilerOut: OutIndexData, hasCompiler: true},
	"update-code":           {compilerOut: OutUpdateCode, hasCompiler: true},
	"dump-ast":              {compilerOut: OutASTDump, hasCompiler: true},
	"parse":                 {compilerOut: OutParse, hasCompiler: true},
	"resolve-imports":       {compilerOut: OutResolveImports, hasCompiler: true},
	"typecheck":             {compilerOut: OutTypecheck, hasCompiler: true},
	"dump-parse":            {compilerOut: OutDumpParse, hasCompiler: true},
	"emit-syntax":           {compilerOut: OutSyntax, hasCompiler: true},
	"print-ast":             {compilerOut: OutPrintAST, hasCompiler: true},
	"dump-type-refinement-contexts": {compilerOut: OutTypeRefinementContexts, hasCompiler: true},
	"dump-scope-maps":               {compilerOut: OutScopeMaps, hasCompiler: true},
	"dump-interface-hash":           {compilerOut: OutInterfaceHash, hasCompiler: true},
	"dump-type-info":                {compilerOut: OutTypeInfo, hasCompiler: true},
	"verify-debug-info":             {compilerOut: OutVerifyDebugInfo, hasCompiler: true},
}

// derivedOutputs is the intermediate result of derivePrimaryOutputs, kept
// separate from CompilationPlan so module-output and module-name
// derivation (which need to know whether a static library was requested)
// can consult it without re-deriving anything.
type derivedOutputs struct {
	compilerOut CompilerOutputType
	hasCompiler bool
	linkerOut   LinkerOutputType
	hasLinker   bool
	isStatic    bool
}

// derivePrimaryOutputs implements the primary-outputs rule and its
// attendant diagnostics.
func derivePrimaryOutputs(po *args.ParsedOptions, kind DriverKind, c *collector) derivedOutputs {
	isStatic := po.ContainsAny("static")

	last, ok := po.LastByGroup(options.GroupModes)
	if !ok {
		return deriveDefaultOutputs(po, kind, isStatic)
	}

	rule, known := modeOutputTable[last.OptionSpelling]
	if !known {
		return deriveDefaultOutputs(po, kind, isStatic)
	}

	out := derivedOutputs{
		compilerOut: rule.compilerOut,
		hasCompiler: rule.hasCompiler,
		linkerOut:   rule.linkerOut,
		hasLinker:   rule.hasLinker,
		isStatic:    isStatic,
	}

	if last.OptionSpelling == "emit-executable" && isStatic {
		c.add(ErrStaticEmitExecutableDisallowed, "-static cannot be combined with -emit-executable")
	}

	if last.OptionSpelling == "emit-library" && isStatic {
		out.linkerOut = LinkStaticLibrary
	}

	return out
}

// deriveDefaultOutputs implements the "absence of a mode option" branch:
// -emit-module/-emit-module-path select a module output with no compiler
// object output; otherwise non-interactive drivers default to an
// executable, interactive drivers produce nothing.
func deriveDefaultOutputs(po *args.ParsedOptions, kind DriverKind, isStatic bool) derivedOutputs {
	if po.ContainsAny("emit-module", "emit-module-path") {
		return derivedOutputs{compilerOut: OutModule, hasCompiler: true, isStatic: isStatic}
	}

	if kind == DriverInteractive {
		return derivedOutputs{isStatic: isStatic}
	}

	return derivedOutputs{
		compilerOut: OutObject,
		hasCompiler: true,
		linkerOut:   LinkExecutable,
		hasLinker:   true,
		isStatic:    isStatic,
	}
}
