package plan

// CompilationPlan is the fully derived, immutable build plan. Every field
// is fixed once Derive returns; mutating a plan afterward is a defect.
type CompilationPlan struct {
	DriverKind   DriverKind
	CompilerMode CompilerMode
	Inputs       []InputFile

	OutputFileMap *OutputFileMap

	// CompilerOutputType and LinkerOutputType are legitimately absent
	// (e.g. under -typecheck, or under the interactive driver kind), so
	// each carries its own "ok" flag rather than collapsing to a sentinel
	// enum value.
	CompilerOutputType  CompilerOutputType
	HasCompilerOutput   bool
	LinkerOutputType    LinkerOutputType
	HasLinkerOutput     bool
	DebugInfoLevel      DebugInfoLevel
	HasDebugInfo        bool
	DebugInfoFormat     DebugInfoFormat
	ModuleOutputKind    ModuleOutputKind
	ModuleName          string
	WorkingDirectory    string
	HasWorkingDirectory bool
}
