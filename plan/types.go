// Package plan implements the PlanDeriver: a pipeline of pure functions
// mapping a ParsedOptions log into a CompilationPlan.  Each derivation step
// is independently testable; later steps may consult the results of
// earlier ones, but never the reverse.
package plan

// DriverKind is which persona the driver adopts for a given invocation.
type DriverKind int

const (
	DriverBatch DriverKind = iota
	DriverInteractive
	DriverFrontend
	DriverModuleWrap
)

func (k DriverKind) String() string {
	switch k {
	case DriverBatch:
		return "batch"
	case DriverInteractive:
		return "interactive"
	case DriverFrontend:
		return "frontend"
	case DriverModuleWrap:
		return "modulewrap"
	default:
		return "unknown"
	}
}

// CompilerMode is how the frontend should be invoked across the set of
// inputs.
type CompilerMode int

const (
	StandardCompile CompilerMode = iota
	SingleCompile
	BatchCompile
	CompilePCM
	REPL
	Immediate
)

// FileType classifies an input (or output) by its role in the build.
type FileType int

const (
	FileSource FileType = iota
	FileObject
	FileAssembly
	FileSIL
	FileSIB
	FileLLVMIR
	FileBitcode
	FileModule
	FileSwiftDeps
	FilePCH
)

// CompilerOutputType is the kind of artifact the frontend itself produces
// for each (or the whole) compilation. The zero value has no meaning on its
// own; absence is modeled with a separate "ok" bool at the call site, since
// these options legitimately carry "none".
type CompilerOutputType int

const (
	OutObject CompilerOutputType = iota
	OutAssembly
	OutSIL
	OutSILGen
	OutSIB
	OutSIBGen
	OutIR
	OutBitcode
	OutModule
	OutImportedModules
	OutIndexData
	OutPCH
	OutASTDump
	OutParse
	OutResolveImports
	OutTypecheck
	OutDumpParse
	OutSyntax
	OutPrintAST
	OutTypeRefinementContexts
	OutScopeMaps
	OutInterfaceHash
	OutTypeInfo
	OutVerifyDebugInfo
	OutUpdateCode
)

// LinkerOutputType is the kind of artifact the linker produces from the
// frontend's object output.
type LinkerOutputType int

const (
	LinkExecutable LinkerOutputType = iota
	LinkStaticLibrary
	LinkDynamicLibrary
)

// DebugInfoLevel is how much debug information the frontend should emit.
type DebugInfoLevel int

const (
	DebugNone DebugInfoLevel = iota
	DebugLineTables
	DebugASTTypes
	DebugDwarfTypes
)

// DebugInfoFormat is the container format for emitted debug information.
type DebugInfoFormat int

const (
	DebugFormatDWARF DebugInfoFormat = iota
	DebugFormatCodeView
)

// ModuleOutputKind classifies why (if at all) a module artifact is emitted.
type ModuleOutputKind int

const (
	ModuleOutputNone ModuleOutputKind = iota
	ModuleOutputTopLevel
	ModuleOutputAuxiliary
)

// BadModuleName is substituted for a module name that fails identifier
// validation, so derivation never has to fail outright over a cosmetic
// defect.
const BadModuleName = "__bad__"

// StdlibModuleName is the name Loom's own standard library module is
// built under; using it for a user module requires -parse-stdlib.
const StdlibModuleName = "core"
