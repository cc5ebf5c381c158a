package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loomc/options"
)

func derive(t *testing.T, argv0 string, tail []string) *CompilationPlan {
	t.Helper()
	table := options.New()
	res := Derive(argv0, tail, table, nil)
	require.Empty(t, res.Diagnostics, "unexpected diagnostics: %+v", res.Diagnostics)
	require.NotNil(t, res.Plan)
	return res.Plan
}

func TestInteractiveNoInputsIsREPL(t *testing.T) {
	p := derive(t, "loom", nil)

	assert.Equal(t, DriverInteractive, p.DriverKind)
	assert.Equal(t, REPL, p.CompilerMode)
	assert.Equal(t, "REPL", p.ModuleName)
	assert.Equal(t, ModuleOutputNone, p.ModuleOutputKind)
	assert.False(t, p.HasLinkerOutput)
}

func TestSingleInputObjectBuild(t *testing.T) {
	p := derive(t, "loomc", []string{"a.loom"})

	assert.Equal(t, DriverBatch, p.DriverKind)
	assert.Equal(t, StandardCompile, p.CompilerMode)
	assert.True(t, p.HasCompilerOutput)
	assert.Equal(t, OutObject, p.CompilerOutputType)
	assert.True(t, p.HasLinkerOutput)
	assert.Equal(t, LinkExecutable, p.LinkerOutputType)
	assert.Equal(t, "a", p.ModuleName)
}

func TestWholeModuleOptimizationWithExplicitModuleName(t *testing.T) {
	p := derive(t, "loomc", []string{
		"-whole-module-optimization", "-module-name", "M",
		"a.loom", "b.loom", "-o", "libM.dylib", "-emit-library",
	})

	assert.Equal(t, SingleCompile, p.CompilerMode)
	assert.True(t, p.HasLinkerOutput)
	assert.Equal(t, LinkDynamicLibrary, p.LinkerOutputType)
	assert.Equal(t, "M", p.ModuleName)
}

func TestBadModuleNameFromOutpath(t *testing.T) {
	table := options.New()
	res := Derive("loomc", []string{"-emit-library", "-o", "lib123.dylib", "a.loom"}, table, nil)

	require.NotEmpty(t, res.Diagnostics)
	assert.Equal(t, ErrBadModuleName, res.Diagnostics[0].Kind)
}

func TestStaticEmitExecutableDisallowed(t *testing.T) {
	table := options.New()
	res := Derive("loomc", []string{"-emit-executable", "-static", "a.loom"}, table, nil)

	require.NotEmpty(t, res.Diagnostics)
	assert.Equal(t, ErrStaticEmitExecutableDisallowed, res.Diagnostics[0].Kind)
}

func TestStdlibModuleNameRequiresParseStdlib(t *testing.T) {
	table := options.New()
	res := Derive("loomc", []string{"-module-name", "core", "a.loom"}, table, nil)

	require.NotEmpty(t, res.Diagnostics)
	assert.Equal(t, ErrStdlibModuleName, res.Diagnostics[0].Kind)
}

func TestStdlibModuleNameAllowedWithParseStdlib(t *testing.T) {
	p := derive(t, "loomc", []string{"-module-name", "core", "-parse-stdlib", "a.loom"})
	assert.Equal(t, "core", p.ModuleName)
}

func TestDebugInfoFormatWithoutLevelIsMissingArgument(t *testing.T) {
	table := options.New()
	res := Derive("loomc", []string{"-debug-info-format=dwarf", "a.loom"}, table, nil)

	require.NotEmpty(t, res.Diagnostics)
	assert.Equal(t, ErrOptionMissingRequiredArgument, res.Diagnostics[0].Kind)
}

func TestCodeViewDisallowedWithLineTablesOnly(t *testing.T) {
	table := options.New()
	res := Derive("loomc", []string{"-gline-tables-only", "-debug-info-format=codeview", "a.loom"}, table, nil)

	require.NotEmpty(t, res.Diagnostics)
	assert.Equal(t, ErrArgumentNotAllowedWith, res.Diagnostics[0].Kind)
}

func TestModuleRequestedUnderImmediateIsRejected(t *testing.T) {
	table := options.New()
	res := Derive("loom", []string{"-emit-module", "a.loom"}, table, nil)

	require.NotEmpty(t, res.Diagnostics)
	assert.Equal(t, ErrModeCannotEmitModule, res.Diagnostics[0].Kind)
}

func TestInvalidDriverNameFails(t *testing.T) {
	table := options.New()
	res := Derive("mystery-tool", nil, table, nil)

	require.NotEmpty(t, res.Diagnostics)
	assert.Equal(t, ErrInvalidDriverName, res.Diagnostics[0].Kind)
}

func TestWorkingDirectoryRewritesInputsAndPathOptions(t *testing.T) {
	table := options.New()
	res := Derive("loomc", []string{"-working-directory", "/proj", "-o", "out", "a.loom"}, table, nil)

	require.Empty(t, res.Diagnostics)
	require.NotNil(t, res.Plan)
	assert.Equal(t, "/proj/a.loom", res.Plan.Inputs[0].Reference)
}

func TestWorkingDirectoryLeavesStdinSentinelAlone(t *testing.T) {
	table := options.New()
	// An explicit module name is given because the stdin sentinel's own
	// basename "-" is not a valid module name.
	res := Derive("loomc", []string{"-working-directory", "/proj", "-module-name", "M", "-"}, table, nil)

	require.Empty(t, res.Diagnostics)
	require.NotNil(t, res.Plan)
	assert.Equal(t, "-", res.Plan.Inputs[0].Reference)
}

func TestInteractiveNoInputsWithDashIIsREPL(t *testing.T) {
	p := derive(t, "loom", []string{"-i"})

	assert.Equal(t, DriverInteractive, p.DriverKind)
	assert.Equal(t, REPL, p.CompilerMode)
}

func TestInteractiveWithInputsAndDashIIsImmediate(t *testing.T) {
	p := derive(t, "loom", []string{"-i", "a.loom"})

	assert.Equal(t, DriverInteractive, p.DriverKind)
	assert.Equal(t, Immediate, p.CompilerMode)
}
