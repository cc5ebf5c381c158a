package plan

import (
	"path/filepath"
	"strings"
	"unicode"

	"loomc/args"
)

// deriveModuleName implements the module-name rule, trying each source
// in order until one produces a nonempty candidate, then validating the
// result as an identifier.
func deriveModuleName(
	po *args.ParsedOptions,
	mode CompilerMode,
	inputs []InputFile,
	out derivedOutputs,
	c *collector,
) string {
	parseAsLibraryOrStdlib := po.ContainsAny("parse-as-library", "parse-stdlib")
	isExecutable := buildingExecutable(out, parseAsLibraryOrStdlib, len(inputs))

	candidate := firstNonempty(
		explicitModuleName(po),
		replModuleName(mode),
		outpathModuleName(po, out),
		soleInputModuleName(inputs),
		fallbackMainModuleName(out, isExecutable),
	)

	if candidate == "" {
		return ""
	}

	if !isValidIdentifier(candidate) {
		c.add(ErrBadModuleName, "invalid module name: %s", candidate)
		return BadModuleName
	}

	if candidate == StdlibModuleName && !po.ContainsAny("parse-stdlib") {
		c.add(ErrStdlibModuleName, "module name %q is reserved for the standard library; pass -parse-stdlib to use it", StdlibModuleName)
	}

	return candidate
}

// buildingExecutable is the tie-break rule: true iff the linker
// output type is an executable; false for a library; otherwise true iff
// neither -parse-as-library nor -parse-stdlib is present and there is
// exactly one input.
func buildingExecutable(out derivedOutputs, parseAsLibraryOrStdlib bool, numInputs int) bool {
	if out.hasLinker {
		return out.linkerOut == LinkExecutable
	}
	return !parseAsLibraryOrStdlib && numInputs == 1
}

func explicitModuleName(po *args.ParsedOptions) string {
	entry, ok := po.LastByOption("module-name")
	if !ok {
		return ""
	}
	return entry.Value
}

func replModuleName(mode CompilerMode) string {
	if mode == REPL {
		return "REPL"
	}
	return ""
}

// outpathModuleName implements rule 3: the basename of -o without
// extension, dropping a leading "lib" when the linker output is a library
// and the basename both has an extension and begins with "lib".
func outpathModuleName(po *args.ParsedOptions, out derivedOutputs) string {
	entry, ok := po.LastByOption("o")
	if !ok {
		return ""
	}

	base := filepath.Base(entry.Value)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	isLibrary := out.hasLinker && (out.linkerOut == LinkStaticLibrary || out.linkerOut == LinkDynamicLibrary)
	if isLibrary && ext != "" && strings.HasPrefix(stem, "lib") {
		stem = strings.TrimPrefix(stem, "lib")
	}

	return stem
}

func soleInputModuleName(inputs []InputFile) string {
	if len(inputs) != 1 {
		return ""
	}
	base := filepath.Base(inputs[0].Reference)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// fallbackMainModuleName implements rule 5: "main" if there's no compiler
// output type, or if the plan is building an executable.
func fallbackMainModuleName(out derivedOutputs, buildingExecutable bool) string {
	if !out.hasCompiler || buildingExecutable {
		return "main"
	}
	return ""
}

func firstNonempty(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}

// isValidIdentifier reports whether name is a valid Loom identifier: a
// Unicode letter or underscore, followed by any number of Unicode letters,
// digits, or underscores.
func isValidIdentifier(name string) bool {
	if name == "" {
		return false
	}

	for i, r := range name {
		if i == 0 {
			if !unicode.IsLetter(r) && r != '_' {
				return false
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}

	return true
}
