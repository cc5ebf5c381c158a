package options

// Table is the compile-time-known option schema, keyed by canonical
// spelling (without the leading "-").  It is built once by New and
// never mutated.
type Table struct {
	bySpelling map[string]*Option
	// byLengthDesc holds every option except the input pseudo-option,
	// aliases included, in descending spelling-length order, so Match can
	// perform a longest-prefix search without re-sorting on every call.
	byLengthDesc []*Option
}

// modeOption pairs a GroupModes spelling with its one-line help text.
type modeOption struct {
	spelling string
	help     string
}

// modeOptions lists every -emit-*/-dump-*/-typecheck/... spelling that
// belongs to GroupModes.  They are all flags.
var modeOptions = []modeOption{
	{"emit-executable", "Emit a linked executable"},
	{"emit-library", "Emit a linked library"},
	{"emit-object", "Emit object file(s)"},
	{"emit-assembly", "Emit assembly file(s)"},
	{"emit-sil", "Emit canonical SIL file(s)"},
	{"emit-silgen", "Emit raw SIL file(s)"},
	{"emit-sib", "Emit serialized SIL"},
	{"emit-sibgen", "Emit raw serialized SIL"},
	{"emit-ir", "Emit LLVM IR file(s)"},
	{"emit-bc", "Emit LLVM BC file(s)"},
	{"emit-pch", "Emit a precompiled bridging header"},
	{"emit-imported-modules", "Emit a list of the imported modules"},
	{"index-file", "Produce an index file for the input"},
	{"update-code", "Update Swift code in place"},
	{"dump-ast", "Parse and type-check the input(s) and dump the AST"},
	{"parse", "Parse the input(s) but don't type-check them"},
	{"resolve-imports", "Parse and resolve imports in the input(s)"},
	{"typecheck", "Parse and type-check the input(s)"},
	{"dump-parse", "Parse the input(s) and dump the AST"},
	{"emit-syntax", "Parse the input(s) and dump the Syntax tree"},
	{"print-ast", "Parse and type-check the input(s) and pretty print the AST"},
	{"dump-type-refinement-contexts", "Dump the type refinement context hierarchy"},
	{"dump-scope-maps", "Parse and type-check the input(s) and dump the scope map(s)"},
	{"dump-interface-hash", "Parse the input(s) and dump the interface token hash(es)"},
	{"dump-type-info", "Output YAML dump of layout for all types in the input(s)"},
	{"verify-debug-info", "Verify the debug info emitted during compilation"},
}

// debugLevelOptions lists the -g family, all flags in GroupDebugLevel.
var debugLevelOptions = []modeOption{
	{"g", "Emit debug info with AST-derived types"},
	{"gline-tables-only", "Emit line tables only, no type information"},
	{"gdwarf-types", "Emit full DWARF type info"},
	{"gnone", "Don't emit debug info"},
}

// New builds the driver's full option schema.
func New() *Table {
	t := &Table{bySpelling: make(map[string]*Option)}

	for _, m := range modeOptions {
		t.add(&Option{Spelling: m.spelling, Kind: Flag, Group: GroupModes, Attrs: AttrAffectsIncremental, Help: m.help})
	}

	for _, m := range debugLevelOptions {
		t.add(&Option{Spelling: m.spelling, Kind: Flag, Group: GroupDebugLevel, Attrs: AttrAffectsIncremental, Help: m.help})
	}

	t.add(&Option{Spelling: "working-directory", Kind: SeparateValue, Attrs: AttrPath,
		Help: "Resolve file paths and inputs relative to the given directory"})
	t.add(&Option{Spelling: "output-file-map", Kind: SeparateValue, Attrs: AttrPath,
		Help: "Read per-input output paths and the build-record location from the given JSON file"})
	t.add(&Option{Spelling: "o", Kind: SeparateValue, Attrs: AttrPath,
		Help: "Write output to the given path"})
	t.add(&Option{Spelling: "module-name", Kind: SeparateValue, Attrs: AttrAffectsIncremental,
		Help: "Name of the module to build"})
	t.add(&Option{Spelling: "static", Kind: Flag, Attrs: AttrAffectsIncremental,
		Help: "Link the standard library statically"})
	t.add(&Option{Spelling: "emit-module", Kind: Flag, Attrs: AttrAffectsIncremental,
		Help: "Emit an importable module"})
	t.add(&Option{Spelling: "emit-module-path", Kind: SeparateValue, Attrs: AttrPath | AttrAffectsIncremental,
		Help: "Emit an importable module to the given path"})
	t.add(&Option{Spelling: "whole-module-optimization", Kind: Flag, Attrs: AttrAffectsIncremental,
		Help: "Optimize across all files in the module at once"})
	t.add(&Option{Spelling: "repl", Kind: Flag, Attrs: AttrNoBatch,
		Help: "Launch the integrated REPL (requires the interactive driver)"})
	t.add(&Option{Spelling: "deprecated-integrated-repl", Kind: Flag, Attrs: AttrNoBatch | AttrHidden,
		Help: "Launch the deprecated integrated REPL"})
	t.add(&Option{Spelling: "lldb-repl", Kind: Flag, Attrs: AttrNoBatch | AttrHidden,
		Help: "Launch the LLDB-backed REPL"})
	t.add(&Option{Spelling: "i", Kind: Flag, Attrs: AttrNoBatch | AttrHidden,
		Help: "Alias for immediate-mode execution"})
	t.add(&Option{Spelling: "debug-info-format=", Kind: JoinedValue, Attrs: AttrAffectsIncremental,
		Help: "Specify the debug info format (dwarf|codeview)"})
	t.add(&Option{Spelling: "parse-as-library", Kind: Flag, Attrs: AttrAffectsIncremental,
		Help: "Parse the input(s) as a library, not a main module"})
	t.add(&Option{Spelling: "parse-stdlib", Kind: Flag, Attrs: AttrAffectsIncremental,
		Help: "Parse the input(s) as the standard library"})
	t.add(&Option{Spelling: "frontend", Kind: Flag, Attrs: AttrHidden,
		Help: "Run as the frontend driver (internal)"})
	t.add(&Option{Spelling: "modulewrap", Kind: Flag, Attrs: AttrHidden,
		Help: "Run as the module-wrap driver (internal)"})
	t.add(&Option{Spelling: "help", Kind: Flag,
		Help: "Show this help"})
	t.add(&Option{Spelling: "help-hidden", Kind: Flag,
		Help: "Show this help, including internal options"})
	t.add(&Option{Spelling: "pass-through", Kind: RemainingArgs, Attrs: AttrHidden,
		Help: "Pass all remaining arguments through unmodified"})
	t.add(&Option{Spelling: "driver-verify-dependency-graph", Kind: Flag, Attrs: AttrHidden,
		Help: "Verify dependency graph invariants after every integration (internal)"})

	t.add(&Option{Spelling: "h", Kind: Alias, AliasOf: "help"})
	t.add(&Option{Spelling: "gmlt", Kind: Alias, AliasOf: "gline-tables-only"})

	t.add(&Option{Spelling: "", Kind: Input, Attrs: AttrIsInput})

	t.buildIndex()
	return t
}

func (t *Table) add(opt *Option) {
	t.bySpelling[opt.Spelling] = opt
}

func (t *Table) buildIndex() {
	for _, opt := range t.bySpelling {
		if opt.Kind == Input {
			continue
		}
		t.byLengthDesc = append(t.byLengthDesc, opt)
	}

	// Insertion sort is plenty for a schema this size. Spellings of equal
	// length keep the map's iteration order, which varies between runs;
	// Match is unaffected, since two distinct spellings of equal length
	// cannot both be a prefix of the same token.
	for i := 1; i < len(t.byLengthDesc); i++ {
		for j := i; j > 0 && len(t.byLengthDesc[j-1].Spelling) < len(t.byLengthDesc[j].Spelling); j-- {
			t.byLengthDesc[j-1], t.byLengthDesc[j] = t.byLengthDesc[j], t.byLengthDesc[j-1]
		}
	}
}

// Lookup resolves a spelling to its canonical option, following alias hops
// until it reaches a non-alias option.  It does not do prefix matching; use
// Match for that.
func (t *Table) Lookup(spelling string) (*Option, bool) {
	opt, ok := t.bySpelling[spelling]
	if !ok {
		return nil, false
	}
	if opt.Kind == Alias {
		return t.Lookup(opt.AliasOf)
	}
	return opt, true
}

// Match finds the option whose spelling is the longest prefix of body (the
// argv token with its leading "-" already stripped), and returns the option
// together with whatever text follows the matched spelling in body.  Alias
// options resolve to their canonical target before being returned.
func (t *Table) Match(body string) (*Option, string, bool) {
	for _, opt := range t.byLengthDesc {
		if opt.Spelling == "" {
			continue
		}
		if len(body) >= len(opt.Spelling) && body[:len(opt.Spelling)] == opt.Spelling {
			canon, _ := t.Lookup(opt.Spelling)
			return canon, body[len(opt.Spelling):], true
		}
	}

	return nil, "", false
}

// InputOption returns the synthetic pseudo-option representing a positional
// input or the stdin sentinel.
func (t *Table) InputOption() *Option {
	opt, _ := t.bySpelling[""]
	return opt
}

// All returns every canonical, non-input option in ascending spelling
// order, for callers (the help renderer, in particular) that need a
// stable, complete walk of the schema. Aliases are omitted since they
// carry no independent help text.
func (t *Table) All() []*Option {
	opts := make([]*Option, 0, len(t.byLengthDesc))
	for _, opt := range t.byLengthDesc {
		if opt.Kind == Alias {
			continue
		}
		opts = append(opts, opt)
	}

	for i := 1; i < len(opts); i++ {
		for j := i; j > 0 && opts[j-1].Spelling > opts[j].Spelling; j-- {
			opts[j-1], opts[j] = opts[j], opts[j-1]
		}
	}

	return opts
}
