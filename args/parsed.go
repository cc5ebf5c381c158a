// Package args implements the argument parser: it consumes an argv-style
// token vector against an options.Table and produces an ordered
// ParsedOptions log, preserving order, multiplicity, and input
// positionality exactly as they appeared on the command line.
package args

import "loomc/options"

// ArgKind enumerates the shape of a ParsedOption's argument.
type ArgKind int

const (
	ArgNone ArgKind = iota
	ArgSingle
	ArgMulti
)

// ParsedOption is one entry in the parser's output log: either a matched
// option together with its argument, or an input (OptionSpelling == "").
type ParsedOption struct {
	// OptionSpelling is the canonical spelling of the matched option, or
	// "" if this entry is an input.
	OptionSpelling string
	Opt            *options.Option
	ArgKind        ArgKind
	// Value holds the argument for ArgSingle, and doubles as the input's
	// file reference (path or the stdin sentinel "-") when this entry is
	// an input.
	Value string
	// Values holds the argument for ArgMulti (RemainingArgs options).
	Values []string
}

// IsInput reports whether this entry represents a positional input or the
// stdin sentinel, rather than a matched option.
func (p ParsedOption) IsInput() bool {
	return p.Opt != nil && p.Opt.Kind == options.Input
}

// ParsedOptions is the ordered, append-only log produced by Parse.  It is
// mutated in exactly one place in the whole driver: the -working-directory
// path-rewriting pass, via ForEachModifying.
type ParsedOptions struct {
	entries []ParsedOption
}

// Append adds an entry to the end of the log.  It is exported only for use
// by the parser and by tests constructing fixtures directly.
func (po *ParsedOptions) Append(p ParsedOption) {
	po.entries = append(po.entries, p)
}

// All returns every entry in source order.  The returned slice aliases the
// log's backing array and must not be mutated by the caller; use
// ForEachModifying for in-place transforms.
func (po *ParsedOptions) All() []ParsedOption {
	return po.entries
}

// LastByGroup returns the last-appearing entry whose option belongs to the
// given group, which is how the plan deriver resolves "last flag in a
// mutually exclusive family wins" rules (compiler mode, debug level).
func (po *ParsedOptions) LastByGroup(group options.Group) (ParsedOption, bool) {
	for i := len(po.entries) - 1; i >= 0; i-- {
		e := po.entries[i]
		if e.Opt != nil && e.Opt.Group == group {
			return e, true
		}
	}
	return ParsedOption{}, false
}

// LastByOption returns the last-appearing entry for the option with the
// given canonical spelling.
func (po *ParsedOptions) LastByOption(spelling string) (ParsedOption, bool) {
	for i := len(po.entries) - 1; i >= 0; i-- {
		e := po.entries[i]
		if e.OptionSpelling == spelling {
			return e, true
		}
	}
	return ParsedOption{}, false
}

// ContainsAny reports whether any of the given canonical spellings appear
// anywhere in the log.
func (po *ParsedOptions) ContainsAny(spellings ...string) bool {
	set := make(map[string]struct{}, len(spellings))
	for _, s := range spellings {
		set[s] = struct{}{}
	}
	for _, e := range po.entries {
		if _, ok := set[e.OptionSpelling]; ok {
			return true
		}
	}
	return false
}

// ForEachModifying applies fn to every entry in place.  It is the log's
// sole mutation path, used by the -working-directory pass to rewrite
// path-valued arguments and input references to absolute paths.
func (po *ParsedOptions) ForEachModifying(fn func(*ParsedOption)) {
	for i := range po.entries {
		fn(&po.entries[i])
	}
}

// AllInputs returns every input entry (positional files and the stdin
// sentinel) in source order.
func (po *ParsedOptions) AllInputs() []ParsedOption {
	var inputs []ParsedOption
	for _, e := range po.entries {
		if e.IsInput() {
			inputs = append(inputs, e)
		}
	}
	return inputs
}
