// Package options defines the driver's static option schema: the set of
// recognized command-line options, their spelling, argument kind, group
// membership, and attribute flags.  The schema is built once at program
// startup and never mutated afterward.
package options

// Kind enumerates how an option's argument (if any) is consumed from argv.
type Kind int

const (
	// Flag options take no argument.
	Flag Kind = iota
	// SeparateValue options consume the next argv token as their value.
	SeparateValue
	// JoinedValue options take the remainder of the matched token as their
	// value (e.g. "-ofoo" for an option spelled "o").
	JoinedValue
	// JoinedOrSeparate options prefer a joined value when the matched token
	// has a suffix beyond the spelling, and fall back to a separate value
	// otherwise.
	JoinedOrSeparate
	// Input marks the pseudo-option used to represent a positional input
	// file or the standard-input sentinel "-".
	Input
	// RemainingArgs consumes the rest of argv, verbatim, as a single
	// multi-value argument.
	RemainingArgs
	// Alias options resolve to another option's canonical spelling and
	// carry no behavior of their own.
	Alias
)

// Group identifies a mutually-exclusive family of options that the plan
// deriver resolves by taking the last-specified member.
type Group int

const (
	// GroupNone is the default group for options that don't participate in
	// last-one-wins resolution.
	GroupNone Group = iota
	// GroupModes holds the primary-action options: -emit-executable,
	// -emit-object, -typecheck, -parse, and so on.
	GroupModes
	// GroupDebugLevel holds -g, -gline-tables-only, -gdwarf-types, -gnone.
	GroupDebugLevel
	// GroupOptimization holds the -O* family (not modeled in detail by this
	// core, but reserved so the schema stays exhaustive).
	GroupOptimization
)

// Attr is a bitset of boolean tags attached to an option.
type Attr uint32

const (
	// AttrPath marks an option whose argument is a filesystem path subject
	// to rewriting by the -working-directory pass.
	AttrPath Attr = 1 << iota
	// AttrAffectsIncremental marks an option whose mere presence (not
	// value) is folded into the build-record options hash.
	AttrAffectsIncremental
	// AttrNoInteractive marks an option that is invalid under the
	// interactive driver kind.
	AttrNoInteractive
	// AttrNoBatch marks an option that is invalid under the batch-compiler
	// driver kind.
	AttrNoBatch
	// AttrIsInput marks the synthetic input pseudo-option.
	AttrIsInput
	// AttrHidden marks an option that is omitted from "-help" and shown
	// only by "-help-hidden".
	AttrHidden
)

// Has reports whether a carries every bit set in mask.
func (a Attr) Has(mask Attr) bool {
	return a&mask == mask
}

// Option is one entry in the schema.
type Option struct {
	// Spelling is the option's canonical, user-visible flag text, without
	// the leading "-".
	Spelling string
	Kind     Kind
	Group    Group
	Attrs    Attr
	// AliasOf is the canonical spelling this option resolves to.  Only
	// meaningful when Kind == Alias.
	AliasOf string
	// Help is a one-line description shown by the help renderer. Aliases
	// and the synthetic input pseudo-option leave this empty.
	Help string
}
