package plan

import "fmt"

// Diagnostic is a single error produced during plan derivation.  Kind is a
// stable, machine-checkable identifier (mirrors the named diagnostics in
// the error-handling design); Message is the human-readable text.
type Diagnostic struct {
	Kind    string
	Message string
}

// Diagnostic kind identifiers, named exactly as the derivation rules that
// produce them.
const (
	ErrStaticEmitExecutableDisallowed = "error_static_emit_executable_disallowed"
	ErrOptionMissingRequiredArgument  = "error_option_missing_required_argument"
	ErrArgumentNotAllowedWith         = "error_argument_not_allowed_with"
	ErrModeCannotEmitModule           = "error_mode_cannot_emit_module"
	ErrBadModuleName                  = "error_bad_module_name"
	ErrStdlibModuleName               = "error_stdlib_module_name"
	ErrInvalidArgValue                = "error_invalid_arg_value"
	ErrInvalidDriverName              = "error_invalid_driver_name"
	ErrUnknownOption                  = "error_unknown_option"
	ErrMissingValue                   = "error_missing_value"
)

// collector accumulates diagnostics across the derivation pipeline without
// short-circuiting each individual step, so one run reports every
// independent derivation failure instead of stopping at the first.
type collector struct {
	diags []Diagnostic
}

func (c *collector) add(kind, format string, args ...interface{}) {
	c.diags = append(c.diags, Diagnostic{Kind: kind, Message: fmt.Sprintf(format, args...)})
}

func (c *collector) any() bool {
	return len(c.diags) > 0
}
