package plan

import (
	"loomc/args"
	"loomc/options"
)

var debugLevelByOption = map[string]DebugInfoLevel{
	"g":                 DebugASTTypes,
	"gline-tables-only": DebugLineTables,
	"gdwarf-types":      DebugDwarfTypes,
	"gnone":             DebugNone,
}

// deriveDebugInfo implements the debug-info derivation: level from the
// last option in the "g" group, format from -debug-info-format= (default
// dwarf), plus the two named diagnostics that cross-check them.
func deriveDebugInfo(po *args.ParsedOptions, c *collector) (level DebugInfoLevel, hasLevel bool, format DebugInfoFormat) {
	format = DebugFormatDWARF

	if last, ok := po.LastByGroup(options.GroupDebugLevel); ok {
		level, hasLevel = debugLevelByOption[last.OptionSpelling], true
	}

	formatEntry, hasFormat := po.LastByOption("debug-info-format=")
	if hasFormat {
		if !hasLevel {
			c.add(ErrOptionMissingRequiredArgument, "-debug-info-format= requires a -g option")
		}

		switch formatEntry.Value {
		case "dwarf":
			format = DebugFormatDWARF
		case "codeview":
			format = DebugFormatCodeView
		default:
			c.add(ErrInvalidArgValue, "invalid value for -debug-info-format=: %s", formatEntry.Value)
			format = DebugFormatDWARF
		}
	}

	if format == DebugFormatCodeView && hasLevel && (level == DebugLineTables || level == DebugDwarfTypes) {
		c.add(ErrArgumentNotAllowedWith, "-debug-info-format=codeview is not allowed with this -g option")
	}

	return level, hasLevel, format
}
