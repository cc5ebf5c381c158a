package plan

import (
	"os"
	"path/filepath"

	"loomc/args"
	"loomc/options"
)

// extractDriverModeOverride removes the first "--driver-mode=X" token from
// argv (it is recognized before the rest of argv is tokenized, since its
// double-dash spelling doesn't fit the single-dash option schema) and
// returns its value together with the remaining tokens.
func extractDriverModeOverride(argv []string) (override string, rest []string) {
	const prefix = "--driver-mode="
	for i, tok := range argv {
		if len(tok) >= len(prefix) && tok[:len(prefix)] == prefix {
			override = tok[len(prefix):]
			rest = append(rest, argv[:i]...)
			rest = append(rest, argv[i+1:]...)
			return override, rest
		}
	}
	return "", argv
}

// resolveWorkingDirectory implements the -working-directory pass: if
// present, its value is resolved to an absolute path (relative to the
// process's current directory if it isn't already absolute), and then
// applied to every path-valued option and every input, except the stdin
// sentinel. Applying the pass twice is idempotent because rewriting a path
// that is already absolute is a no-op.
func resolveWorkingDirectory(po *args.ParsedOptions, table *options.Table, c *collector) (string, bool) {
	entry, ok := po.LastByOption("working-directory")
	if !ok {
		return "", false
	}

	wd := entry.Value
	if !filepath.IsAbs(wd) {
		cwd, err := os.Getwd()
		if err != nil {
			c.add(ErrInvalidArgValue, "-working-directory must be absolute when the current directory is unavailable: %s", wd)
			return wd, true
		}
		wd = filepath.Join(cwd, wd)
	}

	po.ForEachModifying(func(p *args.ParsedOption) {
		if p.IsInput() {
			if p.Value != StdinSentinel {
				p.Value = rewriteAbs(wd, p.Value)
			}
			return
		}
		if p.Opt != nil && p.Opt.Attrs.Has(options.AttrPath) && p.ArgKind == args.ArgSingle {
			p.Value = rewriteAbs(wd, p.Value)
		}
	})

	return wd, true
}

// rewriteAbs resolves value against base unless value is already absolute,
// so repeated application is idempotent.
func rewriteAbs(base, value string) string {
	if filepath.IsAbs(value) {
		return value
	}
	return filepath.Join(base, value)
}
