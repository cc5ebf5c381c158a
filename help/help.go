// Package help renders usage text for the driver's option schema. It is
// the external collaborator the driver facade delegates to for "-help"
// and "-help-hidden": the core's job is only to recognize those options
// and stop, not to format output.
package help

import (
	"os"

	"github.com/ComedicChimera/olive"

	"loomc/options"
)

// Render builds an olive CLI description that mirrors table's schema and
// prints its usage text. When hidden is false, options tagged
// options.AttrHidden are left out, matching "-help" versus "-help-hidden".
func Render(table *options.Table, hidden bool) {
	cli := olive.NewCLI("loomc", "loomc drives compilation, linking, and incremental builds for Loom modules.", true)

	for _, opt := range table.All() {
		if !hidden && opt.Attrs.Has(options.AttrHidden) {
			continue
		}

		switch opt.Kind {
		case options.Flag:
			cli.AddFlag(opt.Spelling, "", opt.Help)
		case options.SeparateValue, options.JoinedValue, options.JoinedOrSeparate:
			cli.AddStringArg(trimJoinedSuffix(opt.Spelling), "", opt.Help, false)
		case options.RemainingArgs:
			cli.AddStringArg(opt.Spelling, "", opt.Help, false)
		}
	}

	if _, err := olive.ParseArgs(cli, []string{os.Args[0], "-h"}); err != nil {
		// olive's own "-h" handling prints usage and returns an error
		// that the caller of Render is not expected to act on; a real
		// parse failure here would mean this package built a malformed
		// CLI description, not that the user's invocation was bad.
		return
	}
}

// trimJoinedSuffix strips the trailing "=" that a JoinedValue spelling
// like "debug-info-format=" carries, so the rendered flag name reads
// "debug-info-format" rather than "debug-info-format=".
func trimJoinedSuffix(spelling string) string {
	if len(spelling) > 0 && spelling[len(spelling)-1] == '=' {
		return spelling[:len(spelling)-1]
	}
	return spelling
}
