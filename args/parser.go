package args

import (
	"fmt"
	"strings"

	"loomc/options"
)

// ErrMissingValue is returned (wrapped) when a separate-value option
// appears with no following token to supply its value.
type ErrMissingValue struct{ Spelling string }

func (e *ErrMissingValue) Error() string {
	return fmt.Sprintf("option -%s requires an argument", e.Spelling)
}

// ErrUnknownOption is returned (wrapped) when a "-"-prefixed token matches
// no option in the schema.
type ErrUnknownOption struct{ Token string }

func (e *ErrUnknownOption) Error() string {
	return fmt.Sprintf("unknown option: %s", e.Token)
}

// Parse consumes the argv tail (os.Args[1:], conventionally) against the
// given option table and returns the resulting ParsedOptions.  On the first
// malformed token, parsing stops and the error describes the defect; the
// partially built ParsedOptions is discarded, since a malformed argument
// vector never produces a partial result worth salvaging.
func Parse(argv []string, table *options.Table) (*ParsedOptions, error) {
	po := &ParsedOptions{}
	inputOpt := table.InputOption()

	i := 0
	for i < len(argv) {
		tok := argv[i]
		i++

		switch {
		case tok == "-":
			po.Append(ParsedOption{Opt: inputOpt, ArgKind: ArgSingle, Value: tok})

		case strings.HasPrefix(tok, "-"):
			body := tok[1:]
			opt, rest, ok := table.Match(body)
			if !ok {
				return nil, &ErrUnknownOption{Token: tok}
			}

			switch opt.Kind {
			case options.Flag:
				po.Append(ParsedOption{OptionSpelling: opt.Spelling, Opt: opt, ArgKind: ArgNone})

			case options.JoinedValue:
				po.Append(ParsedOption{OptionSpelling: opt.Spelling, Opt: opt, ArgKind: ArgSingle, Value: rest})

			case options.SeparateValue:
				if i >= len(argv) {
					return nil, &ErrMissingValue{Spelling: opt.Spelling}
				}
				value := argv[i]
				i++
				po.Append(ParsedOption{OptionSpelling: opt.Spelling, Opt: opt, ArgKind: ArgSingle, Value: value})

			case options.JoinedOrSeparate:
				if rest != "" {
					po.Append(ParsedOption{OptionSpelling: opt.Spelling, Opt: opt, ArgKind: ArgSingle, Value: rest})
				} else {
					if i >= len(argv) {
						return nil, &ErrMissingValue{Spelling: opt.Spelling}
					}
					value := argv[i]
					i++
					po.Append(ParsedOption{OptionSpelling: opt.Spelling, Opt: opt, ArgKind: ArgSingle, Value: value})
				}

			case options.RemainingArgs:
				rem := argv[i:]
				i = len(argv)
				po.Append(ParsedOption{OptionSpelling: opt.Spelling, Opt: opt, ArgKind: ArgMulti, Values: rem})

			default:
				return nil, &ErrUnknownOption{Token: tok}
			}

		default:
			po.Append(ParsedOption{Opt: inputOpt, ArgKind: ArgSingle, Value: tok})
		}
	}

	return po, nil
}
