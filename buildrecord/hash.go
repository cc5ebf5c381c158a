package buildrecord

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"

	"loomc/args"
	"loomc/options"
)

// OptionsHash computes the args hash: take every parsed option
// whose schema entry has AttrAffectsIncremental set and which is not an
// input, extract its canonical spelling, sort ascending, concatenate, and
// hex-encode the SHA-256 digest. The hash covers presence only, not
// values, so it is invariant under reordering of incremental-affecting
// options.
func OptionsHash(po *args.ParsedOptions) string {
	var spellings []string
	for _, e := range po.All() {
		if e.IsInput() {
			continue
		}
		if e.Opt != nil && e.Opt.Attrs.Has(options.AttrAffectsIncremental) {
			spellings = append(spellings, e.OptionSpelling)
		}
	}

	sort.Strings(spellings)
	sum := sha256.Sum256([]byte(strings.Join(spellings, "\x00")))
	return hex.EncodeToString(sum[:])
}
