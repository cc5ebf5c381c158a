package depgraph

import (
	"fmt"

	"github.com/pelletier/go-toml"
)

// Define is one entity a per-input dependency summary declares, paired
// with the fingerprint of its current definition.
type Define struct {
	Key         DependencyKey
	Fingerprint string
}

// Summary is the parsed form of the opaque blob the frontend produces for
// one input: the entities it defines and the keys it uses.
type Summary struct {
	Defines []Define
	Uses    []DependencyKey
}

// rawSummary is the on-disk TOML shape of a Summary. The frontend that
// produces these files is an external collaborator; this shape is the
// contract this package requires of it.
type rawSummary struct {
	Defines []rawEntry `toml:"defines"`
	Uses    []rawEntry `toml:"uses"`
}

type rawEntry struct {
	Aspect      string `toml:"aspect"`
	Kind        string `toml:"kind"`
	Holder      string `toml:"holder"`
	Name        string `toml:"name"`
	Fingerprint string `toml:"fingerprint"`
}

var aspectBySpelling = map[string]Aspect{
	"interface":      AspectInterface,
	"implementation": AspectImplementation,
}

var designatorKindBySpelling = map[string]DesignatorKind{
	"topLevel":        DesigTopLevel,
	"nominal":         DesigNominal,
	"member":          DesigMember,
	"potentialMember": DesigPotentialMember,
	"externalDepend":  DesigExternalDepend,
}

func (e rawEntry) key() (DependencyKey, error) {
	aspect, ok := aspectBySpelling[e.Aspect]
	if !ok {
		return DependencyKey{}, fmt.Errorf("malformed summary: unknown aspect %q", e.Aspect)
	}

	kind, ok := designatorKindBySpelling[e.Kind]
	if !ok {
		return DependencyKey{}, fmt.Errorf("malformed summary: unknown designator kind %q", e.Kind)
	}

	if e.Name == "" {
		return DependencyKey{}, fmt.Errorf("malformed summary: designator missing name")
	}

	return DependencyKey{
		Aspect:     aspect,
		Designator: Designator{Kind: kind, Holder: e.Holder, Name: e.Name},
	}, nil
}

// ParseSummary decodes one per-input dependency summary. A summary that
// does not parse as TOML, or whose entries name an unrecognized aspect or
// designator kind, is reported as malformed.
func ParseSummary(data []byte) (Summary, error) {
	var raw rawSummary
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Summary{}, fmt.Errorf("malformed summary: %w", err)
	}

	summary := Summary{
		Defines: make([]Define, 0, len(raw.Defines)),
		Uses:    make([]DependencyKey, 0, len(raw.Uses)),
	}

	for _, d := range raw.Defines {
		key, err := d.key()
		if err != nil {
			return Summary{}, err
		}
		summary.Defines = append(summary.Defines, Define{Key: key, Fingerprint: d.Fingerprint})
	}

	for _, u := range raw.Uses {
		key, err := u.key()
		if err != nil {
			return Summary{}, err
		}
		summary.Uses = append(summary.Uses, key)
	}

	return summary, nil
}
