package plan

// WholeModuleKey is the sentinel input-file-reference used to look up
// whole-module outputs (e.g. the build-record location) in an
// OutputFileMap, rather than a per-input output.
const WholeModuleKey = ""

type outputKey struct {
	input string
	typ   FileType
}

// OutputFileMap maps (input reference, output type) to an output path. It
// is populated once, at load time, and is queried but never mutated
// afterward.
type OutputFileMap struct {
	entries map[outputKey]string
}

// NewOutputFileMap builds an OutputFileMap from a flat set of entries; a
// nil or empty map is valid and simply answers every lookup with "not
// found".
func NewOutputFileMap(entries map[outputKey]string) *OutputFileMap {
	return &OutputFileMap{entries: entries}
}

// Set records the output path for one (input, type) pair. Exported for
// callers (tests, and LoadOutputFileMap, which reads an externally-produced
// map) that build the map incrementally rather than in one literal.
func (m *OutputFileMap) Set(input string, typ FileType, path string) {
	if m.entries == nil {
		m.entries = make(map[outputKey]string)
	}
	m.entries[outputKey{input: input, typ: typ}] = path
}

// Lookup returns the output path registered for the given input reference
// and output type.
func (m *OutputFileMap) Lookup(input string, typ FileType) (string, bool) {
	if m == nil || m.entries == nil {
		return "", false
	}
	path, ok := m.entries[outputKey{input: input, typ: typ}]
	return path, ok
}

// WholeModuleOutput returns the output path registered for the single-input
// sentinel key, used for whole-module outputs such as the build record.
func (m *OutputFileMap) WholeModuleOutput(typ FileType) (string, bool) {
	return m.Lookup(WholeModuleKey, typ)
}
