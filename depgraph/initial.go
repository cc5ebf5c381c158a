package depgraph

import (
	"loomc/plan"
	"loomc/report"
)

// ReadSummary loads the bytes of the dependency summary at path. It is
// injected rather than hardcoded to os.ReadFile so tests can supply
// in-memory summaries without touching the filesystem.
type ReadSummary func(path string) ([]byte, error)

// BuildInitial constructs the graph before the first wave, on a fresh
// process start. Every input must have a registered FileSwiftDeps output
// location in ofm, or the whole initial build fails. Inputs that were
// present in the previous build have their existing summary integrated;
// a summary that fails to read or to parse adds its input to the
// force-recompile list rather than aborting the build. Inputs new to this
// build are registered but not integrated — there is no prior summary to
// consume.
func BuildInitial(inputs []string, previousInputs map[string]struct{}, ofm *plan.OutputFileMap, read ReadSummary) (*Graph, []string, bool) {
	g := NewGraph()
	var forceRecompile []string

	for _, input := range inputs {
		path, ok := ofm.Lookup(input, plan.FileSwiftDeps)
		if !ok {
			report.Remark("no dependency-summary output location for %s; incremental build disabled", input)
			return nil, nil, false
		}

		if !g.RegisterSummaryLocation(input, path) {
			report.Remark("dependency-summary location for %s collides with another input; incremental build disabled", input)
			return nil, nil, false
		}

		if _, wasBuiltBefore := previousInputs[input]; !wasBuiltBefore {
			continue
		}

		data, err := read(path)
		if err != nil {
			report.Remark("could not read prior summary for %s: %s; forcing recompilation", input, err)
			forceRecompile = append(forceRecompile, input)
			continue
		}

		if _, ok := Integrate(g, data, path); !ok {
			report.Remark("prior summary for %s is malformed; forcing recompilation", input)
			forceRecompile = append(forceRecompile, input)
		}
	}

	return g, forceRecompile, true
}
