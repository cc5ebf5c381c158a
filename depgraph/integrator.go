package depgraph

// Changes is the result of a successful integration: the handles of every
// node that was newly added with a fingerprint, whose fingerprint changed,
// or that was removed because the input stopped defining it.
type Changes struct {
	Nodes []NodeHandle
}

// Integrate applies one input's dependency summary to the graph. owner is
// the dependency-source identity the summary belongs to — the same
// identity registered with RegisterSummaryLocation, not necessarily the
// source file's own path, since tracing walks owner identities rather
// than source files. It implements the integrator contract: on
// a malformed summary it reports false and leaves the graph untouched;
// otherwise it returns the changed-node set and true.
func Integrate(g *Graph, data []byte, owner string) (Changes, bool) {
	summary, err := ParseSummary(data)
	if err != nil {
		return Changes{}, false
	}

	var changed []NodeHandle
	seen := make(map[DependencyKey]struct{}, len(summary.Defines))

	for _, d := range summary.Defines {
		seen[d.Key] = struct{}{}

		if h, ok := g.finder.lookup(owner, d.Key); ok {
			existing, _ := g.finder.node(h)
			if !existing.HasFingerprint || existing.Fingerprint != d.Fingerprint {
				g.finder.updateFingerprint(h, d.Fingerprint, true)
				changed = append(changed, h)
			}
			continue
		}

		h := g.finder.insert(owner, d.Key, d.Fingerprint, true)
		changed = append(changed, h)
	}

	for key, h := range g.finder.nodesOwnedBy(owner) {
		if _, stillDefined := seen[key]; !stillDefined {
			g.finder.remove(h)
			changed = append(changed, h)
		}
	}

	for _, key := range summary.Uses {
		g.finder.addUseEdge(key, owner)
		if key.IsExternal() {
			g.externalDependencies[key.Designator.Name] = struct{}{}
		}
	}

	return Changes{Nodes: changed}, true
}
