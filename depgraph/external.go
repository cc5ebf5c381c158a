package depgraph

// ForEachUseOfExternalDependency implements the external-dependency
// traversal: for every owner that recorded a use of the
// interface aspect of the named external dependency, invoke callback
// with that owner's source-file input — but only for a use that is still
// untraced, since a traced use has already had its recompilation
// consequences accounted for in an earlier wave.
func (g *Graph) ForEachUseOfExternalDependency(name string, callback func(input string)) {
	key := DependencyKey{Aspect: AspectInterface, Designator: ExternalDepend(name)}

	for owner := range g.finder.usersOf(key) {
		owned := g.finder.nodesOwnedBy(owner)

		untraced := len(owned) == 0
		for _, h := range owned {
			if !g.isTraced(h) {
				untraced = true
				break
			}
		}
		if !untraced {
			continue
		}

		if input, ok := g.InputForSummary(owner); ok {
			callback(input)
		}
	}
}
