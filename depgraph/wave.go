package depgraph

// trace walks use-edges outward from seeds with the previously-untraced
// filter: a node already in the traced set is not revisited.
// From a visited node that has an owner, that owner identity is added to
// the result. Traversal continues by treating every node owned by each
// using input as a further seed, since that owner's own definitions may
// in turn be used elsewhere — this is what lets a change ripple past one
// hop of use-edges.
func (g *Graph) trace(seeds []NodeHandle) map[string]struct{} {
	reached := make(map[string]struct{})

	queue := append([]NodeHandle(nil), seeds...)
	for len(queue) > 0 {
		h := queue[0]
		queue = queue[1:]

		if g.isTraced(h) {
			continue
		}
		g.markTraced(h)

		n, ok := g.finder.node(h)
		if !ok {
			continue
		}

		if n.HasOwner {
			reached[n.OwningInput] = struct{}{}
		}

		for usingOwner := range g.finder.usersOf(n.Key) {
			reached[usingOwner] = struct{}{}

			for _, next := range g.finder.nodesOwnedBy(usingOwner) {
				if !g.isTraced(next) {
					queue = append(queue, next)
				}
			}
		}
	}

	return reached
}

// findSwiftDepsToRecompileWhenWholeSwiftDepsChanges computes the
// reflexive-transitive closure over the graph of owner identities whose
// nodes are reached by tracing from every node owned by swiftDeps.
func (g *Graph) findSwiftDepsToRecompileWhenWholeSwiftDepsChanges(swiftDeps string) map[string]struct{} {
	owned := g.finder.nodesOwnedBy(swiftDeps)
	seeds := make([]NodeHandle, 0, len(owned))
	for _, h := range owned {
		seeds = append(seeds, h)
	}

	reached := g.trace(seeds)
	reached[swiftDeps] = struct{}{}
	return reached
}

// FindDependentSourceFiles implements the first-wave selection rule: given
// a source input the driver has identified as changed since the last
// build, return the source-file inputs that must be recompiled as a
// result, mapped back from the owner identities tracing reaches.
func (g *Graph) FindDependentSourceFiles(input string) []string {
	swiftDeps, ok := g.SummaryLocation(input)
	if !ok {
		return nil
	}

	reached := g.findSwiftDepsToRecompileWhenWholeSwiftDepsChanges(swiftDeps)
	return g.mapOwnersToInputs(reached)
}

// FindSwiftDepsToRecompileWhenNodesChange implements the second-wave
// selection rule: given the changed-node set an integration reported,
// trace from exactly those nodes and return the source-file inputs to
// enqueue next, excluding justCompiled (the input whose job just
// finished — it has already run this round).
func (g *Graph) FindSwiftDepsToRecompileWhenNodesChange(changed []NodeHandle, justCompiled string) []string {
	reached := g.trace(changed)

	if swiftDeps, ok := g.SummaryLocation(justCompiled); ok {
		delete(reached, swiftDeps)
	}

	return g.mapOwnersToInputs(reached)
}

// mapOwnersToInputs maps a set of owner identities (dependency sources)
// back to their source-file inputs via the bidirectional map. An owner
// identity with no registered source input is skipped — this can occur
// for nodes representing purely external interfaces.
func (g *Graph) mapOwnersToInputs(owners map[string]struct{}) []string {
	inputs := make([]string, 0, len(owners))
	for owner := range owners {
		if input, ok := g.InputForSummary(owner); ok {
			inputs = append(inputs, input)
		}
	}
	return inputs
}
