package depgraph

// Graph is the DependencyGraph: the dual-indexed NodeFinder plus the
// traced-set, the external-dependency set, and the bidirectional mapping
// between source inputs and their summary file locations. It is
// constructed once before the first wave and lives for the duration of
// one driver run.
type Graph struct {
	finder *NodeFinder

	// traced holds the handles of nodes that have been visited by a
	// tracing walk since the last time they were cleared. Tracing within
	// one wave consults it to skip a node it has already visited.
	traced map[NodeHandle]bool

	externalDependencies map[string]struct{}

	sourceInputToSummary map[string]string
	summaryToSourceInput map[string]string
}

// NewGraph builds an empty graph with no nodes and no registered inputs.
func NewGraph() *Graph {
	return &Graph{
		finder:                newNodeFinder(),
		traced:                make(map[NodeHandle]bool),
		externalDependencies:  make(map[string]struct{}),
		sourceInputToSummary:  make(map[string]string),
		summaryToSourceInput:  make(map[string]string),
	}
}

// RegisterSummaryLocation records where input's dependency summary lives.
// The mapping must be an injection in both directions; a second input
// claiming the same summary path, or the same input claiming two paths,
// is a defect and is reported as false rather than silently overwritten.
func (g *Graph) RegisterSummaryLocation(input, summaryPath string) bool {
	if existing, ok := g.sourceInputToSummary[input]; ok && existing != summaryPath {
		return false
	}
	if existingInput, ok := g.summaryToSourceInput[summaryPath]; ok && existingInput != input {
		return false
	}

	g.sourceInputToSummary[input] = summaryPath
	g.summaryToSourceInput[summaryPath] = input
	return true
}

// SummaryLocation returns the summary path registered for input, if any.
func (g *Graph) SummaryLocation(input string) (string, bool) {
	path, ok := g.sourceInputToSummary[input]
	return path, ok
}

// InputForSummary is the reverse lookup of RegisterSummaryLocation.
func (g *Graph) InputForSummary(summaryPath string) (string, bool) {
	input, ok := g.summaryToSourceInput[summaryPath]
	return input, ok
}

// ExternalDependencies returns the set of external-dependency names the
// graph has observed a use of, across every integration so far.
func (g *Graph) ExternalDependencies() []string {
	names := make([]string, 0, len(g.externalDependencies))
	for name := range g.externalDependencies {
		names = append(names, name)
	}
	return names
}

// untrace clears the traced flag for a node, so the next tracing walk
// revisits its uses. The driver calls this for every node an integration
// reported as changed, right after that integration and before tracing
// from those nodes.
func (g *Graph) untrace(h NodeHandle) {
	delete(g.traced, h)
}

// isTraced reports whether h has been visited by a tracing walk since it
// was last cleared.
func (g *Graph) isTraced(h NodeHandle) bool {
	return g.traced[h]
}

func (g *Graph) markTraced(h NodeHandle) {
	g.traced[h] = true
}

// Untrace clears the traced flag for every node in handles. It is the
// exported form of untrace, called by the driver after each integration
// for the set of nodes that integration reported as changed.
func (g *Graph) Untrace(handles []NodeHandle) {
	for _, h := range handles {
		g.untrace(h)
	}
}
