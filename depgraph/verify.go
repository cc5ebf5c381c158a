package depgraph

import "fmt"

// VerifyInvariants walks the graph's indices and checks that they are
// fully consistent. It is opt-in — the driver calls it after every
// integration only when a debug flag requests it — since a full walk costs time
// proportional to the graph's size. A non-nil return is a defect: these
// invariants must hold by construction and a violation means this
// package has a bug, not that the build's inputs were unusual.
func VerifyInvariants(g *Graph) error {
	if err := verifyOwnerIndexConsistency(g); err != nil {
		return err
	}
	if err := verifyNoDuplicateNodes(g); err != nil {
		return err
	}
	if err := verifyBidirectionalInjection(g); err != nil {
		return err
	}
	return nil
}

// verifyOwnerIndexConsistency checks that every live node with an owner
// is reachable from the owner index under its own (owner, key), and that
// every entry in the owner index resolves back to that same live node —
// the two sides of the "by owning input" index must stay in lock-step.
func verifyOwnerIndexConsistency(g *Graph) error {
	for h, alive := range g.finder.live {
		if !alive {
			continue
		}
		n := g.finder.arena[h]
		if !n.HasOwner {
			continue
		}

		byKey, ok := g.finder.byOwnerKey[n.OwningInput]
		if !ok {
			return fmt.Errorf("node %d owned by %q missing from owner index", h, n.OwningInput)
		}
		indexed, ok := byKey[n.Key]
		if !ok || indexed != NodeHandle(h) {
			return fmt.Errorf("node %d owned by %q not indexed under its own key %s", h, n.OwningInput, n.Key)
		}
	}

	for owner, byKey := range g.finder.byOwnerKey {
		for key, h := range byKey {
			n, ok := g.finder.node(h)
			if !ok {
				return fmt.Errorf("owner index entry (%q, %s) points at a dead node", owner, key)
			}
			if n.OwningInput != owner || n.Key != key {
				return fmt.Errorf("owner index entry (%q, %s) resolves to mismatched node %v", owner, key, n)
			}
		}
	}

	return nil
}

// verifyNoDuplicateNodes checks that no two live nodes share an equal
// (DependencyKey, owningInputHandle) pair.
func verifyNoDuplicateNodes(g *Graph) error {
	seen := make(map[string]map[DependencyKey]bool)

	for h, alive := range g.finder.live {
		if !alive {
			continue
		}
		n := g.finder.arena[h]
		if !n.HasOwner {
			continue
		}

		if seen[n.OwningInput] == nil {
			seen[n.OwningInput] = make(map[DependencyKey]bool)
		}
		if seen[n.OwningInput][n.Key] {
			return fmt.Errorf("duplicate node for (%s, owner=%q)", n.Key, n.OwningInput)
		}
		seen[n.OwningInput][n.Key] = true
	}

	return nil
}

// verifyBidirectionalInjection checks that sourceInputToSummary is an
// injection both ways: distinct inputs never share a summary path, and
// the reverse map agrees with the forward one for every entry.
func verifyBidirectionalInjection(g *Graph) error {
	if len(g.sourceInputToSummary) != len(g.summaryToSourceInput) {
		return fmt.Errorf("sourceInputToSummary is not an injection: %d inputs, %d summary paths",
			len(g.sourceInputToSummary), len(g.summaryToSourceInput))
	}

	for input, path := range g.sourceInputToSummary {
		back, ok := g.summaryToSourceInput[path]
		if !ok || back != input {
			return fmt.Errorf("summary path %q for input %q does not map back to it", path, input)
		}
	}

	return nil
}
