package depgraph

// NodeFinder is the dual-indexed node store described in the data model:
// one index keyed by owning input (for "what does this input currently
// define?"), one keyed by DependencyKey (for "who uses this key?"). Nodes
// live in a dense arena addressed by NodeHandle; neither index nor any
// Node stores a pointer back to the finder or the graph, so there is no
// ownership cycle to reason about.
type NodeFinder struct {
	arena []Node
	live  []bool

	// byOwnerKey is the "by owning input" index: owning input -> its
	// defined DependencyKeys -> node handle.
	byOwnerKey map[string]map[DependencyKey]NodeHandle

	// byKeyUsers is the "by DependencyKey" index: a key -> the set of
	// inputs whose summaries recorded a use of it. This is the use-edge
	// set, not a set of nodes.
	byKeyUsers map[DependencyKey]map[string]struct{}
}

func newNodeFinder() *NodeFinder {
	return &NodeFinder{
		byOwnerKey: make(map[string]map[DependencyKey]NodeHandle),
		byKeyUsers: make(map[DependencyKey]map[string]struct{}),
	}
}

// lookup finds the node, if any, that owner currently defines under key.
func (f *NodeFinder) lookup(owner string, key DependencyKey) (NodeHandle, bool) {
	byKey, ok := f.byOwnerKey[owner]
	if !ok {
		return invalidHandle, false
	}
	h, ok := byKey[key]
	return h, ok
}

// node resolves a handle to its current value. It returns false for a
// handle that was never issued or whose node has since been removed.
func (f *NodeFinder) node(h NodeHandle) (Node, bool) {
	if h < 0 || int(h) >= len(f.arena) || !f.live[h] {
		return Node{}, false
	}
	return f.arena[h], true
}

// insert creates a new owned node and indexes it. Callers must have
// already confirmed via lookup that owner does not currently define key —
// insert does not itself guard against duplicates, so that the no-
// duplicate-nodes invariant stays the integrator's responsibility, where
// the decision to insert vs. update is made once.
func (f *NodeFinder) insert(owner string, key DependencyKey, fingerprint string, hasFingerprint bool) NodeHandle {
	h := NodeHandle(len(f.arena))
	f.arena = append(f.arena, Node{
		Key:            key,
		Fingerprint:    fingerprint,
		HasFingerprint: hasFingerprint,
		OwningInput:    owner,
		HasOwner:       true,
	})
	f.live = append(f.live, true)

	if f.byOwnerKey[owner] == nil {
		f.byOwnerKey[owner] = make(map[DependencyKey]NodeHandle)
	}
	f.byOwnerKey[owner][key] = h

	return h
}

// updateFingerprint replaces the fingerprint of a live node in place. The
// node's identity (key, owner) and its handle are unchanged.
func (f *NodeFinder) updateFingerprint(h NodeHandle, fingerprint string, hasFingerprint bool) {
	n := f.arena[h]
	n.Fingerprint = fingerprint
	n.HasFingerprint = hasFingerprint
	f.arena[h] = n
}

// remove deletes a live node from both the arena's liveness and its owner
// index entry. The handle itself is retired, never reassigned.
func (f *NodeFinder) remove(h NodeHandle) {
	if h < 0 || int(h) >= len(f.live) || !f.live[h] {
		return
	}

	n := f.arena[h]
	f.live[h] = false

	if n.HasOwner {
		if byKey, ok := f.byOwnerKey[n.OwningInput]; ok {
			delete(byKey, n.Key)
			if len(byKey) == 0 {
				delete(f.byOwnerKey, n.OwningInput)
			}
		}
	}
}

// nodesOwnedBy returns a snapshot of the keys and handles currently owned
// by owner. Callers that mutate the finder while iterating (the
// integrator's remove-missing-defines pass) must snapshot first, since
// remove() deletes map entries in place.
func (f *NodeFinder) nodesOwnedBy(owner string) map[DependencyKey]NodeHandle {
	snapshot := make(map[DependencyKey]NodeHandle, len(f.byOwnerKey[owner]))
	for k, h := range f.byOwnerKey[owner] {
		snapshot[k] = h
	}
	return snapshot
}

// addUseEdge records that usingInput's summary used key. Edges are a set;
// re-recording the same pair is idempotent.
func (f *NodeFinder) addUseEdge(key DependencyKey, usingInput string) {
	if f.byKeyUsers[key] == nil {
		f.byKeyUsers[key] = make(map[string]struct{})
	}
	f.byKeyUsers[key][usingInput] = struct{}{}
}

// usersOf returns the set of inputs that use key. The caller must not
// mutate the returned map.
func (f *NodeFinder) usersOf(key DependencyKey) map[string]struct{} {
	return f.byKeyUsers[key]
}
