package depgraph

// NodeHandle is a stable integer reference into the graph's node arena.
// Handles are never reused within one driver run, even after a node is
// removed, so a stale handle held across a removal is detectable as
// "not found" rather than silently resolving to an unrelated node.
type NodeHandle int

const invalidHandle NodeHandle = -1

// Node is one entity in the dependency graph: a key, an optional content
// fingerprint used to detect semantic change, and an optional owning
// input. A node with no owning input represents a purely external
// interface — there is nothing for the driver to recompile when it
// changes, only uses to notify.
type Node struct {
	Key          DependencyKey
	Fingerprint  string
	HasFingerprint bool
	OwningInput  string
	HasOwner     bool
}
