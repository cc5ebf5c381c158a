package depgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyInvariantsCatchesOwnerIndexInconsistency(t *testing.T) {
	g := NewGraph()
	h := g.finder.insert("a.swiftdeps", topLevelKey("foo"), "fp1", true)
	require.NotEqual(t, invalidHandle, h)

	delete(g.finder.byOwnerKey["a.swiftdeps"], topLevelKey("foo"))

	assert.Error(t, VerifyInvariants(g))
}

func TestVerifyInvariantsCatchesDuplicateNodes(t *testing.T) {
	g := NewGraph()
	g.finder.insert("a.swiftdeps", topLevelKey("foo"), "fp1", true)

	g.finder.arena = append(g.finder.arena, Node{
		Key:         topLevelKey("foo"),
		OwningInput: "a.swiftdeps",
		HasOwner:    true,
	})
	g.finder.live = append(g.finder.live, true)

	assert.Error(t, VerifyInvariants(g))
}

func TestVerifyInvariantsCatchesBrokenSummaryInjection(t *testing.T) {
	g := NewGraph()
	require.True(t, g.RegisterSummaryLocation("a.loom", "a.swiftdeps"))

	g.summaryToSourceInput["a.swiftdeps"] = "different-input"

	assert.Error(t, VerifyInvariants(g))
}
