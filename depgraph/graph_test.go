package depgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterSummaryLocationIsInjectiveBothWays(t *testing.T) {
	g := NewGraph()

	assert.True(t, g.RegisterSummaryLocation("a.loom", "a.swiftdeps"))
	assert.True(t, g.RegisterSummaryLocation("a.loom", "a.swiftdeps")) // idempotent re-registration

	assert.False(t, g.RegisterSummaryLocation("a.loom", "other.swiftdeps"))
	assert.False(t, g.RegisterSummaryLocation("b.loom", "a.swiftdeps"))

	assert.NoError(t, VerifyInvariants(g))
}

func TestSummaryLocationRoundTrips(t *testing.T) {
	g := NewGraph()
	g.RegisterSummaryLocation("a.loom", "a.swiftdeps")

	path, ok := g.SummaryLocation("a.loom")
	assert.True(t, ok)
	assert.Equal(t, "a.swiftdeps", path)

	input, ok := g.InputForSummary("a.swiftdeps")
	assert.True(t, ok)
	assert.Equal(t, "a.loom", input)
}
