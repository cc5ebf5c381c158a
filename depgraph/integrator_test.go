package depgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func topLevelKey(name string) DependencyKey {
	return DependencyKey{Aspect: AspectInterface, Designator: Designator{Kind: DesigTopLevel, Name: name}}
}

func summaryTOML(t *testing.T, defines []string, fingerprints []string, uses []string) []byte {
	t.Helper()
	require.Equal(t, len(defines), len(fingerprints))

	out := ""
	for i, name := range defines {
		out += "[[defines]]\n"
		out += "aspect = \"interface\"\n"
		out += "kind = \"topLevel\"\n"
		out += "name = \"" + name + "\"\n"
		out += "fingerprint = \"" + fingerprints[i] + "\"\n"
	}
	for _, name := range uses {
		out += "[[uses]]\n"
		out += "aspect = \"interface\"\n"
		out += "kind = \"topLevel\"\n"
		out += "name = \"" + name + "\"\n"
	}
	return []byte(out)
}

func TestIntegrateInsertsNewDefine(t *testing.T) {
	g := NewGraph()
	data := summaryTOML(t, []string{"foo"}, []string{"fp1"}, nil)

	changes, ok := Integrate(g, data, "a.swiftdeps")
	require.True(t, ok)
	assert.Len(t, changes.Nodes, 1)

	h, found := g.finder.lookup("a.swiftdeps", topLevelKey("foo"))
	require.True(t, found)
	n, _ := g.finder.node(h)
	assert.Equal(t, "fp1", n.Fingerprint)
}

func TestIntegrateIsNoopWhenFingerprintUnchanged(t *testing.T) {
	g := NewGraph()
	data := summaryTOML(t, []string{"foo"}, []string{"fp1"}, nil)

	_, ok := Integrate(g, data, "a.swiftdeps")
	require.True(t, ok)

	changes, ok := Integrate(g, data, "a.swiftdeps")
	require.True(t, ok)
	assert.Empty(t, changes.Nodes)
}

func TestIntegrateUpdatesChangedFingerprint(t *testing.T) {
	g := NewGraph()
	first := summaryTOML(t, []string{"foo"}, []string{"fp1"}, nil)
	second := summaryTOML(t, []string{"foo"}, []string{"fp2"}, nil)

	_, ok := Integrate(g, first, "a.swiftdeps")
	require.True(t, ok)

	changes, ok := Integrate(g, second, "a.swiftdeps")
	require.True(t, ok)
	assert.Len(t, changes.Nodes, 1)

	h, _ := g.finder.lookup("a.swiftdeps", topLevelKey("foo"))
	n, _ := g.finder.node(h)
	assert.Equal(t, "fp2", n.Fingerprint)
}

func TestIntegrateRemovesDefineDroppedFromSummary(t *testing.T) {
	g := NewGraph()
	first := summaryTOML(t, []string{"foo", "bar"}, []string{"fp1", "fp2"}, nil)
	second := summaryTOML(t, []string{"foo"}, []string{"fp1"}, nil)

	_, ok := Integrate(g, first, "a.swiftdeps")
	require.True(t, ok)

	changes, ok := Integrate(g, second, "a.swiftdeps")
	require.True(t, ok)
	assert.Len(t, changes.Nodes, 1)

	_, found := g.finder.lookup("a.swiftdeps", topLevelKey("bar"))
	assert.False(t, found)
}

func TestIntegrateRecordsUseEdgesIdempotently(t *testing.T) {
	g := NewGraph()
	data := summaryTOML(t, nil, nil, []string{"foo"})

	_, ok := Integrate(g, data, "b.swiftdeps")
	require.True(t, ok)
	_, ok = Integrate(g, data, "b.swiftdeps")
	require.True(t, ok)

	users := g.finder.usersOf(topLevelKey("foo"))
	assert.Len(t, users, 1)
	_, present := users["b.swiftdeps"]
	assert.True(t, present)
}

func TestIntegrateRecordsExternalDependency(t *testing.T) {
	g := NewGraph()
	data := []byte("[[uses]]\naspect = \"interface\"\nkind = \"externalDepend\"\nname = \"core.Optional\"\n")

	_, ok := Integrate(g, data, "c.swiftdeps")
	require.True(t, ok)

	assert.ElementsMatch(t, []string{"core.Optional"}, g.ExternalDependencies())
}

func TestIntegrateMalformedSummaryFails(t *testing.T) {
	g := NewGraph()
	_, ok := Integrate(g, []byte("not valid toml :::"), "a.swiftdeps")
	assert.False(t, ok)
}

func TestIntegrateUnknownAspectIsMalformed(t *testing.T) {
	g := NewGraph()
	data := []byte("[[defines]]\naspect = \"mystery\"\nkind = \"topLevel\"\nname = \"foo\"\nfingerprint = \"fp1\"\n")
	_, ok := Integrate(g, data, "a.swiftdeps")
	assert.False(t, ok)
}

func TestVerifyInvariantsPassesAfterIntegration(t *testing.T) {
	g := NewGraph()
	data := summaryTOML(t, []string{"foo"}, []string{"fp1"}, []string{"bar"})

	_, ok := Integrate(g, data, "a.swiftdeps")
	require.True(t, ok)

	assert.NoError(t, VerifyInvariants(g))
}
