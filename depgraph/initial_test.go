package depgraph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loomc/plan"
)

func TestBuildInitialFailsWithoutOutputLocation(t *testing.T) {
	ofm := plan.NewOutputFileMap(nil)
	g, force, ok := BuildInitial([]string{"a.loom"}, map[string]struct{}{}, ofm, nil)
	assert.False(t, ok)
	assert.Nil(t, g)
	assert.Nil(t, force)
}

func TestBuildInitialSkipsIntegrationForNewInputs(t *testing.T) {
	ofm := plan.NewOutputFileMap(nil)
	ofm.Set("a.loom", plan.FileSwiftDeps, "a.swiftdeps")

	called := false
	read := func(path string) ([]byte, error) {
		called = true
		return nil, nil
	}

	g, force, ok := BuildInitial([]string{"a.loom"}, map[string]struct{}{}, ofm, read)
	require.True(t, ok)
	assert.Empty(t, force)
	assert.False(t, called)

	path, registered := g.SummaryLocation("a.loom")
	assert.True(t, registered)
	assert.Equal(t, "a.swiftdeps", path)
}

func TestBuildInitialForcesRecompileOnReadFailure(t *testing.T) {
	ofm := plan.NewOutputFileMap(nil)
	ofm.Set("a.loom", plan.FileSwiftDeps, "a.swiftdeps")

	read := func(path string) ([]byte, error) {
		return nil, errors.New("permission denied")
	}

	_, force, ok := BuildInitial([]string{"a.loom"}, map[string]struct{}{"a.loom": {}}, ofm, read)
	require.True(t, ok)
	assert.Equal(t, []string{"a.loom"}, force)
}

func TestBuildInitialForcesRecompileOnMalformedSummary(t *testing.T) {
	ofm := plan.NewOutputFileMap(nil)
	ofm.Set("a.loom", plan.FileSwiftDeps, "a.swiftdeps")

	read := func(path string) ([]byte, error) {
		return []byte("not valid toml :::"), nil
	}

	_, force, ok := BuildInitial([]string{"a.loom"}, map[string]struct{}{"a.loom": {}}, ofm, read)
	require.True(t, ok)
	assert.Equal(t, []string{"a.loom"}, force)
}

func TestBuildInitialIntegratesExistingSummary(t *testing.T) {
	ofm := plan.NewOutputFileMap(nil)
	ofm.Set("a.loom", plan.FileSwiftDeps, "a.swiftdeps")

	read := func(path string) ([]byte, error) {
		return summaryTOML(t, []string{"foo"}, []string{"fp1"}, nil), nil
	}

	g, force, ok := BuildInitial([]string{"a.loom"}, map[string]struct{}{"a.loom": {}}, ofm, read)
	require.True(t, ok)
	assert.Empty(t, force)

	_, found := g.finder.lookup("a.swiftdeps", topLevelKey("foo"))
	assert.True(t, found)
}
