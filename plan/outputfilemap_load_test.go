package plan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempMap(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "map.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadOutputFileMapReadsPerInputAndWholeModuleEntries(t *testing.T) {
	path := writeTempMap(t, `{
		"": {"loom-dependencies": "build.loomdeps"},
		"a.loom": {"object": "a.o", "loom-dependencies": "a.loomdeps"}
	}`)

	ofm, err := LoadOutputFileMap(path)
	require.NoError(t, err)

	buildRecordPath, ok := ofm.WholeModuleOutput(FileSwiftDeps)
	require.True(t, ok)
	assert.Equal(t, "build.loomdeps", buildRecordPath)

	objPath, ok := ofm.Lookup("a.loom", FileObject)
	require.True(t, ok)
	assert.Equal(t, "a.o", objPath)
}

func TestLoadOutputFileMapIgnoresUnknownOutputKinds(t *testing.T) {
	path := writeTempMap(t, `{"a.loom": {"some-future-kind": "a.xyz"}}`)

	ofm, err := LoadOutputFileMap(path)
	require.NoError(t, err)

	_, ok := ofm.Lookup("a.loom", FileObject)
	assert.False(t, ok)
}

func TestLoadOutputFileMapFailsOnMissingFile(t *testing.T) {
	_, err := LoadOutputFileMap(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadOutputFileMapFailsOnMalformedJSON(t *testing.T) {
	path := writeTempMap(t, `not json`)
	_, err := LoadOutputFileMap(path)
	assert.Error(t, err)
}
