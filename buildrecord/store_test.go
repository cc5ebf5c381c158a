package buildrecord

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loomc/plan"
)

func TestLocateFailsWithoutOutputFileMapEntry(t *testing.T) {
	_, ok := Locate(nil)
	assert.False(t, ok)

	ofm := plan.NewOutputFileMap(nil)
	_, ok = Locate(ofm)
	assert.False(t, ok)
}

func TestLocateSucceedsWithWholeModuleEntry(t *testing.T) {
	ofm := plan.NewOutputFileMap(nil)
	ofm.Set(plan.WholeModuleKey, plan.FileSwiftDeps, "/tmp/build.record")

	store, ok := Locate(ofm)
	require.True(t, ok)
	assert.Equal(t, "/tmp/build.record", store.Path)
}

func TestAdmitNilPriorRecord(t *testing.T) {
	res := Admit(nil, "1.0", "abc")
	assert.True(t, res.Admitted)
}

func TestAdmitRejectsVersionMismatch(t *testing.T) {
	prior := &Record{ToolVersion: "0.9", ArgsHash: "abc"}
	res := Admit(prior, "1.0", "abc")
	assert.False(t, res.Admitted)
	assert.Equal(t, "compiler version mismatch", res.Reason)
}

func TestAdmitRejectsDifferentArguments(t *testing.T) {
	prior := &Record{ToolVersion: "1.0", ArgsHash: "abc"}
	res := Admit(prior, "1.0", "xyz")
	assert.False(t, res.Admitted)
	assert.Equal(t, "different arguments", res.Reason)
}

func TestAdmitToleratesAbsentPriorHash(t *testing.T) {
	prior := &Record{ToolVersion: "1.0", ArgsHash: ""}
	res := Admit(prior, "1.0", "xyz")
	assert.True(t, res.Admitted)
}

func TestAdmitIsDeterministic(t *testing.T) {
	prior := &Record{ToolVersion: "1.0", ArgsHash: "abc"}
	first := Admit(prior, "1.0", "abc")
	second := Admit(prior, "1.0", "abc")
	assert.Equal(t, first, second)
}

func TestWriteThenLoadRoundTrips(t *testing.T) {
	dir := t.TempDir()
	store := &Store{Path: filepath.Join(dir, "build.record")}

	rec := New("1.0", "abc", time.Now().UTC().Truncate(time.Second))
	rec.InputModTimes["a.loom"] = time.Now().UTC().Truncate(time.Second)
	rec.RecordJob("a.loom", true)

	store.Write(rec)

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, rec.ToolVersion, loaded.ToolVersion)
	assert.Equal(t, rec.ArgsHash, loaded.ArgsHash)
	assert.Len(t, loaded.JobOutcomes, 1)
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	store := &Store{Path: filepath.Join(t.TempDir(), "nope.record")}

	rec, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, rec)
}
