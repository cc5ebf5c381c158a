package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchLongestPrefixWins(t *testing.T) {
	table := New()

	opt, rest, ok := table.Match("gline-tables-only")
	require.True(t, ok)
	assert.Equal(t, "gline-tables-only", opt.Spelling)
	assert.Empty(t, rest)

	opt, rest, ok = table.Match("g")
	require.True(t, ok)
	assert.Equal(t, "g", opt.Spelling)
	assert.Empty(t, rest)
}

func TestMatchJoinedRemainder(t *testing.T) {
	table := New()

	opt, rest, ok := table.Match("debug-info-format=codeview")
	require.True(t, ok)
	assert.Equal(t, "debug-info-format=", opt.Spelling)
	assert.Equal(t, "codeview", rest)
}

func TestMatchAliasResolvesToCanonical(t *testing.T) {
	table := New()

	opt, _, ok := table.Match("h")
	require.True(t, ok)
	assert.Equal(t, "help", opt.Spelling)
	assert.Equal(t, Flag, opt.Kind)

	opt, rest, ok := table.Match("gmlt")
	require.True(t, ok)
	assert.Equal(t, "gline-tables-only", opt.Spelling)
	assert.Empty(t, rest)
}

func TestMatchUnknownFails(t *testing.T) {
	table := New()

	_, _, ok := table.Match("not-a-real-option")
	assert.False(t, ok)
}

func TestLookupFollowsOneAliasHop(t *testing.T) {
	table := New()

	opt, ok := table.Lookup("h")
	require.True(t, ok)
	assert.Equal(t, "help", opt.Spelling)
}

func TestAttrHas(t *testing.T) {
	a := AttrPath | AttrAffectsIncremental
	assert.True(t, a.Has(AttrPath))
	assert.True(t, a.Has(AttrAffectsIncremental))
	assert.False(t, a.Has(AttrNoBatch))
	assert.True(t, a.Has(AttrPath|AttrAffectsIncremental))
}

func TestAllIsSortedAndExcludesAliases(t *testing.T) {
	table := New()
	opts := table.All()

	for i := 1; i < len(opts); i++ {
		assert.LessOrEqual(t, opts[i-1].Spelling, opts[i].Spelling)
	}

	for _, opt := range opts {
		assert.NotEqual(t, Alias, opt.Kind)
	}
}

func TestInternalEscapeOptionsAreHidden(t *testing.T) {
	table := New()

	opt, ok := table.Lookup("frontend")
	require.True(t, ok)
	assert.True(t, opt.Attrs.Has(AttrHidden))

	opt, ok = table.Lookup("emit-executable")
	require.True(t, ok)
	assert.False(t, opt.Attrs.Has(AttrHidden))
}
