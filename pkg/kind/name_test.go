package kind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseName_AllTags(t *testing.T) {
	for _, n := range Names() {
		parsed, err := ParseName(string(n))
		require.NoError(t, err)
		assert.Equal(t, n, parsed)
	}
}

func TestParseName_LowerCase(t *testing.T) {
	parsed, err := ParseName("incremental_by_time_range")
	require.NoError(t, err)
	assert.Equal(t, IncrementalByTimeRange, parsed)
}

func TestParseName_Invalid(t *testing.T) {
	_, err := ParseName("table")
	require.Error(t, err)
	assert.EqualError(t, err, "Invalid model kind 'TABLE'")

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestName_DerivedPredicates(t *testing.T) {
	tests := []struct {
		name         Name
		symbolic     bool
		materialized bool
		onlyLatest   bool
	}{
		{IncrementalByTimeRange, false, true, false},
		{IncrementalByUniqueKey, false, true, false},
		{Full, false, true, true},
		{View, false, false, true},
		{Embedded, true, false, false},
		{Seed, false, true, false},
		{External, true, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			assert.Equal(t, tt.symbolic, tt.name.IsSymbolic())
			assert.Equal(t, tt.materialized, tt.name.IsMaterialized())
			assert.Equal(t, tt.onlyLatest, tt.name.OnlyLatest())
		})
	}
}

func TestName_TagPredicates(t *testing.T) {
	assert.True(t, Seed.IsSeed())
	assert.True(t, View.IsView())
	assert.True(t, Full.IsFull())
	assert.True(t, Embedded.IsEmbedded())
	assert.True(t, External.IsExternal())
	assert.True(t, IncrementalByTimeRange.IsIncrementalByTimeRange())
	assert.True(t, IncrementalByUniqueKey.IsIncrementalByUniqueKey())
	assert.False(t, Seed.IsView())
}
