package kind

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordFields_Sets(t *testing.T) {
	all := AllFields(&IncrementalByTimeRangeKind{})
	assert.Equal(t, map[string]struct{}{
		"time_column": {},
		"batch_size":  {},
		"lookback":    {},
	}, all)

	required := RequiredFields(&IncrementalByTimeRangeKind{})
	assert.Equal(t, map[string]struct{}{"time_column": {}}, required)

	assert.Equal(t, map[string]struct{}{"unique_key": {}}, RequiredFields(&IncrementalByUniqueKeyKind{}))
	assert.Equal(t, map[string]struct{}{"path": {}}, RequiredFields(&SeedKind{}))
	assert.Empty(t, RequiredFields(&ViewKind{}))
	assert.Empty(t, AllFields(&Base{}))
}

func TestRecordFields_MissingAndExtra(t *testing.T) {
	provided := map[string]struct{}{"batch_size": {}, "partition_by": {}}

	missing := MissingRequiredFields(&IncrementalByTimeRangeKind{}, provided)
	assert.Equal(t, []string{"time_column"}, missing)

	extra := ExtraFields(&IncrementalByTimeRangeKind{}, provided)
	assert.Equal(t, []string{"partition_by"}, extra)
}

func TestToMap_TimeRange(t *testing.T) {
	k, err := NewIncrementalByTimeRange(TimeColumn{Column: "ds", Format: "%Y-%m-%d"}, intp(7), nil)
	require.NoError(t, err)

	got := ToMap(k)
	assert.Equal(t, map[string]any{
		"name":        "INCREMENTAL_BY_TIME_RANGE",
		"time_column": map[string]any{"column": "ds", "format": "%Y-%m-%d"},
		"batch_size":  7,
	}, got)
}

func TestToMap_IncludeUnset(t *testing.T) {
	k, err := NewIncrementalByTimeRange(TimeColumn{Column: "ds"}, nil, nil)
	require.NoError(t, err)

	got := ToMap(k, IncludeUnset())
	assert.Equal(t, map[string]any{
		"name":        "INCREMENTAL_BY_TIME_RANGE",
		"time_column": map[string]any{"column": "ds", "format": ""},
		"batch_size":  nil,
		"lookback":    nil,
	}, got)
}

func TestToMap_SeedDefaults(t *testing.T) {
	k, err := NewSeed("data/users.csv", nil)
	require.NoError(t, err)

	got := ToMap(k)
	assert.Equal(t, map[string]any{
		"name":       "SEED",
		"path":       "data/users.csv",
		"batch_size": 1000,
	}, got)

	got = ToMap(k, OmitDefaults())
	assert.Equal(t, map[string]any{
		"name": "SEED",
		"path": "data/users.csv",
	}, got)
}

func TestToMap_View(t *testing.T) {
	assert.Equal(t, map[string]any{
		"name":         "VIEW",
		"materialized": true,
	}, ToMap(NewView(true)))

	assert.Equal(t, map[string]any{
		"name": "VIEW",
	}, ToMap(NewView(false), OmitDefaults()))
}

func TestToMap_Base(t *testing.T) {
	assert.Equal(t, map[string]any{"name": "FULL"}, ToMap(NewBase(Full)))
}

func TestToJSON(t *testing.T) {
	k, err := NewSeed("x.csv", intp(500))
	require.NoError(t, err)

	out, err := ToJSON(k)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, map[string]any{
		"name":       "SEED",
		"path":       "x.csv",
		"batch_size": float64(500),
	}, decoded)
}

func TestToMap_RoundTripThroughClassify(t *testing.T) {
	k, err := NewIncrementalByUniqueKey([]string{"user_id"}, intp(5), intp(2))
	require.NoError(t, err)

	got, err := Classify(FromMap(ToMap(k)))
	require.NoError(t, err)
	assert.Equal(t, k, got)
}
