package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/modelspec/pkg/kind"
)

func writeModel(t *testing.T, dir, relPath, content string) {
	t.Helper()
	path := filepath.Join(dir, relPath)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	writeModel(t, dir, "staging/users.sql", `/*---
name: stg_users
kind: VIEW
---*/
SELECT * FROM raw.users`)
	writeModel(t, dir, "marts/events.sql", `/*---
kind: INCREMENTAL_BY_TIME_RANGE (time_column (ds, '%Y-%m-%d'), batch_size 7)
---*/
SELECT * FROM stg_events`)
	writeModel(t, dir, "README.md", "not a model")

	models, err := New(dir).Load()
	require.NoError(t, err)
	require.Len(t, models, 2)

	byName := make(map[string]*Model, len(models))
	for _, m := range models {
		byName[m.Name] = m
	}

	users := byName["stg_users"]
	require.NotNil(t, users)
	assert.Equal(t, kind.View, users.Kind.Name())
	assert.Equal(t, "staging", users.Config.Schema)

	events := byName["events"]
	require.NotNil(t, events)
	timeRange, ok := events.Kind.(*kind.IncrementalByTimeRangeKind)
	require.True(t, ok)
	assert.Equal(t, "ds", timeRange.TimeColumn.Column)
}

func TestLoader_DefaultKind(t *testing.T) {
	dir := t.TempDir()
	writeModel(t, dir, "users.sql", "SELECT 1")

	models, err := New(dir).Load()
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, kind.NewView(false), models[0].Kind)

	full := kind.NewBase(kind.Full)
	models, err = New(dir, WithDefaultKind(full)).Load()
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, full, models[0].Kind)
}

func TestLoader_LoadFailsFast(t *testing.T) {
	dir := t.TempDir()
	writeModel(t, dir, "bad.sql", `/*---
kind: TABLE
---*/
SELECT 1`)

	_, err := New(dir).Load()
	require.Error(t, err)
	assert.ErrorContains(t, err, "Invalid model kind 'TABLE'")
}

func TestLoader_LoadLenient(t *testing.T) {
	dir := t.TempDir()
	writeModel(t, dir, "good.sql", `/*---
kind: FULL
---*/
SELECT 1`)
	writeModel(t, dir, "bad.sql", `/*---
kind: SEED (batch_size 10)
---*/
SELECT 1`)

	models, problems, err := New(dir).LoadLenient()
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, "good", models[0].Name)

	require.Len(t, problems, 1)
	assert.Equal(t, "bad.sql", problems[0].Path)
	assert.ErrorContains(t, problems[0].Err, "missing required field 'path' for model kind SEED")
}

func TestResolveKind(t *testing.T) {
	k, err := ResolveKind("FULL")
	require.NoError(t, err)
	assert.Equal(t, kind.Full, k.Name())

	k, err = ResolveKind("SEED (path 'x.csv')")
	require.NoError(t, err)
	seed, ok := k.(*kind.SeedKind)
	require.True(t, ok)
	assert.Equal(t, "x.csv", seed.Path)

	k, err = ResolveKind(map[string]any{"name": "VIEW", "materialized": true})
	require.NoError(t, err)
	assert.Equal(t, kind.NewView(true), k)

	k, err = ResolveKind(nil)
	require.NoError(t, err)
	assert.Nil(t, k)

	_, err = ResolveKind("SEED (path")
	require.Error(t, err)
}
