package kvstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory()

	_, ok, err := kv.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, "slot", `{"a":1}`))
	value, ok, err := kv.Get(ctx, "slot")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"a":1}`, value)

	require.NoError(t, kv.Set(ctx, "slot", `{"a":2}`))
	value, _, _ = kv.Get(ctx, "slot")
	assert.Equal(t, `{"a":2}`, value)
}

func TestFileRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv, err := NewFile(t.TempDir())
	require.NoError(t, err)

	_, ok, err := kv.Get(ctx, "scienceIdealHome.v1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, "scienceIdealHome.v1", `{"students":[]}`))
	value, ok, err := kv.Get(ctx, "scienceIdealHome.v1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"students":[]}`, value)
}

func TestFileOverwriteLeavesNoTempFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	kv, err := NewFile(dir)
	require.NoError(t, err)

	require.NoError(t, kv.Set(ctx, "slot", "one"))
	require.NoError(t, kv.Set(ctx, "slot", "two"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "slot.json", entries[0].Name())

	value, _, err := kv.Get(ctx, "slot")
	require.NoError(t, err)
	assert.Equal(t, "two", value)
}

func TestFileResolvesSeparatorInKey(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	kv, err := NewFile(dir)
	require.NoError(t, err)

	require.NoError(t, kv.Set(ctx, "a/b", "value"))

	_, err = os.Stat(filepath.Join(dir, "a_b.json"))
	require.NoError(t, err)
}

func TestFileCreatesBaseDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	_, err := NewFile(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
