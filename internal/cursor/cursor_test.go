package cursor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileFallsBackToGenesis(t *testing.T) {
	path := filepath.Join(t.TempDir(), "LAST_SCANNED_BLOCK")
	store := NewStore(path, 52_084_000)

	value, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, uint64(52_084_000), value)

	// the fallback must be durable, not just in-memory
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "52084000", string(data))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "cursor"), 0)

	require.NoError(t, store.Save(1206))
	value, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, uint64(1206), value)

	require.NoError(t, store.Save(99_999))
	value, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, uint64(99_999), value)
}

func TestLoadTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cursor")
	require.NoError(t, os.WriteFile(path, []byte("1234\n"), 0o644))

	store := NewStore(path, 0)
	value, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, uint64(1234), value)
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cursor")
	require.NoError(t, os.WriteFile(path, []byte("not-a-number"), 0o644))

	store := NewStore(path, 0)
	_, err := store.Load()
	require.Error(t, err)
	assert.ErrorContains(t, err, "parse cursor file")
}
