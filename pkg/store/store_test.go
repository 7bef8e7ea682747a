package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.Get("maxUnlockedWorld")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.SetInt("maxUnlockedWorld", 3))
	require.NoError(t, s.Set("tempUnlockAll", "true"))
	require.NoError(t, s.Delete("tempUnlockAll"))
	require.NoError(t, s.Delete("neverSet"))

	again, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, 3, again.Int("maxUnlockedWorld", 1))
	_, err = again.Get("tempUnlockAll")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIntDefaults(t *testing.T) {
	s := Memory()
	assert.Equal(t, 1, s.Int("missing", 1))
	require.NoError(t, s.Set("bad", "x"))
	assert.Equal(t, 7, s.Int("bad", 7))
}

func TestMemoryStoreWritesNothing(t *testing.T) {
	s := Memory()
	require.NoError(t, s.SetInt("coins", 10))
	assert.Equal(t, 10, s.Int("coins", 0))
	assert.Empty(t, s.Path())
}

func TestOpenCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	_, err := Open(path)
	assert.Error(t, err)
}

func TestOpenNullFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("null"), 0644))
	s, err := Open(path)
	require.NoError(t, err)
	assert.NoError(t, s.Set("k", "v"))
}
