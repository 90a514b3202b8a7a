package ioutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	require.NoError(t, WriteFile(path, []byte(`{"a":1}`), 0o600))
	require.NoError(t, WriteFile(path, []byte(`{"a":2}`), 0o600))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"a":2}`, string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must be cleaned up")
}

func TestWriteFile_MissingDir(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "nope", "config.json"), nil, 0o600)
	assert.Error(t, err)
}

func TestEnsureDirAndExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	ok, err := Exists(dir)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, EnsureDir(dir))
	require.NoError(t, EnsureDir(dir))

	ok, err = Exists(dir)
	require.NoError(t, err)
	assert.True(t, ok)
}
