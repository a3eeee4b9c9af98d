package keystore

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_ReadMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "nonexistent"))

	_, err := s.Read()
	assert.ErrorIs(t, err, ErrKeyMissing)
}

func TestFileStore_ReadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".wakafile")
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0o600))

	_, err := NewFileStore(path).Read()
	assert.ErrorIs(t, err, ErrKeyMissing)
}

func TestFileStore_WriteThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", ".wakafile")
	s := NewFileStore(path)

	require.NoError(t, s.Write("waka_123\n"))

	got, err := s.Read()
	require.NoError(t, err)
	assert.Equal(t, "waka_123", got)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "waka_123", string(raw), "file holds only the raw key")
}

func TestFileStore_WriteOverwrites(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), ".wakafile"))
	require.NoError(t, s.Write("first"))
	require.NoError(t, s.Write("second"))

	got, err := s.Read()
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}

func TestFileStore_WriteEmptyKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".wakafile")
	err := NewFileStore(path).Write("   ")
	assert.ErrorIs(t, err, ErrEmptyKey)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no file should be created")
}

func TestFileStore_WritePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions only")
	}
	path := filepath.Join(t.TempDir(), ".wakafile")
	require.NoError(t, NewFileStore(path).Write("secret"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_WriteFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	// Parent path is a regular file, so the directory cannot be created.
	err := NewFileStore(filepath.Join(blocker, ".wakafile")).Write("key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api key")
}

func TestDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	got, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, DefaultFileName), got)
}

func TestFileStore_Path(t *testing.T) {
	assert.Equal(t, "/tmp/x", NewFileStore("/tmp/x").Path())
}
