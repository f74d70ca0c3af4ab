package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_ListDirectories(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "GameB"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(root, "GameA"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "readme.txt"), []byte("x"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "GameA", "nested"), 0o755))

	dirs, err := New().ListDirectories(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, []string{"GameA", "GameB"}, dirs)
}

func TestAdapter_ListDirectoriesMissingPath(t *testing.T) {
	_, err := New().ListDirectories(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestAdapter_ExistsAndIsDirectory(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	file := filepath.Join(root, "f.zip")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	a := New()

	ok, err := a.Exists(ctx, file)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = a.Exists(ctx, filepath.Join(root, "nope"))
	require.NoError(t, err)
	assert.False(t, ok)

	isDir, err := a.IsDirectory(ctx, file)
	require.NoError(t, err)
	assert.False(t, isDir)

	isDir, err = a.IsDirectory(ctx, root)
	require.NoError(t, err)
	assert.True(t, isDir)

	isDir, err = a.IsDirectory(ctx, filepath.Join(root, "nope"))
	require.NoError(t, err)
	assert.False(t, isDir)

	require.NoError(t, a.EnsureDir(ctx, filepath.Join(root, "a", "b")))
	assert.DirExists(t, filepath.Join(root, "a", "b"))
}
