package updater

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chanomhub/desktop/internal/application/port"
)

// newTestApplier points the applier at a fake installed binary.
func newTestApplier(t *testing.T) (*Applier, string) {
	t.Helper()
	root := t.TempDir()
	installDir := filepath.Join(root, "bin")
	require.NoError(t, os.MkdirAll(installDir, 0o755))
	binary := filepath.Join(installDir, binaryName)
	require.NoError(t, os.WriteFile(binary, []byte("old"), 0o755))

	a := NewApplier(filepath.Join(root, "state"))
	a.executable = func() (string, error) { return binary, nil }
	return a, binary
}

func TestApplier_StagingPaths(t *testing.T) {
	a := NewApplier("/state")
	assert.Equal(t, filepath.Join("/state", stagingDirName), a.stagingDir())
	assert.Equal(t, filepath.Join("/state", stagingDirName, binaryName), a.stagedBinaryPath())
}

func TestApplier_HasStagedUpdate(t *testing.T) {
	a, _ := newTestApplier(t)
	ctx := context.Background()

	assert.False(t, a.HasStagedUpdate(ctx))

	require.NoError(t, os.MkdirAll(a.stagingDir(), 0o755))
	require.NoError(t, os.WriteFile(a.stagedBinaryPath(), []byte("x"), 0o644))
	assert.False(t, a.HasStagedUpdate(ctx), "non-executable file is not a staged update")

	require.NoError(t, os.Chmod(a.stagedBinaryPath(), 0o755))
	assert.True(t, a.HasStagedUpdate(ctx))
}

func TestApplier_StageUpdate(t *testing.T) {
	a, _ := newTestApplier(t)
	ctx := context.Background()

	src := filepath.Join(t.TempDir(), "extracted")
	content := []byte("#!/bin/sh\necho new\n")
	require.NoError(t, os.WriteFile(src, content, 0o644))

	require.NoError(t, a.StageUpdate(ctx, src))

	assert.True(t, a.HasStagedUpdate(ctx))
	got, err := os.ReadFile(a.stagedBinaryPath())
	require.NoError(t, err)
	assert.Equal(t, content, got)

	entries, err := os.ReadDir(a.stagingDir())
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestApplier_StageUpdate_MissingSource(t *testing.T) {
	a, _ := newTestApplier(t)
	err := a.StageUpdate(context.Background(), filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.False(t, a.HasStagedUpdate(context.Background()))
}

func TestApplier_ApplyOnExit(t *testing.T) {
	a, binary := newTestApplier(t)
	ctx := context.Background()

	src := filepath.Join(t.TempDir(), "extracted")
	require.NoError(t, os.WriteFile(src, []byte("new"), 0o755))
	require.NoError(t, a.StageUpdate(ctx, src))

	backup, err := a.ApplyOnExit(ctx)
	require.NoError(t, err)

	assert.Equal(t, binary+backupSuffix, backup)
	got, err := os.ReadFile(binary)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
	old, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, "old", string(old))

	_, err = os.Stat(a.stagingDir())
	assert.True(t, os.IsNotExist(err))
}

func TestApplier_ApplyOnExit_NothingStaged(t *testing.T) {
	a, _ := newTestApplier(t)
	_, err := a.ApplyOnExit(context.Background())
	assert.ErrorIs(t, err, port.ErrNoStagedUpdate)
}

func TestApplier_ClearStagedUpdate(t *testing.T) {
	a, _ := newTestApplier(t)
	ctx := context.Background()

	require.NoError(t, os.MkdirAll(a.stagingDir(), 0o755))
	require.NoError(t, os.WriteFile(a.stagedBinaryPath(), []byte("x"), 0o755))
	require.True(t, a.HasStagedUpdate(ctx))

	require.NoError(t, a.ClearStagedUpdate(ctx))

	assert.False(t, a.HasStagedUpdate(ctx))
	_, err := os.Stat(a.stagingDir())
	assert.True(t, os.IsNotExist(err))
}

func TestApplier_CanSelfUpdate(t *testing.T) {
	a, _ := newTestApplier(t)
	assert.True(t, a.CanSelfUpdate(context.Background()))

	missing := NewApplier(t.TempDir())
	missing.executable = func() (string, error) { return "/nonexistent/chanomhub", nil }
	assert.False(t, missing.CanSelfUpdate(context.Background()))
}
