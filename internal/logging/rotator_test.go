package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogRotator_RotatesPastMaxSize(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(dir, "chanomhub.log", 1, 2, 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	chunk := []byte(strings.Repeat("x", 600*1024))
	_, err = r.Write(chunk)
	require.NoError(t, err)
	_, err = r.Write(chunk)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var rolled int
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "chanomhub.log.") {
			rolled++
		}
	}
	assert.Equal(t, 1, rolled)

	info, err := os.Stat(filepath.Join(dir, "chanomhub.log"))
	require.NoError(t, err)
	assert.Equal(t, int64(len(chunk)), info.Size())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "debug", ParseLevel("DEBUG").String())
	assert.Equal(t, "warn", ParseLevel("warning").String())
	assert.Equal(t, "info", ParseLevel("bogus").String())
}
