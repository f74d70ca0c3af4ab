package deps

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chanomhub/desktop/internal/application/port"
)

func TestEnvWithPrefix(t *testing.T) {
	env := []string{"HOME=/home/u", "PKG_CONFIG_PATH=/usr/lib/pkgconfig:/opt/x/lib/pkgconfig"}

	got := envWithPrefix(env, "/opt/x/")

	assert.Contains(t, got, "HOME=/home/u")
	assert.Contains(t, got,
		"PKG_CONFIG_PATH=/opt/x/lib/pkgconfig:/opt/x/lib64/pkgconfig:/opt/x/share/pkgconfig:/usr/lib/pkgconfig")
	assert.Len(t, got, 2)
}

func TestEnvWithPrefix_Empty(t *testing.T) {
	env := []string{"A=1"}
	assert.Equal(t, env, envWithPrefix(env, "  "))
}

func TestModVersion_MissingBinary(t *testing.T) {
	p := &PkgConfig{Binary: "chanomhub-no-such-pkg-config"}

	_, err := p.ModVersion(context.Background(), "gtk4", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, port.ErrPkgConfigMissing)
	var probeErr *port.LibraryProbeError
	require.ErrorAs(t, err, &probeErr)
	assert.Equal(t, "gtk4", probeErr.Library)
}
