// Package deps probes the native libraries the window needs.
package deps

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/chanomhub/desktop/internal/application/port"
)

// PkgConfig implements port.LibraryProbe with the pkg-config binary.
type PkgConfig struct {
	// Binary defaults to "pkg-config" on PATH.
	Binary string
}

// NewPkgConfig returns a probe using pkg-config from PATH.
func NewPkgConfig() *PkgConfig {
	return &PkgConfig{Binary: "pkg-config"}
}

// ModVersion returns `pkg-config --modversion library`.
func (p *PkgConfig) ModVersion(ctx context.Context, library, prefix string) (string, error) {
	bin, err := exec.LookPath(p.Binary)
	if err != nil {
		return "", &port.LibraryProbeError{Library: library, Err: port.ErrPkgConfigMissing}
	}

	cmd := exec.CommandContext(ctx, bin, "--modversion", library)
	cmd.Env = envWithPrefix(os.Environ(), prefix)

	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", &port.LibraryProbeError{
			Library: library,
			Output:  strings.TrimSpace(string(out)),
			Err:     port.ErrLibraryMissing,
		}
	}
	return strings.TrimSpace(string(out)), nil
}

// envWithPrefix puts the pkgconfig directories of prefix in front of
// PKG_CONFIG_PATH. Other variables pass through untouched.
func envWithPrefix(env []string, prefix string) []string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return env
	}
	prefix = filepath.Clean(prefix)

	dirs := []string{
		filepath.Join(prefix, "lib", "pkgconfig"),
		filepath.Join(prefix, "lib64", "pkgconfig"),
		filepath.Join(prefix, "share", "pkgconfig"),
	}

	out := make([]string, 0, len(env)+1)
	existing := ""
	for _, kv := range env {
		if v, ok := strings.CutPrefix(kv, "PKG_CONFIG_PATH="); ok {
			existing = v
			continue
		}
		out = append(out, kv)
	}
	return append(out, "PKG_CONFIG_PATH="+joinPathList(dirs, existing))
}

func joinPathList(front []string, existing string) string {
	seen := make(map[string]struct{}, len(front))
	parts := make([]string, 0, len(front)+4)
	for _, p := range append(front, strings.Split(existing, ":")...) {
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		parts = append(parts, p)
	}
	return strings.Join(parts, ":")
}
