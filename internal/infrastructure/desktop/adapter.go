// Package desktop opens locations with the desktop environment's tools.
package desktop

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/chanomhub/desktop/internal/application/port"
	"github.com/chanomhub/desktop/internal/logging"
)

// ErrNoOpener is returned when no file manager launcher is available.
var ErrNoOpener = errors.New("no file manager launcher found")

// Adapter implements port.FileManager by spawning the platform launcher.
type Adapter struct {
	opener string
	start  func(ctx context.Context, name string, args ...string) error
}

// New detects the launcher for the running platform.
func New() *Adapter {
	a := &Adapter{start: startDetached}
	for _, candidate := range openerCandidates(runtime.GOOS) {
		if path, err := exec.LookPath(candidate); err == nil {
			a.opener = path
			break
		}
	}
	return a
}

func openerCandidates(goos string) []string {
	switch goos {
	case "darwin":
		return []string{"open"}
	case "windows":
		return []string{"explorer"}
	default:
		return []string{"xdg-open", "gio", "kde-open5"}
	}
}

// OpenFolder launches the file manager on path without waiting for it.
func (a *Adapter) OpenFolder(ctx context.Context, path string) error {
	if a.opener == "" {
		return ErrNoOpener
	}

	args := []string{path}
	if filepath.Base(a.opener) == "gio" {
		args = []string{"open", path}
	}

	logging.FromContext(ctx).Debug().Str("opener", a.opener).Str("path", path).Msg("opening folder")
	if err := a.start(ctx, a.opener, args...); err != nil {
		return fmt.Errorf("launch %s: %w", a.opener, err)
	}
	return nil
}

func startDetached(_ context.Context, name string, args ...string) error {
	// Not bound to ctx: the file manager outlives the request.
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

var _ port.FileManager = (*Adapter)(nil)
