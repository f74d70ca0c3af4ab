package port

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrPkgConfigMissing means pkg-config is not installed.
	ErrPkgConfigMissing = errors.New("pkg-config missing")
	// ErrLibraryMissing means pkg-config does not know the requested library.
	ErrLibraryMissing = errors.New("library not found")
)

// LibraryProbeError reports why a library version could not be read.
type LibraryProbeError struct {
	Library string
	Output  string
	Err     error
}

func (e *LibraryProbeError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Library, e.Err)
	if e.Output != "" {
		msg += ": " + e.Output
	}
	return msg
}

func (e *LibraryProbeError) Unwrap() error { return e.Err }

// LibraryProbe reads installed native library versions. prefix points at an
// optional install root searched before the system paths.
type LibraryProbe interface {
	ModVersion(ctx context.Context, library, prefix string) (string, error)
}
