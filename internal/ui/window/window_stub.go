//go:build !webkit_cgo

package window

import (
	"context"

	"github.com/chanomhub/desktop/internal/bootstrap"
)

// Run reports that this build has no window support.
func Run(_ context.Context, _ *bootstrap.App) error {
	return ErrUnavailable
}
