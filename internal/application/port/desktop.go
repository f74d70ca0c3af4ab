package port

import "context"

// FileManager opens locations in the desktop file manager.
type FileManager interface {
	// OpenFolder shows path in the platform file manager.
	OpenFolder(ctx context.Context, path string) error
}

// AppLifecycle controls the running application.
type AppLifecycle interface {
	// Quit asks the application to shut down gracefully.
	Quit(ctx context.Context)
}
