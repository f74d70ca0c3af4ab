package port

import "context"

// Push event names sent to the window without a request.
const (
	EventDownloadUpdate   = "download-update"
	EventUpdateAvailable  = "update-available"
	EventUpdateDownloaded = "update-downloaded"
)

// EventEmitter pushes an event to whoever renders the UI.
// Implementations must not block the caller.
type EventEmitter interface {
	Emit(ctx context.Context, event string, payload any)
}
