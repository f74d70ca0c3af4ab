package port

import "context"

// TransferState is the state reported by a transfer engine.
type TransferState int

const (
	// TransferProgressing means bytes are flowing, or may resume flowing.
	TransferProgressing TransferState = iota
	// TransferInterrupted means the transfer stalled or was paused.
	TransferInterrupted
	// TransferCompleted is terminal success.
	TransferCompleted
	// TransferCancelled is terminal: the user cancelled.
	TransferCancelled
	// TransferFailed is terminal failure.
	TransferFailed
)

// String returns the wire name of the state.
func (s TransferState) String() string {
	switch s {
	case TransferProgressing:
		return "progressing"
	case TransferInterrupted:
		return "interrupted"
	case TransferCompleted:
		return "completed"
	case TransferCancelled:
		return "cancelled"
	case TransferFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether no further events follow this state.
func (s TransferState) IsTerminal() bool {
	return s == TransferCompleted || s == TransferCancelled || s == TransferFailed
}

// TransferHandle controls one in-flight transfer.
// Control methods are fire-and-forget: they never block on the network.
type TransferHandle interface {
	URL() string
	SuggestedFilename() string

	// SetSavePath must be called before the first byte is written.
	SetSavePath(path string)
	SavePath() string

	Pause()
	Resume()
	Cancel()
	IsPaused() bool

	ReceivedBytes() int64
	// TotalBytes returns the announced size, or a value <= 0 when unknown.
	TotalBytes() int64
}

// TransferObserver receives the events of one transfer, in order.
type TransferObserver interface {
	OnUpdated(ctx context.Context, state TransferState)
	OnDone(ctx context.Context, state TransferState)
}

// TransferRegistrar is told about every transfer before it starts.
type TransferRegistrar interface {
	RegisterTransfer(ctx context.Context, handle TransferHandle) TransferObserver
}

// TransferStarter starts transfers. Implemented by the transfer engine.
type TransferStarter interface {
	// Start begins downloading url. An empty suggestedName is derived from the URL.
	Start(ctx context.Context, url, suggestedName string) (TransferHandle, error)
}
