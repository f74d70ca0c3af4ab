package usecase

import (
	"context"
	"sync"

	"github.com/chanomhub/desktop/internal/application/port"
	"github.com/chanomhub/desktop/internal/domain/download"
	"github.com/chanomhub/desktop/internal/domain/entity"
	"github.com/chanomhub/desktop/internal/domain/repository"
	"github.com/chanomhub/desktop/internal/logging"
)

// TrackedDownload is one registry entry. Only the tracker mutates it.
type TrackedDownload struct {
	id       string
	name     string
	progress int
	handle   port.TransferHandle
}

// ID returns the source URL the entry is keyed by.
func (d *TrackedDownload) ID() string { return d.id }

// DownloadTracker keeps the live list of transfers and mirrors every change
// to the UI through an EventEmitter.
//
// All registry access is serialised by mu. Snapshots are emitted while mu is
// held so notifications leave in the order the events were applied; the
// emitter must therefore never block.
type DownloadTracker struct {
	mu           sync.Mutex
	entries      []*TrackedDownload
	downloadPath string

	emitter port.EventEmitter
	journal repository.DownloadJournal
}

// NewDownloadTracker creates a tracker saving new downloads under downloadPath.
// journal may be nil.
func NewDownloadTracker(
	downloadPath string,
	emitter port.EventEmitter,
	journal repository.DownloadJournal,
) *DownloadTracker {
	return &DownloadTracker{
		downloadPath: downloadPath,
		emitter:      emitter,
		journal:      journal,
	}
}

// Register adds a transfer that is about to start. The save path is set on
// the handle before it returns, so no byte is written elsewhere.
func (t *DownloadTracker) Register(
	ctx context.Context,
	url, suggestedName string,
	handle port.TransferHandle,
) *TrackedDownload {
	t.mu.Lock()
	defer t.mu.Unlock()

	// Only the path is sanitised; the entry keeps the name the page suggested.
	savePath := download.SavePath(t.downloadPath, suggestedName)
	handle.SetSavePath(savePath)

	entry := &TrackedDownload{id: url, name: suggestedName, handle: handle}
	t.entries = append(t.entries, entry)

	logging.FromContext(ctx).Info().
		Str("url", url).
		Str("path", savePath).
		Msg("download registered")

	t.publishLocked(ctx)
	return entry
}

// OnProgressUpdate recomputes progress for a running transfer and publishes.
// Interrupted or paused transfers, and transfers of unknown size, are not
// published.
func (t *DownloadTracker) OnProgressUpdate(ctx context.Context, entry *TrackedDownload, state port.TransferState) {
	if state != port.TransferProgressing || entry.handle.IsPaused() {
		logging.FromContext(ctx).Trace().
			Str("url", entry.id).
			Str("state", state.String()).
			Msg("download not progressing")
		return
	}

	received := entry.handle.ReceivedBytes()
	total := entry.handle.TotalBytes()

	t.mu.Lock()
	defer t.mu.Unlock()

	percent, ok := download.ComputeProgress(received, total)
	entry.progress = percent
	if !ok {
		return
	}
	t.publishLocked(ctx)
}

// OnDone removes every entry keyed by the transfer's URL and publishes the
// remaining list. Only TransferCompleted counts as success.
func (t *DownloadTracker) OnDone(ctx context.Context, entry *TrackedDownload, state port.TransferState) {
	log := logging.FromContext(ctx)

	outcome := OutcomeFor(state)
	if outcome.Succeeded() {
		log.Info().Str("url", entry.id).Msg("download completed")
	} else {
		log.Warn().Str("url", entry.id).Str("state", state.String()).Msg("download did not complete")
	}

	t.mu.Lock()
	kept := t.entries[:0]
	for _, e := range t.entries {
		if e.id != entry.id {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(t.entries); i++ {
		t.entries[i] = nil
	}
	t.entries = kept
	t.publishLocked(ctx)
	t.mu.Unlock()

	t.record(ctx, entry, outcome)
}

// List returns the UI projection of the registry in insertion order.
func (t *DownloadTracker) List() []entity.Download {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

// Pause pauses the first transfer with the given id. Unknown ids are ignored.
func (t *DownloadTracker) Pause(ctx context.Context, id string) {
	if h := t.handleFor(id); h != nil {
		logging.FromContext(ctx).Debug().Str("url", id).Msg("pausing download")
		h.Pause()
	}
}

// Resume resumes the first transfer with the given id. Unknown ids are ignored.
func (t *DownloadTracker) Resume(ctx context.Context, id string) {
	if h := t.handleFor(id); h != nil {
		logging.FromContext(ctx).Debug().Str("url", id).Msg("resuming download")
		h.Resume()
	}
}

// Cancel cancels the first transfer with the given id. Unknown ids are
// ignored. The entry goes away when the engine reports the terminal state.
func (t *DownloadTracker) Cancel(ctx context.Context, id string) {
	if h := t.handleFor(id); h != nil {
		logging.FromContext(ctx).Debug().Str("url", id).Msg("cancelling download")
		h.Cancel()
	}
}

// DownloadPath returns the directory new downloads are saved to.
func (t *DownloadTracker) DownloadPath() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.downloadPath
}

// SetDownloadPath changes the directory for future downloads only.
func (t *DownloadTracker) SetDownloadPath(path string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.downloadPath = path
}

// RegisterTransfer implements port.TransferRegistrar.
func (t *DownloadTracker) RegisterTransfer(ctx context.Context, handle port.TransferHandle) port.TransferObserver {
	entry := t.Register(ctx, handle.URL(), handle.SuggestedFilename(), handle)
	return &trackerObserver{tracker: t, entry: entry}
}

// handleFor looks the handle up under the lock; controls are invoked outside
// it so a handle calling back into the tracker cannot deadlock.
func (t *DownloadTracker) handleFor(id string) port.TransferHandle {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, e := range t.entries {
		if e.id == id {
			return e.handle
		}
	}
	return nil
}

func (t *DownloadTracker) snapshotLocked() []entity.Download {
	out := make([]entity.Download, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, entity.Download{ID: e.id, Name: e.name, Progress: e.progress})
	}
	return out
}

func (t *DownloadTracker) publishLocked(ctx context.Context) {
	if t.emitter == nil {
		return
	}
	t.emitter.Emit(ctx, port.EventDownloadUpdate, t.snapshotLocked())
}

func (t *DownloadTracker) record(ctx context.Context, entry *TrackedDownload, outcome entity.DownloadOutcome) {
	if t.journal == nil {
		return
	}
	rec := entity.NewDownloadRecord(entry.id, entry.name, entry.handle.SavePath(), outcome)
	rec.ReceivedBytes = entry.handle.ReceivedBytes()
	rec.TotalBytes = entry.handle.TotalBytes()
	if err := t.journal.Append(ctx, rec); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("url", entry.id).Msg("failed to journal download outcome")
	}
}

// OutcomeFor maps a terminal transfer state to the journal outcome.
func OutcomeFor(state port.TransferState) entity.DownloadOutcome {
	switch state {
	case port.TransferCompleted:
		return entity.DownloadOutcomeCompleted
	case port.TransferCancelled:
		return entity.DownloadOutcomeCancelled
	default:
		return entity.DownloadOutcomeFailed
	}
}

type trackerObserver struct {
	tracker *DownloadTracker
	entry   *TrackedDownload
}

func (o *trackerObserver) OnUpdated(ctx context.Context, state port.TransferState) {
	o.tracker.OnProgressUpdate(ctx, o.entry, state)
}

func (o *trackerObserver) OnDone(ctx context.Context, state port.TransferState) {
	o.tracker.OnDone(ctx, o.entry, state)
}
