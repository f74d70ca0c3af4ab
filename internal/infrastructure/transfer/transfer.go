package transfer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync"
	"sync/atomic"

	"go.bug.st/downloader/v2"

	"github.com/chanomhub/desktop/internal/application/port"
	"github.com/chanomhub/desktop/internal/logging"
)

// Transfer is one download. It implements port.TransferHandle.
type Transfer struct {
	engine    *Engine
	url       string
	suggested string
	observer  port.TransferObserver

	received atomic.Int64
	total    atomic.Int64

	mu        sync.Mutex
	savePath  string
	paused    bool
	cancelled bool
	finished  bool
	runCancel context.CancelFunc
	wake      chan struct{}

	// detached is set once the loop has left on shutdown without a terminal
	// state; a later Cancel then reports the end itself using detachedCtx.
	detached    bool
	detachedCtx context.Context
}

func newTransfer(e *Engine, rawURL, suggested string) *Transfer {
	t := &Transfer{
		engine:    e,
		url:       rawURL,
		suggested: suggested,
		wake:      make(chan struct{}, 1),
	}
	t.total.Store(-1)
	return t
}

func (t *Transfer) URL() string               { return t.url }
func (t *Transfer) SuggestedFilename() string { return t.suggested }
func (t *Transfer) ReceivedBytes() int64      { return t.received.Load() }
func (t *Transfer) TotalBytes() int64         { return t.total.Load() }

func (t *Transfer) SetSavePath(path string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.savePath = path
}

func (t *Transfer) SavePath() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.savePath
}

func (t *Transfer) IsPaused() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.paused
}

// Pause drops the connection and keeps the partial file.
func (t *Transfer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.finished || t.paused || t.cancelled {
		return
	}
	t.paused = true
	if t.runCancel != nil {
		t.runCancel()
	}
}

// Resume reconnects with a Range request from the partial file's size.
func (t *Transfer) Resume() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.finished || !t.paused {
		return
	}
	t.paused = false
	t.signal()
}

// Cancel stops the transfer and removes the partial file.
func (t *Transfer) Cancel() {
	t.mu.Lock()
	if t.finished || t.cancelled {
		t.mu.Unlock()
		return
	}
	t.cancelled = true
	if t.runCancel != nil {
		t.runCancel()
	}
	t.signal()
	detached, ctx := t.detached, t.detachedCtx
	t.mu.Unlock()

	if detached {
		t.finish(ctx, port.TransferCancelled)
	}
}

// signal wakes the loop; must hold mu.
func (t *Transfer) signal() {
	select {
	case t.wake <- struct{}{}:
	default:
	}
}

// loop runs until a terminal state. Events are delivered from this goroutine
// only, so the observer sees them in order.
func (t *Transfer) loop(ctx context.Context) {
	log := logging.FromContext(ctx)

	for {
		runCtx, ok := t.nextRun(ctx)
		if !ok {
			t.detach(ctx)
			return
		}

		err := t.fetch(runCtx)

		switch {
		case err == nil:
			t.finish(ctx, port.TransferCompleted)
			return
		case t.isCancelled():
			t.finish(ctx, port.TransferCancelled)
			return
		case ctx.Err() != nil:
			t.detach(ctx)
			return
		case runCtx.Err() != nil:
			// Stopped by Pause. A Resume may already have landed, in which
			// case nextRun reconnects straight away.
			log.Debug().Int64("received", t.ReceivedBytes()).Msg("transfer paused")
			t.observer.OnUpdated(ctx, port.TransferInterrupted)
		default:
			log.Warn().Err(err).Msg("transfer failed")
			t.finish(ctx, port.TransferFailed)
			return
		}
	}
}

// detach leaves the transfer without a terminal state so its partial file
// survives for a later resume. A Cancel that already arrived, or arrives
// afterwards, is still reported.
func (t *Transfer) detach(ctx context.Context) {
	t.mu.Lock()
	if t.cancelled {
		t.mu.Unlock()
		t.finish(ctx, port.TransferCancelled)
		return
	}
	t.detached = true
	t.detachedCtx = ctx
	t.mu.Unlock()
	logging.FromContext(ctx).Debug().Msg("transfer abandoned on shutdown")
}

// nextRun blocks while paused and returns a context for the next attempt.
func (t *Transfer) nextRun(ctx context.Context) (context.Context, bool) {
	for {
		t.mu.Lock()
		switch {
		case t.cancelled:
			t.mu.Unlock()
			return nil, false
		case !t.paused:
			runCtx, cancel := context.WithCancel(ctx)
			t.runCancel = cancel
			t.mu.Unlock()
			return runCtx, true
		}
		t.mu.Unlock()

		select {
		case <-t.wake:
		case <-ctx.Done():
			return nil, false
		}
	}
}

func (t *Transfer) fetch(ctx context.Context) error {
	path := t.SavePath()
	if path == "" {
		return errors.New("save path not set")
	}

	d, err := downloader.DownloadWithConfigAndContext(ctx, path, t.url, t.engine.downloaderConfig())
	if err != nil {
		return err
	}

	t.total.Store(d.Size())
	if d.Completed() == d.Size() && d.Size() >= 0 {
		t.received.Store(d.Completed())
		return statusError(d.Resp)
	}

	if err := statusError(d.Resp); err != nil {
		_ = d.Close()
		removeIfEmpty(path)
		return err
	}

	// Without a 206 the library has truncated the file and starts over, but
	// it still counts the old partial bytes as done.
	var restarted int64
	if d.Completed() > 0 && d.Resp.StatusCode != http.StatusPartialContent {
		restarted = d.Completed()
		logging.FromContext(ctx).Debug().
			Int64("discarded", restarted).
			Msg("server cannot resume, restarting from zero")
	}
	t.received.Store(d.Completed() - restarted)

	return d.RunAndPoll(func(current int64) {
		t.received.Store(current - restarted)
		t.observer.OnUpdated(ctx, port.TransferProgressing)
	}, t.engine.cfg.PollInterval)
}

// finish reports the terminal state. The observer may write to the journal,
// so it gets a context that survives shutdown.
func (t *Transfer) finish(ctx context.Context, state port.TransferState) {
	ctx = context.WithoutCancel(ctx)

	t.mu.Lock()
	t.finished = true
	if t.runCancel != nil {
		t.runCancel()
	}
	path := t.savePath
	t.mu.Unlock()

	if state == port.TransferCancelled && path != "" {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			logging.FromContext(ctx).Warn().Err(err).Str("path", path).Msg("failed to remove cancelled download")
		}
	}
	t.observer.OnDone(ctx, state)
}

func (t *Transfer) isCancelled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancelled
}

func statusError(resp *http.Response) error {
	if resp == nil || (resp.StatusCode >= 200 && resp.StatusCode < 300) {
		return nil
	}
	return fmt.Errorf("server returned %s", resp.Status)
}

func removeIfEmpty(path string) {
	if info, err := os.Stat(path); err == nil && info.Size() == 0 {
		_ = os.Remove(path)
	}
}

var _ port.TransferHandle = (*Transfer)(nil)
