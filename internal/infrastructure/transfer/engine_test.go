package transfer

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chanomhub/desktop/internal/application/port"
	"github.com/chanomhub/desktop/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// rangeServer serves payload in small chunks, honouring Range requests
// unless noRanges is set. While gate is non-nil, each chunk waits for a token.
type rangeServer struct {
	payload  []byte
	chunk    int
	gate     chan struct{}
	noRanges bool

	mu     sync.Mutex
	ranges []string
}

func (s *rangeServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !s.noRanges {
		w.Header().Set("Accept-Ranges", "bytes")
	}
	if r.Method == http.MethodHead {
		w.Header().Set("Content-Length", strconv.Itoa(len(s.payload)))
		return
	}

	start := 0
	if rng := r.Header.Get("Range"); rng != "" && !s.noRanges {
		s.mu.Lock()
		s.ranges = append(s.ranges, rng)
		s.mu.Unlock()
		_, _ = fmt.Sscanf(strings.TrimPrefix(rng, "bytes="), "%d-", &start)
		w.Header().Set("Content-Range", fmt.Sprintf("bytes %d-%d/%d", start, len(s.payload)-1, len(s.payload)))
		w.Header().Set("Content-Length", strconv.Itoa(len(s.payload)-start))
		w.WriteHeader(http.StatusPartialContent)
	} else {
		w.Header().Set("Content-Length", strconv.Itoa(len(s.payload)))
	}

	flusher, _ := w.(http.Flusher)
	for off := start; off < len(s.payload); off += s.chunk {
		if s.gate != nil {
			select {
			case <-s.gate:
			case <-r.Context().Done():
				return
			}
		}
		end := min(off+s.chunk, len(s.payload))
		if _, err := w.Write(s.payload[off:end]); err != nil {
			return
		}
		if flusher != nil {
			flusher.Flush()
		}
	}
}

func (s *rangeServer) seenRanges() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.ranges...)
}

type event struct {
	state port.TransferState
	done  bool
}

// recordingRegistrar sets save paths under dir and records events.
type recordingRegistrar struct {
	dir    string
	events chan event
}

func newRecordingRegistrar(dir string) *recordingRegistrar {
	return &recordingRegistrar{dir: dir, events: make(chan event, 1024)}
}

func (r *recordingRegistrar) RegisterTransfer(_ context.Context, h port.TransferHandle) port.TransferObserver {
	h.SetSavePath(filepath.Join(r.dir, h.SuggestedFilename()))
	return r
}

func (r *recordingRegistrar) OnUpdated(_ context.Context, s port.TransferState) {
	r.events <- event{state: s}
}

func (r *recordingRegistrar) OnDone(_ context.Context, s port.TransferState) {
	r.events <- event{state: s, done: true}
}

func (r *recordingRegistrar) waitFor(t *testing.T, want port.TransferState, done bool) {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev := <-r.events:
			if ev.state == want && ev.done == done {
				return
			}
			if ev.done {
				t.Fatalf("transfer ended with %s, waiting for %s", ev.state, want)
			}
		case <-timeout:
			t.Fatalf("timed out waiting for %s", want)
		}
	}
}

func newTestEngine(t *testing.T, reg port.TransferRegistrar) *Engine {
	t.Helper()
	e, err := NewEngine(testCtx(), Config{PollInterval: 5 * time.Millisecond, UserAgent: "chanomhub-test"}, reg)
	require.NoError(t, err)
	t.Cleanup(e.Close)
	return e
}

func TestEngine_DownloadsToRegisteredPath(t *testing.T) {
	payload := bytes.Repeat([]byte("chanomhub"), 4096)
	srv := httptest.NewServer(&rangeServer{payload: payload, chunk: 4096})
	defer srv.Close()

	dir := t.TempDir()
	reg := newRecordingRegistrar(dir)
	e := newTestEngine(t, reg)

	h, err := e.Start(testCtx(), srv.URL+"/files/game.zip", "")
	require.NoError(t, err)
	assert.Equal(t, "game.zip", h.SuggestedFilename())
	assert.Equal(t, filepath.Join(dir, "game.zip"), h.SavePath())

	reg.waitFor(t, port.TransferCompleted, true)

	got, err := os.ReadFile(filepath.Join(dir, "game.zip"))
	require.NoError(t, err)
	assert.Equal(t, payload, got)
	assert.Equal(t, int64(len(payload)), h.ReceivedBytes())
	assert.Equal(t, int64(len(payload)), h.TotalBytes())
}

func TestEngine_HTTPErrorFails(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	dir := t.TempDir()
	reg := newRecordingRegistrar(dir)
	e := newTestEngine(t, reg)

	_, err := e.Start(testCtx(), srv.URL+"/missing.zip", "missing.zip")
	require.NoError(t, err)

	reg.waitFor(t, port.TransferFailed, true)
	assert.NoFileExists(t, filepath.Join(dir, "missing.zip"))
}

func TestEngine_CancelRemovesPartialFile(t *testing.T) {
	gate := make(chan struct{})
	payload := bytes.Repeat([]byte{1}, 64*1024)
	srv := httptest.NewServer(&rangeServer{payload: payload, chunk: 1024, gate: gate})
	defer srv.Close()

	dir := t.TempDir()
	reg := newRecordingRegistrar(dir)
	e := newTestEngine(t, reg)

	h, err := e.Start(testCtx(), srv.URL+"/big.bin", "big.bin")
	require.NoError(t, err)

	gate <- struct{}{}
	gate <- struct{}{}
	reg.waitFor(t, port.TransferProgressing, false)

	h.Cancel()
	reg.waitFor(t, port.TransferCancelled, true)
	assert.NoFileExists(t, filepath.Join(dir, "big.bin"))

	// Controls after the terminal state are ignored.
	h.Pause()
	h.Resume()
	assert.False(t, h.IsPaused())
}

func TestEngine_PauseAndResumeWithRange(t *testing.T) {
	gate := make(chan struct{})
	payload := make([]byte, 32*1024)
	for i := range payload {
		payload[i] = byte(i % 251)
	}
	srv := &rangeServer{payload: payload, chunk: 1024, gate: gate}
	ts := httptest.NewServer(srv)
	defer ts.Close()

	dir := t.TempDir()
	reg := newRecordingRegistrar(dir)
	e := newTestEngine(t, reg)

	h, err := e.Start(testCtx(), ts.URL+"/resume.bin", "resume.bin")
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		gate <- struct{}{}
	}
	require.Eventually(t, func() bool { return h.ReceivedBytes() >= 4096 }, 5*time.Second, 5*time.Millisecond)

	h.Pause()
	assert.True(t, h.IsPaused())
	reg.waitFor(t, port.TransferInterrupted, false)

	h.Resume()
	assert.False(t, h.IsPaused())
	close(gate)

	reg.waitFor(t, port.TransferCompleted, true)

	got, err := os.ReadFile(filepath.Join(dir, "resume.bin"))
	require.NoError(t, err)
	assert.Equal(t, payload, got)
	require.NotEmpty(t, srv.seenRanges())
	assert.True(t, strings.HasPrefix(srv.seenRanges()[0], "bytes="))
}

func TestEngine_ResumeStraightAfterPause(t *testing.T) {
	gate := make(chan struct{})
	payload := bytes.Repeat([]byte("abcdefgh"), 4096)
	ts := httptest.NewServer(&rangeServer{payload: payload, chunk: 1024, gate: gate})
	defer ts.Close()

	dir := t.TempDir()
	reg := newRecordingRegistrar(dir)
	e := newTestEngine(t, reg)

	h, err := e.Start(testCtx(), ts.URL+"/quick.bin", "quick.bin")
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		gate <- struct{}{}
	}
	require.Eventually(t, func() bool { return h.ReceivedBytes() >= 4096 }, 5*time.Second, 5*time.Millisecond)

	// The stopped request has not returned yet when Resume lands.
	h.Pause()
	h.Resume()
	close(gate)

	reg.waitFor(t, port.TransferCompleted, true)

	got, err := os.ReadFile(filepath.Join(dir, "quick.bin"))
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestEngine_ResumeWithoutRangeSupportRestarts(t *testing.T) {
	gate := make(chan struct{})
	payload := make([]byte, 32*1024)
	for i := range payload {
		payload[i] = byte(i % 241)
	}
	srv := &rangeServer{payload: payload, chunk: 1024, gate: gate, noRanges: true}
	ts := httptest.NewServer(srv)
	defer ts.Close()

	dir := t.TempDir()
	reg := newRecordingRegistrar(dir)
	e := newTestEngine(t, reg)

	h, err := e.Start(testCtx(), ts.URL+"/plain.bin", "plain.bin")
	require.NoError(t, err)

	for i := 0; i < 8; i++ {
		gate <- struct{}{}
	}
	require.Eventually(t, func() bool { return h.ReceivedBytes() >= 8*1024 }, 5*time.Second, 5*time.Millisecond)

	h.Pause()
	reg.waitFor(t, port.TransferInterrupted, false)

	h.Resume()
	close(gate)
	reg.waitFor(t, port.TransferCompleted, true)

	assert.Equal(t, int64(len(payload)), h.ReceivedBytes())
	assert.Equal(t, int64(len(payload)), h.TotalBytes())
	assert.Empty(t, srv.seenRanges())

	got, err := os.ReadFile(filepath.Join(dir, "plain.bin"))
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestEngine_CancelAfterShutdownStillReports(t *testing.T) {
	gate := make(chan struct{})
	payload := bytes.Repeat([]byte{7}, 64*1024)
	ts := httptest.NewServer(&rangeServer{payload: payload, chunk: 1024, gate: gate})
	defer ts.Close()

	dir := t.TempDir()
	reg := newRecordingRegistrar(dir)
	base, shutdown := context.WithCancel(testCtx())
	e, err := NewEngine(base, Config{PollInterval: 5 * time.Millisecond}, reg)
	require.NoError(t, err)
	t.Cleanup(e.Close)

	h, err := e.Start(testCtx(), ts.URL+"/halt.bin", "halt.bin")
	require.NoError(t, err)

	gate <- struct{}{}
	reg.waitFor(t, port.TransferProgressing, false)

	shutdown()
	e.Wait()
	assert.FileExists(t, filepath.Join(dir, "halt.bin"))

	h.Cancel()
	reg.waitFor(t, port.TransferCancelled, true)
	assert.NoFileExists(t, filepath.Join(dir, "halt.bin"))

	// A second Cancel reports nothing more.
	h.Cancel()
	select {
	case ev := <-reg.events:
		assert.False(t, ev.done, "unexpected terminal event %s", ev.state)
	default:
	}
}

func TestEngine_RejectsNonHTTPURLs(t *testing.T) {
	e := newTestEngine(t, newRecordingRegistrar(t.TempDir()))

	_, err := e.Start(testCtx(), "file:///etc/passwd", "passwd")
	assert.Error(t, err)
}

func TestEngine_StartAfterClose(t *testing.T) {
	e, err := NewEngine(testCtx(), Config{}, newRecordingRegistrar(t.TempDir()))
	require.NoError(t, err)
	e.Close()

	_, err = e.Start(testCtx(), "https://example.com/a.zip", "a.zip")
	assert.ErrorIs(t, err, ErrEngineClosed)
}
