package cmd

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chanomhub/desktop/internal/app/messaging"
	"github.com/chanomhub/desktop/internal/application/usecase"
	"github.com/chanomhub/desktop/internal/cli/model"
	"github.com/chanomhub/desktop/internal/domain/entity"
	"github.com/chanomhub/desktop/internal/infrastructure/transfer"
)

// stallingServer sends one chunk and then holds the body open.
func stallingServer(t *testing.T) *httptest.Server {
	t.Helper()
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "65536")
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write(make([]byte, 1024))
		w.(http.Flusher).Flush()
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})
	return srv
}

func TestCollectPlain_InterruptCancelsRunningDownloads(t *testing.T) {
	srv := stallingServer(t)
	dir := t.TempDir()

	// The engine shares the interrupt context, as it does under runFetch.
	sigCtx, interrupt := context.WithCancel(context.Background())
	defer interrupt()

	tracker := usecase.NewDownloadTracker(dir, messaging.NewBroadcaster(), nil)
	results := make(chan model.FetchResult, 1)
	engine, err := transfer.NewEngine(sigCtx, transfer.Config{PollInterval: 5 * time.Millisecond},
		&resultRegistrar{next: tracker, results: results})
	require.NoError(t, err)
	t.Cleanup(engine.Close)

	_, err = engine.Start(sigCtx, srv.URL+"/slow.bin", "slow.bin")
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		list := tracker.List()
		return len(list) == 1 && list[0].Progress > 0
	}, 5*time.Second, 5*time.Millisecond)

	interrupt()
	engine.Wait()

	var out bytes.Buffer
	done := make(chan []model.FetchResult, 1)
	go func() { done <- collectPlain(sigCtx, &out, results, 1, tracker) }()

	select {
	case got := <-done:
		require.Len(t, got, 1)
		assert.Equal(t, entity.DownloadOutcomeCancelled, got[0].Outcome)
		assert.Contains(t, out.String(), srv.URL+"/slow.bin")
	case <-time.After(5 * time.Second):
		t.Fatal("fetch kept waiting after the interrupt")
	}
	assert.NoFileExists(t, filepath.Join(dir, "slow.bin"))
	assert.Empty(t, tracker.List())
}
