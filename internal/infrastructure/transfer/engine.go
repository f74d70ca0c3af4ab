// Package transfer runs resumable HTTP downloads that can be paused,
// resumed and cancelled.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"
	"time"

	"go.bug.st/downloader/v2"
	"golang.org/x/net/publicsuffix"

	"github.com/chanomhub/desktop/internal/application/port"
	"github.com/chanomhub/desktop/internal/domain/download"
	"github.com/chanomhub/desktop/internal/logging"
)

const (
	defaultPollInterval   = 250 * time.Millisecond
	defaultHeaderTimeout  = 30 * time.Second
	defaultConnectTimeout = 15 * time.Second
)

// ErrEngineClosed is returned by Start after Close.
var ErrEngineClosed = errors.New("transfer engine closed")

// Config tunes the engine.
type Config struct {
	UserAgent string
	// PollInterval is how often progress is sampled while bytes flow.
	PollInterval time.Duration
	// HeaderTimeout bounds the wait for response headers. The body itself
	// has no deadline.
	HeaderTimeout time.Duration
	// Headers are sent with every request.
	Headers map[string]string
}

// Engine starts transfers and reports their events to a registrar.
type Engine struct {
	cfg       Config
	client    http.Client
	registrar port.TransferRegistrar

	baseCtx context.Context
	stop    context.CancelFunc
	wg      sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewEngine creates an engine. baseCtx carries the logger and bounds the
// lifetime of every transfer.
func NewEngine(baseCtx context.Context, cfg Config, registrar port.TransferRegistrar) (*Engine, error) {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if cfg.HeaderTimeout <= 0 {
		cfg.HeaderTimeout = defaultHeaderTimeout
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.ResponseHeaderTimeout = cfg.HeaderTimeout
	transport.DialContext = (&net.Dialer{Timeout: defaultConnectTimeout, KeepAlive: 30 * time.Second}).DialContext

	ctx, stop := context.WithCancel(logging.WithComponent(baseCtx, "transfer"))
	return &Engine{
		cfg:       cfg,
		client:    http.Client{Jar: jar, Transport: transport},
		registrar: registrar,
		baseCtx:   ctx,
		stop:      stop,
	}, nil
}

// CookieJar exposes the jar so a caller can seed session cookies.
func (e *Engine) CookieJar() http.CookieJar {
	return e.client.Jar
}

// Start registers a new transfer and begins downloading it in the background.
// The registrar has set the save path by the time Start returns.
func (e *Engine) Start(ctx context.Context, rawURL, suggestedName string) (port.TransferHandle, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, fmt.Errorf("unsupported download url %q", rawURL)
	}
	if suggestedName == "" {
		suggestedName = download.FilenameFromURL(rawURL)
	}

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil, ErrEngineClosed
	}
	e.wg.Add(1)
	e.mu.Unlock()

	t := newTransfer(e, rawURL, suggestedName)
	t.observer = e.registrar.RegisterTransfer(ctx, t)

	go func() {
		defer e.wg.Done()
		t.loop(logging.WithDownload(e.baseCtx, rawURL))
	}()
	return t, nil
}

// Close stops every transfer, keeping partial files so a later download of
// the same URL resumes, and waits for the workers to exit.
func (e *Engine) Close() {
	e.mu.Lock()
	e.closed = true
	e.mu.Unlock()

	e.stop()
	e.wg.Wait()
}

// Wait blocks until every started transfer has finished.
func (e *Engine) Wait() {
	e.wg.Wait()
}

func (e *Engine) downloaderConfig() downloader.Config {
	headers := make(map[string]string, len(e.cfg.Headers)+1)
	for k, v := range e.cfg.Headers {
		headers[k] = v
	}
	if e.cfg.UserAgent != "" {
		headers["User-Agent"] = e.cfg.UserAgent
	}
	return downloader.Config{
		HttpClient:   e.client,
		ExtraHeaders: headers,
	}
}

var _ port.TransferStarter = (*Engine)(nil)
