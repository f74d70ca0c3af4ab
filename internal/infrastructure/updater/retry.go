package updater

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"syscall"
	"time"
)

const (
	maxRetryAttempts = 3
	retryBaseDelay   = 250 * time.Millisecond
	retryMaxDelay    = 2 * time.Second
	retryJitterMax   = 200 * time.Millisecond
)

// fetcher performs GET requests with bounded exponential backoff.
type fetcher struct {
	client    *http.Client
	userAgent string
	randInt63 func(n int64) int64
	sleep     func(ctx context.Context, d time.Duration) error
}

func (f *fetcher) get(ctx context.Context, rawURL string, headers map[string]string) (*http.Response, error) {
	// http.NoBody lets the same request be sent again.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	for attempt := 1; ; attempt++ {
		resp, err := f.client.Do(req)
		last := attempt >= maxRetryAttempts
		if err != nil {
			if last || !isRetryableRequestError(err) {
				return nil, err
			}
		} else {
			if last || !isRetryableStatus(resp.StatusCode) {
				return resp, nil
			}
			_ = resp.Body.Close()
		}

		if waitErr := f.sleep(ctx, backoff(attempt, f.randInt63)); waitErr != nil {
			return nil, waitErr
		}
	}
}

func isRetryableStatus(status int) bool {
	switch status {
	case http.StatusForbidden, http.StatusTooManyRequests, http.StatusRequestTimeout:
		return true
	}
	return status >= http.StatusInternalServerError
}

func isRetryableRequestError(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.ECONNRESET, syscall.ECONNREFUSED, syscall.EADDRNOTAVAIL,
			syscall.ENETUNREACH, syscall.EHOSTUNREACH:
			return true
		}
	}

	var urlErr *url.Error
	return errors.As(err, &urlErr) && urlErr.Timeout()
}

func backoff(attempt int, randInt63 func(n int64) int64) time.Duration {
	delay := retryBaseDelay
	for i := 1; i < attempt && delay < retryMaxDelay; i++ {
		delay *= 2
	}
	if randInt63 != nil {
		delay += time.Duration(randInt63(int64(retryJitterMax)))
	}
	return min(delay, retryMaxDelay)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
