package bootstrap

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/chanomhub/desktop/internal/logging"
)

// StartupTimer records how long each startup phase took.
// Safe for use from the errgroup goroutines.
type StartupTimer struct {
	mu     sync.Mutex
	start  time.Time
	last   time.Time
	order  []string
	phases map[string]time.Duration
}

// NewStartupTimer starts timing now.
func NewStartupTimer() *StartupTimer {
	now := time.Now()
	return &StartupTimer{start: now, last: now, phases: make(map[string]time.Duration)}
}

// Mark records the time since the previous mark under phase.
func (t *StartupTimer) Mark(phase string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := time.Now()
	t.record(phase, now.Sub(t.last))
	t.last = now
}

// MarkDuration records d under phase, for work timed elsewhere.
func (t *StartupTimer) MarkDuration(phase string, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.record(phase, d)
}

func (t *StartupTimer) record(phase string, d time.Duration) {
	if _, seen := t.phases[phase]; !seen {
		t.order = append(t.order, phase)
	}
	t.phases[phase] = d
}

// Phases returns the recorded phases in first-mark order.
func (t *StartupTimer) Phases() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.order...)
}

// Log writes all phases as one debug line.
func (t *StartupTimer) Log(ctx context.Context) {
	t.logAt(ctx, zerolog.DebugLevel)
}

func (t *StartupTimer) logAt(ctx context.Context, level zerolog.Level) {
	t.mu.Lock()
	defer t.mu.Unlock()

	event := logging.FromContext(ctx).WithLevel(level).Dur("total", time.Since(t.start))
	for _, phase := range t.order {
		event = event.Dur(phase, t.phases[phase])
	}
	event.Msg("startup timing")
}
