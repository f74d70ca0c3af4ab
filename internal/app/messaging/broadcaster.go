package messaging

import (
	"context"
	"sync"

	"github.com/chanomhub/desktop/internal/logging"
)

// Event is one push notification.
type Event struct {
	Name    string `json:"event"`
	Payload any    `json:"payload"`
}

type subscriber struct {
	id int
	ch chan Event
}

// Broadcaster is a port.EventEmitter fanning events out to subscribers.
// Emit never blocks: a subscriber whose buffer is full misses the event.
type Broadcaster struct {
	mu     sync.Mutex
	subs   []subscriber
	nextID int
	closed bool
}

// NewBroadcaster creates a broadcaster with no subscribers.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{}
}

// Subscribe returns a channel receiving events in emit order, and a func
// that unsubscribes and closes the channel.
func (b *Broadcaster) Subscribe(buffer int) (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, max(buffer, 1))
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subs = append(b.subs, subscriber{id: id, ch: ch})

	var once sync.Once
	return ch, func() {
		once.Do(func() { b.unsubscribe(id) })
	}
}

func (b *Broadcaster) unsubscribe(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, s := range b.subs {
		if s.id == id {
			close(s.ch)
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// Emit implements port.EventEmitter.
func (b *Broadcaster) Emit(ctx context.Context, event string, payload any) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, s := range b.subs {
		select {
		case s.ch <- Event{Name: event, Payload: payload}:
		default:
			logging.FromContext(ctx).Debug().
				Str("event", event).
				Int("subscriber", s.id).
				Msg("subscriber busy, event dropped")
		}
	}
}

// Close closes every subscriber channel. Later Emits are no-ops.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for _, s := range b.subs {
		close(s.ch)
	}
	b.subs = nil
}
