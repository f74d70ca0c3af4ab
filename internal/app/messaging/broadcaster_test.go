package messaging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(ch <-chan Event) []Event {
	var out []Event
	for {
		select {
		case e, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, e)
		default:
			return out
		}
	}
}

func TestBroadcaster_FanOutInOrder(t *testing.T) {
	b := NewBroadcaster()
	a, cancelA := b.Subscribe(8)
	defer cancelA()
	c, cancelC := b.Subscribe(8)
	defer cancelC()

	ctx := context.Background()
	b.Emit(ctx, "download-update", 1)
	b.Emit(ctx, "download-update", 2)

	for _, ch := range []<-chan Event{a, c} {
		got := drain(ch)
		require.Len(t, got, 2)
		assert.Equal(t, 1, got[0].Payload)
		assert.Equal(t, 2, got[1].Payload)
	}
}

func TestBroadcaster_SlowSubscriberDrops(t *testing.T) {
	b := NewBroadcaster()
	ch, cancel := b.Subscribe(1)
	defer cancel()

	ctx := context.Background()
	b.Emit(ctx, "e", 1)
	b.Emit(ctx, "e", 2)

	got := drain(ch)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Payload)
}

func TestBroadcaster_Unsubscribe(t *testing.T) {
	b := NewBroadcaster()
	ch, cancel := b.Subscribe(4)
	cancel()
	cancel()

	_, ok := <-ch
	assert.False(t, ok, "channel closed after unsubscribe")

	b.Emit(context.Background(), "e", 1)
}

func TestBroadcaster_Close(t *testing.T) {
	b := NewBroadcaster()
	ch, cancel := b.Subscribe(4)
	b.Close()
	cancel()

	_, ok := <-ch
	assert.False(t, ok)

	late, _ := b.Subscribe(1)
	_, ok = <-late
	assert.False(t, ok)
}
