package hub_test

import (
	"context"
	"testing"
	"time"

	"github.com/nfrund/amantech/internal/hub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, s *hub.Subscriber) ([]byte, bool) {
	t.Helper()
	select {
	case msg, ok := <-s.Send:
		return msg, ok
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for hub")
		return nil, false
	}
}

func TestHub_Broadcast(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h := hub.NewHub()
	go h.Run(ctx)

	a := h.Subscribe()
	b := h.Subscribe()
	require.NotNil(t, a)
	require.NotNil(t, b)

	require.True(t, h.Broadcast([]byte("reload")))
	msg, ok := receive(t, a)
	assert.True(t, ok)
	assert.Equal(t, "reload", string(msg))
	msg, _ = receive(t, b)
	assert.Equal(t, "reload", string(msg))

	h.Unsubscribe(a)
	_, ok = receive(t, a)
	assert.False(t, ok, "unsubscribed channel is closed")
}

func TestHub_DropsSlowSubscriber(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h := hub.NewHub()
	go h.Run(ctx)

	slow := h.Subscribe()
	for i := 0; i < cap(slow.Send)+1; i++ {
		require.True(t, h.Broadcast([]byte("x")))
	}

	n := 0
	for range slow.Send {
		n++
	}
	assert.Equal(t, cap(slow.Send), n)
}

func TestHub_StopClosesEverything(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	h := hub.NewHub()
	go h.Run(ctx)

	s := h.Subscribe()
	cancel()

	_, ok := receive(t, s)
	assert.False(t, ok)
	assert.Eventually(t, func() bool { return !h.Broadcast([]byte("late")) }, time.Second, 10*time.Millisecond)
	assert.Nil(t, h.Subscribe())
	h.Unsubscribe(s)
}
