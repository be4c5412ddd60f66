package messages

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/domain/chat"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

func fixedClock() time.Time {
	return time.Date(2025, 10, 20, 14, 5, 0, 0, time.UTC)
}

func newHub(t *testing.T, replyRoll float64) *Hub {
	t.Helper()
	h := NewHub(fixedClock, Options{
		ReplyChance: 0.7,
		MinDelay:    time.Millisecond,
		MaxDelay:    time.Millisecond,
		Float:       func() float64 { return replyRoll },
		IntN:        func(int) int { return 1 },
	}, zap.NewNop())
	t.Cleanup(h.Close)
	return h
}

func receive(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(time.Second):
		t.Fatal("no event received")
		return Event{}
	}
}

func TestListFiltersCaseInsensitive(t *testing.T) {
	h := newHub(t, 1)

	all := h.List("u1", "")
	require.Len(t, all, 3)
	for _, g := range all {
		assert.Nil(t, g.Messages)
	}

	got := h.List("u1", "BROS")
	require.Len(t, got, 1)
	assert.Equal(t, "Barber Bros", got[0].Name)

	got = h.List("u1", "giúp gì")
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].ID)

	assert.Empty(t, h.List("u1", "nothing like this"))
}

func TestOpenResetsUnread(t *testing.T) {
	h := newHub(t, 1)

	g, err := h.Open("u1", 2)
	require.NoError(t, err)
	assert.Zero(t, g.UnreadCount)
	assert.Len(t, g.Messages, 3)

	for _, s := range h.List("u1", "") {
		assert.Zero(t, s.UnreadCount)
	}

	_, err = h.Open("u1", 42)
	assert.True(t, httperr.IsBusiness(err, "chat_not_found"))
}

func TestSendVoiceUpdatesPreview(t *testing.T) {
	h := newHub(t, 1)

	m, err := h.Send("u1", 1, SendInput{Type: chat.TypeVoice})
	require.NoError(t, err)
	assert.Equal(t, chat.VoiceDuration, m.VoiceDuration)
	assert.Equal(t, "14:05", m.Time)
	assert.True(t, m.IsSentByUser)

	got := h.List("u1", "Classic")
	require.Len(t, got, 1)
	assert.Equal(t, "Tin nhắn thoại (0:03)", got[0].LastMessage)
	assert.Equal(t, "14:05", got[0].LastMessageTime)
}

func TestSendRejectsEmptyText(t *testing.T) {
	h := newHub(t, 1)

	_, err := h.Send("u1", 1, SendInput{Type: chat.TypeText, Text: "   "})
	assert.True(t, httperr.IsBusiness(err, "empty_message"))

	_, err = h.Send("u1", 1, SendInput{Type: chat.TypeImage})
	assert.True(t, httperr.IsBusiness(err, "missing_image"))
}

func TestSendPushesAutoReply(t *testing.T) {
	h := newHub(t, 0)
	events, cancel := h.Subscribe("u1")
	defer cancel()

	_, err := h.Send("u1", 3, SendInput{Text: "Xin chào"})
	require.NoError(t, err)

	first := receive(t, events)
	assert.True(t, first.Message.IsSentByUser)
	assert.Equal(t, "Xin chào", first.Group.LastMessage)

	reply := receive(t, events)
	assert.False(t, reply.Message.IsSentByUser)
	assert.Equal(t, chat.AutoReplies[1], reply.Message.Text)
	assert.Equal(t, 3, reply.GroupID)

	g, err := h.Open("u1", 3)
	require.NoError(t, err)
	assert.Equal(t, chat.AutoReplies[1], g.LastMessage)
}

func TestNoReplyAboveChance(t *testing.T) {
	h := newHub(t, 0.7)
	events, cancel := h.Subscribe("u1")
	defer cancel()

	_, err := h.Send("u1", 1, SendInput{Text: "ok"})
	require.NoError(t, err)
	receive(t, events)

	select {
	case ev := <-events:
		t.Fatalf("unexpected reply %+v", ev)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestOwnersAreIsolated(t *testing.T) {
	h := newHub(t, 1)
	other, cancel := h.Subscribe("u2")
	defer cancel()

	_, err := h.Send("u1", 1, SendInput{Text: "chỉ của tôi"})
	require.NoError(t, err)

	assert.Empty(t, h.List("u2", "chỉ của tôi"))
	assert.Len(t, other, 0)
}
