package messages

import (
	"math/rand/v2"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/domain/chat"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

const (
	clockLayout   = "15:04"
	subscriberBuf = 16
)

// Event is pushed to subscribers whenever a conversation gains a message.
type Event struct {
	GroupID int          `json:"groupId"`
	Message chat.Message `json:"message"`
	Group   chat.Group   `json:"group"`
}

type Options struct {
	ReplyChance float64
	MinDelay    time.Duration
	MaxDelay    time.Duration

	// randomness sources, swapped out in tests
	Float func() float64
	IntN  func(n int) int
}

func DefaultOptions() Options {
	return Options{
		ReplyChance: 0.7,
		MinDelay:    time.Second,
		MaxDelay:    3 * time.Second,
	}
}

type SendInput struct {
	Type     chat.MessageType `json:"type"`
	Text     string           `json:"text"`
	ImageURL string           `json:"imageUrl"`
}

// Hub keeps every owner's conversations in memory. Nothing here survives a
// restart.
type Hub struct {
	mu     sync.Mutex
	groups map[string][]chat.Group
	subs   map[string]map[chan Event]struct{}
	closed bool

	now  timezone.Clock
	opts Options
	log  *zap.Logger
}

func NewHub(now timezone.Clock, opts Options, log *zap.Logger) *Hub {
	if opts.Float == nil {
		opts.Float = rand.Float64
	}
	if opts.IntN == nil {
		opts.IntN = rand.IntN
	}
	return &Hub{
		groups: make(map[string][]chat.Group),
		subs:   make(map[string]map[chan Event]struct{}),
		now:    now,
		opts:   opts,
		log:    log,
	}
}

func (h *Hub) groupsFor(owner string) []chat.Group {
	g, ok := h.groups[owner]
	if !ok {
		g = chat.Seed()
		h.groups[owner] = g
	}
	return g
}

func (h *Hub) find(owner string, id int) (*chat.Group, error) {
	groups := h.groupsFor(owner)
	for i := range groups {
		if groups[i].ID == id {
			return &groups[i], nil
		}
	}
	return nil, httperr.ErrBusiness("chat_not_found")
}

// List returns conversation summaries matching query.
func (h *Hub) List(owner, query string) []chat.Group {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := []chat.Group{}
	for _, g := range h.groupsFor(owner) {
		if g.Matches(query) {
			out = append(out, g.Summary())
		}
	}
	return out
}

// Open returns the full conversation and marks it read.
func (h *Hub) Open(owner string, id int) (chat.Group, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	g, err := h.find(owner, id)
	if err != nil {
		return chat.Group{}, err
	}
	g.UnreadCount = 0
	return clone(*g), nil
}

func (h *Hub) Send(owner string, id int, in SendInput) (chat.Message, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	g, err := h.find(owner, id)
	if err != nil {
		return chat.Message{}, err
	}

	m, err := chat.Outgoing(in.Type, in.Text, in.ImageURL, h.now().Format(clockLayout))
	if err != nil {
		return chat.Message{}, err
	}
	g.Append(m)
	h.publish(owner, Event{GroupID: id, Message: m, Group: g.Summary()})

	if h.opts.Float() < h.opts.ReplyChance {
		h.scheduleReply(owner, id)
	}
	return m, nil
}

// Subscribe streams the owner's new messages until cancel is called.
func (h *Hub) Subscribe(owner string) (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, subscriberBuf)
	if h.subs[owner] == nil {
		h.subs[owner] = make(map[chan Event]struct{})
	}
	h.subs[owner][ch] = struct{}{}

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if _, ok := h.subs[owner][ch]; ok {
				delete(h.subs[owner], ch)
				close(ch)
			}
		})
	}
	return ch, cancel
}

// Close drops pending replies and disconnects every subscriber.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for owner, set := range h.subs {
		for ch := range set {
			close(ch)
		}
		delete(h.subs, owner)
	}
}

// =====================================
// internals (h.mu held)
// =====================================

func (h *Hub) scheduleReply(owner string, id int) {
	delay := h.opts.MinDelay
	if span := h.opts.MaxDelay - h.opts.MinDelay; span > 0 {
		delay += time.Duration(h.opts.IntN(int(span) + 1))
	}
	text := chat.AutoReplies[h.opts.IntN(len(chat.AutoReplies))]

	time.AfterFunc(delay, func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		if h.closed {
			return
		}
		g, err := h.find(owner, id)
		if err != nil {
			return
		}
		m := chat.Reply(text, h.now().Format(clockLayout))
		g.Append(m)
		h.publish(owner, Event{GroupID: id, Message: m, Group: g.Summary()})
	})
}

func (h *Hub) publish(owner string, ev Event) {
	for ch := range h.subs[owner] {
		select {
		case ch <- ev:
		default:
			h.log.Warn("message subscriber full, event dropped",
				zap.String("owner", owner),
				zap.Int("group", ev.GroupID),
			)
		}
	}
}

func clone(g chat.Group) chat.Group {
	g.Messages = append([]chat.Message(nil), g.Messages...)
	return g
}
