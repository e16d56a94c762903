// Package logsink receives client log reports posted to /api/clientlog,
// keeps them in a Sink and fans new entries out to live viewers.
package logsink

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"thirdcoast.systems/hydra/internal/services/clientlog"
)

const (
	// Hard cap on concurrent viewer streams.
	maxStreams = 20

	subscriberBuffer = 32
)

// Entry is one stored report.
type Entry struct {
	ID uuid.UUID
	clientlog.Request
	ReceivedAt time.Time
}

// Sink persists entries. Recent returns newest first.
type Sink interface {
	Record(ctx context.Context, e *Entry) error
	Recent(ctx context.Context, limit int) ([]Entry, error)
}

// Hub stores entries through its Sink and notifies subscribers.
type Hub struct {
	mu      sync.Mutex
	sink    Sink
	subs    map[chan Entry]struct{}
	streams int
	now     func() time.Time
}

func NewHub(sink Sink) *Hub {
	return &Hub{
		sink: sink,
		subs: make(map[chan Entry]struct{}),
		now:  time.Now,
	}
}

// Record stores req and broadcasts the resulting entry. Slow subscribers
// miss entries rather than block the caller.
func (h *Hub) Record(ctx context.Context, req clientlog.Request) (Entry, error) {
	e := Entry{ID: uuid.New(), Request: req, ReceivedAt: h.now().UTC()}
	if err := h.sink.Record(ctx, &e); err != nil {
		return Entry{}, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- e:
		default:
		}
	}
	return e, nil
}

func (h *Hub) Recent(ctx context.Context, limit int) ([]Entry, error) {
	return h.sink.Recent(ctx, limit)
}

// Subscribe returns a channel of new entries and an unsubscribe function.
func (h *Hub) Subscribe() (<-chan Entry, func()) {
	ch := make(chan Entry, subscriberBuffer)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	return ch, func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if _, ok := h.subs[ch]; ok {
			delete(h.subs, ch)
			close(ch)
		}
	}
}

// AcquireStream reserves a viewer stream slot.
func (h *Hub) AcquireStream() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.streams >= maxStreams {
		return false
	}
	h.streams++
	return true
}

func (h *Hub) ReleaseStream() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.streams > 0 {
		h.streams--
	}
}
