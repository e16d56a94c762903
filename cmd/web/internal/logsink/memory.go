package logsink

import (
	"context"
	"sync"
)

// MemorySink keeps the last N entries.
type MemorySink struct {
	mu      sync.Mutex
	entries []Entry
	next    int
	full    bool
}

func NewMemorySink(capacity int) *MemorySink {
	if capacity <= 0 {
		capacity = 200
	}
	return &MemorySink{entries: make([]Entry, capacity)}
}

func (m *MemorySink) Record(_ context.Context, e *Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[m.next] = *e
	m.next = (m.next + 1) % len(m.entries)
	if m.next == 0 {
		m.full = true
	}
	return nil
}

func (m *MemorySink) Recent(_ context.Context, limit int) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := m.next
	if m.full {
		n = len(m.entries)
	}
	if limit <= 0 || limit > n {
		limit = n
	}

	out := make([]Entry, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (m.next - i + len(m.entries)) % len(m.entries)
		out = append(out, m.entries[idx])
	}
	return out, nil
}
