package logbus

import (
	"sync"
)

// Hub fans log lines out to an arbitrary set of subscribers. Each
// subscriber owns a bounded channel; when it falls behind, its oldest
// buffered line is dropped to make room. Lines published while nobody
// listens are lost, and there is no replay beyond the small recent-line
// buffer handed to new subscribers.
type Hub struct {
	mu     sync.Mutex
	subs   map[int]chan string
	nextID int
	recent []string
	keep   int
}

// New creates a Hub that retains the last keep published lines for new
// subscribers.
func New(keep int) *Hub {
	return &Hub{
		subs: make(map[int]chan string),
		keep: keep,
	}
}

// Publish delivers line to all current subscribers without blocking.
func (h *Hub) Publish(line string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.recent = append(h.recent, line)
	if len(h.recent) > h.keep {
		h.recent = h.recent[len(h.recent)-h.keep:]
	}

	for _, ch := range h.subs {
		select {
		case ch <- line:
		default:
			// Slow subscriber: drop its oldest buffered line.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- line:
			default:
			}
		}
	}
}

// Subscribe registers a subscriber with the given buffer size and returns
// its line channel plus a cancel function. The retained recent lines are
// preloaded into the buffer so a fresh viewer sees some history. Cancel
// must be called exactly once; it closes the channel.
func (h *Hub) Subscribe(buffer int) (<-chan string, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan string, buffer)

	recent := h.recent
	if len(recent) > buffer {
		recent = recent[len(recent)-buffer:]
	}
	for _, line := range recent {
		ch <- line
	}

	id := h.nextID
	h.nextID++
	h.subs[id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if _, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(ch)
		}
	}

	return ch, cancel
}

// Recent returns a copy of the retained lines.
func (h *Hub) Recent() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]string, len(h.recent))
	copy(out, h.recent)
	return out
}
