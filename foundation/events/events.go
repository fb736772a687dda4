// Package events allows goroutines to register for and receive event
// messages from the running node.
package events

import (
	"fmt"
	"sync"
)

// messageBuffer is the per-subscriber channel capacity. A subscriber that
// falls further behind than this loses messages rather than blocking the
// sender.
const messageBuffer = 100

// Events maintains a set of subscriber channels keyed by a unique id.
type Events struct {
	mu   sync.RWMutex
	subs map[string]chan string
}

// New constructs an events value for registering and receiving events.
func New() *Events {
	return &Events{
		subs: make(map[string]chan string),
	}
}

// Acquire takes a unique id and returns a channel that receives events.
// Acquiring an id twice returns the same channel.
func (evts *Events) Acquire(id string) chan string {
	evts.mu.Lock()
	defer evts.mu.Unlock()

	if ch, exists := evts.subs[id]; exists {
		return ch
	}

	ch := make(chan string, messageBuffer)
	evts.subs[id] = ch

	return ch
}

// Release closes and removes the channel registered under the id.
func (evts *Events) Release(id string) error {
	evts.mu.Lock()
	defer evts.mu.Unlock()

	ch, exists := evts.subs[id]
	if !exists {
		return fmt.Errorf("id %q is not registered", id)
	}

	delete(evts.subs, id)
	close(ch)

	return nil
}

// Send delivers the message to every subscriber without blocking. A
// subscriber with a full buffer misses the message.
func (evts *Events) Send(s string) {
	evts.mu.RLock()
	defer evts.mu.RUnlock()

	for _, ch := range evts.subs {
		select {
		case ch <- s:
		default:
		}
	}
}

// Shutdown closes and removes every subscriber channel.
func (evts *Events) Shutdown() {
	evts.mu.Lock()
	defer evts.mu.Unlock()

	for id, ch := range evts.subs {
		delete(evts.subs, id)
		close(ch)
	}
}
