// Package events fans game notices and point awards out to the websocket
// subscribers of the notification stream.
package events

import (
	"encoding/json"
	"fmt"
	"sync"
)

// Events maps a subscriber id to the channel its websocket connection
// drains. Messages are JSON encoded notices or awards.
type Events struct {
	subs map[string]chan string
	mu   sync.RWMutex
}

// New constructs an empty set of subscribers.
func New() *Events {
	return &Events{
		subs: make(map[string]chan string),
	}
}

// Shutdown closes every subscriber channel so the websocket handlers
// return. It runs before the api server drains.
func (evt *Events) Shutdown() {
	evt.mu.Lock()
	defer evt.mu.Unlock()

	for id, ch := range evt.subs {
		delete(evt.subs, id)
		close(ch)
	}
}

// Acquire registers a subscriber and returns the channel its messages
// arrive on. Acquiring a known id returns the existing channel.
func (evt *Events) Acquire(id string) chan string {
	evt.mu.Lock()
	defer evt.mu.Unlock()

	ch, exists := evt.subs[id]
	if exists {
		return ch
	}

	// A notice is dropped when the subscriber falls this far behind.
	const messageBuffer = 100

	evt.subs[id] = make(chan string, messageBuffer)
	return evt.subs[id]
}

// Release unregisters a subscriber and closes its channel.
func (evt *Events) Release(id string) error {
	evt.mu.Lock()
	defer evt.mu.Unlock()

	ch, exists := evt.subs[id]
	if !exists {
		return fmt.Errorf("subscriber %q is not registered", id)
	}

	delete(evt.subs, id)
	close(ch)
	return nil
}

// Count returns the number of connected subscribers.
func (evt *Events) Count() int {
	evt.mu.RLock()
	defer evt.mu.RUnlock()

	return len(evt.subs)
}

// Send delivers a message to every subscriber without blocking. A
// subscriber with a full buffer misses the message.
func (evt *Events) Send(s string) {
	evt.mu.RLock()
	defer evt.mu.RUnlock()

	for _, ch := range evt.subs {
		select {
		case ch <- s:
		default:
		}
	}
}

// SendJSON encodes a notice or award event and sends it to every
// subscriber.
func (evt *Events) SendJSON(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	evt.Send(string(data))
	return nil
}
