// Package broker distributes back-office events (new orders, new messages)
// to the connected admin dashboards over SSE.
package broker

import (
	"sync"
	"time"
)

// Event is one item on the admin live stream.
type Event struct {
	Type      string         `json:"type"`
	Timestamp int64          `json:"timestamp"`
	Data      map[string]any `json:"data"`
}

// Broker fans events out to every subscribed admin client. Publishing never
// blocks: a client that cannot keep up misses the event and resyncs on the
// next dashboard reload.
type Broker struct {
	clients map[chan Event]bool
	mutex   sync.RWMutex
}

func New() *Broker {
	return &Broker{clients: make(map[chan Event]bool)}
}

// Subscribe registers a new client and returns its event channel.
func (b *Broker) Subscribe() chan Event {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	clientChan := make(chan Event, 10) // buffered to prevent blocking
	b.clients[clientChan] = true
	return clientChan
}

// Unsubscribe removes and closes a client channel.
func (b *Broker) Unsubscribe(clientChan chan Event) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	delete(b.clients, clientChan)
	close(clientChan)
}

// Publish delivers the event to every connected client.
func (b *Broker) Publish(eventType string, data map[string]any) {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	event := Event{
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		Data:      data,
	}
	for clientChan := range b.clients {
		select {
		case clientChan <- event:
		default:
			// client not ready, skip to avoid blocking
		}
	}
}

// ClientCount returns the number of connected clients.
func (b *Broker) ClientCount() int {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	return len(b.clients)
}
