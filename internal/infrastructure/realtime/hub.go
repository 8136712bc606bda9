package realtime

import (
	"sync"

	"oscell/internal/domain/entities"
	"oscell/internal/usecase/interfaces"
)

// Hub fans ledger changes out to in-process listeners, keyed by collection.
// Listeners are called outside the lock, in the publisher's goroutine, so
// they must not block; the websocket stream hands events to a buffered
// channel and drops them when the client is too slow.
type Hub struct {
	mu        sync.RWMutex
	nextID    uint64
	listeners map[string]map[uint64]interfaces.RecordListener
}

var _ interfaces.IRecordBroker = (*Hub)(nil)

func NewHub() *Hub {
	return &Hub{listeners: make(map[string]map[uint64]interfaces.RecordListener)}
}

func (h *Hub) Subscribe(collection string, l interfaces.RecordListener) func() {
	h.mu.Lock()
	h.nextID++
	id := h.nextID
	if h.listeners[collection] == nil {
		h.listeners[collection] = make(map[uint64]interfaces.RecordListener)
	}
	h.listeners[collection][id] = l
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.listeners[collection], id)
			if len(h.listeners[collection]) == 0 {
				delete(h.listeners, collection)
			}
		})
	}
}

func (h *Hub) Publish(collection string, records []entities.ServiceRecord) {
	for _, l := range h.snapshot(collection) {
		if l.OnChange != nil {
			l.OnChange(records)
		}
	}
}

func (h *Hub) PublishError(collection string, err error) {
	for _, l := range h.snapshot(collection) {
		if l.OnError != nil {
			l.OnError(err)
		}
	}
}

// Subscribers reports how many listeners a collection has.
func (h *Hub) Subscribers(collection string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.listeners[collection])
}

func (h *Hub) snapshot(collection string) []interfaces.RecordListener {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]interfaces.RecordListener, 0, len(h.listeners[collection]))
	for _, l := range h.listeners[collection] {
		out = append(out, l)
	}
	return out
}
