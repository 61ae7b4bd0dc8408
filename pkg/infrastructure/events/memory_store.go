package events

import (
	"sync"
)

// InMemoryStore keeps the event log of each run in memory. Sequence numbers
// are per run, starting at 1. Subscribers are notified synchronously in
// append order.
type InMemoryStore struct {
	mutex       sync.RWMutex
	runs        map[string][]Event
	log         []Event
	subscribers map[string][]Handler
}

// NewInMemoryStore creates an empty event store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		runs:        make(map[string][]Event),
		subscribers: make(map[string][]Handler),
	}
}

// Verify interface compliance
var _ Store = (*InMemoryStore)(nil)

// Append records the event under the given run and notifies subscribers
func (s *InMemoryStore) Append(runID string, event Event) error {
	s.mutex.Lock()
	sequenced := baseEvent{
		eventType: event.Type(),
		runID:     runID,
		data:      event.Data(),
		timestamp: event.Timestamp(),
		sequence:  len(s.runs[runID]) + 1,
	}
	s.runs[runID] = append(s.runs[runID], sequenced)
	s.log = append(s.log, sequenced)
	handlers := s.subscribers[sequenced.eventType]
	s.mutex.Unlock()

	for _, handler := range handlers {
		handler(sequenced)
	}
	return nil
}

// RunEvents returns the events of one run in append order
func (s *InMemoryStore) RunEvents(runID string) ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	events := make([]Event, len(s.runs[runID]))
	copy(events, s.runs[runID])
	return events, nil
}

// AllEvents returns every recorded event across runs in append order
func (s *InMemoryStore) AllEvents() ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	events := make([]Event, len(s.log))
	copy(events, s.log)
	return events, nil
}

// Subscribe registers a handler for the given event types
func (s *InMemoryStore) Subscribe(eventTypes []string, handler Handler) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, eventType := range eventTypes {
		s.subscribers[eventType] = append(s.subscribers[eventType], handler)
	}
}
