package events

import (
	"time"
)

// Event is one recorded fact from a balancing run. Events belonging to the
// same run share a RunID and carry a store-assigned sequence number.
type Event interface {
	Type() string
	RunID() string
	Data() interface{}
	Timestamp() time.Time
	Sequence() int
}

// Handler receives events matching a subscription. Handlers are invoked
// synchronously on the appending goroutine and must not block.
type Handler func(Event)

// Store records balancing events per run.
type Store interface {
	Append(runID string, event Event) error
	RunEvents(runID string) ([]Event, error)
	AllEvents() ([]Event, error)
	Subscribe(eventTypes []string, handler Handler)
}

type baseEvent struct {
	eventType string
	runID     string
	data      interface{}
	timestamp time.Time
	sequence  int
}

func (e baseEvent) Type() string         { return e.eventType }
func (e baseEvent) RunID() string        { return e.runID }
func (e baseEvent) Data() interface{}    { return e.data }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }
func (e baseEvent) Sequence() int        { return e.sequence }

// NewEvent creates an event carrying the given payload. The sequence number
// is assigned when the event is appended to a store.
func NewEvent(eventType, runID string, data interface{}) Event {
	return baseEvent{
		eventType: eventType,
		runID:     runID,
		data:      data,
		timestamp: time.Now(),
	}
}
