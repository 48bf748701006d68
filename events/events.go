package events

// EventType identifies different types of events
type EventType string

// Event interface that all events must implement
type Event interface {
	Type() EventType
}

// Handler is a function that processes events
type Handler func(Event)

// Bus manages event subscriptions and dispatches. Discrete events (key
// presses, scheduled ticks) are Posted onto a FIFO queue and processed by
// Drain in strict arrival order; nothing reorders or coalesces them. The
// bus is not goroutine safe: everything happens on the game-loop
// goroutine, which is the only writer and the only reader.
type Bus struct {
	subscribers map[EventType][]Handler
	queue       []Event
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		subscribers: make(map[EventType][]Handler),
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

// Emit dispatches an event to all subscribed handlers immediately
func (b *Bus) Emit(event Event) {
	for _, handler := range b.subscribers[event.Type()] {
		handler(event)
	}
}

// Post appends an event to the queue for the next Drain
func (b *Bus) Post(event Event) {
	b.queue = append(b.queue, event)
}

// Drain dispatches every queued event in arrival order. Events posted by a
// handler while draining are processed in the same pass, after everything
// that arrived before them.
func (b *Bus) Drain() {
	for len(b.queue) > 0 {
		event := b.queue[0]
		b.queue = b.queue[1:]
		b.Emit(event)
	}
}

// Pending returns the number of queued events
func (b *Bus) Pending() int {
	return len(b.queue)
}
