package engine

// EventHandler processes specific event types
type EventHandler interface {
	// HandleEvent processes a single event, called synchronously after the systems ran
	HandleEvent(m *Match, event GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// EventRouter dispatches events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch on the loop goroutine
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
type EventRouter struct {
	handlers map[EventType][]EventHandler
	queue    *EventQueue
}

// NewEventRouter creates a router attached to the given queue
func NewEventRouter(queue *EventQueue) *EventRouter {
	return &EventRouter{
		handlers: make(map[EventType][]EventHandler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *EventRouter) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes all pending events and routes them in FIFO order
func (r *EventRouter) DispatchAll(m *Match) {
	for _, ev := range r.queue.Consume() {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(m, ev)
		}
	}
}
