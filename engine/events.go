package engine

import "github.com/lixenwraith/vi-pong/components"

// EventType represents the type of game event
type EventType int

const (
	// EventPaddleHit signals the ball was returned by a paddle.
	// Side is the paddle's side.
	EventPaddleHit EventType = iota

	// EventWallBounce signals the ball bounced off the top or bottom wall
	EventWallBounce

	// EventPoint signals a point was scored. Side is the scorer.
	EventPoint

	// EventMatchWon signals a score reached the threshold. Side is the winner.
	EventMatchWon

	// EventMatchReset signals the win pause ended and the match restarted
	EventMatchReset
)

var eventTypeNames = [...]string{
	EventPaddleHit:  "paddle_hit",
	EventWallBounce: "wall_bounce",
	EventPoint:      "point",
	EventMatchWon:   "match_won",
	EventMatchReset: "match_reset",
}

func (t EventType) String() string {
	if int(t) >= 0 && int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// GameEvent is a single occurrence pushed by a system during a tick
type GameEvent struct {
	Type  EventType
	Side  components.Side
	Frame int64
}

// EventQueue collects events for one tick. Single producer and consumer: the loop goroutine.
type EventQueue struct {
	events []GameEvent
}

// NewEventQueue creates an empty queue
func NewEventQueue(capacity int) *EventQueue {
	return &EventQueue{events: make([]GameEvent, 0, capacity)}
}

// Push appends an event
func (q *EventQueue) Push(ev GameEvent) {
	q.events = append(q.events, ev)
}

// Consume returns pending events in FIFO order and empties the queue
func (q *EventQueue) Consume() []GameEvent {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]GameEvent, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}

// Len returns the number of pending events
func (q *EventQueue) Len() int {
	return len(q.events)
}
