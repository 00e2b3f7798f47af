package game

import "github.com/vovakirdan/tui-flappy/internal/core"

// EventKind tags a gameplay event.
type EventKind int

const (
	EventFlap EventKind = iota
	EventScored
	EventDied
)

func (k EventKind) String() string {
	switch k {
	case EventFlap:
		return "Flap"
	case EventScored:
		return "Scored"
	case EventDied:
		return "Died"
	default:
		return "Unknown"
	}
}

// Event is raised by a gameplay system and consumed by the feedback
// systems within the same tick.
type Event struct {
	Kind EventKind
	Pos  core.Vec2 // Actor position for Flap and Died
}

// EventQueue collects the events of one tick.
type EventQueue struct {
	events []Event
}

// Push appends an event.
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Events returns the queued events. The slice must not be modified.
func (q *EventQueue) Events() []Event {
	return q.events
}

// Count returns how many queued events have the given kind.
func (q *EventQueue) Count(kind EventKind) int {
	n := 0
	for _, e := range q.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Reset empties the queue, keeping its storage.
func (q *EventQueue) Reset() {
	q.events = q.events[:0]
}
