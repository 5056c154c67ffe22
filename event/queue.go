package event

import (
	"github.com/lixenwraith/slime-survivor/parameter"
)

// EventQueue is a fixed ring of pending game events
// The tick goroutine both emits and drains it, so it carries no synchronization.
// When full, Push overwrites the oldest pending event and counts it as dropped
type EventQueue struct {
	ring    [parameter.EventQueueSize]GameEvent
	start   int
	n       int
	dropped uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends ev, evicting the oldest pending event when the ring is full
func (eq *EventQueue) Push(ev GameEvent) {
	if eq.n == len(eq.ring) {
		eq.ring[eq.start] = ev
		eq.start = (eq.start + 1) % len(eq.ring)
		eq.dropped++
		return
	}
	eq.ring[(eq.start+eq.n)%len(eq.ring)] = ev
	eq.n++
}

// Consume returns pending events oldest first and empties the queue; nil when empty
func (eq *EventQueue) Consume() []GameEvent {
	if eq.n == 0 {
		return nil
	}
	out := make([]GameEvent, eq.n)
	first := copy(out, eq.ring[eq.start:min(eq.start+eq.n, len(eq.ring))])
	copy(out[first:], eq.ring[:eq.n-first])
	clear(eq.ring[:])
	eq.start, eq.n = 0, 0
	return out
}

func (eq *EventQueue) Len() int { return eq.n }

// Dropped returns how many events were evicted unread since the last Reset
func (eq *EventQueue) Dropped() uint64 { return eq.dropped }

// Reset discards pending events and the drop count
func (eq *EventQueue) Reset() {
	clear(eq.ring[:])
	eq.start, eq.n, eq.dropped = 0, 0, 0
}
