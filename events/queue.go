package events

import (
	"github.com/lixenwraith/hyperspace/constants"
)

// EventQueue is a fixed-size ring buffer of game events
// Single producer (session) and single consumer (loop) on the simulation goroutine, no locking
//
// Overflow: oldest events are overwritten and counted in Dropped
type EventQueue struct {
	events  [constants.EventQueueSize]GameEvent
	head    uint64 // Read index
	tail    uint64 // Write index
	dropped uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, overwriting the oldest when full
func (eq *EventQueue) Push(event GameEvent) {
	eq.events[eq.tail&constants.EventBufferMask] = event
	eq.tail++
	if eq.tail-eq.head > constants.EventQueueSize {
		eq.head = eq.tail - constants.EventQueueSize
		eq.dropped++
	}
}

// Consume appends all pending events to dst in FIFO order and empties the queue
func (eq *EventQueue) Consume(dst []GameEvent) []GameEvent {
	for eq.head < eq.tail {
		idx := eq.head & constants.EventBufferMask
		dst = append(dst, eq.events[idx])
		eq.events[idx] = GameEvent{}
		eq.head++
	}
	return dst
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	return int(eq.tail - eq.head)
}

// Dropped returns how many events were overwritten before being consumed
func (eq *EventQueue) Dropped() uint64 {
	return eq.dropped
}
