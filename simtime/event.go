// Package simtime implements the unit/arbitrary-delay discrete-event
// timing simulator: a global min-priority queue of events keyed on
// (fire_time, gate_address), driving the circuit through a sequence of
// input stimuli and producing a dense, time-indexed signal trace.
package simtime

import "container/heap"

// Event is a scheduled "commit gate Address's pending output" action,
// ordered first by Time and then by Address: a binary min-heap keyed on
// (fire_time, gate_address).
type Event struct {
	Time    int
	Address int
}

// eventQueue is a container/heap priority queue of Events: the direct
// idiomatic-Go equivalent of a binary min-heap, not a stdlib fallback of
// convenience.
type eventQueue []Event

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool {
	if q[i].Time != q[j].Time {
		return q[i].Time < q[j].Time
	}
	return q[i].Address < q[j].Address
}

func (q eventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *eventQueue) Push(x any) {
	*q = append(*q, x.(Event))
}

func (q *eventQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

var _ heap.Interface = (*eventQueue)(nil)
