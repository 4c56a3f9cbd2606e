// Package frontier provides the min-priority queue shared by the Dijkstra and
// A* engines.
//
// An Entry is ordered by Cost first and by insertion sequence second; ID and
// Path never take part in the comparison. Equal-cost entries therefore pop in
// the order they were pushed, which keeps every search deterministic.
package frontier

import (
	"container/heap"

	"github.com/katalvlaran/transitpath/core"
)

// Entry is one queued candidate.
type Entry struct {
	Cost float64   // priority: g for Dijkstra, g+h for A*
	G    float64   // accumulated path cost (equals Cost for Dijkstra)
	Seq  uint64    // insertion order, the tie-breaker
	ID   string    // station being reached
	Path core.Path // stations from start to ID, inclusive
}

// Less is the total order on entries: by Cost, then by Seq.
func (e *Entry) Less(o *Entry) bool {
	if e.Cost != o.Cost {
		return e.Cost < o.Cost
	}

	return e.Seq < o.Seq
}

// Queue is a min-heap of *Entry. Use Push/Pop, not the heap.Interface methods.
type Queue struct {
	items entries
	seq   uint64
}

// New returns an empty queue with room for capacity entries.
func New(capacity int) *Queue {
	return &Queue{items: make(entries, 0, capacity)}
}

// Len returns the number of queued entries.
func (q *Queue) Len() int { return len(q.items) }

// Push stamps e with the next sequence number and queues it.
func (q *Queue) Push(e *Entry) {
	e.Seq = q.seq
	q.seq++
	heap.Push(&q.items, e)
}

// Pop removes and returns the smallest entry. It panics on an empty queue.
func (q *Queue) Pop() *Entry {
	return heap.Pop(&q.items).(*Entry)
}

// Extend returns a fresh path equal to p followed by id. p is never aliased,
// so sibling entries can extend the same prefix safely.
func Extend(p core.Path, id string) core.Path {
	out := make(core.Path, len(p)+1)
	copy(out, p)
	out[len(p)] = id

	return out
}

// entries implements heap.Interface.
type entries []*Entry

func (h entries) Len() int            { return len(h) }
func (h entries) Less(i, j int) bool  { return h[i].Less(h[j]) }
func (h entries) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *entries) Push(x interface{}) { *h = append(*h, x.(*Entry)) }

func (h *entries) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}
