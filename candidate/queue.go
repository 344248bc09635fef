package candidate

import (
	"container/heap"
	"slices"
)

// Queue is a max-priority queue of candidates ranked by Candidate.Compare.
// The zero value is an empty queue.
type Queue struct {
	items queueItems
}

type queueItems []Candidate

var _ heap.Interface = &queueItems{}

func (q queueItems) Len() int           { return len(q) }
func (q queueItems) Less(i, j int) bool { return q[i].Compare(q[j]) < 0 }
func (q queueItems) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

func (q *queueItems) Push(x any) {
	*q = append(*q, x.(Candidate))
}

func (q *queueItems) Pop() any {
	old := *q
	n := len(old) - 1
	c := old[n]
	*q = old[:n]
	return c
}

func NewQueue(cs ...Candidate) *Queue {
	q := &Queue{items: slices.Clone(cs)}
	heap.Init(&q.items)
	return q
}

func (q *Queue) Len() int {
	return len(q.items)
}

// Pop removes and returns the highest ranked candidate.
func (q *Queue) Pop() (Candidate, bool) {
	if len(q.items) == 0 {
		return Candidate{}, false
	}
	return heap.Pop(&q.items).(Candidate), true
}

// All returns a ranked snapshot of the queue. The queue is not modified.
func (q *Queue) All() []Candidate {
	res := slices.Clone(q.items)
	slices.SortFunc(res, Candidate.Compare)
	return res
}
