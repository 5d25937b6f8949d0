// Package queue provides a generic priority queue implementation based on the internal heap
package queue

// Priority queue based on
// https://golang.org/pkg/container/heap/#example__priorityQueue

import (
	"container/heap"
	"fmt"
)

// item is a container for holding values with a priority in the queue
type item[E any] struct {
	value E
	// seq records insertion order so that equal priorities pop first in, first out
	seq uint64
}

// innerPriorityQueue implements heap.Interface and holds Items
type innerPriorityQueue[E any] struct {
	items    []item[E]
	lessFunc func(E, E) bool
}

// PriorityQueue implemented using a heap. The item for which lessFunc
// reports true against every other item is served first; ties are served in
// insertion order.
type PriorityQueue[E any] struct {
	ipq innerPriorityQueue[E]
	seq uint64
}

// NewPriorityQueue creates a new heap based PriorityQueue using lessFunc as the comparison function
func NewPriorityQueue[E any](lessFunc func(E, E) bool) *PriorityQueue[E] {
	var pq PriorityQueue[E]
	pq.ipq.items = make([]item[E], 0)
	pq.ipq.lessFunc = lessFunc
	heap.Init(&pq.ipq)
	return &pq
}

// Len returns the number of items in the queue
func (pq *PriorityQueue[E]) Len() int {
	return pq.ipq.Len()
}

// Push adds x to the queue
func (pq *PriorityQueue[E]) Push(x E) {
	heap.Push(&pq.ipq, item[E]{value: x, seq: pq.seq})
	pq.seq++
}

// Pop removes and returns the next item in the queue
func (pq *PriorityQueue[E]) Pop() E {
	return heap.Pop(&pq.ipq).(item[E]).value
}

// Peek returns the next item in the queue without removing it
func (pq *PriorityQueue[E]) Peek() E {
	return pq.ipq.items[0].value
}

// PeekUpdate reorders the backing heap after the value returned by Peek changed
func (pq *PriorityQueue[E]) PeekUpdate() {
	heap.Fix(&pq.ipq, 0)
}

// Drain pops every item and returns them in priority order
func (pq *PriorityQueue[E]) Drain() []E {
	out := make([]E, 0, pq.Len())
	for pq.Len() > 0 {
		out = append(out, pq.Pop())
	}
	return out
}

// String prints the queue contents in heap order
func (pq *PriorityQueue[E]) String() string {
	s := "["
	for i := range pq.ipq.items {
		s += fmt.Sprint(pq.ipq.items[i].value, ", ")
	}
	return s + "]"
}

func (pq *innerPriorityQueue[E]) Len() int {
	return len(pq.items)
}

func (pq *innerPriorityQueue[E]) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if pq.lessFunc(a.value, b.value) {
		return true
	}
	if pq.lessFunc(b.value, a.value) {
		return false
	}
	return a.seq < b.seq
}

func (pq *innerPriorityQueue[E]) Swap(i, j int) {
	pq.items[i], pq.items[j] = pq.items[j], pq.items[i]
}

func (pq *innerPriorityQueue[E]) Push(x any) {
	pq.items = append(pq.items, x.(item[E]))
}

func (pq *innerPriorityQueue[E]) Pop() any {
	old := pq.items
	n := len(old)
	it := old[n-1]
	pq.items = old[0 : n-1]
	return it
}
