package Queues

import (
	"iter"

	Go_DS "github.com/g-m-twostay/go-ds"
)

type node[E any] struct {
	v  E
	nx *node[E]
}

// SLLQueue is a Queue backed by a singly-linked list. bottom is the oldest node and
// top the newest; both are nil iff sz==0, otherwise bottom reaches top in sz-1 hops.
// Nodes never leave the queue.
type SLLQueue[E any] struct {
	bottom, top *node[E]
	sz          int
}

func NewSLLQueue[E any]() *SLLQueue[E] {
	return &SLLQueue[E]{}
}

func (q *SLLQueue[E]) Size() int {
	return q.sz
}

func (q *SLLQueue[E]) Empty() bool {
	return q.sz == 0
}

// Clear drops the whole chain at once, the collector takes care of the nodes.
// Time: O(1); Space: O(1)
func (q *SLLQueue[E]) Clear() {
	q.bottom, q.top, q.sz = nil, nil, 0
}

// Enqueue item at the top. Enqueue can't fail, so a non-empty queue without a top node panics with an
// *Go_DS.ImplementationError.
// Time: O(1); Space: O(1)
func (q *SLLQueue[E]) Enqueue(item E) {
	n := &node[E]{v: item}
	if q.sz == 0 {
		q.bottom, q.top = n, n
	} else {
		if q.top == nil {
			panic(Go_DS.NewImplementationError("non-empty queue has no top node"))
		}
		q.top.nx = n
		q.top = n
	}
	q.sz++
}

// Dequeue the bottom element.
// Time: O(1); Space: O(1)
func (q *SLLQueue[E]) Dequeue() (E, error) {
	if q.sz == 0 {
		return *new(E), &Go_DS.EmptyCollectionError{}
	}
	if q.bottom == nil {
		return *new(E), Go_DS.NewImplementationError("non-empty queue has no bottom node")
	}
	b := q.bottom
	q.bottom = b.nx
	b.nx = nil
	if q.sz--; q.sz == 0 {
		q.top = nil
	}
	return b.v, nil
}

// Peek at the bottom element.
// Time: O(1); Space: O(1)
func (q *SLLQueue[E]) Peek() (E, error) {
	if q.sz == 0 {
		return *new(E), &Go_DS.EmptyCollectionError{}
	}
	if q.bottom == nil {
		return *new(E), Go_DS.NewImplementationError("non-empty queue has no bottom node")
	}
	return q.bottom.v, nil
}

// All elements from bottom to top.
func (q *SLLQueue[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for cur := q.bottom; cur != nil; cur = cur.nx {
			if !yield(cur.v) {
				return
			}
		}
	}
}

// ToArray returns the elements in dequeue order.
// Time: O(N); Space: O(N)
func (q *SLLQueue[E]) ToArray() []E {
	return Go_DS.ToArray[E](q)
}
