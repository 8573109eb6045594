package Queues

import (
	"iter"

	Go_DS "github.com/g-m-twostay/go-ds"
)

// ArrayQueue is a Queue backed by a circular buffer. content[head] is the oldest
// element and content[(head+sz-1)%len(content)] the newest.
type ArrayQueue[E any] struct {
	sz, head int
	content  []E
}

// NewArrayQueue creates an ArrayQueue that holds initCap elements before it grows.
func NewArrayQueue[E any](initCap int) *ArrayQueue[E] {
	return &ArrayQueue[E]{content: make([]E, max(initCap, 0))}
}

func (q *ArrayQueue[E]) Empty() bool {
	return q.sz == 0
}

func (q *ArrayQueue[E]) Size() int {
	return q.sz
}

// Cap is the number of elements the queue holds before it has to grow.
func (q *ArrayQueue[E]) Cap() int {
	return len(q.content)
}

func (q *ArrayQueue[E]) at(i int) int {
	return (q.head + i) % len(q.content)
}

// resize moves the elements to a new buffer of length newLen>=q.sz, unwrapping them so that head becomes 0.
func (q *ArrayQueue[E]) resize(newLen int) {
	nc := make([]E, newLen)
	if q.sz > 0 {
		if tail := q.head + q.sz; tail <= len(q.content) {
			copy(nc, q.content[q.head:tail])
		} else {
			n := copy(nc, q.content[q.head:])
			copy(nc[n:], q.content[:tail-len(q.content)])
		}
	}
	q.content, q.head = nc, 0
}

// Shrink the buffer to fit the current elements.
// Time: O(N); Space: O(N)
func (q *ArrayQueue[E]) Shrink() {
	q.resize(q.sz)
}

// Clear zeroes the buffer so the removed elements can be collected, capacity is kept.
func (q *ArrayQueue[E]) Clear() {
	clear(q.content)
	q.head, q.sz = 0, 0
}

// Enqueue item, growing the buffer by 3/2 when it's full.
// Time: O(1) amortized; Space: O(1) amortized
func (q *ArrayQueue[E]) Enqueue(item E) {
	if q.sz == len(q.content) {
		q.resize(max(q.sz*3/2, q.sz+1))
	}
	q.content[q.at(q.sz)] = item
	q.sz++
}

// Dequeue the oldest element and zero its slot.
// Time: O(1); Space: O(1)
func (q *ArrayQueue[E]) Dequeue() (E, error) {
	if q.sz == 0 {
		return *new(E), &Go_DS.EmptyCollectionError{}
	}
	t := q.content[q.head]
	q.content[q.head] = *new(E)
	q.head = q.at(1)
	q.sz--
	return t, nil
}

func (q *ArrayQueue[E]) Peek() (E, error) {
	if q.sz == 0 {
		return *new(E), &Go_DS.EmptyCollectionError{}
	}
	return q.content[q.head], nil
}

func (q *ArrayQueue[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for i := range q.sz {
			if !yield(q.content[q.at(i)]) {
				return
			}
		}
	}
}

func (q *ArrayQueue[E]) ToArray() []E {
	return Go_DS.ToArray[E](q)
}
