package Queues

import Go_DS "github.com/g-m-twostay/go-ds"

// Queue is a FIFO Go_DS.Collection. Iteration goes from the oldest element to the
// newest one, i.e. in the order Dequeue would return them.
type Queue[E any] interface {
	Go_DS.Collection[E]
	// Enqueue item as the newest element. Never fails.
	Enqueue(item E)
	// Dequeue removes and returns the oldest element. Returns *Go_DS.EmptyCollectionError
	// if the queue is empty.
	Dequeue() (E, error)
	// Peek returns the oldest element without removing it. Fails like Dequeue.
	Peek() (E, error)
}
