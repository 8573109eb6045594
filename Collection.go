package Go_DS

import "iter"

// Collection is the capability set shared by every container in this module.
// Implementations are single-owner values: none of the receivers are safe for
// concurrent use, guard them externally if needed.
type Collection[E any] interface {
	// Size is the number of elements in the collection. O(1).
	Size() int
	// Empty reports whether Size()==0. O(1).
	Empty() bool
	// Clear resets the collection to its empty state. Underlying storage may be
	// released lazily.
	Clear()
	// ToArray returns a new slice holding all the elements in iteration order.
	ToArray() []E
	// All returns a sequence over the elements. Each call to the returned
	// function is a fresh traversal. Iterating never mutates the collection, but
	// the collection must not be modified while the traversal is running.
	All() iter.Seq[E]
}

// ToArray collects c.All() into a slice of length c.Size().
// Time: O(N); Space: O(N)
func ToArray[E any](c Collection[E]) []E {
	arr := make([]E, 0, c.Size())
	for e := range c.All() {
		arr = append(arr, e)
	}
	return arr
}
