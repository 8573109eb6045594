// Package FrequencyTable counts occurrences of keys, multiset style.
package FrequencyTable

import (
	"iter"

	Go_DS "github.com/g-m-twostay/go-ds"
	"golang.org/x/exp/constraints"
)

// Key types a FrequencyTable can count.
type Key interface {
	~string | constraints.Integer
}

// Entry is a key together with its positive frequency.
type Entry[K Key] struct {
	Key       K
	Frequency int
}

// FrequencyTable maps keys to positive frequencies. A key whose frequency drops to 0 is removed.
// Iteration follows the order in which the present keys were first incremented since they last became present.
//
// slots keeps entries in that order. Removed entries stay in slots as tombstones (Frequency==0) until more than
// half of the slots are dead, then slots is compacted.
type FrequencyTable[K Key] struct {
	index map[K]int //key to position in slots
	slots []Entry[K]
	dead  int
	total int
}

func New[K Key]() *FrequencyTable[K] {
	return &FrequencyTable[K]{index: make(map[K]int)}
}

// Size is the number of keys whose frequency is positive.
func (u *FrequencyTable[K]) Size() int {
	return len(u.index)
}

func (u *FrequencyTable[K]) Empty() bool {
	return len(u.index) == 0
}

// Total is the sum of the frequencies of all the keys.
func (u *FrequencyTable[K]) Total() int {
	return u.total
}

// Clear empties the table.
// Time: O(1); Space: O(1)
func (u *FrequencyTable[K]) Clear() {
	u.index = make(map[K]int)
	u.slots, u.dead, u.total = nil, 0, 0
}

// Increment the frequency of key by 1, adding it with frequency 1 if absent.
// Time: O(1) amortized; Space: O(1) amortized
func (u *FrequencyTable[K]) Increment(key K) {
	if i, ok := u.index[key]; ok {
		u.slots[i].Frequency++
	} else {
		u.index[key] = len(u.slots)
		u.slots = append(u.slots, Entry[K]{key, 1})
	}
	u.total++
}

// Decrement the frequency of key by 1 if it's positive, removing the key when it reaches 0.
// Decrementing an absent key does nothing.
// Time: O(1) amortized; Space: O(1)
func (u *FrequencyTable[K]) Decrement(key K) {
	i, ok := u.index[key]
	if !ok {
		return
	}
	u.total--
	if u.slots[i].Frequency--; u.slots[i].Frequency == 0 {
		delete(u.index, key)
		u.slots[i] = Entry[K]{}
		if u.dead++; u.dead > len(u.slots)/2 {
			u.compact()
		}
	}
}

// compact drops the tombstones, keeping the order of live slots.
func (u *FrequencyTable[K]) compact() {
	live := u.slots[:0]
	for _, e := range u.slots {
		if e.Frequency > 0 {
			u.index[e.Key] = len(live)
			live = append(live, e)
		}
	}
	clear(u.slots[len(live):])
	u.slots, u.dead = live, 0
}

// FrequencyOf key, 0 if absent.
// Time: O(1); Space: O(1)
func (u *FrequencyTable[K]) FrequencyOf(key K) int {
	if i, ok := u.index[key]; ok {
		return u.slots[i].Frequency
	}
	return 0
}

// All entries in insertion order.
func (u *FrequencyTable[K]) All() iter.Seq[Entry[K]] {
	return func(yield func(Entry[K]) bool) {
		for _, e := range u.slots {
			if e.Frequency > 0 && !yield(e) {
				return
			}
		}
	}
}

// Pairs is All as key, frequency pairs.
func (u *FrequencyTable[K]) Pairs() iter.Seq2[K, int] {
	return func(yield func(K, int) bool) {
		for _, e := range u.slots {
			if e.Frequency > 0 && !yield(e.Key, e.Frequency) {
				return
			}
		}
	}
}

func (u *FrequencyTable[K]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, e := range u.slots {
			if e.Frequency > 0 && !yield(e.Key) {
				return
			}
		}
	}
}

// ToArray returns the entries in insertion order.
// Time: O(N); Space: O(N)
func (u *FrequencyTable[K]) ToArray() []Entry[K] {
	return Go_DS.ToArray[Entry[K]](u)
}
