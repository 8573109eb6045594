package comparisons

import (
	"math/rand"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/g-m-twostay/go-ds/FrequencyTable"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

const (
	benchmarkOpCount = 1 << 14
	benchmarkKeys    = 1 << 10
)

// ops is shared by all the benchmarks so that every counter sees the same workload. Non-negative values are
// increments of that key, negative values are decrements of ^key.
var ops = func() []int {
	rg := rand.New(rand.NewSource(0))
	a := make([]int, benchmarkOpCount)
	for i := range a {
		if k := rg.Intn(benchmarkKeys); rg.Intn(3) == 0 {
			a[i] = ^k
		} else {
			a[i] = k
		}
	}
	return a
}()

// counter is the common workload over the counting structures compared here.
type counter interface {
	inc(k int)
	dec(k int)
	freq(k int) int
}

func run(b *testing.B, mk func() counter) {
	b.Helper()
	for range b.N {
		c := mk()
		for _, op := range ops {
			if op >= 0 {
				c.inc(op)
			} else {
				c.dec(^op)
			}
		}
		for k := range benchmarkKeys {
			_ = c.freq(k)
		}
	}
}

type ftCounter struct {
	*FrequencyTable.FrequencyTable[int]
}

func (c ftCounter) inc(k int)      { c.Increment(k) }
func (c ftCounter) dec(k int)      { c.Decrement(k) }
func (c ftCounter) freq(k int) int { return c.FrequencyOf(k) }

type mapCounter map[int]int

func (c mapCounter) inc(k int) { c[k]++ }
func (c mapCounter) dec(k int) {
	if f := c[k]; f == 1 {
		delete(c, k)
	} else if f > 1 {
		c[k] = f - 1
	}
}
func (c mapCounter) freq(k int) int { return c[k] }

// haxmap and hashmap are concurrent maps, the read-modify-write here is only correct because the benchmark is
// single threaded.
type haxCounter struct {
	*haxmap.Map[int, int]
}

func (c haxCounter) inc(k int) {
	f, _ := c.Get(k)
	c.Set(k, f+1)
}
// dec keeps a key at 0 instead of deleting it: a Set after a Del of the same key can leave a stale value behind,
// see https://github.com/alphadose/haxmap/issues/32.
func (c haxCounter) dec(k int) {
	if f, ok := c.Get(k); ok && f > 0 {
		c.Set(k, f-1)
	}
}
func (c haxCounter) freq(k int) int {
	f, _ := c.Get(k)
	return f
}

type hashCounter struct {
	*hashmap.Map[int, int]
}

func (c hashCounter) inc(k int) {
	f, _ := c.Get(k)
	c.Set(k, f+1)
}
func (c hashCounter) dec(k int) {
	if f, ok := c.Get(k); ok && f == 1 {
		c.Del(k)
	} else if ok {
		c.Set(k, f-1)
	}
}
func (c hashCounter) freq(k int) int {
	f, _ := c.Get(k)
	return f
}

type kf struct{ k, f int }

type btreeCounter struct {
	*btree.BTreeG[kf]
}

func (c btreeCounter) inc(k int) {
	e, _ := c.Get(kf{k: k})
	c.ReplaceOrInsert(kf{k, e.f + 1})
}
func (c btreeCounter) dec(k int) {
	if e, ok := c.Get(kf{k: k}); ok && e.f == 1 {
		c.Delete(e)
	} else if ok {
		c.ReplaceOrInsert(kf{k, e.f - 1})
	}
}
func (c btreeCounter) freq(k int) int {
	e, _ := c.Get(kf{k: k})
	return e.f
}

type llrbItem kf

func (a llrbItem) Less(than llrb.Item) bool {
	return a.k < than.(llrbItem).k
}

type llrbCounter struct{ *llrb.LLRB }

func (c llrbCounter) inc(k int) {
	f := c.freq(k)
	c.ReplaceOrInsert(llrbItem{k, f + 1})
}
func (c llrbCounter) dec(k int) {
	if f := c.freq(k); f == 1 {
		c.Delete(llrbItem{k: k})
	} else if f > 1 {
		c.ReplaceOrInsert(llrbItem{k, f - 1})
	}
}
func (c llrbCounter) freq(k int) int {
	if it := c.Get(llrbItem{k: k}); it != nil {
		return it.(llrbItem).f
	}
	return 0
}

func counters() map[string]func() counter {
	return map[string]func() counter{
		"FrequencyTable": func() counter { return ftCounter{FrequencyTable.New[int]()} },
		"map":            func() counter { return mapCounter{} },
		"haxmap":         func() counter { return haxCounter{haxmap.New[int, int]()} },
		"hashmap":        func() counter { return hashCounter{hashmap.New[int, int]()} },
		"btree":          func() counter { return btreeCounter{btree.NewG(32, func(a, b kf) bool { return a.k < b.k })} },
		"llrb":           func() counter { return llrbCounter{llrb.New()} },
	}
}

// TestCounters_Agree makes sure the benchmarks compare structures that compute the same thing.
func TestCounters_Agree(t *testing.T) {
	all := counters()
	want := all["map"]()
	for _, op := range ops {
		if op >= 0 {
			want.inc(op)
		} else {
			want.dec(^op)
		}
	}
	for name, mk := range all {
		c := mk()
		for _, op := range ops {
			if op >= 0 {
				c.inc(op)
			} else {
				c.dec(^op)
			}
		}
		for k := range benchmarkKeys {
			if c.freq(k) != want.freq(k) {
				t.Errorf("%s: frequency of %d is %d, want %d", name, k, c.freq(k), want.freq(k))
			}
		}
	}
}

func BenchmarkFrequencyTable(b *testing.B) { run(b, counters()["FrequencyTable"]) }
func BenchmarkMap(b *testing.B)            { run(b, counters()["map"]) }
func BenchmarkHaxMap(b *testing.B)         { run(b, counters()["haxmap"]) }
func BenchmarkHashMap(b *testing.B)        { run(b, counters()["hashmap"]) }
func BenchmarkBTree(b *testing.B)          { run(b, counters()["btree"]) }
func BenchmarkLLRB(b *testing.B)           { run(b, counters()["llrb"]) }
