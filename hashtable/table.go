// Package hashtable implements a hash table with separate chaining
// that maps unique keys to values.
//
// A table starts with a fixed number of buckets (16 by default) and
// doubles its capacity whenever adding a new key would push the load
// factor (entries per bucket) above its threshold (0.75 by default),
// so a default table grows as its thirteenth key arrives. Keys
// must be hashable, comparable for equality and totally ordered: the
// order is used by range lookup and sorted enumeration, both of which
// scan the whole table.
//
// A Table is not safe for concurrent mutation. Read-only operations
// may be called concurrently with each other.
package hashtable

import (
	"cmp"
	"hash/maphash"
	"iter"
	"slices"

	"go.uber.org/zap"
)

// Table is a hash-table-based mapping from keys K to values V.
// Each bucket holds the chain of entries whose key hashes to it
// under the current capacity.
//
// Just as with map[K]V, a nil *Table is a valid empty table for
// reading.
type Table[K, V any] struct {
	ops     KeyOps[K]
	seed    maphash.Seed
	buckets [][]entry[K, V]
	size    int
	opts    options
}

// entry is an association in a bucket chain. The full hash of the key
// is kept so that a resize only has to reduce it modulo the new
// capacity.
type entry[K, V any] struct {
	hash uint64
	key  K
	val  V
}

// New returns an empty table for an ordered key type.
func New[K cmp.Ordered, V any](opts ...Option) *Table[K, V] {
	return NewFunc[K, V](OrderedKeys[K]{}, opts...)
}

// NewFunc returns an empty table that hashes, compares and orders
// keys with ops.
func NewFunc[K, V any](ops KeyOps[K], opts ...Option) *Table[K, V] {
	if ops == nil {
		panic("hashtable: NewFunc called with nil KeyOps")
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.check()
	return &Table[K, V]{
		ops:     ops,
		seed:    maphash.MakeSeed(),
		buckets: make([][]entry[K, V], o.capacity),
		opts:    o,
	}
}

// Len returns the number of entries in the table.
func (t *Table[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Cap returns the number of buckets in the table.
func (t *Table[K, V]) Cap() int {
	if t == nil {
		return 0
	}
	return len(t.buckets)
}

// LoadFactor returns the ratio of entries to buckets.
func (t *Table[K, V]) LoadFactor() float64 {
	if t.Cap() == 0 {
		return 0
	}
	return float64(t.size) / float64(len(t.buckets))
}

func (t *Table[K, V]) hashKey(k K) uint64 {
	var h maphash.Hash
	h.SetSeed(t.seed)
	t.ops.Hash(&h, k)
	return h.Sum64()
}

func (t *Table[K, V]) index(hash uint64) int {
	return int(hash % uint64(len(t.buckets)))
}

// lookup hashes k and returns the hash, the index of its bucket and
// the position of its entry within that bucket's chain, or -1 if k
// is not present.
func (t *Table[K, V]) lookup(k K) (hash uint64, b, i int) {
	hash = t.hashKey(k)
	b = t.index(hash)
	for j, e := range t.buckets[b] {
		if e.hash == hash && t.ops.Equal(k, e.key) {
			return hash, b, j
		}
	}
	return hash, b, -1
}

// Find returns the value associated with k and reports whether it
// was present. Only the chain in k's bucket is searched.
func (t *Table[K, V]) Find(k K) (v V, found bool) {
	if t.Len() == 0 {
		return v, false
	}
	_, b, i := t.lookup(k)
	if i < 0 {
		return v, false
	}
	return t.buckets[b][i].val, true
}

// Insert associates v with k.
//
// If k is already present its value is overwritten: Insert returns
// the previous value and replaced is true, and the size is unchanged.
// Otherwise a new entry is added, first doubling the capacity if the
// extra entry would take the load factor past the table's threshold.
func (t *Table[K, V]) Insert(k K, v V) (old V, replaced bool) {
	if t == nil {
		panic("(*Table).Insert called on nil *Table")
	}
	hash, b, i := t.lookup(k)
	if i >= 0 {
		e := &t.buckets[b][i]
		old, e.val = e.val, v
		return old, true
	}
	if t.overloaded(t.size+1, len(t.buckets)) {
		t.resize()
		b = t.index(hash)
	}
	t.buckets[b] = append(t.buckets[b], entry[K, V]{
		hash: hash,
		key:  k,
		val:  v,
	})
	t.size++
	return old, false
}

// Remove deletes the entry for k, if present, returning its value
// and reporting whether it was found. Removing an absent key does
// nothing.
func (t *Table[K, V]) Remove(k K) (old V, removed bool) {
	if t.Len() == 0 {
		return old, false
	}
	_, b, i := t.lookup(k)
	if i < 0 {
		return old, false
	}
	chain := t.buckets[b]
	old = chain[i].val
	// Chain order is not significant, so fill the hole from the end.
	last := len(chain) - 1
	chain[i] = chain[last]
	chain[last] = entry[K, V]{}
	if last == 0 {
		t.buckets[b] = nil
	} else {
		t.buckets[b] = chain[:last]
	}
	t.size--
	return old, true
}

// FindRange returns every key k with lo <= k <= hi in the table's key
// order. Range membership has nothing to do with hash placement, so
// every bucket is scanned. The keys are returned in no particular
// order; the result is empty if lo > hi.
func (t *Table[K, V]) FindRange(lo, hi K) []K {
	var keys []K
	for k := range t.All() {
		if t.ops.Compare(lo, k) <= 0 && t.ops.Compare(k, hi) <= 0 {
			keys = append(keys, k)
		}
	}
	return keys
}

// Keys returns all the keys in the table in no particular order.
func (t *Table[K, V]) Keys() []K {
	keys := make([]K, 0, t.Len())
	for k := range t.All() {
		keys = append(keys, k)
	}
	return keys
}

// SortedKeys returns all the keys in the table in ascending order.
func (t *Table[K, V]) SortedKeys() []K {
	keys := t.Keys()
	if len(keys) > 1 {
		slices.SortFunc(keys, t.ops.Compare)
	}
	return keys
}

// All returns an iterator over (key, value) pairs in bucket order.
//
// The table must not be modified while the iteration is in progress.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t == nil {
			return
		}
		for _, chain := range t.buckets {
			for _, e := range chain {
				if !yield(e.key, e.val) {
					return
				}
			}
		}
	}
}

// Clone returns a copy of t with the same capacity and contents
// that shares no storage with t. Values are copied by assignment.
func (t *Table[K, V]) Clone() *Table[K, V] {
	if t == nil {
		return nil
	}
	buckets := make([][]entry[K, V], len(t.buckets))
	for i, chain := range t.buckets {
		buckets[i] = slices.Clone(chain)
	}
	return &Table[K, V]{
		ops:     t.ops,
		seed:    t.seed,
		buckets: buckets,
		size:    t.size,
		opts:    t.opts,
	}
}

// Clear removes every entry and returns the table to its initial
// capacity.
func (t *Table[K, V]) Clear() {
	if t == nil {
		return
	}
	t.buckets = make([][]entry[K, V], t.opts.capacity)
	t.size = 0
}

// overloaded reports whether size entries in n buckets would exceed
// the load-factor threshold.
func (t *Table[K, V]) overloaded(size, n int) bool {
	return float64(size)/float64(n) > t.opts.loadFactor
}

// resize doubles the capacity, more than once if one entry more than
// the current size would still overload it, and moves every entry to
// its bucket under the new capacity. The new bucket array is
// completely built before it replaces the old one.
func (t *Table[K, V]) resize() {
	n := 2 * len(t.buckets)
	for t.overloaded(t.size+1, n) {
		n *= 2
	}
	buckets := make([][]entry[K, V], n)
	for _, chain := range t.buckets {
		for _, e := range chain {
			b := int(e.hash % uint64(n))
			buckets[b] = append(buckets[b], e)
		}
	}
	t.opts.logger.Debug("hash table resized",
		zap.Int("from", len(t.buckets)),
		zap.Int("to", n),
		zap.Int("size", t.size))
	t.buckets = buckets
}
