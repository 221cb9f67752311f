package hashtable

import "iter"

// Ascend returns an iterator over (key, value) pairs in ascending key
// order. The entries are heapified when iteration starts and popped
// one at a time, so stopping after k pairs costs O(n + k log n).
//
// The table must not be modified while the iteration is in progress.
func (t *Table[K, V]) Ascend() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t.Len() == 0 {
			return
		}
		h := &entryHeap[K, V]{
			items:   make([]entry[K, V], 0, t.size),
			compare: t.ops.Compare,
		}
		for _, chain := range t.buckets {
			h.items = append(h.items, chain...)
		}
		h.init()
		for len(h.items) > 0 {
			e := h.pop()
			if !yield(e.key, e.val) {
				return
			}
		}
	}
}

// entryHeap is a binary min-heap of entries ordered by key.
type entryHeap[K, V any] struct {
	items   []entry[K, V]
	compare func(K, K) int
}

func (h *entryHeap[K, V]) less(i, j int) bool {
	return h.compare(h.items[i].key, h.items[j].key) < 0
}

func (h *entryHeap[K, V]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

// init establishes the heap invariant in O(n).
func (h *entryHeap[K, V]) init() {
	n := len(h.items)
	for i := n/2 - 1; i >= 0; i-- {
		h.down(i, n)
	}
}

// pop removes and returns the entry with the smallest key.
func (h *entryHeap[K, V]) pop() entry[K, V] {
	n := len(h.items) - 1
	h.swap(0, n)
	h.down(0, n)
	e := h.items[n]
	h.items[n] = entry[K, V]{}
	h.items = h.items[:n]
	return e
}

func (h *entryHeap[K, V]) down(i, n int) {
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && h.less(j2, j1) {
			j = j2 // right child
		}
		if !h.less(j, i) {
			break
		}
		h.swap(i, j)
		i = j
	}
}
