package hashtable

import (
	"math/rand"
	"testing"

	"github.com/go-quicktest/qt"
)

// checkInvariants verifies that every entry sits in the bucket its
// hash selects under the current capacity, that no key is stored
// twice, and that the recorded size matches the chains.
func checkInvariants[K comparable, V any](t *testing.T, tab *Table[K, V]) {
	t.Helper()
	seen := make(map[K]bool)
	n := 0
	for b, chain := range tab.buckets {
		for _, e := range chain {
			qt.Assert(t, qt.Equals(e.hash, tab.hashKey(e.key)))
			qt.Assert(t, qt.Equals(tab.index(e.hash), b), qt.Commentf("key %v", e.key))
			qt.Assert(t, qt.IsFalse(seen[e.key]), qt.Commentf("duplicate key %v", e.key))
			seen[e.key] = true
			n++
		}
	}
	qt.Assert(t, qt.Equals(tab.size, n))
	qt.Assert(t, qt.IsTrue(tab.LoadFactor() <= tab.opts.loadFactor))
}

func TestInvariantsUnderRandomOperations(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	tab := New[int, int](WithCapacity(3))
	for i := 0; i < 5000; i++ {
		k := rnd.Intn(500)
		switch rnd.Intn(3) {
		case 0, 1:
			tab.Insert(k, i)
		case 2:
			tab.Remove(k)
		}
		if i%100 == 0 {
			checkInvariants(t, tab)
		}
	}
	checkInvariants(t, tab)
}

func TestResizeKeepsPlacement(t *testing.T) {
	tab := New[string, int]()
	for i, s := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
		tab.Insert(s, i)
	}
	qt.Assert(t, qt.Equals(tab.Cap(), 16))
	checkInvariants(t, tab)

	tab.resize()
	qt.Assert(t, qt.Equals(tab.Cap(), 32))
	qt.Assert(t, qt.Equals(tab.Len(), 12))
	checkInvariants(t, tab)
}

func TestCloneSharesNoChains(t *testing.T) {
	tab := New[int, string](WithCapacity(1), WithLoadFactor(100))
	for i := range 10 {
		tab.Insert(i, "x")
	}
	c := tab.Clone()
	qt.Assert(t, qt.Not(qt.Equals(&c.buckets[0][0], &tab.buckets[0][0])))
	checkInvariants(t, c)
}
