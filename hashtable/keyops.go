package hashtable

import (
	"cmp"
	"hash/maphash"
)

// A Hasher defines a hash function and an equivalence relation over
// keys of type K. Keys that are Equal must produce the same hash.
type Hasher[K any] interface {
	Hash(*maphash.Hash, K)
	Equal(x, y K) bool
}

// KeyOps adds a total order to [Hasher]. Compare returns a negative
// number when x sorts before y, a positive number when it sorts after,
// and zero for keys that are Equal.
//
// The order is used only by [Table.FindRange], [Table.SortedKeys]
// and [Table.Ascend]; it plays no part in bucket placement.
type KeyOps[K any] interface {
	Hasher[K]
	Compare(x, y K) int
}

// OrderedKeys is the [KeyOps] implementation used by [New].
// Equal is consistent with x == y and Compare with [cmp.Compare].
//
// As with Go maps, a floating-point NaN key is never Equal to
// itself, so it can be inserted but never found.
type OrderedKeys[K cmp.Ordered] struct {
	_ [0]func(K) // disallow comparison, and conversion between OrderedKeys[X] and OrderedKeys[Y]
}

func (OrderedKeys[K]) Hash(h *maphash.Hash, k K) { maphash.WriteComparable(h, k) }
func (OrderedKeys[K]) Equal(x, y K) bool         { return x == y }
func (OrderedKeys[K]) Compare(x, y K) int        { return cmp.Compare(x, y) }
