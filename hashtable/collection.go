package hashtable

// Collection is a mapping from unique keys to values whose keys
// can also be enumerated and queried by range.
type Collection[K, V any] interface {
	// Insert associates val with key, reporting whether an
	// existing value was overwritten.
	Insert(key K, val V) (old V, replaced bool)

	// Remove deletes key, reporting whether it was present.
	Remove(key K) (old V, removed bool)

	// Find returns the value for key and whether it was present.
	Find(key K) (val V, found bool)

	// FindRange returns the keys k with lo <= k <= hi.
	FindRange(lo, hi K) []K

	// Keys returns all keys in unspecified order.
	Keys() []K

	// SortedKeys returns all keys in ascending order.
	SortedKeys() []K

	// Len returns the number of keys.
	Len() int
}

var _ Collection[string, int] = (*Table[string, int])(nil)
