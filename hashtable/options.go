package hashtable

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

const (
	// DefaultCapacity is the number of buckets a table starts with.
	DefaultCapacity = 16

	// DefaultLoadFactor is the ratio of size to capacity at which
	// the table grows before adding a new key.
	DefaultLoadFactor = 0.75
)

// Option configures a table created by [New] or [NewFunc].
type Option func(*options)

type options struct {
	capacity   int
	loadFactor float64
	logger     *zap.Logger
}

func defaultOptions() options {
	return options{
		capacity:   DefaultCapacity,
		loadFactor: DefaultLoadFactor,
		logger:     zap.NewNop(),
	}
}

// WithCapacity sets the number of buckets the table starts with,
// and returns to after [Table.Clear].
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithLoadFactor sets the load-factor threshold. Before a new key
// is added, the table doubles its capacity if size/capacity is at
// or above f.
func WithLoadFactor(f float64) Option {
	return func(o *options) {
		o.loadFactor = f
	}
}

// WithLogger sets the logger used to record resizes.
// A nil logger discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

func (o *options) check() {
	if o.capacity < 1 {
		panic(fmt.Sprintf("hashtable: capacity must be at least 1, got %d", o.capacity))
	}
	if !(o.loadFactor > 0) || math.IsInf(o.loadFactor, 1) {
		panic(fmt.Sprintf("hashtable: load factor must be positive and finite, got %v", o.loadFactor))
	}
}
