// Package lazy provides a lazily-initialized value slot.
//
// A Value computes its contents on first access and returns the stored
// result on every access after that. There is no invalidation; once
// computed, the value is fixed for the lifetime of the slot.
//
// A Value is deliberately unsynchronized. Concurrent first access from
// multiple goroutines may run the computation more than once; the last
// write wins and later reads observe a stored value.
package lazy

// Value is a lazy slot for a single computed value
type Value[T any] struct {
	compute func() T
	filled  bool
	value   T
}

// New creates an empty slot backed by the given computation
func New[T any](compute func() T) *Value[T] {
	if compute == nil {
		panic("lazy: compute function cannot be nil")
	}
	return &Value[T]{compute: compute}
}

// Of creates a pre-filled slot holding v
func Of[T any](v T) *Value[T] {
	return &Value[T]{filled: true, value: v}
}

// Get returns the stored value, computing it on first access
func (l *Value[T]) Get() T {
	if !l.filled {
		l.value = l.compute()
		l.filled = true
	}
	return l.value
}

// Done reports whether the slot has been filled
func (l *Value[T]) Done() bool {
	return l.filled
}
