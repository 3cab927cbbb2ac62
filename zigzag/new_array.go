package zigzag

import "cmp"

// New returns an empty unbounded array. sizeHint is advisory only; the
// structure never rejects growth based on it.
func New[K cmp.Ordered, V any](sizeHint int) *Array[K, V] {
	return &Array[K, V]{entries: newTree[K, V]()}
}

// NewBounded returns an empty array that refuses to grow beyond maxKeys keys.
// Operations that would add a key past the bound fail with ErrOutOfSpace.
func NewBounded[K cmp.Ordered, V any](maxKeys int) *Array[K, V] {
	return &Array[K, V]{entries: newTree[K, V](), maxKeys: maxKeys}
}

// Size returns the number of keys. The trailing value is not counted.
func (a *Array[K, V]) Size() int {
	return a.entries.Len()
}

// Ascend walks key/left-value pairs in ascending key order until fn returns
// false. The trailing value is not visited.
func (a *Array[K, V]) Ascend(fn func(key K, val V) bool) {
	a.entries.Ascend(func(e entry[K, V]) bool {
		return fn(e.key, e.val)
	})
}

// Keys returns all keys in ascending order.
func (a *Array[K, V]) Keys() []K {
	out := make([]K, 0, a.entries.Len())
	a.entries.Ascend(func(e entry[K, V]) bool {
		out = append(out, e.key)
		return true
	})
	return out
}

func (a *Array[K, V]) full() bool {
	return a.maxKeys > 0 && a.entries.Len() >= a.maxKeys
}
