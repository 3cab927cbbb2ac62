package zigzag

import "github.com/cockroachdb/errors"

// Find returns the 1-based rank of key, or ErrNotFound.
func (a *Array[K, V]) Find(key K) (int, error) {
	if !a.entries.Has(entry[K, V]{key: key}) {
		return 0, errors.Wrapf(ErrNotFound, "find %v", key)
	}
	return a.countLess(key) + 1, nil
}

// FindValue returns the left value stored under key, or ErrNotFound. Kept
// separate from Find: callers that only need the value skip the rank walk.
func (a *Array[K, V]) FindValue(key K) (V, error) {
	e, ok := a.entries.Get(entry[K, V]{key: key})
	if !ok {
		var zero V
		return zero, errors.Wrapf(ErrNotFound, "find value %v", key)
	}
	return e.val, nil
}

// LowerBound returns the rank of the first stored key >= key. When every
// stored key is below key the result is Size()+1, the trailing slot.
func (a *Array[K, V]) LowerBound(key K) int {
	return a.countLess(key) + 1
}
