package zigzag

import "github.com/cockroachdb/errors"

// Split divides the array at its midpoint. The first n/2 pairs go to the left
// half; the next pair is promoted, its key returned as the separator and its
// value becoming the left half's trailing value; everything after it, plus the
// original trailing value, forms the right half.
func (a *Array[K, V]) Split() (*Array[K, V], K, *Array[K, V], error) {
	var zeroKey K
	n := a.entries.Len()
	if n == 0 {
		return nil, zeroKey, nil, errors.Wrap(ErrOutOfRange, "split of empty array")
	}

	pairs := make([]entry[K, V], 0, n)
	a.entries.Ascend(func(e entry[K, V]) bool {
		pairs = append(pairs, e)
		return true
	})
	mid := n / 2

	left := &Array[K, V]{entries: newTree[K, V](), maxKeys: a.maxKeys}
	for _, e := range pairs[:mid] {
		left.entries.ReplaceOrInsert(e)
	}
	promoted := pairs[mid]
	left.trailing = &promoted.val

	right := &Array[K, V]{entries: newTree[K, V](), maxKeys: a.maxKeys, trailing: a.trailing}
	for _, e := range pairs[mid+1:] {
		right.entries.ReplaceOrInsert(e)
	}

	return left, promoted.key, right, nil
}

// Merge concatenates the receiver's pairs with right's pairs and keeps right's
// trailing value. The caller guarantees every key on the left is below every
// key on the right; this is not checked.
func (a *Array[K, V]) Merge(right *Array[K, V]) *Array[K, V] {
	out := a.shallow()
	right.entries.Ascend(func(e entry[K, V]) bool {
		out.entries.ReplaceOrInsert(e)
		return true
	})
	out.trailing = right.trailing
	return out
}
