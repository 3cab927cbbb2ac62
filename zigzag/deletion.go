package zigzag

import "github.com/cockroachdb/errors"

// Remove deletes key. With SelLeft the key's value vanishes with it. With
// SelRight the removed value is spliced forward: it overwrites the left value
// of the next larger key, or becomes the trailing value when no larger key
// remains, so every surviving key keeps a well-defined left value.
func (a *Array[K, V]) Remove(sel Selector, key K) (*Array[K, V], error) {
	return a.RemoveIf(sel, key, nil)
}

// RemoveIf is Remove guarded by a predicate over the stored value. When pred
// rejects the value the array is left untouched and ErrPredicateNotSatisfied
// is returned.
func (a *Array[K, V]) RemoveIf(sel Selector, key K, pred func(V) bool) (*Array[K, V], error) {
	if sel != SelLeft && sel != SelRight {
		return nil, errors.Newf("remove does not support selector %d", sel)
	}
	e, ok := a.entries.Get(entry[K, V]{key: key})
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "remove %v", key)
	}
	if pred != nil && !pred(e.val) {
		return nil, errors.Wrapf(ErrPredicateNotSatisfied, "remove %v", key)
	}

	out := a.shallow()
	removed, _ := out.entries.Delete(entry[K, V]{key: key})
	if sel == SelRight {
		if succ, ok := out.successor(key); ok {
			out.entries.ReplaceOrInsert(entry[K, V]{key: succ.key, val: removed.val})
		} else {
			out.trailing = &removed.val
		}
	}
	return out, nil
}
