package zigzag

import "github.com/cockroachdb/errors"

// Insert stores val under key. Fails with ErrAlreadyExists when the key is
// present and ErrOutOfSpace when a bounded array is full.
func (a *Array[K, V]) Insert(key K, val V) (*Array[K, V], error) {
	if a.full() {
		return nil, errors.Wrapf(ErrOutOfSpace, "insert %v", key)
	}
	if a.entries.Has(entry[K, V]{key: key}) {
		return nil, errors.Wrapf(ErrAlreadyExists, "insert %v", key)
	}
	out := a.shallow()
	out.entries.ReplaceOrInsert(entry[K, V]{key: key, val: val})
	return out, nil
}

// InsertBoth stores val under key and writes next over the left value of the
// key that follows key in sort order. When key becomes the new maximum, next
// becomes the trailing value instead.
func (a *Array[K, V]) InsertBoth(key K, val, next V) (*Array[K, V], error) {
	out, err := a.Insert(key, val)
	if err != nil {
		return nil, err
	}
	if succ, ok := out.successor(key); ok {
		out.entries.ReplaceOrInsert(entry[K, V]{key: succ.key, val: next})
	} else {
		out.trailing = &next
	}
	return out, nil
}

// Append adds at the right end of the array.
//
// SelKey sets the trailing value to val without touching the keys; callers use
// it to install a terminal sentinel, passing the key itself as the value.
//
// SelRight removes the current maximum pair, re-inserts its value under the
// new key (the new key inherits the old maximum's left value) and makes val
// the trailing value.
func (a *Array[K, V]) Append(sel Selector, key K, val V) (*Array[K, V], error) {
	switch sel {
	case SelKey:
		out := a.shallow()
		out.trailing = &val
		return out, nil
	case SelRight:
		max, ok := a.entries.Max()
		if !ok {
			return nil, errors.Wrapf(ErrOutOfRange, "append right %v to empty array", key)
		}
		out := a.shallow()
		out.entries.Delete(max)
		out.entries.ReplaceOrInsert(entry[K, V]{key: key, val: max.val})
		out.trailing = &val
		return out, nil
	default:
		return nil, errors.Newf("append does not support selector %d", sel)
	}
}

// AppendBoth stores val under key and makes next the trailing value. The
// caller guarantees key is greater than every stored key; this is not checked.
func (a *Array[K, V]) AppendBoth(key K, val, next V) (*Array[K, V], error) {
	if a.full() {
		return nil, errors.Wrapf(ErrOutOfSpace, "append %v", key)
	}
	out := a.shallow()
	out.entries.ReplaceOrInsert(entry[K, V]{key: key, val: val})
	out.trailing = &next
	return out, nil
}

// Prepend stores val under key at the left end. The caller guarantees key is
// smaller than every stored key; violating that silently breaks the sort
// order, so this is strictly a fast path for the rebalancing layer. A bounded
// array that is full fails with ErrOutOfSpace like every other growing op.
func (a *Array[K, V]) Prepend(key K, val V) (*Array[K, V], error) {
	if a.full() {
		return nil, errors.Wrapf(ErrOutOfSpace, "prepend %v", key)
	}
	out := a.shallow()
	out.entries.ReplaceOrInsert(entry[K, V]{key: key, val: val})
	return out, nil
}
