package zigzag

import "github.com/cockroachdb/errors"

// Key returns the key at rank p.
func (a *Array[K, V]) Key(p Pos) (K, error) {
	var zero K
	r := a.resolve(p)
	if r < 1 || r > a.entries.Len() {
		return zero, errors.Wrapf(ErrOutOfRange, "key at %d of %d", r, a.entries.Len())
	}
	e, _ := a.at(r)
	return e.key, nil
}

// Left returns the value stored under the key at rank p. Rank 0 is legal only
// when the array holds no keys, where it addresses the sole (trailing) value.
func (a *Array[K, V]) Left(p Pos) (V, error) {
	var zero V
	r := a.resolve(p)
	n := a.entries.Len()
	if r == 0 && n == 0 {
		if a.trailing == nil {
			return zero, errors.Wrap(ErrOutOfRange, "left of empty array")
		}
		return *a.trailing, nil
	}
	if r < 1 || r > n {
		return zero, errors.Wrapf(ErrOutOfRange, "left at %d of %d", r, n)
	}
	e, _ := a.at(r)
	return e.val, nil
}

// Right returns the value after the key at rank p: the left value of rank p+1,
// or the trailing value when p is the last rank. Rank 0 addresses the value
// before any key was consulted, i.e. the first value of the array.
func (a *Array[K, V]) Right(p Pos) (V, error) {
	var zero V
	r := a.resolve(p)
	n := a.entries.Len()
	if r < 0 || r > n {
		return zero, errors.Wrapf(ErrOutOfRange, "right at %d of %d", r, n)
	}
	if r == n {
		if a.trailing == nil {
			return zero, errors.Wrapf(ErrOutOfRange, "right at %d of %d: no trailing value", r, n)
		}
		return *a.trailing, nil
	}
	e, _ := a.at(r + 1)
	return e.val, nil
}

// Both returns the values on both sides of the key at rank p.
func (a *Array[K, V]) Both(p Pos) (V, V, error) {
	var zero V
	left, err := a.Left(p)
	if err != nil {
		return zero, zero, err
	}
	right, err := a.Right(p)
	if err != nil {
		return zero, zero, err
	}
	return left, right, nil
}

// LowerBoundLeft returns the left value at the first rank whose key is >= key,
// falling through to the trailing value when every stored key is below key.
func (a *Array[K, V]) LowerBoundLeft(key K) (V, error) {
	var zero V
	r := a.LowerBound(key)
	if r > a.entries.Len() {
		if a.trailing == nil {
			return zero, errors.Wrap(ErrOutOfRange, "lower bound past last key: no trailing value")
		}
		return *a.trailing, nil
	}
	e, _ := a.at(r)
	return e.val, nil
}

// LowerBoundKey returns the stored key at the first rank whose key is >= key.
func (a *Array[K, V]) LowerBoundKey(key K) (K, error) {
	var zero K
	r := a.LowerBound(key)
	if r > a.entries.Len() {
		return zero, errors.Wrapf(ErrOutOfRange, "no key at or above %v", key)
	}
	e, _ := a.at(r)
	return e.key, nil
}

// Update writes through a positional selector. The only supported write is
// (SelRight, Last), which replaces the trailing value; every other mutation
// goes through Insert/Append/Prepend/Remove.
func (a *Array[K, V]) Update(sel Selector, p Pos, val V) (*Array[K, V], error) {
	if sel != SelRight || a.resolve(p) != a.entries.Len() {
		return nil, errors.New("update supports only the trailing value (right, last)")
	}
	out := a.shallow()
	out.trailing = &val
	return out, nil
}
