// Structure of a zig-zag array
/*
Array
  [V1] K1 [V2] K2 ... [Vn] Kn [Vn+1]

- keys: sorted ascending order, unique
- every key Ki owns its left value Vi
- the value after the last key (Vn+1) lives in a separate trailing slot,
  so an array with zero keys can still hold one value
- positions are 1-based ranks over the keys
- every operation is copy-on-write: it returns a new array and never
  mutates the receiver
*/
package zigzag

import (
	"cmp"

	"github.com/cockroachdb/errors"
	"github.com/google/btree"
)

// Selector picks what a positional operation addresses inside a position:
// the key itself, the value to its left, the value to its right, or both
// values at once. The lower-bound selectors address by key instead of rank.
type Selector int

const (
	SelKey Selector = iota
	SelLeft
	SelRight
	SelBoth
	SelLowerBound
	SelLowerBoundKey
)

// Pos is a 1-based rank. First and Last resolve against the current size
// before evaluation.
type Pos int

const (
	First Pos = -1
	Last  Pos = -2
)

var (
	ErrOutOfRange            = errors.New("position out of range")
	ErrNotFound              = errors.New("key not found")
	ErrAlreadyExists         = errors.New("key already exists")
	ErrPredicateNotSatisfied = errors.New("predicate not satisfied")
	ErrOutOfSpace            = errors.New("array is full")
)

const treeDegree = 8

type entry[K cmp.Ordered, V any] struct {
	key K
	val V
}

// Array is the node-local container of a B+ tree node. The zero value is not
// usable; construct with New or NewBounded.
type Array[K cmp.Ordered, V any] struct {
	entries  *btree.BTreeG[entry[K, V]]
	trailing *V
	maxKeys  int // 0 means unbounded
}

func newTree[K cmp.Ordered, V any]() *btree.BTreeG[entry[K, V]] {
	return btree.NewG(treeDegree, func(a, b entry[K, V]) bool {
		return a.key < b.key
	})
}

// shallow returns a copy sharing the backing tree via Clone. Mutations on the
// copy's tree never show through the original.
func (a *Array[K, V]) shallow() *Array[K, V] {
	return &Array[K, V]{
		entries:  a.entries.Clone(),
		trailing: a.trailing,
		maxKeys:  a.maxKeys,
	}
}

// resolve turns First/Last into concrete ranks. No range validation here;
// each operation has its own idea of which ranks are legal.
func (a *Array[K, V]) resolve(p Pos) int {
	switch p {
	case First:
		return 1
	case Last:
		return a.entries.Len()
	default:
		return int(p)
	}
}

// at returns the entry with rank r (1-based), walking the tree in order.
func (a *Array[K, V]) at(r int) (entry[K, V], bool) {
	var (
		out   entry[K, V]
		found bool
		i     int
	)
	a.entries.Ascend(func(e entry[K, V]) bool {
		i++
		if i == r {
			out, found = e, true
			return false
		}
		return true
	})
	return out, found
}

// countLess returns how many stored keys are strictly below key.
func (a *Array[K, V]) countLess(key K) int {
	n := 0
	a.entries.AscendLessThan(entry[K, V]{key: key}, func(entry[K, V]) bool {
		n++
		return true
	})
	return n
}

// successor returns the entry with the smallest key strictly greater than key.
func (a *Array[K, V]) successor(key K) (entry[K, V], bool) {
	var (
		out   entry[K, V]
		found bool
	)
	a.entries.AscendGreaterOrEqual(entry[K, V]{key: key}, func(e entry[K, V]) bool {
		if e.key == key {
			return true
		}
		out, found = e, true
		return false
	})
	return out, found
}
