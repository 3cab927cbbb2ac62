package zigzag

import (
	"cmp"
	"encoding/json"

	"github.com/cockroachdb/errors"
)

// Map is the serialized shape of an array: the plain key/value entries plus an
// explicit optional trailing slot. Keeping the trailing value out of Entries
// means no reserved key can ever collide with a caller's key space.
type Map[K cmp.Ordered, V any] struct {
	Entries  map[K]V `json:"entries"`
	Trailing *V      `json:"trailing,omitempty"`
}

// ToMap flattens the array into its serialized shape.
func (a *Array[K, V]) ToMap() Map[K, V] {
	m := Map[K, V]{Entries: make(map[K]V, a.entries.Len())}
	a.entries.Ascend(func(e entry[K, V]) bool {
		m.Entries[e.key] = e.val
		return true
	})
	if a.trailing != nil {
		v := *a.trailing
		m.Trailing = &v
	}
	return m
}

// FromMap rebuilds an array from its serialized shape. Exact inverse of ToMap:
// FromMap(a.ToMap()) is value-equal to a.
func FromMap[K cmp.Ordered, V any](m Map[K, V]) *Array[K, V] {
	a := New[K, V](len(m.Entries))
	for k, v := range m.Entries {
		a.entries.ReplaceOrInsert(entry[K, V]{key: k, val: v})
	}
	if m.Trailing != nil {
		v := *m.Trailing
		a.trailing = &v
	}
	return a
}

// Encode renders the array as the JSON node payload handed to a node store.
func (a *Array[K, V]) Encode() ([]byte, error) {
	data, err := json.Marshal(a.ToMap())
	if err != nil {
		return nil, errors.Wrap(err, "encode node")
	}
	return data, nil
}

// Decode rebuilds an array from a JSON node payload produced by Encode.
func Decode[K cmp.Ordered, V any](data []byte) (*Array[K, V], error) {
	var m Map[K, V]
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "decode node")
	}
	return FromMap(m), nil
}
