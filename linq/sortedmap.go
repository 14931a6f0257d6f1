package linq

import (
	"cmp"
	"iter"

	"github.com/emirpasic/gods/maps/treemap"
)

// SortedMap is a map that iterates in ascending key order. It is backed by
// a red-black tree.
type SortedMap[K cmp.Ordered, V any] struct {
	tree *treemap.Map
}

// NewSortedMap returns an empty SortedMap.
func NewSortedMap[K cmp.Ordered, V any]() *SortedMap[K, V] {
	return &SortedMap[K, V]{tree: treemap.NewWith(func(a, b any) int {
		return cmp.Compare(a.(K), b.(K))
	})}
}

// Len returns the number of entries.
func (m *SortedMap[K, V]) Len() int { return m.tree.Size() }

// Get returns the value stored for key.
func (m *SortedMap[K, V]) Get(key K) (V, bool) {
	raw, found := m.tree.Get(key)
	if !found {
		var zero V
		return zero, false
	}
	v, _ := raw.(V)
	return v, true
}

// Contains reports whether key is present.
func (m *SortedMap[K, V]) Contains(key K) bool {
	_, found := m.tree.Get(key)
	return found
}

// Keys returns the keys in ascending order.
func (m *SortedMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.tree.Size())
	for k := range m.All() {
		keys = append(keys, k)
	}
	return keys
}

// Values returns the values in key order.
func (m *SortedMap[K, V]) Values() []V {
	values := make([]V, 0, m.tree.Size())
	for _, v := range m.All() {
		values = append(values, v)
	}
	return values
}

// All iterates over the entries in ascending key order.
func (m *SortedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := m.tree.Iterator()
		for it.Next() {
			k, _ := it.Key().(K)
			v, _ := it.Value().(V)
			if !yield(k, v) {
				return
			}
		}
	}
}

// Range returns the entries as a range of pairs in key order.
func (m *SortedMap[K, V]) Range() Range[Pair[K, V]] {
	return FromSeq(func(yield func(Pair[K, V]) bool) {
		for k, v := range m.All() {
			if !yield(MakePair(k, v)) {
				return
			}
		}
	})
}

func (m *SortedMap[K, V]) putIfAbsent(key K, value V) {
	if _, found := m.tree.Get(key); !found {
		m.tree.Put(key, value)
	}
}
