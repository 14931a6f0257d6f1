package linq

import "cmp"

// ToSlice copies the elements of r into a new slice. An empty range gives
// an empty, non-nil slice.
func (r Range[T]) ToSlice() []T {
	items := collect(r)
	if items == nil {
		return []T{}
	}
	return items
}

// ForEach calls fn for every element of r in order.
func (r Range[T]) ForEach(fn func(T)) {
	requireFunc("ForEach", "callback", fn == nil)
	for v := range r.Values() {
		fn(v)
	}
}

// ToMap collects key-value pairs into a map ordered by key. When a key
// occurs more than once the first pair wins.
func ToMap[K cmp.Ordered, V any](r Range[Pair[K, V]]) *SortedMap[K, V] {
	m := NewSortedMap[K, V]()
	for p := range r.Values() {
		m.putIfAbsent(p.Key, p.Value)
	}
	return m
}

// ToUnorderedMap collects key-value pairs into a Go map. When a key occurs
// more than once the first pair wins.
func ToUnorderedMap[K comparable, V any](r Range[Pair[K, V]]) map[K]V {
	m := make(map[K]V)
	for p := range r.Values() {
		if _, ok := m[p.Key]; !ok {
			m[p.Key] = p.Value
		}
	}
	return m
}
