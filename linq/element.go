package linq

// First returns the first element of r.
func (r Range[T]) First() (T, bool) {
	c := r.Cursor()
	defer c.Close()
	if !c.Valid() {
		var zero T
		return zero, false
	}
	return c.Value(), true
}

// FirstWhere returns the first element of r that satisfies pred.
func (r Range[T]) FirstWhere(pred func(T) bool) (T, bool) {
	return r.Where(pred).First()
}

// FirstOr returns the first element of r, or def when r is empty.
func (r Range[T]) FirstOr(def T) T {
	if v, ok := r.First(); ok {
		return v
	}
	return def
}

// FirstWhereOr returns the first element satisfying pred, or def.
func (r Range[T]) FirstWhereOr(pred func(T) bool, def T) T {
	if v, ok := r.FirstWhere(pred); ok {
		return v
	}
	return def
}

// Last returns the last element of r. The whole range is traversed.
func (r Range[T]) Last() (T, bool) {
	var last T
	found := false
	for v := range r.Values() {
		last, found = v, true
	}
	return last, found
}

// LastWhere returns the last element of r that satisfies pred.
func (r Range[T]) LastWhere(pred func(T) bool) (T, bool) {
	return r.Where(pred).Last()
}

// LastOr returns the last element of r, or def when r is empty.
func (r Range[T]) LastOr(def T) T {
	if v, ok := r.Last(); ok {
		return v
	}
	return def
}

// LastWhereOr returns the last element satisfying pred, or def.
func (r Range[T]) LastWhereOr(pred func(T) bool, def T) T {
	if v, ok := r.LastWhere(pred); ok {
		return v
	}
	return def
}

// ElementAt returns the element at zero-based index i. It reports false
// when i is negative or not less than the length of r.
func (r Range[T]) ElementAt(i int) (T, bool) {
	if i < 0 {
		var zero T
		return zero, false
	}
	return r.Skip(i).First()
}

// ElementAtOr returns the element at index i, or def when there is none.
func (r Range[T]) ElementAtOr(i int, def T) T {
	if v, ok := r.ElementAt(i); ok {
		return v
	}
	return def
}

// Any reports whether some element satisfies pred. It stops at the first
// match.
func (r Range[T]) Any(pred func(T) bool) bool {
	_, ok := r.FirstWhere(pred)
	return ok
}

// All reports whether every element satisfies pred. It is true for an empty
// range.
func (r Range[T]) All(pred func(T) bool) bool {
	requireFunc("All", "predicate", pred == nil)
	return !r.Any(func(v T) bool { return !pred(v) })
}

// None reports whether no element satisfies pred. It is true for an empty
// range.
func (r Range[T]) None(pred func(T) bool) bool {
	return !r.Any(pred)
}

// Count returns the number of elements in r.
func (r Range[T]) Count() int {
	n := 0
	c := r.Cursor()
	defer c.Close()
	for ; c.Valid(); c.Next() {
		n++
	}
	return n
}

// CountWhere returns the number of elements that satisfy pred.
func (r Range[T]) CountWhere(pred func(T) bool) int {
	return r.Where(pred).Count()
}
