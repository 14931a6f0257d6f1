package linq

import (
	"cmp"
	"slices"

	"github.com/kbukum/golinq/errors"
)

// SortDirection selects ascending or descending key order.
type SortDirection int

const (
	// Ascending orders by the natural less-than of the key.
	Ascending SortDirection = iota
	// Descending orders by the inverse.
	Descending
)

func (d SortDirection) String() string {
	switch d {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "unknown"
	}
}

// Ordered is a sorted range. It is the only input ThenBy accepts, so
// secondary keys can only be added directly after a sort.
//
// Every traversal reads the whole source and stable-sorts it.
type Ordered[T any] struct {
	Range[T]
	source  Range[T]
	compare func(a, b T) int
}

func newOrdered[T any](source Range[T], compare func(a, b T) int) Ordered[T] {
	return Ordered[T]{
		Range: Range[T]{open: func() Cursor[T] {
			items := collect(source)
			slices.SortStableFunc(items, compare)
			return &sliceCursor[T]{items: &items}
		}},
		source:  source,
		compare: compare,
	}
}

// Compare applies the ordering to two elements.
func (o Ordered[T]) Compare(a, b T) int {
	o.requireComparator("Ordered.Compare")
	return o.compare(a, b)
}

func (o Ordered[T]) requireComparator(op string) {
	if o.compare == nil {
		panic(errors.InvalidState(op, "ordered range was not created by a sort"))
	}
}

func keyComparator[T any, K cmp.Ordered](op string, key func(T) K, dir SortDirection) func(a, b T) int {
	requireFunc(op, "key selector", key == nil)
	switch dir {
	case Ascending:
		return func(a, b T) int { return cmp.Compare(key(a), key(b)) }
	case Descending:
		return func(a, b T) int { return cmp.Compare(key(b), key(a)) }
	default:
		panic(errors.InvalidArgument(op, "unknown sort direction").WithDetail("direction", int(dir)))
	}
}

// OrderBy sorts r by key in the given direction. Equal keys keep their
// source order.
func OrderBy[T any, K cmp.Ordered](r Range[T], key func(T) K, dir SortDirection) Ordered[T] {
	return newOrdered(r, keyComparator("OrderBy", key, dir))
}

// OrderByAscending sorts r by key, smallest first.
func OrderByAscending[T any, K cmp.Ordered](r Range[T], key func(T) K) Ordered[T] {
	return OrderBy(r, key, Ascending)
}

// OrderByDescending sorts r by key, largest first.
func OrderByDescending[T any, K cmp.Ordered](r Range[T], key func(T) K) Ordered[T] {
	return OrderBy(r, key, Descending)
}

// OrderByFunc sorts r with a three-way comparator.
func (r Range[T]) OrderByFunc(compare func(a, b T) int) Ordered[T] {
	requireFunc("OrderByFunc", "comparator", compare == nil)
	return newOrdered(r, compare)
}

// ThenBy adds a secondary key to a sort: elements that o considers equal
// are ordered by key.
func ThenBy[T any, K cmp.Ordered](o Ordered[T], key func(T) K, dir SortDirection) Ordered[T] {
	o.requireComparator("ThenBy")
	return o.then(keyComparator("ThenBy", key, dir))
}

// ThenByAscending adds a secondary ascending key.
func ThenByAscending[T any, K cmp.Ordered](o Ordered[T], key func(T) K) Ordered[T] {
	return ThenBy(o, key, Ascending)
}

// ThenByDescending adds a secondary descending key.
func ThenByDescending[T any, K cmp.Ordered](o Ordered[T], key func(T) K) Ordered[T] {
	return ThenBy(o, key, Descending)
}

// ThenByFunc breaks ties of o with a three-way comparator.
func (o Ordered[T]) ThenByFunc(compare func(a, b T) int) Ordered[T] {
	o.requireComparator("ThenByFunc")
	requireFunc("ThenByFunc", "comparator", compare == nil)
	return o.then(compare)
}

func (o Ordered[T]) then(tieBreak func(a, b T) int) Ordered[T] {
	first := o.compare
	return newOrdered(o.source, func(a, b T) int {
		if c := first(a, b); c != 0 {
			return c
		}
		return tieBreak(a, b)
	})
}
