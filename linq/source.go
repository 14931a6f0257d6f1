package linq

import (
	"iter"
	"maps"
	"slices"
)

// Pair is a key-value element, as produced by FromMap and consumed by ToMap.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// MakePair builds a Pair.
func MakePair[K, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{Key: key, Value: value}
}

// From creates a range that reads the caller's slice without copying it.
// Elements are yielded by value. The slice header is read at the start of
// each traversal, so elements appended between traversals are observed.
func From[T any](items *[]T) Range[T] {
	requireSource("From", items == nil)
	return Range[T]{open: func() Cursor[T] {
		return &sliceCursor[T]{items: items}
	}}
}

// FromMutable creates a range of pointers into the caller's slice, allowing
// elements to be edited in place through the pipeline.
func FromMutable[T any](items *[]T) Range[*T] {
	requireSource("FromMutable", items == nil)
	return Range[*T]{open: func() Cursor[*T] {
		return &pointerCursor[T]{items: items}
	}}
}

// FromCopy creates a range over a private copy of items taken now.
func FromCopy[T any](items []T) Range[T] {
	owned := slices.Clone(items)
	return Range[T]{open: func() Cursor[T] {
		return &sliceCursor[T]{items: &owned}
	}}
}

// Of creates a range over the given literal values.
func Of[T any](items ...T) Range[T] {
	return FromCopy(items)
}

// FromSeq creates a range over an iterator. seq is started once per traversal.
func FromSeq[T any](seq iter.Seq[T]) Range[T] {
	requireSource("FromSeq", seq == nil)
	return Range[T]{open: func() Cursor[T] {
		c := &seqCursor[T]{}
		c.next, c.stop = iter.Pull(seq)
		c.Next()
		return c
	}}
}

// FromMap creates a range over the entries of m in Go's map iteration order,
// which is unspecified. The map is not copied.
func FromMap[K comparable, V any](m map[K]V) Range[Pair[K, V]] {
	return FromSeq(func(yield func(Pair[K, V]) bool) {
		for k, v := range maps.All(m) {
			if !yield(Pair[K, V]{Key: k, Value: v}) {
				return
			}
		}
	})
}

type sliceCursor[T any] struct {
	items *[]T
	index int
}

func (c *sliceCursor[T]) Valid() bool { return c.index < len(*c.items) }

func (c *sliceCursor[T]) Value() T {
	requireValid("Cursor.Value", c.Valid())
	return (*c.items)[c.index]
}

func (c *sliceCursor[T]) Next() {
	if c.Valid() {
		c.index++
	}
}

func (c *sliceCursor[T]) Close() {}

type pointerCursor[T any] struct {
	items *[]T
	index int
}

func (c *pointerCursor[T]) Valid() bool { return c.index < len(*c.items) }

func (c *pointerCursor[T]) Value() *T {
	requireValid("Cursor.Value", c.Valid())
	return &(*c.items)[c.index]
}

func (c *pointerCursor[T]) Next() {
	if c.Valid() {
		c.index++
	}
}

func (c *pointerCursor[T]) Close() {}

// seqCursor pulls from an iter.Seq. stop must run on Close so the
// iterator's coroutine is released even when the traversal ends early.
type seqCursor[T any] struct {
	next    func() (T, bool)
	stop    func()
	current T
	ok      bool
}

func (c *seqCursor[T]) Valid() bool { return c.ok }

func (c *seqCursor[T]) Value() T {
	requireValid("Cursor.Value", c.ok)
	return c.current
}

func (c *seqCursor[T]) Next() {
	if c.next == nil {
		return
	}
	c.current, c.ok = c.next()
	if !c.ok {
		c.Close()
	}
}

func (c *seqCursor[T]) Close() {
	if c.stop != nil {
		c.stop()
		c.stop = nil
		c.next = nil
	}
	c.ok = false
	var zero T
	c.current = zero
}
