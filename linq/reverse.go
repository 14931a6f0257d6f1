package linq

import "slices"

// Reverse yields the elements of r back to front. Each traversal reads all
// of r first, so it sees r as it is when the traversal starts.
func (r Range[T]) Reverse() Range[T] {
	rv := &reverseRange[T]{source: r}
	return Range[T]{open: rv.open}
}

type reverseRange[T any] struct {
	source Range[T]
}

func (rv *reverseRange[T]) open() Cursor[T] {
	items := collect(rv.source)
	slices.Reverse(items)
	return &reverseCursor[T]{items: items}
}

// reverseCursor owns the buffer built for its traversal.
type reverseCursor[T any] struct {
	items []T
	pos   int
}

func (c *reverseCursor[T]) Valid() bool { return c.pos < len(c.items) }

func (c *reverseCursor[T]) Value() T {
	requireValid("Cursor.Value", c.Valid())
	return c.items[c.pos]
}

func (c *reverseCursor[T]) Next() {
	if c.Valid() {
		c.pos++
	}
}

func (c *reverseCursor[T]) Close() {
	c.items = nil
	c.pos = 0
}

// collect reads every element of r into a new slice.
func collect[T any](r Range[T]) []T {
	c := r.Cursor()
	defer c.Close()
	var items []T
	for ; c.Valid(); c.Next() {
		items = append(items, c.Value())
	}
	return items
}
