package linq

import (
	"fmt"

	"github.com/spf13/cast"
)

// Select maps each element through fn. fn runs every time Value is called,
// so a consumer reading the same position twice calls fn twice.
func Select[T, U any](r Range[T], fn func(T) U) Range[U] {
	requireFunc("Select", "transform", fn == nil)
	s := &selectRange[T, U]{source: r, fn: fn}
	return Range[U]{open: s.open}
}

type selectRange[T, U any] struct {
	source Range[T]
	fn     func(T) U
}

func (s *selectRange[T, U]) open() Cursor[U] {
	return &selectCursor[T, U]{parent: s, prev: s.source.Cursor()}
}

type selectCursor[T, U any] struct {
	parent *selectRange[T, U]
	prev   Cursor[T]
}

func (c *selectCursor[T, U]) Valid() bool { return c.prev.Valid() }
func (c *selectCursor[T, U]) Value() U    { return c.parent.fn(c.prev.Value()) }
func (c *selectCursor[T, U]) Next()       { c.prev.Next() }
func (c *selectCursor[T, U]) Close()      { c.prev.Close() }

// SelectToString formats each element as text. fmt.Stringer values use
// their String method; other values are converted with cast, falling back
// to fmt.Sprint.
func SelectToString[T any](r Range[T]) Range[string] {
	return Select(r, toString[T])
}

func toString[T any](v T) string {
	if s, ok := any(v).(fmt.Stringer); ok {
		return s.String()
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return s
}

// SelectMany maps each element to a range and yields the elements of those
// ranges in order. Elements that map to an empty range contribute nothing.
func SelectMany[T, U any](r Range[T], fn func(T) Range[U]) Range[U] {
	requireFunc("SelectMany", "transform", fn == nil)
	s := &selectManyRange[T, U]{source: r, fn: fn}
	return Range[U]{open: s.open}
}

type selectManyRange[T, U any] struct {
	source Range[T]
	fn     func(T) Range[U]
}

func (s *selectManyRange[T, U]) open() Cursor[U] {
	c := &selectManyCursor[T, U]{parent: s, outer: s.source.Cursor()}
	c.seek()
	return c
}

type selectManyCursor[T, U any] struct {
	parent *selectManyRange[T, U]
	outer  Cursor[T]
	inner  Cursor[U]
}

// seek positions the cursor on the next element of a non-empty inner range,
// closing every exhausted inner cursor on the way.
func (c *selectManyCursor[T, U]) seek() {
	for c.outer.Valid() {
		if c.inner == nil {
			c.inner = c.parent.fn(c.outer.Value()).Cursor()
		}
		if c.inner.Valid() {
			return
		}
		c.inner.Close()
		c.inner = nil
		c.outer.Next()
	}
}

func (c *selectManyCursor[T, U]) Valid() bool { return c.inner != nil && c.inner.Valid() }

func (c *selectManyCursor[T, U]) Value() U {
	requireValid("Cursor.Value", c.Valid())
	return c.inner.Value()
}

func (c *selectManyCursor[T, U]) Next() {
	if !c.Valid() {
		return
	}
	c.inner.Next()
	c.seek()
}

func (c *selectManyCursor[T, U]) Close() {
	if c.inner != nil {
		c.inner.Close()
		c.inner = nil
	}
	c.outer.Close()
}
