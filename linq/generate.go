package linq

import (
	"github.com/kbukum/golinq/errors"
	"golang.org/x/exp/constraints"
)

// Number is the set of element types Sum, Average and FromTo accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// FromTo yields start, start+1, ... up to and including end. When end is
// below start the sequence counts down instead.
func FromTo[T Number](start, end T) Range[T] {
	return FromToStep(start, end, 1)
}

// FromToStep yields start, start±step, ... and stops before passing end.
// The direction of travel comes from start and end; only the magnitude of
// step is used. start == end, step == 0 and a step whose magnitude the type
// cannot hold are precondition violations.
func FromToStep[T Number](start, end, step T) Range[T] {
	if start == end {
		panic(errors.InvalidArgument("FromToStep", "start and end must differ"))
	}
	if step == 0 {
		panic(errors.InvalidArgument("FromToStep", "step must not be zero"))
	}
	if step < 0 {
		step = -step
		if step < 0 {
			panic(errors.InvalidArgument("FromToStep", "step magnitude overflows the element type"))
		}
	}
	f := &fromToRange[T]{start: start, end: end, step: step, ascending: start < end}
	return Range[T]{open: f.open}
}

type fromToRange[T Number] struct {
	start, end, step T
	ascending        bool
}

func (f *fromToRange[T]) open() Cursor[T] {
	return &fromToCursor[T]{parent: f, value: f.start}
}

type fromToCursor[T Number] struct {
	parent *fromToRange[T]
	value  T
	done   bool
}

func (c *fromToCursor[T]) Valid() bool { return !c.done }

func (c *fromToCursor[T]) Value() T {
	requireValid("Cursor.Value", !c.done)
	return c.value
}

// Next computes the following value and ends the sequence when it passes
// end or wraps around the limits of the type.
func (c *fromToCursor[T]) Next() {
	if c.done {
		return
	}
	p := c.parent
	if p.ascending {
		next := c.value + p.step
		if next < c.value || next > p.end {
			c.done = true
			return
		}
		c.value = next
		return
	}
	next := c.value - p.step
	if next > c.value || next < p.end {
		c.done = true
		return
	}
	c.value = next
}

func (c *fromToCursor[T]) Close() { c.done = true }

// FromToFunc yields start, start.Add(step), ... while compare(value, end)
// is not positive, for element types that are not Number. The sequence is
// ascending: compare(start, end) must be negative and step must move the
// value forward.
func FromToFunc[T Adder[T]](start, end, step T, compare func(a, b T) int) Range[T] {
	requireFunc("FromToFunc", "comparator", compare == nil)
	if compare(start, end) >= 0 {
		panic(errors.InvalidArgument("FromToFunc", "start must be below end"))
	}
	if compare(start.Add(step), start) <= 0 {
		panic(errors.InvalidArgument("FromToFunc", "step must advance the value"))
	}
	f := &fromToFuncRange[T]{start: start, end: end, step: step, compare: compare}
	return Range[T]{open: f.open}
}

type fromToFuncRange[T Adder[T]] struct {
	start, end, step T
	compare          func(a, b T) int
}

func (f *fromToFuncRange[T]) open() Cursor[T] {
	return &fromToFuncCursor[T]{parent: f, value: f.start}
}

type fromToFuncCursor[T Adder[T]] struct {
	parent *fromToFuncRange[T]
	value  T
	done   bool
}

func (c *fromToFuncCursor[T]) Valid() bool { return !c.done }

func (c *fromToFuncCursor[T]) Value() T {
	requireValid("Cursor.Value", !c.done)
	return c.value
}

func (c *fromToFuncCursor[T]) Next() {
	if c.done {
		return
	}
	next := c.value.Add(c.parent.step)
	if c.parent.compare(next, c.parent.end) > 0 {
		c.done = true
		return
	}
	c.value = next
}

func (c *fromToFuncCursor[T]) Close() { c.done = true }

// Generated is one step of a Generate callback: either a produced value or
// the end-of-sequence marker.
type Generated[T any] struct {
	value    T
	finished bool
}

// Produce returns a generator step that yields v.
func Produce[T any](v T) Generated[T] {
	return Generated[T]{value: v}
}

// Finish returns the generator step that ends the sequence.
func Finish[T any]() Generated[T] {
	return Generated[T]{finished: true}
}

// Equal reports whether g and o are both finished or both produced.
// Produced values are not compared: equality only detects the end marker.
func (g Generated[T]) Equal(o Generated[T]) bool {
	return g.finished == o.finished
}

// Finished reports whether g is the end-of-sequence marker.
func (g Generated[T]) Finished() bool { return g.finished }

// Generate yields the values fn produces for steps 0, 1, 2, ... until it
// returns Finish. fn is called lazily, once per step, and the sequence is
// unbounded if fn never finishes.
func Generate[T any](fn func(step int) Generated[T]) Range[T] {
	requireFunc("Generate", "generator", fn == nil)
	return Range[T]{open: func() Cursor[T] {
		return &generateCursor[T]{fn: fn, last: fn(0)}
	}}
}

type generateCursor[T any] struct {
	fn   func(step int) Generated[T]
	step int
	last Generated[T]
}

func (c *generateCursor[T]) Valid() bool { return !c.last.Equal(Finish[T]()) }

func (c *generateCursor[T]) Value() T {
	requireValid("Cursor.Value", c.Valid())
	return c.last.value
}

func (c *generateCursor[T]) Next() {
	if !c.Valid() {
		return
	}
	c.step++
	c.last = c.fn(c.step)
}

func (c *generateCursor[T]) Close() { c.last = Finish[T]() }
