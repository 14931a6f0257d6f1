package linq

// Take yields at most the first n elements. The source is never advanced
// beyond the n-th element. A negative n yields nothing.
func (r Range[T]) Take(n int) Range[T] {
	t := &takeRange[T]{source: r, n: max(n, 0)}
	return Range[T]{open: t.open}
}

type takeRange[T any] struct {
	source Range[T]
	n      int
}

func (t *takeRange[T]) open() Cursor[T] {
	return &takeCursor[T]{prev: t.source.Cursor(), remaining: t.n}
}

type takeCursor[T any] struct {
	prev      Cursor[T]
	remaining int
}

func (c *takeCursor[T]) Valid() bool { return c.remaining > 0 && c.prev.Valid() }

func (c *takeCursor[T]) Value() T {
	requireValid("Cursor.Value", c.Valid())
	return c.prev.Value()
}

func (c *takeCursor[T]) Next() {
	if !c.Valid() {
		return
	}
	c.remaining--
	if c.remaining > 0 {
		c.prev.Next()
	}
}

func (c *takeCursor[T]) Close() {
	c.remaining = 0
	c.prev.Close()
}

// TakeWhile yields elements until the first one for which pred is false.
// Later matches after that element are not yielded.
func (r Range[T]) TakeWhile(pred func(T) bool) Range[T] {
	requireFunc("TakeWhile", "predicate", pred == nil)
	t := &takeWhileRange[T]{source: r, pred: pred}
	return Range[T]{open: t.open}
}

type takeWhileRange[T any] struct {
	source Range[T]
	pred   func(T) bool
}

func (t *takeWhileRange[T]) open() Cursor[T] {
	c := &takeWhileCursor[T]{parent: t, prev: t.source.Cursor()}
	c.check()
	return c
}

type takeWhileCursor[T any] struct {
	parent *takeWhileRange[T]
	prev   Cursor[T]
	done   bool
}

func (c *takeWhileCursor[T]) check() {
	if c.prev.Valid() && !c.parent.pred(c.prev.Value()) {
		c.done = true
	}
}

func (c *takeWhileCursor[T]) Valid() bool { return !c.done && c.prev.Valid() }

func (c *takeWhileCursor[T]) Value() T {
	requireValid("Cursor.Value", c.Valid())
	return c.prev.Value()
}

func (c *takeWhileCursor[T]) Next() {
	if !c.Valid() {
		return
	}
	c.prev.Next()
	c.check()
}

func (c *takeWhileCursor[T]) Close() {
	c.done = true
	c.prev.Close()
}

// Skip drops up to the first n elements. A negative n drops nothing.
func (r Range[T]) Skip(n int) Range[T] {
	s := &skipRange[T]{source: r, n: max(n, 0)}
	return Range[T]{open: s.open}
}

type skipRange[T any] struct {
	source Range[T]
	n      int
}

func (s *skipRange[T]) open() Cursor[T] {
	c := &skipCursor[T]{prev: s.source.Cursor()}
	for i := 0; i < s.n && c.prev.Valid(); i++ {
		c.prev.Next()
	}
	return c
}

// skipCursor is positioned past the skipped prefix when it is opened and
// then follows its predecessor.
type skipCursor[T any] struct {
	prev Cursor[T]
}

func (c *skipCursor[T]) Valid() bool { return c.prev.Valid() }

func (c *skipCursor[T]) Value() T {
	requireValid("Cursor.Value", c.Valid())
	return c.prev.Value()
}

func (c *skipCursor[T]) Next()  { c.prev.Next() }
func (c *skipCursor[T]) Close() { c.prev.Close() }

// SkipWhile drops the leading elements for which pred is true. Once an
// element fails pred, every following element is yielded.
func (r Range[T]) SkipWhile(pred func(T) bool) Range[T] {
	requireFunc("SkipWhile", "predicate", pred == nil)
	s := &skipWhileRange[T]{source: r, pred: pred}
	return Range[T]{open: s.open}
}

type skipWhileRange[T any] struct {
	source Range[T]
	pred   func(T) bool
}

func (s *skipWhileRange[T]) open() Cursor[T] {
	c := &skipCursor[T]{prev: s.source.Cursor()}
	for c.prev.Valid() && s.pred(c.prev.Value()) {
		c.prev.Next()
	}
	return c
}
