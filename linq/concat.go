package linq

// Append yields the elements of r followed by the elements of other.
// other is opened only after r is exhausted.
func (r Range[T]) Append(other Range[T]) Range[T] {
	a := &appendRange[T]{first: r, second: other}
	return Range[T]{open: a.open}
}

type appendRange[T any] struct {
	first, second Range[T]
}

func (a *appendRange[T]) open() Cursor[T] {
	c := &appendCursor[T]{parent: a, first: a.first.Cursor()}
	c.advance()
	return c
}

type appendCursor[T any] struct {
	parent *appendRange[T]
	first  Cursor[T]
	second Cursor[T]
}

func (c *appendCursor[T]) advance() {
	if c.second == nil && !c.first.Valid() {
		c.first.Close()
		c.second = c.parent.second.Cursor()
	}
}

func (c *appendCursor[T]) Valid() bool {
	if c.second != nil {
		return c.second.Valid()
	}
	return c.first.Valid()
}

func (c *appendCursor[T]) Value() T {
	if c.second != nil {
		return c.second.Value()
	}
	return c.first.Value()
}

func (c *appendCursor[T]) Next() {
	if c.second != nil {
		c.second.Next()
		return
	}
	c.first.Next()
	c.advance()
}

func (c *appendCursor[T]) Close() {
	c.first.Close()
	if c.second != nil {
		c.second.Close()
	}
}

// Repeat yields the elements of r n+1 times, reopening r after each pass.
// Iteration stops early if a pass turns out empty. A negative n is one pass.
func (r Range[T]) Repeat(n int) Range[T] {
	p := &repeatRange[T]{source: r, n: max(n, 0)}
	return Range[T]{open: p.open}
}

type repeatRange[T any] struct {
	source Range[T]
	n      int
}

func (p *repeatRange[T]) open() Cursor[T] {
	return &repeatCursor[T]{parent: p, prev: p.source.Cursor(), remaining: p.n}
}

type repeatCursor[T any] struct {
	parent    *repeatRange[T]
	prev      Cursor[T]
	remaining int
}

func (c *repeatCursor[T]) Valid() bool { return c.prev.Valid() }
func (c *repeatCursor[T]) Value() T    { return c.prev.Value() }

func (c *repeatCursor[T]) Next() {
	if !c.prev.Valid() {
		return
	}
	c.prev.Next()
	if !c.prev.Valid() && c.remaining > 0 {
		c.remaining--
		c.prev.Close()
		c.prev = c.parent.source.Cursor()
	}
}

func (c *repeatCursor[T]) Close() {
	c.remaining = 0
	c.prev.Close()
}
