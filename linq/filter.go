package linq

// Where yields the elements for which pred reports true, in source order.
func (r Range[T]) Where(pred func(T) bool) Range[T] {
	requireFunc("Where", "predicate", pred == nil)
	w := &whereRange[T]{source: r, pred: pred}
	return Range[T]{open: w.open}
}

type whereRange[T any] struct {
	source Range[T]
	pred   func(T) bool
}

func (w *whereRange[T]) open() Cursor[T] {
	c := &whereCursor[T]{parent: w, prev: w.source.Cursor()}
	c.seek()
	return c
}

type whereCursor[T any] struct {
	parent *whereRange[T]
	prev   Cursor[T]
}

func (c *whereCursor[T]) seek() {
	for c.prev.Valid() && !c.parent.pred(c.prev.Value()) {
		c.prev.Next()
	}
}

func (c *whereCursor[T]) Valid() bool { return c.prev.Valid() }
func (c *whereCursor[T]) Value() T    { return c.prev.Value() }

func (c *whereCursor[T]) Next() {
	if !c.prev.Valid() {
		return
	}
	c.prev.Next()
	c.seek()
}

func (c *whereCursor[T]) Close() { c.prev.Close() }
