package linq

// Distinct yields each value the first time it appears.
func Distinct[T comparable](r Range[T]) Range[T] {
	d := &distinctRange[T]{source: r, newSeen: func() seenSet[T] {
		return hashSet[T]{}
	}}
	return Range[T]{open: d.open}
}

// DistinctFunc yields each element the first time it appears, comparing
// elements with eq. Every candidate is compared with every element already
// yielded, so cost grows quadratically with the number of distinct values.
func (r Range[T]) DistinctFunc(eq func(a, b T) bool) Range[T] {
	requireFunc("DistinctFunc", "equality function", eq == nil)
	d := &distinctRange[T]{source: r, newSeen: func() seenSet[T] {
		return &scanSet[T]{eq: eq}
	}}
	return Range[T]{open: d.open}
}

// seenSet records values yielded during one traversal.
type seenSet[T any] interface {
	// add records v and reports whether it was not seen before.
	add(v T) bool
}

type hashSet[T comparable] map[T]struct{}

func (s hashSet[T]) add(v T) bool {
	if _, ok := s[v]; ok {
		return false
	}
	s[v] = struct{}{}
	return true
}

type scanSet[T any] struct {
	eq    func(a, b T) bool
	items []T
}

func (s *scanSet[T]) add(v T) bool {
	for _, seen := range s.items {
		if s.eq(seen, v) {
			return false
		}
	}
	s.items = append(s.items, v)
	return true
}

type distinctRange[T any] struct {
	source  Range[T]
	newSeen func() seenSet[T]
}

func (d *distinctRange[T]) open() Cursor[T] {
	c := &distinctCursor[T]{prev: d.source.Cursor(), seen: d.newSeen()}
	c.seek()
	return c
}

type distinctCursor[T any] struct {
	prev Cursor[T]
	seen seenSet[T]
}

func (c *distinctCursor[T]) seek() {
	for c.prev.Valid() {
		if c.seen.add(c.prev.Value()) {
			return
		}
		c.prev.Next()
	}
}

func (c *distinctCursor[T]) Valid() bool { return c.prev.Valid() }
func (c *distinctCursor[T]) Value() T    { return c.prev.Value() }

func (c *distinctCursor[T]) Next() {
	if !c.prev.Valid() {
		return
	}
	c.prev.Next()
	c.seek()
}

func (c *distinctCursor[T]) Close() {
	c.prev.Close()
	c.seen = nil
}
