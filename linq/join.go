package linq

// Join pairs elements of left and right whose keys are equal and yields
// combine(l, r) for each pair, grouped by left element in left order.
//
// The match search is a nested loop. After a match the scan of right
// resumes just past the matched element; when the scan reaches the end of
// right, right is reopened at its start before the next left element is
// examined. With the single-pass cursors used here every left element ends
// up scanning the whole of right, once.
func Join[L, R any, K comparable, O any](
	left Range[L],
	right Range[R],
	keyLeft func(L) K,
	keyRight func(R) K,
	combine func(L, R) O,
) Range[O] {
	requireFunc("Join", "left key selector", keyLeft == nil)
	requireFunc("Join", "right key selector", keyRight == nil)
	requireFunc("Join", "combine function", combine == nil)
	j := &joinRange[L, R, K, O]{
		left:     left,
		right:    right,
		keyLeft:  keyLeft,
		keyRight: keyRight,
		combine:  combine,
	}
	return Range[O]{open: j.open}
}

type joinRange[L, R any, K comparable, O any] struct {
	left     Range[L]
	right    Range[R]
	keyLeft  func(L) K
	keyRight func(R) K
	combine  func(L, R) O
}

func (j *joinRange[L, R, K, O]) open() Cursor[O] {
	c := &joinCursor[L, R, K, O]{parent: j, left: j.left.Cursor()}
	c.findNext(false)
	return c
}

type joinCursor[L, R any, K comparable, O any] struct {
	parent *joinRange[L, R, K, O]
	left   Cursor[L]
	// right is nil between the end of one scan and the start of the next.
	right Cursor[R]
}

func (c *joinCursor[L, R, K, O]) findNext(stepRight bool) {
	if stepRight && c.right != nil {
		c.right.Next()
	}
	for c.left.Valid() {
		key := c.parent.keyLeft(c.left.Value())
		if c.right == nil {
			c.right = c.parent.right.Cursor()
		}
		matched := false
		for ; c.right.Valid(); c.right.Next() {
			if c.parent.keyRight(c.right.Value()) == key {
				matched = true
				break
			}
		}
		if !c.right.Valid() {
			c.right.Close()
			c.right = nil
		}
		if matched {
			return
		}
		c.left.Next()
	}
}

func (c *joinCursor[L, R, K, O]) Valid() bool { return c.left.Valid() }

func (c *joinCursor[L, R, K, O]) Value() O {
	requireValid("Cursor.Value", c.Valid())
	return c.parent.combine(c.left.Value(), c.right.Value())
}

func (c *joinCursor[L, R, K, O]) Next() {
	if !c.left.Valid() {
		return
	}
	c.findNext(true)
}

func (c *joinCursor[L, R, K, O]) Close() {
	c.left.Close()
	if c.right != nil {
		c.right.Close()
		c.right = nil
	}
}
