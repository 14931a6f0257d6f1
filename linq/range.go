package linq

import "iter"

// Cursor is a forward position over the output of a Range.
//
// A cursor is positioned on an element while Valid reports true. Calling Next
// on an exhausted cursor is a no-op; calling Value on one panics.
type Cursor[T any] interface {
	// Valid reports whether the cursor is positioned on an element.
	Valid() bool
	// Value returns the element under the cursor.
	Value() T
	// Next advances to the following element.
	Next()
	// Close releases the cursor and the cursors it was built from.
	// It is safe to call Close more than once.
	Close()
}

// Range is a lazily evaluated query stage.
//
// The zero Range is empty. Ranges are values: copying one copies the stage
// description, not any data.
type Range[T any] struct {
	open func() Cursor[T]
}

// FromFunc creates a range whose traversals are produced by open.
// Each call to open must return an independent cursor.
func FromFunc[T any](open func() Cursor[T]) Range[T] {
	requireFunc("FromFunc", "open", open == nil)
	return Range[T]{open: open}
}

// Empty returns a range with no elements.
func Empty[T any]() Range[T] {
	return Range[T]{}
}

// Cursor starts a new traversal. The caller must Close the returned cursor.
func (r Range[T]) Cursor() Cursor[T] {
	if r.open == nil {
		return emptyCursor[T]{}
	}
	return r.open()
}

// Values returns an iterator over the range for use with range-over-func.
// Each call to the returned iterator is a new traversal.
func (r Range[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		c := r.Cursor()
		defer c.Close()
		for ; c.Valid(); c.Next() {
			if !yield(c.Value()) {
				return
			}
		}
	}
}

type emptyCursor[T any] struct{}

func (emptyCursor[T]) Valid() bool { return false }

func (emptyCursor[T]) Value() T {
	requireValid("Cursor.Value", false)
	var zero T
	return zero
}

func (emptyCursor[T]) Next()  {}
func (emptyCursor[T]) Close() {}
