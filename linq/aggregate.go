package linq

import "cmp"

// Adder is implemented by element types that can be summed.
type Adder[T any] interface {
	Add(T) T
}

// Averager is implemented by element types that can be averaged: summed
// and then divided by an element count.
type Averager[T any] interface {
	Adder[T]
	Div(n int) T
}

// Sum adds the elements of r. It reports false for an empty range.
func Sum[T Number](r Range[T]) (T, bool) {
	sum, n := SumAndCount(r)
	return sum, n > 0
}

// SumAndCount adds the elements of r and counts them in one traversal.
func SumAndCount[T Number](r Range[T]) (T, int) {
	var sum T
	n := 0
	for v := range r.Values() {
		sum += v
		n++
	}
	return sum, n
}

// Average returns the arithmetic mean of r as a float64. It reports false
// for an empty range.
func Average[T Number](r Range[T]) (float64, bool) {
	sum, n := SumAndCount(r)
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}

// SumOf adds the elements of r with their Add method, starting from the
// first element. It reports false for an empty range.
func SumOf[T Adder[T]](r Range[T]) (T, bool) {
	sum, n := SumAndCountOf(r)
	return sum, n > 0
}

// SumAndCountOf is SumAndCount for types with an Add method.
func SumAndCountOf[T Adder[T]](r Range[T]) (T, int) {
	var sum T
	n := 0
	for v := range r.Values() {
		if n == 0 {
			sum = v
		} else {
			sum = sum.Add(v)
		}
		n++
	}
	return sum, n
}

// AverageOf returns the sum of r divided by its length, using the element
// type's own Add and Div.
func AverageOf[T Averager[T]](r Range[T]) (T, bool) {
	sum, n := SumAndCountOf(r)
	if n == 0 {
		var zero T
		return zero, false
	}
	return sum.Div(n), true
}

// Min returns the smallest element of r. Of equal elements the first wins.
func Min[T cmp.Ordered](r Range[T]) (T, bool) {
	return r.MinFunc(cmp.Compare[T])
}

// Max returns the largest element of r. Of equal elements the first wins.
func Max[T cmp.Ordered](r Range[T]) (T, bool) {
	return r.MaxFunc(cmp.Compare[T])
}

// MinFunc returns the smallest element of r according to compare.
func (r Range[T]) MinFunc(compare func(a, b T) int) (T, bool) {
	requireFunc("MinFunc", "comparator", compare == nil)
	return r.Aggregate(func(acc, v T) T {
		if compare(v, acc) < 0 {
			return v
		}
		return acc
	})
}

// MaxFunc returns the largest element of r according to compare.
func (r Range[T]) MaxFunc(compare func(a, b T) int) (T, bool) {
	requireFunc("MaxFunc", "comparator", compare == nil)
	return r.Aggregate(func(acc, v T) T {
		if compare(v, acc) > 0 {
			return v
		}
		return acc
	})
}

// Aggregate folds r from left to right, seeding the accumulator with the
// first element. It reports false for an empty range.
func (r Range[T]) Aggregate(fn func(acc, v T) T) (T, bool) {
	requireFunc("Aggregate", "accumulator", fn == nil)
	var acc T
	seeded := false
	for v := range r.Values() {
		if !seeded {
			acc, seeded = v, true
			continue
		}
		acc = fn(acc, v)
	}
	return acc, seeded
}

// Fold folds r from left to right starting from seed.
func Fold[T, A any](r Range[T], seed A, fn func(acc A, v T) A) A {
	requireFunc("Fold", "accumulator", fn == nil)
	acc := seed
	for v := range r.Values() {
		acc = fn(acc, v)
	}
	return acc
}
