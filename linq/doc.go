// Package linq provides lazy, composable queries over in-memory sequences.
//
// A Range is an unevaluated query stage. Operators wrap the current Range in
// a new one and never touch the data; work happens only when a terminal
// operation (ToSlice, Sum, First, ...) or a range-over-func loop starts a
// traversal. Every traversal opens a fresh chain of cursors, so the same Range
// can be consumed any number of times and always reflects the current contents
// of its sources.
//
// # Operators
//
// Stateless (streaming):
//
//   - Where: keep elements matching a predicate
//   - Select, SelectToString, SelectMany: transform and flatten
//   - Take, TakeWhile, Skip, SkipWhile: partition
//   - Append: concatenate two ranges
//
// Stateful (buffer per traversal):
//
//   - Distinct, DistinctFunc: drop repeated elements, first occurrence wins
//   - Reverse: yield back to front
//   - OrderBy, ThenBy: stable multi-key sort
//
// Reopening:
//
//   - Repeat: run the predecessor again n more times
//   - Join: nested-loop inner equi-join, rescanning the right side per left element
//
// Sources and generators: From, FromMutable, FromCopy, Of, FromSeq, FromMap,
// FromFunc, Empty, FromTo, FromToStep, FromToFunc, Generate. Trace logs one debug event at
// the start and end of each traversal.
//
// Terminal: Sum, Min, Max, Average, SumAndCount, Aggregate, Fold, First, Last,
// ElementAt, Any, All, None, Count, ToSlice, ToMap, ToUnorderedMap, ForEach.
// Terminals that have no answer for an empty range return (zero, false).
//
// # Usage
//
//	people := []Person{...}
//	names := linq.Select(
//	    linq.OrderByAscending(
//	        linq.From(&people).Where(func(p Person) bool { return p.Age >= 18 }),
//	        func(p Person) int { return p.Age },
//	    ).Range,
//	    func(p Person) string { return p.Name },
//	).ToSlice()
//
// Source adaptors either reference caller storage (From, FromMutable, FromMap)
// or own a private copy (FromCopy, Of). Referencing adaptors perform no
// synchronization: mutating the storage while a traversal is in flight gives
// unspecified results.
//
// Precondition violations (nil sources or callbacks, a zero step, reading an
// exhausted cursor) panic with an *errors.AppError.
package linq
