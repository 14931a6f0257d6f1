// Package errors provides the structured error type shared by golinq packages.
//
// Query operators never return errors: an empty range yields an absent result
// instead. AppError values are used for precondition violations, which the
// linq package raises as panics, and for the recoverable failures of the
// configuration and CLI layers.
package errors
