package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Precondition violations raised by query construction and traversal.
const (
	// ErrCodeNilSource indicates a source adaptor was given a nil collection.
	ErrCodeNilSource ErrorCode = "NIL_SOURCE"
	// ErrCodeInvalidArgument indicates an operator argument is out of its domain.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeInvalidState indicates a cursor was used outside its valid range.
	ErrCodeInvalidState ErrorCode = "INVALID_STATE"
)

// Configuration and input errors.
const (
	// ErrCodeInvalidConfig indicates the loaded configuration is unusable.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	// ErrCodeInvalidInput indicates caller supplied input failed validation.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeNotFound indicates a requested resource does not exist.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var preconditionCodes = map[ErrorCode]bool{
	ErrCodeNilSource:       true,
	ErrCodeInvalidArgument: true,
	ErrCodeInvalidState:    true,
}

// IsPreconditionCode returns true if the code marks a programmer error
// rather than a runtime condition.
func IsPreconditionCode(code ErrorCode) bool {
	return preconditionCodes[code]
}
