package errors

// Common error codes. Packages define their domain codes next to the code that raises them.
const (
	ErrCodePanic       = "PANIC"
	ErrCodeUnknown     = "UNKNOWN"
	ErrCodeBadArgument = "BAD_ARGUMENT"
	ErrCodeBadState    = "BAD_STATE"
)
