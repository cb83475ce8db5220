package errs

// ErrorKind identifies a kind of internal error.
// fully support for errors.Is and errors.As.
type ErrorKind string

const (
	// NotFound is returned when a requested item is not found.
	NotFound = ErrorKind("Not Found")

	// InvalidArgument is returned when a caller-supplied value fails validation.
	InvalidArgument = ErrorKind("Invalid Argument")

	// Unsupported is returned when a requested option is not supported.
	Unsupported = ErrorKind("Unsupported")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}
