package domain

import "errors"

// InputError represents a caller mistake: a required field is missing or
// unusable. The message is the exact text returned to the client.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

var (
	ErrMissingAmount  = &InputError{Message: "Missing amount"}
	ErrMissingOrderID = &InputError{Message: "Missing orderID"}
)

// IsInputError reports whether err is (or wraps) an InputError.
func IsInputError(err error) (*InputError, bool) {
	var inputErr *InputError
	ok := errors.As(err, &inputErr)
	return inputErr, ok
}
