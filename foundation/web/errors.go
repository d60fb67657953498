package web

import "github.com/pkg/errors"

// Error is used to pass an error during the request through the application
// with web specific context: the status the client should see.
type Error struct {
	Err    error
	Status int
}

// NewRequestError wraps a provided error with an HTTP status code. This
// function should be used when repositories encounter expected conditions.
func NewRequestError(err error, status int) error {
	return &Error{Err: err, Status: status}
}

func (e *Error) Error() string {
	return e.Err.Error()
}

// IsRequestError checks if an error of type Error exists in the chain.
func IsRequestError(err error) bool {
	var e *Error
	return errors.As(err, &e)
}

// GetRequestError returns a copy of the Error in the chain, if any.
func GetRequestError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}
