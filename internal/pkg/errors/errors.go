package errors

import "errors"

var (
	ErrNotFound      = errors.New("resource not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrAssetLoad     = errors.New("asset load failure")
	ErrDatabaseError = errors.New("database error")
	ErrCacheError    = errors.New("cache error")
)

type Error struct {
	Err     error
	Message string
	Code    string
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the sentinel so callers can match with errors.Is.
func (e *Error) Unwrap() error {
	return e.Err
}

func Wrap(err error, message string) *Error {
	return &Error{
		Err:     err,
		Message: message,
		Code:    codeFor(err),
	}
}

func codeFor(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrInvalidInput):
		return "INVALID_INPUT"
	case errors.Is(err, ErrAssetLoad):
		return "ASSET_LOAD_FAILURE"
	default:
		return "INTERNAL_ERROR"
	}
}
