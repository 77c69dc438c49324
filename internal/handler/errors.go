package handler

import "net/http"

// Kind classifies a pipeline failure so the handler can pick a status code.
// Everything except bad credentials and bad input collapses to a 500; the
// message, not the status, tells the stages apart.
type Kind int

const (
	KindConfiguration Kind = iota
	KindAuthentication
	KindValidation
	KindProvider
	KindStorage
	KindPersistence
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Status() int {
	switch e.Kind {
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func fail(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// failFrom surfaces the underlying error text verbatim, matching the uniform
// {error: message} contract for downstream failures.
func failFrom(kind Kind, err error) *Error {
	return &Error{Kind: kind, Message: err.Error(), Err: err}
}
