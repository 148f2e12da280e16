package apperr

import (
	"net/http"
)

// Error carries an HTTP status alongside the message the client should
// see. The store layer raises these for domain-level validation; the
// error middleware passes them through verbatim.
type Error struct {
	Status int
	Msg    string
}

func (e *Error) Error() string {
	return e.Msg
}

func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Msg: msg}
}

func BadRequest(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Msg: msg}
}
