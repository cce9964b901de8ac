package api

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is the terminal authentication fault: a missing credential
// or a 401 from the server. It is never retried; callers surface it so the
// user can re-authenticate.
var ErrUnauthorized = errors.New("unauthorized")

// ServerError is a non-2xx response other than 401, carrying the server's
// message. Transient as far as the retry policy is concerned.
type ServerError struct {
	Message    string
	StatusCode int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}
