package api

import (
	"errors"
	"fmt"
)

// Kind classifies an API failure. Connection failures (unreachable server,
// timeout, unparseable response body) are distinct from application errors
// the server reports in its response body; the UI surfaces them differently.
type Kind int

const (
	KindConnection Kind = iota + 1
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindServer:
		return "server"
	}
	return "unknown"
}

// Error is the typed failure returned by every client operation.
// For KindServer, Message carries the server's error text verbatim.
type Error struct {
	Op      string
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s failure: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s failure: %s", e.Op, e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// UserMessage is the text shown in the notification toast: the server's own
// wording for application errors, a generic connectivity line otherwise.
func (e *Error) UserMessage() string {
	if e.Kind == KindServer && e.Message != "" {
		return e.Message
	}
	return "Unable to connect to server"
}

// ErrLimitsNotFound reports that the server has no limits record for the
// requested user. Callers render the unset state rather than an error.
var ErrLimitsNotFound = errors.New("limits not found")

// IsConnection reports whether err is a connection-kind API failure.
func IsConnection(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindConnection
}
