package pathclient

import (
	"errors"
	"fmt"
)

// User-facing messages for failed lookups
const (
	MsgFindFailed    = "Failed to find path"
	MsgConnectFailed = "Failed to connect to server"
)

// ServerError means the service answered with a non-success status
type ServerError struct {
	StatusCode int
	// Message is the service's "error" field; empty when the body had none
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("path service: status %d", e.StatusCode)
	}
	return fmt.Sprintf("path service: status %d: %s", e.StatusCode, e.Message)
}

// UserMessage is the text shown to the user: the service's own message, or a generic one
func (e *ServerError) UserMessage() string {
	if e.Message == "" {
		return MsgFindFailed
	}
	return e.Message
}

// TransportError covers every failure where no usable answer came back:
// unreachable service, unreadable or malformed body.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("path service: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// UserMessage maps any FindPath error to the text shown to the user
func UserMessage(err error) string {
	var serverErr *ServerError
	if errors.As(err, &serverErr) {
		return serverErr.UserMessage()
	}
	return MsgConnectFailed
}

// IsTransport reports whether err means the service could not be reached or understood
func IsTransport(err error) bool {
	var serverErr *ServerError
	return err != nil && !errors.As(err, &serverErr)
}
