package services

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindInvalidInput ErrorKind = "invalid_input"
	KindInternal     ErrorKind = "internal"
)

// Public error messages
const (
	MsgMessagesNotArray = "Messages must be an array"
	MsgNoUserMessage    = "No user message found"
	MsgInvalidJSON      = "Invalid JSON body"
	MsgInternal         = "Internal Server Error"
)

// ServiceError separates the message safe to show the caller from the cause
type ServiceError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func invalidInput(msg string) *ServiceError {
	return &ServiceError{Kind: KindInvalidInput, Message: msg}
}

func internalError(err error) *ServiceError {
	return &ServiceError{Kind: KindInternal, Message: MsgInternal, Err: err}
}

// AsServiceError converts any error, treating unknown ones as internal
func AsServiceError(err error) *ServiceError {
	var se *ServiceError
	if errors.As(err, &se) {
		return se
	}
	return internalError(err)
}
