package services

import "fmt"

// ErrorKind is the closed set of failure categories the HTTP layer maps to
// status codes. Every service returns errors as values; nothing panics past
// its own boundary.
type ErrorKind int

const (
	KindInvalidInput ErrorKind = iota
	KindExternalService
	KindParseFailure
	KindResourceLimit
)

type ServiceError struct {
	Kind    ErrorKind
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

func invalidInput(format string, args ...interface{}) *ServiceError {
	return &ServiceError{Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func externalFailure(format string, args ...interface{}) *ServiceError {
	return &ServiceError{Kind: KindExternalService, Message: fmt.Sprintf(format, args...)}
}

func parseFailure(format string, args ...interface{}) *ServiceError {
	return &ServiceError{Kind: KindParseFailure, Message: fmt.Sprintf(format, args...)}
}

func resourceLimit(format string, args ...interface{}) *ServiceError {
	return &ServiceError{Kind: KindResourceLimit, Message: fmt.Sprintf(format, args...)}
}
