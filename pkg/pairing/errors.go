package pairing

import (
	"errors"
	"fmt"
)

// UnknownErrorMessage is used when a failed response carries no error text.
const UnknownErrorMessage = "An unknown error occurred."

// TransportError reports that no usable response was obtained: the request
// could not be built or sent, or the body was not valid JSON.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return "pairing: " + e.Op + " failed"
	}
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ServiceError reports a non-2xx response. Reason holds the service supplied
// message, or UnknownErrorMessage.
type ServiceError struct {
	StatusCode int
	Reason     string
}

func (e *ServiceError) Error() string {
	if e == nil {
		return ""
	}
	if e.Reason == "" {
		return UnknownErrorMessage
	}
	return e.Reason
}

// Status returns a short diagnostic suitable for logs.
func (e *ServiceError) Status() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Error())
}

// IsTransport reports whether err is a TransportError.
func IsTransport(err error) bool {
	var target *TransportError
	return errors.As(err, &target)
}

// FailureReason returns the text shown to the user for a failed exchange.
// It returns false when err is nil.
func FailureReason(err error) (string, bool) {
	if err == nil {
		return "", false
	}
	var svc *ServiceError
	if errors.As(err, &svc) {
		return svc.Error(), true
	}
	msg := err.Error()
	if msg == "" {
		msg = UnknownErrorMessage
	}
	return msg, true
}
