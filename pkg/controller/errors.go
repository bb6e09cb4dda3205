package controller

import (
	"errors"
	"fmt"
)

// Kind groups controller errors by how they are surfaced.
type Kind string

const (
	// KindConfiguration and KindValidation are shown as blocking notifications.
	KindConfiguration Kind = "configuration"
	KindValidation    Kind = "validation"
)

const (
	RegionRequiredMessage     = "Please enter a region."
	TooFewLocationsMessage    = "Please enter at least two location types."
	EndpointUnsetMessage      = "ERROR: Please set the pairing service endpoint (PAIRFINDER_ENDPOINT) before searching."
	minimumLocationTypesCount = 2
)

var (
	// ErrRegionRequired is matched by a ValidationError for an empty region.
	ErrRegionRequired = errors.New("controller: region required")
	// ErrTooFewLocationTypes is matched by a ValidationError for fewer than
	// two non-empty location types.
	ErrTooFewLocationTypes = errors.New("controller: at least two location types required")
	// ErrSubmissionInFlight is returned when OnSubmit is called while Loading.
	ErrSubmissionInFlight = errors.New("controller: submission already in flight")
)

// ConfigurationError reports that the service endpoint is unset.
type ConfigurationError struct {
	Endpoint string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("controller: endpoint %q is not configured", e.Endpoint)
}

// Kind implements the Kinded interface.
func (e *ConfigurationError) Kind() Kind { return KindConfiguration }

// UserMessage is the notification text for the surface.
func (e *ConfigurationError) UserMessage() string { return EndpointUnsetMessage }

// ValidationError reports unusable form input.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("controller: invalid %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Kind implements the Kinded interface.
func (e *ValidationError) Kind() Kind { return KindValidation }

// UserMessage is the notification text for the surface.
func (e *ValidationError) UserMessage() string { return e.Message }

// Kinded is implemented by errors surfaced as blocking notifications.
type Kinded interface {
	error
	Kind() Kind
	UserMessage() string
}

// Notification returns the text to show for err when it is a configuration or
// validation failure.
func Notification(err error) (string, bool) {
	var kinded Kinded
	if errors.As(err, &kinded) {
		return kinded.UserMessage(), true
	}
	return "", false
}
