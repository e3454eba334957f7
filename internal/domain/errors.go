package domain

import (
	"errors"
	"fmt"
)

// ErrDistanceCalculation is the root of the calculation failure family.
// Every error a strategy returns satisfies errors.Is against it.
var ErrDistanceCalculation = errors.New("distance calculation failed")

// ErrRemoteAPI groups failures raised by the remote matrix strategy.
var ErrRemoteAPI = fmt.Errorf("remote api: %w", ErrDistanceCalculation)

// TransportError reports that a remote call never produced a usable
// response: connection failure, non-success HTTP delivery, or a body that
// would not decode.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("remote api transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return ErrRemoteAPI }

// StatusError reports a well-formed response whose status field was not the
// success sentinel. It carries the value the endpoint returned verbatim.
type StatusError struct {
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("remote api returned status %q", e.Status)
}

func (e *StatusError) Unwrap() error { return ErrRemoteAPI }
