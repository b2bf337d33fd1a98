package generation

import "fmt"

// ConnectivityError means the backend could not be reached at all.
type ConnectivityError struct {
	Endpoint string
	Err      error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("generation backend unreachable at %s: %v", e.Endpoint, e.Err)
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}

// ProtocolError means the backend answered with an unexpected status or an
// unusable response body.
type ProtocolError struct {
	Status int // zero when the failure is not status-related
	Reason string
}

func (e *ProtocolError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("generation backend protocol error (status %d): %s", e.Status, e.Reason)
	}
	return fmt.Sprintf("generation backend protocol error: %s", e.Reason)
}

// TimeoutError means no response arrived within the configured bound.
type TimeoutError struct {
	Endpoint string
	Err      error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("generation request to %s timed out: %v", e.Endpoint, e.Err)
}

func (e *TimeoutError) Unwrap() error {
	return e.Err
}
