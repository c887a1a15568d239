package clarity

import (
	"errors"
	"fmt"
	"time"
)

// DeviceNotFoundError indicates that enumeration found fewer Clarity units
// than the requested index. Surfaced at session construction.
type DeviceNotFoundError struct {
	// Index is the requested enumeration index
	Index int

	// Count is the number of units that were found
	Count int
}

func (e *DeviceNotFoundError) Error() string {
	return fmt.Sprintf("device %d not found: %d Clarity device(s) attached", e.Index, e.Count)
}

// SessionClosedError indicates an operation was attempted after the session
// was closed. The session performed no transport I/O.
type SessionClosedError struct {
	// Op is the operation that was attempted
	Op string
}

func (e *SessionClosedError) Error() string {
	return fmt.Sprintf("%s: session is closed", e.Op)
}

// TransportError indicates a hard I/O failure on the underlying handle.
// The transaction was aborted; the session remains usable and the caller
// may retry.
type TransportError struct {
	// Op is the transport operation that failed ("write" or "read")
	Op string

	// Err is the underlying failure
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// TimeoutError indicates that no complete response arrived within the
// configured read timeout. Surfaced distinctly from a hard I/O failure so
// callers can decide between retrying and treating the device as busy.
type TimeoutError struct {
	// Op is the operation that timed out
	Op string

	// Timeout is the bound that expired
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s: no response within %v", e.Op, e.Timeout)
}

// IsTimeout returns true if the error is a TimeoutError.
func IsTimeout(err error) bool {
	var te *TimeoutError
	return errors.As(err, &te)
}
