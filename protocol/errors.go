package protocol

import "fmt"

// MalformedResponseError indicates a device response too short to hold the
// field being decoded. It is surfaced instead of silently returning zeroed
// or truncated fields.
type MalformedResponseError struct {
	// Field is the response field that was being decoded
	Field string

	// Length is the length of the response that was received
	Length int

	// Need is the minimum response length the field requires
	Need int
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response decoding %s: got %d bytes, need at least %d", e.Field, e.Length, e.Need)
}

// IsMalformedResponse returns true if the error is a MalformedResponseError.
func IsMalformedResponse(err error) bool {
	_, ok := err.(*MalformedResponseError)
	return ok
}
