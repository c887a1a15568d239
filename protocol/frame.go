package protocol

import "fmt"

// BuildFrame constructs an outbound command frame of the given length.
//
// Frame structure:
//
//	[REPORT_ID][CMD][PARAM][PADDING...]
//
// Byte 0 is the HID report ID placeholder and is always zero, byte 1 is the
// command, byte 2 is the parameter, and all remaining bytes are zero padding.
// Run-state commands use RecordLength-byte frames; pass a smaller length only
// for basic commands with shorter replies.
//
// The command byte is not validated: the device rejects commands it does not
// understand by echoing CmdError, and interpreting that echo belongs to the
// caller.
func BuildFrame(command, param byte, length int) ([]byte, error) {
	if length < MinFrameLength {
		return nil, fmt.Errorf("frame length must be at least %d bytes, got %d", MinFrameLength, length)
	}

	frame := make([]byte, length)
	frame[1] = command
	frame[2] = param

	return frame, nil
}

// BuildRecord constructs a standard RecordLength-byte run-state command frame.
func BuildRecord(command, param byte) []byte {
	frame, _ := BuildFrame(command, param, RecordLength)
	return frame
}
