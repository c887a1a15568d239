package protocol

// Response layout offsets. Byte 0 mirrors the outbound report ID placeholder;
// the payload starts at byte 1.
const (
	statusOffset     = 1
	serialOffset     = 1
	serialLength     = 4
	versionOffset    = 1
	versionLength    = 3
	fullStatusLength = 9
)

// ParseStatus extracts the single status byte from a response record.
//
// Response structure:
//
//	[REPORT_ID][STATUS][PADDING...]
//
// This is the decode step for every 1-byte status command (on/off, door,
// disk, filter, cal LED) and for the echo of the action commands.
func ParseStatus(resp []byte) (byte, error) {
	if len(resp) < statusOffset+1 {
		return 0, &MalformedResponseError{Field: "status byte", Length: len(resp), Need: statusOffset + 1}
	}

	return resp[statusOffset], nil
}

// ParseSerialNumber decodes the serial number from a Get Serial response.
//
// Response structure:
//
//	[REPORT_ID][BCD0][BCD1][BCD2][BCD3][PADDING...]
//
// The serial number is 4 bytes of packed BCD in little-endian byte
// significance: BCD3 holds the two most significant decimal digits and BCD0
// the two least significant, with the high nibble of each byte being the
// more significant digit of its pair.
//
// Nibbles are not range-checked. The device firmware only emits decimal
// nibbles; a corrupt record decodes to an equally corrupt integer rather
// than an error, matching the device's native encoding.
func ParseSerialNumber(resp []byte) (uint32, error) {
	if len(resp) < serialOffset+serialLength {
		return 0, &MalformedResponseError{Field: "serial number", Length: len(resp), Need: serialOffset + serialLength}
	}

	var serial uint32
	for i := serialLength - 1; i >= 0; i-- {
		serial = serial*100 + bcdPair(resp[serialOffset+i])
	}

	return serial, nil
}

// bcdPair decodes one packed-BCD byte into its two-digit decimal value.
func bcdPair(b byte) uint32 {
	return uint32(b>>4)*10 + uint32(b&0x0F)
}

// ParseVersion decodes the firmware version from a Get Version response.
//
// Response structure:
//
//	[REPORT_ID][MAJOR][MINOR][PATCH][PADDING...]
func ParseVersion(resp []byte) (Version, error) {
	if len(resp) < versionOffset+versionLength {
		return Version{}, &MalformedResponseError{Field: "version", Length: len(resp), Need: versionOffset + versionLength}
	}

	return Version{
		Major: resp[versionOffset],
		Minor: resp[versionOffset+1],
		Patch: resp[versionOffset+2],
	}, nil
}

// ParseFullStatus decodes the complete state record from a Full Status
// response.
//
// Response structure:
//
//	[REPORT_ID][MAJOR][MINOR][PATCH][ONOFF][DOOR][DISK][FILTER][CAL][PADDING...]
func ParseFullStatus(resp []byte) (*FullStatus, error) {
	if len(resp) < fullStatusLength {
		return nil, &MalformedResponseError{Field: "full status", Length: len(resp), Need: fullStatusLength}
	}

	return &FullStatus{
		Version: Version{
			Major: resp[1],
			Minor: resp[2],
			Patch: resp[3],
		},
		OnOff:  OnOff(resp[4]),
		Door:   Door(resp[5]),
		Disk:   DiskPosition(resp[6]),
		Filter: FilterPosition(resp[7]),
		Cal:    CalLED(resp[8]),
	}, nil
}
