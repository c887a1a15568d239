package protocol

// USB identity of the Aurox Clarity in its normal run state.
const (
	// VendorID is the Aurox USB vendor ID
	VendorID = 0x1F0A

	// ProductID is the Clarity product ID when running application firmware
	ProductID = 0x0088
)

// Frame geometry constants.
const (
	// RecordLength is the fixed record size for run-state commands.
	// Both the outbound command frame and the inbound response are
	// records of this size.
	RecordLength = 16

	// MinFrameLength is the smallest frame that can carry a command:
	// REPORT_ID(1) + CMD(1) + PARAM(1)
	MinFrameLength = 3
)

// Common command bytes.
const (
	// CmdGetVersion requests the firmware version; no data out,
	// returns 3 version bytes
	CmdGetVersion = 0x00

	// CmdError is echoed by the device in place of a command byte when
	// the sent command was not understood
	CmdError = 0xFF
)

// Run-state status commands. These are RecordLength-byte records consisting
// of a single command byte immediately followed by any data; the response
// has the same format. A sleeping device answers with Sleep in place of the
// normal status byte.
const (
	// CmdGetOnOff requests the 1-byte on/off status
	CmdGetOnOff = 0x12

	// CmdGetDoor requests the 1-byte filter door status, or Sleep if
	// the device is sleeping
	CmdGetDoor = 0x13

	// CmdGetDisk requests the 1-byte disk-slide status, or Sleep if
	// the device is sleeping
	CmdGetDisk = 0x14

	// CmdGetFilter requests the 1-byte filter position, or Sleep if
	// the device is sleeping
	CmdGetFilter = 0x15

	// CmdGetCal requests the 1-byte calibration LED status, or Sleep if
	// the device is sleeping
	CmdGetCal = 0x16

	// CmdGetSerial requests the 4-byte packed-BCD serial number
	// (little-endian byte significance)
	CmdGetSerial = 0x19

	// CmdFullStatus requests the full state record:
	// VERSION[3], ONOFF, DOOR, DISK, FILTER, CAL
	CmdFullStatus = 0x1F
)

// Run-state action commands. Each takes a 1-byte parameter and echoes the
// resulting status, or Sleep if the device is sleeping.
const (
	// CmdSetOnOff switches the device between Run and Sleep
	CmdSetOnOff = 0x21

	// CmdSetDisk moves the disk slide to a DiskPosition
	CmdSetDisk = 0x23

	// CmdSetFilter moves the filter turret to a FilterPosition
	CmdSetFilter = 0x24

	// CmdSetCal switches the calibration LED on or off
	CmdSetCal = 0x25
)

// CmdSetServiceMode enters or leaves service mode, which stops the disk
// spinning for alignment purposes. Sleep as the parameter activates service
// mode and Run returns the unit to its normal run state.
//
// Service mode is not for general use; this library defines the wire
// constant but deliberately provides no accessor for it.
const CmdSetServiceMode = 0xE0
