package protocol

import "fmt"

// OnOff is the device power status. A sleeping device also substitutes
// Sleep for the normal status byte in run-state command responses.
type OnOff byte

const (
	// Run indicates the device is awake and running
	Run OnOff = 0x0F

	// Sleep indicates the device is in sleep mode
	Sleep OnOff = 0x7F
)

// String returns a human-readable name for the power status.
func (s OnOff) String() string {
	switch s {
	case Run:
		return "run"
	case Sleep:
		return "sleep"
	default:
		return fmt.Sprintf("unknown on/off status 0x%02X", byte(s))
	}
}

// Door is the filter door status.
type Door byte

const (
	// DoorClosed indicates the filter door is closed
	DoorClosed Door = 0x01

	// DoorOpen indicates the filter door is open
	DoorOpen Door = 0x02
)

// String returns a human-readable name for the door status.
func (d Door) String() string {
	switch d {
	case DoorClosed:
		return "closed"
	case DoorOpen:
		return "open"
	default:
		return fmt.Sprintf("unknown door status 0x%02X", byte(d))
	}
}

// DiskPosition is the position of the spinning-disk slide. Values 0-3 are
// the four fixed positions; DiskMoving and DiskError are sentinels, not
// commanded positions.
type DiskPosition byte

const (
	// DiskPos0 is the disk out of the beam path (wide field)
	DiskPos0 DiskPosition = 0x00

	// DiskPos1 is disk position 1 (low sectioning)
	DiskPos1 DiskPosition = 0x01

	// DiskPos2 is disk position 2 (mid sectioning)
	DiskPos2 DiskPosition = 0x02

	// DiskPos3 is disk position 3 (high sectioning)
	DiskPos3 DiskPosition = 0x03

	// DiskMoving indicates the slide is moving between positions
	DiskMoving DiskPosition = 0x10

	// DiskError indicates the drive failed to set the slide position
	// (end stops not detected)
	DiskError DiskPosition = 0xFF
)

// String returns a human-readable name for the disk slide status.
func (p DiskPosition) String() string {
	switch p {
	case DiskPos0:
		return "wide field"
	case DiskPos1:
		return "low sectioning"
	case DiskPos2:
		return "mid sectioning"
	case DiskPos3:
		return "high sectioning"
	case DiskMoving:
		return "moving"
	case DiskError:
		return "drive error"
	default:
		return fmt.Sprintf("unknown disk status 0x%02X", byte(p))
	}
}

// FilterPosition is the position of the filter cube turret. Values 1-4 are
// the four fixed positions; FilterMoving and FilterError are sentinels.
type FilterPosition byte

const (
	// FilterPos1 is filter position 1
	FilterPos1 FilterPosition = 0x01

	// FilterPos2 is filter position 2
	FilterPos2 FilterPosition = 0x02

	// FilterPos3 is filter position 3
	FilterPos3 FilterPosition = 0x03

	// FilterPos4 is filter position 4
	FilterPos4 FilterPosition = 0x04

	// FilterMoving indicates the turret is between positions
	FilterMoving FilterPosition = 0x10

	// FilterError indicates an error in the filter drive
	// (eg filters not present)
	FilterError FilterPosition = 0xFF
)

// String returns a human-readable name for the filter turret status.
func (p FilterPosition) String() string {
	switch p {
	case FilterPos1, FilterPos2, FilterPos3, FilterPos4:
		return fmt.Sprintf("position %d", byte(p))
	case FilterMoving:
		return "moving"
	case FilterError:
		return "drive error"
	default:
		return fmt.Sprintf("unknown filter status 0x%02X", byte(p))
	}
}

// CalLED is the calibration LED status.
type CalLED byte

const (
	// CalOn indicates the calibration LED is powered on
	CalOn CalLED = 0x01

	// CalOff indicates the calibration LED is powered off
	CalOff CalLED = 0x02
)

// String returns a human-readable name for the calibration LED status.
func (s CalLED) String() string {
	switch s {
	case CalOn:
		return "on"
	case CalOff:
		return "off"
	default:
		return fmt.Sprintf("unknown cal LED status 0x%02X", byte(s))
	}
}
