package protocol

import "fmt"

// Version is the device firmware version.
// Returned by the Get Version command and embedded in FullStatus.
type Version struct {
	// Major is the first version byte
	Major byte

	// Minor is the second version byte
	Minor byte

	// Patch is the third version byte
	Patch byte
}

// String formats the version as "major.minor.patch".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// FullStatus is the complete device state record.
// Returned by the Full Status command.
type FullStatus struct {
	// Version is the firmware version
	Version Version

	// OnOff is the power status
	OnOff OnOff

	// Door is the filter door status
	Door Door

	// Disk is the disk slide status
	Disk DiskPosition

	// Filter is the filter turret status
	Filter FilterPosition

	// Cal is the calibration LED status
	Cal CalLED
}
