package clarity

import (
	"fmt"
	"time"

	"github.com/sstallion/go-hid"

	"github.com/aurox/go-clarity/protocol"
)

// Transport is the byte-level device handle a Controller drives. It is the
// minimal capability set the session needs: write one record, read one
// record within a bound, release the handle.
//
// *hid.Device from github.com/sstallion/go-hid satisfies Transport directly;
// tests and simulators provide their own implementations.
type Transport interface {
	// Write sends one output record to the device. The first byte is the
	// HID report ID, zero for the Clarity.
	Write(p []byte) (int, error)

	// ReadWithTimeout reads one input record, waiting at most timeout.
	// An expired timeout returns 0 bytes with a nil error.
	ReadWithTimeout(p []byte, timeout time.Duration) (int, error)

	// Close releases the handle.
	Close() error
}

// DeviceInfo describes an attached Clarity unit.
type DeviceInfo struct {
	// Path is the platform-specific device path used to open the unit
	Path string

	// Serial is the USB serial number string, when the platform reports one
	Serial string

	// Manufacturer is the USB manufacturer string
	Manufacturer string

	// Product is the USB product string
	Product string
}

// Enumerate lists the attached Clarity units in hidapi enumeration order.
// The returned index positions are the ones Open selects by.
func Enumerate() ([]DeviceInfo, error) {
	if err := hid.Init(); err != nil {
		return nil, fmt.Errorf("hid init: %w", err)
	}

	var devices []DeviceInfo
	err := hid.Enumerate(protocol.VendorID, protocol.ProductID, func(info *hid.DeviceInfo) error {
		devices = append(devices, DeviceInfo{
			Path:         info.Path,
			Serial:       info.SerialNbr,
			Manufacturer: info.MfrStr,
			Product:      info.ProductStr,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("hid enumerate: %w", err)
	}

	return devices, nil
}

// openIndex opens the index-th enumerated Clarity unit.
func openIndex(index int) (*hid.Device, error) {
	devices, err := Enumerate()
	if err != nil {
		return nil, err
	}

	if index < 0 || index >= len(devices) {
		return nil, &DeviceNotFoundError{Index: index, Count: len(devices)}
	}

	dev, err := hid.OpenPath(devices[index].Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", devices[index].Path, err)
	}

	return dev, nil
}
