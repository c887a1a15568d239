package clarity

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/aurox/go-clarity/protocol"
)

// Controller owns one Clarity device handle and serializes all access to it.
// Every logical operation is a single transaction: one record written, one
// record read back, performed atomically under the session's lock.
//
// Controller is safe for concurrent use. Transactions from concurrent
// goroutines are strictly serialized in lock-acquisition order; at most one
// write+read pair is ever in flight against the handle.
type Controller struct {
	dev    Transport
	config Config

	mu     sync.Mutex
	closed bool
}

// New creates a Controller over an already-open transport. The transport
// must be exclusively owned by the returned Controller for its lifetime.
//
// Example:
//
//	dev, _ := hid.OpenPath(path)
//	ctrl := clarity.New(dev, clarity.WithTimeout(250*time.Millisecond))
func New(dev Transport, opts ...Option) *Controller {
	if dev == nil {
		panic("transport cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Controller{
		dev:    dev,
		config: cfg,
	}
}

// Open enumerates attached Clarity units and opens the one at the given
// index. Returns a DeviceNotFoundError if fewer units are attached.
//
// Example:
//
//	ctrl, err := clarity.Open(0)
//	if err != nil {
//	    return err
//	}
//	defer ctrl.Close()
func Open(index int, opts ...Option) (*Controller, error) {
	dev, err := openIndex(index)
	if err != nil {
		return nil, err
	}

	return New(dev, opts...), nil
}

// Close releases the device handle. Closing an already-closed Controller is
// a no-op. After Close, every operation fails with a SessionClosedError and
// performs no transport I/O.
func (c *Controller) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	err := c.dev.Close()
	if err != nil {
		c.logError("close failed", "error", err.Error())
		return err
	}

	c.logDebug("session closed")
	return nil
}

// SendCommand performs one raw transaction: it writes a frame built from
// command and param, then reads up to maxLength response bytes, waiting at
// most timeout. The raw response bytes are returned for decoding with the
// protocol package.
//
// The typed accessors cover every general-use command; SendCommand is the
// escape hatch for non-standard record sizes and timeouts.
//
// The context is checked before lock acquisition; a transaction already
// holding the lock runs to completion or timeout and cannot be cancelled
// mid-flight.
func (c *Controller) SendCommand(ctx context.Context, command, param byte, maxLength int, timeout time.Duration) ([]byte, error) {
	return c.transact(ctx, "send command", command, param, maxLength, timeout)
}

// Transact performs one transaction with the session defaults: the standard
// run-state record length and the configured read timeout.
func (c *Controller) Transact(ctx context.Context, command, param byte) ([]byte, error) {
	return c.transact(ctx, "transact", command, param, protocol.RecordLength, c.config.ReadTimeout)
}

// transact is the write-then-read core. The lock is held from before the
// write until after the read so that no other transaction can interleave;
// it is released on every exit path.
func (c *Controller) transact(ctx context.Context, op string, command, param byte, maxLength int, timeout time.Duration) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, &SessionClosedError{Op: op}
	}

	frame, err := protocol.BuildFrame(command, param, maxLength)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	n, err := c.dev.Write(frame)
	if err != nil {
		return nil, &TransportError{Op: "write", Err: err}
	}
	if n != len(frame) {
		return nil, &TransportError{Op: "write", Err: fmt.Errorf("short write: %d of %d bytes", n, len(frame))}
	}

	resp := make([]byte, maxLength)
	n, err = c.dev.ReadWithTimeout(resp, timeout)
	if err != nil {
		return nil, &TransportError{Op: "read", Err: err}
	}
	if n == 0 {
		return nil, &TimeoutError{Op: op, Timeout: timeout}
	}

	c.logDebug("transaction",
		"command", fmt.Sprintf("0x%02X", command),
		"param", fmt.Sprintf("0x%02X", param),
		"response_len", n,
	)

	return resp[:n], nil
}

// statusTransact runs a command whose response carries a single status
// byte: the status commands and the echo of the action commands. For action
// commands the echo is the command byte on success, protocol.CmdError for a
// command the device did not understand, or protocol.Sleep from a sleeping
// device; interpretation is left to the caller.
func (c *Controller) statusTransact(ctx context.Context, op string, command, param byte) (byte, error) {
	resp, err := c.transact(ctx, op, command, param, protocol.RecordLength, c.config.ReadTimeout)
	if err != nil {
		return 0, err
	}

	return protocol.ParseStatus(resp)
}

// SwitchOn switches the device from sleep to its normal run state and
// returns the echoed status byte. The device may still be spinning up when
// the call returns; poll GetOnOff for confirmation.
func (c *Controller) SwitchOn(ctx context.Context) (byte, error) {
	return c.statusTransact(ctx, "switch on", protocol.CmdSetOnOff, byte(protocol.Run))
}

// SwitchOff puts the device into sleep mode and returns the echoed status
// byte.
func (c *Controller) SwitchOff(ctx context.Context) (byte, error) {
	return c.statusTransact(ctx, "switch off", protocol.CmdSetOnOff, byte(protocol.Sleep))
}

// GetOnOff returns the device power status.
func (c *Controller) GetOnOff(ctx context.Context) (protocol.OnOff, error) {
	status, err := c.statusTransact(ctx, "get on/off", protocol.CmdGetOnOff, 0)
	return protocol.OnOff(status), err
}

// SetDiskPosition moves the disk slide to the given position and returns
// the echoed status byte. The move has real mechanical latency: the slide
// reports DiskMoving from GetDiskPosition until it arrives.
func (c *Controller) SetDiskPosition(ctx context.Context, pos protocol.DiskPosition) (byte, error) {
	return c.statusTransact(ctx, "set disk position", protocol.CmdSetDisk, byte(pos))
}

// GetDiskPosition returns the disk slide status: a fixed position,
// DiskMoving mid-transit, DiskError on a drive fault, or
// DiskPosition(protocol.Sleep) from a sleeping device.
func (c *Controller) GetDiskPosition(ctx context.Context) (protocol.DiskPosition, error) {
	status, err := c.statusTransact(ctx, "get disk position", protocol.CmdGetDisk, 0)
	return protocol.DiskPosition(status), err
}

// SetFilterPosition moves the filter cube turret to the given position and
// returns the echoed status byte.
func (c *Controller) SetFilterPosition(ctx context.Context, pos protocol.FilterPosition) (byte, error) {
	return c.statusTransact(ctx, "set filter position", protocol.CmdSetFilter, byte(pos))
}

// GetFilterPosition returns the filter turret status: a fixed position,
// FilterMoving mid-transit, FilterError on a drive fault, or
// FilterPosition(protocol.Sleep) from a sleeping device.
func (c *Controller) GetFilterPosition(ctx context.Context) (protocol.FilterPosition, error) {
	status, err := c.statusTransact(ctx, "get filter position", protocol.CmdGetFilter, 0)
	return protocol.FilterPosition(status), err
}

// SetCalibrationLED switches the calibration LED on or off and returns the
// echoed status byte.
func (c *Controller) SetCalibrationLED(ctx context.Context, state protocol.CalLED) (byte, error) {
	return c.statusTransact(ctx, "set calibration LED", protocol.CmdSetCal, byte(state))
}

// GetCalibrationLED returns the calibration LED status.
func (c *Controller) GetCalibrationLED(ctx context.Context) (protocol.CalLED, error) {
	status, err := c.statusTransact(ctx, "get calibration LED", protocol.CmdGetCal, 0)
	return protocol.CalLED(status), err
}

// GetDoor returns the open/closed state of the filter cube turret door.
func (c *Controller) GetDoor(ctx context.Context) (protocol.Door, error) {
	status, err := c.statusTransact(ctx, "get door", protocol.CmdGetDoor, 0)
	return protocol.Door(status), err
}

// GetSerialNumber returns the device serial number.
func (c *Controller) GetSerialNumber(ctx context.Context) (uint32, error) {
	resp, err := c.transact(ctx, "get serial number", protocol.CmdGetSerial, 0, protocol.RecordLength, c.config.ReadTimeout)
	if err != nil {
		return 0, err
	}

	return protocol.ParseSerialNumber(resp)
}

// GetFullStatus returns the complete device state record in one
// transaction: firmware version plus all five status fields.
func (c *Controller) GetFullStatus(ctx context.Context) (*protocol.FullStatus, error) {
	resp, err := c.transact(ctx, "get full status", protocol.CmdFullStatus, 0, protocol.RecordLength, c.config.ReadTimeout)
	if err != nil {
		return nil, err
	}

	return protocol.ParseFullStatus(resp)
}

// GetVersion returns the device firmware version.
func (c *Controller) GetVersion(ctx context.Context) (protocol.Version, error) {
	resp, err := c.transact(ctx, "get version", protocol.CmdGetVersion, 0, protocol.RecordLength, c.config.ReadTimeout)
	if err != nil {
		return protocol.Version{}, err
	}

	return protocol.ParseVersion(resp)
}

// logDebug logs a debug message if a logger is configured.
func (c *Controller) logDebug(msg string, keysAndValues ...interface{}) {
	if c.config.Logger != nil {
		c.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logError logs an error message if a logger is configured.
func (c *Controller) logError(msg string, keysAndValues ...interface{}) {
	if c.config.Logger != nil {
		c.config.Logger.Error(msg, keysAndValues...)
	}
}
