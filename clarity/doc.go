// Package clarity provides a session-level API for driving an Aurox Clarity
// spinning-disk confocal attachment over USB HID.
//
// # Overview
//
// A Controller owns exactly one device handle for its lifetime and exposes
// one method per logical device operation: power, door, disk position,
// filter position, calibration LED, serial number, firmware version, and
// the combined full-status record.
//
// Every operation is one atomic transaction against the hardware: a fixed
// 16-byte command record is written, then one response record is read back
// within a bounded time. A single mutex serializes transactions, so the
// Controller may be shared freely between goroutines; the protocol is
// single-outstanding-transaction by nature (one physical wire) and the lock
// preserves that.
//
// # Basic Usage
//
//	ctrl, err := clarity.Open(0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ctrl.Close()
//
//	ctx := context.Background()
//	if _, err := ctrl.SwitchOn(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	pos, err := ctrl.GetDiskPosition(ctx)
//
// # Set Operations and Echoes
//
// The set-family methods return the device's echoed status byte rather than
// discarding it. On success the echo is the command byte; protocol.CmdError
// means the command was not understood and protocol.Sleep means the device
// was asleep. The library does not interpret the echo because 0xFF is
// context-dependent on this wire (it is also the legitimate disk/filter
// drive-error status).
//
// Set operations return as soon as the device acknowledges the command; the
// mechanics may still be moving. Callers needing confirmation poll the
// corresponding get method until the Moving sentinel clears.
//
// # Error Handling
//
// Failures are reported through typed errors: DeviceNotFoundError at
// construction, TransportError for hard I/O faults, TimeoutError when no
// response arrives in time, SessionClosedError after Close, and
// protocol.MalformedResponseError for responses too short to decode.
// Transport and timeout failures never corrupt the session: the lock is
// released and the caller may retry. The library itself never retries.
package clarity
