// Package protocol implements the Aurox Clarity wire protocol.
//
// This package provides pure, stateless translation between logical device
// operations and the fixed-size binary records exchanged with the Clarity
// over USB HID.
//
// # Protocol Overview
//
// Communication is by exchange of fixed-size records, 16 bytes for run-state
// commands. Every transaction is a write of one record followed by a read of
// one record:
//
//	Command:  [REPORT_ID][CMD][PARAM][PADDING...]
//	Response: [REPORT_ID][STATUS/DATA...][PADDING...]
//
// Where:
//   - REPORT_ID = HID report ID placeholder, always 0x00
//   - CMD = command byte (see the Cmd* constants)
//   - PARAM = optional parameter byte, 0x00 when the command takes none
//
// # Frame Building
//
// Use BuildFrame or BuildRecord to create command frames:
//
//	frame := protocol.BuildRecord(protocol.CmdSetDisk, byte(protocol.DiskPos2))
//
// # Response Parsing
//
// Use the Parse* functions matching the command that was sent:
//
//	status, err := protocol.ParseStatus(resp)       // 1-byte status commands
//	serial, err := protocol.ParseSerialNumber(resp) // Get Serial
//	version, err := protocol.ParseVersion(resp)     // Get Version
//	full, err := protocol.ParseFullStatus(resp)     // Full Status
//
// # Status Values
//
// Each status field has its own typed enumeration (OnOff, Door, DiskPosition,
// FilterPosition, CalLED) carrying the defined wire value. Sentinels such as
// Sleep, DiskMoving and FilterError are ordinary values of those types, not
// errors: a sleeping device substitutes Sleep for the normal status byte, and
// a moving turret reports FilterMoving until it arrives.
//
// Note that 0xFF is context-dependent on this wire: in the command-echo
// position it is CmdError, while in the disk and filter fields it is the
// legitimate DiskError/FilterError drive status.
package protocol
