// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 The accuchek authors

// Package performa implements the half-duplex serial protocol spoken by
// the Accu-Chek Performa Nano blood-glucose meter.
//
// The protocol is a byte-oriented command/response exchange: commands are
// sent one byte at a time with each byte echoed by the meter, responses
// arrive as framed packets with an ASCII-hex length prefix and an XOR
// checksum, and every step is flow-controlled with ACK/NAK bytes. This
// package provides the handshake, packet receive/send engine, and a typed
// Meter facade for the documented operations.
package performa

// Control bytes. Fixed wire values, never negotiated.
const (
	STX = 0x02 // start of packet
	ETX = 0x03 // end of intermediate packet
	EOT = 0x04 // end of final packet
	ACK = 0x06
	TAB = 0x09 // field separator
	CR  = 0x0D
	NAK = 0x15
	CAN = 0x18
)

// FieldSeparator delimits fields inside commands and packet data.
const FieldSeparator = TAB

// Command opcodes.
const (
	OpGetAndClearStatus     = 0x0B
	OpSetMeterSetting       = 0x0C
	OpTurnOff               = 0x1D
	OpGetMeterConfiguration = 0x43
	OpGetMeterName          = 0x49
	OpClearReadings         = 0x52
	OpGetMeterSetting       = 0x53
	OpGetReadingCount       = 0x60
	OpGetReadings           = 0x61
)

// Field selectors, sent as the second command field under
// OpGetMeterSetting / OpSetMeterSetting / OpGetMeterConfiguration.
//
// FieldUnits and FieldSerialNumber share the byte value 0x33. The meter
// disambiguates by the opcode they travel under: 0x33 under
// OpGetMeterSetting selects the units string, 0x33 under
// OpGetMeterConfiguration selects the serial number. The overlap is
// preserved from the device documentation as-is.
const (
	FieldDate         = 0x31
	FieldTime         = 0x32
	FieldUnits        = 0x33
	FieldSerialNumber = 0x33
	FieldMeterNumber  = 0x34
)

// Checksum configuration: 8-bit XOR fold seeded with 110.
const checksumSeed = 0x6E

// DefaultRetries is the per-call retry budget for framing and checksum
// failures. Transport timeouts are never retried.
const DefaultRetries = 5

// Receiver states (internal).
const (
	stateIdle = iota
	stateInPacket
)
