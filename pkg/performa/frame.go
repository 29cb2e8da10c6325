// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 The accuchek authors

package performa

import (
	"fmt"
	"strconv"
)

// Inbound packet layout, between the STX and ETX/EOT markers:
//
//	length   2 ASCII-hex digits, byte count of data
//	data     length bytes
//	checksum 2 ASCII-hex digits, Checksum(data)
//
// Outbound packets use the same layout except the length is encoded as
// 2 ASCII-decimal digits. The asymmetry is a documented property of the
// device protocol, not an accident of this implementation.

// ParseFrame validates an accumulated inbound packet body and returns its
// data bytes. Failures are *FrameError values classifying the fault.
func ParseFrame(packet []byte) ([]byte, error) {
	if len(packet) < 2 {
		return nil, frameErrorf(FrameBadLength, "expected 2 length bytes, got %d", len(packet))
	}
	length, err := strconv.ParseUint(string(packet[:2]), 16, 8)
	if err != nil {
		return nil, frameErrorf(FrameBadLength, "malformed length %q", packet[:2])
	}
	n := int(length)
	if len(packet) < 2+n {
		return nil, frameErrorf(FrameShortData, "expected %d data bytes, got %d", n, len(packet)-2)
	}
	data := packet[2 : 2+n]
	if len(packet) < 2+n+2 {
		return nil, frameErrorf(FrameBadChecksumField, "expected 2 checksum bytes, got %d", len(packet)-2-n)
	}
	sum, err := strconv.ParseUint(string(packet[2+n:2+n+2]), 16, 8)
	if err != nil {
		return nil, frameErrorf(FrameBadChecksumField, "malformed checksum %q", packet[2+n:2+n+2])
	}
	if byte(sum) != Checksum(data) {
		return nil, frameErrorf(FrameChecksumMismatch, "expected 0x%02X checksum, got 0x%02X", Checksum(data), byte(sum))
	}
	return data, nil
}

// EncodeFrame builds a complete outbound packet for the given fields:
// STX + decimal length + TAB-wrapped data + hex checksum + EOT.
// With no fields the packet is empty and nothing goes on the wire.
func EncodeFrame(fields ...[]byte) []byte {
	if len(fields) == 0 {
		return nil
	}

	data := make([]byte, 0, 16)
	data = append(data, FieldSeparator)
	for i, f := range fields {
		if i > 0 {
			data = append(data, FieldSeparator)
		}
		data = append(data, f...)
	}
	data = append(data, FieldSeparator)

	packet := make([]byte, 0, len(data)+6)
	packet = append(packet, STX)
	packet = append(packet, fmt.Sprintf("%02d", len(data))...)
	packet = append(packet, data...)
	packet = append(packet, fmt.Sprintf("%02X", Checksum(data))...)
	packet = append(packet, EOT)
	return packet
}
