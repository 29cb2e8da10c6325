// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 The accuchek authors

package performa

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
)

// ============================================================
// Test Helpers
// ============================================================

// fakePort is a scripted in-memory Port. Reads consume rx chunks in
// order; each chunk models one burst from the meter, so Available()
// reports the pending burst the way a real UART driver would. An empty
// script reads as a transport timeout (0, nil).
type fakePort struct {
	rx     [][]byte
	tx     []byte
	closed bool
}

func (p *fakePort) Read(buf []byte) (int, error) {
	if len(p.rx) == 0 {
		return 0, nil
	}
	chunk := p.rx[0]
	n := copy(buf, chunk)
	if n < len(chunk) {
		p.rx[0] = chunk[n:]
	} else {
		p.rx = p.rx[1:]
	}
	return n, nil
}

func (p *fakePort) Write(buf []byte) (int, error) {
	p.tx = append(p.tx, buf...)
	return len(buf), nil
}

func (p *fakePort) Close() error {
	p.closed = true
	return nil
}

func (p *fakePort) Available() (int, error) {
	if len(p.rx) == 0 {
		return 0, nil
	}
	return len(p.rx[0]), nil
}

func newFakePort(chunks ...[]byte) *fakePort {
	return &fakePort{rx: chunks}
}

func newTestProtocol(port Port) *Protocol {
	return NewProtocol(port, DefaultRetries, zerolog.Nop())
}

// inboundFrame builds a complete device-to-host packet for data: STX +
// hex length + data + hex checksum + ETX/EOT.
func inboundFrame(data []byte, last bool) []byte {
	buf := []byte{STX}
	buf = append(buf, fmt.Sprintf("%02X", len(data))...)
	buf = append(buf, data...)
	buf = append(buf, fmt.Sprintf("%02X", Checksum(data))...)
	if last {
		buf = append(buf, EOT)
	} else {
		buf = append(buf, ETX)
	}
	return buf
}

// inboundBody is the frame body between the markers, as the receiver
// buffers it for ParseFrame.
func inboundBody(data []byte) []byte {
	frame := inboundFrame(data, true)
	return frame[1 : len(frame)-1]
}

// commandStream is the echoed byte stream for an opcode and its fields,
// without the trailing CR.
func commandStream(opcode byte, fields ...[]byte) []byte {
	stream := []byte{opcode}
	for _, f := range fields {
		stream = append(stream, FieldSeparator)
		stream = append(stream, f...)
	}
	return stream
}

// ============================================================
// Checksum Tests
// ============================================================

func TestChecksum_Empty(t *testing.T) {
	if sum := Checksum(nil); sum != 0x6E {
		t.Errorf("Checksum(nil) = 0x%02X, want 0x6E", sum)
	}
	if sum := Checksum([]byte{}); sum != 0x6E {
		t.Errorf("Checksum(empty) = 0x%02X, want 0x6E", sum)
	}
}

func TestChecksum_KnownValues(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected byte
	}{
		{name: "single zero byte", data: []byte{0x00}, expected: 0x6E},
		{name: "seed byte cancels", data: []byte{0x6E}, expected: 0x00},
		{name: "single letter", data: []byte("A"), expected: 0x2F},
		{name: "ABC", data: []byte("ABC"), expected: 0x2E},
		{name: "separator-wrapped digits", data: []byte("\t00\t"), expected: 0x6E},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if sum := Checksum(tt.data); sum != tt.expected {
				t.Errorf("Checksum(%q) = 0x%02X, want 0x%02X", tt.data, sum, tt.expected)
			}
		})
	}
}

func TestChecksum_SelfInverse(t *testing.T) {
	// XORing the same byte sequence in twice cancels back to the seed.
	inputs := [][]byte{
		[]byte("100\t120000\t200101\t00"),
		{0x00, 0xFF, 0x55, 0xAA},
		[]byte("Performa Nano"),
	}

	for _, data := range inputs {
		doubled := append(append([]byte{}, data...), data...)
		if sum := Checksum(doubled); sum != 0x6E {
			t.Errorf("Checksum(%q doubled) = 0x%02X, want 0x6E", data, sum)
		}
	}
}

// ============================================================
// Frame Tests
// ============================================================

func TestParseFrame_Valid(t *testing.T) {
	data := []byte("ABC")
	got, err := ParseFrame(inboundBody(data))
	if err != nil {
		t.Fatalf("ParseFrame failed: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("ParseFrame = %q, want %q", got, data)
	}
}

func TestParseFrame_Errors(t *testing.T) {
	tests := []struct {
		name string
		body []byte
		kind FrameErrorKind
	}{
		{name: "empty", body: nil, kind: FrameBadLength},
		{name: "one length byte", body: []byte("0"), kind: FrameBadLength},
		{name: "non-hex length", body: []byte("ZZABC2E"), kind: FrameBadLength},
		{name: "short data", body: []byte("05AB"), kind: FrameShortData},
		{name: "missing checksum", body: []byte("03ABC2"), kind: FrameBadChecksumField},
		{name: "non-hex checksum", body: []byte("03ABCZZ"), kind: FrameBadChecksumField},
		{name: "checksum mismatch", body: []byte("03ABC00"), kind: FrameChecksumMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFrame(tt.body)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var ferr *FrameError
			if !errors.As(err, &ferr) {
				t.Fatalf("expected *FrameError, got %T", err)
			}
			if ferr.Kind != tt.kind {
				t.Errorf("kind = %d, want %d", ferr.Kind, tt.kind)
			}
		})
	}
}

func TestParseFrame_IgnoresTrailingBytes(t *testing.T) {
	body := append(inboundBody([]byte("ABC")), "junk"...)
	got, err := ParseFrame(body)
	if err != nil {
		t.Fatalf("ParseFrame failed: %v", err)
	}
	if !bytes.Equal(got, []byte("ABC")) {
		t.Errorf("ParseFrame = %q, want %q", got, "ABC")
	}
}

func TestParseFrame_RoundTrip(t *testing.T) {
	// Decoding then re-encoding reproduces the original length and
	// checksum fields.
	payloads := [][]byte{
		[]byte("0"),
		[]byte("\t100\t120000\t200101\t00\t"),
		[]byte("Performa Nano"),
		bytes.Repeat([]byte("x"), 0x40),
	}

	for _, data := range payloads {
		body := inboundBody(data)
		decoded, err := ParseFrame(body)
		if err != nil {
			t.Fatalf("ParseFrame(%q) failed: %v", data, err)
		}
		if !bytes.Equal(inboundBody(decoded), body) {
			t.Errorf("round trip mismatch for %q", data)
		}
	}
}

func TestEncodeFrame_Empty(t *testing.T) {
	if packet := EncodeFrame(); packet != nil {
		t.Errorf("EncodeFrame() = %v, want nil", packet)
	}
}

func TestEncodeFrame_SingleField(t *testing.T) {
	packet := EncodeFrame([]byte("200102"))

	// data = TAB + field + TAB, length as two decimal digits
	data := []byte("\t200102\t")
	want := []byte{STX}
	want = append(want, '0', '8')
	want = append(want, data...)
	want = append(want, fmt.Sprintf("%02X", Checksum(data))...)
	want = append(want, EOT)

	if !bytes.Equal(packet, want) {
		t.Errorf("EncodeFrame = % X, want % X", packet, want)
	}
}

func TestEncodeFrame_MultipleFields(t *testing.T) {
	packet := EncodeFrame([]byte("1"), []byte("10"))

	data := []byte("\t1\t10\t")
	if !bytes.Contains(packet, data) {
		t.Errorf("packet % X does not contain data % X", packet, data)
	}
	if packet[0] != STX || packet[len(packet)-1] != EOT {
		t.Error("packet not bracketed by STX/EOT")
	}
	if string(packet[1:3]) != "06" {
		t.Errorf("length field = %q, want \"06\" (decimal digits)", packet[1:3])
	}
}

// ============================================================
// Formatter Tests
// ============================================================

func TestFormatOpcode(t *testing.T) {
	tests := []struct {
		opcode   byte
		expected string
	}{
		{OpGetAndClearStatus, "GET_AND_CLEAR_STATUS"},
		{OpGetReadings, "GET_READINGS"},
		{OpTurnOff, "TURN_OFF"},
		{0x7F, "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := FormatOpcode(tt.opcode); got != tt.expected {
			t.Errorf("FormatOpcode(0x%02X) = %q, want %q", tt.opcode, got, tt.expected)
		}
	}
}

func TestFormatControlByte(t *testing.T) {
	if got := FormatControlByte(ACK); got != "ACK" {
		t.Errorf("FormatControlByte(ACK) = %q", got)
	}
	if got := FormatControlByte(0x42); got != "0x42" {
		t.Errorf("FormatControlByte(0x42) = %q", got)
	}
}
