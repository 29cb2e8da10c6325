// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 The accuchek authors

package performa

// SendCommand transmits an opcode and its fields, joined by the field
// separator, one byte at a time. The meter echoes every byte; the echo is
// read back but not validated, and an echo timeout is fatal. After the
// stream a CR is sent and the meter answers ACK (a payload follows) or
// NAK (command rejected, no payload). Any other answer is logged as a
// protocol anomaly and treated as NAK.
//
// The returned bool reports whether a payload follows.
func (p *Protocol) SendCommand(opcode byte, fields ...[]byte) (bool, error) {
	stream := make([]byte, 0, 8)
	stream = append(stream, opcode)
	for _, f := range fields {
		stream = append(stream, FieldSeparator)
		stream = append(stream, f...)
	}

	for _, b := range stream {
		if err := p.sendByte(b); err != nil {
			return false, err
		}
		if _, err := p.receiveByte(); err != nil {
			return false, err
		}
	}

	if err := p.sendByte(CR); err != nil {
		return false, err
	}
	resp, err := p.receiveByte()
	if err != nil {
		return false, err
	}
	if resp != ACK && resp != NAK {
		p.log.Warn().Uint8("byte", resp).Msg("expected ACK or NAK after command")
	}
	return resp == ACK, nil
}
