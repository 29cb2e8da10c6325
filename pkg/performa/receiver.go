// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 The accuchek authors

package performa

import "bytes"

// ReceivePacket runs the inbound state machine until the meter finishes
// its transmission. Each framed packet is validated and acknowledged, its
// data appended (with leading and trailing field separators stripped) to
// the response. ETX closes an intermediate packet, EOT closes the
// transmission; after EOT one further byte is read and checked for the
// meter's final ACK.
//
// Framing and checksum failures are answered with NAK and retried; once
// the retry budget is spent the call returns ErrIncomplete. A zero-byte
// read is the transport timeout and aborts immediately with ErrTimeout.
// Bytes arriving outside any packet are line noise and are discarded with
// a diagnostic, without touching the retry budget.
func (p *Protocol) ReceivePacket() ([][]byte, error) {
	var blocks [][]byte
	buffer := make([]byte, 0, 64)
	state := stateIdle
	retries := p.retries

	for {
		avail, _ := p.port.Available()
		received, err := p.receive(avail)
		if err != nil {
			return nil, err
		}

		for _, b := range received {
			switch {
			case b == STX:
				// A start marker always opens a fresh packet, discarding
				// any partial one.
				state = stateInPacket
				buffer = buffer[:0]

			case (b == ETX || b == EOT) && state == stateInPacket:
				data, ferr := ParseFrame(buffer)
				if ferr != nil {
					p.log.Error().Err(ferr).Msg("packet validation failed")
					if err := p.sendByte(NAK); err != nil {
						return nil, err
					}
					retries--
					if retries <= 0 {
						return nil, ErrIncomplete
					}
					state = stateIdle
					buffer = buffer[:0]
					continue
				}

				if err := p.sendByte(ACK); err != nil {
					return nil, err
				}
				// Copy out of the working buffer: it is reused for the
				// next packet.
				block := append([]byte(nil), bytes.Trim(data, "\t")...)
				blocks = append(blocks, block)

				if b == EOT {
					final, err := p.receiveByte()
					if err != nil {
						return nil, err
					}
					if final != ACK {
						p.log.Warn().Uint8("byte", final).Msg("expected final ACK after EOT")
					}
					return blocks, nil
				}

				state = stateIdle
				buffer = buffer[:0]

			case state == stateInPacket:
				buffer = append(buffer, b)

			default:
				p.log.Warn().Uint8("byte", b).Msg("dumping out-of-packet byte")
			}
		}
	}
}
