// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 The accuchek authors

package performa

// SendPacket frames the given fields with EncodeFrame and transmits the
// packet, retrying identical bytes on NAK up to the retry budget. When
// the meter ACKs the packet an application-level ACK is sent back and the
// loop exits. An answer that is neither ACK nor NAK is logged, answered
// with NAK and aborts the retries. With no fields nothing is framed or
// sent, but the exchange below still runs.
//
// After the loop one further byte carries the overall operation result;
// the returned bool is true iff it is ACK.
func (p *Protocol) SendPacket(fields ...[]byte) (bool, error) {
	packet := EncodeFrame(fields...)
	retries := p.retries

	for retries > 0 {
		retries--
		if len(packet) > 0 {
			if err := p.send(packet); err != nil {
				return false, err
			}
		}

		resp, err := p.receiveByte()
		if err != nil {
			return false, err
		}
		if resp == NAK {
			continue
		}
		if resp == ACK {
			if err := p.sendByte(ACK); err != nil {
				return false, err
			}
			break
		}
		p.log.Warn().Uint8("byte", resp).Msg("expected ACK or NAK for packet")
		if err := p.sendByte(NAK); err != nil {
			return false, err
		}
		break
	}

	result, err := p.receiveByte()
	if err != nil {
		return false, err
	}
	if result != ACK && result != NAK {
		p.log.Warn().Uint8("byte", result).Msg("expected ACK or NAK operation result")
	}
	return result == ACK, nil
}
