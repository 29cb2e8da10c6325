// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 The accuchek authors

package performa

import "github.com/rs/zerolog"

// Protocol is the byte-level engine: command handshake, packet receive
// state machine, and packet send with bounded retries. It holds no state
// across calls beyond the Port it drives.
type Protocol struct {
	port    Port
	retries int
	log     zerolog.Logger
}

// NewProtocol creates an engine over the given port. The port is owned by
// the engine from this point on.
func NewProtocol(port Port, retries int, log zerolog.Logger) *Protocol {
	if retries <= 0 {
		retries = DefaultRetries
	}
	return &Protocol{port: port, retries: retries, log: log}
}

// Close releases the underlying port.
func (p *Protocol) Close() error {
	return p.port.Close()
}

// send writes data to the port, tracing it at debug level.
func (p *Protocol) send(data []byte) error {
	p.log.Debug().Hex("tx", data).Msg("send")
	_, err := p.port.Write(data)
	return err
}

// sendByte writes a single control or command byte.
func (p *Protocol) sendByte(b byte) error {
	return p.send([]byte{b})
}

// receive reads up to max bytes, blocking up to the transport timeout.
// A zero-byte read is the transport timeout and is reported as ErrTimeout.
func (p *Protocol) receive(max int) ([]byte, error) {
	if max < 1 {
		max = 1
	}
	buf := make([]byte, max)
	n, err := p.port.Read(buf)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrTimeout
	}
	p.log.Debug().Hex("rx", buf[:n]).Msg("recv")
	return buf[:n], nil
}

// receiveByte reads exactly one byte.
func (p *Protocol) receiveByte() (byte, error) {
	data, err := p.receive(1)
	if err != nil {
		return 0, err
	}
	return data[0], nil
}
