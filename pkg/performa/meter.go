// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 The accuchek authors

package performa

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// Meter is the typed facade over the protocol engine. It holds no
// protocol-level mutable state; every operation is a fresh exchange over
// the engine's port.
type Meter struct {
	proto   *Protocol
	retries int
	log     zerolog.Logger
}

// Option configures a Meter.
type Option func(*Meter)

// WithLogger injects a session-scoped structured logger. Protocol byte
// traces go out at debug level, anomalies at warn.
func WithLogger(log zerolog.Logger) Option {
	return func(m *Meter) { m.log = log }
}

// WithRetries overrides the per-call retry budget for framing and
// checksum failures.
func WithRetries(n int) Option {
	return func(m *Meter) { m.retries = n }
}

// NewMeter creates a meter session over the given port. The port is owned
// by the session and released by Close.
func NewMeter(port Port, opts ...Option) *Meter {
	m := &Meter{retries: DefaultRetries, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(m)
	}
	m.proto = NewProtocol(port, m.retries, m.log)
	return m
}

// Close releases the underlying port.
func (m *Meter) Close() error {
	return m.proto.Close()
}

// query runs the command handshake and, on ACK, receives the response
// blocks. A NAK handshake short-circuits with ErrRejected before any
// packet reception.
func (m *Meter) query(opcode byte, fields ...[]byte) ([][]byte, error) {
	ok, err := m.proto.SendCommand(opcode, fields...)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrRejected
	}
	return m.proto.ReceivePacket()
}

// queryFirst returns the first response block of a query.
func (m *Meter) queryFirst(opcode byte, fields ...[]byte) ([]byte, error) {
	blocks, err := m.query(opcode, fields...)
	if err != nil {
		return nil, err
	}
	if len(blocks) == 0 {
		return nil, decodeErrorf("empty response", nil)
	}
	return blocks[0], nil
}

// Status reads and clears the device status register.
func (m *Meter) Status() (Status, error) {
	block, err := m.queryFirst(OpGetAndClearStatus)
	if err != nil {
		return 0, err
	}
	code, err := strconv.ParseInt(string(block), 16, 32)
	if err != nil {
		return 0, decodeErrorf("status", err)
	}
	return statusFromCode(int(code))
}

// Name returns the meter name string.
func (m *Meter) Name() (string, error) {
	block, err := m.queryFirst(OpGetMeterName)
	if err != nil {
		return "", err
	}
	return string(block), nil
}

// MeterNumber returns the meter number from the device configuration.
func (m *Meter) MeterNumber() (string, error) {
	block, err := m.queryFirst(OpGetMeterConfiguration, []byte{FieldMeterNumber})
	if err != nil {
		return "", err
	}
	return string(block), nil
}

// SerialNumber returns the device serial number.
func (m *Meter) SerialNumber() (string, error) {
	block, err := m.queryFirst(OpGetMeterConfiguration, []byte{FieldSerialNumber})
	if err != nil {
		return "", err
	}
	return string(block), nil
}

// CurrentDate returns the meter's clock date (time part zero).
func (m *Meter) CurrentDate() (time.Time, error) {
	block, err := m.queryFirst(OpGetMeterSetting, []byte{FieldDate})
	if err != nil {
		return time.Time{}, err
	}
	d, err := time.Parse("060102", string(block))
	if err != nil {
		return time.Time{}, decodeErrorf("date", err)
	}
	return d, nil
}

// CurrentTime returns the meter's clock time (date part zero).
func (m *Meter) CurrentTime() (time.Time, error) {
	block, err := m.queryFirst(OpGetMeterSetting, []byte{FieldTime})
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse("150405", string(block))
	if err != nil {
		return time.Time{}, decodeErrorf("time", err)
	}
	return t, nil
}

// Units returns the measurement units string.
func (m *Meter) Units() (string, error) {
	block, err := m.queryFirst(OpGetMeterSetting, []byte{FieldUnits})
	if err != nil {
		return "", err
	}
	return string(block), nil
}

// ReadingCount returns the number of stored readings.
func (m *Meter) ReadingCount() (int, error) {
	block, err := m.queryFirst(OpGetReadingCount)
	if err != nil {
		return 0, err
	}
	count, err := strconv.Atoi(string(block))
	if err != nil {
		return 0, decodeErrorf("reading count", err)
	}
	return count, nil
}

// Readings fetches stored readings start through end, both 1-based and
// inclusive. The range is validated before any protocol exchange.
func (m *Meter) Readings(start, end int) ([]Reading, error) {
	if start < 1 || end < start {
		return nil, fmt.Errorf("performa: invalid reading range %d..%d", start, end)
	}
	blocks, err := m.query(OpGetReadings,
		[]byte(strconv.Itoa(start)),
		[]byte(strconv.Itoa(end)))
	if err != nil {
		return nil, err
	}
	readings := make([]Reading, 0, len(blocks))
	for _, block := range blocks {
		r, err := decodeReading(block)
		if err != nil {
			return nil, err
		}
		readings = append(readings, r)
	}
	return readings, nil
}

// setField handshakes a set-meter-setting command for the given selector
// and sends the encoded value as a single packet field.
func (m *Meter) setField(selector byte, value []byte) error {
	ok, err := m.proto.SendCommand(OpSetMeterSetting, []byte{selector})
	if err != nil {
		return err
	}
	if !ok {
		return ErrRejected
	}
	ok, err = m.proto.SendPacket(value)
	if err != nil {
		return err
	}
	if !ok {
		return ErrRejected
	}
	return nil
}

// SetDate sets the meter's clock date.
func (m *Meter) SetDate(value time.Time) error {
	return m.setField(FieldDate, []byte(value.Format("060102")))
}

// SetTime sets the meter's clock time.
func (m *Meter) SetTime(value time.Time) error {
	return m.setField(FieldTime, []byte(value.Format("150405")))
}

// TurnOff powers the meter down. Handshake only, no payload exchange; the
// final ACK/NAK is not meaningful for a device that is switching off.
func (m *Meter) TurnOff() error {
	_, err := m.proto.SendCommand(OpTurnOff)
	return err
}

// ClearReadings erases all stored readings. The exchange is an empty
// packet send: no frame goes out, only the operation acknowledgement is
// awaited.
func (m *Meter) ClearReadings() error {
	ok, err := m.proto.SendCommand(OpClearReadings)
	if err != nil {
		return err
	}
	if !ok {
		return ErrRejected
	}
	ok, err = m.proto.SendPacket()
	if err != nil {
		return err
	}
	if !ok {
		return ErrRejected
	}
	return nil
}
