// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 The accuchek authors

// Package trace records protocol sessions as a stream of CBOR-encoded
// records, one per transport read or write. Captures taken with the
// --capture flag can be replayed offline to diagnose framing and
// handshake problems without the meter on hand.
package trace

import (
	"errors"
	"io"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/idaniel86/accuchek/pkg/performa"
)

// Direction of a captured transfer, relative to the host.
type Direction string

const (
	DirTx Direction = "tx"
	DirRx Direction = "rx"
)

// Record is one captured transfer.
type Record struct {
	Time time.Time `cbor:"1,keyasint"`
	Dir  Direction `cbor:"2,keyasint"`
	Data []byte    `cbor:"3,keyasint"`
}

// Writer streams records to an underlying writer as back-to-back CBOR
// items.
type Writer struct {
	enc *cbor.Encoder
}

// NewWriter creates a capture writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{enc: cbor.NewEncoder(w)}
}

// Record appends one transfer to the capture. The data slice is copied
// so callers may reuse their buffers.
func (w *Writer) Record(dir Direction, data []byte) error {
	rec := Record{
		Time: time.Now(),
		Dir:  dir,
		Data: append([]byte(nil), data...),
	}
	return w.enc.Encode(rec)
}

// ReadAll decodes every record from a capture stream.
func ReadAll(r io.Reader) ([]Record, error) {
	dec := cbor.NewDecoder(r)
	var records []Record
	for {
		var rec Record
		if err := dec.Decode(&rec); err != nil {
			if errors.Is(err, io.EOF) {
				return records, nil
			}
			return records, err
		}
		records = append(records, rec)
	}
}

// port taps a performa.Port, recording every transfer that crosses it.
// Capture failures are deliberately not surfaced: a full disk must not
// abort a running meter exchange.
type port struct {
	inner performa.Port
	w     *Writer
}

// Wrap returns a Port that forwards to inner and records all traffic.
func Wrap(inner performa.Port, w *Writer) performa.Port {
	return &port{inner: inner, w: w}
}

func (p *port) Read(buf []byte) (int, error) {
	n, err := p.inner.Read(buf)
	if n > 0 {
		_ = p.w.Record(DirRx, buf[:n])
	}
	return n, err
}

func (p *port) Write(buf []byte) (int, error) {
	n, err := p.inner.Write(buf)
	if n > 0 {
		_ = p.w.Record(DirTx, buf[:n])
	}
	return n, err
}

func (p *port) Close() error {
	return p.inner.Close()
}

func (p *port) Available() (int, error) {
	return p.inner.Available()
}
