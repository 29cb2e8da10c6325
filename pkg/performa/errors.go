// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 The accuchek authors

package performa

import (
	"errors"
	"fmt"
)

// Sentinel errors for the protocol engine.
var (
	// ErrTimeout reports a read that returned zero bytes within the
	// transport's configured window. Timeouts are fatal and never retried.
	ErrTimeout = errors.New("performa: read timeout")

	// ErrIncomplete reports a receive operation that exhausted its retry
	// budget without assembling a complete response.
	ErrIncomplete = errors.New("performa: incomplete reception, retry budget exhausted")

	// ErrRejected reports a command the meter answered with NAK.
	ErrRejected = errors.New("performa: command rejected by meter")
)

// FrameErrorKind classifies packet validation failures.
type FrameErrorKind int

const (
	// FrameBadLength covers a missing or non-hex length region.
	FrameBadLength FrameErrorKind = iota
	// FrameShortData covers fewer data bytes than the length declares.
	FrameShortData
	// FrameBadChecksumField covers a missing or non-hex checksum region.
	FrameBadChecksumField
	// FrameChecksumMismatch covers a well-formed packet whose checksum
	// does not match the data.
	FrameChecksumMismatch
)

// FrameError is a packet framing or checksum validation failure. Both
// kinds consume one unit of the receiver's retry budget.
type FrameError struct {
	Kind    FrameErrorKind
	Message string
}

func (e *FrameError) Error() string {
	return "performa: " + e.Message
}

func frameErrorf(kind FrameErrorKind, format string, args ...interface{}) *FrameError {
	return &FrameError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// DecodeError reports response bytes that do not match the fixed format
// a facade operation expects. Distinct from transport and framing errors.
type DecodeError struct {
	What string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("performa: decode %s: %v", e.What, e.Err)
	}
	return "performa: decode " + e.What
}

func (e *DecodeError) Unwrap() error { return e.Err }

func decodeErrorf(what string, err error) *DecodeError {
	return &DecodeError{What: what, Err: err}
}
