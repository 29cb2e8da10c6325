// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 The accuchek authors

package performa

import "io"

// Port is the byte transport the protocol engine drives. Read must block
// for at most the transport's configured timeout and return (0, nil) when
// the window elapses with no data.
//
// The engine owns the Port for the lifetime of the session; the protocol
// is half-duplex with exactly one in-flight exchange, so no Port method
// is ever called concurrently.
type Port interface {
	io.Reader
	io.Writer
	io.Closer

	// Available returns the number of bytes ready to read without
	// blocking. Transports that cannot know report 0; the receiver then
	// falls back to single-byte reads.
	Available() (int, error)
}
