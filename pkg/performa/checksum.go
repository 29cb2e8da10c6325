// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 The accuchek authors

package performa

// Checksum computes the protocol checksum for the given data: an 8-bit
// accumulator seeded with 0x6E, XORed with every data byte in order.
// Checksum(nil) == 0x6E.
func Checksum(data []byte) byte {
	sum := byte(checksumSeed)
	for _, b := range data {
		sum ^= b
	}
	return sum
}
