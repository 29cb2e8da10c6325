// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 The accuchek authors

package performa

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// Glucose conversion: the meter stores mg/dL as a raw integer and the
// driver reports mmol/L, raw x 0.0555 rounded to one decimal place.
// Computed in integer tenths (x555 / 1000, half-up) so the result does
// not depend on platform floating point.
const (
	glucoseFactorNum = 555
	glucoseFactorDen = 1000
)

// Timestamp layout inside a reading: time digits then date digits,
// HHMMSS + yymmdd.
const readingTimeLayout = "150405060102"

// Reading is one stored measurement.
type Reading struct {
	Glucose   float64 // mmol/L, one decimal place
	Timestamp time.Time
	Flags     uint32 // device flag bitmask
}

// decodeReading splits a response block into its four tab-separated
// sub-fields: raw glucose integer, time digits, date digits, hex flags.
func decodeReading(block []byte) (Reading, error) {
	fields := bytes.Split(block, []byte{FieldSeparator})
	if len(fields) != 4 {
		return Reading{}, decodeErrorf(fmt.Sprintf("reading: expected 4 fields, got %d", len(fields)), nil)
	}

	raw, err := strconv.Atoi(string(fields[0]))
	if err != nil {
		return Reading{}, decodeErrorf("reading: glucose", err)
	}
	tenths := (raw*glucoseFactorNum + glucoseFactorDen/2) / glucoseFactorDen

	ts, err := time.Parse(readingTimeLayout, string(fields[1])+string(fields[2]))
	if err != nil {
		return Reading{}, decodeErrorf("reading: timestamp", err)
	}

	flags, err := strconv.ParseUint(string(fields[3]), 16, 32)
	if err != nil {
		return Reading{}, decodeErrorf("reading: flags", err)
	}

	return Reading{
		Glucose:   float64(tenths) / 10,
		Timestamp: ts,
		Flags:     uint32(flags),
	}, nil
}
