// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 The accuchek authors

package performa

import (
	"errors"
	"testing"
	"time"
)

func TestDecodeReading(t *testing.T) {
	tests := []struct {
		name      string
		block     string
		glucose   float64
		timestamp time.Time
		flags     uint32
	}{
		{
			name:      "reference vector",
			block:     "100\t120000\t200101\t00",
			glucose:   5.6,
			timestamp: time.Date(2020, time.January, 1, 12, 0, 0, 0, time.UTC),
			flags:     0,
		},
		{
			name:      "high value with flags",
			block:     "400\t235959\t991231\tFF",
			glucose:   22.2, // 400 x 0.0555 = 22.2 exactly
			timestamp: time.Date(1999, time.December, 31, 23, 59, 59, 0, time.UTC),
			flags:     0xFF,
		},
		{
			name:      "rounding up at midpoint",
			block:     "10\t000000\t200101\t00",
			glucose:   0.6, // 10 x 0.0555 = 0.555 -> 0.6
			timestamp: time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
			flags:     0,
		},
		{
			name:      "zero reading",
			block:     "0\t060708\t210203\t01",
			glucose:   0,
			timestamp: time.Date(2021, time.February, 3, 6, 7, 8, 0, time.UTC),
			flags:     1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := decodeReading([]byte(tt.block))
			if err != nil {
				t.Fatalf("decodeReading failed: %v", err)
			}
			if r.Glucose != tt.glucose {
				t.Errorf("glucose = %v, want %v", r.Glucose, tt.glucose)
			}
			if !r.Timestamp.Equal(tt.timestamp) {
				t.Errorf("timestamp = %v, want %v", r.Timestamp, tt.timestamp)
			}
			if r.Flags != tt.flags {
				t.Errorf("flags = %d, want %d", r.Flags, tt.flags)
			}
		})
	}
}

func TestDecodeReading_Errors(t *testing.T) {
	tests := []struct {
		name  string
		block string
	}{
		{name: "too few fields", block: "100\t120000\t200101"},
		{name: "too many fields", block: "100\t120000\t200101\t00\textra"},
		{name: "non-decimal glucose", block: "1O0\t120000\t200101\t00"},
		{name: "malformed time digits", block: "100\t1200\t200101\t00"},
		{name: "impossible time", block: "100\t256161\t200101\t00"},
		{name: "non-hex flags", block: "100\t120000\t200101\tZZ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeReading([]byte(tt.block))
			if err == nil {
				t.Fatal("expected error")
			}
			var derr *DecodeError
			if !errors.As(err, &derr) {
				t.Errorf("expected *DecodeError, got %T", err)
			}
		})
	}
}

func TestFormatReading(t *testing.T) {
	r := Reading{
		Glucose:   5.6,
		Timestamp: time.Date(2020, time.January, 1, 12, 0, 0, 0, time.UTC),
	}
	want := "01.01.20 12:00; 5.6"
	if got := FormatReading(r); got != want {
		t.Errorf("FormatReading = %q, want %q", got, want)
	}
}
