// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 The accuchek authors
//
// accuchek - Accu-Chek Performa Nano meter driver
//
// A CLI tool for reading status, identity, clock and stored blood-glucose
// readings from the meter over its half-duplex serial protocol.

package main

import (
	"os"

	"github.com/idaniel86/accuchek/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
