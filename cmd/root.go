// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 The accuchek authors

package cmd

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	// Serial connection flags
	portName string
	baudRate int

	// WebSocket bridge flags
	wsURL         string
	wsUsername    string
	wsNoSSLVerify bool

	// Protocol flags
	readTimeout time.Duration
	retryBudget int

	// Diagnostics flags
	capturePath string
	verbose     bool

	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "accuchek",
	Short: "Accu-Chek Performa Nano meter driver",
	Long: `accuchek - A CLI tool for the Accu-Chek Performa Nano blood-glucose meter.

Reads device status, identity and clock, fetches and exports stored
readings, sets the meter clock and clears its memory over the meter's
half-duplex serial protocol.

Connection modes:
  Serial:    --port /dev/ttyUSB0 [--baud 9600]
  WebSocket: --url ws://host/path [--username user]

For WebSocket authentication, the password is read from the ACCUCHEK_PASSWORD
environment variable, or prompted interactively if not set. The --password
flag is intentionally not provided to avoid leaking credentials in shell history.`,
	Version: "1.0.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.WarnLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}).Level(level).With().Timestamp().Logger()
	},
}

func init() {
	// Serial connection flags
	rootCmd.PersistentFlags().StringVarP(&portName, "port", "p", "", "Serial port device")
	rootCmd.PersistentFlags().IntVarP(&baudRate, "baud", "b", 9600, "Baud rate (serial only)")

	// WebSocket bridge flags
	rootCmd.PersistentFlags().StringVarP(&wsURL, "url", "u", "", "WebSocket URL (ws:// or wss://)")
	rootCmd.PersistentFlags().StringVar(&wsUsername, "username", "", "Username for HTTP Basic auth")
	rootCmd.PersistentFlags().BoolVar(&wsNoSSLVerify, "no-ssl-verify", false, "Skip TLS certificate verification (wss:// only)")

	// Protocol flags
	rootCmd.PersistentFlags().DurationVar(&readTimeout, "timeout", time.Second, "Serial read timeout")
	rootCmd.PersistentFlags().IntVar(&retryBudget, "retries", 5, "Retry budget for framing/checksum errors")

	// Diagnostics flags
	rootCmd.PersistentFlags().StringVar(&capturePath, "capture", "", "Record the session to a CBOR capture file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log protocol byte traces")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
