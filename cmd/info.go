// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 The accuchek authors

package cmd

import (
	"errors"
	"fmt"

	"github.com/idaniel86/accuchek/pkg/performa"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show device status, identity and settings",
	Long: `Query the meter for its status register, name, meter number, serial
number, clock and measurement units, and print them in a human-readable form.

The status register is cleared by reading it; a nonzero status reports the
last device-side error condition.`,
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	meter, connInfo, err := OpenMeter()
	if err != nil {
		return err
	}
	defer meter.Close()

	fmt.Printf("Connection: %s\n\n", connInfo)

	status, err := meter.Status()
	if err != nil {
		return fmt.Errorf("status: %w", err)
	}
	fmt.Printf("Status:        %s\n", status)

	fields := []struct {
		label string
		fetch func() (string, error)
	}{
		{"Meter name", func() (string, error) { return meter.Name() }},
		{"Meter number", func() (string, error) { return meter.MeterNumber() }},
		{"Serial number", func() (string, error) { return meter.SerialNumber() }},
		{"Units", func() (string, error) { return meter.Units() }},
	}
	for _, f := range fields {
		value, err := f.fetch()
		if errors.Is(err, performa.ErrRejected) {
			fmt.Printf("%-13s (not available)\n", f.label+":")
			continue
		}
		if err != nil {
			return fmt.Errorf("%s: %w", f.label, err)
		}
		fmt.Printf("%-13s %s\n", f.label+":", value)
	}

	date, err := meter.CurrentDate()
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}
	clock, err := meter.CurrentTime()
	if err != nil {
		return fmt.Errorf("time: %w", err)
	}
	fmt.Printf("Clock:         %s %s\n", date.Format("02.01.2006"), clock.Format("15:04:05"))

	return nil
}
