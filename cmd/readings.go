// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 The accuchek authors

package cmd

import (
	"fmt"
	"os"

	"github.com/idaniel86/accuchek/pkg/performa"
	"github.com/spf13/cobra"
)

var (
	readingsStart int
	readingsEnd   int
	readingsCSV   string
)

var readingsCmd = &cobra.Command{
	Use:   "readings",
	Short: "Fetch stored readings",
	Long: `Fetch stored blood-glucose readings from the meter.

Without flags, all stored readings are fetched (the range is taken from the
meter's reading count). Use --start/--end for a 1-based inclusive slice.

With --csv the readings are appended to a file, one line per reading in the
meter companion format: dd.mm.yy HH:MM; <mmol/L value>.`,
	RunE: runReadings,
}

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Show the number of stored readings",
	RunE:  runCount,
}

func init() {
	rootCmd.AddCommand(readingsCmd)
	rootCmd.AddCommand(countCmd)
	readingsCmd.Flags().IntVar(&readingsStart, "start", 0, "First reading to fetch (1-based)")
	readingsCmd.Flags().IntVar(&readingsEnd, "end", 0, "Last reading to fetch (inclusive)")
	readingsCmd.Flags().StringVar(&readingsCSV, "csv", "", "Append readings to a CSV file")
}

func runCount(cmd *cobra.Command, args []string) error {
	meter, connInfo, err := OpenMeter()
	if err != nil {
		return err
	}
	defer meter.Close()

	fmt.Printf("Connection: %s\n", connInfo)

	count, err := meter.ReadingCount()
	if err != nil {
		return err
	}
	fmt.Printf("Stored readings: %d\n", count)
	return nil
}

func runReadings(cmd *cobra.Command, args []string) error {
	meter, connInfo, err := OpenMeter()
	if err != nil {
		return err
	}
	defer meter.Close()

	fmt.Printf("Connection: %s\n", connInfo)

	start, end := readingsStart, readingsEnd
	if start == 0 && end == 0 {
		count, err := meter.ReadingCount()
		if err != nil {
			return fmt.Errorf("reading count: %w", err)
		}
		if count == 0 {
			fmt.Println("No stored readings")
			return nil
		}
		start, end = 1, count
	}

	readings, err := meter.Readings(start, end)
	if err != nil {
		return err
	}

	if readingsCSV != "" {
		return appendCSV(readingsCSV, readings)
	}

	fmt.Printf("%-17s  %-8s  %s\n", "TIMESTAMP", "mmol/L", "FLAGS")
	for _, r := range readings {
		fmt.Printf("%-17s  %-8.1f  0x%02X\n", r.Timestamp.Format("02.01.06 15:04"), r.Glucose, r.Flags)
	}
	fmt.Printf("\n%d readings\n", len(readings))
	return nil
}

func appendCSV(path string, readings []performa.Reading) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %v", path, err)
	}
	defer f.Close()

	for _, r := range readings {
		if _, err := fmt.Fprintln(f, performa.FormatReading(r)); err != nil {
			return err
		}
	}
	fmt.Printf("Appended %d readings to %s\n", len(readings), path)
	return nil
}
