// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 The accuchek authors

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Set the meter clock from the host clock",
	Long: `Write the host's current date and time to the meter.

The date and time are two separate meter settings and are written in two
exchanges; the time is written last so the clock ends as close to the host
clock as the link allows.`,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	meter, connInfo, err := OpenMeter()
	if err != nil {
		return err
	}
	defer meter.Close()

	fmt.Printf("Connection: %s\n", connInfo)

	now := time.Now()
	if err := meter.SetDate(now); err != nil {
		return fmt.Errorf("set date: %w", err)
	}
	if err := meter.SetTime(now); err != nil {
		return fmt.Errorf("set time: %w", err)
	}

	fmt.Printf("Meter clock set to %s\n", now.Format("02.01.2006 15:04:05"))
	return nil
}
