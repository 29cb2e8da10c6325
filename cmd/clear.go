// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 The accuchek authors

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var clearForce bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Erase all stored readings from the meter",
	Long: `Erase the meter's stored readings. This is irreversible.

Asks for confirmation unless --force is given.`,
	RunE: runClear,
}

var offCmd = &cobra.Command{
	Use:   "off",
	Short: "Power the meter down",
	RunE:  runOff,
}

func init() {
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(offCmd)
	clearCmd.Flags().BoolVar(&clearForce, "force", false, "Skip the confirmation prompt")
}

func runClear(cmd *cobra.Command, args []string) error {
	if !clearForce {
		fmt.Print("Erase all stored readings? [y/N] ")
		answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return err
		}
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Aborted")
			return nil
		}
	}

	meter, connInfo, err := OpenMeter()
	if err != nil {
		return err
	}
	defer meter.Close()

	fmt.Printf("Connection: %s\n", connInfo)

	if err := meter.ClearReadings(); err != nil {
		return err
	}
	fmt.Println("Stored readings erased")
	return nil
}

func runOff(cmd *cobra.Command, args []string) error {
	meter, connInfo, err := OpenMeter()
	if err != nil {
		return err
	}
	defer meter.Close()

	fmt.Printf("Connection: %s\n", connInfo)

	if err := meter.TurnOff(); err != nil {
		return err
	}
	fmt.Println("Meter powered down")
	return nil
}
