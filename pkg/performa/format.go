// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 The accuchek authors

package performa

import "fmt"

// FormatOpcode returns the human-readable name for a command opcode.
func FormatOpcode(opcode byte) string {
	switch opcode {
	case OpGetAndClearStatus:
		return "GET_AND_CLEAR_STATUS"
	case OpSetMeterSetting:
		return "SET_METER_SETTING"
	case OpTurnOff:
		return "TURN_OFF"
	case OpGetMeterConfiguration:
		return "GET_METER_CONFIGURATION"
	case OpGetMeterName:
		return "GET_METER_NAME"
	case OpClearReadings:
		return "CLEAR_READINGS"
	case OpGetMeterSetting:
		return "GET_METER_SETTING"
	case OpGetReadingCount:
		return "GET_READING_COUNT"
	case OpGetReadings:
		return "GET_READINGS"
	default:
		return "UNKNOWN"
	}
}

// FormatControlByte returns the name of a control byte, or its hex value
// for anything else.
func FormatControlByte(b byte) string {
	switch b {
	case STX:
		return "STX"
	case ETX:
		return "ETX"
	case EOT:
		return "EOT"
	case ACK:
		return "ACK"
	case TAB:
		return "TAB"
	case CR:
		return "CR"
	case NAK:
		return "NAK"
	case CAN:
		return "CAN"
	default:
		return fmt.Sprintf("0x%02X", b)
	}
}

// FormatReading renders a reading the way the meter's companion software
// prints it: dd.mm.yy HH:MM followed by the mmol/L value.
func FormatReading(r Reading) string {
	return fmt.Sprintf("%s; %.1f", r.Timestamp.Format("02.01.06 15:04"), r.Glucose)
}
