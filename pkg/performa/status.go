// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 The accuchek authors

package performa

import "fmt"

// Status is a device condition code returned by the get-and-clear-status
// operation. A nonzero status is a normal decoded result, not an error;
// callers inspect it explicitly.
type Status int

// Status values. The device assigns error conditions in the 240-255
// range; 243-245 are unassigned in the modeled protocol version.
const (
	StatusNoError                   Status = 0
	StatusCommandCanceled           Status = 240
	StatusStxExpected               Status = 241
	StatusLengthExpected            Status = 242
	StatusIRDataOverrun             Status = 246
	StatusInvalidNumberOfBytes      Status = 247
	StatusInvalidParameter          Status = 248
	StatusInvalidNumberOfParameters Status = 249
	StatusReceiveBufferFull         Status = 250
	StatusCommunicationTimeout      Status = 251
	StatusCommandNotImplemented     Status = 252
	StatusCommandAborted            Status = 253
	StatusNoValidCommand            Status = 254
	StatusInitialCommunication      Status = 255
)

var statusNames = map[Status]string{
	StatusNoError:                   "NO_ERROR",
	StatusCommandCanceled:           "COMMAND_CANCELED",
	StatusStxExpected:               "STX_EXPECTED_ERROR",
	StatusLengthExpected:            "LENGTH_EXPECTED_ERROR",
	StatusIRDataOverrun:             "IR_DATA_OVERRUN",
	StatusInvalidNumberOfBytes:      "INVALID_NUMBER_OF_BYTES",
	StatusInvalidParameter:          "INVALID_PARAMETER",
	StatusInvalidNumberOfParameters: "INVALID_NUMBER_OF_PARAMETERS",
	StatusReceiveBufferFull:         "RECEIVE_BUFFER_FULL",
	StatusCommunicationTimeout:      "COMMUNICATION_TIMEOUT",
	StatusCommandNotImplemented:     "COMMAND_NOT_IMPLEMENTED",
	StatusCommandAborted:            "COMMAND_ABORTED",
	StatusNoValidCommand:            "NO_VALID_COMMAND",
	StatusInitialCommunication:      "INITIAL_COMMUNICATION",
}

// String returns the device-documentation name for the status.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(s))
}

// statusFromCode maps a raw device code to a Status. Unmapped codes are a
// decode error.
func statusFromCode(code int) (Status, error) {
	s := Status(code)
	if _, ok := statusNames[s]; !ok {
		return 0, decodeErrorf(fmt.Sprintf("status: unmapped code %d", code), nil)
	}
	return s, nil
}
