// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across numlab. A code is the kind
//              discriminant of an Error.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-12 v0.2.0: Arithmetic and I/O codes, dropped service and TCOL codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Arithmetic
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"
	CodeDivisionByZero  Code = "DIVISION_BY_ZERO"

	// Input/output
	CodeIOError Code = "IO_ERROR"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeValueOutOfRange, CodeDivisionByZero,
		CodeIOError,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeValueOutOfRange, CodeDivisionByZero:
		return "arithmetic"
	case CodeInvalidInput:
		return "input"
	case CodeIOError:
		return "io"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// Recoverable reports whether an interactive caller should re-prompt instead of
// aborting when it sees this code.
func (c Code) Recoverable() bool {
	switch c {
	case CodeInvalidInput, CodeValueOutOfRange, CodeDivisionByZero:
		return true
	default:
		return false
	}
}
