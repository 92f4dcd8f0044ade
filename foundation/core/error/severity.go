// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger uses them to pick
//              the level an error is reported at.
// Author: msto63
// Version: v0.1.1
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-12 v0.1.1: Code mapping for the numlab code set

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: invalid user input, out-of-range values
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: output file cannot be written, broken configuration
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the program unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeIOError, CodeConfigError, CodeInvalidConfig:
		return SeverityHigh

	case CodeDivisionByZero:
		return SeverityMedium

	case CodeInvalidInput, CodeNotFound, CodeValueOutOfRange:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
