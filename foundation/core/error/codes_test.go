// File: codes_test.go
// Title: Error Code Tests
// Description: Tests for error code validation, categorization and recoverability.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive code tests
// - 2026-10-12 v0.2.0: Adjusted to the numlab code set

package error

import (
	"testing"
)

func TestCodeString(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeUnknown, "UNKNOWN"},
		{CodeValueOutOfRange, "VALUE_OUT_OF_RANGE"},
		{CodeDivisionByZero, "DIVISION_BY_ZERO"},
		{CodeIOError, "IO_ERROR"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.String(); got != tt.want {
				t.Errorf("Code.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeIsValid(t *testing.T) {
	tests := []struct {
		name string
		code Code
		want bool
	}{
		{"known code", CodeInvalidInput, true},
		{"config code", CodeInvalidConfig, true},
		{"unknown code", Code("INVALID_CODE"), false},
		{"empty code", Code(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.code.IsValid(); got != tt.want {
				t.Errorf("Code.IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeValueOutOfRange, "arithmetic"},
		{CodeDivisionByZero, "arithmetic"},
		{CodeInvalidInput, "input"},
		{CodeIOError, "io"},
		{CodeInvalidConfig, "configuration"},
		{CodeUnknown, "generic"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.want {
				t.Errorf("Code.Category() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeRecoverable(t *testing.T) {
	tests := []struct {
		code Code
		want bool
	}{
		{CodeInvalidInput, true},
		{CodeValueOutOfRange, true},
		{CodeDivisionByZero, true},
		{CodeIOError, false},
		{CodeInternal, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.Recoverable(); got != tt.want {
				t.Errorf("Code.Recoverable() = %v, want %v", got, tt.want)
			}
		})
	}
}
