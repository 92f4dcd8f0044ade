// File: severity_test.go
// Title: Severity Tests
// Description: Tests for severity strings, alerting and code-derived severity.
// Author: msto63
// Version: v0.1.1
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive severity tests
// - 2026-10-12 v0.1.1: Code mapping for the numlab code set

package error

import (
	"testing"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityLow, "low"},
		{SeverityMedium, "medium"},
		{SeverityHigh, "high"},
		{SeverityCritical, "critical"},
		{Severity(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.want {
				t.Errorf("Severity.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSeverityShouldAlert(t *testing.T) {
	if SeverityLow.ShouldAlert() || SeverityMedium.ShouldAlert() {
		t.Error("low and medium severities should not alert")
	}
	if !SeverityHigh.ShouldAlert() || !SeverityCritical.ShouldAlert() {
		t.Error("high and critical severities should alert")
	}
}

func TestGetSeverityFromCode(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeInvalidInput, SeverityLow},
		{CodeValueOutOfRange, SeverityLow},
		{CodeDivisionByZero, SeverityMedium},
		{CodeIOError, SeverityHigh},
		{CodeInvalidConfig, SeverityHigh},
		{CodeInternal, SeverityCritical},
		{CodeUnknown, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := GetSeverityFromCode(tt.code); got != tt.want {
				t.Errorf("GetSeverityFromCode(%s) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}
