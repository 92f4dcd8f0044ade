// File: standards.go
// Title: Error Standards for numlab Foundation
// Description: Module identifiers and the per-kind error constructors used by
//              all numlab packages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2026-10-12 v0.2.0: Kind constructors for range, division, input and I/O errors

package errors

import (
	"fmt"

	nlerror "github.com/msto63/numlab/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleMathx     = "mathx"
	ModuleListx     = "listx"
	ModuleCollector = "collector"
	ModuleOutput    = "output"
	ModuleConfig    = "config"
	ModuleCalc      = "calc"
)

// OutOfRange reports a value that lies outside the finite float64 range.
func OutOfRange(module, operation, field string, value interface{}) *nlerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s is outside the representable finite range: %v", field, value).
		Code(nlerror.CodeValueOutOfRange).
		Detail("field", field).
		Detail("value", fmt.Sprint(value)).
		Severity(nlerror.SeverityLow).
		Build()
}

// DivisionByZero reports a division whose divisor has zero magnitude.
func DivisionByZero(module, operation string, divisor interface{}) *nlerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message("division by zero").
		Code(nlerror.CodeDivisionByZero).
		Detail("divisor", fmt.Sprint(divisor)).
		Severity(nlerror.SeverityMedium).
		Build()
}

// InvalidInput reports input text that does not match what was expected.
func InvalidInput(module, operation string, input interface{}, expected string) *nlerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid input %q: expected %s", fmt.Sprint(input), expected).
		Code(nlerror.CodeInvalidInput).
		Detail("input", fmt.Sprint(input)).
		Detail("expected", expected).
		Severity(nlerror.SeverityLow).
		Build()
}

// IOFailure wraps a failed open, write or close on path.
func IOFailure(module, operation, path string, cause error) *nlerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s %s", operation, path).
		Cause(cause).
		Code(nlerror.CodeIOError).
		Detail("path", path).
		Severity(nlerror.SeverityHigh).
		Build()
}

// InvalidConfig reports a configuration value that fails validation.
func InvalidConfig(key string, value interface{}, reason string) *nlerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("Validate").
		Messagef("invalid config %s=%v: %s", key, value, reason).
		Code(nlerror.CodeInvalidConfig).
		Detail("key", key).
		Detail("value", fmt.Sprint(value)).
		Severity(nlerror.SeverityHigh).
		Build()
}
