// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Fluent error builder plus kind predicates and detail extraction
//              shared by all numlab modules.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2025-07-26 v0.1.1: Enhanced OutOfRange function with "validation failed:" prefix
// - 2026-10-12 v0.2.0: Kind predicates, builder takes typed codes

package errors

import (
	"fmt"

	nlerror "github.com/msto63/numlab/foundation/core/error"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  nlerror.Severity
	code      nlerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: nlerror.SeverityMedium,
		code:     nlerror.CodeUnknown,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity nlerror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code nlerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *nlerror.Error {
	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module

	var err *nlerror.Error
	if eb.cause != nil {
		err = nlerror.Wrap(eb.cause, eb.message)
	} else {
		err = nlerror.New(eb.message)
	}

	err = err.
		WithCode(eb.code).
		WithDetails(eb.details).
		WithSeverity(eb.severity)
	if eb.operation != "" {
		err = err.WithOperation(eb.module + "." + eb.operation)
	}
	return err
}

// IsOutOfRange reports whether err is a range error
func IsOutOfRange(err error) bool {
	return nlerror.HasCode(err, nlerror.CodeValueOutOfRange)
}

// IsDivisionByZero reports whether err is a division-by-zero error
func IsDivisionByZero(err error) bool {
	return nlerror.HasCode(err, nlerror.CodeDivisionByZero)
}

// IsInvalidInput reports whether err is an invalid-input error
func IsInvalidInput(err error) bool {
	return nlerror.HasCode(err, nlerror.CodeInvalidInput)
}

// IsIOFailure reports whether err is an I/O error
func IsIOFailure(err error) bool {
	return nlerror.HasCode(err, nlerror.CodeIOError)
}

// IsRecoverable reports whether an interactive caller may re-prompt after err
func IsRecoverable(err error) bool {
	return nlerror.GetCode(err).Recoverable()
}

// ExtractDetails returns the details of the outermost structured error, or nil
func ExtractDetails(err error) map[string]interface{} {
	if nlErr, ok := nlerror.As(err); ok {
		return nlErr.Details()
	}
	return nil
}
