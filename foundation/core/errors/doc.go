// Package errors provides the standard constructors and predicates for the four
// numlab error kinds.
//
// Package: errors
// Title: Standard Error Kinds for numlab Foundation
// Description: Every foundation and internal package builds its errors through
//              this package so that the kind (the core error Code) and the
//              details recorded for it stay consistent. Predicates walk the
//              whole chain, so errors wrapped with fmt.Errorf("%w") still match.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2026-10-12 v0.2.0: Reduced to the range, division, input and I/O kinds
//
// # Error Kinds
//
//   - OutOfRange:     a value outside the finite float64 range (VALUE_OUT_OF_RANGE)
//   - DivisionByZero: complex division by 0+0i (DIVISION_BY_ZERO)
//   - InvalidInput:   text that does not parse or violates an input bound (INVALID_INPUT)
//   - IOFailure:      a file that cannot be opened or written (IO_ERROR)
//
// # Usage
//
//	if math.IsInf(re, 0) {
//		return Complex{}, errors.OutOfRange(errors.ModuleMathx, "NewComplex", "real", re)
//	}
//
//	if errors.IsOutOfRange(err) || errors.IsInvalidInput(err) {
//		// re-prompt
//	}
package errors
