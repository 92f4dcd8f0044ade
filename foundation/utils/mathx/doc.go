// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx provides the Complex value type used throughout
//              numlab: validated construction, arithmetic, magnitude ordering
//              and fixed-precision formatting.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with decimal arithmetic and business functions
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-12 v0.3.0: Package reduced to complex arithmetic

// Package mathx provides an immutable complex number type.
//
// Overview
//
// Complex holds a real and an imaginary float64 part. Both parts are finite:
// NewComplex and ParseComplex reject NaN and infinities with an error carrying
// CodeValueOutOfRange. The extreme finite values math.MaxFloat64 and
// -math.MaxFloat64 are accepted.
//
// Arithmetic
//
// Add, Sub and Mul never fail and return new values. Their results may overflow
// to infinity for very large operands; IsFinite reports whether a result still
// satisfies the construction invariant. Div fails with CodeDivisionByZero when
// the divisor's squared magnitude is zero.
//
// Ordering and Equality
//
// Less, Greater and CompareMagnitude compare magnitudes (Abs). Two different
// values can have the same magnitude, so CompareMagnitude returning 0 does not
// imply Equal. Equal compares both parts exactly with no tolerance; since
// Complex is a comparable struct, == gives the same answer.
//
// Formatting
//
// String renders two decimals in the form "R + Ii" or "R - |I|i":
//
//	c := mathx.MustNewComplex(3, -4)
//	fmt.Println(c)            // 3.00 - 4.00i
//	fmt.Println(c.Format(0))  // 3 - 4i
//
// A part that rounds to zero is printed unsigned, so "-0.00" never appears.
//
// Error Handling
//
// All errors are *error.Error values from the foundation error package and can
// be classified with the predicates of foundation/core/errors:
//
//	if _, err := mathx.ParseComplex("1e400", "0"); errors.IsOutOfRange(err) {
//		// re-prompt
//	}
package mathx
