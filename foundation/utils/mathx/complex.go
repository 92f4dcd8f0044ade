// File: complex.go
// Title: Complex Value Implementation
// Description: Implements an immutable complex number with validated construction,
//              arithmetic, magnitude ordering and fixed-precision formatting.
//              Both components are always finite; constructors reject NaN and
//              infinities with a range error.
// Author: msto63
// Version: v0.3.1
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core decimal operations
// - 2026-10-12 v0.3.0: Replaced decimal arithmetic with the Complex value type
// - 2026-10-19 v0.3.1: Scaled division, non-finite quotients are range errors

package mathx

import (
	"math"
	"strconv"
	"strings"

	nlerrors "github.com/msto63/numlab/foundation/core/errors"
)

// DefaultPrecision is the number of decimals String uses
const DefaultPrecision = 2

// MaxPrecision is the largest precision Format honours
const MaxPrecision = 12

// Complex is an immutable complex number. The zero value is 0 + 0i.
type Complex struct {
	real float64
	imag float64
}

// NewComplex creates a complex value from its real and imaginary parts.
// A part that is NaN or infinite yields a range error.
func NewComplex(re, im float64) (Complex, error) {
	if !isFinite(re) {
		return Complex{}, nlerrors.OutOfRange(nlerrors.ModuleMathx, "NewComplex", "real", re)
	}
	if !isFinite(im) {
		return Complex{}, nlerrors.OutOfRange(nlerrors.ModuleMathx, "NewComplex", "imag", im)
	}
	return Complex{real: re, imag: im}, nil
}

// MustNewComplex creates a complex value and panics on error.
// Use only with constant input.
func MustNewComplex(re, im float64) Complex {
	c, err := NewComplex(re, im)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseComplex parses the textual real and imaginary parts. Text that is not
// a number is an invalid input error; a number beyond the float64 range
// (such as 1e400) is a range error.
func ParseComplex(re, im string) (Complex, error) {
	r, err := parsePart(re, "real")
	if err != nil {
		return Complex{}, err
	}
	i, err := parsePart(im, "imag")
	if err != nil {
		return Complex{}, err
	}
	return NewComplex(r, i)
}

func parsePart(text, field string) (float64, error) {
	text = strings.TrimSpace(text)
	v, err := strconv.ParseFloat(text, 64)
	if err == nil {
		return v, nil
	}

	if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
		return 0, nlerrors.OutOfRange(nlerrors.ModuleMathx, "ParseComplex", field, text)
	}
	return 0, nlerrors.InvalidInput(nlerrors.ModuleMathx, "ParseComplex", text, "a decimal number")
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Real returns the real part
func (c Complex) Real() float64 {
	return c.real
}

// Imag returns the imaginary part
func (c Complex) Imag() float64 {
	return c.imag
}

// IsFinite reports whether both parts are finite. Values built by NewComplex
// always are; results of Add, Sub and Mul may overflow.
func (c Complex) IsFinite() bool {
	return isFinite(c.real) && isFinite(c.imag)
}

// Add returns c + o
func (c Complex) Add(o Complex) Complex {
	return Complex{real: c.real + o.real, imag: c.imag + o.imag}
}

// Sub returns c - o
func (c Complex) Sub(o Complex) Complex {
	return Complex{real: c.real - o.real, imag: c.imag - o.imag}
}

// Mul returns c * o
func (c Complex) Mul(o Complex) Complex {
	return Complex{
		real: c.real*o.real - c.imag*o.imag,
		imag: c.real*o.imag + c.imag*o.real,
	}
}

// Div returns c / o using Smith's scaling, so large and tiny divisors do not
// overflow or underflow in an intermediate square. Only o == 0 + 0i is a
// division by zero; a quotient outside the finite range is a range error.
func (c Complex) Div(o Complex) (Complex, error) {
	if o.real == 0 && o.imag == 0 {
		return Complex{}, nlerrors.DivisionByZero(nlerrors.ModuleMathx, "Div", o)
	}

	var q Complex
	if math.Abs(o.real) >= math.Abs(o.imag) {
		r := o.imag / o.real
		d := o.real + o.imag*r
		q = Complex{
			real: (c.real + c.imag*r) / d,
			imag: (c.imag - c.real*r) / d,
		}
	} else {
		r := o.real / o.imag
		d := o.real*r + o.imag
		q = Complex{
			real: (c.real*r + c.imag) / d,
			imag: (c.imag*r - c.real) / d,
		}
	}

	if !q.IsFinite() {
		return Complex{}, nlerrors.OutOfRange(nlerrors.ModuleMathx, "Div", "quotient", q)
	}
	return q, nil
}

// Abs returns the magnitude sqrt(re² + im²)
func (c Complex) Abs() float64 {
	return math.Hypot(c.real, c.imag)
}

// CompareMagnitude returns -1, 0 or +1 as |c| is less than, equal to or
// greater than |o|
func (c Complex) CompareMagnitude(o Complex) int {
	a, b := c.Abs(), o.Abs()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Less reports whether |c| < |o|
func (c Complex) Less(o Complex) bool {
	return c.Abs() < o.Abs()
}

// Greater reports whether |c| > |o|
func (c Complex) Greater(o Complex) bool {
	return c.Abs() > o.Abs()
}

// Equal reports exact component equality
func (c Complex) Equal(o Complex) bool {
	return c.real == o.real && c.imag == o.imag
}

// String formats c with DefaultPrecision decimals, e.g. "1.00 + 2.00i"
func (c Complex) String() string {
	return c.Format(DefaultPrecision)
}

// Format renders c as "R + Ii" or "R - |I|i" with prec decimals. A part that
// rounds to zero is printed without a sign. Negative precision falls back to
// DefaultPrecision and precision above MaxPrecision is capped.
func (c Complex) Format(prec int) string {
	if prec < 0 {
		prec = DefaultPrecision
	}
	if prec > MaxPrecision {
		prec = MaxPrecision
	}

	reNeg, reDigits := formatPart(c.real, prec)
	imNeg, imDigits := formatPart(c.imag, prec)

	var sb strings.Builder
	sb.Grow(len(reDigits) + len(imDigits) + 5)
	if reNeg {
		sb.WriteByte('-')
	}
	sb.WriteString(reDigits)
	if imNeg {
		sb.WriteString(" - ")
	} else {
		sb.WriteString(" + ")
	}
	sb.WriteString(imDigits)
	sb.WriteByte('i')
	return sb.String()
}

// formatPart returns the sign and the unsigned digits of v rounded to prec
// decimals. Values that round to zero are reported as non-negative.
func formatPart(v float64, prec int) (negative bool, digits string) {
	digits = strconv.FormatFloat(v, 'f', prec, 64)
	if !strings.HasPrefix(digits, "-") {
		return false, digits
	}
	digits = digits[1:]
	if strings.Trim(digits, "0.") == "" {
		return false, digits
	}
	return true, digits
}
