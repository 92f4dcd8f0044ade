// File: example_test.go
// Title: Example Tests for MathX Package Documentation
// Description: Executable examples that serve as both documentation and tests.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial example implementation
// - 2026-10-12 v0.2.0: Examples for the Complex value type

package mathx_test

import (
	"fmt"
	"math"

	nlerrors "github.com/msto63/numlab/foundation/core/errors"
	"github.com/msto63/numlab/foundation/utils/mathx"
)

func ExampleNewComplex() {
	c, err := mathx.NewComplex(3, -4)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c)
	fmt.Println(c.Abs())

	_, err = mathx.NewComplex(math.Inf(1), 0)
	fmt.Println(nlerrors.IsOutOfRange(err))
	// Output:
	// 3.00 - 4.00i
	// 5
	// true
}

func ExampleComplex_Div() {
	a := mathx.MustNewComplex(11, 2)
	b := mathx.MustNewComplex(3, -4)

	q, _ := a.Div(b)
	fmt.Println(q)

	_, err := a.Div(mathx.Complex{})
	fmt.Println(err)
	// Output:
	// 1.00 + 2.00i
	// division by zero
}

func ExampleComplex_Format() {
	c := mathx.MustNewComplex(1.23456, 0.75)
	fmt.Println(c.Format(0))
	fmt.Println(c.Format(3))
	// Output:
	// 1 + 1i
	// 1.235 + 0.750i
}

func ExampleParseComplex() {
	c, _ := mathx.ParseComplex("2.5", "-1")
	fmt.Println(c)

	_, err := mathx.ParseComplex("two", "1")
	fmt.Println(nlerrors.IsInvalidInput(err))
	// Output:
	// 2.50 - 1.00i
	// true
}
