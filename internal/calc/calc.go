// ============================================================================
// numlab - Complex number laboratory
// ============================================================================
//
// Package:     calc
// Description: Arithmetic and comparison report for two complex values
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package calc

import (
	"strconv"

	nlerrors "github.com/msto63/numlab/foundation/core/errors"
	"github.com/msto63/numlab/foundation/utils/mathx"
)

// Result is one arithmetic outcome of a report. Err is set when the
// operation failed or overflowed; Value is then meaningless.
type Result struct {
	Label string
	Value mathx.Complex
	Err   error
}

// Report holds every operation applied to LHS and RHS
type Report struct {
	LHS mathx.Complex
	RHS mathx.Complex

	Sum        Result
	Difference Result
	Product    Result
	Quotient   Result

	Greater bool
	Equal   bool
	Less    bool
}

// Evaluate computes sum, difference, product and quotient of a and b and
// compares them. Results that overflow are reported as range errors.
func Evaluate(a, b mathx.Complex) Report {
	r := Report{
		LHS:        a,
		RHS:        b,
		Sum:        checked("Sum", a.Add(b)),
		Difference: checked("Diff", a.Sub(b)),
		Product:    checked("Mult", a.Mul(b)),
		Greater:    a.Greater(b),
		Equal:      a.Equal(b),
		Less:       a.Less(b),
	}

	q, err := a.Div(b)
	if err != nil {
		r.Quotient = Result{Label: "Div", Err: err}
	} else {
		r.Quotient = checked("Div", q)
	}

	return r
}

func checked(label string, v mathx.Complex) Result {
	if !v.IsFinite() {
		return Result{
			Label: label,
			Err:   nlerrors.OutOfRange(nlerrors.ModuleCalc, "Evaluate", label, v),
		}
	}
	return Result{Label: label, Value: v}
}

// Results returns the arithmetic results in display order
func (r Report) Results() []Result {
	return []Result{r.Sum, r.Difference, r.Product, r.Quotient}
}

// Line is one labelled row of a rendered report
type Line struct {
	Label string
	Value string
	Err   error
}

// Lines renders the report with prec decimals in the order
// Complex1, Complex2, Sum, Diff, Mult, Div, Greater, Equals, Less
func (r Report) Lines(prec int) []Line {
	lines := []Line{
		{Label: "Complex1", Value: r.LHS.Format(prec)},
		{Label: "Complex2", Value: r.RHS.Format(prec)},
	}
	for _, res := range r.Results() {
		if res.Err != nil {
			lines = append(lines, Line{Label: res.Label, Err: res.Err})
			continue
		}
		lines = append(lines, Line{Label: res.Label, Value: res.Value.Format(prec)})
	}
	return append(lines,
		Line{Label: "Greater", Value: strconv.FormatBool(r.Greater)},
		Line{Label: "Equals", Value: strconv.FormatBool(r.Equal)},
		Line{Label: "Less", Value: strconv.FormatBool(r.Less)},
	)
}
