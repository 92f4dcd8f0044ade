package calc

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	nlerrors "github.com/msto63/numlab/foundation/core/errors"
	"github.com/msto63/numlab/foundation/utils/mathx"
)

func TestEvaluate(t *testing.T) {
	r := Evaluate(mathx.MustNewComplex(1, 2), mathx.MustNewComplex(3, -4))

	want := []Line{
		{Label: "Complex1", Value: "1.00 + 2.00i"},
		{Label: "Complex2", Value: "3.00 - 4.00i"},
		{Label: "Sum", Value: "4.00 - 2.00i"},
		{Label: "Diff", Value: "-2.00 + 6.00i"},
		{Label: "Mult", Value: "11.00 + 2.00i"},
		{Label: "Div", Value: "-0.20 + 0.40i"},
		{Label: "Greater", Value: "false"},
		{Label: "Equals", Value: "false"},
		{Label: "Less", Value: "true"},
	}
	if diff := cmp.Diff(want, r.Lines(2), cmpopts.EquateErrors()); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}
}

func TestEvaluateDivisionByZero(t *testing.T) {
	r := Evaluate(mathx.MustNewComplex(1, 1), mathx.Complex{})

	if !nlerrors.IsDivisionByZero(r.Quotient.Err) {
		t.Errorf("Quotient.Err = %v, want division by zero", r.Quotient.Err)
	}
	if r.Sum.Err != nil || r.Product.Err != nil {
		t.Error("other results should still be computed")
	}
	if !r.Greater || r.Less || r.Equal {
		t.Errorf("comparisons = greater %v, less %v, equal %v", r.Greater, r.Less, r.Equal)
	}

	lines := r.Lines(2)
	if lines[5].Label != "Div" || lines[5].Err == nil || lines[5].Value != "" {
		t.Errorf("Div line = %+v", lines[5])
	}
}

func TestEvaluateOverflow(t *testing.T) {
	huge := mathx.MustNewComplex(math.MaxFloat64, math.MaxFloat64)
	r := Evaluate(huge, huge)

	if !nlerrors.IsOutOfRange(r.Sum.Err) {
		t.Errorf("Sum.Err = %v, want range error", r.Sum.Err)
	}
	if !nlerrors.IsOutOfRange(r.Product.Err) {
		t.Errorf("Product.Err = %v, want range error", r.Product.Err)
	}
	if r.Difference.Err != nil {
		t.Errorf("Difference.Err = %v, want nil", r.Difference.Err)
	}
	if !r.Equal {
		t.Error("a value should equal itself")
	}
}
