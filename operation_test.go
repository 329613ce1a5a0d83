package postfix

import (
	"math"
	"testing"
)

func TestParseOperation(t *testing.T) {
	list := map[string]Operation{
		"+": Add,
		"-": Sub,
		"*": Mul,
		"/": Div,
	}
	for input, output := range list {
		op, ok := ParseOperation(input)
		if !ok || op != output {
			t.Errorf("Case: %s; Actual: %v, %v; Expected: %v, %v", input, op, ok, output, true)
		}
		if op.String() != input {
			t.Errorf("Case: %s; Actual: %#v; Expected: %#v", input, op.String(), input)
		}
	}
}

func TestParseOperationRejects(t *testing.T) {
	for _, input := range []string{"", "++", "-1", "%", "x", "÷", "+ ", "**"} {
		if op, ok := ParseOperation(input); ok {
			t.Errorf("Case: %q; Actual: %v; Expected: no operation", input, op)
		}
	}
}

func TestOperationApply(t *testing.T) {
	list := []struct {
		op     Operation
		a, b   float64
		output float64
	}{
		{Add, 5, 2, 7},
		{Sub, 5, 2, 3},
		{Mul, 5, 2, 10},
		{Div, 8, 2, 4},
		{Div, 2, 8, 0.25},
	}
	for _, item := range list {
		if actual := item.op.Apply(item.a, item.b); actual != item.output {
			t.Errorf("Case: %v %v %v; Actual: %#v; Expected: %#v", item.a, item.b, item.op, actual, item.output)
		}
	}
}

func TestOperationApplyDivisorZero(t *testing.T) {
	if r := Div.Apply(5, 0); !math.IsInf(r, 1) {
		t.Errorf("Actual: %#v; Expected: %#v", r, math.Inf(1))
	}
	if r := Div.Apply(0, 0); !math.IsNaN(r) {
		t.Errorf("Actual: %#v; Expected: %#v", r, math.NaN())
	}
}

func TestOperationStringUnknown(t *testing.T) {
	if s := Operation(9).String(); s != "Operation(9)" {
		t.Errorf("Actual: %#v; Expected: %#v", s, "Operation(9)")
	}
}

func TestOperationApplyUnknownPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Actual: %#v; Expected: panic", r)
		}
	}()
	Operation(9).Apply(1, 2)
}
