package postfix

import "fmt"

// Operation is one of the four binary arithmetic operators.
type Operation int

const (
	Add Operation = iota // a + b
	Sub                  // a - b
	Mul                  // a * b
	Div                  // a / b
)

// ParseOperation returns the Operation named by token, which must be exactly one of the single
// characters '+', '-', '*', or '/'.
func ParseOperation(token string) (Operation, bool) {
	if len(token) != 1 {
		return 0, false
	}
	switch token[0] {
	case '+':
		return Add, true
	case '-':
		return Sub, true
	case '*':
		return Mul, true
	case '/':
		return Div, true
	}
	return 0, false
}

// Apply returns the result of the operation with a as the left operand and b as the right. Division
// by zero follows IEEE-754 and yields an infinity or NaN.
func (o Operation) Apply(a, b float64) float64 {
	switch o {
	case Add:
		return a + b
	case Sub:
		return a - b
	case Mul:
		return a * b
	case Div:
		return a / b
	}
	panic(fmt.Sprintf("postfix: invalid operation %d", int(o)))
}

// String returns the operator symbol.
func (o Operation) String() string {
	switch o {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	}
	return fmt.Sprintf("Operation(%d)", int(o))
}
