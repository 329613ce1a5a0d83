package postfix

import "fmt"

// ErrInvalidToken error is returned when a token is neither one of the four operators nor a
// base-10 integer literal that fits in 32 bits.
type ErrInvalidToken struct {
	Token  string // text of the offending token
	Offset int    // byte offset of the token within the expression
	Err    error  // underlying parse error
}

// Error returns the error string representation for ErrInvalidToken errors.
func (e ErrInvalidToken) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid token %q at offset %d", e.Token, e.Offset)
	}
	return fmt.Sprintf("invalid token %q at offset %d: %s", e.Token, e.Offset, e.Err)
}

// Cause returns the underlying parse error.
func (e ErrInvalidToken) Cause() error { return e.Err }

// Unwrap returns the underlying parse error.
func (e ErrInvalidToken) Unwrap() error { return e.Err }

// ErrStackUnderflow error is returned when an operator is reached while fewer than two operands
// are on the stack.
type ErrStackUnderflow struct {
	Operation Operation
	Offset    int // byte offset of the operator within the expression
	Depth     int // number of operands on the stack when the operator was reached
}

// Error returns the error string representation for ErrStackUnderflow errors.
func (e ErrStackUnderflow) Error() string {
	return fmt.Sprintf("stack underflow: operator %s at offset %d requires 2 operands, but only %d on stack", e.Operation, e.Offset, e.Depth)
}

// ErrMalformedExpression error is returned when, after every token has been consumed, the stack
// does not hold exactly one value.
type ErrMalformedExpression struct {
	Depth int // number of values left on the stack
}

// Error returns the error string representation for ErrMalformedExpression errors.
func (e ErrMalformedExpression) Error() string {
	if e.Depth == 0 {
		return "malformed expression: no values"
	}
	return fmt.Sprintf("malformed expression: %d values remain on stack", e.Depth)
}
