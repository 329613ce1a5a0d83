// Package postfix evaluates arithmetic expressions written in postfix, or Reverse Polish,
// notation. An expression is a whitespace separated sequence of integer literals and the binary
// operators +, -, *, and /, evaluated left to right with an operand stack:
//
//	value, err := postfix.Evaluate("1 1 + 2 3 * -") // -4
//
// The stack holds float64 values, so division is floating-point division and division by zero
// yields an infinity or NaN rather than an error.
package postfix

import (
	"strconv"
	"strings"
)

// Expression represents a tokenized postfix expression. An Expression is immutable once created
// and may be evaluated any number of times, concurrently.
type Expression struct {
	input  string
	tokens []Token // components of the expression
}

// New returns a new Expression based on some expression. No token is classified until Evaluate
// is called, so errors are reported in the order the tokens appear.
func New(someExpression string) *Expression {
	return &Expression{
		input:  someExpression,
		tokens: Tokenize(someExpression),
	}
}

// Evaluate tokenizes and evaluates someExpression, returning the single value left on the
// operand stack.
func Evaluate(someExpression string) (float64, error) {
	e := Expression{input: someExpression}
	return e.evaluate(func(cursor *int) Token { return NextToken(someExpression, cursor) })
}

// String returns the string representation of an Expression, its tokens joined by single spaces.
func (e Expression) String() string {
	strs := make([]string, len(e.tokens))
	for idx, tok := range e.tokens {
		strs[idx] = tok.Text(e.input)
	}
	return strings.Join(strs, " ")
}

// Len returns the number of tokens in the Expression.
func (e Expression) Len() int {
	return len(e.tokens)
}

// Evaluate evaluates the Expression.
func (e *Expression) Evaluate() (float64, error) {
	return e.evaluate(func(cursor *int) Token {
		if *cursor >= len(e.tokens) {
			return Token{}
		}
		tok := e.tokens[*cursor]
		*cursor++
		return tok
	})
}

// evaluate runs the stack machine over the tokens produced by next until next returns an empty
// token.
func (e *Expression) evaluate(next func(*int) Token) (float64, error) {
	s := stack{values: make([]float64, 0, len(e.tokens))}
	var cursor int

	for {
		tok := next(&cursor)
		if tok.Empty() {
			break
		}
		text := tok.Text(e.input)

		if op, ok := ParseOperation(text); ok {
			if len(s.values) < 2 {
				return 0, ErrStackUnderflow{Operation: op, Offset: tok.Start, Depth: len(s.values)}
			}
			b := s.pop()
			a := s.pop()
			s.push(op.Apply(a, b))
			continue
		}

		n, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			if ne, ok := err.(*strconv.NumError); ok {
				err = ne.Err
			}
			return 0, ErrInvalidToken{Token: text, Offset: tok.Start, Err: err}
		}
		s.push(float64(n))
	}

	if len(s.values) != 1 {
		return 0, ErrMalformedExpression{Depth: len(s.values)}
	}
	return s.values[0], nil
}

// stack is the operand stack owned by a single evaluation.
type stack struct {
	values []float64
}

func (s *stack) push(v float64) {
	s.values = append(s.values, v)
}

// pop removes and returns the top value. Callers check depth first.
func (s *stack) pop() float64 {
	last := len(s.values) - 1
	v := s.values[last]
	s.values = s.values[:last]
	return v
}
