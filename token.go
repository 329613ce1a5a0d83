package postfix

import (
	"unicode"
	"unicode/utf8"
)

// Token is a half-open byte range [Start, End) into an expression. It does not own the text it
// refers to; use Text with the original input to view it.
type Token struct {
	Start, End int
}

// Empty returns true iff the token covers no bytes, which NextToken uses to signal that the input
// is exhausted.
func (t Token) Empty() bool {
	return t.End <= t.Start
}

// Text returns the substring of input covered by the token. No bytes are copied.
func (t Token) Text(input string) string {
	return input[t.Start:t.End]
}

// NextToken skips any run of whitespace starting at *cursor, then returns the maximal run of
// non-whitespace that follows, leaving *cursor just past it. When only whitespace remains, the
// returned token is empty and *cursor is left at the end of input.
func NextToken(input string, cursor *int) Token {
	i := *cursor
	for i < len(input) {
		r, size := utf8.DecodeRuneInString(input[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += size
	}
	start := i
	for i < len(input) {
		r, size := utf8.DecodeRuneInString(input[i:])
		if unicode.IsSpace(r) {
			break
		}
		i += size
	}
	*cursor = i
	return Token{Start: start, End: i}
}

// Tokenize returns every token of input in left-to-right order.
func Tokenize(input string) []Token {
	var tokens []Token
	var cursor int
	for {
		tok := NextToken(input, &cursor)
		if tok.Empty() {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}
