package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tsatke/luafront/internal/token"
)

// ErrInternal is wrapped by every InternalError.
var ErrInternal = errors.New("internal parser error")

// Context is the kind of construct that was being parsed when a syntax error
// occurred.
type Context uint8

// Known contexts.
const (
	ContextStatement Context = iota
	ContextExpression
)

func (c Context) String() string {
	if c == ContextExpression {
		return "expression"
	}
	return "statement"
}

// SyntaxError is a mismatch between the grammar and the input. The parser
// stops at the first syntax error.
type SyntaxError struct {
	Row      uint16
	Column   uint16
	Context  Context
	Expected []string
	// Got is the raw text of the offending token.
	Got string
	// Line is the source line of the offending token, without the line
	// terminator.
	Line string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("Syntax error at (%d:%d) when parsing %s: expected any of [%s], but got %s\n%s\n",
		e.Row, e.Column, e.Context, strings.Join(e.Expected, ","), e.Got, e.Line)
}

// InternalError is returned if a production was entered without its leading
// token, which is a bug in the parser and not a problem of the input.
type InternalError struct {
	Production string
	Token      token.Token
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("%v: %s entered at (%s) with %q", ErrInternal, e.Production, e.Token.Span(), e.Token.Raw())
}

func (e *InternalError) Unwrap() error {
	return ErrInternal
}
