package scanner

import (
	"github.com/tsatke/luafront/internal/source"
	"github.com/tsatke/luafront/internal/token"
)

// Component recognizes one class of lexemes.
type Component interface {
	// Name is used in diagnostics.
	Name() string
	// CanStart reports whether the component is able to scan a lexeme at
	// the current position. It does not consume input.
	CanStart(s source.Stream) bool
	// Scan consumes one lexeme.
	Scan(s source.Stream) (Lexeme, error)
	// Token turns a scanned lexeme into a typed token positioned at the
	// given span.
	Token(l Lexeme, at token.Span) (token.Token, error)
}

// Lexeme is the raw result of a scan.
type Lexeme struct {
	// Text is the recognized source text, without delimiters that the
	// component discards.
	Text string
	// Quote is the opening delimiter of a string literal.
	Quote rune
	// Long is set for long bracket strings and comments.
	Long bool
	// Level is the number of '=' of a long bracket.
	Level int
}

// peekSecond returns the character after the next one, without consuming
// anything.
func peekSecond(s source.Stream) rune {
	if s.Get() == source.EOF {
		return source.EOF
	}
	r := s.Peek()
	s.Unget()
	return r
}
