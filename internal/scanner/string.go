package scanner

import (
	"errors"
	"fmt"

	"github.com/tsatke/luafront/internal/fsa"
	"github.com/tsatke/luafront/internal/source"
	"github.com/tsatke/luafront/internal/token"
)

var stringAutomaton = buildStringAutomaton()

func buildStringAutomaton() *fsa.Automaton {
	b := fsa.NewBuilder("string")

	start := b.State("start")
	closed := b.Accept("closed")

	quoted := func(quote rune) {
		body := b.State(fmt.Sprintf("body %c", quote))
		escape := b.State(fmt.Sprintf("escape %c", quote))

		b.On(start, fsa.Is(quote), body, fsa.Discard)
		b.On(body, fsa.Is('\\'), escape).
			On(body, fsa.Is(quote), closed, fsa.Discard).
			On(body, fsa.Not(fsa.OneOf("\r\n")), body)
		// the escaped character is passed through verbatim
		b.On(escape, fsa.AnyChar, body)
	}
	quoted('"')
	quoted('\'')

	return b.Build()
}

// StringLiteral scans quoted strings and long bracket strings.
type StringLiteral struct {
	// DecodeEscapes enables decoding of escape sequences into the token
	// value.
	DecodeEscapes bool
}

func (StringLiteral) Name() string { return "string" }

func (StringLiteral) CanStart(s source.Stream) bool {
	switch s.Peek() {
	case '"', '\'':
		return true
	case '[':
		next := peekSecond(s)
		return next == '[' || next == '='
	}
	return false
}

func (StringLiteral) Scan(s source.Stream) (Lexeme, error) {
	quote := s.Peek()
	if quote == '[' {
		level, ok, consumed := openLongBracket(s)
		if !ok {
			return Lexeme{}, fmt.Errorf("%w %s", ErrInvalidLongBracket, consumed)
		}
		content, err := readLongBracketBody(s, level)
		if err != nil {
			return Lexeme{}, fmt.Errorf("long string: %w", err)
		}
		return Lexeme{Text: content, Quote: '[', Long: true, Level: level}, nil
	}

	text, err := stringAutomaton.Run(s)
	if err != nil {
		var pme *fsa.PatternMatchError
		if errors.As(err, &pme) && (pme.Char == source.EOF || pme.Char == '\n' || pme.Char == '\r') {
			return Lexeme{}, fmt.Errorf("%w %c%s", ErrUnterminatedString, quote, text)
		}
		return Lexeme{}, err
	}
	return Lexeme{Text: text, Quote: quote}, nil
}

func (c StringLiteral) Token(l Lexeme, at token.Span) (token.Token, error) {
	value := l.Text
	if c.DecodeEscapes && !l.Long {
		decoded, err := decodeEscapes(l.Text)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidEscape, err)
		}
		value = decoded
	}
	return token.String{
		Pos:   at,
		Text:  l.Text,
		Value: value,
		Quote: l.Quote,
		Level: l.Level,
	}, nil
}
