package scanner

import (
	"github.com/tsatke/luafront/internal/fsa"
	"github.com/tsatke/luafront/internal/source"
	"github.com/tsatke/luafront/internal/token"
)

var identifierAutomaton = buildIdentifierAutomaton()

func buildIdentifierAutomaton() *fsa.Automaton {
	b := fsa.NewBuilder("identifier")

	start := b.State("start")
	name := b.State("name")
	done := b.AcceptBefore("delimiter")
	eof := b.Accept("eof")

	b.On(start, fsa.NameStart, name)
	b.On(name, fsa.NamePart, name).
		On(name, fsa.EOF, eof, fsa.Discard).
		On(name, fsa.AnyChar, done, fsa.Discard)

	return b.Build()
}

// IdentifierOrKeyword scans names and reclassifies reserved words as
// keywords.
type IdentifierOrKeyword struct{}

func (IdentifierOrKeyword) Name() string { return "identifier" }

func (IdentifierOrKeyword) CanStart(s source.Stream) bool {
	return fsa.NameStart(s.Peek())
}

func (IdentifierOrKeyword) Scan(s source.Stream) (Lexeme, error) {
	text, err := identifierAutomaton.Run(s)
	if err != nil {
		return Lexeme{}, err
	}
	return Lexeme{Text: text}, nil
}

func (IdentifierOrKeyword) Token(l Lexeme, at token.Span) (token.Token, error) {
	if word, ok := token.LookupReserved(l.Text); ok {
		return token.Keyword{Pos: at, Word: word}, nil
	}
	return token.Identifier{Pos: at, Name: l.Text}, nil
}
