package scanner

import (
	"fmt"

	"github.com/tsatke/luafront/internal/fsa"
	"github.com/tsatke/luafront/internal/source"
	"github.com/tsatke/luafront/internal/token"
)

var (
	commentStartAutomaton = buildCommentStartAutomaton()
	lineCommentAutomaton  = buildLineCommentAutomaton()
)

func buildCommentStartAutomaton() *fsa.Automaton {
	b := fsa.NewBuilder("comment start")

	start := b.State("start")
	dash := b.State("dash")
	done := b.Accept("dashes")

	b.On(start, fsa.Is('-'), dash, fsa.Discard)
	b.On(dash, fsa.Is('-'), done, fsa.Discard)

	return b.Build()
}

func buildLineCommentAutomaton() *fsa.Automaton {
	b := fsa.NewBuilder("line comment")

	body := b.State("body")
	done := b.AcceptBefore("line end")
	eof := b.Accept("eof")

	b.On(body, fsa.OneOf("\r\n"), done, fsa.Discard).
		On(body, fsa.EOF, eof, fsa.Discard).
		On(body, fsa.AnyChar, body)

	return b.Build()
}

// Comment scans line comments and long comments.
type Comment struct{}

func (Comment) Name() string { return "comment" }

func (Comment) CanStart(s source.Stream) bool {
	return s.Peek() == '-' && peekSecond(s) == '-'
}

func (Comment) Scan(s source.Stream) (Lexeme, error) {
	if _, err := commentStartAutomaton.Run(s); err != nil {
		return Lexeme{}, err
	}

	var prefix string
	if s.Peek() == '[' {
		level, ok, consumed := openLongBracket(s)
		if ok {
			content, err := readLongBracketBody(s, level)
			if err != nil {
				return Lexeme{}, fmt.Errorf("long comment: %w", err)
			}
			return Lexeme{Text: content, Long: true, Level: level}, nil
		}
		// not a long bracket, the consumed text belongs to the line comment
		prefix = consumed
	}

	text, err := lineCommentAutomaton.Run(s)
	if err != nil {
		return Lexeme{}, err
	}
	return Lexeme{Text: prefix + text}, nil
}

func (Comment) Token(l Lexeme, at token.Span) (token.Token, error) {
	return token.Comment{
		Pos:   at,
		Text:  l.Text,
		Long:  l.Long,
		Level: l.Level,
	}, nil
}
