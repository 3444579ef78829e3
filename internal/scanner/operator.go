package scanner

import (
	"fmt"
	"strings"

	"github.com/tsatke/luafront/internal/fsa"
	"github.com/tsatke/luafront/internal/source"
	"github.com/tsatke/luafront/internal/token"
)

// singleOperators are the characters that always start an operator. '[' and
// '.' need a second character to decide.
const singleOperators = "+-*/%^#&~|<>=(){}];:,"

// Operator scans operators and delimiters by maximal munch. The alphabet is
// small enough to dispatch by hand.
type Operator struct{}

func (Operator) Name() string { return "operator" }

func (Operator) CanStart(s source.Stream) bool {
	switch r := s.Peek(); r {
	case '[':
		next := peekSecond(s)
		return next != '[' && next != '='
	case '.':
		return !fsa.Digit(peekSecond(s))
	case source.EOF:
		return false
	default:
		return strings.ContainsRune(singleOperators, r)
	}
}

func (Operator) Scan(s source.Stream) (Lexeme, error) {
	r := s.Get()
	switch r {
	case '/':
		return longest(s, "/", '/'), nil
	case '<':
		return longest(s, "<", '<', '='), nil
	case '>':
		return longest(s, ">", '>', '='), nil
	case '=':
		return longest(s, "=", '='), nil
	case '~':
		return longest(s, "~", '='), nil
	case ':':
		return longest(s, ":", ':'), nil
	case '.':
		if s.Peek() != '.' {
			return Lexeme{Text: "."}, nil
		}
		s.Get()
		if s.Peek() != '.' {
			return Lexeme{Text: ".."}, nil
		}
		s.Get()
		return Lexeme{Text: "..."}, nil
	}
	if r == '[' || (r != source.EOF && strings.ContainsRune(singleOperators, r)) {
		return Lexeme{Text: string(r)}, nil
	}
	s.Unget()
	return Lexeme{}, fmt.Errorf("%w %s", ErrUnknownOperator, fsa.Describe(r))
}

// longest extends the already consumed first character by one of the given
// seconds, if the next character is one of them.
func longest(s source.Stream, first string, seconds ...rune) Lexeme {
	next := s.Peek()
	for _, second := range seconds {
		if next == second {
			s.Get()
			return Lexeme{Text: first + string(second)}
		}
	}
	return Lexeme{Text: first}
}

func (Operator) Token(l Lexeme, at token.Span) (token.Token, error) {
	sym, ok := token.LookupSymbol(l.Text)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownOperator, l.Text)
	}
	return token.Operator{Pos: at, Symbol: sym}, nil
}
