package scanner

import (
	"github.com/tsatke/luafront/internal/source"
	"github.com/tsatke/luafront/internal/token"
	"go.uber.org/zap"
)

// Tokenizer composes the lexical components behind a token stream with one
// token of lookahead. A Tokenizer is single-use and must not be shared
// between goroutines.
type Tokenizer struct {
	stream     source.Stream
	components []Component

	comments      bool
	decodeEscapes bool
	log           *zap.Logger

	started   bool
	lookahead token.Token
	// err is sticky, a lexical error is not recoverable.
	err error
}

// New creates a tokenizer that reads from the given stream.
func New(stream source.Stream, opts ...Option) *Tokenizer {
	t := &Tokenizer{
		stream: stream,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	// the order is significant, the first component that can start wins
	t.components = []Component{
		Comment{},
		Operator{},
		IdentifierOrKeyword{},
		StringLiteral{DecodeEscapes: t.decodeEscapes},
		Numeric{},
	}
	return t
}

// Next consumes and returns the next token. At the end of the input, an
// token.EOF is returned on every call.
func (t *Tokenizer) Next() (token.Token, error) {
	if t.lookahead != nil {
		tk := t.lookahead
		t.lookahead = nil
		return tk, nil
	}
	return t.scan()
}

// Peek returns the next token without consuming it.
func (t *Tokenizer) Peek() (token.Token, error) {
	if t.lookahead == nil {
		tk, err := t.scan()
		if err != nil {
			return nil, err
		}
		t.lookahead = tk
	}
	return t.lookahead, nil
}

// All consumes all remaining tokens. The terminating token.EOF is not
// included.
func (t *Tokenizer) All() ([]token.Token, error) {
	var tokens []token.Token
	for {
		tk, err := t.Next()
		if err != nil {
			return tokens, err
		}
		if tk.Kind() == token.KindEOF {
			return tokens, nil
		}
		tokens = append(tokens, tk)
	}
}

func (t *Tokenizer) scan() (token.Token, error) {
	if t.err != nil {
		return nil, t.err
	}
	if !t.started {
		t.started = true
		t.skipShebang()
	}

	for {
		t.skipWhitespace()

		at := token.Span{
			Row:    t.stream.Row(),
			Column: t.stream.Column(),
		}
		first := t.stream.Peek()
		if first == source.EOF {
			return token.EOF{Pos: at}, nil
		}

		c := t.componentFor()
		if c == nil {
			return nil, t.fail(at, first, nil, ErrNoComponent)
		}
		lexeme, err := c.Scan(t.stream)
		if err != nil {
			return nil, t.fail(at, first, c, err)
		}
		tk, err := c.Token(lexeme, at)
		if err != nil {
			return nil, t.fail(at, first, c, err)
		}

		if tk.Kind() == token.KindComment && !t.comments {
			continue
		}
		return tk, nil
	}
}

func (t *Tokenizer) componentFor() Component {
	for _, c := range t.components {
		if c.CanStart(t.stream) {
			return c
		}
	}
	return nil
}

func (t *Tokenizer) fail(at token.Span, first rune, c Component, cause error) error {
	component := "none"
	if c != nil {
		component = c.Name()
	}
	t.err = &LexicalError{
		Char:   first,
		Row:    at.Row,
		Column: at.Column,
		Cause:  cause,
	}
	t.log.Error("fatal lexical error",
		zap.String("char", string(first)),
		zap.Uint16("row", at.Row),
		zap.Uint16("column", at.Column),
		zap.String("component", component),
		zap.Error(cause),
	)
	return t.err
}

func (t *Tokenizer) skipWhitespace() {
	for isWhitespace(t.stream.Peek()) {
		t.stream.Get()
	}
}

// skipShebang skips a first line starting with '#!'.
func (t *Tokenizer) skipShebang() {
	if t.stream.Peek() != '#' || peekSecond(t.stream) != '!' {
		return
	}
	for r := t.stream.Peek(); r != '\n' && r != source.EOF; r = t.stream.Peek() {
		t.stream.Get()
	}
}

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
