// Package parser implements a recursive-descent parser that turns a token
// stream into an ast.Program. Every grammar production has its own method.
// The block and statement layer lives in statement.go, the precedence ladder
// in expression.go and the prefix expressions with their suffix chains in
// prefix.go.
package parser

import (
	"path/filepath"

	"github.com/tsatke/luafront/internal/ast"
	"github.com/tsatke/luafront/internal/scanner"
	"github.com/tsatke/luafront/internal/source"
	"github.com/tsatke/luafront/internal/token"
	"go.uber.org/zap"
)

const unknownInput = "<unknown input>"

type namer interface {
	Name() string
}

// Parser is a single-use parser for one input. It stops at the first
// lexical or syntax error.
type Parser struct {
	tokens *scanner.Tokenizer
	lines  source.LineReader

	name          string
	decodeEscapes bool
	log           *zap.Logger
}

// New creates a new single-use parser that reads from the given stream. If
// the stream is a source.LineReader, syntax errors carry the offending
// source line.
func New(stream source.Stream, opts ...Option) *Parser {
	p := &Parser{
		name: unknownInput,
		log:  zap.NewNop(),
	}
	if n, ok := stream.(namer); ok && n.Name() != "" {
		p.name = filepath.Base(n.Name())
	}
	if lr, ok := stream.(source.LineReader); ok {
		p.lines = lr
	}
	for _, opt := range opts {
		opt(p)
	}

	p.tokens = scanner.New(stream,
		scanner.WithEscapeDecoding(p.decodeEscapes),
		scanner.WithLogger(p.log),
	)
	return p
}

// Parse parses the whole input. The returned error is a *SyntaxError for
// invalid input, a *scanner.LexicalError if the input could not be
// tokenized, or an *InternalError.
func (p *Parser) Parse() (*ast.Program, error) {
	first, err := p.peek()
	if err != nil {
		return nil, err
	}

	body, err := p.block()
	if err != nil {
		return nil, err
	}

	tk, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tk.Kind() != token.KindEOF {
		return nil, p.syntaxError(ContextStatement, tk, "EOF")
	}

	return &ast.Program{
		Pos:  first.Span(),
		Name: p.name,
		Body: body,
	}, nil
}

func (p *Parser) peek() (token.Token, error) {
	return p.tokens.Peek()
}

func (p *Parser) next() (token.Token, error) {
	return p.tokens.Next()
}

// accept consumes the next token if it is the keyword or operator raw.
func (p *Parser) accept(raw string) (bool, error) {
	tk, err := p.peek()
	if err != nil {
		return false, err
	}
	if !token.Is(tk, raw) {
		return false, nil
	}
	_, err = p.next()
	return true, err
}

// expect consumes the next token, which must be the keyword or operator raw.
func (p *Parser) expect(ctx Context, raw string) (token.Token, error) {
	tk, err := p.next()
	if err != nil {
		return nil, err
	}
	if !token.Is(tk, raw) {
		return nil, p.syntaxError(ctx, tk, raw)
	}
	return tk, nil
}

// identifier consumes the next token, which must be an identifier.
func (p *Parser) identifier(ctx Context) (token.Identifier, error) {
	tk, err := p.next()
	if err != nil {
		return token.Identifier{}, err
	}
	id, ok := tk.(token.Identifier)
	if !ok {
		return token.Identifier{}, p.syntaxError(ctx, tk, "Identifier")
	}
	return id, nil
}

// enter consumes the leading token of a production. The caller has already
// peeked it, so a mismatch is a bug in the parser.
func (p *Parser) enter(production, raw string) (token.Token, error) {
	tk, err := p.next()
	if err != nil {
		return nil, err
	}
	if !token.Is(tk, raw) {
		p.log.Error("production entered without its leading token",
			zap.String("production", production),
			zap.String("want", raw),
			zap.String("got", tk.Raw()),
		)
		return nil, &InternalError{
			Production: production,
			Token:      tk,
		}
	}
	return tk, nil
}

func (p *Parser) syntaxError(ctx Context, got token.Token, expected ...string) error {
	at := got.Span()
	err := &SyntaxError{
		Row:      at.Row,
		Column:   at.Column,
		Context:  ctx,
		Expected: expected,
		Got:      got.Raw(),
	}
	if p.lines != nil {
		err.Line = p.lines.Line(at.Row)
	}
	p.log.Debug("syntax error",
		zap.Uint16("row", at.Row),
		zap.Uint16("column", at.Column),
		zap.Stringer("context", ctx),
		zap.Strings("expected", expected),
		zap.String("got", err.Got),
	)
	return err
}
