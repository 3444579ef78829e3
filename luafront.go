// Package luafront is the front end of a compiler for a Lua-like language. It
// turns source text into tokens and into a syntax tree.
package luafront

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
	"github.com/tsatke/luafront/internal/ast"
	"github.com/tsatke/luafront/internal/parser"
	"github.com/tsatke/luafront/internal/scanner"
	"github.com/tsatke/luafront/internal/source"
	"github.com/tsatke/luafront/internal/token"
	"go.uber.org/zap"
)

type (
	// Program is the root of a syntax tree.
	Program = ast.Program
	// Node is a syntax tree node.
	Node = ast.Node
	// Visitor visits syntax tree nodes, see Node.Accept.
	Visitor = ast.Visitor
	// Token is a lexical token.
	Token = token.Token
)

// Frontend parses and tokenizes sources with a fixed configuration. The zero
// value is not usable, use New.
type Frontend struct {
	fs  afero.Fs
	log *zap.Logger

	name          string
	comments      bool
	decodeEscapes bool
}

// New creates a new Frontend. Files are read from the OS file system unless
// WithFs is given.
func New(opts ...Option) Frontend {
	f := Frontend{
		fs:  afero.NewOsFs(),
		log: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(&f)
	}

	return f
}

// ParseString parses the given source.
func (f Frontend) ParseString(src string) (*Program, error) {
	return f.parse(source.FromString(src))
}

// Parse parses everything that can be read from the given reader. If the
// reader has a Name() string method, such as *os.File and afero.File, the
// base of that name is the name of the program.
//
// A lexical error is a *LexicalError, invalid syntax is a *SyntaxError.
func (f Frontend) Parse(rd io.Reader) (*Program, error) {
	stream, err := source.New(rd)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	return f.parse(stream)
}

// ParseFile parses the named file of the configured file system.
func (f Frontend) ParseFile(name string) (*Program, error) {
	stream, err := source.Open(f.fs, name)
	if err != nil {
		return nil, err
	}
	return f.parse(stream)
}

func (f Frontend) parse(stream *source.RuneStream) (*Program, error) {
	opts := []parser.Option{
		parser.WithLogger(f.log),
		parser.WithEscapeDecoding(f.decodeEscapes),
	}
	if f.name != "" {
		opts = append(opts, parser.WithName(f.name))
	}
	return parser.New(stream, opts...).Parse()
}

// Tokenize returns all tokens that can be read from the given reader, without
// the terminating EOF token. Comments are only included if the Frontend was
// created with WithComments.
func (f Frontend) Tokenize(rd io.Reader) ([]Token, error) {
	stream, err := source.New(rd)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	return f.tokenize(stream)
}

// TokenizeFile tokenizes the named file of the configured file system.
func (f Frontend) TokenizeFile(name string) ([]Token, error) {
	stream, err := source.Open(f.fs, name)
	if err != nil {
		return nil, err
	}
	return f.tokenize(stream)
}

func (f Frontend) tokenize(stream source.Stream) ([]Token, error) {
	return scanner.New(stream,
		scanner.WithComments(f.comments),
		scanner.WithEscapeDecoding(f.decodeEscapes),
		scanner.WithLogger(f.log),
	).All()
}

// FormatToken renders a token as 'row:col kind raw'.
func FormatToken(tk Token) string {
	return fmt.Sprintf("%s %s %s", tk.Span(), strings.ToLower(tk.Kind().String()), tk.Raw())
}

// Print writes an indented dump of the syntax tree rooted at n.
func Print(w io.Writer, n Node) error {
	return ast.Print(w, n)
}
