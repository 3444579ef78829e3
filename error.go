package luafront

import (
	"github.com/tsatke/luafront/internal/parser"
	"github.com/tsatke/luafront/internal/scanner"
)

type (
	// LexicalError is returned if the input could not be tokenized.
	LexicalError = scanner.LexicalError
	// SyntaxError is returned if the input does not match the grammar.
	SyntaxError = parser.SyntaxError
	// InternalError is returned for bugs in the parser. It wraps
	// ErrInternal.
	InternalError = parser.InternalError
)

// ErrInternal is wrapped by every *InternalError.
var ErrInternal = parser.ErrInternal
