package parser

import (
	"errors"

	"github.com/spf13/afero"
	"github.com/tsatke/luafront/internal/scanner"
	"github.com/tsatke/luafront/internal/source"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func (suite *ParserSuite) TestSyntaxErrorMessage() {
	err := suite.assertSyntaxError("x", 1, 2, ContextStatement, "EOF", "=", ",", "(")
	suite.Equal("Syntax error at (1:2) when parsing statement: expected any of [=,,,(], but got EOF\nx\n", err.Error())

	err = suite.assertSyntaxError("a = 1\nb = = 2", 2, 5, ContextExpression, "=", termStarters...)
	suite.Equal("Syntax error at (2:5) when parsing expression: expected any of [nil,false,true,...,Number,String,function,{,Identifier,(,not,-,#,~], but got =\nb = = 2\n", err.Error())
}

func (suite *ParserSuite) TestSyntaxErrors() {
	tests := []struct {
		name     string
		input    string
		row, col uint16
		ctx      Context
		got      string
		expected []string
	}{
		{"missing expression", "x = ", 1, 5, ContextExpression, "EOF", termStarters},
		{"unterminated if", "if x then", 1, 10, ContextStatement, "EOF", []string{"elseif", "else", "end"}},
		{"call is not assignable", "f() = 1", 1, 5, ContextStatement, "=", []string{".", "["}},
		{"local without name", "local 1", 1, 7, ContextStatement, "1", []string{"Identifier"}},
		{"statement after return", "return 1 end", 1, 10, ContextStatement, "end", []string{"EOF"}},
		{"missing field separator", "t = {1 2}", 1, 8, ContextExpression, "2", []string{",", ";", "}"}},
		{"method without arguments", "a.b:c", 1, 6, ContextExpression, "EOF", []string{"(", "{", "String"}},
		{"for without assignment or in", "for i do", 1, 7, ContextStatement, "do", []string{"=", ",", "in"}},
		{"unclosed parenthesis", "x = (1", 1, 7, ContextExpression, "EOF", []string{")"}},
		{"stray end", "end", 1, 1, ContextStatement, "end", []string{"EOF"}},
		{"not a statement", "+", 1, 1, ContextStatement, "+", statementStarters},
		{"invalid parameter", "function f(1) end", 1, 12, ContextStatement, "1", []string{"Identifier", "..."}},
		{"goto without label", "goto 1", 1, 6, ContextStatement, "1", []string{"Identifier"}},
		{"while without do", "while x end", 1, 9, ContextStatement, "end", []string{"do"}},
		{"string as argument", `f "a" = 1`, 1, 7, ContextStatement, "=", []string{".", "["}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.assertSyntaxError(tt.input, tt.row, tt.col, tt.ctx, tt.got, tt.expected...)
		})
	}
}

func (suite *ParserSuite) TestLexicalErrorPassesThrough() {
	_, err := New(source.FromString("a = @")).Parse()
	suite.Require().Error(err)

	var lexErr *scanner.LexicalError
	suite.Require().True(errors.As(err, &lexErr), "expected a *scanner.LexicalError, but got %T", err)
	suite.Equal('@', lexErr.Char)
	suite.Equal(uint16(1), lexErr.Row)
	suite.Equal(uint16(5), lexErr.Column)

	var syntaxErr *SyntaxError
	suite.False(errors.As(err, &syntaxErr))
}

func (suite *ParserSuite) TestInternalError() {
	p := New(source.FromString("x"))
	_, err := p.while()
	suite.Require().Error(err)
	suite.ErrorIs(err, ErrInternal)

	var syntaxErr *SyntaxError
	suite.False(errors.As(err, &syntaxErr))
	suite.Equal(`internal parser error: while entered at (1:1) with "x"`, err.Error())
}

func (suite *ParserSuite) TestSyntaxErrorIsLogged() {
	core, logs := observer.New(zap.DebugLevel)
	_, err := New(source.FromString("if x then"), WithLogger(zap.New(core))).Parse()
	suite.Require().Error(err)

	entries := logs.FilterMessage("syntax error").All()
	suite.Require().Len(entries, 1)
	fields := entries[0].ContextMap()
	suite.Equal(uint16(1), fields["row"])
	suite.Equal(uint16(10), fields["column"])
	suite.Equal("statement", fields["context"])
	suite.Equal("EOF", fields["got"])
}

func (suite *ParserSuite) TestChunkName() {
	got := suite.parseString("")
	suite.Equal("<unknown input>", got.Name)

	got = suite.parseString("", WithName("chunk"))
	suite.Equal("chunk", got.Name)

	fs := afero.NewMemMapFs()
	suite.Require().NoError(afero.WriteFile(fs, "/scripts/main.lua", []byte("x = 1"), 0o644))
	stream, err := source.Open(fs, "/scripts/main.lua")
	suite.Require().NoError(err)
	program, err := New(stream).Parse()
	suite.Require().NoError(err)
	suite.Equal("main.lua", program.Name)
	suite.Len(program.Body.Statements, 1)
}
