package parser

import (
	"github.com/tsatke/luafront/internal/ast"
)

func (suite *ParserSuite) TestParse() {
	suite.assertProgramString(`
print("Hello, World!")
`, &ast.Program{
		Pos:  pos(2, 1),
		Name: "<unknown input>",
		Body: &ast.Block{
			Pos: pos(2, 1),
			Statements: []ast.Statement{
				&ast.CallStatement{
					Pos: pos(2, 1),
					Call: &ast.PrefixExpression{
						Pos:  pos(2, 1),
						Head: &ast.IdentifierTerm{Pos: pos(2, 1), Name: "print"},
						Suffixes: []ast.Suffix{
							&ast.CallSuffix{
								Pos: pos(2, 6),
								Arguments: &ast.ExpressionList{
									Pos: pos(2, 6),
									Expressions: []ast.Expression{
										&ast.StringTerm{Pos: pos(2, 7), Value: "Hello, World!"},
									},
								},
							},
						},
					},
				},
			},
		},
	})
}

func (suite *ParserSuite) TestSuffixChainIsFlat() {
	suite.assertProgramString(`foo.cat()`, &ast.Program{
		Pos:  pos(1, 1),
		Name: "<unknown input>",
		Body: &ast.Block{
			Pos: pos(1, 1),
			Statements: []ast.Statement{
				&ast.CallStatement{
					Pos: pos(1, 1),
					Call: &ast.PrefixExpression{
						Pos:  pos(1, 1),
						Head: &ast.IdentifierTerm{Pos: pos(1, 1), Name: "foo"},
						Suffixes: []ast.Suffix{
							&ast.FieldSuffix{Pos: pos(1, 4), Name: "cat"},
							&ast.CallSuffix{
								Pos:       pos(1, 8),
								Arguments: &ast.ExpressionList{Pos: pos(1, 8)},
							},
						},
					},
				},
			},
		},
	})
}

func (suite *ParserSuite) TestFunctionCallColon() {
	suite.assertStatementsString(`
io.stderr:write("foobar")
`, `CallStatement
  PrefixExpression
    IdentifierTerm io
    FieldSuffix stderr
    CallSuffix :write
      ExpressionList
        StringTerm "foobar"
`)
}

func (suite *ParserSuite) TestAssignment() {
	suite.assertProgramString(`
a=x
`, &ast.Program{
		Pos:  pos(2, 1),
		Name: "<unknown input>",
		Body: &ast.Block{
			Pos: pos(2, 1),
			Statements: []ast.Statement{
				&ast.Assignment{
					Pos: pos(2, 1),
					Targets: &ast.VariableList{
						Pos: pos(2, 1),
						Variables: []*ast.Variable{
							{
								Pos: pos(2, 1),
								Prefix: &ast.PrefixExpression{
									Pos:  pos(2, 1),
									Head: &ast.IdentifierTerm{Pos: pos(2, 1), Name: "a"},
								},
							},
						},
					},
					Values: &ast.ExpressionList{
						Pos: pos(2, 3),
						Expressions: []ast.Expression{
							&ast.PrefixExpression{
								Pos:  pos(2, 3),
								Head: &ast.IdentifierTerm{Pos: pos(2, 3), Name: "x"},
							},
						},
					},
				},
			},
		},
	})
}

func (suite *ParserSuite) TestMultipleAssignment() {
	suite.assertStatementsString(`a, b.c, d[1] = 1, 2`, `Assignment
  VariableList
    Variable
      PrefixExpression
        IdentifierTerm a
    Variable
      PrefixExpression
        IdentifierTerm b
        FieldSuffix c
    Variable
      PrefixExpression
        IdentifierTerm d
        IndexSuffix
          IntegerTerm 1
  ExpressionList
    IntegerTerm 1
    IntegerTerm 2
`)
}

func (suite *ParserSuite) TestPrecedenceTree() {
	suite.assertProgramString(`return 1 + 2 * 3`, &ast.Program{
		Pos:  pos(1, 1),
		Name: "<unknown input>",
		Body: &ast.Block{
			Pos: pos(1, 1),
			Return: &ast.Return{
				Pos: pos(1, 1),
				Values: &ast.ExpressionList{
					Pos: pos(1, 8),
					Expressions: []ast.Expression{
						&ast.BinaryExpression{
							Pos:      pos(1, 8),
							Operator: "+",
							Left:     &ast.IntegerTerm{Pos: pos(1, 8), Value: 1},
							Right: &ast.BinaryExpression{
								Pos:      pos(1, 12),
								Operator: "*",
								Left:     &ast.IntegerTerm{Pos: pos(1, 12), Value: 2},
								Right:    &ast.IntegerTerm{Pos: pos(1, 16), Value: 3},
							},
						},
					},
				},
			},
		},
	})
}

func (suite *ParserSuite) TestExponentIsRightAssociative() {
	suite.assertExpressionsString(`2 ^ 3 ^ 2`, `ExponentExpression
  IntegerTerm 2
  ExponentExpression
    IntegerTerm 3
    IntegerTerm 2
`)
}

func (suite *ParserSuite) TestConcatIsRightAssociative() {
	suite.assertExpressionsString(`"a" .. "b" .. "c"`, `BinaryExpression ..
  StringTerm "a"
  BinaryExpression ..
    StringTerm "b"
    StringTerm "c"
`)
}

func (suite *ParserSuite) TestLeftAssociative() {
	suite.assertExpressionsString(`1 - 2 - 3`, `BinaryExpression -
  BinaryExpression -
    IntegerTerm 1
    IntegerTerm 2
  IntegerTerm 3
`)
}

func (suite *ParserSuite) TestUnaryBindsLooserThanExponent() {
	suite.assertExpressionsString(`-x ^ 2`, `UnaryExpression -
  ExponentExpression
    PrefixExpression
      IdentifierTerm x
    IntegerTerm 2
`)
	suite.assertExpressionsString(`2 ^ -1`, `ExponentExpression
  IntegerTerm 2
  UnaryExpression -
    IntegerTerm 1
`)
}

func (suite *ParserSuite) TestLogical() {
	suite.assertExpressionsString(`a or b and c == d`, `LogicalExpression or
  PrefixExpression
    IdentifierTerm a
  LogicalExpression and
    PrefixExpression
      IdentifierTerm b
    BinaryExpression ==
      PrefixExpression
        IdentifierTerm c
      PrefixExpression
        IdentifierTerm d
`)
}

func (suite *ParserSuite) TestPrecedenceLadder() {
	suite.assertExpressionsString(`1 | 2 ~ 3 & 4 << 5 .. 6 + 7`, `BinaryExpression |
  IntegerTerm 1
  BinaryExpression ~
    IntegerTerm 2
    BinaryExpression &
      IntegerTerm 3
      BinaryExpression <<
        IntegerTerm 4
        BinaryExpression ..
          IntegerTerm 5
          BinaryExpression +
            IntegerTerm 6
            IntegerTerm 7
`)
}

func (suite *ParserSuite) TestUnaryOperators() {
	suite.assertExpressionsString(`not #t // 2 % 3`, `BinaryExpression %
  BinaryExpression //
    UnaryExpression not
      UnaryExpression #
        PrefixExpression
          IdentifierTerm t
    IntegerTerm 2
  IntegerTerm 3
`)
	suite.assertExpressionsString(`~x ~ y`, `BinaryExpression ~
  UnaryExpression ~
    PrefixExpression
      IdentifierTerm x
  PrefixExpression
    IdentifierTerm y
`)
}

func (suite *ParserSuite) TestParentheses() {
	suite.assertExpressionsString(`(1 + 2) * 3`, `BinaryExpression *
  PrefixExpression
    ParenExpression
      BinaryExpression +
        IntegerTerm 1
        IntegerTerm 2
  IntegerTerm 3
`)
}

func (suite *ParserSuite) TestLiterals() {
	suite.assertExpressionsString(`nil, true, false, ..., 0xff, 1.5, [[s]], 'q'`, `KeywordTerm nil
KeywordTerm true
KeywordTerm false
VarargTerm
IntegerTerm 255
FloatTerm 1.5
StringTerm "s"
StringTerm "q"
`)
}

func (suite *ParserSuite) TestEscapeDecoding() {
	got := suite.parseString(`return "a\tb"`)
	suite.Equal(`a\tb`, got.Body.Return.Values.Expressions[0].(*ast.StringTerm).Value)

	got = suite.parseString(`return "a\tb"`, WithEscapeDecoding(true))
	suite.Equal("a\tb", got.Body.Return.Values.Expressions[0].(*ast.StringTerm).Value)
}

func (suite *ParserSuite) TestSuffixes() {
	suite.assertExpressionsString(`a[1].b:c 'x' {y}`, `PrefixExpression
  IdentifierTerm a
  IndexSuffix
    IntegerTerm 1
  FieldSuffix b
  CallSuffix :c
    ExpressionList
      StringTerm "x"
  CallSuffix
    ExpressionList
      TableConstructor
        TableField
          PrefixExpression
            IdentifierTerm y
`)
}

func (suite *ParserSuite) TestTableConstructor() {
	suite.assertExpressionsString(`{1, x = 2; [3] = 4, f(),}`, `TableConstructor
  TableField
    IntegerTerm 1
  TableField x
    IntegerTerm 2
  TableField [key]
    IntegerTerm 3
    IntegerTerm 4
  TableField
    PrefixExpression
      IdentifierTerm f
      CallSuffix
        ExpressionList
`)
	suite.assertExpressionsString(`{}`, "TableConstructor\n")
	suite.assertExpressionsString(`{x == 1}`, `TableConstructor
  TableField
    BinaryExpression ==
      PrefixExpression
        IdentifierTerm x
      IntegerTerm 1
`)
}

func (suite *ParserSuite) TestFunctionTerm() {
	suite.assertExpressionsString(`function(a, ...) return a end`, `FunctionTerm
  FunctionBody
    ParameterList [a, ...]
    Block
      Return
        ExpressionList
          PrefixExpression
            IdentifierTerm a
`)
}

func (suite *ParserSuite) TestLocal() {
	suite.assertStatementsString(`local x <const>, y = 1
local a, b`, `LocalDeclaration
  AttributeIdentifierList [x <const>, y]
  ExpressionList
    IntegerTerm 1
LocalDeclaration
  AttributeIdentifierList [a, b]
`)
}

func (suite *ParserSuite) TestFunctionDefinition() {
	suite.assertStatementsString(`local function f() end
function a.b:c(self) end`, `FunctionDefinition local
  FunctionIdentifier f
  FunctionBody
    ParameterList []
    Block
FunctionDefinition
  FunctionIdentifier a.b:c
  FunctionBody
    ParameterList [self]
    Block
`)
}

func (suite *ParserSuite) TestJumps() {
	suite.assertStatementsString(`do break end ::top:: goto top ;;`, `Do
  Block
    Break
Label top
Goto top
`)
}

func (suite *ParserSuite) TestLoops() {
	suite.assertStatementsString(`while x do f() end repeat g() until y`, `While
  PrefixExpression
    IdentifierTerm x
  Block
    CallStatement
      PrefixExpression
        IdentifierTerm f
        CallSuffix
          ExpressionList
RepeatUntil
  Block
    CallStatement
      PrefixExpression
        IdentifierTerm g
        CallSuffix
          ExpressionList
  PrefixExpression
    IdentifierTerm y
`)
}

func (suite *ParserSuite) TestIf() {
	suite.assertStatementsString(`if a then b() elseif c then else d() end`, `If
  ConditionalBlock
    PrefixExpression
      IdentifierTerm a
    Block
      CallStatement
        PrefixExpression
          IdentifierTerm b
          CallSuffix
            ExpressionList
  ConditionalBlock
    PrefixExpression
      IdentifierTerm c
    Block
  Else
    Block
      CallStatement
        PrefixExpression
          IdentifierTerm d
          CallSuffix
            ExpressionList
`)
}

func (suite *ParserSuite) TestFor() {
	suite.assertStatementsString(`for i = 1, 10, 2 do end for k, v in pairs(t) do end`, `NumericFor i
  IntegerTerm 1
  IntegerTerm 10
  IntegerTerm 2
  Block
GenericFor [k, v]
  ExpressionList
    PrefixExpression
      IdentifierTerm pairs
      CallSuffix
        ExpressionList
          PrefixExpression
            IdentifierTerm t
  Block
`)
}

func (suite *ParserSuite) TestReturn() {
	suite.assertStatementsString(`return`, "Return\n")
	suite.assertStatementsString(`return;`, "Return\n")
	suite.assertStatementsString(`f() return 1, 2;`, `CallStatement
  PrefixExpression
    IdentifierTerm f
    CallSuffix
      ExpressionList
Return
  ExpressionList
    IntegerTerm 1
    IntegerTerm 2
`)
}

func (suite *ParserSuite) TestParenthesizedCall() {
	suite.assertStatementsString(`(f)()`, `CallStatement
  PrefixExpression
    ParenExpression
      PrefixExpression
        IdentifierTerm f
    CallSuffix
      ExpressionList
`)
}

func (suite *ParserSuite) TestEmptyInput() {
	suite.assertProgramString(" \n -- nothing here\n", &ast.Program{
		Pos:  pos(3, 1),
		Name: "<unknown input>",
		Body: &ast.Block{Pos: pos(3, 1)},
	})
}
