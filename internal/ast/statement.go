package ast

import "github.com/tsatke/luafront/internal/token"

type (
	// Assignment is 'varlist = explist'.
	Assignment struct {
		Pos     token.Span
		Targets *VariableList
		Values  *ExpressionList
	}

	// CallStatement is a function or method call used as a statement.
	CallStatement struct {
		Pos  token.Span
		Call *PrefixExpression
	}

	// LocalDeclaration is 'local attnamelist [= explist]'. Values is nil if
	// there is no initializer.
	LocalDeclaration struct {
		Pos    token.Span
		Names  *AttributeIdentifierList
		Values *ExpressionList
	}

	// FunctionIdentifier is the dotted name of a function definition, such
	// as 'a.b.c:m'.
	FunctionIdentifier struct {
		Pos    token.Span
		Path   []string
		Method string
	}

	// FunctionBody is the parameter list and the block of a function.
	FunctionBody struct {
		Pos        token.Span
		Parameters *ParameterList
		Body       *Block
	}

	// FunctionDefinition is 'function funcname funcbody' or, if Local is
	// set, 'local function Name funcbody'.
	FunctionDefinition struct {
		Pos   token.Span
		Local bool
		Name  *FunctionIdentifier
		Body  *FunctionBody
	}

	// Label is '::name::'.
	Label struct {
		Pos  token.Span
		Name string
	}

	// Goto is 'goto name'.
	Goto struct {
		Pos   token.Span
		Label string
	}

	// Break is 'break'.
	Break struct {
		Pos token.Span
	}

	// Do is 'do block end'.
	Do struct {
		Pos  token.Span
		Body *Block
	}

	// While is 'while exp do block end'.
	While struct {
		Pos       token.Span
		Condition Expression
		Body      *Block
	}

	// RepeatUntil is 'repeat block until exp'.
	RepeatUntil struct {
		Pos       token.Span
		Body      *Block
		Condition Expression
	}

	// ConditionalBlock is a condition and the block that runs if it holds.
	ConditionalBlock struct {
		Pos       token.Span
		Condition Expression
		Body      *Block
	}

	// If is an if statement. The first clause is the 'if' clause, the
	// remaining clauses are 'elseif' clauses. Else is nil if there is no
	// 'else' block.
	If struct {
		Pos     token.Span
		Clauses []*ConditionalBlock
		Else    *Block
	}

	// NumericFor is 'for Name = start, limit [, step] do block end'. Step
	// is nil if omitted.
	NumericFor struct {
		Pos      token.Span
		Variable string
		Start    Expression
		Limit    Expression
		Step     Expression
		Body     *Block
	}

	// GenericFor is 'for namelist in explist do block end'.
	GenericFor struct {
		Pos    token.Span
		Names  []string
		Values *ExpressionList
		Body   *Block
	}

	// Return is 'return [explist] [;]'. Values is nil for a bare return.
	Return struct {
		Pos    token.Span
		Values *ExpressionList
	}
)

func (n *Assignment) Span() token.Span         { return n.Pos }
func (n *CallStatement) Span() token.Span      { return n.Pos }
func (n *LocalDeclaration) Span() token.Span   { return n.Pos }
func (n *FunctionIdentifier) Span() token.Span { return n.Pos }
func (n *FunctionBody) Span() token.Span       { return n.Pos }
func (n *FunctionDefinition) Span() token.Span { return n.Pos }
func (n *Label) Span() token.Span              { return n.Pos }
func (n *Goto) Span() token.Span               { return n.Pos }
func (n *Break) Span() token.Span              { return n.Pos }
func (n *Do) Span() token.Span                 { return n.Pos }
func (n *While) Span() token.Span              { return n.Pos }
func (n *RepeatUntil) Span() token.Span        { return n.Pos }
func (n *ConditionalBlock) Span() token.Span   { return n.Pos }
func (n *If) Span() token.Span                 { return n.Pos }
func (n *NumericFor) Span() token.Span         { return n.Pos }
func (n *GenericFor) Span() token.Span         { return n.Pos }
func (n *Return) Span() token.Span             { return n.Pos }

func (n *Assignment) Accept(v Visitor) error         { return v.VisitAssignment(n) }
func (n *CallStatement) Accept(v Visitor) error      { return v.VisitCallStatement(n) }
func (n *LocalDeclaration) Accept(v Visitor) error   { return v.VisitLocalDeclaration(n) }
func (n *FunctionIdentifier) Accept(v Visitor) error { return v.VisitFunctionIdentifier(n) }
func (n *FunctionBody) Accept(v Visitor) error       { return v.VisitFunctionBody(n) }
func (n *FunctionDefinition) Accept(v Visitor) error { return v.VisitFunctionDefinition(n) }
func (n *Label) Accept(v Visitor) error              { return v.VisitLabel(n) }
func (n *Goto) Accept(v Visitor) error               { return v.VisitGoto(n) }
func (n *Break) Accept(v Visitor) error              { return v.VisitBreak(n) }
func (n *Do) Accept(v Visitor) error                 { return v.VisitDo(n) }
func (n *While) Accept(v Visitor) error              { return v.VisitWhile(n) }
func (n *RepeatUntil) Accept(v Visitor) error        { return v.VisitRepeatUntil(n) }
func (n *ConditionalBlock) Accept(v Visitor) error   { return v.VisitConditionalBlock(n) }
func (n *If) Accept(v Visitor) error                 { return v.VisitIf(n) }
func (n *NumericFor) Accept(v Visitor) error         { return v.VisitNumericFor(n) }
func (n *GenericFor) Accept(v Visitor) error         { return v.VisitGenericFor(n) }
func (n *Return) Accept(v Visitor) error             { return v.VisitReturn(n) }

func (*Assignment) node()         {}
func (*CallStatement) node()      {}
func (*LocalDeclaration) node()   {}
func (*FunctionIdentifier) node() {}
func (*FunctionBody) node()       {}
func (*FunctionDefinition) node() {}
func (*Label) node()              {}
func (*Goto) node()               {}
func (*Break) node()              {}
func (*Do) node()                 {}
func (*While) node()              {}
func (*RepeatUntil) node()        {}
func (*ConditionalBlock) node()   {}
func (*If) node()                 {}
func (*NumericFor) node()         {}
func (*GenericFor) node()         {}
func (*Return) node()             {}

func (*Assignment) statement()         {}
func (*CallStatement) statement()      {}
func (*LocalDeclaration) statement()   {}
func (*FunctionDefinition) statement() {}
func (*Label) statement()              {}
func (*Goto) statement()               {}
func (*Break) statement()              {}
func (*Do) statement()                 {}
func (*While) statement()              {}
func (*RepeatUntil) statement()        {}
func (*If) statement()                 {}
func (*NumericFor) statement()         {}
func (*GenericFor) statement()         {}
