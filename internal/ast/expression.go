package ast

import "github.com/tsatke/luafront/internal/token"

type (
	// KeywordTerm is one of the constants nil, true and false.
	KeywordTerm struct {
		Pos  token.Span
		Word token.Reserved
	}

	// VarargTerm is the vararg expression '...'.
	VarargTerm struct {
		Pos token.Span
	}

	// IdentifierTerm is a name.
	IdentifierTerm struct {
		Pos  token.Span
		Name string
	}

	// IntegerTerm is an integer constant.
	IntegerTerm struct {
		Pos   token.Span
		Value uint64
		Hex   bool
	}

	// FloatTerm is a floating point constant.
	FloatTerm struct {
		Pos   token.Span
		Value float64
	}

	// StringTerm is a string constant.
	StringTerm struct {
		Pos   token.Span
		Value string
	}

	// FunctionTerm is an anonymous function.
	FunctionTerm struct {
		Pos  token.Span
		Body *FunctionBody
	}

	// TableConstructor is a table constructor, which consists of a list of
	// fields.
	TableConstructor struct {
		Pos    token.Span
		Fields []*TableField
	}

	// TableField is a field of a table constructor. Key is set for
	// '[key] = value', Name for 'name = value', neither for a positional
	// value.
	TableField struct {
		Pos   token.Span
		Key   Expression
		Name  string
		Value Expression
	}

	// ParenExpression is an expression in parentheses.
	ParenExpression struct {
		Pos   token.Span
		Inner Expression
	}

	// PrefixExpression is a name or a parenthesized expression followed by
	// a flat, ordered chain of suffixes.
	PrefixExpression struct {
		Pos token.Span
		// Head is an *IdentifierTerm or a *ParenExpression.
		Head     Expression
		Suffixes []Suffix
	}

	// IndexSuffix is '[key]'.
	IndexSuffix struct {
		Pos token.Span
		Key Expression
	}

	// FieldSuffix is '.name'.
	FieldSuffix struct {
		Pos  token.Span
		Name string
	}

	// CallSuffix is a call with arguments. Method is set for ':name args'.
	// A string or table argument without parentheses is the only element
	// of Arguments.
	CallSuffix struct {
		Pos       token.Span
		Method    string
		Arguments *ExpressionList
	}

	// ExponentExpression is 'base ^ exponent'.
	ExponentExpression struct {
		Pos      token.Span
		Base     Expression
		Exponent Expression
	}

	// UnaryExpression is one of 'not', '-', '#' and '~' applied to an
	// operand.
	UnaryExpression struct {
		Pos      token.Span
		Operator string
		Operand  Expression
	}

	// BinaryExpression is an arithmetic, bitwise, relational or
	// concatenation operation. Operator is the raw operator text.
	BinaryExpression struct {
		Pos      token.Span
		Operator string
		Left     Expression
		Right    Expression
	}

	// LogicalExpression is 'and' or 'or'.
	LogicalExpression struct {
		Pos      token.Span
		Operator string
		Left     Expression
		Right    Expression
	}
)

// Assignable reports whether the expression is a name or ends with an index or
// field suffix.
func (n *PrefixExpression) Assignable() bool {
	if len(n.Suffixes) == 0 {
		_, isName := n.Head.(*IdentifierTerm)
		return isName
	}
	switch n.Suffixes[len(n.Suffixes)-1].(type) {
	case *IndexSuffix, *FieldSuffix:
		return true
	}
	return false
}

// Call reports whether the last suffix is a call.
func (n *PrefixExpression) Call() bool {
	if len(n.Suffixes) == 0 {
		return false
	}
	_, ok := n.Suffixes[len(n.Suffixes)-1].(*CallSuffix)
	return ok
}

func (n *KeywordTerm) Span() token.Span        { return n.Pos }
func (n *VarargTerm) Span() token.Span         { return n.Pos }
func (n *IdentifierTerm) Span() token.Span     { return n.Pos }
func (n *IntegerTerm) Span() token.Span        { return n.Pos }
func (n *FloatTerm) Span() token.Span          { return n.Pos }
func (n *StringTerm) Span() token.Span         { return n.Pos }
func (n *FunctionTerm) Span() token.Span       { return n.Pos }
func (n *TableConstructor) Span() token.Span   { return n.Pos }
func (n *TableField) Span() token.Span         { return n.Pos }
func (n *ParenExpression) Span() token.Span    { return n.Pos }
func (n *PrefixExpression) Span() token.Span   { return n.Pos }
func (n *IndexSuffix) Span() token.Span        { return n.Pos }
func (n *FieldSuffix) Span() token.Span        { return n.Pos }
func (n *CallSuffix) Span() token.Span         { return n.Pos }
func (n *ExponentExpression) Span() token.Span { return n.Pos }
func (n *UnaryExpression) Span() token.Span    { return n.Pos }
func (n *BinaryExpression) Span() token.Span   { return n.Pos }
func (n *LogicalExpression) Span() token.Span  { return n.Pos }

func (n *KeywordTerm) Accept(v Visitor) error        { return v.VisitKeywordTerm(n) }
func (n *VarargTerm) Accept(v Visitor) error         { return v.VisitVarargTerm(n) }
func (n *IdentifierTerm) Accept(v Visitor) error     { return v.VisitIdentifierTerm(n) }
func (n *IntegerTerm) Accept(v Visitor) error        { return v.VisitIntegerTerm(n) }
func (n *FloatTerm) Accept(v Visitor) error          { return v.VisitFloatTerm(n) }
func (n *StringTerm) Accept(v Visitor) error         { return v.VisitStringTerm(n) }
func (n *FunctionTerm) Accept(v Visitor) error       { return v.VisitFunctionTerm(n) }
func (n *TableConstructor) Accept(v Visitor) error   { return v.VisitTableConstructor(n) }
func (n *TableField) Accept(v Visitor) error         { return v.VisitTableField(n) }
func (n *ParenExpression) Accept(v Visitor) error    { return v.VisitParenExpression(n) }
func (n *PrefixExpression) Accept(v Visitor) error   { return v.VisitPrefixExpression(n) }
func (n *IndexSuffix) Accept(v Visitor) error        { return v.VisitIndexSuffix(n) }
func (n *FieldSuffix) Accept(v Visitor) error        { return v.VisitFieldSuffix(n) }
func (n *CallSuffix) Accept(v Visitor) error         { return v.VisitCallSuffix(n) }
func (n *ExponentExpression) Accept(v Visitor) error { return v.VisitExponentExpression(n) }
func (n *UnaryExpression) Accept(v Visitor) error    { return v.VisitUnaryExpression(n) }
func (n *BinaryExpression) Accept(v Visitor) error   { return v.VisitBinaryExpression(n) }
func (n *LogicalExpression) Accept(v Visitor) error  { return v.VisitLogicalExpression(n) }

func (*KeywordTerm) node()        {}
func (*VarargTerm) node()         {}
func (*IdentifierTerm) node()     {}
func (*IntegerTerm) node()        {}
func (*FloatTerm) node()          {}
func (*StringTerm) node()         {}
func (*FunctionTerm) node()       {}
func (*TableConstructor) node()   {}
func (*TableField) node()         {}
func (*ParenExpression) node()    {}
func (*PrefixExpression) node()   {}
func (*IndexSuffix) node()        {}
func (*FieldSuffix) node()        {}
func (*CallSuffix) node()         {}
func (*ExponentExpression) node() {}
func (*UnaryExpression) node()    {}
func (*BinaryExpression) node()   {}
func (*LogicalExpression) node()  {}

func (*KeywordTerm) expression()        {}
func (*VarargTerm) expression()         {}
func (*IdentifierTerm) expression()     {}
func (*IntegerTerm) expression()        {}
func (*FloatTerm) expression()          {}
func (*StringTerm) expression()         {}
func (*FunctionTerm) expression()       {}
func (*TableConstructor) expression()   {}
func (*ParenExpression) expression()    {}
func (*PrefixExpression) expression()   {}
func (*ExponentExpression) expression() {}
func (*UnaryExpression) expression()    {}
func (*BinaryExpression) expression()   {}
func (*LogicalExpression) expression()  {}

func (*IndexSuffix) suffix() {}
func (*FieldSuffix) suffix() {}
func (*CallSuffix) suffix()  {}
