// Package ast declares the syntax tree that the parser produces.
//
// The set of node types is closed. Every node implements Accept, which
// dispatches to the Visitor method for its type. Nodes own their children
// and are not modified after parsing.
package ast

import "github.com/tsatke/luafront/internal/token"

type (
	// Node is a syntax tree node.
	Node interface {
		// Span is the position of the first token of the node.
		Span() token.Span
		Accept(v Visitor) error

		node()
	}

	// Expression is a node that produces values.
	Expression interface {
		Node
		expression()
	}

	// Statement is a node that can appear in a Block.
	Statement interface {
		Node
		statement()
	}

	// Suffix is one element of the suffix chain of a PrefixExpression.
	Suffix interface {
		Node
		suffix()
	}
)

type (
	// Program is the root of a syntax tree.
	Program struct {
		Pos  token.Span
		Name string
		Body *Block
	}

	// Block is a sequence of statements, optionally terminated by a return
	// statement.
	Block struct {
		Pos        token.Span
		Statements []Statement
		Return     *Return
	}

	// ExpressionList is a comma separated list of expressions.
	ExpressionList struct {
		Pos         token.Span
		Expressions []Expression
	}

	// Variable is an assignable prefix expression, either a plain name or a
	// chain that ends with an index or field suffix.
	Variable struct {
		Pos    token.Span
		Prefix *PrefixExpression
	}

	// VariableList is the left hand side of an Assignment.
	VariableList struct {
		Pos       token.Span
		Variables []*Variable
	}

	// ParameterList is the parameter list of a function.
	ParameterList struct {
		Pos    token.Span
		Names  []string
		Vararg bool
	}

	// AttributeName is a name with an optional attribute, such as
	// 'x <const>'.
	AttributeName struct {
		Pos       token.Span
		Name      string
		Attribute string
	}

	// AttributeIdentifierList is the name list of a local declaration.
	AttributeIdentifierList struct {
		Pos   token.Span
		Names []AttributeName
	}
)

func (n *Program) Span() token.Span                 { return n.Pos }
func (n *Block) Span() token.Span                   { return n.Pos }
func (n *ExpressionList) Span() token.Span          { return n.Pos }
func (n *Variable) Span() token.Span                { return n.Pos }
func (n *VariableList) Span() token.Span            { return n.Pos }
func (n *ParameterList) Span() token.Span           { return n.Pos }
func (n *AttributeIdentifierList) Span() token.Span { return n.Pos }

func (n *Program) Accept(v Visitor) error                 { return v.VisitProgram(n) }
func (n *Block) Accept(v Visitor) error                   { return v.VisitBlock(n) }
func (n *ExpressionList) Accept(v Visitor) error          { return v.VisitExpressionList(n) }
func (n *Variable) Accept(v Visitor) error                { return v.VisitVariable(n) }
func (n *VariableList) Accept(v Visitor) error            { return v.VisitVariableList(n) }
func (n *ParameterList) Accept(v Visitor) error           { return v.VisitParameterList(n) }
func (n *AttributeIdentifierList) Accept(v Visitor) error { return v.VisitAttributeIdentifierList(n) }

func (*Program) node()                 {}
func (*Block) node()                   {}
func (*ExpressionList) node()          {}
func (*Variable) node()                {}
func (*VariableList) node()            {}
func (*ParameterList) node()           {}
func (*AttributeIdentifierList) node() {}
