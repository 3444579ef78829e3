package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Print writes an indented dump of the tree rooted at n to w, one node per
// line.
func Print(w io.Writer, n Node) error {
	return Accept(n, NewPrinter(w))
}

var _ Visitor = (*Printer)(nil)

// Printer is a Visitor that writes an indented dump of the nodes it visits.
type Printer struct {
	w      io.Writer
	indent string
	depth  int
}

// NewPrinter creates a printer that writes to w and indents with two
// spaces per level.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{
		w:      w,
		indent: "  ",
	}
}

func (p *Printer) line(header string) error {
	_, err := fmt.Fprintf(p.w, "%s%s\n", strings.Repeat(p.indent, p.depth), header)
	return err
}

func (p *Printer) node(header string, children ...Node) error {
	if err := p.line(header); err != nil {
		return err
	}
	p.depth++
	defer func() { p.depth-- }()

	for _, child := range children {
		if err := Accept(child, p); err != nil {
			return err
		}
	}
	return nil
}

func nodes[T Node](elems []T) []Node {
	res := make([]Node, 0, len(elems))
	for _, elem := range elems {
		res = append(res, elem)
	}
	return res
}

func (p *Printer) VisitProgram(n *Program) error {
	return p.node("Program "+strconv.Quote(n.Name), n.Body)
}

func (p *Printer) VisitBlock(n *Block) error {
	return p.node("Block", append(nodes(n.Statements), n.Return)...)
}

func (p *Printer) VisitExpressionList(n *ExpressionList) error {
	return p.node("ExpressionList", nodes(n.Expressions)...)
}

func (p *Printer) VisitVariable(n *Variable) error {
	return p.node("Variable", n.Prefix)
}

func (p *Printer) VisitVariableList(n *VariableList) error {
	return p.node("VariableList", nodes(n.Variables)...)
}

func (p *Printer) VisitParameterList(n *ParameterList) error {
	names := append([]string(nil), n.Names...)
	if n.Vararg {
		names = append(names, "...")
	}
	return p.line("ParameterList [" + strings.Join(names, ", ") + "]")
}

func (p *Printer) VisitAttributeIdentifierList(n *AttributeIdentifierList) error {
	names := make([]string, 0, len(n.Names))
	for _, name := range n.Names {
		if name.Attribute != "" {
			names = append(names, name.Name+" <"+name.Attribute+">")
		} else {
			names = append(names, name.Name)
		}
	}
	return p.line("AttributeIdentifierList [" + strings.Join(names, ", ") + "]")
}

func (p *Printer) VisitKeywordTerm(n *KeywordTerm) error {
	return p.line("KeywordTerm " + n.Word.String())
}

func (p *Printer) VisitVarargTerm(*VarargTerm) error {
	return p.line("VarargTerm")
}

func (p *Printer) VisitIdentifierTerm(n *IdentifierTerm) error {
	return p.line("IdentifierTerm " + n.Name)
}

func (p *Printer) VisitIntegerTerm(n *IntegerTerm) error {
	return p.line("IntegerTerm " + strconv.FormatUint(n.Value, 10))
}

func (p *Printer) VisitFloatTerm(n *FloatTerm) error {
	return p.line("FloatTerm " + strconv.FormatFloat(n.Value, 'g', -1, 64))
}

func (p *Printer) VisitStringTerm(n *StringTerm) error {
	return p.line("StringTerm " + strconv.Quote(n.Value))
}

func (p *Printer) VisitFunctionTerm(n *FunctionTerm) error {
	return p.node("FunctionTerm", n.Body)
}

func (p *Printer) VisitTableConstructor(n *TableConstructor) error {
	return p.node("TableConstructor", nodes(n.Fields)...)
}

func (p *Printer) VisitTableField(n *TableField) error {
	switch {
	case n.Name != "":
		return p.node("TableField "+n.Name, n.Value)
	case n.Key != nil:
		return p.node("TableField [key]", n.Key, n.Value)
	}
	return p.node("TableField", n.Value)
}

func (p *Printer) VisitParenExpression(n *ParenExpression) error {
	return p.node("ParenExpression", n.Inner)
}

func (p *Printer) VisitPrefixExpression(n *PrefixExpression) error {
	return p.node("PrefixExpression", append([]Node{n.Head}, nodes(n.Suffixes)...)...)
}

func (p *Printer) VisitIndexSuffix(n *IndexSuffix) error {
	return p.node("IndexSuffix", n.Key)
}

func (p *Printer) VisitFieldSuffix(n *FieldSuffix) error {
	return p.line("FieldSuffix " + n.Name)
}

func (p *Printer) VisitCallSuffix(n *CallSuffix) error {
	if n.Method != "" {
		return p.node("CallSuffix :"+n.Method, n.Arguments)
	}
	return p.node("CallSuffix", n.Arguments)
}

func (p *Printer) VisitExponentExpression(n *ExponentExpression) error {
	return p.node("ExponentExpression", n.Base, n.Exponent)
}

func (p *Printer) VisitUnaryExpression(n *UnaryExpression) error {
	return p.node("UnaryExpression "+n.Operator, n.Operand)
}

func (p *Printer) VisitBinaryExpression(n *BinaryExpression) error {
	return p.node("BinaryExpression "+n.Operator, n.Left, n.Right)
}

func (p *Printer) VisitLogicalExpression(n *LogicalExpression) error {
	return p.node("LogicalExpression "+n.Operator, n.Left, n.Right)
}

func (p *Printer) VisitAssignment(n *Assignment) error {
	return p.node("Assignment", n.Targets, n.Values)
}

func (p *Printer) VisitCallStatement(n *CallStatement) error {
	return p.node("CallStatement", n.Call)
}

func (p *Printer) VisitLocalDeclaration(n *LocalDeclaration) error {
	return p.node("LocalDeclaration", n.Names, n.Values)
}

func (p *Printer) VisitFunctionIdentifier(n *FunctionIdentifier) error {
	name := strings.Join(n.Path, ".")
	if n.Method != "" {
		name += ":" + n.Method
	}
	return p.line("FunctionIdentifier " + name)
}

func (p *Printer) VisitFunctionBody(n *FunctionBody) error {
	return p.node("FunctionBody", n.Parameters, n.Body)
}

func (p *Printer) VisitFunctionDefinition(n *FunctionDefinition) error {
	if n.Local {
		return p.node("FunctionDefinition local", n.Name, n.Body)
	}
	return p.node("FunctionDefinition", n.Name, n.Body)
}

func (p *Printer) VisitLabel(n *Label) error {
	return p.line("Label " + n.Name)
}

func (p *Printer) VisitGoto(n *Goto) error {
	return p.line("Goto " + n.Label)
}

func (p *Printer) VisitBreak(*Break) error {
	return p.line("Break")
}

func (p *Printer) VisitDo(n *Do) error {
	return p.node("Do", n.Body)
}

func (p *Printer) VisitWhile(n *While) error {
	return p.node("While", n.Condition, n.Body)
}

func (p *Printer) VisitRepeatUntil(n *RepeatUntil) error {
	return p.node("RepeatUntil", n.Body, n.Condition)
}

func (p *Printer) VisitConditionalBlock(n *ConditionalBlock) error {
	return p.node("ConditionalBlock", n.Condition, n.Body)
}

func (p *Printer) VisitIf(n *If) error {
	if err := p.node("If", nodes(n.Clauses)...); err != nil {
		return err
	}
	if n.Else == nil {
		return nil
	}

	p.depth++
	defer func() { p.depth-- }()
	return p.node("Else", n.Else)
}

func (p *Printer) VisitNumericFor(n *NumericFor) error {
	return p.node("NumericFor "+n.Variable, n.Start, n.Limit, n.Step, n.Body)
}

func (p *Printer) VisitGenericFor(n *GenericFor) error {
	return p.node("GenericFor ["+strings.Join(n.Names, ", ")+"]", n.Values, n.Body)
}

func (p *Printer) VisitReturn(n *Return) error {
	return p.node("Return", n.Values)
}
