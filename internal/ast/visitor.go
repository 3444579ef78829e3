package ast

import "reflect"

// Visitor has one method per node type. A visitor that descends into
// children does so by calling Accept on them.
type Visitor interface {
	VisitProgram(*Program) error
	VisitBlock(*Block) error
	VisitExpressionList(*ExpressionList) error
	VisitVariable(*Variable) error
	VisitVariableList(*VariableList) error
	VisitParameterList(*ParameterList) error
	VisitAttributeIdentifierList(*AttributeIdentifierList) error

	VisitKeywordTerm(*KeywordTerm) error
	VisitVarargTerm(*VarargTerm) error
	VisitIdentifierTerm(*IdentifierTerm) error
	VisitIntegerTerm(*IntegerTerm) error
	VisitFloatTerm(*FloatTerm) error
	VisitStringTerm(*StringTerm) error
	VisitFunctionTerm(*FunctionTerm) error
	VisitTableConstructor(*TableConstructor) error
	VisitTableField(*TableField) error
	VisitParenExpression(*ParenExpression) error
	VisitPrefixExpression(*PrefixExpression) error
	VisitIndexSuffix(*IndexSuffix) error
	VisitFieldSuffix(*FieldSuffix) error
	VisitCallSuffix(*CallSuffix) error
	VisitExponentExpression(*ExponentExpression) error
	VisitUnaryExpression(*UnaryExpression) error
	VisitBinaryExpression(*BinaryExpression) error
	VisitLogicalExpression(*LogicalExpression) error

	VisitAssignment(*Assignment) error
	VisitCallStatement(*CallStatement) error
	VisitLocalDeclaration(*LocalDeclaration) error
	VisitFunctionIdentifier(*FunctionIdentifier) error
	VisitFunctionBody(*FunctionBody) error
	VisitFunctionDefinition(*FunctionDefinition) error
	VisitLabel(*Label) error
	VisitGoto(*Goto) error
	VisitBreak(*Break) error
	VisitDo(*Do) error
	VisitWhile(*While) error
	VisitRepeatUntil(*RepeatUntil) error
	VisitConditionalBlock(*ConditionalBlock) error
	VisitIf(*If) error
	VisitNumericFor(*NumericFor) error
	VisitGenericFor(*GenericFor) error
	VisitReturn(*Return) error
}

// Accept lets the node accept the visitor. Omitted optional children, such
// as the step of a NumericFor, are nil and are skipped.
func Accept(n Node, v Visitor) error {
	if n == nil || reflect.ValueOf(n).IsNil() {
		return nil
	}
	return n.Accept(v)
}
