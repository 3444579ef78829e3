package parser

import (
	"github.com/tsatke/luafront/internal/ast"
	"github.com/tsatke/luafront/internal/token"
)

// termStarters are the tokens an expression can start with.
var termStarters = []string{"nil", "false", "true", "...", "Number", "String", "function", "{", "Identifier", "(", "not", "-", "#", "~"}

// explist = exp {',' exp}
func (p *Parser) explist() (*ast.ExpressionList, error) {
	first, err := p.exp()
	if err != nil {
		return nil, err
	}
	list := &ast.ExpressionList{
		Pos:         first.Span(),
		Expressions: []ast.Expression{first},
	}
	for {
		more, err := p.accept(",")
		if err != nil {
			return nil, err
		}
		if !more {
			return list, nil
		}
		next, err := p.exp()
		if err != nil {
			return nil, err
		}
		list.Expressions = append(list.Expressions, next)
	}
}

func (p *Parser) exp() (ast.Expression, error) {
	return p.or()
}

func (p *Parser) or() (ast.Expression, error) {
	return p.binary(precedenceOr, p.and)
}

func (p *Parser) and() (ast.Expression, error) {
	return p.binary(precedenceAnd, p.relational)
}

func (p *Parser) relational() (ast.Expression, error) {
	return p.binary(precedenceRelational, p.bitwiseOr)
}

func (p *Parser) bitwiseOr() (ast.Expression, error) {
	return p.binary(precedenceBitwiseOr, p.bitwiseXor)
}

func (p *Parser) bitwiseXor() (ast.Expression, error) {
	return p.binary(precedenceBitwiseXor, p.bitwiseAnd)
}

func (p *Parser) bitwiseAnd() (ast.Expression, error) {
	return p.binary(precedenceBitwiseAnd, p.shift)
}

func (p *Parser) shift() (ast.Expression, error) {
	return p.binary(precedenceShift, p.concat)
}

func (p *Parser) concat() (ast.Expression, error) {
	return p.binary(precedenceConcat, p.additive)
}

func (p *Parser) additive() (ast.Expression, error) {
	return p.binary(precedenceAdditive, p.multiplicative)
}

func (p *Parser) multiplicative() (ast.Expression, error) {
	return p.binary(precedenceMultiplicative, p.unary)
}

// binary parses a chain of operands of the next tighter layer, joined by
// operators of the given precedence. Chains are left-associative unless the
// operator is right-associative.
func (p *Parser) binary(prec precedence, operand func() (ast.Expression, error)) (ast.Expression, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}

	for {
		op, err := p.peek()
		if err != nil {
			return nil, err
		}
		if !isBinaryOperator(op, prec) {
			return left, nil
		}
		if _, err := p.next(); err != nil {
			return nil, err
		}

		if isRightAssociative(op.Raw()) {
			right, err := p.binary(prec, operand)
			if err != nil {
				return nil, err
			}
			return newBinary(prec, op, left, right), nil
		}

		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = newBinary(prec, op, left, right)
	}
}

func newBinary(prec precedence, op token.Token, left, right ast.Expression) ast.Expression {
	if isLogical(prec) {
		return &ast.LogicalExpression{
			Pos:      left.Span(),
			Operator: op.Raw(),
			Left:     left,
			Right:    right,
		}
	}
	return &ast.BinaryExpression{
		Pos:      left.Span(),
		Operator: op.Raw(),
		Left:     left,
		Right:    right,
	}
}

// unary = {not | '#' | '-' | '~'} exponent
func (p *Parser) unary() (ast.Expression, error) {
	op, err := p.peek()
	if err != nil {
		return nil, err
	}
	if !isUnaryOperator(op) {
		return p.exponent()
	}
	if _, err := p.next(); err != nil {
		return nil, err
	}

	operand, err := p.unary()
	if err != nil {
		return nil, err
	}
	return &ast.UnaryExpression{
		Pos:      op.Span(),
		Operator: op.Raw(),
		Operand:  operand,
	}, nil
}

// exponent = simpleexp ['^' unary]
//
// The exponent is parsed on the unary layer, which makes '^' right
// associative and allows '2 ^ -1'.
func (p *Parser) exponent() (ast.Expression, error) {
	base, err := p.simpleexp()
	if err != nil {
		return nil, err
	}

	op, err := p.peek()
	if err != nil {
		return nil, err
	}
	if !isBinaryOperator(op, precedenceExponent) {
		return base, nil
	}
	if _, err := p.next(); err != nil {
		return nil, err
	}

	exp, err := p.unary()
	if err != nil {
		return nil, err
	}
	return &ast.ExponentExpression{
		Pos:      base.Span(),
		Base:     base,
		Exponent: exp,
	}, nil
}

// simpleexp = nil | false | true | Numeral | LiteralString | '...' |
//
//	functiondef | prefixexp | tableconstructor
func (p *Parser) simpleexp() (ast.Expression, error) {
	tk, err := p.peek()
	if err != nil {
		return nil, err
	}

	switch tk := tk.(type) {
	case token.Keyword:
		switch tk.Word {
		case token.Nil, token.False, token.True:
			_, err := p.next()
			return &ast.KeywordTerm{Pos: tk.Span(), Word: tk.Word}, err
		case token.Function:
			return p.functiondef()
		}
	case token.Operator:
		switch tk.Symbol {
		case token.Ellipsis:
			_, err := p.next()
			return &ast.VarargTerm{Pos: tk.Span()}, err
		case token.CurlyLeft:
			return p.tableconstructor()
		case token.ParLeft:
			return p.prefixexp()
		}
	case token.Identifier:
		return p.prefixexp()
	case token.Decimal:
		_, err := p.next()
		return &ast.IntegerTerm{Pos: tk.Span(), Value: tk.Value}, err
	case token.Hex:
		_, err := p.next()
		return &ast.IntegerTerm{Pos: tk.Span(), Value: tk.Value, Hex: true}, err
	case token.Float:
		_, err := p.next()
		return &ast.FloatTerm{Pos: tk.Span(), Value: tk.Value}, err
	case token.String:
		_, err := p.next()
		return &ast.StringTerm{Pos: tk.Span(), Value: tk.Value}, err
	}
	return nil, p.syntaxError(ContextExpression, tk, termStarters...)
}

// functiondef = function funcbody
func (p *Parser) functiondef() (*ast.FunctionTerm, error) {
	tk, err := p.enter("functiondef", "function")
	if err != nil {
		return nil, err
	}
	body, err := p.funcbody()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionTerm{
		Pos:  tk.Span(),
		Body: body,
	}, nil
}
