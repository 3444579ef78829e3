package parser

import (
	"github.com/tsatke/luafront/internal/ast"
	"github.com/tsatke/luafront/internal/token"
)

// prefixexp = (Name | '(' exp ')') {suffix}
//
// The suffixes are collected in order on the same node.
func (p *Parser) prefixexp() (*ast.PrefixExpression, error) {
	tk, err := p.next()
	if err != nil {
		return nil, err
	}
	prefix := &ast.PrefixExpression{Pos: tk.Span()}

	switch {
	case tk.Kind() == token.KindIdentifier:
		prefix.Head = &ast.IdentifierTerm{
			Pos:  tk.Span(),
			Name: tk.Raw(),
		}
	case token.Is(tk, "("):
		inner, err := p.exp()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(ContextExpression, ")"); err != nil {
			return nil, err
		}
		prefix.Head = &ast.ParenExpression{
			Pos:   tk.Span(),
			Inner: inner,
		}
	default:
		return nil, p.syntaxError(ContextExpression, tk, "Identifier", "(")
	}

	for {
		suffix, err := p.suffix()
		if err != nil {
			return nil, err
		}
		if suffix == nil {
			return prefix, nil
		}
		prefix.Suffixes = append(prefix.Suffixes, suffix)
	}
}

// suffix = '[' exp ']' | '.' Name | ':' Name args | args
//
// suffix returns nil if the next token does not start a suffix.
func (p *Parser) suffix() (ast.Suffix, error) {
	tk, err := p.peek()
	if err != nil {
		return nil, err
	}

	switch {
	case token.Is(tk, "["):
		return p.indexSuffix()
	case token.Is(tk, "."):
		return p.fieldSuffix()
	case token.Is(tk, ":"):
		return p.methodCall()
	case startsArgs(tk):
		args, err := p.args()
		if err != nil {
			return nil, err
		}
		return &ast.CallSuffix{
			Pos:       tk.Span(),
			Arguments: args,
		}, nil
	}
	return nil, nil
}

func (p *Parser) indexSuffix() (*ast.IndexSuffix, error) {
	tk, err := p.enter("indexSuffix", "[")
	if err != nil {
		return nil, err
	}
	key, err := p.exp()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(ContextExpression, "]"); err != nil {
		return nil, err
	}
	return &ast.IndexSuffix{
		Pos: tk.Span(),
		Key: key,
	}, nil
}

func (p *Parser) fieldSuffix() (*ast.FieldSuffix, error) {
	tk, err := p.enter("fieldSuffix", ".")
	if err != nil {
		return nil, err
	}
	name, err := p.identifier(ContextExpression)
	if err != nil {
		return nil, err
	}
	return &ast.FieldSuffix{
		Pos:  tk.Span(),
		Name: name.Name,
	}, nil
}

func (p *Parser) methodCall() (*ast.CallSuffix, error) {
	tk, err := p.enter("methodCall", ":")
	if err != nil {
		return nil, err
	}
	name, err := p.identifier(ContextExpression)
	if err != nil {
		return nil, err
	}

	next, err := p.peek()
	if err != nil {
		return nil, err
	}
	if !startsArgs(next) {
		return nil, p.syntaxError(ContextExpression, next, "(", "{", "String")
	}
	args, err := p.args()
	if err != nil {
		return nil, err
	}
	return &ast.CallSuffix{
		Pos:       tk.Span(),
		Method:    name.Name,
		Arguments: args,
	}, nil
}

func startsArgs(tk token.Token) bool {
	return token.Is(tk, "(") || token.Is(tk, "{") || tk.Kind() == token.KindString
}

// args = '(' [explist] ')' | tableconstructor | LiteralString
func (p *Parser) args() (*ast.ExpressionList, error) {
	tk, err := p.peek()
	if err != nil {
		return nil, err
	}

	switch {
	case token.Is(tk, "{"):
		table, err := p.tableconstructor()
		if err != nil {
			return nil, err
		}
		return &ast.ExpressionList{
			Pos:         tk.Span(),
			Expressions: []ast.Expression{table},
		}, nil
	case tk.Kind() == token.KindString:
		if _, err := p.next(); err != nil {
			return nil, err
		}
		return &ast.ExpressionList{
			Pos:         tk.Span(),
			Expressions: []ast.Expression{&ast.StringTerm{Pos: tk.Span(), Value: tk.(token.String).Value}},
		}, nil
	}

	if _, err := p.enter("args", "("); err != nil {
		return nil, err
	}
	closed, err := p.accept(")")
	if err != nil {
		return nil, err
	}
	if closed {
		return &ast.ExpressionList{Pos: tk.Span()}, nil
	}

	args, err := p.explist()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(ContextExpression, ")"); err != nil {
		return nil, err
	}
	args.Pos = tk.Span()
	return args, nil
}

// tableconstructor = '{' [fieldlist] '}'
//
// fieldlist = field {fieldsep field} [fieldsep]
func (p *Parser) tableconstructor() (*ast.TableConstructor, error) {
	tk, err := p.enter("tableconstructor", "{")
	if err != nil {
		return nil, err
	}
	table := &ast.TableConstructor{Pos: tk.Span()}

	for {
		closed, err := p.accept("}")
		if err != nil {
			return nil, err
		}
		if closed {
			return table, nil
		}

		field, err := p.field()
		if err != nil {
			return nil, err
		}
		table.Fields = append(table.Fields, field)

		next, err := p.next()
		if err != nil {
			return nil, err
		}
		switch {
		case token.Is(next, ","), token.Is(next, ";"):
			continue
		case token.Is(next, "}"):
			return table, nil
		}
		return nil, p.syntaxError(ContextExpression, next, ",", ";", "}")
	}
}

// field = '[' exp ']' '=' exp | Name '=' exp | exp
//
// 'Name = exp' is told apart from 'exp' after parsing the expression, which
// is a plain name in that case and is followed by '='.
func (p *Parser) field() (*ast.TableField, error) {
	tk, err := p.peek()
	if err != nil {
		return nil, err
	}
	field := &ast.TableField{Pos: tk.Span()}

	if token.Is(tk, "[") {
		if _, err := p.next(); err != nil {
			return nil, err
		}
		if field.Key, err = p.exp(); err != nil {
			return nil, err
		}
		if _, err := p.expect(ContextExpression, "]"); err != nil {
			return nil, err
		}
		if _, err := p.expect(ContextExpression, "="); err != nil {
			return nil, err
		}
		if field.Value, err = p.exp(); err != nil {
			return nil, err
		}
		return field, nil
	}

	value, err := p.exp()
	if err != nil {
		return nil, err
	}
	name, isName := plainName(value)
	if !isName {
		field.Value = value
		return field, nil
	}
	assign, err := p.accept("=")
	if err != nil {
		return nil, err
	}
	if !assign {
		field.Value = value
		return field, nil
	}

	field.Name = name
	if field.Value, err = p.exp(); err != nil {
		return nil, err
	}
	return field, nil
}

// plainName returns the name if exp is a name without suffixes.
func plainName(exp ast.Expression) (string, bool) {
	prefix, ok := exp.(*ast.PrefixExpression)
	if !ok || len(prefix.Suffixes) > 0 {
		return "", false
	}
	id, ok := prefix.Head.(*ast.IdentifierTerm)
	if !ok {
		return "", false
	}
	return id.Name, true
}
