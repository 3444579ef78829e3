package parser

import (
	"github.com/tsatke/luafront/internal/ast"
	"github.com/tsatke/luafront/internal/token"
)

// statementStarters are the tokens a statement can start with.
var statementStarters = []string{";", "break", "goto", "do", "while", "repeat", "if", "for", "function", "local", "::", "Identifier", "("}

// blockEnd reports whether tk terminates a block.
func blockEnd(tk token.Token) bool {
	if tk.Kind() == token.KindEOF {
		return true
	}
	return token.Is(tk, "end") ||
		token.Is(tk, "else") ||
		token.Is(tk, "elseif") ||
		token.Is(tk, "until")
}

// block = {stat} [retstat]
func (p *Parser) block() (*ast.Block, error) {
	tk, err := p.peek()
	if err != nil {
		return nil, err
	}
	block := &ast.Block{Pos: tk.Span()}

	for {
		tk, err := p.peek()
		if err != nil {
			return nil, err
		}
		if blockEnd(tk) {
			return block, nil
		}
		if token.Is(tk, "return") {
			ret, err := p.retstat()
			if err != nil {
				return nil, err
			}
			block.Return = ret
			return block, nil
		}

		stat, err := p.stat()
		if err != nil {
			return nil, err
		}
		if stat != nil {
			block.Statements = append(block.Statements, stat)
		}
	}
}

// stat parses one statement. The empty statement ';' yields nil.
func (p *Parser) stat() (ast.Statement, error) {
	tk, err := p.peek()
	if err != nil {
		return nil, err
	}

	switch {
	case token.Is(tk, ";"):
		_, err := p.next()
		return nil, err
	case token.Is(tk, "break"):
		return p.breakStat()
	case token.Is(tk, "goto"):
		return p.gotoStat()
	case token.Is(tk, "do"):
		return p.do()
	case token.Is(tk, "while"):
		return p.while()
	case token.Is(tk, "repeat"):
		return p.repeat()
	case token.Is(tk, "if"):
		return p.ifStat()
	case token.Is(tk, "for"):
		return p.forStat()
	case token.Is(tk, "function"):
		return p.function()
	case token.Is(tk, "local"):
		return p.local()
	case token.Is(tk, "::"):
		return p.label()
	}

	switch tk.(type) {
	case token.Identifier:
		return p.exprstat()
	case token.Operator:
		if token.Is(tk, "(") {
			return p.exprstat()
		}
	}
	return nil, p.syntaxError(ContextStatement, tk, statementStarters...)
}

// retstat = return [explist] [';']
func (p *Parser) retstat() (*ast.Return, error) {
	tk, err := p.enter("retstat", "return")
	if err != nil {
		return nil, err
	}
	ret := &ast.Return{Pos: tk.Span()}

	next, err := p.peek()
	if err != nil {
		return nil, err
	}
	if !blockEnd(next) && !token.Is(next, ";") {
		ret.Values, err = p.explist()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.accept(";"); err != nil {
		return nil, err
	}
	return ret, nil
}

func (p *Parser) breakStat() (*ast.Break, error) {
	tk, err := p.enter("break", "break")
	if err != nil {
		return nil, err
	}
	return &ast.Break{Pos: tk.Span()}, nil
}

// gotoStat = goto Name
func (p *Parser) gotoStat() (*ast.Goto, error) {
	tk, err := p.enter("goto", "goto")
	if err != nil {
		return nil, err
	}
	name, err := p.identifier(ContextStatement)
	if err != nil {
		return nil, err
	}
	return &ast.Goto{
		Pos:   tk.Span(),
		Label: name.Name,
	}, nil
}

// label = '::' Name '::'
func (p *Parser) label() (*ast.Label, error) {
	tk, err := p.enter("label", "::")
	if err != nil {
		return nil, err
	}
	name, err := p.identifier(ContextStatement)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(ContextStatement, "::"); err != nil {
		return nil, err
	}
	return &ast.Label{
		Pos:  tk.Span(),
		Name: name.Name,
	}, nil
}

// do = do block end
func (p *Parser) do() (*ast.Do, error) {
	tk, err := p.enter("do", "do")
	if err != nil {
		return nil, err
	}
	body, err := p.blockUntil("end")
	if err != nil {
		return nil, err
	}
	return &ast.Do{
		Pos:  tk.Span(),
		Body: body,
	}, nil
}

// while = while exp do block end
func (p *Parser) while() (*ast.While, error) {
	tk, err := p.enter("while", "while")
	if err != nil {
		return nil, err
	}
	cond, err := p.exp()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(ContextStatement, "do"); err != nil {
		return nil, err
	}
	body, err := p.blockUntil("end")
	if err != nil {
		return nil, err
	}
	return &ast.While{
		Pos:       tk.Span(),
		Condition: cond,
		Body:      body,
	}, nil
}

// repeat = repeat block until exp
func (p *Parser) repeat() (*ast.RepeatUntil, error) {
	tk, err := p.enter("repeat", "repeat")
	if err != nil {
		return nil, err
	}
	body, err := p.blockUntil("until")
	if err != nil {
		return nil, err
	}
	cond, err := p.exp()
	if err != nil {
		return nil, err
	}
	return &ast.RepeatUntil{
		Pos:       tk.Span(),
		Body:      body,
		Condition: cond,
	}, nil
}

// ifStat = if exp then block {elseif exp then block} [else block] end
func (p *Parser) ifStat() (*ast.If, error) {
	tk, err := p.enter("if", "if")
	if err != nil {
		return nil, err
	}
	stmt := &ast.If{Pos: tk.Span()}

	for {
		clause, err := p.conditionalBlock(tk)
		if err != nil {
			return nil, err
		}
		stmt.Clauses = append(stmt.Clauses, clause)

		tk, err = p.next()
		if err != nil {
			return nil, err
		}
		switch {
		case token.Is(tk, "elseif"):
			continue
		case token.Is(tk, "else"):
			stmt.Else, err = p.blockUntil("end")
			if err != nil {
				return nil, err
			}
			return stmt, nil
		case token.Is(tk, "end"):
			return stmt, nil
		}
		return nil, p.syntaxError(ContextStatement, tk, "elseif", "else", "end")
	}
}

// conditionalBlock = exp then block
//
// The leading 'if' or 'elseif' has already been consumed.
func (p *Parser) conditionalBlock(leading token.Token) (*ast.ConditionalBlock, error) {
	cond, err := p.exp()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(ContextStatement, "then"); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &ast.ConditionalBlock{
		Pos:       leading.Span(),
		Condition: cond,
		Body:      body,
	}, nil
}

// forStat = for Name '=' exp ',' exp [',' exp] do block end |
//
//	for namelist in explist do block end
func (p *Parser) forStat() (ast.Statement, error) {
	tk, err := p.enter("for", "for")
	if err != nil {
		return nil, err
	}
	first, err := p.identifier(ContextStatement)
	if err != nil {
		return nil, err
	}

	next, err := p.peek()
	if err != nil {
		return nil, err
	}
	switch {
	case token.Is(next, "="):
		return p.numericFor(tk, first)
	case token.Is(next, ","), token.Is(next, "in"):
		return p.genericFor(tk, first)
	}
	return nil, p.syntaxError(ContextStatement, next, "=", ",", "in")
}

func (p *Parser) numericFor(leading token.Token, variable token.Identifier) (*ast.NumericFor, error) {
	if _, err := p.enter("numericFor", "="); err != nil {
		return nil, err
	}
	stmt := &ast.NumericFor{
		Pos:      leading.Span(),
		Variable: variable.Name,
	}

	var err error
	if stmt.Start, err = p.exp(); err != nil {
		return nil, err
	}
	if _, err := p.expect(ContextStatement, ","); err != nil {
		return nil, err
	}
	if stmt.Limit, err = p.exp(); err != nil {
		return nil, err
	}
	hasStep, err := p.accept(",")
	if err != nil {
		return nil, err
	}
	if hasStep {
		if stmt.Step, err = p.exp(); err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(ContextStatement, "do"); err != nil {
		return nil, err
	}
	if stmt.Body, err = p.blockUntil("end"); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) genericFor(leading token.Token, first token.Identifier) (*ast.GenericFor, error) {
	names, err := p.namelist(first)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(ContextStatement, "in"); err != nil {
		return nil, err
	}
	values, err := p.explist()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(ContextStatement, "do"); err != nil {
		return nil, err
	}
	body, err := p.blockUntil("end")
	if err != nil {
		return nil, err
	}
	return &ast.GenericFor{
		Pos:    leading.Span(),
		Names:  names,
		Values: values,
		Body:   body,
	}, nil
}

// function = function funcname funcbody
func (p *Parser) function() (*ast.FunctionDefinition, error) {
	tk, err := p.enter("function", "function")
	if err != nil {
		return nil, err
	}
	name, err := p.funcname()
	if err != nil {
		return nil, err
	}
	body, err := p.funcbody()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDefinition{
		Pos:  tk.Span(),
		Name: name,
		Body: body,
	}, nil
}

// funcname = Name {'.' Name} [':' Name]
func (p *Parser) funcname() (*ast.FunctionIdentifier, error) {
	first, err := p.identifier(ContextStatement)
	if err != nil {
		return nil, err
	}
	name := &ast.FunctionIdentifier{
		Pos:  first.Span(),
		Path: []string{first.Name},
	}

	for {
		dot, err := p.accept(".")
		if err != nil {
			return nil, err
		}
		if !dot {
			break
		}
		next, err := p.identifier(ContextStatement)
		if err != nil {
			return nil, err
		}
		name.Path = append(name.Path, next.Name)
	}

	colon, err := p.accept(":")
	if err != nil {
		return nil, err
	}
	if colon {
		method, err := p.identifier(ContextStatement)
		if err != nil {
			return nil, err
		}
		name.Method = method.Name
	}
	return name, nil
}

// funcbody = '(' [parlist] ')' block end
func (p *Parser) funcbody() (*ast.FunctionBody, error) {
	open, err := p.expect(ContextStatement, "(")
	if err != nil {
		return nil, err
	}
	params, err := p.parlist(open)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(ContextStatement, ")"); err != nil {
		return nil, err
	}
	body, err := p.blockUntil("end")
	if err != nil {
		return nil, err
	}
	return &ast.FunctionBody{
		Pos:        open.Span(),
		Parameters: params,
		Body:       body,
	}, nil
}

// parlist = namelist [',' '...'] | '...'
//
// The list is empty if the next token is ')'.
func (p *Parser) parlist(open token.Token) (*ast.ParameterList, error) {
	params := &ast.ParameterList{Pos: open.Span()}

	tk, err := p.peek()
	if err != nil {
		return nil, err
	}
	if token.Is(tk, ")") {
		return params, nil
	}

	for {
		tk, err := p.next()
		if err != nil {
			return nil, err
		}
		switch tk := tk.(type) {
		case token.Identifier:
			params.Names = append(params.Names, tk.Name)
		case token.Operator:
			if tk.Symbol != token.Ellipsis {
				return nil, p.syntaxError(ContextStatement, tk, "Identifier", "...")
			}
			params.Vararg = true
			return params, nil
		default:
			return nil, p.syntaxError(ContextStatement, tk, "Identifier", "...")
		}

		more, err := p.accept(",")
		if err != nil {
			return nil, err
		}
		if !more {
			return params, nil
		}
	}
}

// local = local function Name funcbody | local attnamelist ['=' explist]
func (p *Parser) local() (ast.Statement, error) {
	tk, err := p.enter("local", "local")
	if err != nil {
		return nil, err
	}

	isFunction, err := p.accept("function")
	if err != nil {
		return nil, err
	}
	if isFunction {
		name, err := p.identifier(ContextStatement)
		if err != nil {
			return nil, err
		}
		body, err := p.funcbody()
		if err != nil {
			return nil, err
		}
		return &ast.FunctionDefinition{
			Pos:   tk.Span(),
			Local: true,
			Name: &ast.FunctionIdentifier{
				Pos:  name.Span(),
				Path: []string{name.Name},
			},
			Body: body,
		}, nil
	}

	names, err := p.attnamelist()
	if err != nil {
		return nil, err
	}
	decl := &ast.LocalDeclaration{
		Pos:   tk.Span(),
		Names: names,
	}

	assign, err := p.accept("=")
	if err != nil {
		return nil, err
	}
	if assign {
		if decl.Values, err = p.explist(); err != nil {
			return nil, err
		}
	}
	return decl, nil
}

// attnamelist = Name attrib {',' Name attrib}
//
// attrib = ['<' Name '>']
func (p *Parser) attnamelist() (*ast.AttributeIdentifierList, error) {
	var list *ast.AttributeIdentifierList
	for {
		name, err := p.identifier(ContextStatement)
		if err != nil {
			return nil, err
		}
		if list == nil {
			list = &ast.AttributeIdentifierList{Pos: name.Span()}
		}
		attr := ast.AttributeName{
			Pos:  name.Span(),
			Name: name.Name,
		}

		hasAttrib, err := p.accept("<")
		if err != nil {
			return nil, err
		}
		if hasAttrib {
			kind, err := p.identifier(ContextStatement)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(ContextStatement, ">"); err != nil {
				return nil, err
			}
			attr.Attribute = kind.Name
		}
		list.Names = append(list.Names, attr)

		more, err := p.accept(",")
		if err != nil {
			return nil, err
		}
		if !more {
			return list, nil
		}
	}
}

// namelist = Name {',' Name}
//
// The first name has already been consumed.
func (p *Parser) namelist(first token.Identifier) ([]string, error) {
	names := []string{first.Name}
	for {
		more, err := p.accept(",")
		if err != nil {
			return nil, err
		}
		if !more {
			return names, nil
		}
		next, err := p.identifier(ContextStatement)
		if err != nil {
			return nil, err
		}
		names = append(names, next.Name)
	}
}

// exprstat = varlist '=' explist | functioncall
//
// Both start with a prefix expression. What follows it decides which of the
// two this is.
func (p *Parser) exprstat() (ast.Statement, error) {
	prefix, err := p.prefixexp()
	if err != nil {
		return nil, err
	}

	tk, err := p.peek()
	if err != nil {
		return nil, err
	}
	if token.Is(tk, "=") || token.Is(tk, ",") {
		return p.assignment(prefix)
	}
	if prefix.Call() {
		return &ast.CallStatement{
			Pos:  prefix.Span(),
			Call: prefix,
		}, nil
	}
	return nil, p.syntaxError(ContextStatement, tk, "=", ",", "(")
}

// assignment = varlist '=' explist
//
// The first variable has already been parsed.
func (p *Parser) assignment(first *ast.PrefixExpression) (*ast.Assignment, error) {
	targets, err := p.varlist(first)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(ContextStatement, "="); err != nil {
		return nil, err
	}
	values, err := p.explist()
	if err != nil {
		return nil, err
	}
	return &ast.Assignment{
		Pos:     first.Span(),
		Targets: targets,
		Values:  values,
	}, nil
}

// varlist = var {',' var}
func (p *Parser) varlist(first *ast.PrefixExpression) (*ast.VariableList, error) {
	list := &ast.VariableList{Pos: first.Span()}
	prefix := first
	for {
		v, err := p.variable(prefix)
		if err != nil {
			return nil, err
		}
		list.Variables = append(list.Variables, v)

		more, err := p.accept(",")
		if err != nil {
			return nil, err
		}
		if !more {
			return list, nil
		}
		if prefix, err = p.prefixexp(); err != nil {
			return nil, err
		}
	}
}

// variable = Name | prefixexp '[' exp ']' | prefixexp '.' Name
func (p *Parser) variable(prefix *ast.PrefixExpression) (*ast.Variable, error) {
	if !prefix.Assignable() {
		tk, err := p.peek()
		if err != nil {
			return nil, err
		}
		return nil, p.syntaxError(ContextStatement, tk, ".", "[")
	}
	return &ast.Variable{
		Pos:    prefix.Span(),
		Prefix: prefix,
	}, nil
}

// blockUntil parses a block that must be followed by the keyword terminator.
func (p *Parser) blockUntil(terminator string) (*ast.Block, error) {
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(ContextStatement, terminator); err != nil {
		return nil, err
	}
	return body, nil
}
