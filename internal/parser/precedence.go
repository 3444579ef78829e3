package parser

import "github.com/tsatke/luafront/internal/token"

/*
Operator precedence as specified in the language reference, from lower to higher.

or
and
<     >     <=    >=    ~=    ==
|
~
&
<<    >>
..
+     -
*     /     //    %
unary operators (not   #     -     ~)
^

*/

type precedence uint8

const (
	precedenceOr precedence = iota
	precedenceAnd
	precedenceRelational
	precedenceBitwiseOr
	precedenceBitwiseXor
	precedenceBitwiseAnd
	precedenceShift
	precedenceConcat
	precedenceAdditive
	precedenceMultiplicative
	precedenceUnary
	precedenceExponent
)

var (
	precedences = map[string]precedence{
		"or":  precedenceOr,
		"and": precedenceAnd,
		"<":   precedenceRelational,
		">":   precedenceRelational,
		"<=":  precedenceRelational,
		">=":  precedenceRelational,
		"~=":  precedenceRelational,
		"==":  precedenceRelational,
		"|":   precedenceBitwiseOr,
		"~":   precedenceBitwiseXor,
		"&":   precedenceBitwiseAnd,
		"<<":  precedenceShift,
		">>":  precedenceShift,
		"..":  precedenceConcat,
		"+":   precedenceAdditive,
		"-":   precedenceAdditive,
		"*":   precedenceMultiplicative,
		"/":   precedenceMultiplicative,
		"//":  precedenceMultiplicative,
		"%":   precedenceMultiplicative,
		"^":   precedenceExponent,
	}

	// '-' and '~' are binary operators as well, which is why unary
	// operators are kept apart.
	unaryOperators = []string{"not", "-", "#", "~"}
)

// isBinaryOperator reports whether tk is a binary operator of the given
// precedence.
func isBinaryOperator(tk token.Token, p precedence) bool {
	switch tk.(type) {
	case token.Keyword, token.Operator:
	default:
		return false
	}
	prec, ok := precedences[tk.Raw()]
	return ok && prec == p
}

func isUnaryOperator(tk token.Token) bool {
	for _, op := range unaryOperators {
		if token.Is(tk, op) {
			return true
		}
	}
	return false
}

func isRightAssociative(operator string) bool {
	return operator == ".." || operator == "^"
}

func isLogical(p precedence) bool {
	return p == precedenceOr || p == precedenceAnd
}
