package scanner

import (
	"math"

	"github.com/tsatke/luafront/internal/source"
	"github.com/tsatke/luafront/internal/token"
)

func (suite *ScannerSuite) TestEmptyInput() {
	suite.assertTokensString(``, []token.Token{})
	suite.assertTokensString(" \t\r\n\v\f", []token.Token{})
}

func (suite *ScannerSuite) TestSmallInput() {
	suite.assertTokensString(`a`, []token.Token{
		ident("a", 1, 1),
	})
	suite.assertTokensString(`brea`, []token.Token{
		ident("brea", 1, 1),
	})
	suite.assertTokensString(`_x9`, []token.Token{
		ident("_x9", 1, 1),
	})
}

func (suite *ScannerSuite) TestKeywordTypes() {
	suite.assertTokensString("and break do else elseif end false for function if in local nil not or repeat return then true until while goto",
		[]token.Token{
			kw(token.And, 1, 1),
			kw(token.Break, 1, 5),
			kw(token.Do, 1, 11),
			kw(token.Else, 1, 14),
			kw(token.Elseif, 1, 19),
			kw(token.End, 1, 26),
			kw(token.False, 1, 30),
			kw(token.For, 1, 36),
			kw(token.Function, 1, 40),
			kw(token.If, 1, 49),
			kw(token.In, 1, 52),
			kw(token.Local, 1, 55),
			kw(token.Nil, 1, 61),
			kw(token.Not, 1, 65),
			kw(token.Or, 1, 69),
			kw(token.Repeat, 1, 72),
			kw(token.Return, 1, 79),
			kw(token.Then, 1, 86),
			kw(token.True, 1, 91),
			kw(token.Until, 1, 96),
			kw(token.While, 1, 102),
			kw(token.Goto, 1, 108),
		})
}

func (suite *ScannerSuite) TestKeywordIsNoPrefixMatch() {
	suite.assertTokensString(`and`, []token.Token{
		kw(token.And, 1, 1),
	})
	suite.assertTokensString(`andx`, []token.Token{
		ident("andx", 1, 1),
	})
	suite.assertTokensString(`andThese are not_keywords at all, but this is and`,
		[]token.Token{
			ident("andThese", 1, 1),
			ident("are", 1, 10),
			ident("not_keywords", 1, 14),
			ident("at", 1, 27),
			ident("all", 1, 30),
			op(token.Comma, 1, 33),
			ident("but", 1, 35),
			ident("this", 1, 39),
			ident("is", 1, 44),
			kw(token.And, 1, 47),
		})
}

func (suite *ScannerSuite) TestOperatorTypes() {
	suite.assertTokensString("+ - * / ^ % .. < <= > >= == ~= # //",
		[]token.Token{
			op(token.Plus, 1, 1),
			op(token.Minus, 1, 3),
			op(token.Star, 1, 5),
			op(token.Slash, 1, 7),
			op(token.Caret, 1, 9),
			op(token.Percent, 1, 11),
			op(token.DoubleDot, 1, 13),
			op(token.Less, 1, 16),
			op(token.LessEqual, 1, 18),
			op(token.Greater, 1, 21),
			op(token.GreaterEqual, 1, 23),
			op(token.Equal, 1, 26),
			op(token.NotEqual, 1, 29),
			op(token.Hash, 1, 32),
			op(token.DoubleSlash, 1, 34),
		})
	suite.assertTokensString("& ~ | << >> = ( ) { } [ ] :: ; : , . ...",
		[]token.Token{
			op(token.Ampersand, 1, 1),
			op(token.Tilde, 1, 3),
			op(token.Pipe, 1, 5),
			op(token.ShiftLeft, 1, 7),
			op(token.ShiftRight, 1, 10),
			op(token.Assign, 1, 13),
			op(token.ParLeft, 1, 15),
			op(token.ParRight, 1, 17),
			op(token.CurlyLeft, 1, 19),
			op(token.CurlyRight, 1, 21),
			op(token.BracketLeft, 1, 23),
			op(token.BracketRight, 1, 25),
			op(token.DoubleColon, 1, 27),
			op(token.SemiColon, 1, 30),
			op(token.Colon, 1, 32),
			op(token.Comma, 1, 34),
			op(token.Dot, 1, 36),
			op(token.Ellipsis, 1, 38),
		})
}

func (suite *ScannerSuite) TestLongestMatch() {
	suite.assertTokensString(`...`, []token.Token{
		op(token.Ellipsis, 1, 1),
	})
	suite.assertTokensString(`....`, []token.Token{
		op(token.Ellipsis, 1, 1),
		op(token.Dot, 1, 4),
	})
	suite.assertTokensString(`a.b..c`, []token.Token{
		ident("a", 1, 1),
		op(token.Dot, 1, 2),
		ident("b", 1, 3),
		op(token.DoubleDot, 1, 4),
		ident("c", 1, 6),
	})
	suite.assertTokensString(`>>=`, []token.Token{
		op(token.ShiftRight, 1, 1),
		op(token.Assign, 1, 3),
	})
	suite.assertTokensString(`===`, []token.Token{
		op(token.Equal, 1, 1),
		op(token.Assign, 1, 3),
	})
	suite.assertTokensString(`a[b]`, []token.Token{
		ident("a", 1, 1),
		op(token.BracketLeft, 1, 2),
		ident("b", 1, 3),
		op(token.BracketRight, 1, 4),
	})
}

func (suite *ScannerSuite) TestLinefeed() {
	suite.assertTokensString(`
break
 break
		break

do`,
		[]token.Token{
			kw(token.Break, 2, 1),
			kw(token.Break, 3, 2),
			kw(token.Break, 4, 3),
			kw(token.Do, 6, 1),
		})
}

func (suite *ScannerSuite) TestNumbers() {
	suite.assertTokensString(`345`, []token.Token{
		token.Decimal{Pos: pos(1, 1), Text: "345", Value: 345},
	})
	suite.assertTokensString(`0xff`, []token.Token{
		token.Hex{Pos: pos(1, 1), Text: "0xff", Value: 255},
	})
	suite.assertTokensString(`0xA23p-4`, []token.Token{
		token.Float{Pos: pos(1, 1), Text: "0xA23p-4", Value: 162.1875, Hex: true},
	})
	suite.assertTokensString(`314.16e-2`, []token.Token{
		token.Float{Pos: pos(1, 1), Text: "314.16e-2", Value: 3.1416},
	})
	suite.assertTokensString(`1.5E7 .3E9 3. 0.1`, []token.Token{
		token.Float{Pos: pos(1, 1), Text: "1.5E7", Value: 1.5e7},
		token.Float{Pos: pos(1, 7), Text: ".3E9", Value: .3e9},
		token.Float{Pos: pos(1, 12), Text: "3.", Value: 3},
		token.Float{Pos: pos(1, 15), Text: "0.1", Value: 0.1},
	})
	suite.assertTokensString(`0X1p+1 0x1P+1 0x.8 0xA.8`, []token.Token{
		token.Float{Pos: pos(1, 1), Text: "0X1p+1", Value: 2, Hex: true},
		token.Float{Pos: pos(1, 8), Text: "0x1P+1", Value: 2, Hex: true},
		token.Float{Pos: pos(1, 15), Text: "0x.8", Value: 0.5, Hex: true},
		token.Float{Pos: pos(1, 20), Text: "0xA.8", Value: 10.5, Hex: true},
	})
	suite.assertTokensString(`0`, []token.Token{
		token.Decimal{Pos: pos(1, 1), Text: "0", Value: 0},
	})
}

func (suite *ScannerSuite) TestNumberOverflow() {
	suite.assertTokensString(`18446744073709551615 18446744073709551616`, []token.Token{
		token.Decimal{Pos: pos(1, 1), Text: "18446744073709551615", Value: math.MaxUint64},
		token.Float{Pos: pos(1, 22), Text: "18446744073709551616", Value: 18446744073709551616},
	})
	// hex integers wrap around
	suite.assertTokensString(`0x1ffffffffffffffff`, []token.Token{
		token.Hex{Pos: pos(1, 1), Text: "0x1ffffffffffffffff", Value: math.MaxUint64},
	})
	suite.assertTokensString(`1e999`, []token.Token{
		token.Float{Pos: pos(1, 1), Text: "1e999", Value: math.Inf(1)},
	})
}

func (suite *ScannerSuite) TestNumberDelimiter() {
	suite.assertTokensString(`-1+2`, []token.Token{
		op(token.Minus, 1, 1),
		token.Decimal{Pos: pos(1, 2), Text: "1", Value: 1},
		op(token.Plus, 1, 3),
		token.Decimal{Pos: pos(1, 4), Text: "2", Value: 2},
	})
	suite.assertTokensString(`f(12)`, []token.Token{
		ident("f", 1, 1),
		op(token.ParLeft, 1, 2),
		token.Decimal{Pos: pos(1, 3), Text: "12", Value: 12},
		op(token.ParRight, 1, 5),
	})
	suite.assertTokensString("1\n2", []token.Token{
		token.Decimal{Pos: pos(1, 1), Text: "1", Value: 1},
		token.Decimal{Pos: pos(2, 1), Text: "2", Value: 2},
	})
}

func (suite *ScannerSuite) TestMalformedNumbers() {
	suite.assertFatal(`3..4`, '3', 1, 1, ErrMalformedNumber)
	suite.assertFatal(`x = 0x`, '0', 1, 5, ErrMalformedNumber)
	suite.assertFatal(`1e`, '1', 1, 1, ErrMalformedNumber)
	suite.assertFatal(`0xg`, '0', 1, 1, ErrMalformedNumber)
	suite.assertFatal(`12abc`, '1', 1, 1, ErrMalformedNumber)
}

func (suite *ScannerSuite) TestStrings() {
	suite.assertTokensString(`'a' "b" [[c]]`,
		[]token.Token{
			token.String{Pos: pos(1, 1), Text: "a", Value: "a", Quote: '\''},
			token.String{Pos: pos(1, 5), Text: "b", Value: "b", Quote: '"'},
			token.String{Pos: pos(1, 9), Text: "c", Value: "c", Quote: '['},
		})

	suite.assertTokensString(`'a' "b" [[
c]]`,
		[]token.Token{
			token.String{Pos: pos(1, 1), Text: "a", Value: "a", Quote: '\''},
			token.String{Pos: pos(1, 5), Text: "b", Value: "b", Quote: '"'},
			token.String{Pos: pos(1, 9), Text: "c", Value: "c", Quote: '['},
		})

	suite.assertTokensString(`[[a]] [=[b]=] [==[foo]]b]=]ar]==]`,
		[]token.Token{
			token.String{Pos: pos(1, 1), Text: "a", Value: "a", Quote: '['},
			token.String{Pos: pos(1, 7), Text: "b", Value: "b", Quote: '[', Level: 1},
			token.String{Pos: pos(1, 15), Text: "foo]]b]=]ar", Value: "foo]]b]=]ar", Quote: '[', Level: 2},
		})

	suite.assertTokensString(`'it''s'`,
		[]token.Token{
			token.String{Pos: pos(1, 1), Text: "it", Value: "it", Quote: '\''},
			token.String{Pos: pos(1, 5), Text: "s", Value: "s", Quote: '\''},
		})
}

func (suite *ScannerSuite) TestStringEscapesPassThrough() {
	suite.assertTokensString(`"a\"b\n" 'c\'d'`,
		[]token.Token{
			token.String{Pos: pos(1, 1), Text: `a\"b\n`, Value: `a\"b\n`, Quote: '"'},
			token.String{Pos: pos(1, 10), Text: `c\'d`, Value: `c\'d`, Quote: '\''},
		})
	// an escaped line break does not terminate the string
	suite.assertTokensString("'a\\\nb'",
		[]token.Token{
			token.String{Pos: pos(1, 1), Text: "a\\\nb", Value: "a\\\nb", Quote: '\''},
		})
}

func (suite *ScannerSuite) TestStringEscapesDecoded() {
	suite.assertTokensString(`"a\"b\n" [[c\n]]`,
		[]token.Token{
			token.String{Pos: pos(1, 1), Text: `a\"b\n`, Value: "a\"b\n", Quote: '"'},
			token.String{Pos: pos(1, 10), Text: `c\n`, Value: `c\n`, Quote: '['},
		},
		WithEscapeDecoding(true))

	tz := New(source.FromString(`"\q"`), WithEscapeDecoding(true))
	_, err := tz.Next()
	suite.ErrorIs(err, ErrInvalidEscape)
}

func (suite *ScannerSuite) TestUnterminatedStrings() {
	suite.assertFatal(`"abc`, '"', 1, 1, ErrUnterminatedString)
	suite.assertFatal("x = 'ab\ncd'", '\'', 1, 5, ErrUnterminatedString)
	suite.assertFatal(`[[abc`, '[', 1, 1, ErrUnterminatedLongBracket)
	suite.assertFatal(`[==[abc]=]`, '[', 1, 1, ErrUnterminatedLongBracket)
	suite.assertFatal(`[==x`, '[', 1, 1, ErrInvalidLongBracket)
}

func (suite *ScannerSuite) TestCommentsSkipped() {
	suite.assertTokensString("a -- comment\nb --[[ long\ncomment ]] c", []token.Token{
		ident("a", 1, 1),
		ident("b", 2, 1),
		ident("c", 3, 12),
	})
}

func (suite *ScannerSuite) TestCommentsSurfaced() {
	suite.assertTokensString("a -- comment\n--[[ multi\nline ]] x --[==x\n--", []token.Token{
		ident("a", 1, 1),
		token.Comment{Pos: pos(1, 3), Text: " comment"},
		token.Comment{Pos: pos(2, 1), Text: " multi\nline ", Long: true},
		ident("x", 3, 9),
		token.Comment{Pos: pos(3, 11), Text: "[==x"},
		token.Comment{Pos: pos(4, 1), Text: ""},
	}, WithComments(true))
}

func (suite *ScannerSuite) TestUnterminatedLongComment() {
	suite.assertFatal("--[==[ never closed ]]", '-', 1, 1, ErrUnterminatedLongBracket)
}

func (suite *ScannerSuite) TestShebang() {
	suite.assertTokensString("#!/usr/bin/env lua\nprint", []token.Token{
		ident("print", 2, 1),
	})
	suite.assertTokensString("#x", []token.Token{
		op(token.Hash, 1, 1),
		ident("x", 1, 2),
	})
}

func (suite *ScannerSuite) TestFatalUnknownCharacter() {
	tz := New(source.FromString("@"))
	_, err := tz.Next()
	suite.Require().Error(err)
	suite.Equal("Fatal Error. Was not able to scan token starting with [@] at (1:1). Exiting.", err.Error())
	suite.ErrorIs(err, ErrNoComponent)

	// errors are sticky
	_, err2 := tz.Next()
	suite.Equal(err, err2)
	_, err2 = tz.Peek()
	suite.Equal(err, err2)

	suite.assertFatal("a = 1\n  $", '$', 2, 3, ErrNoComponent)
}

func (suite *ScannerSuite) TestPeekNext() {
	tz := New(source.FromString("a b"))

	tk, err := tz.Peek()
	suite.Require().NoError(err)
	suite.Equal(ident("a", 1, 1), tk)

	tk, err = tz.Peek()
	suite.Require().NoError(err)
	suite.Equal(ident("a", 1, 1), tk)

	tk, err = tz.Next()
	suite.Require().NoError(err)
	suite.Equal(ident("a", 1, 1), tk)

	tk, err = tz.Next()
	suite.Require().NoError(err)
	suite.Equal(ident("b", 1, 3), tk)

	// end of input is idempotent
	for i := 0; i < 3; i++ {
		tk, err = tz.Next()
		suite.Require().NoError(err)
		suite.Equal(token.EOF{Pos: pos(1, 4)}, tk)
	}
	tk, err = tz.Peek()
	suite.Require().NoError(err)
	suite.Equal(token.EOF{Pos: pos(1, 4)}, tk)
}

func (suite *ScannerSuite) TestPositionMonotonicity() {
	input := `local function fib(n)
  if n < 2 then return n end -- base case
  return fib(n-1) + fib(n - 2)
end
print(fib(10), 0x1F, "done", [[x]])`

	tokens, err := New(source.FromString(input)).All()
	suite.Require().NoError(err)
	suite.Require().NotEmpty(tokens)

	for i := 1; i < len(tokens); i++ {
		prev, cur := tokens[i-1].Span(), tokens[i].Span()
		suite.LessOrEqual(prev.Row, cur.Row, "rows must not decrease")
		if prev.Row == cur.Row {
			suite.Less(prev.Column, cur.Column, "columns must increase within a row")
		}
	}
}

func (suite *ScannerSuite) TestRawRoundTrip() {
	input := `local x <const> = 0xA23p-4 + 0X1p+1 .. 'a\'b' .. "c" .. [==[
d]]e]==] -- trailing
--[[ long ]] y = x // 3 ~= 314.16e-2 and foo:bar{...} or 345 >= 0xff`

	tokens, err := New(source.FromString(input), WithComments(true)).All()
	suite.Require().NoError(err)

	for _, tk := range tokens {
		again, err := New(source.FromString(tk.Raw()), WithComments(true)).All()
		suite.Require().NoError(err, "re-scan %q", tk.Raw())
		suite.Require().Len(again, 1, "re-scan %q", tk.Raw())
		suite.Equal(withoutPos(tk), withoutPos(again[0]), "re-scan %q", tk.Raw())
	}
}

func (suite *ScannerSuite) TestRawRoundTrip_LeadingLineBreak() {
	inputs := []string{
		"[[\n\nx]]",
		"[==[\n\nx]==]",
		"[[\r\n\r\nx]]",
		"[[\r\rx]]",
		"[[\n\r\n\rx]]",
		"--[[\r\n\r\nx]]",
		"--[=[\r\rx]=]",
	}
	for _, input := range inputs {
		tokens, err := New(source.FromString(input), WithComments(true)).All()
		suite.Require().NoError(err, "scan %q", input)
		suite.Require().Len(tokens, 1, "scan %q", input)

		again, err := New(source.FromString(tokens[0].Raw()), WithComments(true)).All()
		suite.Require().NoError(err, "re-scan %q", tokens[0].Raw())
		suite.Require().Len(again, 1, "re-scan %q", tokens[0].Raw())
		suite.Equal(withoutPos(tokens[0]), withoutPos(again[0]), "re-scan %q", tokens[0].Raw())
	}
}

func withoutPos(tk token.Token) token.Token {
	switch t := tk.(type) {
	case token.Identifier:
		t.Pos = token.Span{}
		return t
	case token.Keyword:
		t.Pos = token.Span{}
		return t
	case token.Operator:
		t.Pos = token.Span{}
		return t
	case token.String:
		t.Pos = token.Span{}
		return t
	case token.Decimal:
		t.Pos = token.Span{}
		return t
	case token.Hex:
		t.Pos = token.Span{}
		return t
	case token.Float:
		t.Pos = token.Span{}
		return t
	case token.Comment:
		t.Pos = token.Span{}
		return t
	case token.EOF:
		t.Pos = token.Span{}
		return t
	}
	return tk
}

func (suite *ScannerSuite) TestComponentCanStart() {
	cases := []struct {
		input     string
		component Component
		want      bool
	}{
		{".5", Numeric{}, true},
		{".", Numeric{}, false},
		{"x", Numeric{}, false},
		{".5", Operator{}, false},
		{"..", Operator{}, true},
		{"[[", Operator{}, false},
		{"[=", Operator{}, false},
		{"[x", Operator{}, true},
		{"[", Operator{}, true},
		{"[[", StringLiteral{}, true},
		{"[=", StringLiteral{}, true},
		{"[x", StringLiteral{}, false},
		{"--", Comment{}, true},
		{"-", Comment{}, false},
		{"-1", Comment{}, false},
		{"_", IdentifierOrKeyword{}, true},
		{"9", IdentifierOrKeyword{}, false},
		{"", Operator{}, false},
	}
	for _, c := range cases {
		s := source.FromString(c.input)
		suite.Equal(c.want, c.component.CanStart(s), "%s.CanStart(%q)", c.component.Name(), c.input)
		// CanStart must not consume anything
		suite.EqualValues(1, s.Column())
		if c.input != "" {
			suite.Equal([]rune(c.input)[0], s.Peek())
		}
	}
}
