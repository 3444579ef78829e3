package token

import (
	"fmt"
	"strings"
)

// Token describes a lexical token. The set of implementations is closed,
// it consists of Identifier, Keyword, Operator, String, Decimal, Hex, Float,
// Comment and EOF. Tokens are immutable.
type Token interface {
	// Span is the position of the first character of the token.
	Span() Span
	// Raw is the canonical source text of the token.
	Raw() string
	Kind() Kind

	isToken()
}

// Span describes the position of the first character of a lexeme.
// Row and Column are 1-based.
type Span struct {
	Row    uint16
	Column uint16
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.Row, s.Column)
}

// Kind enumerates the token variants.
type Kind uint8

// Known kinds.
const (
	KindUnknown Kind = iota
	KindIdentifier
	KindKeyword
	KindOperator
	KindString
	KindDecimal
	KindHex
	KindFloat
	KindComment
	KindEOF
)

type (
	// Identifier is a name that is not a reserved word.
	Identifier struct {
		Pos  Span
		Name string
	}

	// Keyword is a reserved word.
	Keyword struct {
		Pos  Span
		Word Reserved
	}

	// Operator is an operator or delimiter, resolved by longest match.
	Operator struct {
		Pos    Span
		Symbol Symbol
	}

	// String is a string literal. Text is the source text between the
	// delimiters, Value is the literal value. Value only differs from Text if
	// escape decoding is enabled in the scanner.
	String struct {
		Pos   Span
		Text  string
		Value string
		// Quote is the opening delimiter, one of '"', '\'' or '[' for long
		// brackets.
		Quote rune
		// Level is the number of '=' in a long bracket.
		Level int
	}

	// Decimal is a decimal integer literal.
	Decimal struct {
		Pos   Span
		Text  string
		Value uint64
	}

	// Hex is a hexadecimal integer literal.
	Hex struct {
		Pos   Span
		Text  string
		Value uint64
	}

	// Float is a floating point literal, decimal or hexadecimal.
	Float struct {
		Pos   Span
		Text  string
		Value float64
		Hex   bool
	}

	// Comment is a line comment or a long comment. Text excludes the leading
	// '--' and, for long comments, the brackets.
	Comment struct {
		Pos   Span
		Text  string
		Long  bool
		Level int
	}

	// EOF marks the end of the input.
	EOF struct {
		Pos Span
	}
)

func (t Identifier) Span() Span { return t.Pos }
func (t Keyword) Span() Span    { return t.Pos }
func (t Operator) Span() Span   { return t.Pos }
func (t String) Span() Span     { return t.Pos }
func (t Decimal) Span() Span    { return t.Pos }
func (t Hex) Span() Span        { return t.Pos }
func (t Float) Span() Span      { return t.Pos }
func (t Comment) Span() Span    { return t.Pos }
func (t EOF) Span() Span        { return t.Pos }

func (Identifier) Kind() Kind { return KindIdentifier }
func (Keyword) Kind() Kind    { return KindKeyword }
func (Operator) Kind() Kind   { return KindOperator }
func (String) Kind() Kind     { return KindString }
func (Decimal) Kind() Kind    { return KindDecimal }
func (Hex) Kind() Kind        { return KindHex }
func (Float) Kind() Kind      { return KindFloat }
func (Comment) Kind() Kind    { return KindComment }
func (EOF) Kind() Kind        { return KindEOF }

func (t Identifier) Raw() string { return t.Name }
func (t Keyword) Raw() string    { return t.Word.String() }
func (t Operator) Raw() string   { return t.Symbol.String() }
func (t Decimal) Raw() string    { return t.Text }
func (t Hex) Raw() string        { return t.Text }
func (t Float) Raw() string      { return t.Text }
func (EOF) Raw() string          { return "EOF" }

func (t String) Raw() string {
	if t.Quote == '[' {
		return LongBracket(t.Text, t.Level)
	}
	return string(t.Quote) + t.Text + string(t.Quote)
}

func (t Comment) Raw() string {
	if t.Long {
		return "--" + LongBracket(t.Text, t.Level)
	}
	return "--" + t.Text
}

// LongBracket renders content in a long bracket of the given level. A leading
// line break character of the content is doubled, since the first line break
// after an opening long bracket is not part of the content. A doubled '\r' or
// '\n' is never read back as a single '\r\n' or '\n\r' break.
func LongBracket(content string, level int) string {
	eq := strings.Repeat("=", level)
	if strings.HasPrefix(content, "\n") || strings.HasPrefix(content, "\r") {
		content = content[:1] + content
	}
	return "[" + eq + "[" + content + "]" + eq + "]"
}

func (Identifier) isToken() {}
func (Keyword) isToken()    {}
func (Operator) isToken()   {}
func (String) isToken()     {}
func (Decimal) isToken()    {}
func (Hex) isToken()        {}
func (Float) isToken()      {}
func (Comment) isToken()    {}
func (EOF) isToken()        {}

var kindNames = [...]string{
	KindUnknown:    "Unknown",
	KindIdentifier: "Identifier",
	KindKeyword:    "Keyword",
	KindOperator:   "Operator",
	KindString:     "String",
	KindDecimal:    "Decimal",
	KindHex:        "Hex",
	KindFloat:      "Float",
	KindComment:    "Comment",
	KindEOF:        "EOF",
}

func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", k)
	}
	return kindNames[k]
}

// Is reports whether tk is a keyword or an operator spelled exactly like raw.
// Literals and identifiers never match.
func Is(tk Token, raw string) bool {
	switch tk.(type) {
	case Keyword, Operator:
		return tk.Raw() == raw
	}
	return false
}

// Format renders a token for diagnostics and dumps.
func Format(tk Token) string {
	return fmt.Sprintf("(%s) %s %q", tk.Span(), tk.Kind(), tk.Raw())
}
