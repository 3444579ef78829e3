package scanner

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tsatke/luafront/internal/fsa"
	"github.com/tsatke/luafront/internal/source"
	"github.com/tsatke/luafront/internal/token"
)

var numericAutomaton = buildNumericAutomaton()

// numberDelimiter matches any character that may follow a numeric literal.
var numberDelimiter = fsa.Not(fsa.Either(fsa.NamePart, fsa.Is('.')))

func buildNumericAutomaton() *fsa.Automaton {
	b := fsa.NewBuilder("numeric")

	start := b.State("start")
	zero := b.State("leading zero")
	integer := b.State("integer")
	dot := b.State("leading point")
	fraction := b.State("fraction")
	exp := b.State("exponent")
	expSign := b.State("exponent sign")
	expDigits := b.State("exponent digits")

	hex := b.State("hex prefix")
	hexInteger := b.State("hex integer")
	hexDot := b.State("hex leading point")
	hexFraction := b.State("hex fraction")
	hexExp := b.State("hex exponent")
	hexExpSign := b.State("hex exponent sign")
	hexExpDigits := b.State("hex exponent digits")

	done := b.AcceptBefore("delimiter")
	eof := b.Accept("eof")

	terminate := func(from fsa.StateID) {
		b.On(from, fsa.EOF, eof, fsa.Discard)
		b.On(from, numberDelimiter, done, fsa.Discard)
	}

	b.On(start, fsa.Is('0'), zero).
		On(start, fsa.Digit, integer).
		On(start, fsa.Is('.'), dot)

	b.On(zero, fsa.OneOf("xX"), hex).
		On(zero, fsa.Digit, integer).
		On(zero, fsa.Is('.'), fraction).
		On(zero, fsa.OneOf("eE"), exp)
	terminate(zero)

	b.On(integer, fsa.Digit, integer).
		On(integer, fsa.Is('.'), fraction).
		On(integer, fsa.OneOf("eE"), exp)
	terminate(integer)

	b.On(dot, fsa.Digit, fraction)

	b.On(fraction, fsa.Digit, fraction).
		On(fraction, fsa.OneOf("eE"), exp)
	terminate(fraction)

	b.On(exp, fsa.OneOf("+-"), expSign).
		On(exp, fsa.Digit, expDigits)
	b.On(expSign, fsa.Digit, expDigits)
	b.On(expDigits, fsa.Digit, expDigits)
	terminate(expDigits)

	b.On(hex, fsa.HexDigit, hexInteger).
		On(hex, fsa.Is('.'), hexDot)

	b.On(hexInteger, fsa.HexDigit, hexInteger).
		On(hexInteger, fsa.Is('.'), hexFraction).
		On(hexInteger, fsa.OneOf("pP"), hexExp)
	terminate(hexInteger)

	b.On(hexDot, fsa.HexDigit, hexFraction)

	b.On(hexFraction, fsa.HexDigit, hexFraction).
		On(hexFraction, fsa.OneOf("pP"), hexExp)
	terminate(hexFraction)

	b.On(hexExp, fsa.OneOf("+-"), hexExpSign).
		On(hexExp, fsa.Digit, hexExpDigits)
	b.On(hexExpSign, fsa.Digit, hexExpDigits)
	b.On(hexExpDigits, fsa.Digit, hexExpDigits)
	terminate(hexExpDigits)

	return b.Build()
}

// Numeric scans decimal and hexadecimal integer and float literals.
type Numeric struct{}

func (Numeric) Name() string { return "numeric" }

func (Numeric) CanStart(s source.Stream) bool {
	switch r := s.Peek(); {
	case fsa.Digit(r):
		return true
	case r == '.':
		return fsa.Digit(peekSecond(s))
	}
	return false
}

func (Numeric) Scan(s source.Stream) (Lexeme, error) {
	text, err := numericAutomaton.Run(s)
	if err != nil {
		return Lexeme{}, fmt.Errorf("%w %s: %w", ErrMalformedNumber, text, err)
	}
	return Lexeme{Text: text}, nil
}

// Token classifies the lexeme by the special characters it contains. A hex
// lexeme containing '.' or 'p' is a hex float, a decimal lexeme containing
// '.' or 'e' is a float.
func (Numeric) Token(l Lexeme, at token.Span) (token.Token, error) {
	lower := strings.ToLower(l.Text)

	if strings.HasPrefix(lower, "0x") {
		if strings.ContainsAny(lower, ".p") {
			if !strings.Contains(lower, "p") {
				lower += "p0"
			}
			v, err := parseFloat(lower)
			if err != nil {
				return nil, fmt.Errorf("parse hex float %s: %w", l.Text, err)
			}
			return token.Float{Pos: at, Text: l.Text, Value: v, Hex: true}, nil
		}
		return token.Hex{Pos: at, Text: l.Text, Value: parseHexWrapping(lower[2:])}, nil
	}

	if strings.ContainsAny(lower, ".e") {
		v, err := parseFloat(lower)
		if err != nil {
			return nil, fmt.Errorf("parse float %s: %w", l.Text, err)
		}
		return token.Float{Pos: at, Text: l.Text, Value: v}, nil
	}

	v, err := strconv.ParseUint(l.Text, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		// decimal integers that do not fit are floats
		f, err := parseFloat(lower)
		if err != nil {
			return nil, fmt.Errorf("parse float %s: %w", l.Text, err)
		}
		return token.Float{Pos: at, Text: l.Text, Value: f}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("parse integer %s: %w", l.Text, err)
	}
	return token.Decimal{Pos: at, Text: l.Text, Value: v}, nil
}

// parseFloat accepts out of range values as infinity.
func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if errors.Is(err, strconv.ErrRange) {
		return v, nil
	}
	return v, err
}

// parseHexWrapping parses hex digits modulo 2^64.
func parseHexWrapping(digits string) uint64 {
	var v uint64
	for _, d := range digits {
		switch {
		case '0' <= d && d <= '9':
			v = v<<4 | uint64(d-'0')
		case 'a' <= d && d <= 'f':
			v = v<<4 | uint64(d-'a'+10)
		}
	}
	return v
}
