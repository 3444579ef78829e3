package scanner

import (
	"errors"
	"fmt"

	"github.com/tsatke/luafront/internal/source"
)

var (
	// ErrNoComponent indicates that no component is able to scan a lexeme
	// at the current position.
	ErrNoComponent = errors.New("no component accepts the input")
	// ErrMalformedNumber indicates a numeric literal that does not match the
	// numeric automaton.
	ErrMalformedNumber = errors.New("malformed number")
	// ErrUnterminatedString indicates a quoted string without a closing quote
	// on the same line.
	ErrUnterminatedString = errors.New("unterminated string")
	// ErrUnterminatedLongBracket indicates a long string or long comment
	// that runs into the end of the input.
	ErrUnterminatedLongBracket = errors.New("unterminated long bracket")
	// ErrInvalidLongBracket indicates an opening long bracket like '[=' that
	// is not followed by '['.
	ErrInvalidLongBracket = errors.New("invalid long bracket delimiter")
	// ErrInvalidEscape indicates an escape sequence that cannot be decoded.
	ErrInvalidEscape = errors.New("invalid escape sequence")
	// ErrUnknownOperator indicates a character that is not an operator.
	ErrUnknownOperator = errors.New("unknown operator")
)

// LexicalError is a fatal scanning error. No recovery is attempted after it
// occurred.
type LexicalError struct {
	// Char is the first character of the lexeme that could not be scanned.
	Char   rune
	Row    uint16
	Column uint16
	// Cause is the diagnostic of the component that rejected the input.
	Cause error
}

func (e *LexicalError) Error() string {
	char := string(e.Char)
	if e.Char == source.EOF {
		char = "EOF"
	}
	return fmt.Sprintf("Fatal Error. Was not able to scan token starting with [%s] at (%d:%d). Exiting.", char, e.Row, e.Column)
}

func (e *LexicalError) Unwrap() error {
	return e.Cause
}
