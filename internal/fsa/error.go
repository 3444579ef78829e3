package fsa

import (
	"fmt"

	"github.com/tsatke/luafront/internal/source"
)

// PatternMatchError is returned by Automaton.Run if no transition of the
// current state accepts the next character.
type PatternMatchError struct {
	Automaton string
	State     string
	// Char is the offending character, or source.EOF.
	Char   rune
	Row    uint16
	Column uint16
}

func (e *PatternMatchError) Error() string {
	return fmt.Sprintf("%s: no transition from state %s on %s at (%d:%d)", e.Automaton, e.State, Describe(e.Char), e.Row, e.Column)
}

// Describe renders a character for diagnostics.
func Describe(r rune) string {
	if r == source.EOF {
		return "EOF"
	}
	return fmt.Sprintf("%q", r)
}
