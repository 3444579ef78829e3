// Package fsa implements a small finite state automaton engine that drives
// lexical recognizers. States live in an arena and are addressed by StateID,
// so cycles and self loops need no shared ownership.
//
// Transitions are evaluated in insertion order and the first matching
// predicate wins. Transition predicates of one state need not be disjoint.
package fsa

import (
	"strings"

	"github.com/tsatke/luafront/internal/source"
)

// StateID addresses a state inside one Automaton.
type StateID int

// Transform appends the output for a consumed character to the result.
type Transform func(out *strings.Builder, r rune)

// Append writes the consumed character to the result. It is the default
// transform of every transition.
func Append(out *strings.Builder, r rune) {
	out.WriteRune(r)
}

// Discard drops the consumed character. The transition is still taken.
func Discard(*strings.Builder, rune) {}

type transition struct {
	accepts   Predicate
	next      StateID
	transform Transform
}

type state struct {
	name        string
	transitions []transition
	final       bool
	// rollback means that the character that routed into this final state
	// is given back to the stream.
	rollback bool
}

// Automaton is an immutable state graph. It is safe to run the same
// Automaton on several streams, one at a time per stream.
type Automaton struct {
	name   string
	states []state
	start  StateID
}

// Name returns the name the automaton was built with.
func (a *Automaton) Name() string {
	return a.name
}

// Len returns the number of states.
func (a *Automaton) Len() int {
	return len(a.states)
}

// Run walks the automaton from its start state, reading one character per
// transition, until a final state is reached. It returns the accumulated
// output. If no transition of the current state matches, the character is
// given back to the stream and a *PatternMatchError is returned together
// with the output accumulated so far.
func (a *Automaton) Run(s source.Stream) (string, error) {
	var out strings.Builder

	current := a.start
	for {
		st := &a.states[current]
		if st.final {
			return out.String(), nil
		}

		row, col := s.Row(), s.Column()
		r := s.Get()

		tr, ok := st.match(r)
		if !ok {
			s.Unget()
			return out.String(), &PatternMatchError{
				Automaton: a.name,
				State:     st.name,
				Char:      r,
				Row:       row,
				Column:    col,
			}
		}

		// a character that is given back is not part of the output
		if next := &a.states[tr.next]; next.final && next.rollback {
			s.Unget()
		} else {
			tr.transform(&out, r)
		}
		current = tr.next
	}
}

func (s *state) match(r rune) (transition, bool) {
	for _, tr := range s.transitions {
		if tr.accepts(r) {
			return tr, true
		}
	}
	return transition{}, false
}
