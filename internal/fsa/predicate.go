package fsa

import (
	"strings"

	"github.com/tsatke/luafront/internal/source"
)

// Predicate guards a transition.
type Predicate func(r rune) bool

// Is matches exactly the given character.
func Is(want rune) Predicate {
	return func(r rune) bool { return r == want }
}

// OneOf matches any of the characters in set.
func OneOf(set string) Predicate {
	return func(r rune) bool { return r != source.EOF && strings.ContainsRune(set, r) }
}

// Range matches characters between lo and hi, inclusive.
func Range(lo, hi rune) Predicate {
	return func(r rune) bool { return lo <= r && r <= hi }
}

// Either matches if any of the given predicates matches.
func Either(ps ...Predicate) Predicate {
	return func(r rune) bool {
		for _, p := range ps {
			if p(r) {
				return true
			}
		}
		return false
	}
}

// Not inverts a predicate. EOF never matches the result.
func Not(p Predicate) Predicate {
	return func(r rune) bool { return r != source.EOF && !p(r) }
}

// Predicates for the character classes used by the lexical components.
var (
	EOF      = Is(source.EOF)
	AnyChar  = Predicate(func(r rune) bool { return r != source.EOF })
	Digit    = Range('0', '9')
	HexDigit = Either(Digit, Range('a', 'f'), Range('A', 'F'))
	Letter   = Either(Range('a', 'z'), Range('A', 'Z'))
)

var (
	// NameStart matches the first character of an identifier.
	NameStart = Either(Letter, Is('_'))
	// NamePart matches the following characters of an identifier.
	NamePart = Either(Letter, Digit, Is('_'))
)
