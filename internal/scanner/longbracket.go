package scanner

import (
	"strings"

	"github.com/tsatke/luafront/internal/source"
)

// Long brackets are read by hand, since matching the closing bracket
// requires counting the '=' of the opening one.

// openLongBracket consumes '[' followed by any number of '='. If the next
// character is another '[', it is consumed as well and ok is true. Otherwise
// consumed holds the text that was read.
func openLongBracket(s source.Stream) (level int, ok bool, consumed string) {
	s.Get() // '['
	for s.Peek() == '=' {
		s.Get()
		level++
	}
	if s.Peek() != '[' {
		return level, false, "[" + strings.Repeat("=", level)
	}
	s.Get()
	return level, true, ""
}

// readLongBracketBody reads the content of a long bracket up to and
// including the closing bracket of the given level. A newline directly after
// the opening bracket is skipped.
func readLongBracketBody(s source.Stream, level int) (string, error) {
	switch s.Peek() {
	case '\r':
		s.Get()
		if s.Peek() == '\n' {
			s.Get()
		}
	case '\n':
		s.Get()
		if s.Peek() == '\r' {
			s.Get()
		}
	}

	var content strings.Builder
	for {
		r := s.Get()
		switch r {
		case source.EOF:
			return content.String(), ErrUnterminatedLongBracket
		case ']':
			n := 0
			for s.Peek() == '=' {
				s.Get()
				n++
			}
			if n == level && s.Peek() == ']' {
				s.Get()
				return content.String(), nil
			}
			content.WriteRune(']')
			content.WriteString(strings.Repeat("=", n))
		default:
			content.WriteRune(r)
		}
	}
}
