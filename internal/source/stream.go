package source

import (
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// EOF is returned by Peek and Get once the input is exhausted.
const EOF = rune(-1)

// Stream is a character source with position bookkeeping.
// Row and Column are 1-based and describe the next unread character. They
// saturate at math.MaxUint16.
// Unget inverts the most recent Get, including the bookkeeping across
// line boundaries. Only one level of Unget is guaranteed.
type Stream interface {
	Peek() rune
	Get() rune
	Unget()
	Row() uint16
	Column() uint16
}

// LineReader is implemented by streams that can serve a complete source line
// for diagnostics.
type LineReader interface {
	Line(row uint16) string
}

// RuneStream is an in-memory Stream over the complete input.
type RuneStream struct {
	input []rune
	name  string

	// lineStarts holds the offset of the first rune of every line.
	lineStarts []int

	pos int
	row int
	col int

	// atEOF is set when the last Get returned EOF, so that the following
	// Unget is a no-op.
	atEOF bool
}

// New reads the full content of the given reader into a new RuneStream.
func New(rd io.Reader) (*RuneStream, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("read all: %w", err)
	}
	s := FromString(string(data))
	if n, ok := rd.(interface{ Name() string }); ok {
		s.name = filepath.Base(n.Name())
	}
	return s, nil
}

// FromString creates a RuneStream over the given source text.
func FromString(src string) *RuneStream {
	runes := []rune(src)
	starts := []int{0}
	for i, r := range runes {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &RuneStream{
		input:      runes,
		lineStarts: starts,
		row:        1,
		col:        1,
	}
}

// Open opens the named file in the given file system and reads it into a
// new RuneStream.
func Open(fs afero.Fs, name string) (*RuneStream, error) {
	f, err := fs.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer func() { _ = f.Close() }()

	return New(f)
}

// Name returns the base name of the file this stream was read from, or the
// empty string.
func (s *RuneStream) Name() string {
	return s.name
}

func (s *RuneStream) Peek() rune {
	if s.pos >= len(s.input) {
		return EOF
	}
	return s.input[s.pos]
}

func (s *RuneStream) Get() rune {
	if s.pos >= len(s.input) {
		s.atEOF = true
		return EOF
	}
	s.atEOF = false
	r := s.input[s.pos]
	s.pos++
	if r == '\n' {
		s.row++
		s.col = 1
	} else {
		s.col++
	}
	return r
}

func (s *RuneStream) Unget() {
	if s.atEOF {
		s.atEOF = false
		return
	}
	if s.pos == 0 {
		return
	}
	s.pos--
	if s.input[s.pos] == '\n' {
		s.row--
		// the newline is the last rune of the previous line
		s.col = s.pos - s.lineStarts[s.row-1] + 1
	} else {
		s.col--
	}
}

func (s *RuneStream) Row() uint16 {
	return saturate(s.row)
}

func (s *RuneStream) Column() uint16 {
	return saturate(s.col)
}

func saturate(n int) uint16 {
	if n > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(n)
}

// Line returns the source line with the given 1-based row number, without
// its line terminator. Rows out of range yield the empty string.
func (s *RuneStream) Line(row uint16) string {
	idx := int(row) - 1
	if idx < 0 || idx >= len(s.lineStarts) {
		return ""
	}
	start := s.lineStarts[idx]
	end := len(s.input)
	if idx+1 < len(s.lineStarts) {
		end = s.lineStarts[idx+1]
	}
	return strings.TrimRight(string(s.input[start:end]), "\r\n")
}

