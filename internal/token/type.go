package token

// Reserved is a reserved word of the language.
type Reserved uint8

// Known reserved words.
const (
	ReservedUnknown Reserved = iota

	// And is the keyword 'and'.
	And
	// Break is the keyword 'break'.
	Break
	// Do is the keyword 'do'.
	Do
	// Else is the keyword 'else'.
	Else
	// Elseif is the keyword 'elseif'.
	Elseif
	// End is the keyword 'end'.
	End
	// False is the keyword 'false'.
	False
	// For is the keyword 'for'.
	For
	// Function is the keyword 'function'.
	Function
	// Goto is the keyword 'goto'.
	Goto
	// If is the keyword 'if'.
	If
	// In is the keyword 'in'.
	In
	// Local is the keyword 'local'.
	Local
	// Nil is the keyword 'nil'.
	Nil
	// Not is the keyword 'not'.
	Not
	// Or is the keyword 'or'.
	Or
	// Repeat is the keyword 'repeat'.
	Repeat
	// Return is the keyword 'return'.
	Return
	// Then is the keyword 'then'.
	Then
	// True is the keyword 'true'.
	True
	// Until is the keyword 'until'.
	Until
	// While is the keyword 'while'.
	While
)

// Symbol is an operator or delimiter.
type Symbol uint8

// Known symbols.
const (
	SymbolUnknown Symbol = iota

	Plus         // +
	Minus        // -
	Star         // *
	Slash        // /
	DoubleSlash  // //
	Percent      // %
	Caret        // ^
	Hash         // #
	Ampersand    // &
	Tilde        // ~
	Pipe         // |
	ShiftLeft    // <<
	ShiftRight   // >>
	Equal        // ==
	NotEqual     // ~=
	LessEqual    // <=
	GreaterEqual // >=
	Less         // <
	Greater      // >
	Assign       // =
	ParLeft      // (
	ParRight     // )
	CurlyLeft    // {
	CurlyRight   // }
	BracketLeft  // [
	BracketRight // ]
	DoubleColon  // ::
	SemiColon    // ;
	Colon        // :
	Comma        // ,
	Dot          // .
	DoubleDot    // ..
	Ellipsis     // ...
)

var (
	reservedWords = [...]string{
		ReservedUnknown: "",
		And:             "and",
		Break:           "break",
		Do:              "do",
		Else:            "else",
		Elseif:          "elseif",
		End:             "end",
		False:           "false",
		For:             "for",
		Function:        "function",
		Goto:            "goto",
		If:              "if",
		In:              "in",
		Local:           "local",
		Nil:             "nil",
		Not:             "not",
		Or:              "or",
		Repeat:          "repeat",
		Return:          "return",
		Then:            "then",
		True:            "true",
		Until:           "until",
		While:           "while",
	}

	symbols = [...]string{
		SymbolUnknown: "",
		Plus:          "+",
		Minus:         "-",
		Star:          "*",
		Slash:         "/",
		DoubleSlash:   "//",
		Percent:       "%",
		Caret:         "^",
		Hash:          "#",
		Ampersand:     "&",
		Tilde:         "~",
		Pipe:          "|",
		ShiftLeft:     "<<",
		ShiftRight:    ">>",
		Equal:         "==",
		NotEqual:      "~=",
		LessEqual:     "<=",
		GreaterEqual:  ">=",
		Less:          "<",
		Greater:       ">",
		Assign:        "=",
		ParLeft:       "(",
		ParRight:      ")",
		CurlyLeft:     "{",
		CurlyRight:    "}",
		BracketLeft:   "[",
		BracketRight:  "]",
		DoubleColon:   "::",
		SemiColon:     ";",
		Colon:         ":",
		Comma:         ",",
		Dot:           ".",
		DoubleDot:     "..",
		Ellipsis:      "...",
	}

	reservedByWord  = make(map[string]Reserved, len(reservedWords))
	symbolsByLexeme = make(map[string]Symbol, len(symbols))
)

func init() {
	for r, word := range reservedWords {
		if word != "" {
			reservedByWord[word] = Reserved(r)
		}
	}
	for s, lexeme := range symbols {
		if lexeme != "" {
			symbolsByLexeme[lexeme] = Symbol(s)
		}
	}
}

// LookupReserved returns the reserved word spelled exactly like word.
func LookupReserved(word string) (Reserved, bool) {
	r, ok := reservedByWord[word]
	return r, ok
}

// LookupSymbol returns the symbol spelled exactly like lexeme.
func LookupSymbol(lexeme string) (Symbol, bool) {
	s, ok := symbolsByLexeme[lexeme]
	return s, ok
}

// ReservedWords returns the spellings of all reserved words.
func ReservedWords() []string {
	return append([]string(nil), reservedWords[1:]...)
}

// Symbols returns the spellings of all symbols.
func Symbols() []string {
	return append([]string(nil), symbols[1:]...)
}

func (r Reserved) String() string {
	if int(r) >= len(reservedWords) || r == ReservedUnknown {
		return "<unknown keyword>"
	}
	return reservedWords[r]
}

func (s Symbol) String() string {
	if int(s) >= len(symbols) || s == SymbolUnknown {
		return "<unknown symbol>"
	}
	return symbols[s]
}
