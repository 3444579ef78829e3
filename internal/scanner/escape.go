package scanner

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	escapeBytes [256]byte
)

func init() {
	escapeBytes['a'] = '\a'  // bell
	escapeBytes['b'] = '\b'  // backspace
	escapeBytes['f'] = '\f'  // form feed
	escapeBytes['n'] = '\n'  // newline
	escapeBytes['r'] = '\r'  // carriage return
	escapeBytes['t'] = '\t'  // horizontal tab
	escapeBytes['v'] = '\v'  // vertical tab
	escapeBytes['\\'] = '\\' // backslash
	escapeBytes['"'] = '"'   // double quote
	escapeBytes['\''] = '\'' // single quote
	escapeBytes['\n'] = '\n' // escaped newline is a new line
}

// decodeEscapes decodes the escape sequences in the text of a quoted string.
func decodeEscapes(s string) (string, error) {
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}

	var out strings.Builder
	out.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			out.WriteByte(s[i])
			continue
		}

		i++
		if i == len(s) {
			return "", fmt.Errorf("unfinished escape at end of string")
		}

		switch next := s[i]; {
		case next == 'z':
			// skip the following whitespace, including line breaks
			for i+1 < len(s) && unicode.IsSpace(rune(s[i+1])) {
				i++
			}
		case next == 'x':
			if i+2 >= len(s) {
				return "", fmt.Errorf("incomplete hex escape at end of string")
			}
			b, err := strconv.ParseUint(s[i+1:i+3], 16, 8)
			if err != nil {
				return "", fmt.Errorf("decode hex: %w", err)
			}
			out.WriteByte(byte(b))
			i += 2
		case next == 'u':
			end := strings.IndexByte(s[i:], '}')
			if i+1 >= len(s) || s[i+1] != '{' || end < 0 {
				return "", fmt.Errorf("malformed utf8 escape")
			}
			cp, err := strconv.ParseUint(s[i+2:i+end], 16, 32)
			if err != nil {
				return "", fmt.Errorf("decode utf8 escape: %w", err)
			}
			if cp > utf8.MaxRune {
				return "", fmt.Errorf("utf8 escape too large: %x", cp)
			}
			out.WriteRune(rune(cp))
			i += end
		case '0' <= next && next <= '9':
			j := i
			for j < len(s) && j < i+3 && '0' <= s[j] && s[j] <= '9' {
				j++
			}
			decoded, err := strconv.Atoi(s[i:j])
			if err != nil {
				return "", fmt.Errorf("decode dec: %w", err)
			}
			if decoded > 255 {
				return "", fmt.Errorf("decimal escape too large: %d (max 255)", decoded)
			}
			out.WriteByte(byte(decoded))
			i = j - 1
		case next == '\r':
			// \<CR><LF> is a single line break
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			out.WriteByte('\n')
		default:
			b := escapeBytes[next]
			if b == 0 {
				return "", fmt.Errorf("unknown escape sequence '\\%s'", string(next))
			}
			out.WriteByte(b)
		}
	}

	return out.String(), nil
}
