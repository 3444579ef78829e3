package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/tsatke/luafront"
)

var (
	headlineColor = color.New(color.FgRed, color.Bold)
	lineColor     = color.New(color.Faint)
)

// printError writes err to w. A syntax error is followed by the offending
// source line and a marker under the offending token.
func printError(w io.Writer, err error) {
	var syntaxErr *luafront.SyntaxError
	if !errors.As(err, &syntaxErr) {
		_, _ = headlineColor.Fprintln(w, err.Error())
		return
	}

	_, _ = headlineColor.Fprintf(w, "Syntax error at (%d:%d) when parsing %s: expected any of [%s], but got %s\n",
		syntaxErr.Row, syntaxErr.Column, syntaxErr.Context, strings.Join(syntaxErr.Expected, ","), syntaxErr.Got)
	if syntaxErr.Line == "" {
		return
	}
	_, _ = lineColor.Fprintln(w, syntaxErr.Line)
	_, _ = fmt.Fprintln(w, marker(syntaxErr.Line, syntaxErr.Column))
}

// marker returns a '^' under the given 1-based column of line. Tabs are kept,
// so that the marker lines up with the line above.
func marker(line string, column uint16) string {
	var sb strings.Builder
	for i, r := range []rune(line) {
		if i >= int(column)-1 {
			break
		}
		if r == '\t' {
			sb.WriteRune('\t')
		} else {
			sb.WriteRune(' ')
		}
	}
	sb.WriteRune('^')
	return sb.String()
}
