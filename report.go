package yard

import (
	"errors"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Report writes a diagnostic for an error from tokenizing, parsing or
// evaluating tokens. For a ParseError, the diagnostic is the tokens joined by
// single spaces, a line of carets under the token at the error's position,
// and the error message. A position past the last token gets one caret just
// after it. Any other error produces only the message.
//
// If colors is true, the carets and message are red regardless of whether w
// is a terminal.
func Report(w io.Writer, tokens []Token, err error, colors bool) error {
	red := color.New(color.FgRed)
	if colors {
		red.EnableColor()
	} else {
		red.DisableColor()
	}
	var b strings.Builder
	var pe *ParseError
	if errors.As(err, &pe) {
		line, col, width := renderTokens(tokens, pe.Pos)
		b.WriteString(line)
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(" ", col))
		b.WriteString(red.Sprint(strings.Repeat("^", width)))
		b.WriteByte('\n')
	}
	b.WriteString(red.Sprint(err.Error()))
	b.WriteByte('\n')
	_, werr := io.WriteString(w, b.String())
	return werr
}

// renderTokens joins the texts of tokens with spaces and returns the column
// and width of token pos in the result.
func renderTokens(tokens []Token, pos int) (line string, col, width int) {
	var b strings.Builder
	col = -1
	for i, tok := range tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		if i == pos {
			col = b.Len()
			width = len(tok.Text)
		}
		b.WriteString(tok.Text)
	}
	line = b.String()
	if col < 0 {
		col = len(line)
		if len(tokens) > 0 {
			col++
		}
	}
	if width == 0 {
		// Zero-length macro matches and positions past the end still get a
		// caret.
		width = 1
	}
	return line, col, width
}
