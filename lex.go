package yard

import (
	"strconv"
	"strings"
)

// Token is a lexical token.
type Token struct {
	// Kind is the kind of token.
	Kind TokenKind
	// Text is the source text of the token. For a bad token, it is the
	// concatenation of the unrecognized characters, without whitespace.
	Text string
	// Num is the value of a number token.
	Num float64
	// Off is the byte offset of the token in the source.
	Off int
	// Macro is the macro that matched a macro token.
	Macro Macro
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Off)
}

// TokenKind is a kind of lexical token.
type TokenKind int8

const (
	tokenNone TokenKind = iota
	// TokenNum is a number literal.
	TokenNum
	// TokenIdent is an identifier or operator. The parser distinguishes
	// variables, functions and operators.
	TokenIdent
	// TokenOpen is an open paren.
	TokenOpen
	// TokenClose is a close paren.
	TokenClose
	// TokenComma separates function arguments.
	TokenComma
	// TokenBad is a run of unrecognized characters.
	TokenBad
	// TokenMacro is text matched by a macro.
	TokenMacro
)

func (k TokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case TokenNum:
		return "Num"
	case TokenIdent:
		return "Ident"
	case TokenOpen:
		return "Open"
	case TokenClose:
		return "Close"
	case TokenComma:
		return "Comma"
	case TokenBad:
		return "Bad"
	case TokenMacro:
		return "Macro"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Tokenize splits src into tokens using the operators and macros of ctx.
// src must be ASCII; otherwise the result is an *EncodingError. Characters
// that no rule recognizes become bad tokens, which Parse rejects.
func Tokenize(src string, ctx *Ctx) ([]Token, error) {
	for i := 0; i < len(src); i++ {
		if src[i] >= 0x80 {
			return nil, &EncodingError{Off: i, Byte: src[i]}
		}
	}
	var toks []Token
	// held is the offset at which a macro matched zero bytes. Macros are not
	// tried again there, or they would match forever.
	held := -1
	i := SkipSpace(src)
	for i < len(src) {
		text := src[i:]
		tok := Token{Off: i}
		n := 0
		if m, k := matchMacro(text, ctx); m != nil && held != i {
			tok.Kind, tok.Text, tok.Macro = TokenMacro, text[:k], m
			n = k
			if k == 0 {
				held = i
			}
		} else {
			n = lexOne(text, ctx, &tok)
		}
		if tok.Kind == TokenBad && len(toks) > 0 && toks[len(toks)-1].Kind == TokenBad {
			toks[len(toks)-1].Text += tok.Text
		} else {
			toks = append(toks, tok)
		}
		i += n
		i += SkipSpace(src[i:])
	}
	return toks, nil
}

// lexOne scans a single non-macro token from the start of text, which is
// non-empty and does not start with whitespace. It fills in tok and returns
// the number of bytes scanned.
func lexOne(text string, ctx *Ctx, tok *Token) int {
	switch text[0] {
	case '(':
		tok.Kind, tok.Text = TokenOpen, "("
		return 1
	case ')':
		tok.Kind, tok.Text = TokenClose, ")"
		return 1
	case ',':
		tok.Kind, tok.Text = TokenComma, ","
		return 1
	}
	if n := matchNum(text); n > 0 {
		v, err := strconv.ParseFloat(text[:n], 64)
		if err != nil {
			// Only digits and at most one dot are matched, so the only
			// possible error is out of range, which reports ±Inf in v.
			if ne, _ := err.(*strconv.NumError); ne == nil || ne.Err != strconv.ErrRange {
				panic("yard: unparseable number " + strconv.Quote(text[:n]))
			}
		}
		tok.Kind, tok.Text, tok.Num = TokenNum, text[:n], v
		return n
	}
	n := matchOp(text, ctx)
	if n == 0 {
		n = MatchIdent(text)
	}
	if n > 0 {
		tok.Kind, tok.Text = TokenIdent, text[:n]
		return n
	}
	tok.Kind, tok.Text = TokenBad, text[:1]
	return 1
}

// matchMacro returns the first macro in ctx matching the start of text and
// the length of its match.
func matchMacro(text string, ctx *Ctx) (Macro, int) {
	for _, m := range ctx.Macros {
		if n, ok := m.Match(text, ctx); ok {
			if n < 0 || n > len(text) {
				panic("yard: macro match length " + strconv.Itoa(n) + " out of range")
			}
			return m, n
		}
	}
	return nil, 0
}

// matchNum returns the length of the number literal at the start of text, or
// 0 if there is none. A number is a digit followed by digits and at most one
// dot. A second dot ends the number.
func matchNum(text string) int {
	if !isDigit(text[0]) {
		return 0
	}
	dot := false
	n := 1
	for ; n < len(text); n++ {
		c := text[n]
		switch {
		case isDigit(c):
		case c == '.' && !dot:
			dot = true
		default:
			return n
		}
	}
	return n
}

// matchOp returns the length of the first binary operator, then the first
// unary operator, whose token is a prefix of text. The first match in
// registry order wins, not the longest.
func matchOp(text string, ctx *Ctx) int {
	for _, op := range ctx.BinOps {
		if op.Token != "" && strings.HasPrefix(text, op.Token) {
			return len(op.Token)
		}
	}
	for _, op := range ctx.UnOps {
		if op.Token != "" && strings.HasPrefix(text, op.Token) {
			return len(op.Token)
		}
	}
	return 0
}

// MatchIdent returns the length of the identifier at the start of text, or 0
// if there is none. An identifier is an ASCII letter or underscore followed by
// letters, digits and underscores.
func MatchIdent(text string) int {
	if len(text) == 0 || !isIdentStart(text[0]) {
		return 0
	}
	n := 1
	for n < len(text) && (isIdentStart(text[n]) || isDigit(text[n])) {
		n++
	}
	return n
}

// MatchString returns len(s) if text starts with s and 0 otherwise.
func MatchString(text, s string) int {
	if strings.HasPrefix(text, s) {
		return len(s)
	}
	return 0
}

// SkipSpace returns the number of ASCII whitespace bytes at the start of text.
func SkipSpace(text string) int {
	n := 0
	for n < len(text) && isSpace(text[n]) {
		n++
	}
	return n
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isIdentStart(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
