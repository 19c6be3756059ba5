package yard

import (
	"errors"
	"strconv"

	"github.com/edwingeng/deque"
)

// Parse converts a token sequence to a reverse-Polish program using the
// shunting-yard algorithm. Operators, functions and macros are resolved
// against ctx; identifiers which resolve to none of them are variables.
//
// An empty token sequence parses to an empty program, which Eval rejects.
// Errors are *ParseError values.
func Parse(tokens []Token, ctx *Ctx) (Program, error) {
	p := parser{
		ctx:  ctx,
		toks: tokens,
		out:  make(Program, 0, len(tokens)),
		ops:  deque.NewDeque(),
	}
	for i := range tokens {
		if err := p.step(i); err != nil {
			return nil, err
		}
	}
	return p.finish()
}

// ParseString tokenizes and parses src.
func ParseString(src string, ctx *Ctx) (Program, error) {
	toks, err := Tokenize(src, ctx)
	if err != nil {
		return nil, err
	}
	return Parse(toks, ctx)
}

// parser holds the state of a single Parse call.
type parser struct {
	ctx  *Ctx
	toks []Token
	out  Program
	// ops is the operator stack, holding *stackEntry values.
	ops deque.Deque
	// parens is the number of parens on ops.
	parens int
	state  ParseState
}

type entryKind int8

const (
	entryParen entryKind = iota
	entryUnary
	entryBinary
	entryCall
	entryMacro
)

// stackEntry is an element of the operator stack.
type stackEntry struct {
	kind entryKind
	// pos is the index of the token that created the entry.
	pos int
	un  *UnOp
	bin *BinOp
	fn  *Func
	// argc is the number of completed arguments of a call.
	argc int
	// call is the call entry that a paren opens the argument list of, or nil
	// if the paren only groups.
	call  *stackEntry
	macro ParsedMacro
}

func (p *parser) push(e *stackEntry) {
	if e.kind == entryParen {
		p.parens++
	}
	p.ops.PushBack(e)
}

func (p *parser) pop() *stackEntry {
	e := p.ops.PopBack().(*stackEntry)
	if e.kind == entryParen {
		p.parens--
	}
	return e
}

// top returns the top of the operator stack, or nil if it is empty.
func (p *parser) top() *stackEntry {
	if p.ops.Empty() {
		return nil
	}
	return p.ops.Back().(*stackEntry)
}

// emit appends the instruction for an operator stack entry to the output,
// checking the arity of calls.
func (p *parser) emit(e *stackEntry) error {
	var in Instr
	switch e.kind {
	case entryUnary:
		in = Instr{Kind: InstrUnary, Un: e.un}
	case entryBinary:
		in = Instr{Kind: InstrBinary, Bin: e.bin}
	case entryCall:
		if !e.fn.CanCall(e.argc) {
			return &ParseError{
				Pos:  e.pos,
				Kind: ErrArityMismatch,
				Text: p.toks[e.pos].Text,
				Func: e.fn.Token,
				Want: e.fn.Arity,
				Got:  e.argc,
			}
		}
		in = Instr{Kind: InstrCall, Fn: e.fn, Argc: e.argc}
	case entryMacro:
		in = Instr{Kind: InstrMacro, Macro: e.macro}
	default:
		panic("yard: emit on operator stack entry of kind " + strconv.Itoa(int(e.kind)))
	}
	p.out = append(p.out, in)
	return nil
}

// fail creates an error of the given kind at token i.
func (p *parser) fail(i int, kind ErrKind) *ParseError {
	return &ParseError{Pos: i, Kind: kind, Text: p.toks[i].Text}
}

// step handles token i.
func (p *parser) step(i int) error {
	tok := &p.toks[i]
	switch tok.Kind {
	case TokenNum:
		if p.state != ExpectExpression {
			return p.fail(i, ErrExpectedOperator)
		}
		p.out = append(p.out, Instr{Kind: InstrNum, Num: tok.Num})
		p.state = ExpectOperator
		return nil
	case TokenIdent:
		return p.ident(i)
	case TokenOpen:
		if p.state != ExpectExpression {
			return p.fail(i, ErrExpectedOperator)
		}
		e := &stackEntry{kind: entryParen, pos: i}
		if top := p.top(); top != nil && top.kind == entryCall && top.pos == i-1 {
			e.call = top
		}
		p.push(e)
		return nil
	case TokenClose:
		return p.close(i)
	case TokenComma:
		return p.comma(i)
	case TokenMacro:
		return p.macro(i)
	case TokenBad:
		return p.fail(i, ErrBadToken)
	default:
		panic("yard: unknown token " + tok.String())
	}
}

// ident handles an identifier at token i, which may be an operator, a
// function or a variable.
func (p *parser) ident(i int) error {
	text := p.toks[i].Text
	if p.state == ExpectOperator {
		op := p.ctx.BinOp(text)
		if op == nil {
			return p.fail(i, ErrExpectedOperator)
		}
		p.binary(i, op)
		return nil
	}
	if op := p.ctx.UnOp(text); op != nil {
		// Unary operators wait on the stack until a binary operator or the
		// end of their group pops them.
		p.push(&stackEntry{kind: entryUnary, pos: i, un: op})
		return nil
	}
	if fn := p.ctx.Func(text); fn != nil {
		if i+1 >= len(p.toks) || p.toks[i+1].Kind != TokenOpen {
			err := p.fail(i, ErrNoLeftParen)
			err.Func = fn.Token
			return err
		}
		p.push(&stackEntry{kind: entryCall, pos: i, fn: fn})
		return nil
	}
	if p.ctx.BinOp(text) != nil {
		return p.fail(i, ErrExpectedExpression)
	}
	p.out = append(p.out, Instr{Kind: InstrVar, Name: text})
	p.state = ExpectOperator
	return nil
}

// binary handles the binary operator op at token i.
func (p *parser) binary(i int, op *BinOp) {
	for {
		top := p.top()
		if top == nil {
			break
		}
		// Unary operators bind tighter than any binary operator.
		if top.kind != entryUnary && (top.kind != entryBinary || !top.bin.yields(op)) {
			break
		}
		// Unary and binary entries always emit successfully.
		p.emit(p.pop())
	}
	p.push(&stackEntry{kind: entryBinary, pos: i, bin: op})
	p.state = ExpectExpression
}

// close handles a close paren at token i.
func (p *parser) close(i int) error {
	if p.state == ExpectExpression {
		// The only way to close a group that has no operand is f().
		top := p.top()
		if i > 0 && p.toks[i-1].Kind == TokenOpen && top != nil && top.kind == entryParen {
			if top.call == nil {
				return p.fail(i, ErrEmptyParens)
			}
			p.pop()
			if err := p.emit(p.pop()); err != nil {
				return err
			}
			p.state = ExpectOperator
			return nil
		}
		if p.parens == 0 {
			return p.fail(i, ErrMismatchedRightParen)
		}
		return p.fail(i-1, ErrOperatorAtEnd)
	}
	for {
		if p.ops.Empty() {
			return p.fail(i, ErrMismatchedRightParen)
		}
		e := p.pop()
		if e.kind == entryParen {
			if e.call != nil {
				c := p.pop()
				c.argc++
				if err := p.emit(c); err != nil {
					return err
				}
			}
			break
		}
		if err := p.emit(e); err != nil {
			return err
		}
	}
	p.state = ExpectOperator
	return nil
}

// comma handles a comma at token i.
func (p *parser) comma(i int) error {
	if p.state != ExpectOperator {
		return p.fail(i, ErrExpectedExpression)
	}
	for {
		top := p.top()
		if top == nil {
			return p.fail(i, ErrCommaOutsideFunc)
		}
		if top.kind == entryParen {
			if top.call == nil {
				return p.fail(i, ErrCommaOutsideFunc)
			}
			top.call.argc++
			break
		}
		if err := p.emit(p.pop()); err != nil {
			return err
		}
	}
	p.state = ExpectExpression
	return nil
}

// macro handles a macro token at i.
func (p *parser) macro(i int) error {
	tok := &p.toks[i]
	r, err := tok.Macro.Parse(tok.Text, p.ctx, p.state)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			// Copy so that macros may return shared error values.
			c := *pe
			c.Pos = i
			if c.Text == "" {
				c.Text = tok.Text
			}
			return &c
		}
		return &ParseError{Pos: i, Kind: ErrMacro, Text: tok.Text, Err: err}
	}
	if r.Macro == nil {
		panic("yard: macro " + strconv.Quote(tok.Text) + " parsed to nil")
	}
	switch r.Mode {
	case Before:
		p.out = append(p.out, Instr{Kind: InstrMacro, Macro: r.Macro})
	case After:
		p.push(&stackEntry{kind: entryMacro, pos: i, macro: r.Macro})
	default:
		panic("yard: invalid macro apply mode " + strconv.Itoa(int(r.Mode)))
	}
	p.state = r.State
	return nil
}

// finish checks the end of input and flushes the operator stack.
func (p *parser) finish() (Program, error) {
	if p.state == ExpectExpression && len(p.toks) > 0 {
		return nil, p.fail(len(p.toks)-1, ErrOperatorAtEnd)
	}
	for !p.ops.Empty() {
		e := p.pop()
		if e.kind == entryParen {
			return nil, p.fail(e.pos, ErrMismatchedLeftParen)
		}
		if err := p.emit(e); err != nil {
			return nil, err
		}
	}
	return p.out, nil
}
