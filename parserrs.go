package yard

import "strconv"

// ErrKind classifies a ParseError.
type ErrKind int8

const (
	errNone ErrKind = iota
	// ErrNoLeftParen is a function name not followed by an open paren.
	ErrNoLeftParen
	// ErrBadToken is a run of unrecognized characters. Text holds them.
	ErrBadToken
	// ErrOperatorAtEnd is an expression or group that ends where an operand
	// is required, as in "1 +" or "(1 +)".
	ErrOperatorAtEnd
	// ErrMismatchedLeftParen is an open paren that is never closed.
	ErrMismatchedLeftParen
	// ErrMismatchedRightParen is a close paren with no open paren.
	ErrMismatchedRightParen
	// ErrArityMismatch is a function called with the wrong number of
	// arguments. Func, Want and Got describe the call.
	ErrArityMismatch
	// ErrExpectedOperator is an operand where an operator is required, as in
	// "1 2".
	ErrExpectedOperator
	// ErrExpectedExpression is an operator where an operand is required, as
	// in "1 * * 2", or a macro rejecting the parser's state.
	ErrExpectedExpression
	// ErrCommaOutsideFunc is a comma which is not directly inside a
	// function's argument list.
	ErrCommaOutsideFunc
	// ErrEmptyParens is "()" that is not a function call.
	ErrEmptyParens
	// ErrMacro is a macro failing with an error that is not a ParseError.
	// Err holds it.
	ErrMacro
)

func (k ErrKind) String() string {
	switch k {
	case errNone:
		return "none"
	case ErrNoLeftParen:
		return "no left paren after function"
	case ErrBadToken:
		return "bad token"
	case ErrOperatorAtEnd:
		return "operator at end"
	case ErrMismatchedLeftParen:
		return "mismatched left paren"
	case ErrMismatchedRightParen:
		return "mismatched right paren"
	case ErrArityMismatch:
		return "arity mismatch"
	case ErrExpectedOperator:
		return "expected operator"
	case ErrExpectedExpression:
		return "expected expression"
	case ErrCommaOutsideFunc:
		return "comma outside function"
	case ErrEmptyParens:
		return "empty parens"
	case ErrMacro:
		return "macro error"
	default:
		return "ErrKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ParseError is an error parsing a token sequence. It implements InputError.
type ParseError struct {
	// Pos is the index in the token sequence of the token that caused the
	// error.
	Pos int
	// Kind is the class of error.
	Kind ErrKind
	// Text is the offending token's text.
	Text string
	// Func is the function name for ErrArityMismatch and ErrNoLeftParen.
	Func string
	// Want and Got are the expected and actual argument counts for
	// ErrArityMismatch.
	Want, Got int
	// Err is the underlying error for ErrMacro.
	Err error
}

func (err *ParseError) Error() string {
	var msg string
	switch err.Kind {
	case ErrNoLeftParen:
		msg = "expected ( after function " + strconv.Quote(err.Func)
	case ErrBadToken:
		msg = "bad token " + strconv.Quote(err.Text)
	case ErrOperatorAtEnd:
		msg = "expression ends with operator"
	case ErrMismatchedLeftParen:
		msg = "open paren with no close paren"
	case ErrMismatchedRightParen:
		msg = "close paren with no open paren"
	case ErrArityMismatch:
		msg = "cannot call " + err.Func + " with " + strconv.Itoa(err.Got) + " arguments (want " + strconv.Itoa(err.Want) + ")"
	case ErrExpectedOperator:
		msg = "expected operator, found " + strconv.Quote(err.Text)
	case ErrExpectedExpression:
		msg = "expected expression, found " + strconv.Quote(err.Text)
	case ErrCommaOutsideFunc:
		msg = "comma outside function arguments"
	case ErrEmptyParens:
		msg = "empty parens outside function call"
	case ErrMacro:
		msg = "macro " + strconv.Quote(err.Text) + ": " + err.Err.Error()
	default:
		msg = err.Kind.String()
	}
	return errpos(err.Pos, msg)
}

// Position returns the index of the offending token.
func (err *ParseError) Position() int {
	return err.Pos
}

// Is reports whether target is a *ParseError of the same kind, so that
// errors.Is(err, &ParseError{Kind: ErrOperatorAtEnd}) matches regardless of
// position.
func (err *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == err.Kind
}

func (err *ParseError) Unwrap() error {
	return err.Err
}

// EncodingError is an error indicating non-ASCII input. It implements
// InputError, with the position given as a byte offset.
type EncodingError struct {
	// Off is the byte offset of the first non-ASCII byte.
	Off int
	// Byte is that byte.
	Byte byte
}

func (err *EncodingError) Error() string {
	return errpos(err.Off, "non-ASCII byte 0x"+strconv.FormatUint(uint64(err.Byte), 16)+" in input")
}

// Position returns the byte offset of the error.
func (err *EncodingError) Position() int {
	return err.Off
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Position returns the position of the error. For a ParseError, it is an
	// index into the token sequence; for an EncodingError, a byte offset.
	Position() int
}

var (
	_ InputError = (*ParseError)(nil)
	_ InputError = (*EncodingError)(nil)
)
