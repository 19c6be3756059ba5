package yard

// ParseState is the parser's expectation for the next token.
type ParseState int8

const (
	// ExpectExpression means the next token must begin an operand: a number,
	// variable, function call, unary operator or open paren.
	ExpectExpression ParseState = iota
	// ExpectOperator means an operand has just been completed, so the next
	// token must be a binary operator, close paren or comma.
	ExpectOperator
)

func (s ParseState) String() string {
	switch s {
	case ExpectExpression:
		return "expression"
	case ExpectOperator:
		return "operator"
	default:
		return "ParseState(?)"
	}
}

// ApplyMode decides where the parser places a parsed macro.
type ApplyMode int8

const (
	// Before places the macro in the program immediately, like an operand.
	// ".m 120" becomes [.m 120].
	Before ApplyMode = iota
	// After places the macro on the operator stack, so that everything
	// parsed after it up to the end of the enclosing group is evaluated
	// first. ".m 120" becomes [120 .m].
	After
)

// Macro is a parsing extension. Macros are tried at each position of the
// input before any other token rule.
type Macro interface {
	// Match reports whether the start of text is an occurrence of the macro
	// and if so, how many bytes it spans. A zero-length match is allowed.
	Match(text string, ctx *Ctx) (n int, ok bool)
	// Parse parses an occurrence of the macro. text is exactly the text that
	// Match matched. Errors should be *ParseError values; the parser fills
	// in the position.
	Parse(text string, ctx *Ctx, state ParseState) (MacroParse, error)
}

// MacroParse is the result of parsing a macro.
type MacroParse struct {
	// Macro is the parsed occurrence. It must not be nil.
	Macro ParsedMacro
	// Mode determines where the parser places Macro.
	Mode ApplyMode
	// State is the parser state following the macro.
	State ParseState
}

// ParsedMacro is a parsed occurrence of a macro, as an instruction in a
// program.
type ParsedMacro interface {
	// Eval executes the macro. It may inspect and modify the work stack and
	// the variables.
	Eval(st *Stack, vars Vars, ctx *Ctx) error
}
