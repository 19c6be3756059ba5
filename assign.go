package yard

// Assign is a macro for variable assignment, "name = expr". The assignment
// evaluates to the value of expr, so "a = b = 2" sets both a and b to 2 and
// "1 + (a = 2)" is 3.
//
// Assign must come before anything else in ctx.Macros that could match an
// identifier.
type Assign struct{}

// Match matches an identifier followed by optional whitespace and "=". The
// match includes the "=".
func (Assign) Match(text string, ctx *Ctx) (int, bool) {
	n := MatchIdent(text)
	if n == 0 {
		return 0, false
	}
	n += SkipSpace(text[n:])
	k := MatchString(text[n:], "=")
	if k == 0 {
		return 0, false
	}
	return n + k, true
}

// Parse parses an assignment. An assignment may appear only where an
// expression may begin.
func (Assign) Parse(text string, ctx *Ctx, state ParseState) (MacroParse, error) {
	if state != ExpectExpression {
		return MacroParse{}, &ParseError{Kind: ErrExpectedExpression, Text: text}
	}
	n := MatchIdent(text)
	r := MacroParse{
		Macro: assignment{name: text[:n]},
		Mode:  After,
		State: ExpectExpression,
	}
	return r, nil
}

// assignment is a parsed assignment.
type assignment struct {
	name string
}

// Eval sets the variable to the top of the stack without popping it.
func (a assignment) Eval(st *Stack, vars Vars, ctx *Ctx) error {
	x, ok := st.Top()
	if !ok {
		return &StackError{Instr: a.String()}
	}
	vars[a.name] = x
	return nil
}

func (a assignment) String() string {
	return "=" + a.name
}
