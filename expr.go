package yard

import "slices"

// Expr is a compiled expression, which can be evaluated any number of times
// with different variables.
type Expr struct {
	ctx    *Ctx
	tokens []Token
	prog   Program
	// names is the sorted list of variables the program reads.
	names []string
}

// Compile tokenizes and parses src in the dialect of ctx. The returned Expr
// holds ctx for evaluating macros.
func Compile(src string, ctx *Ctx) (*Expr, error) {
	toks, err := Tokenize(src, ctx)
	if err != nil {
		return nil, err
	}
	prog, err := Parse(toks, ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var names []string
	for _, in := range prog {
		if in.Kind == InstrVar && !seen[in.Name] {
			seen[in.Name] = true
			names = append(names, in.Name)
		}
	}
	slices.Sort(names)
	ex := Expr{
		ctx:    ctx,
		tokens: toks,
		prog:   prog,
		names:  names,
	}
	return &ex, nil
}

// Eval evaluates the expression with the given variables.
func (e *Expr) Eval(vars Vars) (float64, error) {
	return Eval(e.prog, vars, e.ctx)
}

// Vars returns the sorted names of the variables that the expression reads.
// Variables which it only assigns are not included.
func (e *Expr) Vars() []string {
	return append(([]string)(nil), e.names...)
}

// Tokens returns the tokens of the expression.
func (e *Expr) Tokens() []Token {
	return append(([]Token)(nil), e.tokens...)
}

// Program returns the compiled program.
func (e *Expr) Program() Program {
	return append((Program)(nil), e.prog...)
}

// String formats the compiled program in reverse-Polish notation.
func (e *Expr) String() string {
	return e.prog.String()
}
