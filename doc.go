// Package yard compiles arithmetic expressions into reverse-Polish programs
// and evaluates them with a float64 stack machine.
//
// The language is not fixed. A Ctx lists the binary operators, unary
// operators, functions and macros that make up a dialect, and each stage of
// the pipeline consults it:
//
//	tokens, err := yard.Tokenize("max(a, 2) ^ 2", ctx)
//	prog, err := yard.Parse(tokens, ctx)
//	v, err := yard.Eval(prog, yard.Vars{"a": 3}, ctx)
//
// Parsing uses the shunting-yard algorithm, so a Program is a flat list of
// instructions in which every operator follows its operands. Programs hold
// resolved references to the registry entries they use and can be evaluated
// any number of times with different variables; Compile wraps that pattern.
//
// Macros extend the parser. DefaultCtxWithMacros includes Assign, which turns
// "a = 1 + 2" into an assignment to a that also yields 3.
package yard
