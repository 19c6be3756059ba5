package yard

import "math"

// Variadic is the Arity of a function that accepts any number of arguments,
// including none.
const Variadic = -1

// Caller is the behavior of a function.
type Caller interface {
	// Call computes the function's result. len(args) is always acceptable to
	// the function's arity. Call must not retain or modify args.
	Call(args []float64) float64
}

// CallFunc adapts a function to Caller.
type CallFunc func(args []float64) float64

// Call calls f(args).
func (f CallFunc) Call(args []float64) float64 {
	return f(args)
}

// Func is a named function. In expressions, a function name must always be
// followed by a parenthesized argument list, possibly empty.
type Func struct {
	// Token is the function's name.
	Token string
	// Arity is the exact number of arguments the function takes, or Variadic.
	Arity int
	// Op computes the function's result.
	Op Caller
}

// CanCall returns whether the function accepts n arguments.
func (f *Func) CanCall(n int) bool {
	return f.Arity == Variadic || f.Arity == n
}

func (f *Func) String() string {
	return f.Token
}

// DefaultFuncs returns new copies of the default functions: max and sub of
// two arguments and variadic sum and prod.
func DefaultFuncs() []*Func {
	return []*Func{
		{Token: "max", Arity: 2, Op: CallFunc(func(args []float64) float64 {
			return math.Max(args[0], args[1])
		})},
		{Token: "sum", Arity: Variadic, Op: CallFunc(func(args []float64) float64 {
			var r float64
			for _, x := range args {
				r += x
			}
			return r
		})},
		{Token: "prod", Arity: Variadic, Op: CallFunc(func(args []float64) float64 {
			r := 1.0
			for _, x := range args {
				r *= x
			}
			return r
		})},
		{Token: "sub", Arity: 2, Op: CallFunc(func(args []float64) float64 {
			return args[0] - args[1]
		})},
	}
}
