package yard

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// MathFuncs returns functions computed at prec bits of precision and rounded
// to float64: exp, ln, log (base 10), sqrt, pow of two arguments, and the
// constants pi() and e(). Arguments outside a function's domain, such as a
// negative logarithm, produce NaN.
func MathFuncs(prec uint) []*Func {
	if prec == 0 {
		prec = 64
	}
	return []*Func{
		{Token: "exp", Arity: 1, Op: monadic(prec, bigfloat.Exp)},
		{Token: "ln", Arity: 1, Op: monadic(prec, bigfloat.Log)},
		{Token: "log", Arity: 1, Op: monadic(prec, func(out, in *big.Float) *big.Float {
			bigfloat.Log(out, in)
			ten := new(big.Float).SetPrec(out.Prec()).SetFloat64(10)
			bigfloat.Log(ten, ten)
			return out.Quo(out, ten)
		})},
		{Token: "sqrt", Arity: 1, Op: monadic(prec, (*big.Float).Sqrt)},
		{Token: "pow", Arity: 2, Op: dyadic(prec, bigfloat.Pow)},
		{Token: "pi", Arity: 0, Op: niladic(prec, bigfloat.Pi)},
		{Token: "e", Arity: 0, Op: niladic(prec, func(out *big.Float) *big.Float {
			var one big.Float
			one.SetFloat64(1)
			return bigfloat.Exp(out, &one)
		})},
	}
}

// bigArg converts an argument to a big.Float. Infinities and NaN have no
// useful big.Float representation, so the second result is false for them.
func bigArg(prec uint, x float64) (*big.Float, bool) {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return nil, false
	}
	return new(big.Float).SetPrec(prec).SetFloat64(x), true
}

// guard converts a panic from f into a NaN result. big.Float and bigfloat
// report domain errors such as the square root of a negative number by
// panicking, with big.ErrNaN or with a message.
func guard(f func() float64) (r float64) {
	defer func() {
		if p := recover(); p != nil {
			r = math.NaN()
		}
	}()
	return f()
}

func monadic(prec uint, f func(out, in *big.Float) *big.Float) CallFunc {
	return func(args []float64) float64 {
		in, ok := bigArg(prec, args[0])
		if !ok {
			return math.NaN()
		}
		return guard(func() float64 {
			out := new(big.Float).SetPrec(prec)
			f(out, in)
			r, _ := out.Float64()
			return r
		})
	}
}

func dyadic(prec uint, f func(z, x, y *big.Float) *big.Float) CallFunc {
	return func(args []float64) float64 {
		x, ok := bigArg(prec, args[0])
		if !ok {
			return math.NaN()
		}
		y, ok := bigArg(prec, args[1])
		if !ok {
			return math.NaN()
		}
		if x.Sign() < 0 {
			return math.NaN()
		}
		return guard(func() float64 {
			out := new(big.Float).SetPrec(prec)
			f(out, x, y)
			r, _ := out.Float64()
			return r
		})
	}
}

func niladic(prec uint, f func(out *big.Float) *big.Float) CallFunc {
	return func([]float64) float64 {
		out := new(big.Float).SetPrec(prec)
		f(out)
		r, _ := out.Float64()
		return r
	}
}
