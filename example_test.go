package yard_test

import (
	"fmt"
	"math"
	"os"

	"github.com/zephyrtronium/yard"
)

func ExampleEvalString() {
	r, err := yard.EvalString("2 ^ 3 ^ 2 - max(10, 12) * 2")
	if err != nil {
		panic(err)
	}
	fmt.Println(r)
	// Output: 488
}

func ExampleCompile() {
	e, err := yard.Compile("x ^ 2 + y", yard.DefaultCtx())
	if err != nil {
		panic(err)
	}
	fmt.Println(e)
	fmt.Println(e.Vars())
	for x := 1.0; x <= 3; x++ {
		r, _ := e.Eval(yard.Vars{"x": x, "y": 0.5})
		fmt.Println(r)
	}
	// Output:
	// x 2 ^ y +
	// [x y]
	// 1.5
	// 4.5
	// 9.5
}

func ExampleDefaultCtxWithMacros() {
	ctx := yard.DefaultCtxWithMacros()
	vars := make(yard.Vars)
	for _, src := range []string{"a = 10", "b = a + 1", "a * b"} {
		r, err := yard.EvalWithCtx(src, vars, ctx)
		if err != nil {
			panic(err)
		}
		fmt.Println(r)
	}
	// Output:
	// 10
	// 11
	// 110
}

func ExampleNewCtx() {
	ctx := yard.NewCtx(
		yard.WithDefaults(),
		yard.WithBinOps(&yard.BinOp{
			Token: "hyp",
			Prec:  2,
			Assoc: yard.Left,
			Op:    yard.BinaryFunc(math.Hypot),
		}),
		yard.WithFuncs(&yard.Func{
			Token: "avg",
			Arity: yard.Variadic,
			Op: yard.CallFunc(func(args []float64) float64 {
				var s float64
				for _, x := range args {
					s += x
				}
				return s / float64(len(args))
			}),
		}),
	)
	r, err := yard.EvalWithCtx("avg(1, 2, 3 hyp 4)", nil, ctx)
	if err != nil {
		panic(err)
	}
	fmt.Println(r)
	// Output: 2.6666666666666665
}

func ExampleReport() {
	ctx := yard.DefaultCtx()
	toks, _ := yard.Tokenize("sub(1) + 2", ctx)
	_, err := yard.Parse(toks, ctx)
	yard.Report(os.Stdout, toks, err, false)
	// Output:
	// sub ( 1 ) + 2
	// ^^^
	// 0: cannot call sub with 1 arguments (want 2)
}
