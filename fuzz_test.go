//go:build go1.18
// +build go1.18

package yard_test

import (
	"testing"

	"github.com/zephyrtronium/yard"
)

func FuzzParse(f *testing.F) {
	f.Add("x")
	f.Add("max(1, sum())")
	f.Add("a = -(1 + 2) ^ 3")
	f.Add("1 × 2")
	ctx := yard.DefaultCtxWithMacros()
	f.Fuzz(func(t *testing.T, s string) {
		toks, err := yard.Tokenize(s, ctx)
		if err != nil {
			return
		}
		prog, err := yard.Parse(toks, ctx)
		if err != nil {
			if _, ok := err.(yard.InputError); !ok {
				t.Errorf("%q: error %v is not an InputError", s, err)
			}
			return
		}
		// Programs from Parse are well-formed apart from variables.
		vars := make(yard.Vars)
		for _, in := range prog {
			if in.Kind == yard.InstrVar {
				vars[in.Name] = 1
			}
		}
		if len(prog) == 0 {
			return
		}
		if _, err := yard.Eval(prog, vars, ctx); err != nil {
			t.Errorf("%q parsed to %v but failed to evaluate: %v", s, prog, err)
		}
	})
}

func FuzzEval(f *testing.F) {
	f.Add("x")
	f.Add("y")
	f.Add("1×2")
	f.Fuzz(func(t *testing.T, s string) {
		yard.EvalWithVars(s, yard.Vars{"x": 0})
	})
}
