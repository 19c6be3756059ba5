package yard

import "fmt"

// Ctx is a registry of the operators, functions and macros which make up a
// dialect of the expression language. Lookups take the first matching entry
// in slice order.
//
// A Ctx must not be modified while it is in use by Tokenize, Parse or Eval.
// Programs refer to the entries of the Ctx that parsed them, so those entries
// should not be modified afterward either. It is safe to use a Ctx
// concurrently as long as nothing modifies it.
type Ctx struct {
	BinOps []*BinOp
	UnOps  []*UnOp
	Funcs  []*Func
	Macros []Macro
}

// NewCtx creates a registry with the given options applied in order. With no
// options, the registry is empty, so it recognizes only numbers, variables
// and parentheses.
func NewCtx(opts ...CtxOption) *Ctx {
	ctx := new(Ctx)
	for _, opt := range opts {
		opt.ctxOption(ctx)
	}
	return ctx
}

// DefaultCtx creates a registry with the default operators and functions and
// no macros.
func DefaultCtx() *Ctx {
	return NewCtx(WithDefaults())
}

// DefaultCtxWithMacros creates a registry like DefaultCtx with the Assign
// macro added.
func DefaultCtxWithMacros() *Ctx {
	return NewCtx(WithDefaults(), WithMacros(Assign{}))
}

// Clone returns a copy of ctx whose lists can be extended or reordered without
// affecting ctx. The entries themselves are shared.
func (ctx *Ctx) Clone() *Ctx {
	return &Ctx{
		BinOps: append([]*BinOp(nil), ctx.BinOps...),
		UnOps:  append([]*UnOp(nil), ctx.UnOps...),
		Funcs:  append([]*Func(nil), ctx.Funcs...),
		Macros: append([]Macro(nil), ctx.Macros...),
	}
}

// BinOp returns the first binary operator with the given token, or nil.
func (ctx *Ctx) BinOp(token string) *BinOp {
	for _, op := range ctx.BinOps {
		if op.Token == token {
			return op
		}
	}
	return nil
}

// UnOp returns the first unary operator with the given token, or nil.
func (ctx *Ctx) UnOp(token string) *UnOp {
	for _, op := range ctx.UnOps {
		if op.Token == token {
			return op
		}
	}
	return nil
}

// Func returns the first function with the given name, or nil.
func (ctx *Ctx) Func(token string) *Func {
	for _, f := range ctx.Funcs {
		if f.Token == token {
			return f
		}
	}
	return nil
}

// Alias registers token as another spelling of every binary operator, unary
// operator and function spelled of. The alias is appended, so existing
// entries with the same token take priority. It is an error if nothing is
// spelled of.
func (ctx *Ctx) Alias(token, of string) error {
	found := false
	if op := ctx.BinOp(of); op != nil {
		a := *op
		a.Token = token
		ctx.BinOps = append(ctx.BinOps, &a)
		found = true
	}
	if op := ctx.UnOp(of); op != nil {
		a := *op
		a.Token = token
		ctx.UnOps = append(ctx.UnOps, &a)
		found = true
	}
	if f := ctx.Func(of); f != nil {
		a := *f
		a.Token = token
		ctx.Funcs = append(ctx.Funcs, &a)
		found = true
	}
	if !found {
		return fmt.Errorf("cannot alias %q: no operator or function %q", token, of)
	}
	return nil
}
