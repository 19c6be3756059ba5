package yard

// CtxOption is an option for NewCtx.
type CtxOption interface {
	ctxOption(*Ctx)
}

type (
	binopsopt []*BinOp
	unopsopt  []*UnOp
	funcsopt  []*Func
	macrosopt []Macro
	defopt    struct{}
	mathopt   uint
)

// WithBinOps appends binary operators to the registry.
func WithBinOps(ops ...*BinOp) CtxOption {
	return binopsopt(ops)
}

func (o binopsopt) ctxOption(ctx *Ctx) {
	ctx.BinOps = append(ctx.BinOps, o...)
}

// WithUnOps appends unary operators to the registry.
func WithUnOps(ops ...*UnOp) CtxOption {
	return unopsopt(ops)
}

func (o unopsopt) ctxOption(ctx *Ctx) {
	ctx.UnOps = append(ctx.UnOps, o...)
}

// WithFuncs appends functions to the registry.
func WithFuncs(fns ...*Func) CtxOption {
	return funcsopt(fns)
}

func (o funcsopt) ctxOption(ctx *Ctx) {
	ctx.Funcs = append(ctx.Funcs, o...)
}

// WithMacros appends macros to the registry.
func WithMacros(ms ...Macro) CtxOption {
	return macrosopt(ms)
}

func (o macrosopt) ctxOption(ctx *Ctx) {
	ctx.Macros = append(ctx.Macros, o...)
}

// WithDefaults appends the default binary operators, unary operators and
// functions. Each use creates new entries.
func WithDefaults() CtxOption {
	return defopt{}
}

func (defopt) ctxOption(ctx *Ctx) {
	ctx.BinOps = append(ctx.BinOps, DefaultBinOps()...)
	ctx.UnOps = append(ctx.UnOps, DefaultUnOps()...)
	ctx.Funcs = append(ctx.Funcs, DefaultFuncs()...)
}

// WithMathFuncs appends the functions from MathFuncs computed to the given
// precision in bits.
func WithMathFuncs(prec uint) CtxOption {
	return mathopt(prec)
}

func (o mathopt) ctxOption(ctx *Ctx) {
	ctx.Funcs = append(ctx.Funcs, MathFuncs(uint(o))...)
}
