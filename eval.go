package yard

import (
	"strconv"
)

// Vars is a variable environment. Keys are variable names.
type Vars map[string]float64

// Stack is the work stack of an evaluation. Macros receive it to inspect and
// modify intermediate values.
type Stack struct {
	vals []float64
}

// Push pushes x.
func (st *Stack) Push(x float64) {
	st.vals = append(st.vals, x)
}

// Pop removes and returns the top value. ok is false if the stack is empty.
func (st *Stack) Pop() (x float64, ok bool) {
	if len(st.vals) == 0 {
		return 0, false
	}
	x = st.vals[len(st.vals)-1]
	st.vals = st.vals[:len(st.vals)-1]
	return x, true
}

// Top returns the top value without removing it. ok is false if the stack is
// empty.
func (st *Stack) Top() (x float64, ok bool) {
	if len(st.vals) == 0 {
		return 0, false
	}
	return st.vals[len(st.vals)-1], true
}

// Len returns the number of values on the stack.
func (st *Stack) Len() int {
	return len(st.vals)
}

// Values returns the values on the stack, bottom first. The slice aliases the
// stack's storage until the next Push or Pop.
func (st *Stack) Values() []float64 {
	return st.vals
}

// Eval executes prog and returns its result. Variables are read from vars,
// which macros may also modify; a nil vars is treated as empty, but then
// macros which assign variables panic. ctx is passed to macros.
func Eval(prog Program, vars Vars, ctx *Ctx) (float64, error) {
	var st Stack
	st.vals = make([]float64, 0, len(prog))
	for i := range prog {
		in := &prog[i]
		switch in.Kind {
		case InstrNum:
			st.Push(in.Num)
		case InstrVar:
			v, ok := vars[in.Name]
			if !ok {
				return 0, &NameError{Name: in.Name}
			}
			st.Push(v)
		case InstrUnary:
			x, ok := st.Pop()
			if !ok {
				return 0, &StackError{Instr: in.String()}
			}
			st.Push(in.Un.Op.Apply(x))
		case InstrBinary:
			if st.Len() < 2 {
				return 0, &StackError{Instr: in.String()}
			}
			r, _ := st.Pop()
			l, _ := st.Pop()
			st.Push(in.Bin.Op.Apply(l, r))
		case InstrCall:
			if !in.Fn.CanCall(in.Argc) {
				return 0, &ArityError{Func: in.Fn.Token, Want: in.Fn.Arity, Got: in.Argc}
			}
			if in.Argc < 0 || in.Argc > st.Len() {
				return 0, &StackError{Instr: in.String()}
			}
			k := st.Len() - in.Argc
			// Full slice expression so that a function appending to its
			// arguments cannot overwrite the stack.
			args := st.vals[k:st.Len():st.Len()]
			r := in.Fn.Op.Call(args)
			st.vals = append(st.vals[:k], r)
		case InstrMacro:
			if err := in.Macro.Eval(&st, vars, ctx); err != nil {
				return 0, err
			}
		default:
			panic("yard: invalid instruction " + in.String())
		}
	}
	if st.Len() != 1 {
		return 0, &IllFormedError{Len: st.Len()}
	}
	return st.vals[0], nil
}

// EvalString evaluates src using the default operators and functions and an
// empty variable environment.
func EvalString(src string) (float64, error) {
	return EvalWithCtx(src, make(Vars), DefaultCtx())
}

// EvalWithVars evaluates src using the default operators and functions and
// the given variables.
func EvalWithVars(src string, vars Vars) (float64, error) {
	return EvalWithCtx(src, vars, DefaultCtx())
}

// EvalWithCtx tokenizes, parses and evaluates src in the dialect of ctx.
func EvalWithCtx(src string, vars Vars, ctx *Ctx) (float64, error) {
	prog, err := ParseString(src, ctx)
	if err != nil {
		return 0, err
	}
	return Eval(prog, vars, ctx)
}

// NameError is an error from a lookup for a variable that is missing from the
// variable environment.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}

// StackError is an error from an instruction needing more values than the
// work stack holds. Programs produced by Parse never cause it.
type StackError struct {
	// Instr is the formatted instruction.
	Instr string
}

func (err *StackError) Error() string {
	return "empty stack at " + err.Instr
}

// ArityError is an error from a call instruction with an argument count its
// function does not accept. Parse reports the same condition as a ParseError
// with kind ErrArityMismatch; ArityError arises only from programs built or
// modified by other means.
type ArityError struct {
	Func      string
	Want, Got int
}

func (err *ArityError) Error() string {
	return "cannot call " + err.Func + " with " + strconv.Itoa(err.Got) + " arguments (want " + strconv.Itoa(err.Want) + ")"
}

// IllFormedError is an error from a program leaving other than exactly one
// value on the work stack, including an empty program.
type IllFormedError struct {
	// Len is the number of values left.
	Len int
}

func (err *IllFormedError) Error() string {
	return "ill-formed program leaves " + strconv.Itoa(err.Len) + " values"
}
