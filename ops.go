package yard

import (
	"math"
	"strconv"
)

// Assoc is the associativity of a binary operator.
type Assoc int8

const (
	// Left groups operators of equal precedence left to right: a-b-c is
	// (a-b)-c.
	Left Assoc = iota
	// Right groups operators of equal precedence right to left: a^b^c is
	// a^(b^c).
	Right
)

func (a Assoc) String() string {
	switch a {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "Assoc(" + strconv.Itoa(int(a)) + ")"
	}
}

// Binary is the behavior of a binary operator.
type Binary interface {
	Apply(l, r float64) float64
}

// BinaryFunc adapts a function to Binary.
type BinaryFunc func(l, r float64) float64

// Apply calls f(l, r).
func (f BinaryFunc) Apply(l, r float64) float64 {
	return f(l, r)
}

// Unary is the behavior of a unary operator.
type Unary interface {
	Apply(x float64) float64
}

// UnaryFunc adapts a function to Unary.
type UnaryFunc func(x float64) float64

// Apply calls f(x).
func (f UnaryFunc) Apply(x float64) float64 {
	return f(x)
}

// BinOp is an infix operator.
type BinOp struct {
	// Token is the operator's text.
	Token string
	// Prec is the precedence. Higher binds tighter.
	Prec int
	// Assoc is the associativity used to break ties in precedence.
	Assoc Assoc
	// Op computes the operator's result.
	Op Binary
}

// yields reports whether op, when already on the operator stack, must be
// emitted before next is pushed.
func (op *BinOp) yields(next *BinOp) bool {
	if op.Prec != next.Prec {
		return op.Prec > next.Prec
	}
	return op.Assoc == Left
}

func (op *BinOp) String() string {
	return op.Token
}

// UnOp is a prefix operator. Unary operators bind tighter than any binary
// operator.
type UnOp struct {
	// Token is the operator's text.
	Token string
	// Op computes the operator's result.
	Op Unary
}

func (op *UnOp) String() string {
	return op.Token
}

// DefaultBinOps returns new copies of the default binary operators:
// + and - at precedence 1, * and / at 2, all left-associative, and
// right-associative ^ at 3.
func DefaultBinOps() []*BinOp {
	return []*BinOp{
		{Token: "+", Prec: 1, Assoc: Left, Op: BinaryFunc(func(l, r float64) float64 { return l + r })},
		{Token: "-", Prec: 1, Assoc: Left, Op: BinaryFunc(func(l, r float64) float64 { return l - r })},
		{Token: "*", Prec: 2, Assoc: Left, Op: BinaryFunc(func(l, r float64) float64 { return l * r })},
		{Token: "/", Prec: 2, Assoc: Left, Op: BinaryFunc(func(l, r float64) float64 { return l / r })},
		{Token: "^", Prec: 3, Assoc: Right, Op: BinaryFunc(math.Pow)},
	}
}

// DefaultUnOps returns new copies of the default unary operators, + and -.
func DefaultUnOps() []*UnOp {
	return []*UnOp{
		{Token: "+", Op: UnaryFunc(func(x float64) float64 { return x })},
		{Token: "-", Op: UnaryFunc(func(x float64) float64 { return -x })},
	}
}
