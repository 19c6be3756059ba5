package yard

import (
	"fmt"
	"strconv"
	"strings"
)

// Instr is one step of a program.
type Instr struct {
	// Kind is the kind of instruction.
	Kind InstrKind
	// Num is the value pushed by InstrNum.
	Num float64
	// Name is the variable pushed by InstrVar.
	Name string
	// Un is the operator applied by InstrUnary.
	Un *UnOp
	// Bin is the operator applied by InstrBinary.
	Bin *BinOp
	// Fn is the function called by InstrCall, with Argc arguments.
	Fn   *Func
	Argc int
	// Macro is the macro executed by InstrMacro.
	Macro ParsedMacro
}

// InstrKind is a kind of instruction.
type InstrKind int8

const (
	instrNone InstrKind = iota
	// InstrNum pushes Num.
	InstrNum
	// InstrVar pushes the value of the variable Name.
	InstrVar
	// InstrUnary pops one value and pushes Un applied to it.
	InstrUnary
	// InstrBinary pops the right then the left operand and pushes Bin
	// applied to them.
	InstrBinary
	// InstrCall replaces the top Argc values with Fn called on them.
	InstrCall
	// InstrMacro executes Macro.
	InstrMacro
)

func (k InstrKind) String() string {
	switch k {
	case instrNone:
		return "None"
	case InstrNum:
		return "Num"
	case InstrVar:
		return "Var"
	case InstrUnary:
		return "Unary"
	case InstrBinary:
		return "Binary"
	case InstrCall:
		return "Call"
	case InstrMacro:
		return "Macro"
	default:
		return "InstrKind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (in Instr) String() string {
	switch in.Kind {
	case InstrNum:
		return strconv.FormatFloat(in.Num, 'g', -1, 64)
	case InstrVar:
		return in.Name
	case InstrUnary:
		// Distinguish unary operators from binary ones with the same token.
		return in.Un.Token + "u"
	case InstrBinary:
		return in.Bin.Token
	case InstrCall:
		return in.Fn.Token + "/" + strconv.Itoa(in.Argc)
	case InstrMacro:
		if s, ok := in.Macro.(fmt.Stringer); ok {
			return s.String()
		}
		return fmt.Sprintf("%T", in.Macro)
	default:
		return "?" + in.Kind.String()
	}
}

// Program is a sequence of instructions in reverse-Polish order.
type Program []Instr

// String formats the program as space-separated instructions. Unary operators
// have a "u" suffix, and calls show their argument counts, so "-max(1, 2)"
// formats as "1 2 max/2 -u".
func (p Program) String() string {
	var b strings.Builder
	for i, in := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(in.String())
	}
	return b.String()
}
