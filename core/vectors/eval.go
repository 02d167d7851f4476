package vectors

import (
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"

	safemath "novamath/core/math"
)

// ErrBadInput reports an unknown type or operation, or an operand that does
// not parse as the requested type. It never wraps safemath.ErrArithmetic.
var ErrBadInput = errors.New("bad input")

// Types lists the accepted type names.
var Types = []string{
	"u8", "u16", "u32", "u64", "u128", "usize",
	"i8", "i16", "i32", "i64", "i128", "isize",
}

// Step is one operation of a chain: apply Op with Operand as the right-hand side.
type Step struct {
	Op      safemath.Op
	Operand string
}

// Eval applies a single operation to two decimal operands of type typ.
func Eval(typ string, op safemath.Op, a, b string) (string, error) {
	return EvalChain(typ, a, []Step{{Op: op, Operand: b}})
}

// EvalChain starts from first and applies steps left to right. It stops at the
// first failure and returns that error unchanged.
func EvalChain(typ, first string, steps []Step) (string, error) {
	switch typ {
	case "u8":
		return chain(parseNative[uint8], first, steps)
	case "u16":
		return chain(parseNative[uint16], first, steps)
	case "u32":
		return chain(parseNative[uint32], first, steps)
	case "u64":
		return chain(parseNative[uint64], first, steps)
	case "usize":
		return chain(parseNative[uint], first, steps)
	case "i8":
		return chain(parseNative[int8], first, steps)
	case "i16":
		return chain(parseNative[int16], first, steps)
	case "i32":
		return chain(parseNative[int32], first, steps)
	case "i64":
		return chain(parseNative[int64], first, steps)
	case "isize":
		return chain(parseNative[int], first, steps)
	case "u128":
		return chain(safemath.ParseUint128, first, steps)
	case "i128":
		return chain(safemath.ParseInt128, first, steps)
	default:
		return "", fmt.Errorf("%w: unknown type %q", ErrBadInput, typ)
	}
}

// ParseOp maps an operation name to its safemath.Op.
func ParseOp(s string) (safemath.Op, error) {
	for _, op := range safemath.Ops {
		if string(op) == s {
			return op, nil
		}
	}
	return "", fmt.Errorf("%w: unknown op %q", ErrBadInput, s)
}

type value[T any] interface {
	safemath.SafeMath[T]
	String() string
}

func chain[T value[T]](parse func(string) (T, error), first string, steps []Step) (string, error) {
	acc, err := parse(first)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadInput, err)
	}
	for _, step := range steps {
		acc, err = apply(step, acc, parse)
		if err != nil {
			return "", err
		}
	}
	return acc.String(), nil
}

func apply[T value[T]](step Step, x T, parse func(string) (T, error)) (T, error) {
	switch step.Op {
	case safemath.OpShl, safemath.OpShr:
		n, err := strconv.ParseUint(step.Operand, 10, 32)
		if err != nil {
			return x, fmt.Errorf("%w: shift amount: %v", ErrBadInput, err)
		}
		if step.Op == safemath.OpShl {
			return x.SafeShl(safemath.Offset(n))
		}
		return x.SafeShr(safemath.Offset(n))
	}

	y, err := parse(step.Operand)
	if err != nil {
		return x, fmt.Errorf("%w: %v", ErrBadInput, err)
	}
	switch step.Op {
	case safemath.OpAdd:
		return x.SafeAdd(y)
	case safemath.OpSub:
		return x.SafeSub(y)
	case safemath.OpMul:
		return x.SafeMul(y)
	case safemath.OpDiv:
		return x.SafeDiv(y)
	case safemath.OpRem:
		return x.SafeRem(y)
	default:
		return x, fmt.Errorf("%w: unknown op %q", ErrBadInput, step.Op)
	}
}

func parseNative[T constraints.Integer](s string) (safemath.Num[T], error) {
	bitSize := int(safemath.Bits[T]())
	if safemath.IsSigned[T]() {
		v, err := strconv.ParseInt(s, 10, bitSize)
		return safemath.N(T(v)), err
	}
	v, err := strconv.ParseUint(s, 10, bitSize)
	return safemath.N(T(v)), err
}
