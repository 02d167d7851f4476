package math

import "errors"

// ErrArithmetic is the single failure kind reported by every checked
// operation. Overflow, underflow, division by zero and out-of-range shifts
// are not distinguished.
var ErrArithmetic = errors.New("arithmetic error")

// Op names the operation that failed.
type Op string

const (
	OpAdd Op = "add"
	OpSub Op = "sub"
	OpMul Op = "mul"
	OpDiv Op = "div"
	OpRem Op = "rem"
	OpShl Op = "shl"
	OpShr Op = "shr"
)

// Ops lists every checked operation in declaration order.
var Ops = []Op{OpAdd, OpSub, OpMul, OpDiv, OpRem, OpShl, OpShr}

// Error is returned by the Safe* operations. It matches ErrArithmetic under
// errors.Is. Op and Site are for diagnostics only.
type Error struct {
	Op   Op
	Site CallSite
}

func (e *Error) Error() string {
	return ErrArithmetic.Error() + ": " + string(e.Op)
}

// Is reports whether target is ErrArithmetic.
func (e *Error) Is(target error) bool {
	return target == ErrArithmetic
}
