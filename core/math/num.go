package math

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// SafeMath is the checked arithmetic capability, one method per operation.
// Num, Uint128 and Int128 implement it.
type SafeMath[T any] interface {
	SafeAdd(rhs T) (T, error)
	SafeSub(rhs T) (T, error)
	SafeMul(rhs T) (T, error)
	SafeDiv(rhs T) (T, error)
	SafeRem(rhs T) (T, error)
	SafeShl(n Offset) (T, error)
	SafeShr(n Offset) (T, error)
}

var (
	_ SafeMath[Num[uint32]] = Num[uint32]{}
	_ SafeMath[Uint128]     = Uint128{}
	_ SafeMath[Int128]      = Int128{}
)

// Num wraps a native integer so it can be used through SafeMath.
type Num[T constraints.Integer] struct {
	V T
}

// N wraps v.
func N[T constraints.Integer](v T) Num[T] {
	return Num[T]{V: v}
}

// String formats n in base 10.
func (n Num[T]) String() string {
	if IsSigned[T]() {
		return strconv.FormatInt(int64(n.V), 10)
	}
	return strconv.FormatUint(uint64(n.V), 10)
}

// SafeAdd returns n + rhs, or an error on overflow.
func (n Num[T]) SafeAdd(rhs Num[T]) (Num[T], error) {
	v, ok := CheckedAdd(n.V, rhs.V)
	if !ok {
		return Num[T]{}, raise(OpAdd)
	}
	return Num[T]{V: v}, nil
}

// SafeSub returns n - rhs, or an error on overflow.
func (n Num[T]) SafeSub(rhs Num[T]) (Num[T], error) {
	v, ok := CheckedSub(n.V, rhs.V)
	if !ok {
		return Num[T]{}, raise(OpSub)
	}
	return Num[T]{V: v}, nil
}

// SafeMul returns n * rhs, or an error on overflow.
func (n Num[T]) SafeMul(rhs Num[T]) (Num[T], error) {
	v, ok := CheckedMul(n.V, rhs.V)
	if !ok {
		return Num[T]{}, raise(OpMul)
	}
	return Num[T]{V: v}, nil
}

// SafeDiv returns n / rhs, or an error on a zero divisor or overflow.
func (n Num[T]) SafeDiv(rhs Num[T]) (Num[T], error) {
	v, ok := CheckedDiv(n.V, rhs.V)
	if !ok {
		return Num[T]{}, raise(OpDiv)
	}
	return Num[T]{V: v}, nil
}

// SafeRem returns n % rhs, or an error on a zero divisor.
func (n Num[T]) SafeRem(rhs Num[T]) (Num[T], error) {
	v, ok := CheckedRem(n.V, rhs.V)
	if !ok {
		return Num[T]{}, raise(OpRem)
	}
	return Num[T]{V: v}, nil
}

// SafeShl returns n << s, or an error if s is not below the bit width.
func (n Num[T]) SafeShl(s Offset) (Num[T], error) {
	v, ok := CheckedShl(n.V, s)
	if !ok {
		return Num[T]{}, raise(OpShl)
	}
	return Num[T]{V: v}, nil
}

// SafeShr returns n >> s, or an error if s is not below the bit width.
func (n Num[T]) SafeShr(s Offset) (Num[T], error) {
	v, ok := CheckedShr(n.V, s)
	if !ok {
		return Num[T]{}, raise(OpShr)
	}
	return Num[T]{V: v}, nil
}
