package math

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Offset is the shift amount type used by the SafeMath interface methods.
type Offset = uint32

// Bits returns the bit width of T.
func Bits[T constraints.Integer]() uint {
	var zero T
	return uint(unsafe.Sizeof(zero)) * 8
}

// IsSigned reports whether T is a signed integer type.
func IsSigned[T constraints.Integer]() bool {
	return ^T(0) < 0
}

// MinOf returns the smallest value representable by T.
func MinOf[T constraints.Integer]() T {
	if !IsSigned[T]() {
		return 0
	}
	return T(1) << (Bits[T]() - 1)
}

// MaxOf returns the largest value representable by T.
func MaxOf[T constraints.Integer]() T {
	return ^MinOf[T]()
}
