// Package math provides checked arithmetic for fixed-width integers.
//
// Every Safe* operation either returns the exact mathematical result or an
// error matching ErrArithmetic. Results are never wrapped, truncated or
// saturated. On failure the caller's source position is sent to the installed
// Reporter before the error is returned.
//
// Callers usually import the package as safemath:
//
//	import safemath "novamath/core/math"
package math

import "golang.org/x/exp/constraints"

// SafeAdd returns a + b, or an error if the result overflows T.
func SafeAdd[T constraints.Integer](a, b T) (T, error) {
	result, ok := CheckedAdd(a, b)
	if !ok {
		return 0, raise(OpAdd)
	}
	return result, nil
}

// SafeSub returns a - b, or an error if the result underflows T.
func SafeSub[T constraints.Integer](a, b T) (T, error) {
	result, ok := CheckedSub(a, b)
	if !ok {
		return 0, raise(OpSub)
	}
	return result, nil
}

// SafeMul returns a * b, or an error if the result overflows T.
func SafeMul[T constraints.Integer](a, b T) (T, error) {
	result, ok := CheckedMul(a, b)
	if !ok {
		return 0, raise(OpMul)
	}
	return result, nil
}

// SafeDiv returns a / b, or an error if b is zero or the quotient overflows.
func SafeDiv[T constraints.Integer](a, b T) (T, error) {
	result, ok := CheckedDiv(a, b)
	if !ok {
		return 0, raise(OpDiv)
	}
	return result, nil
}

// SafeRem returns a % b, or an error if b is zero.
func SafeRem[T constraints.Integer](a, b T) (T, error) {
	result, ok := CheckedRem(a, b)
	if !ok {
		return 0, raise(OpRem)
	}
	return result, nil
}

// SafeShl returns a << n, or an error if n >= the bit width of T.
func SafeShl[T constraints.Integer, S constraints.Unsigned](a T, n S) (T, error) {
	result, ok := CheckedShl(a, n)
	if !ok {
		return 0, raise(OpShl)
	}
	return result, nil
}

// SafeShr returns a >> n, or an error if n >= the bit width of T.
func SafeShr[T constraints.Integer, S constraints.Unsigned](a T, n S) (T, error) {
	result, ok := CheckedShr(a, n)
	if !ok {
		return 0, raise(OpShr)
	}
	return result, nil
}
