package math

import "golang.org/x/exp/constraints"

// CheckedAdd returns result and boolean indicating success.
func CheckedAdd[T constraints.Integer](a, b T) (T, bool) {
	result := a + b
	if (b > 0 && result < a) || (b < 0 && result > a) {
		return 0, false
	}
	return result, true
}

// CheckedSub returns result and boolean indicating success.
func CheckedSub[T constraints.Integer](a, b T) (T, bool) {
	result := a - b
	if (b > 0 && result > a) || (b < 0 && result < a) {
		return 0, false
	}
	return result, true
}

// CheckedMul returns result and boolean indicating success.
func CheckedMul[T constraints.Integer](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	// MIN * -1 wraps back to MIN and survives the division test below.
	if IsSigned[T]() && b == ^T(0) && a == MinOf[T]() {
		return 0, false
	}
	result := a * b
	if result/b != a {
		return 0, false
	}
	return result, true
}

// CheckedDiv returns a / b, failing on a zero divisor or on MIN / -1.
func CheckedDiv[T constraints.Integer](a, b T) (T, bool) {
	if b == 0 {
		return 0, false
	}
	if IsSigned[T]() && b == ^T(0) && a == MinOf[T]() {
		return 0, false
	}
	return a / b, true
}

// CheckedRem returns a % b, failing only on a zero divisor.
func CheckedRem[T constraints.Integer](a, b T) (T, bool) {
	if b == 0 {
		return 0, false
	}
	if IsSigned[T]() && b == ^T(0) {
		return 0, true
	}
	return a % b, true
}

// CheckedShl returns a << n, failing when n is not below the bit width of T.
// Bits shifted past the top are discarded.
func CheckedShl[T constraints.Integer, S constraints.Unsigned](a T, n S) (T, bool) {
	if uint64(n) >= uint64(Bits[T]()) {
		return 0, false
	}
	return a << n, true
}

// CheckedShr returns a >> n, failing when n is not below the bit width of T.
// The shift is arithmetic for signed types.
func CheckedShr[T constraints.Integer, S constraints.Unsigned](a T, n S) (T, bool) {
	if uint64(n) >= uint64(Bits[T]()) {
		return 0, false
	}
	return a >> n, true
}
