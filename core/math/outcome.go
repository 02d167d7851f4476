package math

import "golang.org/x/exp/constraints"

// Outcome holds either a value or the first error of a chain of checked
// operations. Once an error is recorded, later steps return the Outcome
// unchanged and emit no further diagnostics.
//
//	total, err := safemath.Of(price).Mul(qty).Add(fee).Result()
type Outcome[T constraints.Integer] struct {
	val T
	err error
}

// Of starts a chain at v.
func Of[T constraints.Integer](v T) Outcome[T] {
	return Outcome[T]{val: v}
}

// Fail returns an Outcome already holding err.
func Fail[T constraints.Integer](err error) Outcome[T] {
	return Outcome[T]{err: err}
}

// Result ends the chain.
func (o Outcome[T]) Result() (T, error) {
	if o.err != nil {
		return 0, o.err
	}
	return o.val, nil
}

// Err returns the recorded error, if any.
func (o Outcome[T]) Err() error { return o.err }

// Add adds b unless the chain has already failed.
func (o Outcome[T]) Add(b T) Outcome[T] {
	if o.err != nil {
		return o
	}
	v, ok := CheckedAdd(o.val, b)
	if !ok {
		return Outcome[T]{err: raise(OpAdd)}
	}
	return Outcome[T]{val: v}
}

// Sub subtracts b unless the chain has already failed.
func (o Outcome[T]) Sub(b T) Outcome[T] {
	if o.err != nil {
		return o
	}
	v, ok := CheckedSub(o.val, b)
	if !ok {
		return Outcome[T]{err: raise(OpSub)}
	}
	return Outcome[T]{val: v}
}

// Mul multiplies by b unless the chain has already failed.
func (o Outcome[T]) Mul(b T) Outcome[T] {
	if o.err != nil {
		return o
	}
	v, ok := CheckedMul(o.val, b)
	if !ok {
		return Outcome[T]{err: raise(OpMul)}
	}
	return Outcome[T]{val: v}
}

// Div divides by b unless the chain has already failed.
func (o Outcome[T]) Div(b T) Outcome[T] {
	if o.err != nil {
		return o
	}
	v, ok := CheckedDiv(o.val, b)
	if !ok {
		return Outcome[T]{err: raise(OpDiv)}
	}
	return Outcome[T]{val: v}
}

// Rem takes the remainder of division by b unless the chain has already failed.
func (o Outcome[T]) Rem(b T) Outcome[T] {
	if o.err != nil {
		return o
	}
	v, ok := CheckedRem(o.val, b)
	if !ok {
		return Outcome[T]{err: raise(OpRem)}
	}
	return Outcome[T]{val: v}
}

// Shl shifts left by n bits unless the chain has already failed.
func (o Outcome[T]) Shl(n Offset) Outcome[T] {
	if o.err != nil {
		return o
	}
	v, ok := CheckedShl(o.val, n)
	if !ok {
		return Outcome[T]{err: raise(OpShl)}
	}
	return Outcome[T]{val: v}
}

// Shr shifts right by n bits unless the chain has already failed.
func (o Outcome[T]) Shr(n Offset) Outcome[T] {
	if o.err != nil {
		return o
	}
	v, ok := CheckedShr(o.val, n)
	if !ok {
		return Outcome[T]{err: raise(OpShr)}
	}
	return Outcome[T]{val: v}
}
