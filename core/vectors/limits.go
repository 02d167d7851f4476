package vectors

import (
	"fmt"
	"math/big"

	"golang.org/x/exp/constraints"

	safemath "novamath/core/math"
)

// Limits describes the range of a named type.
type Limits struct {
	Bits uint
	Min  *big.Int
	Max  *big.Int
}

// LimitsOf returns the bit width and range of typ.
func LimitsOf(typ string) (Limits, error) {
	switch typ {
	case "u8":
		return nativeLimits[uint8](), nil
	case "u16":
		return nativeLimits[uint16](), nil
	case "u32":
		return nativeLimits[uint32](), nil
	case "u64":
		return nativeLimits[uint64](), nil
	case "usize":
		return nativeLimits[uint](), nil
	case "i8":
		return nativeLimits[int8](), nil
	case "i16":
		return nativeLimits[int16](), nil
	case "i32":
		return nativeLimits[int32](), nil
	case "i64":
		return nativeLimits[int64](), nil
	case "isize":
		return nativeLimits[int](), nil
	case "u128":
		return Limits{Bits: 128, Min: new(big.Int), Max: safemath.MaxUint128.BigInt()}, nil
	case "i128":
		return Limits{Bits: 128, Min: safemath.MinInt128.BigInt(), Max: safemath.MaxInt128.BigInt()}, nil
	default:
		return Limits{}, fmt.Errorf("%w: unknown type %q", ErrBadInput, typ)
	}
}

func nativeLimits[T constraints.Integer]() Limits {
	return Limits{
		Bits: safemath.Bits[T](),
		Min:  toBig(safemath.MinOf[T]()),
		Max:  toBig(safemath.MaxOf[T]()),
	}
}

func toBig[T constraints.Integer](v T) *big.Int {
	if safemath.IsSigned[T]() {
		return big.NewInt(int64(v))
	}
	return new(big.Int).SetUint64(uint64(v))
}
