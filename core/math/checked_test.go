package math

import (
	"math"
	"math/big"
	"math/bits"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"
)

func TestLimits(t *testing.T) {
	assert.Equal(t, uint(8), Bits[int8]())
	assert.Equal(t, uint(16), Bits[uint16]())
	assert.Equal(t, uint(64), Bits[int64]())
	assert.Equal(t, uint(bits.UintSize), Bits[uint]())

	assert.True(t, IsSigned[int32]())
	assert.False(t, IsSigned[uint32]())

	assert.Equal(t, int8(math.MinInt8), MinOf[int8]())
	assert.Equal(t, int8(math.MaxInt8), MaxOf[int8]())
	assert.Equal(t, int64(math.MinInt64), MinOf[int64]())
	assert.Equal(t, uint32(0), MinOf[uint32]())
	assert.Equal(t, uint32(math.MaxUint32), MaxOf[uint32]())
	assert.Equal(t, uint64(math.MaxUint64), MaxOf[uint64]())
}

// exhaustive8 checks every operand pair of an 8-bit type against int
// arithmetic, which cannot overflow for these ranges.
func exhaustive8[T int8 | uint8](t *testing.T) {
	lo, hi := int(MinOf[T]()), int(MaxOf[T]())
	inRange := func(v int) bool { return v >= lo && v <= hi }

	for x := lo; x <= hi; x++ {
		for y := lo; y <= hi; y++ {
			a, b := T(x), T(y)

			got, ok := CheckedAdd(a, b)
			require.Equal(t, inRange(x+y), ok, "add %d %d", x, y)
			if ok {
				require.Equal(t, x+y, int(got))
			}

			got, ok = CheckedSub(a, b)
			require.Equal(t, inRange(x-y), ok, "sub %d %d", x, y)
			if ok {
				require.Equal(t, x-y, int(got))
			}

			got, ok = CheckedMul(a, b)
			require.Equal(t, inRange(x*y), ok, "mul %d %d", x, y)
			if ok {
				require.Equal(t, x*y, int(got))
			}

			got, ok = CheckedDiv(a, b)
			require.Equal(t, y != 0 && inRange(x/y), ok, "div %d %d", x, y)
			if ok {
				require.Equal(t, x/y, int(got))
			}

			got, ok = CheckedRem(a, b)
			require.Equal(t, y != 0, ok, "rem %d %d", x, y)
			if ok {
				require.Equal(t, x%y, int(got))
			}
		}
	}
}

func TestExhaustiveInt8(t *testing.T) {
	exhaustive8[int8](t)

	_, ok := CheckedDiv(int8(math.MinInt8), -1)
	assert.False(t, ok, "MIN / -1 does not fit")
}

func TestExhaustiveUint8(t *testing.T) { exhaustive8[uint8](t) }

func TestCheckedShiftBounds(t *testing.T) {
	testShiftBounds[int8](t)
	testShiftBounds[uint16](t)
	testShiftBounds[int32](t)
	testShiftBounds[uint64](t)
	testShiftBounds[int](t)
	testShiftBounds[uintptr](t)
}

func testShiftBounds[T constraints.Integer](t *testing.T) {
	width := Bits[T]()
	v := MaxOf[T]()
	for n := uint(0); n < width+4; n++ {
		l, okL := CheckedShl(v, n)
		r, okR := CheckedShr(v, n)
		if n >= width {
			assert.False(t, okL, "shl %d", n)
			assert.False(t, okR, "shr %d", n)
			continue
		}
		require.True(t, okL)
		require.True(t, okR)
		assert.Equal(t, v<<n, l)
		assert.Equal(t, v>>n, r)
	}
}

// TestRandom64 compares 64-bit results against math/big.
func TestRandom64(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	minI, maxI := big.NewInt(math.MinInt64), big.NewInt(math.MaxInt64)
	maxU := new(big.Int).SetUint64(math.MaxUint64)

	pick := func() uint64 {
		switch rng.IntN(4) {
		case 0:
			return rng.Uint64() >> rng.UintN(64)
		case 1:
			return math.MaxUint64 - rng.Uint64N(4)
		case 2:
			return rng.Uint64N(4)
		default:
			return rng.Uint64()
		}
	}

	for range 20000 {
		ua, ub := pick(), pick()
		sa, sb := int64(ua), int64(ub)

		ref := new(big.Int).Mul(new(big.Int).SetUint64(ua), new(big.Int).SetUint64(ub))
		got, ok := CheckedMul(ua, ub)
		require.Equal(t, ref.Cmp(maxU) <= 0, ok, "u mul %d %d", ua, ub)
		if ok {
			require.Equal(t, ref.Uint64(), got)
		}

		ref = new(big.Int).Add(new(big.Int).SetUint64(ua), new(big.Int).SetUint64(ub))
		got, ok = CheckedAdd(ua, ub)
		require.Equal(t, ref.Cmp(maxU) <= 0, ok, "u add %d %d", ua, ub)

		inI := func(b *big.Int) bool { return b.Cmp(minI) >= 0 && b.Cmp(maxI) <= 0 }

		ref = new(big.Int).Mul(big.NewInt(sa), big.NewInt(sb))
		sgot, ok := CheckedMul(sa, sb)
		require.Equal(t, inI(ref), ok, "s mul %d %d", sa, sb)
		if ok {
			require.Equal(t, ref.Int64(), sgot)
		}

		ref = new(big.Int).Add(big.NewInt(sa), big.NewInt(sb))
		sgot, ok = CheckedAdd(sa, sb)
		require.Equal(t, inI(ref), ok, "s add %d %d", sa, sb)
		if ok {
			require.Equal(t, ref.Int64(), sgot)
		}

		ref = new(big.Int).Sub(big.NewInt(sa), big.NewInt(sb))
		sgot, ok = CheckedSub(sa, sb)
		require.Equal(t, inI(ref), ok, "s sub %d %d", sa, sb)
		if ok {
			require.Equal(t, ref.Int64(), sgot)
		}
	}
}
