package math

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustU128(t *testing.T, s string) Uint128 {
	t.Helper()
	u, err := ParseUint128(s)
	require.NoError(t, err)
	return u
}

func mustI128(t *testing.T, s string) Int128 {
	t.Helper()
	i, err := ParseInt128(s)
	require.NoError(t, err)
	return i
}

func TestParse128(t *testing.T) {
	assert.Equal(t, "340282366920938463463374607431768211455", MaxUint128.String())
	assert.Equal(t, MaxUint128, mustU128(t, "340282366920938463463374607431768211455"))
	assert.Equal(t, "-170141183460469231731687303715884105728", MinInt128.String())
	assert.Equal(t, "170141183460469231731687303715884105727", MaxInt128.String())
	assert.Equal(t, MinInt128, mustI128(t, "-170141183460469231731687303715884105728"))
	assert.Equal(t, I128From64(-1), mustI128(t, "-1"))

	_, err := ParseUint128("340282366920938463463374607431768211456")
	assert.Error(t, err)
	_, err = ParseUint128("-1")
	assert.Error(t, err)
	_, err = ParseInt128("170141183460469231731687303715884105728")
	assert.Error(t, err)
	_, err = ParseInt128("12x")
	assert.Error(t, err)
}

func TestUint128Ops(t *testing.T) {
	silence(t)

	tests := []struct {
		name    string
		op      func(a, b Uint128) (Uint128, error)
		a, b    string
		want    string
		wantErr bool
	}{
		{"add", Uint128.SafeAdd, "18446744073709551615", "1", "18446744073709551616", false},
		{"add overflow", Uint128.SafeAdd, "340282366920938463463374607431768211455", "1", "", true},
		{"sub", Uint128.SafeSub, "18446744073709551616", "1", "18446744073709551615", false},
		{"sub underflow", Uint128.SafeSub, "1", "2", "", true},
		{"mul", Uint128.SafeMul, "18446744073709551616", "18446744073709551615", "340282366920938463444927863358058659840", false},
		{"mul overflow", Uint128.SafeMul, "18446744073709551616", "18446744073709551616", "", true},
		{"mul cross overflow", Uint128.SafeMul, "170141183460469231731687303715884105728", "2", "", true},
		{"div", Uint128.SafeDiv, "340282366920938463463374607431768211455", "18446744073709551616", "18446744073709551615", false},
		{"div zero", Uint128.SafeDiv, "5", "0", "", true},
		{"rem", Uint128.SafeRem, "18446744073709551617", "18446744073709551616", "1", false},
		{"rem zero", Uint128.SafeRem, "5", "0", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.op(mustU128(t, tt.a), mustU128(t, tt.b))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrArithmetic)
				assert.True(t, got.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestInt128Ops(t *testing.T) {
	silence(t)

	const (
		minS = "-170141183460469231731687303715884105728"
		maxS = "170141183460469231731687303715884105727"
	)

	tests := []struct {
		name    string
		op      func(a, b Int128) (Int128, error)
		a, b    string
		want    string
		wantErr bool
	}{
		{"add", Int128.SafeAdd, "-5", "3", "-2", false},
		{"add overflow", Int128.SafeAdd, maxS, "1", "", true},
		{"add underflow", Int128.SafeAdd, minS, "-1", "", true},
		{"add extremes", Int128.SafeAdd, minS, maxS, "-1", false},
		{"sub", Int128.SafeSub, "-5", "3", "-8", false},
		{"sub overflow", Int128.SafeSub, maxS, "-1", "", true},
		{"sub underflow", Int128.SafeSub, minS, "1", "", true},
		{"mul", Int128.SafeMul, "-18446744073709551616", "3", "-55340232221128654848", false},
		{"mul min", Int128.SafeMul, "-85070591730234615865843651857942052864", "2", minS, false},
		{"mul overflow", Int128.SafeMul, minS, "-1", "", true},
		{"div", Int128.SafeDiv, "-7", "2", "-3", false},
		{"div min by minus one", Int128.SafeDiv, minS, "-1", "", true},
		{"div zero", Int128.SafeDiv, "1", "0", "", true},
		{"rem", Int128.SafeRem, "-7", "2", "-1", false},
		{"rem min by minus one", Int128.SafeRem, minS, "-1", "0", false},
		{"rem zero", Int128.SafeRem, "1", "0", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.op(mustI128(t, tt.a), mustI128(t, tt.b))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrArithmetic)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestShift128(t *testing.T) {
	silence(t)

	one := U128From64(1)
	for n := Offset(0); n < 128; n++ {
		got, err := one.SafeShl(n)
		require.NoError(t, err)
		want := new(big.Int).Lsh(big.NewInt(1), uint(n))
		assert.Equal(t, want.String(), got.String(), "1 << %d", n)

		back, err := got.SafeShr(n)
		require.NoError(t, err)
		assert.Equal(t, one, back)
	}
	_, err := one.SafeShl(128)
	assert.ErrorIs(t, err, ErrArithmetic)
	_, err = one.SafeShr(200)
	assert.ErrorIs(t, err, ErrArithmetic)

	neg := I128From64(-256)
	for n := Offset(0); n < 128; n++ {
		got, err := neg.SafeShr(n)
		require.NoError(t, err)
		want := new(big.Int).Rsh(big.NewInt(-256), uint(n))
		assert.Equal(t, want.String(), got.String(), "-256 >> %d", n)
	}

	top, err := I128From64(1).SafeShl(127)
	require.NoError(t, err)
	assert.Equal(t, MinInt128, top)

	wrapped, err := I128From64(3).SafeShl(127)
	require.NoError(t, err)
	assert.Equal(t, MinInt128, wrapped, "bits past the top are discarded")

	_, err = neg.SafeShl(128)
	assert.ErrorIs(t, err, ErrArithmetic)
	_, err = neg.SafeShr(128)
	assert.ErrorIs(t, err, ErrArithmetic)
}

func TestInt128BigRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "1", "-1", "18446744073709551616", "-18446744073709551617"} {
		i := mustI128(t, s)
		assert.Equal(t, s, i.BigInt().String())
	}
	assert.True(t, I128From64(-3).IsNeg())
	assert.Equal(t, -1, I128From64(-3).Cmp(I128From64(2)))
}

func TestInt128CmpMatchesBig(t *testing.T) {
	values := []Int128{
		MinInt128, I128From64(-1 << 63), I128From64(-2), I128From64(-1),
		{}, I128From64(1), I128(0, ^uint64(0)), I128(1, 0), MaxInt128,
		mustI128(t, "-18446744073709551617"), mustI128(t, "-18446744073709551616"),
	}
	for _, a := range values {
		for _, b := range values {
			assert.Equal(t, a.BigInt().Cmp(b.BigInt()), a.Cmp(b), "cmp %s %s", a, b)
		}
	}
}
