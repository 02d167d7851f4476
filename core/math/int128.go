package math

import (
	"fmt"
	"math/big"
	"math/bits"

	num "github.com/shabbyrobe/go-num"
)

var (
	bigOne    = big.NewInt(1)
	bigTwo128 = new(big.Int).Lsh(bigOne, 128)
	bigMask64 = new(big.Int).SetUint64(^uint64(0))
	bigMaxI   = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 127), bigOne)
	bigMinI   = new(big.Int).Neg(new(big.Int).Lsh(bigOne, 127))
)

// Uint128 is an unsigned 128-bit integer.
type Uint128 struct {
	v num.U128
}

// MaxUint128 is the largest Uint128.
var MaxUint128 = U128(^uint64(0), ^uint64(0))

// U128 builds a Uint128 from its high and low words.
func U128(hi, lo uint64) Uint128 {
	return Uint128{v: num.U128FromRaw(hi, lo)}
}

// U128From64 widens v.
func U128From64(v uint64) Uint128 {
	return U128(0, v)
}

// ParseUint128 parses a base-10 string.
func ParseUint128(s string) (Uint128, error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Uint128{}, fmt.Errorf("invalid u128 %q", s)
	}
	if b.Sign() < 0 || b.BitLen() > 128 {
		return Uint128{}, fmt.Errorf("u128 %q out of range", s)
	}
	hi, lo := splitBig(b)
	return U128(hi, lo), nil
}

// Raw returns the high and low words of u.
func (u Uint128) Raw() (hi, lo uint64) { return u.v.Raw() }

// Cmp returns -1, 0 or +1 as u is less than, equal to or greater than o.
func (u Uint128) Cmp(o Uint128) int { return u.v.Cmp(o.v) }

func (u Uint128) IsZero() bool   { return u == Uint128{} }
func (u Uint128) String() string { return u.BigInt().String() }

// BigInt returns u as a new big.Int.
func (u Uint128) BigInt() *big.Int {
	hi, lo := u.Raw()
	return joinBig(hi, lo)
}

// SafeAdd returns u + rhs, or an error on overflow.
func (u Uint128) SafeAdd(rhs Uint128) (Uint128, error) {
	ahi, alo := u.Raw()
	bhi, blo := rhs.Raw()
	_, carry := bits.Add64(alo, blo, 0)
	if _, carry = bits.Add64(ahi, bhi, carry); carry != 0 {
		return Uint128{}, raise(OpAdd)
	}
	return Uint128{v: u.v.Add(rhs.v)}, nil
}

// SafeSub returns u - rhs, or an error on overflow.
func (u Uint128) SafeSub(rhs Uint128) (Uint128, error) {
	if u.Cmp(rhs) < 0 {
		return Uint128{}, raise(OpSub)
	}
	return Uint128{v: u.v.Sub(rhs.v)}, nil
}

// SafeMul returns u * rhs, or an error on overflow.
func (u Uint128) SafeMul(rhs Uint128) (Uint128, error) {
	if mulOverflows128(u, rhs) {
		return Uint128{}, raise(OpMul)
	}
	return Uint128{v: u.v.Mul(rhs.v)}, nil
}

// SafeDiv returns u / rhs, or an error on a zero divisor.
func (u Uint128) SafeDiv(rhs Uint128) (Uint128, error) {
	if rhs.IsZero() {
		return Uint128{}, raise(OpDiv)
	}
	return Uint128{v: u.v.Quo(rhs.v)}, nil
}

// SafeRem returns u % rhs, or an error on a zero divisor.
func (u Uint128) SafeRem(rhs Uint128) (Uint128, error) {
	if rhs.IsZero() {
		return Uint128{}, raise(OpRem)
	}
	return Uint128{v: u.v.Rem(rhs.v)}, nil
}

// SafeShl returns u << n, or an error if n is not below 128.
func (u Uint128) SafeShl(n Offset) (Uint128, error) {
	if n >= 128 {
		return Uint128{}, raise(OpShl)
	}
	return Uint128{v: u.v.Lsh(uint(n))}, nil
}

// SafeShr returns u >> n, or an error if n is not below 128.
func (u Uint128) SafeShr(n Offset) (Uint128, error) {
	if n >= 128 {
		return Uint128{}, raise(OpShr)
	}
	return Uint128{v: u.v.Rsh(uint(n))}, nil
}

// mulOverflows128 reports whether a*b needs more than 128 bits.
func mulOverflows128(a, b Uint128) bool {
	ahi, alo := a.Raw()
	bhi, blo := b.Raw()
	if ahi != 0 && bhi != 0 {
		return true
	}
	hi, _ := bits.Mul64(alo, blo)
	c1hi, c1 := bits.Mul64(ahi, blo)
	c2hi, c2 := bits.Mul64(alo, bhi)
	if c1hi != 0 || c2hi != 0 {
		return true
	}
	cross, carry := bits.Add64(c1, c2, 0)
	if carry != 0 {
		return true
	}
	_, carry = bits.Add64(hi, cross, 0)
	return carry != 0
}

// Int128 is a two's complement signed 128-bit integer.
type Int128 struct {
	v num.I128
}

var (
	// MinInt128 is the most negative Int128.
	MinInt128 = I128(1<<63, 0)
	// MaxInt128 is the largest Int128.
	MaxInt128 = I128(1<<63-1, ^uint64(0))

	minusOne128 = I128(^uint64(0), ^uint64(0))
)

// I128 builds an Int128 from its two's complement high and low words.
func I128(hi, lo uint64) Int128 {
	return Int128{v: num.I128FromRaw(hi, lo)}
}

// I128From64 sign-extends v.
func I128From64(v int64) Int128 {
	return I128(uint64(v>>63), uint64(v))
}

// ParseInt128 parses a base-10 string with an optional sign.
func ParseInt128(s string) (Int128, error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Int128{}, fmt.Errorf("invalid i128 %q", s)
	}
	i, ok := int128FromBig(b)
	if !ok {
		return Int128{}, fmt.Errorf("i128 %q out of range", s)
	}
	return i, nil
}

func int128FromBig(b *big.Int) (Int128, bool) {
	if b.Cmp(bigMinI) < 0 || b.Cmp(bigMaxI) > 0 {
		return Int128{}, false
	}
	if b.Sign() < 0 {
		b = new(big.Int).Add(b, bigTwo128)
	}
	hi, lo := splitBig(b)
	return I128(hi, lo), true
}

// Raw returns the two's complement high and low words of i.
func (i Int128) Raw() (hi, lo uint64) { return i.v.Raw() }

// Cmp returns -1, 0 or +1 as i is less than, equal to or greater than o.
func (i Int128) Cmp(o Int128) int {
	ahi, alo := i.Raw()
	bhi, blo := o.Raw()
	switch {
	case int64(ahi) < int64(bhi):
		return -1
	case int64(ahi) > int64(bhi):
		return 1
	case alo < blo:
		return -1
	case alo > blo:
		return 1
	}
	return 0
}

func (i Int128) IsZero() bool   { return i == Int128{} }
func (i Int128) String() string { return i.BigInt().String() }

// IsNeg reports whether i < 0.
func (i Int128) IsNeg() bool {
	hi, _ := i.Raw()
	return hi>>63 == 1
}

// BigInt returns i as a new big.Int.
func (i Int128) BigInt() *big.Int {
	hi, lo := i.Raw()
	b := joinBig(hi, lo)
	if i.IsNeg() {
		b.Sub(b, bigTwo128)
	}
	return b
}

// SafeAdd returns i + rhs, or an error on overflow.
func (i Int128) SafeAdd(rhs Int128) (Int128, error) {
	r := Int128{v: i.v.Add(rhs.v)}
	if i.IsNeg() == rhs.IsNeg() && r.IsNeg() != i.IsNeg() {
		return Int128{}, raise(OpAdd)
	}
	return r, nil
}

// SafeSub returns i - rhs, or an error on overflow.
func (i Int128) SafeSub(rhs Int128) (Int128, error) {
	r := Int128{v: i.v.Sub(rhs.v)}
	if i.IsNeg() != rhs.IsNeg() && r.IsNeg() != i.IsNeg() {
		return Int128{}, raise(OpSub)
	}
	return r, nil
}

// SafeMul returns i * rhs, or an error on overflow.
func (i Int128) SafeMul(rhs Int128) (Int128, error) {
	p := new(big.Int).Mul(i.BigInt(), rhs.BigInt())
	r, ok := int128FromBig(p)
	if !ok {
		return Int128{}, raise(OpMul)
	}
	return r, nil
}

// SafeDiv returns i / rhs, or an error on a zero divisor or overflow.
func (i Int128) SafeDiv(rhs Int128) (Int128, error) {
	if rhs.IsZero() || (i == MinInt128 && rhs == minusOne128) {
		return Int128{}, raise(OpDiv)
	}
	return Int128{v: i.v.Quo(rhs.v)}, nil
}

// SafeRem returns i % rhs, or an error on a zero divisor.
func (i Int128) SafeRem(rhs Int128) (Int128, error) {
	if rhs.IsZero() {
		return Int128{}, raise(OpRem)
	}
	if rhs == minusOne128 {
		return Int128{}, nil
	}
	return Int128{v: i.v.Rem(rhs.v)}, nil
}

// SafeShl returns i << n, or an error if n is not below 128.
func (i Int128) SafeShl(n Offset) (Int128, error) {
	if n >= 128 {
		return Int128{}, raise(OpShl)
	}
	hi, lo := i.Raw()
	if n >= 64 {
		hi, lo = lo<<(n-64), 0
	} else {
		hi, lo = hi<<n|lo>>(64-n), lo<<n
	}
	return I128(hi, lo), nil
}

// SafeShr returns i >> n, or an error if n is not below 128.
func (i Int128) SafeShr(n Offset) (Int128, error) {
	if n >= 128 {
		return Int128{}, raise(OpShr)
	}
	hi, lo := i.Raw()
	if n >= 64 {
		hi, lo = uint64(int64(hi)>>63), uint64(int64(hi)>>(n-64))
	} else {
		hi, lo = uint64(int64(hi)>>n), lo>>n|hi<<(64-n)
	}
	return I128(hi, lo), nil
}

func splitBig(b *big.Int) (hi, lo uint64) {
	lo = new(big.Int).And(b, bigMask64).Uint64()
	hi = new(big.Int).Rsh(b, 64).Uint64()
	return hi, lo
}

func joinBig(hi, lo uint64) *big.Int {
	b := new(big.Int).SetUint64(hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(lo))
}
