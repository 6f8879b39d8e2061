package bigmath

import "math/big"

// Rounder defines a function that returns true if 1 should be added to the
// magnitude of a number being rounded. result is the result to which the 1
// would be added. half is -1 if the discarded digits are < 0.5, 0 if = 0.5,
// or 1 if > 0.5.
type Rounder func(result *big.Int, half int) bool

// Round sets d to rounded x.
func (r Rounder) Round(c *Context, d, x *Decimal) Condition {
	d.Set(x)
	nd := x.NumDigits()
	xs := x.Sign()
	var res Condition

	diff := nd - int64(c.Precision)
	if diff > 0 {
		res |= Rounded
		e := pow10(diff)
		y := new(big.Int)
		m := new(big.Int)
		y.QuoRem(&d.Coeff, e, m)
		if m.Sign() != 0 {
			res |= Inexact
			m.Abs(m)
			discard := NewWithBigInt(m, int32(-diff))
			if r(y, discard.Cmp(decimalHalf)) {
				roundAddOne(y, &diff, xs)
			}
		}
		d.Coeff = *y
	} else {
		diff = 0
	}
	res |= d.setExponent(c, int64(d.Exponent), diff)
	return res
}

// roundAddOne adds 1 to the magnitude of b, where sign is the sign the
// caller intends the final value to carry (b itself may already carry that
// sign, as in Context.Round, or may still be an unsigned accumulator, as in
// Context.Quo).
func roundAddOne(b *big.Int, diff *int64, sign int) {
	nd := NumDigits(b)
	if sign >= 0 {
		b.Add(b, bigOne)
	} else {
		b.Sub(b, bigOne)
	}
	nd2 := NumDigits(b)
	if nd2 > nd {
		b.Quo(b, bigTen)
		*diff++
	}
}

var (
	// RoundDown truncates toward 0.
	RoundDown Rounder = roundDown
	// RoundUp rounds away from 0.
	RoundUp Rounder = roundUp
	// RoundHalfUp rounds up if the discarded digits are >= 0.5.
	RoundHalfUp Rounder = roundHalfUp
	// RoundHalfDown rounds up if the discarded digits are > 0.5.
	RoundHalfDown Rounder = roundHalfDown
	// RoundHalfEven rounds up if the discarded digits are > 0.5. If they are
	// exactly 0.5, it rounds up only if that produces an even last digit.
	RoundHalfEven Rounder = roundHalfEven
	// RoundCeiling rounds toward +Inf.
	RoundCeiling Rounder = roundCeiling
	// RoundFloor rounds toward -Inf.
	RoundFloor Rounder = roundFloor
)

func roundDown(result *big.Int, half int) bool {
	return false
}

func roundUp(result *big.Int, half int) bool {
	return true
}

func roundHalfUp(result *big.Int, half int) bool {
	return half >= 0
}

func roundHalfDown(result *big.Int, half int) bool {
	return half > 0
}

func roundHalfEven(result *big.Int, half int) bool {
	if half > 0 {
		return true
	}
	if half < 0 {
		return false
	}
	return result.Bit(0) == 1
}

func roundFloor(result *big.Int, half int) bool {
	return result.Sign() < 0
}

func roundCeiling(result *big.Int, half int) bool {
	return result.Sign() >= 0
}
