package bigmath

import "math/big"

// guardBits returns the number of extra working digits to carry through an
// exponentiation-by-squaring computation of y^n, so that the O(log2 n)
// successive roundings it performs don't erode the final positional
// accuracy below its contract. Each squaring step can lose at most half a
// unit in the last place; budgeting one extra digit per squaring step is
// generous enough to absorb that.
func guardBits(n int64) int64 {
	g := int64(2)
	for n > 0 {
		g++
		n >>= 1
	}
	return g
}

// positionToPrecision converts a target positional accuracy p, given a safe
// upper bound `order` on the magnitude being computed, into a significant
// digit count suitable for a working Context, padded with guard digits.
// P = order - p + 1 is the digit count that places the last significant
// digit at position p; guard widens that so intermediate rounding doesn't
// erode it.
func positionToPrecision(op string, order, p, guard int64) (uint32, error) {
	P, err := addInt32Checked(op, order-p+1, guard)
	if err != nil {
		return 0, err
	}
	if P < 1 {
		return 0, newPrecisionUnderflowError(op, P)
	}
	return uint32(P), nil
}

// factorialTerm is T(n) = 1/n!, the building block of the direct Maclaurin
// expansion for e (spec's E component).
type factorialTerm struct{}

func (factorialTerm) MinIndex() int64 { return 0 }

func (factorialTerm) OverestimateOrder(n int64) (int64, error) {
	if n == 0 {
		return 0, nil // 1/0! == 1, order 0
	}
	nFact := new(big.Int).MulRange(1, n)
	oFact := Order(NewWithBigInt(nFact, 0))
	return combineOrderQuotient(0, oFact), nil
}

func (factorialTerm) Approximate(n int64, p int64) (*Decimal, error) {
	const op = "factorialTerm.Approximate"
	oe, err := (factorialTerm{}).OverestimateOrder(n)
	if err != nil {
		return nil, err
	}
	prec, err := positionToPrecision(op, oe, p, 2)
	if err != nil {
		if _, ok := err.(*PrecisionUnderflowError); ok {
			return New(0, int32(p)), nil
		}
		return nil, err
	}
	ctx := &Context{Precision: prec, Rounding: RoundDown}
	nFact := new(big.Int).MulRange(1, n)
	if n == 0 {
		nFact = big.NewInt(1)
	}
	result := new(Decimal)
	if _, err := ctx.Quo(result, decimalOne, NewWithBigInt(nFact, 0)); err != nil {
		return nil, wrapErr(op, err)
	}
	return result, nil
}

func (t factorialTerm) ApproximateMinimal(n int64) (*Decimal, error) {
	oe, err := t.OverestimateOrder(n)
	if err != nil {
		return nil, err
	}
	v, err := t.Approximate(n, oe)
	if err != nil {
		return nil, err
	}
	return roundToOneDigit("factorialTerm.ApproximateMinimal", v)
}

// roundToOneDigit truncates v to exactly one significant digit (spec.md
// §3's ApproximateMinimal contract: "returns T(n) rounded to exactly one
// significant digit, truncating").
func roundToOneDigit(op string, v *Decimal) (*Decimal, error) {
	if v.Sign() == 0 {
		return v, nil
	}
	mc := &Context{Precision: 1, Rounding: RoundDown}
	result := new(Decimal)
	if _, err := mc.Round(result, v); err != nil {
		return nil, wrapErr(op, err)
	}
	return result, nil
}

// powerFactorialTerm is T(n) = x^n/n!, the Maclaurin term used by exp's
// direct series for |x| < 1. The magnitude is computed against |x|; sign is
// reattached separately via a SignMapper so that the alternating behavior
// for x < 0 is an explicit, named case rather than implicit in a signed
// exponentiation.
type powerFactorialTerm struct {
	x      *Decimal
	absX   *Decimal
	mapper IndexMapper
	sign   SignMapper
}

func newPowerFactorialTerm(x *Decimal) *powerFactorialTerm {
	sign := AlwaysPositive
	if x.Sign() < 0 {
		sign = AlternatingSign
	}
	absX := new(Decimal).Abs(x)
	return &powerFactorialTerm{x: x, absX: absX, mapper: IdentityMapper, sign: sign}
}

func (t *powerFactorialTerm) MinIndex() int64 { return 0 }

func (t *powerFactorialTerm) OverestimateOrder(rawN int64) (int64, error) {
	n := t.mapper(rawN)
	if t.x.Sign() == 0 {
		if n == 0 {
			return 0, nil
		}
		return OrderUndefined, nil
	}
	ox := OverestimateOrder(t.absX)
	opow := combineOrderPower(ox, n)
	if n == 0 {
		opow = 0
	}
	nFact := new(big.Int).MulRange(1, maxInt64(n, 1))
	if n == 0 {
		nFact = big.NewInt(1)
	}
	oFact := Order(NewWithBigInt(nFact, 0))
	return combineOrderQuotient(opow, oFact), nil
}

func (t *powerFactorialTerm) Approximate(rawN int64, p int64) (*Decimal, error) {
	const op = "powerFactorialTerm.Approximate"
	n := t.mapper(rawN)
	if t.x.Sign() == 0 {
		if n == 0 {
			return New(1, 0), nil
		}
		return New(0, int32(p)), nil
	}
	oe, err := t.OverestimateOrder(rawN)
	if err != nil {
		return nil, err
	}
	prec, err := positionToPrecision(op, oe, p, guardBits(n))
	if err != nil {
		if _, ok := err.(*PrecisionUnderflowError); ok {
			return New(0, int32(p)), nil
		}
		return nil, err
	}
	ctx := &Context{Precision: prec, Rounding: RoundDown}
	ed := NewErrDecimal(ctx)
	pow := new(Decimal)
	if n == 0 {
		pow.Set(decimalOne)
	} else {
		ed.IntegerPower(pow, t.absX, big.NewInt(n))
	}
	nFact := new(big.Int).MulRange(1, maxInt64(n, 1))
	if n == 0 {
		nFact = big.NewInt(1)
	}
	result := new(Decimal)
	ed.Quo(result, pow, NewWithBigInt(nFact, 0))
	if ed.Err() != nil {
		return nil, wrapErr(op, ed.Err())
	}
	if t.sign(rawN) < 0 {
		result.Neg(result)
	}
	return result, nil
}

func (t *powerFactorialTerm) ApproximateMinimal(n int64) (*Decimal, error) {
	oe, err := t.OverestimateOrder(n)
	if err != nil {
		return nil, err
	}
	if oe == OrderUndefined {
		return New(0, 0), nil
	}
	v, err := t.Approximate(n, oe)
	if err != nil {
		return nil, err
	}
	return roundToOneDigit("powerFactorialTerm.ApproximateMinimal", v)
}

// gregoryTerm is T(n) = r^(2n+1)/(2n+1), the building block of the
// arctanh-style Gregory series ln uses for its inner, fast-converging
// window. r is held fixed across the series; the term maps its counter n to
// the odd exponent 2n+1 itself via OddMapper, and the caller applies the
// leading factor of 2.
type gregoryTerm struct {
	r      *Decimal
	mapper IndexMapper
}

func newGregoryTerm(r *Decimal) *gregoryTerm {
	return &gregoryTerm{r: r, mapper: OddMapper}
}

func (t *gregoryTerm) MinIndex() int64 { return 0 }

func (t *gregoryTerm) OverestimateOrder(n int64) (int64, error) {
	exp := t.mapper(n)
	absR := new(Decimal)
	absR.Abs(t.r)
	// Bound |r| above by a single digit c times 10^e (rounding up), then
	// take c^exp exactly, so the bound shrinks with exp whenever |r| < 1.
	up := new(Decimal)
	if _, err := (&Context{Precision: 1, Rounding: RoundUp}).Round(up, absR); err != nil {
		return 0, wrapErr("gregoryTerm.OverestimateOrder", err)
	}
	cPow := new(big.Int).Exp(&up.Coeff, big.NewInt(exp), nil)
	opow := OverestimateOrder(NewWithBigInt(cPow, 0)) + int64(up.Exponent)*exp
	oDenom := OrderOfInt64(exp)
	return combineOrderQuotient(opow, oDenom), nil
}

func (t *gregoryTerm) Approximate(n int64, p int64) (*Decimal, error) {
	const op = "gregoryTerm.Approximate"
	exp := t.mapper(n)
	oe, err := t.OverestimateOrder(n)
	if err != nil {
		return nil, err
	}
	prec, err := positionToPrecision(op, oe, p, guardBits(exp))
	if err != nil {
		if _, ok := err.(*PrecisionUnderflowError); ok {
			return New(0, int32(p)), nil
		}
		return nil, err
	}
	ctx := &Context{Precision: prec, Rounding: RoundDown}
	ed := NewErrDecimal(ctx)
	pow := new(Decimal)
	ed.IntegerPower(pow, t.r, big.NewInt(exp))
	result := new(Decimal)
	ed.Quo(result, pow, New(exp, 0))
	if ed.Err() != nil {
		return nil, wrapErr(op, ed.Err())
	}
	return result, nil
}

func (t *gregoryTerm) ApproximateMinimal(n int64) (*Decimal, error) {
	oe, err := t.OverestimateOrder(n)
	if err != nil {
		return nil, err
	}
	v, err := t.Approximate(n, oe)
	if err != nil {
		return nil, err
	}
	return roundToOneDigit("gregoryTerm.ApproximateMinimal", v)
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
