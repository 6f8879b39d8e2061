package bigmath

import "math/big"

// expMaclaurinThreshold is the |x| < 1 boundary below which exp evaluates
// its Maclaurin series directly instead of splitting x into an integer and
// fractional part (spec.md §4.4).
var expMaclaurinThreshold = decimalOne

// ExpApprox returns e^x accurate to positional accuracy p, truncated toward
// zero, following spec.md §4.4's sign dispatch:
//
//	x == 0           -> 1 exactly
//	x <  0           -> 1 / exp(-x)
//	x == 1           -> e, via eCore
//	|x| < 1          -> the Maclaurin series sum(x^n/n!) directly
//	otherwise        -> e^k * exp(f) for x = k + f, k = floor(x), f in [0,1)
func ExpApprox(x *Decimal, p int64) (*Decimal, error) {
	const op = "ExpApprox"

	switch {
	case x.Sign() == 0:
		return New(1, 0), nil

	case x.Sign() < 0:
		neg := new(Decimal).Neg(x)
		ep, err := subInt32Checked(op, p, 2)
		if err != nil {
			return nil, err
		}
		e, err := ExpApprox(neg, ep)
		if err != nil {
			return nil, err
		}
		prec, err := positionToPrecision(op, overestimateReciprocalOrder(e), p, 4)
		if err != nil {
			return nil, err
		}
		wc := &Context{Precision: prec, Rounding: RoundDown}
		result := new(Decimal)
		if _, err := wc.Quo(result, decimalOne, e); err != nil {
			return nil, wrapErr(op, err)
		}
		return result, nil

	case x.Cmp(decimalOne) == 0:
		return eCore(p)
	}

	absX := new(Decimal).Abs(x)
	if absX.Cmp(expMaclaurinThreshold) < 0 {
		return expMaclaurin(x, p)
	}

	k, err := decimalFloorInt64(op, x)
	if err != nil {
		return nil, err
	}
	// x <= 0, x == 1 and |x| < 1 are all handled above, so this branch is
	// only reached for x > 1, where k >= 1.

	// integer exponential accuracy: e^k is bounded above by 3^k (e < 3), so
	// budgeting against 3^(k-1) keeps the e-to-the-k-th-power computation
	// from eroding the requested accuracy p.
	step1, err := subInt32Checked(op, p, 1)
	if err != nil {
		return nil, err
	}
	step2, err := subInt32Checked(op, step1, OverestimateOrderOfInt64(k))
	if err != nil {
		return nil, err
	}
	intAcc, err := subInt32Checked(op, step2, overestimateOrderOfSmallPower(3, k-1))
	if err != nil {
		return nil, err
	}

	// fractional-part accuracy, bounded against 3^(k+1).
	fracAcc, err := subInt32Checked(op, p, overestimateOrderOfSmallPower(3, k+1))
	if err != nil {
		return nil, err
	}

	e, err := eCore(intAcc)
	if err != nil {
		return nil, err
	}

	powPrec, err := positionToPrecision(op, overestimateOrderOfSmallPower(3, k), intAcc, guardBits(absInt64(k)))
	if err != nil {
		return nil, err
	}
	powCtx := &Context{Precision: powPrec, Rounding: RoundDown}
	ek := new(Decimal)
	if _, err := powCtx.integerPower(ek, e, big.NewInt(k)); err != nil {
		return nil, wrapErr(op, err)
	}

	subPrec, err := positionToPrecision(op, 0, fracAcc, 4)
	if err != nil {
		return nil, err
	}
	subCtx := &Context{Precision: subPrec, Rounding: RoundDown}
	f := new(Decimal)
	if _, err := subCtx.Sub(f, x, New(k, 0)); err != nil {
		return nil, wrapErr(op, err)
	}

	ef, err := expMaclaurin(f, fracAcc)
	if err != nil {
		return nil, err
	}

	mulPrec, err := positionToPrecision(op, overestimateOrderOfSmallPower(3, k), p, 4)
	if err != nil {
		return nil, err
	}
	mulCtx := &Context{Precision: mulPrec, Rounding: RoundDown}
	result := new(Decimal)
	if _, err := mulCtx.Mul(result, ek, ef); err != nil {
		return nil, wrapErr(op, err)
	}
	return result, nil
}

// expMaclaurin evaluates sum(x^n/n!, n=0..infinity) to positional accuracy
// p, for any x (used directly when |x| < 1, and for the fractional residue
// f in [0,1) of the general x = k + f split).
func expMaclaurin(x *Decimal, p int64) (*Decimal, error) {
	engine := NewSeriesEngine(newPowerFactorialTerm(x))
	return engine.Sum("expMaclaurin", p)
}

// decimalFloorInt64 returns floor(x) as an int64, failing if the integer
// part does not fit.
func decimalFloorInt64(op string, x *Decimal) (int64, error) {
	integ, frac := new(Decimal), new(Decimal)
	x.Modf(integ, frac)
	if frac.Sign() < 0 {
		if _, err := BaseContext.Sub(integ, integ, decimalOne); err != nil {
			return 0, wrapErr(op, err)
		}
	}
	whole := new(big.Int).Set(&integ.Coeff)
	if integ.Exponent > 0 {
		whole.Mul(whole, pow10(int64(integ.Exponent)))
	}
	if !whole.IsInt64() {
		return 0, newOverflowError(op, "integer part of exp argument exceeds int64 range")
	}
	return whole.Int64(), nil
}

func absInt64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// ExpApproximator is a reusable binding of exp to a fixed argument x, per
// spec.md §6's "Factory construction": once built it can be asked for its
// order estimate or a positional-accurate result any number of times. It
// caches nothing: each call redoes the integer/fractional split.
type ExpApproximator struct {
	x *Decimal
}

// NewExpApproximator returns an ExpApproximator bound to x.
func NewExpApproximator(x *Decimal) *ExpApproximator {
	return &ExpApproximator{x: new(Decimal).Set(x)}
}

// Approximate returns e^x to positional accuracy p.
func (a *ExpApproximator) Approximate(p int64) (*Decimal, error) {
	return ExpApprox(a.x, p)
}

// Order returns a safe estimate of Order(e^x), used by the facade to
// convert a significant-digit precision request into a positional accuracy.
func (a *ExpApproximator) Order() (int64, error) {
	const op = "ExpApproximator.Order"
	if a.x.Sign() == 0 {
		return 0, nil // e^0 == 1
	}
	if a.x.Sign() < 0 {
		absX := new(Decimal).Neg(a.x)
		upper, err := expOrderUpperBound(op, absX)
		if err != nil {
			return 0, err
		}
		// e^x = 1/e^|x|, and Order(1/y) == -Order(y)-1 for any y that isn't
		// an exact power of ten (always true for e^|x|). An upper bound on
		// Order(e^|x|) therefore yields a safe lower bound on Order(e^x),
		// which is what the facade needs: a lower-bound order estimate never
		// under-allocates the working precision it derives from it.
		return subInt32Checked(op, -upper, 1)
	}
	if a.x.Cmp(expMaclaurinThreshold) < 0 {
		oc := OrderComputer{Term: newPowerFactorialTerm(a.x)}
		return oc.OrderLowerExact()
	}
	k, err := decimalFloorInt64(op, a.x)
	if err != nil {
		return 0, err
	}
	if k == 0 {
		oc := OrderComputer{Term: newPowerFactorialTerm(a.x)}
		return oc.OrderLowerExact()
	}
	// x > 0 here, so k > 0: 2^k < e^k, making Order(2^k) a genuine lower
	// bound, cheap to compute and good enough to position a coarse
	// evaluation whose leading digit reveals the real order.
	lower := overestimateOrderOfSmallPower(2, k)
	coarse, err := ExpApprox(a.x, lower)
	if err != nil {
		return 0, err
	}
	if coarse.Sign() == 0 {
		return lower, nil
	}
	return Order(coarse), nil
}
